package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local journal",
	Long:  "Deletes the local SQLite journal: session history, the submission journal, and cached reading stats. Nothing on the platform is touched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Nothing to reset.")
			return nil
		}

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("This deletes %s. Your data on the platform is unaffected.\n", dbPath)
			fmt.Print("Type 'yes' to continue: ")
			var answer string
			_, _ = fmt.Scanln(&answer)
			if answer != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("remove journal: %w", err)
		}
		// WAL sidecars; gone already if the last close checkpointed.
		_ = os.Remove(dbPath + "-wal")
		_ = os.Remove(dbPath + "-shm")

		fmt.Println("Local journal deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
