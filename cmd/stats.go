package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/skilldrill/internal/review"
	"github.com/abhisek/skilldrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show drill statistics from the local journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		repo := st.EventRepo()

		sessions, err := repo.SessionHistory(ctx, 0)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No completed sessions yet. Run `skilldrill play` to start one.")
			return nil
		}

		var answered, correct, secs int
		byKind := make(map[string]int)
		for _, s := range sessions {
			answered += s.Answered
			correct += s.CorrectCount
			secs += s.DurationSecs
			byKind[s.Kind]++
		}

		fmt.Printf("Sessions:  %d", len(sessions))
		for _, kind := range []string{"adaptive", "diagnostic", "focused"} {
			if n := byKind[kind]; n > 0 {
				fmt.Printf("  %s %d", kind, n)
			}
		}
		fmt.Println()

		fmt.Printf("Questions: %d answered, %d correct", answered, correct)
		if answered > 0 {
			fmt.Printf(" (%.0f%%)", float64(correct)/float64(answered)*100)
		}
		fmt.Println()
		fmt.Printf("Time:      %s\n", formatDrillTime(secs))

		totals, err := repo.ReviewStats(ctx)
		if err == nil && totals.Rounds > 0 {
			fmt.Printf("Reviews:   %d rounds, %d reviewed, %d reinforced (%.0f%%)\n",
				totals.Rounds, totals.ReviewedCount, totals.ReinforcedCount,
				review.Rate(totals.ReviewedCount, totals.ReinforcedCount)*100)
		}
		return nil
	},
}

func formatDrillTime(secs int) string {
	d := time.Duration(secs) * time.Second
	if h := int(d.Hours()); h > 0 {
		return fmt.Sprintf("%dh %dm", h, int(d.Minutes())%60)
	}
	if m := int(d.Minutes()); m > 0 {
		return fmt.Sprintf("%dm %ds", m, int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}
