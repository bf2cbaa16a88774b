package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skilldrill/internal/app"
	"github.com/abhisek/skilldrill/internal/gateway"
	"github.com/abhisek/skilldrill/internal/poll"
	"github.com/abhisek/skilldrill/internal/store"
)

// runApp opens the journal, builds the platform client, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer st.Close()

	cfg := gateway.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("platform config: %w", err)
	}

	// The unauthorized hook fires on any 401. The foreground screens
	// surface their own auth errors; here it only has to stop the
	// background poller from hammering a dead credential.
	var badge *poll.Service
	client, err := gateway.NewClient(cfg, func() {
		if badge != nil {
			badge.Disable()
		}
	})
	if err != nil {
		return fmt.Errorf("platform client: %w", err)
	}

	// The poller stays on the raw client: a 10s cadence through the
	// call journal would swamp it, and the poller persists its own
	// snapshots.
	badge = poll.NewService(client, st.SnapshotRepo(), poll.DefaultConfig())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Seed from the last-good snapshot so the badge is not blank while
	// the first poll is in flight. A miss just means no badge yet.
	_ = badge.Seed(ctx)
	go badge.Run(ctx)

	return app.Run(app.Options{
		Gateway:   gateway.WithJournal(client, st.EventRepo()),
		EventRepo: st.EventRepo(),
		Badge:     badge,
	})
}
