package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshtsang/fopo/internal/app"
	"github.com/joshtsang/fopo/internal/insight"
	"github.com/joshtsang/fopo/internal/store"
	"github.com/joshtsang/fopo/internal/submit"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	client := submit.NewClient(submit.ConfigFromEnv().Endpoint)
	opts := app.Options{
		Pipeline: submit.NewPipeline(client, st.ResultRepo(), version),
	}

	// No provider configured just hides the reflection option.
	if provider, err := insight.NewProviderFromEnv(ctx); err == nil {
		opts.Insight = insight.NewService(provider)
	}

	return app.Run(opts)
}
