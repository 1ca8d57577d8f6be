package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickquiz/internal/app"
)

// launch selects where the TUI starts.
type launch struct {
	slug        string
	skipWelcome bool
}

// runApp opens the statistics store, loads quizzes, and launches the TUI.
func runApp(cmd *cobra.Command, l launch) error {
	cfg, st, release, err := openStats(cmd)
	if err != nil {
		return err
	}
	defer release()

	catalog, err := loadCatalog(cmd, cfg)
	if err != nil {
		return err
	}

	opts := app.Options{
		Stats:       st,
		Catalog:     catalog,
		Bell:        cmd.OutOrStdout(),
		SkipWelcome: l.skipWelcome,
	}
	if l.slug != "" {
		q, err := catalog.Get(l.slug)
		if err != nil {
			return fmt.Errorf("%w (run 'quickquiz quizzes' to list them)", err)
		}
		opts.Start = q
	}

	return app.Run(opts)
}
