package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickquiz/internal/config"
	"github.com/abhisek/quickquiz/internal/content"
	"github.com/abhisek/quickquiz/internal/stats"
)

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quickquiz",
		Short: "Terminal trivia quiz",
		Long:  "QuickQuiz: answer multiple-choice questions, get a score and keep track of your best.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, launch{})
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides QUICKQUIZ_DB env var)")
	flags.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/quickquiz/config.yaml)")
	flags.String("quiz-dir", "", "Directory of extra quiz YAML files (overrides QUICKQUIZ_QUIZ_DIR env var)")
	flags.Bool("ephemeral", false, "Keep statistics in memory for this run only")

	rootCmd.AddCommand(
		newPlayCmd(),
		newQuizzesCmd(),
		newStatsCmd(),
		newResetCmd(),
		newSettingsCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// resolveConfig loads the config file and environment, then applies the
// persistent flags, which win over both.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Resolve(path)
	if err != nil {
		return cfg, err
	}

	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if d, _ := cmd.Flags().GetString("quiz-dir"); d != "" {
		cfg.QuizDir = d
	}
	if e, _ := cmd.Flags().GetBool("ephemeral"); e {
		cfg.Stats.Backend = config.BackendMemory
	}
	return cfg, cfg.Validate()
}

// openStats resolves the config and opens the statistics backend. The
// caller must call the returned release func.
func openStats(cmd *cobra.Command) (config.Config, stats.Store, func() error, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return cfg, nil, nil, err
	}
	st, release, err := stats.Open(cmd.Context(), cfg)
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("open statistics: %w", err)
	}
	return cfg, st, release, nil
}

// loadCatalog loads built-in and user quizzes. Problems with user quizzes
// are printed as warnings; only a broken built-in set is fatal.
func loadCatalog(cmd *cobra.Command, cfg config.Config) (*content.Catalog, error) {
	catalog, err := content.Load(cmd.Context(), cfg.QuizDir)
	if catalog == nil {
		return nil, err
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	return catalog, nil
}
