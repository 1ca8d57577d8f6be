package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/abhisek/quickquiz/internal/content"
)

const titleWidth = 32

// truncateTitle cuts title to width terminal cells and pads it to exactly
// that width.
func truncateTitle(title string, width int) string {
	if ansi.StringWidth(title) > width {
		title = ansi.Truncate(title, width, "...")
	}
	return title + strings.Repeat(" ", max(width-ansi.StringWidth(title), 0))
}

func newQuizzesCmd() *cobra.Command {
	quizzesCmd := &cobra.Command{
		Use:   "quizzes",
		Short: "List available quizzes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cmd, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-16s  %-32s  %9s  %s\n", "SLUG", "Title", "Questions", "Time")
			fmt.Fprintln(out, strings.Repeat("─", 70))

			for _, q := range catalog.All() {
				title := truncateTitle(q.Title, titleWidth)
				limit := "-"
				if m, ok := q.TimeLimit.Get(); ok {
					limit = fmt.Sprintf("%d min", m)
				}
				fmt.Fprintf(out, "%-16s  %s  %9d  %s\n", q.Slug, title, q.TotalQuestions(), limit)
			}

			fmt.Fprintf(out, "\n%d quizzes\n", len(catalog.All()))
			return nil
		},
	}

	quizzesCmd.AddCommand(&cobra.Command{
		Use:   "validate <file>...",
		Short: "Check quiz files for errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

			var errs []error
			for _, path := range args {
				q, err := content.LoadFile(path)
				if err != nil {
					fmt.Fprintf(out, "FAIL %s\n", path)
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(out, "ok   %s: %s (%d questions)\n", path, q.Title, q.TotalQuestions())
				for _, w := range content.Lint(q) {
					fmt.Fprintf(errOut, "warning: %s: %s\n", path, w)
				}
			}
			if len(errs) > 0 {
				return errors.Join(errs...)
			}
			return nil
		},
	})

	return quizzesCmd
}
