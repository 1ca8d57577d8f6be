package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickquiz/internal/stats"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show quiz statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, release, err := openStats(cmd)
			if err != nil {
				return err
			}
			defer release()

			sum, err := stats.Load(cmd.Context(), st)
			if err != nil {
				return fmt.Errorf("load statistics: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Best score:          %d%%\n", sum.BestScore)
			fmt.Fprintf(out, "Quizzes completed:   %d\n", sum.QuizzesCompleted)
			fmt.Fprintf(out, "Questions answered:  %d\n", sum.QuestionsAnswered)
			fmt.Fprintf(out, "Correct answers:     %d\n", sum.CorrectAnswers)
			fmt.Fprintf(out, "Overall accuracy:    %.1f%%\n", sum.Accuracy())
			return nil
		},
	}
}
