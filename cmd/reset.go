package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear statistics and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), "Clear all statistics and settings? [y/N] ")
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(line)); a != "y" && a != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			_, st, release, err := openStats(cmd)
			if err != nil {
				return err
			}
			defer release()

			if err := st.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset statistics: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Statistics cleared.")
			return nil
		},
	}
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	return resetCmd
}
