package cmd

import (
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play [slug]",
		Short: "Start a quiz, skipping the welcome screen",
		Long:  "Start a quiz by slug, or open the quiz menu directly when no slug is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := launch{skipWelcome: true}
			if len(args) == 1 {
				l.slug = args[0]
			}
			return runApp(cmd, l)
		},
	}
}
