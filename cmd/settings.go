package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quickquiz/internal/stats"
)

type toggle struct {
	get func(stats.Store, context.Context) (bool, error)
	set func(stats.Store, context.Context, bool) error
}

var toggles = map[string]toggle{
	"sound":     {get: stats.Store.SoundEnabled, set: stats.Store.SetSoundEnabled},
	"vibration": {get: stats.Store.VibrationEnabled, set: stats.Store.SetVibrationEnabled},
}

func newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "settings [sound|vibration] [on|off]",
		Short:     "Show or change feedback settings",
		Args:      cobra.MaximumNArgs(2),
		ValidArgs: []string{"sound", "vibration"},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{"sound", "vibration"}
			if len(args) > 0 {
				if _, ok := toggles[args[0]]; !ok {
					return fmt.Errorf("unknown setting %q (want sound or vibration)", args[0])
				}
				names = args[:1]
			}

			var value, set bool
			if len(args) == 2 {
				switch args[1] {
				case "on", "true", "1":
					value = true
				case "off", "false", "0":
				default:
					return fmt.Errorf("invalid value %q (want on or off)", args[1])
				}
				set = true
			}

			_, st, release, err := openStats(cmd)
			if err != nil {
				return err
			}
			defer release()

			ctx := cmd.Context()
			for _, name := range names {
				t := toggles[name]
				if set {
					if err := t.set(st, ctx, value); err != nil {
						return fmt.Errorf("save %s: %w", name, err)
					}
				}
				v, err := t.get(st, ctx)
				if err != nil {
					return fmt.Errorf("read %s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, onOff(v))
			}
			return nil
		},
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
