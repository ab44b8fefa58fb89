package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"wristcomp/internal/ui"
)

func newResetCmd() *cobra.Command {
	var stats bool
	var all bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset stats (--stats) or everything (--all) to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if stats == all {
				return errors.New("pass exactly one of --stats or --all")
			}

			ctx := context.Background()
			dev, warn, cleanup, err := openDevice(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			printWarn(out, warn)

			if all {
				if err := dev.ResetAll(); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Good.Render(ui.IconSparkle+" All data reset to defaults"))
				return nil
			}
			if err := dev.ResetStats(); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Good.Render(ui.IconSparkle+" Stats reset to defaults"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "Reset the four vitals to factory defaults")
	cmd.Flags().BoolVar(&all, "all", false, "Reset stats, inventory and settings")

	return cmd
}
