package root

import (
	"context"

	"github.com/spf13/cobra"

	"wristcomp/internal/tui"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the interactive device dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dev, warn, cleanup, err := openDevice(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.Run(dev, warn, cmd.OutOrStdout())
		},
	}

	return cmd
}
