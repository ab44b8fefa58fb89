package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wristcomp/internal/device"
	"wristcomp/internal/ui"
)

func newStatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Read or change a vital stat",
	}
	cmd.AddCommand(newStatSetCmd(), newStatAdjustCmd())
	return cmd
}

func parseStatArg(arg string) (device.Stat, error) {
	s := device.Stat(strings.ToLower(strings.TrimSpace(arg)))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown stat %q (hydration|energy|urination|stress)", arg)
	}
	return s, nil
}

func statArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errors.New("stat name and value are required")
	}
	if _, err := parseStatArg(args[0]); err != nil {
		return err
	}
	if _, err := strconv.Atoi(args[1]); err != nil {
		return errors.New("value must be an integer")
	}
	return nil
}

func newStatSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <stat> <value>",
		Short: "Set a stat to an absolute value (clamped to 0-100)",
		Args:  statArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatMutation(cmd, args, func(dev *device.Device, s device.Stat, n int) (int, error) {
				return dev.SetStat(s, n)
			})
		},
	}
}

func newStatAdjustCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjust <stat> <delta>",
		Short: "Apply a signed delta to a stat (clamped to 0-100)",
		Args:  statArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatMutation(cmd, args, func(dev *device.Device, s device.Stat, n int) (int, error) {
				return dev.AdjustStat(s, n)
			})
		},
	}
}

func runStatMutation(cmd *cobra.Command, args []string, apply func(*device.Device, device.Stat, int) (int, error)) error {
	ctx := context.Background()
	dev, warn, cleanup, err := openDevice(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	printWarn(out, warn)

	s, _ := parseStatArg(args[0])
	n, _ := strconv.Atoi(args[1])
	value, err := apply(dev, s, n)
	if err != nil {
		// The stat is changed in memory even if the save failed.
		printWarn(out, err)
	}
	fmt.Fprintln(out, ui.StatBar(s, value, 20))
	return nil
}
