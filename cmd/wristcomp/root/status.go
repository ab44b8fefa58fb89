package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wristcomp/internal/device"
	"wristcomp/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show vitals, inventory and settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dev, warn, cleanup, err := openDevice(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			printWarn(out, warn)

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Device Status"))
			if !dev.LastUpdated().IsZero() {
				fmt.Fprintln(out, ui.LabelValue("Last updated", dev.LastUpdated().Format(time.RFC3339)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Vitals"))
			for _, s := range device.Stats {
				fmt.Fprintln(out, ui.StatBar(s, dev.Stat(s), 20))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconBox+" Inventory"))
			entries := dev.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
			}
			for _, e := range entries {
				fmt.Fprintf(out, "- %s %s x%d %s\n",
					e.Def.Name,
					ui.Muted.Render("["+e.Def.Category+"]"),
					e.Quantity,
					ui.Muted.Render(fmt.Sprintf("(%.2f kg)", float64(e.Quantity)*e.Def.WeightKg)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconGear+" Settings"))
			settings := dev.SettingsCopy()
			for _, key := range []string{"device_name", "auto_save", "compact_mode"} {
				if v, ok := settings[key]; ok {
					fmt.Fprintln(out, "- "+ui.LabelValue(key, v))
				}
			}

			return nil
		},
	}

	return cmd
}
