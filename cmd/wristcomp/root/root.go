package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wristcomp/internal/ui"
)

const Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:           "wristcomp",
	Short:         "WristComp — wearable survival device dashboard",
	Long:          "WristComp is a single-user terminal dashboard simulating a wearable survival device: four bounded vitals, a quantity-based inventory with stat effects, and a state file saved after every change.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newRunCmd(),
		newStatusCmd(),
		newStatCmd(),
		newItemCmd(),
		newResetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
