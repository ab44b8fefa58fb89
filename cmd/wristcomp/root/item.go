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

func newItemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage the inventory",
	}
	cmd.AddCommand(newItemAddCmd(), newItemUseCmd(), newItemDropCmd(), newItemCatalogCmd())
	return cmd
}

// itemQtyArgs validates "<name> [qty]" argument lists.
func itemQtyArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("item name (and optional quantity) required")
	}
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return errors.New("quantity must be a positive integer")
		}
	}
	return nil
}

func newItemAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> [qty]",
		Short: "Add a catalog item to the inventory",
		Args:  itemQtyArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dev, warn, cleanup, err := openDevice(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printWarn(cmd.OutOrStdout(), warn)

			name := args[0]
			qty := 1
			if len(args) == 2 {
				qty, _ = strconv.Atoi(args[1])
			}
			if err := dev.AddItem(name, qty); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s x%d (now x%d)\n",
				ui.Good.Render(ui.IconBox), name, qty, dev.ItemQuantity(name))
			return nil
		},
	}
}

func newItemUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Use one unit of an item, applying its stat effects",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dev, warn, cleanup, err := openDevice(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			printWarn(out, warn)

			name := args[0]
			applied, err := dev.UseItem(name)
			if err != nil {
				var perr *device.PersistenceError
				if !errors.As(err, &perr) {
					return err
				}
				printWarn(out, err)
			}

			parts := make([]string, 0, len(applied))
			for _, a := range applied {
				parts = append(parts, fmt.Sprintf("%s %s %+d → %d%%", ui.StatIcon(a.Stat), a.Stat, a.Delta, a.Value))
			}
			line := ui.Good.Render("Used "+name)
			if len(parts) > 0 {
				line += ": " + strings.Join(parts, ", ")
			}
			fmt.Fprintln(out, line)
			return nil
		},
	}
}

func newItemDropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drop <name> [qty]",
		Short: "Discard items without using them (default: all held)",
		Args:  itemQtyArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			dev, warn, cleanup, err := openDevice(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printWarn(cmd.OutOrStdout(), warn)

			name := args[0]
			qty := 0 // zero = drop everything held
			if len(args) == 2 {
				qty, _ = strconv.Atoi(args[1])
			}
			if err := dev.DropItem(name, qty); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Dropped %s (now x%d)\n",
				ui.IconDrop, name, dev.ItemQuantity(name))
			return nil
		},
	}
}

func newItemCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every item the device knows about",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBox, "Item Catalog"))
			for _, def := range device.Catalog() {
				effects := make([]string, 0, len(def.Effects))
				for _, eff := range def.Effects {
					effects = append(effects, fmt.Sprintf("%s %+d", eff.Stat, eff.Delta))
				}
				detail := "no effects"
				if len(effects) > 0 {
					detail = strings.Join(effects, ", ")
				}
				if !def.Consumable {
					detail += " (reusable)"
				}
				fmt.Fprintf(out, "- %s %s %s\n",
					ui.Key.Render(def.Name),
					ui.Muted.Render("["+def.Category+"]"),
					ui.Muted.Render(detail))
			}
			return nil
		},
	}
}
