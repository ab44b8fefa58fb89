package root

import (
	"context"
	"fmt"
	"io"

	"wristcomp/internal/config"
	"wristcomp/internal/device"
	"wristcomp/internal/storage"
	"wristcomp/internal/ui"
)

// openDevice loads configuration, opens the configured store and loads the
// device state. A corrupt-state recovery warning is returned separately so
// commands can surface it without failing.
func openDevice(ctx context.Context) (*device.Device, error, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	store, cleanup, err := storage.Open(ctx, cfg.Backend, cfg.DataPath)
	if err != nil {
		return nil, nil, nil, err
	}
	dev, warn := device.Load(ctx, store)
	if dev == nil {
		cleanup()
		return nil, nil, nil, warn
	}
	return dev, warn, cleanup, nil
}

func printWarn(out io.Writer, warn error) {
	if warn != nil {
		fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+warn.Error()))
	}
}
