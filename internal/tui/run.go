package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"wristcomp/internal/device"
)

// Run opens the interactive device dashboard. warn, if non-nil, is shown
// on the status line at startup (e.g. a corrupt-state recovery notice).
func Run(dev *device.Device, warn error, out io.Writer) error {
	m := newDeviceModel(dev, warn)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
