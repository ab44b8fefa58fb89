package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wristcomp/internal/device"
)

// WristComp theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few icons.

const (
	IconWater   = "💧"
	IconBolt    = "⚡"
	IconToilet  = "🚻"
	IconStress  = "😰"
	IconBox     = "📦"
	IconGear    = "⚙️"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconSparkle = "✨"
	IconDrop    = "🗑️"
)

var (
	cPrimary = lipgloss.Color("42")  // green, retro terminal
	cAccent  = lipgloss.Color("220") // amber
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cWater   = lipgloss.Color("51")  // cyan
	cEnergy  = lipgloss.Color("226") // yellow
	cBladder = lipgloss.Color("33")  // blue
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cPrimary).Padding(0, 2)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
)

var statStyles = map[device.Stat]lipgloss.Style{
	device.StatHydration: lipgloss.NewStyle().Foreground(cWater),
	device.StatEnergy:    lipgloss.NewStyle().Foreground(cEnergy),
	device.StatUrination: lipgloss.NewStyle().Foreground(cBladder),
	device.StatStress:    lipgloss.NewStyle().Foreground(cBad),
}

var statIcons = map[device.Stat]string{
	device.StatHydration: IconWater,
	device.StatEnergy:    IconBolt,
	device.StatUrination: IconToilet,
	device.StatStress:    IconStress,
}

// StatIcon returns the icon for a stat.
func StatIcon(s device.Stat) string { return statIcons[s] }

// StatBar renders an icon, four-letter label, colored gauge and value,
// e.g. "💧 HYDR [████████░░] 75%".
func StatBar(s device.Stat, value int, width int) string {
	label := strings.ToUpper(string(s))
	if len(label) > 4 {
		label = label[:4]
	}
	bar := Gauge(value, device.StatMax, width)
	style, ok := statStyles[s]
	if !ok {
		style = Muted
	}
	return fmt.Sprintf("%s %s [%s] %d%%", statIcons[s], Key.Render(label), style.Render(bar), value)
}

// Gauge renders a filled/empty block bar for value out of total.
func Gauge(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 0 {
		width = 10
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}
