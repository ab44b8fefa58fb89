package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wristcomp/internal/device"
	"wristcomp/internal/ui"
)

const batteryLevel = 87 // cosmetic, like the hardware it pretends to be

type deviceModel struct {
	dev *device.Device
	nav *device.Nav

	width  int
	height int

	clock time.Time

	selectedStat int
	selectedItem int
	detailItem   string

	lastLog string
}

type tickMsg time.Time

func newDeviceModel(dev *device.Device, warn error) deviceModel {
	m := deviceModel{
		dev:     dev,
		nav:     device.NewNav(),
		clock:   time.Now(),
		lastLog: "Ready.",
	}
	if warn != nil {
		m.lastLog = ui.Warn.Render(ui.IconWarn + " " + warn.Error())
	}
	return m
}

func (m deviceModel) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m deviceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.clock = time.Time(msg)
		return m, tickCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m deviceModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if intent, ok := m.navIntent(key); ok {
		m.nav.Apply(intent)
		if m.nav.Done() {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.nav.Current() {
	case device.ScreenStats:
		return m.handleStatsKey(key)
	case device.ScreenInventory:
		return m.handleInventoryKey(key)
	case device.ScreenSettings:
		return m.handleSettingsKey(key)
	}
	return m, nil
}

// navIntent maps a key to a navigation intent for the current screen,
// mirroring the per-screen bindings: numbers switch screens, esc goes
// back, q quits (honored on the dashboard only).
func (m deviceModel) navIntent(key string) (device.Intent, bool) {
	switch key {
	case "esc":
		return device.IntentBack, true
	case "q":
		return device.IntentQuit, true
	}
	onDashboard := m.nav.Current() == device.ScreenDashboard
	switch key {
	case "1":
		if onDashboard {
			return device.IntentStats, true
		}
		return device.IntentDashboard, true
	case "2":
		if onDashboard || m.nav.Current() == device.ScreenStats {
			return device.IntentInventory, true
		}
		return device.IntentStats, true
	case "3":
		if m.nav.Current() == device.ScreenSettings {
			return device.IntentInventory, true
		}
		return device.IntentSettings, true
	case "b":
		if m.nav.Current() == device.ScreenItemDetail {
			return device.IntentBack, true
		}
	}
	return 0, false
}

func (m deviceModel) handleStatsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.selectedStat > 0 {
			m.selectedStat--
		}
	case "down", "j":
		if m.selectedStat < len(device.Stats)-1 {
			m.selectedStat++
		}
	case "+", "=", "right", "l":
		m = m.adjustSelectedStat(+5)
	case "-", "left", "h":
		m = m.adjustSelectedStat(-5)
	}
	return m, nil
}

func (m deviceModel) adjustSelectedStat(delta int) deviceModel {
	s := device.Stats[m.selectedStat]
	value, err := m.dev.AdjustStat(s, delta)
	if err != nil {
		m.lastLog = ui.Warn.Render(ui.IconWarn + " " + err.Error())
		return m
	}
	m.lastLog = fmt.Sprintf("%s %s → %d%%", ui.StatIcon(s), s, value)
	return m
}

func (m deviceModel) handleInventoryKey(key string) (tea.Model, tea.Cmd) {
	rows := device.Catalog()
	switch key {
	case "up", "k":
		if m.selectedItem > 0 {
			m.selectedItem--
		}
	case "down", "j":
		if m.selectedItem < len(rows)-1 {
			m.selectedItem++
		}
	case "enter":
		m.detailItem = rows[m.selectedItem].Name
		m.nav.Apply(device.IntentItemDetail)
	case "a":
		name := rows[m.selectedItem].Name
		if err := m.dev.AddItem(name, 1); err != nil {
			m.lastLog = m.renderErr(err)
		} else {
			m.lastLog = fmt.Sprintf("Added %s (x%d held)", name, m.dev.ItemQuantity(name))
		}
	case "u":
		name := rows[m.selectedItem].Name
		applied, err := m.dev.UseItem(name)
		if err != nil {
			m.lastLog = m.renderErr(err)
		} else {
			m.lastLog = "Used " + name + renderApplied(applied)
		}
	case "d":
		name := rows[m.selectedItem].Name
		if err := m.dev.DropItem(name, 1); err != nil {
			m.lastLog = m.renderErr(err)
		} else {
			m.lastLog = fmt.Sprintf("%s Dropped 1 %s", ui.IconDrop, name)
		}
	case "D":
		name := rows[m.selectedItem].Name
		if err := m.dev.DropItem(name, 0); err != nil {
			m.lastLog = m.renderErr(err)
		} else {
			m.lastLog = fmt.Sprintf("%s Dropped all %s", ui.IconDrop, name)
		}
	}
	return m, nil
}

func (m deviceModel) handleSettingsKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "r":
		if err := m.dev.ResetStats(); err != nil {
			m.lastLog = m.renderErr(err)
		} else {
			m.lastLog = ui.Good.Render("Stats reset to defaults")
		}
	case "R":
		if err := m.dev.ResetAll(); err != nil {
			m.lastLog = m.renderErr(err)
		} else {
			m.lastLog = ui.Good.Render("All data reset to defaults")
		}
	}
	return m, nil
}

// renderErr styles core errors for the status line. A persistence failure
// is a warning (the mutation is applied in memory); everything else is a
// plain rejection.
func (m deviceModel) renderErr(err error) string {
	var perr *device.PersistenceError
	if errors.As(err, &perr) {
		return ui.Warn.Render(ui.IconWarn + " " + err.Error())
	}
	return ui.Bad.Render(ui.IconError + " " + err.Error())
}

func renderApplied(applied []device.AppliedEffect) string {
	if len(applied) == 0 {
		return ""
	}
	parts := make([]string, 0, len(applied))
	for _, a := range applied {
		parts = append(parts, fmt.Sprintf("%s %+d → %d%%", ui.StatIcon(a.Stat), a.Delta, a.Value))
	}
	return ": " + strings.Join(parts, ", ")
}

func (m deviceModel) View() string {
	var body string
	switch m.nav.Current() {
	case device.ScreenDashboard:
		body = m.viewDashboard()
	case device.ScreenStats:
		body = m.viewStats()
	case device.ScreenInventory:
		body = m.viewInventory()
	case device.ScreenSettings:
		body = m.viewSettings()
	case device.ScreenItemDetail:
		body = m.viewItemDetail()
	}
	return ui.Panel.Render(m.viewHeader()+"\n\n"+body) + "\n" + m.lastLog + "\n"
}

func (m deviceModel) viewHeader() string {
	name := "WristComp"
	if v, ok := m.dev.Setting("device_name"); ok {
		name = fmt.Sprint(v)
	}
	bat := fmt.Sprintf("BAT [%s] %d%%", ui.Gauge(batteryLevel, 100, 10), batteryLevel)
	return fmt.Sprintf("%s  %s  %s",
		ui.Title.Render(name),
		ui.Muted.Render(m.clock.Format("15:04:05 2006-01-02")),
		ui.Good.Render(bat))
}

func (m deviceModel) viewDashboard() string {
	var b strings.Builder
	b.WriteString(ui.H2.Render("STATUS MONITOR") + "\n")
	for _, s := range device.Stats {
		b.WriteString(ui.StatBar(s, m.dev.Stat(s), 10) + "\n")
	}

	b.WriteString("\n" + ui.H2.Render("INVENTORY") + "\n")
	entries := m.dev.Entries()
	if len(entries) == 0 {
		b.WriteString(ui.Muted.Render("No items") + "\n")
	}
	for i, e := range entries {
		if i == 3 {
			b.WriteString(ui.Muted.Render(fmt.Sprintf("… and %d more", len(entries)-3)) + "\n")
			break
		}
		b.WriteString(fmt.Sprintf("• %s x%d\n", e.Def.Name, e.Quantity))
	}

	b.WriteString("\n" + ui.Dim.Render("NAV: [1]Stats [2]Inv [3]Set [Q]Quit"))
	return b.String()
}

func (m deviceModel) viewStats() string {
	var b strings.Builder
	b.WriteString(ui.H2.Render("◄ STATS ►") + "\n")
	for i, s := range device.Stats {
		cursor := "  "
		if i == m.selectedStat {
			cursor = ui.SelectedRow.Render("> ")
		}
		b.WriteString(cursor + ui.StatBar(s, m.dev.Stat(s), 20) + "\n")
	}
	b.WriteString("\n" + ui.Dim.Render("NAV: [j/k]Select [+/-]Adjust [Esc]Back [1]Home [2]Inv [3]Set"))
	return b.String()
}

func (m deviceModel) viewInventory() string {
	var b strings.Builder
	b.WriteString(ui.H2.Render("◄ INVENTORY ►") + "\n")
	for i, def := range device.Catalog() {
		cursor := "  "
		line := fmt.Sprintf("%s [%s]", def.Name, def.Category)
		if qty := m.dev.ItemQuantity(def.Name); qty > 0 {
			line += fmt.Sprintf(" x%d", qty)
		} else {
			line = ui.Muted.Render(line + " —")
		}
		if i == m.selectedItem {
			cursor = ui.SelectedRow.Render("> ")
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n" + ui.Dim.Render("NAV: [a]Add [u]Use [d/D]Drop [Enter]View [Esc]Back [1]Home [2]Stats [3]Set"))
	return b.String()
}

func (m deviceModel) viewItemDetail() string {
	def, ok := device.LookupItem(m.detailItem)
	if !ok {
		return ui.Bad.Render("Item not found.") + "\n\n" + ui.Dim.Render("NAV: [B]Back [Esc]Back")
	}
	var b strings.Builder
	b.WriteString(ui.H2.Render("◄ ITEM DETAILS ►") + "\n")
	b.WriteString(ui.LabelValue("NAME", def.Name) + "\n")
	b.WriteString(ui.LabelValue("CATEGORY", def.Category) + "\n")
	b.WriteString(ui.LabelValue("QUANTITY", m.dev.ItemQuantity(def.Name)) + "\n")
	b.WriteString(ui.LabelValue("WEIGHT", fmt.Sprintf("%.2f kg", def.WeightKg)) + "\n")
	if len(def.Effects) > 0 {
		b.WriteString(ui.LabelValue("ON USE", "") + "\n")
		for _, eff := range def.Effects {
			b.WriteString(fmt.Sprintf("  %s %s %+d\n", ui.StatIcon(eff.Stat), eff.Stat, eff.Delta))
		}
	}
	if !def.Consumable {
		b.WriteString(ui.Muted.Render("Reusable (not consumed on use)") + "\n")
	}
	b.WriteString("\n" + ui.Dim.Render("NAV: [B]Back [Esc]Back"))
	return b.String()
}

func (m deviceModel) viewSettings() string {
	var b strings.Builder
	b.WriteString(ui.H2.Render("◄ SETTINGS ►") + "\n")
	b.WriteString(ui.H2.Render("DEVICE INFO") + "\n")
	settings := m.dev.SettingsCopy()
	b.WriteString(ui.LabelValue("Name", settings["device_name"]) + "\n")
	b.WriteString(ui.LabelValue("Auto-save", onOff(settings["auto_save"])) + "\n")
	b.WriteString(ui.LabelValue("Compact mode", onOff(settings["compact_mode"])) + "\n")
	b.WriteString(ui.LabelValue("Last updated", m.dev.LastUpdated().Format(time.RFC3339)) + "\n")
	b.WriteString("\n" + ui.H2.Render("DATA MANAGEMENT") + "\n")
	b.WriteString(ui.Warn.Render("[r] Reset stats") + "  " + ui.Bad.Render("[R] Reset all") + "\n")
	b.WriteString("\n" + ui.Dim.Render("NAV: [Esc]Back [1]Home [2]Stats [3]Inv"))
	return b.String()
}

func onOff(v any) string {
	if b, ok := v.(bool); ok && b {
		return "ON"
	}
	return "OFF"
}
