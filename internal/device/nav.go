package device

// Screen identifies one of the device's fixed screens.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenStats
	ScreenInventory
	ScreenSettings
	// ScreenItemDetail is a modal overlay reachable from the inventory.
	ScreenItemDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenDashboard:
		return "dashboard"
	case ScreenStats:
		return "stats"
	case ScreenInventory:
		return "inventory"
	case ScreenSettings:
		return "settings"
	case ScreenItemDetail:
		return "item detail"
	default:
		return "unknown"
	}
}

// Intent is a normalized navigation action derived from a key press.
type Intent int

const (
	IntentDashboard Intent = iota
	IntentStats
	IntentInventory
	IntentSettings
	IntentItemDetail
	IntentBack
	IntentQuit
)

// Nav is the screen state machine. It starts on the dashboard, keeps a
// single-level previous-screen slot for Back, and honors Quit only from
// the dashboard. Intents with no rule for the current screen are no-ops.
// Nav is never persisted.
type Nav struct {
	current  Screen
	previous Screen
	done     bool
}

func NewNav() *Nav {
	return &Nav{current: ScreenDashboard, previous: ScreenDashboard}
}

// Current returns the active screen.
func (n *Nav) Current() Screen { return n.current }

// Done reports whether a quit intent has been honored.
func (n *Nav) Done() bool { return n.done }

// Apply runs one intent through the transition table and returns whether
// the active screen changed.
func (n *Nav) Apply(intent Intent) bool {
	switch intent {
	case IntentDashboard:
		return n.switchTo(ScreenDashboard)
	case IntentStats:
		return n.switchTo(ScreenStats)
	case IntentInventory:
		return n.switchTo(ScreenInventory)
	case IntentSettings:
		return n.switchTo(ScreenSettings)
	case IntentItemDetail:
		// The detail overlay only opens on top of the inventory.
		if n.current != ScreenInventory {
			return false
		}
		return n.switchTo(ScreenItemDetail)
	case IntentBack:
		if n.current == n.previous {
			return false
		}
		n.current = n.previous
		return true
	case IntentQuit:
		if n.current != ScreenDashboard {
			return false
		}
		n.done = true
		return false
	default:
		return false
	}
}

func (n *Nav) switchTo(target Screen) bool {
	if n.current == target {
		return false
	}
	n.previous = n.current
	n.current = target
	return true
}
