package device

// Stat identifies one of the four bounded vitals tracked by the device.
type Stat string

const (
	StatHydration Stat = "hydration"
	StatEnergy    Stat = "energy"
	StatUrination Stat = "urination"
	StatStress    Stat = "stress"
)

// Stats lists every stat in display order.
var Stats = []Stat{StatHydration, StatEnergy, StatUrination, StatStress}

func (s Stat) IsValid() bool {
	switch s {
	case StatHydration, StatEnergy, StatUrination, StatStress:
		return true
	default:
		return false
	}
}

// Stat bounds. Every mutation clamps into [StatMin, StatMax].
const (
	StatMin = 0
	StatMax = 100
)

// Factory defaults, matching a freshly provisioned device.
var defaultStats = map[Stat]int{
	StatHydration: 75,
	StatEnergy:    80,
	StatUrination: 30,
	StatStress:    25,
}

// DefaultStat returns the factory default for a stat.
func DefaultStat(s Stat) int {
	return defaultStats[s]
}

func clampStat(v int) int {
	if v < StatMin {
		return StatMin
	}
	if v > StatMax {
		return StatMax
	}
	return v
}
