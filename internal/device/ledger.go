package device

// Ledger holds the current value of every stat. All mutations clamp into
// [StatMin, StatMax], so the ledger cannot fail or hold an out-of-range
// value. Unknown stats read as StatMin and are ignored on write.
type Ledger struct {
	values map[Stat]int
}

// NewLedger returns a ledger at factory defaults.
func NewLedger() *Ledger {
	l := &Ledger{values: make(map[Stat]int, len(Stats))}
	l.ResetAll()
	return l
}

// NewLedgerFrom returns a ledger seeded from stored values. Missing stats
// fall back to their defaults; stored values are clamped on the way in.
func NewLedgerFrom(values map[Stat]int) *Ledger {
	l := NewLedger()
	for _, s := range Stats {
		if v, ok := values[s]; ok {
			l.values[s] = clampStat(v)
		}
	}
	return l
}

// Get returns the current value of a stat.
func (l *Ledger) Get(s Stat) int {
	return l.values[s]
}

// Adjust applies a signed delta and returns the new clamped value.
func (l *Ledger) Adjust(s Stat, delta int) int {
	return l.Set(s, l.values[s]+delta)
}

// Set stores an absolute value, clamped, and returns what was stored.
func (l *Ledger) Set(s Stat, value int) int {
	if !s.IsValid() {
		return StatMin
	}
	v := clampStat(value)
	l.values[s] = v
	return v
}

// ResetAll restores every stat to its factory default.
func (l *Ledger) ResetAll() {
	for _, s := range Stats {
		l.values[s] = defaultStats[s]
	}
}

// Values returns a copy of the ledger keyed by stat.
func (l *Ledger) Values() map[Stat]int {
	out := make(map[Stat]int, len(Stats))
	for _, s := range Stats {
		out[s] = l.values[s]
	}
	return out
}
