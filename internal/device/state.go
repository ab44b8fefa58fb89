package device

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wristcomp/internal/storage"
)

// Settings is an opaque bag of named values. The core stores and persists
// it but never interprets it; unknown keys survive a round-trip verbatim.
type Settings map[string]any

// DefaultSettings returns the first-run settings.
func DefaultSettings() Settings {
	return Settings{
		"device_name":  "WristComp v1.0",
		"auto_save":    true,
		"compact_mode": false,
	}
}

// Device is the aggregate the store persists: stat ledger, inventory,
// settings and the last-updated timestamp. Every successful mutation runs
// through mutate, which stamps lastUpdated and saves synchronously before
// returning. A failed save surfaces as PersistenceError while the
// in-memory mutation stays applied.
type Device struct {
	ctx   context.Context
	store storage.Store
	now   func() time.Time

	ledger      *Ledger
	inventory   *Inventory
	settings    Settings
	lastUpdated time.Time
}

// New constructs a device at first-run defaults, without saving.
func New(ctx context.Context, store storage.Store) *Device {
	return &Device{
		ctx:       ctx,
		store:     store,
		now:       time.Now,
		ledger:    NewLedger(),
		inventory: NewInventory(),
		settings:  DefaultSettings(),
	}
}

// Load reads the device state from the store. A missing document yields a
// fresh default device. A corrupt document also yields defaults, plus a
// warning wrapping ErrCorruptState for the presentation layer to show;
// the device is usable either way. Only genuine I/O failures return a nil
// device.
func Load(ctx context.Context, store storage.Store) (*Device, error) {
	doc, err := store.Load(ctx)
	switch {
	case err == nil:
		return fromDocument(ctx, store, doc), nil
	case errors.Is(err, storage.ErrNoDocument):
		return New(ctx, store), nil
	case errors.Is(err, storage.ErrCorruptDocument):
		warn := fmt.Errorf("%w: starting from defaults: %v", ErrCorruptState, err)
		return New(ctx, store), warn
	default:
		return nil, fmt.Errorf("load device state: %w", err)
	}
}

func fromDocument(ctx context.Context, store storage.Store, doc *storage.Document) *Device {
	stats := make(map[Stat]int, len(doc.Stats))
	for name, value := range doc.Stats {
		stats[Stat(name)] = value
	}
	settings := DefaultSettings()
	if doc.Settings != nil {
		settings = Settings(doc.Settings)
	}
	return &Device{
		ctx:         ctx,
		store:       store,
		now:         time.Now,
		ledger:      NewLedgerFrom(stats),
		inventory:   NewInventoryFrom(doc.Inventory),
		settings:    settings,
		lastUpdated: doc.LastUpdated,
	}
}

func (d *Device) document() *storage.Document {
	stats := make(map[string]int, len(Stats))
	for _, s := range Stats {
		stats[string(s)] = d.ledger.Get(s)
	}
	return &storage.Document{
		Stats:       stats,
		Inventory:   d.inventory.Quantities(),
		Settings:    map[string]any(d.settings),
		LastUpdated: d.lastUpdated,
	}
}

// mutate applies fn and, if it succeeds, stamps lastUpdated and saves.
// Rejected mutations trigger no save and leave lastUpdated untouched.
func (d *Device) mutate(fn func() error) error {
	if err := fn(); err != nil {
		return err
	}
	d.lastUpdated = d.now()
	if err := d.store.Save(d.ctx, d.document()); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

// Stat returns the current value of a stat.
func (d *Device) Stat(s Stat) int { return d.ledger.Get(s) }

// StatValues returns a copy of all stat values.
func (d *Device) StatValues() map[Stat]int { return d.ledger.Values() }

// ItemQuantity returns the held quantity of an item, zero if absent.
func (d *Device) ItemQuantity(name string) int { return d.inventory.Quantity(name) }

// Entries returns held items in catalog order.
func (d *Device) Entries() []Entry { return d.inventory.Entries() }

// Setting returns a settings value.
func (d *Device) Setting(key string) (any, bool) {
	v, ok := d.settings[key]
	return v, ok
}

// SettingsCopy returns a copy of the settings map.
func (d *Device) SettingsCopy() Settings {
	out := make(Settings, len(d.settings))
	for k, v := range d.settings {
		out[k] = v
	}
	return out
}

// LastUpdated returns the timestamp of the last persisted mutation.
func (d *Device) LastUpdated() time.Time { return d.lastUpdated }

// AdjustStat applies a clamped delta and persists.
func (d *Device) AdjustStat(s Stat, delta int) (int, error) {
	var value int
	err := d.mutate(func() error {
		value = d.ledger.Adjust(s, delta)
		return nil
	})
	return value, err
}

// SetStat stores a clamped absolute value and persists.
func (d *Device) SetStat(s Stat, value int) (int, error) {
	var stored int
	err := d.mutate(func() error {
		stored = d.ledger.Set(s, value)
		return nil
	})
	return stored, err
}

// AddItem adds quantity of a catalog item and persists.
func (d *Device) AddItem(name string, qty int) error {
	return d.mutate(func() error {
		return d.inventory.Add(name, qty)
	})
}

// UseItem consumes one unit, applies its effects in declared order, and
// persists. The applied deltas are returned for display.
func (d *Device) UseItem(name string) ([]AppliedEffect, error) {
	var applied []AppliedEffect
	err := d.mutate(func() error {
		var useErr error
		applied, useErr = d.inventory.Use(name, d.ledger)
		return useErr
	})
	return applied, err
}

// DropItem discards qty units without applying effects and persists.
// qty zero means drop everything held.
func (d *Device) DropItem(name string, qty int) error {
	return d.mutate(func() error {
		if qty == 0 {
			return d.inventory.DropAll(name)
		}
		return d.inventory.Drop(name, qty)
	})
}

// SetSetting stores a settings value and persists.
func (d *Device) SetSetting(key string, value any) error {
	return d.mutate(func() error {
		d.settings[key] = value
		return nil
	})
}

// ResetStats restores every stat to factory defaults and persists.
func (d *Device) ResetStats() error {
	return d.mutate(func() error {
		d.ledger.ResetAll()
		return nil
	})
}

// ResetAll reinitializes the whole aggregate to first-run defaults and
// persists immediately.
func (d *Device) ResetAll() error {
	return d.mutate(func() error {
		d.ledger = NewLedger()
		d.inventory = NewInventory()
		d.settings = DefaultSettings()
		return nil
	})
}
