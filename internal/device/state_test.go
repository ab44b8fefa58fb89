package device

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"wristcomp/internal/storage"
)

// memStore is an in-memory Store that counts saves and can be told to
// fail them.
type memStore struct {
	doc      *storage.Document
	saves    int
	failSave error
}

func (s *memStore) Load(_ context.Context) (*storage.Document, error) {
	if s.doc == nil {
		return nil, storage.ErrNoDocument
	}
	return s.doc, nil
}

func (s *memStore) Save(_ context.Context, doc *storage.Document) error {
	s.saves++
	if s.failSave != nil {
		return s.failSave
	}
	s.doc = doc
	return nil
}

func newTestDevice(t *testing.T) (*Device, *memStore) {
	t.Helper()
	store := &memStore{}
	dev, warn := Load(context.Background(), store)
	if warn != nil {
		t.Fatalf("load fresh device: %v", warn)
	}
	return dev, store
}

func TestLoadFirstRunDefaults(t *testing.T) {
	dev, store := newTestDevice(t)
	if store.saves != 0 {
		t.Fatalf("plain load saved %d times", store.saves)
	}
	for _, s := range Stats {
		if got := dev.Stat(s); got != DefaultStat(s) {
			t.Fatalf("first-run %s=%d, want %d", s, got, DefaultStat(s))
		}
	}
	if len(dev.Entries()) != 0 {
		t.Fatalf("first-run inventory not empty: %v", dev.Entries())
	}
	if name, _ := dev.Setting("device_name"); name != "WristComp v1.0" {
		t.Fatalf("device_name=%v", name)
	}
}

func TestMutationSavesAndStampsLastUpdated(t *testing.T) {
	dev, store := newTestDevice(t)

	fixed := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	dev.now = func() time.Time { return fixed }

	value, err := dev.AdjustStat(StatHydration, -10)
	if err != nil {
		t.Fatalf("AdjustStat: %v", err)
	}
	if value != 65 {
		t.Fatalf("value=%d, want 65", value)
	}
	if store.saves != 1 {
		t.Fatalf("saves=%d, want 1", store.saves)
	}
	if !dev.LastUpdated().Equal(fixed) {
		t.Fatalf("lastUpdated=%v, want %v", dev.LastUpdated(), fixed)
	}
	if store.doc.Stats["hydration"] != 65 {
		t.Fatalf("persisted hydration=%d, want 65", store.doc.Stats["hydration"])
	}
	if !store.doc.LastUpdated.Equal(fixed) {
		t.Fatalf("persisted lastUpdated=%v", store.doc.LastUpdated)
	}
}

func TestFailedUseTriggersNoSave(t *testing.T) {
	dev, store := newTestDevice(t)
	before := dev.LastUpdated()

	_, err := dev.UseItem("Medkit")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("UseItem absent: err=%v, want ErrItemNotFound", err)
	}
	if store.saves != 0 {
		t.Fatalf("failed use saved %d times, want 0", store.saves)
	}
	if !dev.LastUpdated().Equal(before) {
		t.Fatalf("failed use stamped lastUpdated")
	}
	for _, s := range Stats {
		if got := dev.Stat(s); got != DefaultStat(s) {
			t.Fatalf("failed use changed %s to %d", s, got)
		}
	}
}

func TestSaveFailureKeepsMutationApplied(t *testing.T) {
	dev, store := newTestDevice(t)
	store.failSave = errors.New("disk full")

	value, err := dev.SetStat(StatEnergy, 10)
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("err=%v, want PersistenceError", err)
	}
	if value != 10 {
		t.Fatalf("value=%d, want 10", value)
	}
	// No rollback: the in-memory mutation stays applied.
	if got := dev.Stat(StatEnergy); got != 10 {
		t.Fatalf("energy=%d after failed save, want 10", got)
	}

	// The next successful save catches the store up.
	store.failSave = nil
	if _, err := dev.AdjustStat(StatEnergy, 5); err != nil {
		t.Fatalf("AdjustStat after recovery: %v", err)
	}
	if store.doc.Stats["energy"] != 15 {
		t.Fatalf("persisted energy=%d, want 15", store.doc.Stats["energy"])
	}
}

func TestUseItemScenarioWaterFlask(t *testing.T) {
	dev, store := newTestDevice(t)
	if _, err := dev.SetStat(StatHydration, 50); err != nil {
		t.Fatalf("SetStat: %v", err)
	}
	if err := dev.AddItem("Water Flask", 2); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	applied, err := dev.UseItem("Water Flask")
	if err != nil {
		t.Fatalf("UseItem: %v", err)
	}
	if dev.Stat(StatHydration) != 75 {
		t.Fatalf("hydration=%d, want 75", dev.Stat(StatHydration))
	}
	if dev.Stat(StatUrination) != DefaultStat(StatUrination)+10 {
		t.Fatalf("urination=%d, want %d", dev.Stat(StatUrination), DefaultStat(StatUrination)+10)
	}
	if dev.ItemQuantity("Water Flask") != 1 {
		t.Fatalf("quantity=%d, want 1", dev.ItemQuantity("Water Flask"))
	}
	if len(applied) != 2 {
		t.Fatalf("applied=%v, want 2 effects", applied)
	}
	if store.doc.Inventory["Water Flask"] != 1 {
		t.Fatalf("persisted quantity=%d, want 1", store.doc.Inventory["Water Flask"])
	}
}

func TestResetStats(t *testing.T) {
	dev, store := newTestDevice(t)
	if _, err := dev.SetStat(StatStress, 99); err != nil {
		t.Fatalf("SetStat: %v", err)
	}
	if err := dev.AddItem("Coffee", 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if err := dev.ResetStats(); err != nil {
		t.Fatalf("ResetStats: %v", err)
	}
	if got := dev.Stat(StatStress); got != DefaultStat(StatStress) {
		t.Fatalf("stress=%d, want default %d", got, DefaultStat(StatStress))
	}
	// Inventory survives a stats-only reset.
	if dev.ItemQuantity("Coffee") != 1 {
		t.Fatalf("stats reset touched inventory")
	}
	if store.doc.Stats["stress"] != DefaultStat(StatStress) {
		t.Fatalf("persisted stress=%d", store.doc.Stats["stress"])
	}
}

func TestResetAll(t *testing.T) {
	dev, store := newTestDevice(t)
	if _, err := dev.SetStat(StatHydration, 1); err != nil {
		t.Fatalf("SetStat: %v", err)
	}
	if err := dev.AddItem("Energy Bar", 5); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := dev.SetSetting("device_name", "Scratched WristComp"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}

	if err := dev.ResetAll(); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}
	for _, s := range Stats {
		if got := dev.Stat(s); got != DefaultStat(s) {
			t.Fatalf("after reset %s=%d, want %d", s, got, DefaultStat(s))
		}
	}
	if len(dev.Entries()) != 0 {
		t.Fatalf("after reset inventory=%v, want empty", dev.Entries())
	}
	if name, _ := dev.Setting("device_name"); name != "WristComp v1.0" {
		t.Fatalf("after reset device_name=%v", name)
	}
	if len(store.doc.Inventory) != 0 {
		t.Fatalf("persisted inventory=%v, want empty", store.doc.Inventory)
	}
}

func TestRoundTripThroughFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "watch.json")
	store := storage.NewFileStore(path)

	dev, warn := Load(ctx, store)
	if warn != nil {
		t.Fatalf("load: %v", warn)
	}
	if _, err := dev.SetStat(StatEnergy, 42); err != nil {
		t.Fatalf("SetStat: %v", err)
	}
	if err := dev.AddItem("Ration Pack", 3); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := dev.AddItem("Medkit", 1); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if _, err := dev.UseItem("Medkit"); err != nil {
		t.Fatalf("UseItem: %v", err)
	}
	if err := dev.SetSetting("theme", "amber"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}

	loaded, warn := Load(ctx, store)
	if warn != nil {
		t.Fatalf("reload: %v", warn)
	}
	for _, s := range Stats {
		if loaded.Stat(s) != dev.Stat(s) {
			t.Fatalf("round-trip %s=%d, want %d", s, loaded.Stat(s), dev.Stat(s))
		}
	}
	if got := loaded.ItemQuantity("Ration Pack"); got != 3 {
		t.Fatalf("round-trip Ration Pack=%d, want 3", got)
	}
	// The used-up Medkit was pruned and stays absent after the round-trip.
	if got := loaded.ItemQuantity("Medkit"); got != 0 {
		t.Fatalf("round-trip Medkit=%d, want 0", got)
	}
	if v, _ := loaded.Setting("theme"); v != "amber" {
		t.Fatalf("round-trip theme=%v, want amber", v)
	}
	if !loaded.LastUpdated().Equal(dev.LastUpdated()) {
		t.Fatalf("round-trip lastUpdated=%v, want %v", loaded.LastUpdated(), dev.LastUpdated())
	}
}

func TestLoadCorruptDocumentFallsBackWithWarning(t *testing.T) {
	ctx := context.Background()
	store := &corruptStore{}

	dev, warn := Load(ctx, store)
	if dev == nil {
		t.Fatalf("corrupt load returned no device")
	}
	if !errors.Is(warn, ErrCorruptState) {
		t.Fatalf("warn=%v, want ErrCorruptState", warn)
	}
	for _, s := range Stats {
		if got := dev.Stat(s); got != DefaultStat(s) {
			t.Fatalf("fallback %s=%d, want default", s, got)
		}
	}
}

type corruptStore struct{ memStore }

func (s *corruptStore) Load(_ context.Context) (*storage.Document, error) {
	return nil, storage.ErrCorruptDocument
}

func TestSettingsUnknownKeysPreserved(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "watch.json")
	store := storage.NewFileStore(path)

	dev, _ := Load(ctx, store)
	if err := dev.SetSetting("future_flag", map[string]any{"nested": true}); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if _, err := dev.AdjustStat(StatEnergy, -1); err != nil {
		t.Fatalf("AdjustStat: %v", err)
	}

	loaded, _ := Load(ctx, store)
	v, ok := loaded.Setting("future_flag")
	if !ok {
		t.Fatalf("unknown settings key dropped")
	}
	nested, ok := v.(map[string]any)
	if !ok || nested["nested"] != true {
		t.Fatalf("future_flag=%v, want nested map", v)
	}
}
