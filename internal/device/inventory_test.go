package device

import (
	"errors"
	"testing"
)

func TestInventoryAddUnknownItem(t *testing.T) {
	inv := NewInventory()
	err := inv.Add("Plasma Rifle", 1)
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("Add unknown: err=%v, want ErrUnknownItem", err)
	}
	if len(inv.Quantities()) != 0 {
		t.Fatalf("rejected add changed inventory: %v", inv.Quantities())
	}
}

func TestInventoryAddAccumulates(t *testing.T) {
	inv := NewInventory()
	if err := inv.Add("Water Flask", 2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := inv.Add("Water Flask", 3); err != nil {
		t.Fatalf("Add again: %v", err)
	}
	if got := inv.Quantity("Water Flask"); got != 5 {
		t.Fatalf("quantity=%d, want 5", got)
	}
}

func TestUseAppliesEffectsInDeclaredOrder(t *testing.T) {
	inv := NewInventory()
	ledger := NewLedger()
	ledger.Set(StatHydration, 50)
	ledger.Set(StatUrination, 30)

	if err := inv.Add("Water Flask", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	applied, err := inv.Use("Water Flask", ledger)
	if err != nil {
		t.Fatalf("Use: %v", err)
	}

	if len(applied) != 2 {
		t.Fatalf("applied %d effects, want 2", len(applied))
	}
	if applied[0].Stat != StatHydration || applied[0].Delta != 25 || applied[0].Value != 75 {
		t.Fatalf("first effect=%+v, want hydration +25 → 75", applied[0])
	}
	if applied[1].Stat != StatUrination || applied[1].Delta != 10 || applied[1].Value != 40 {
		t.Fatalf("second effect=%+v, want urination +10 → 40", applied[1])
	}
	if got := ledger.Get(StatHydration); got != 75 {
		t.Fatalf("hydration=%d, want 75", got)
	}
	if got := ledger.Get(StatUrination); got != 40 {
		t.Fatalf("urination=%d, want 40", got)
	}
	// The flask is consumable and the last one was used, so it is pruned.
	if got := inv.Quantity("Water Flask"); got != 0 {
		t.Fatalf("quantity=%d, want 0", got)
	}
	if _, held := inv.Quantities()["Water Flask"]; held {
		t.Fatalf("used-up item not pruned")
	}
}

func TestUseClampsAtMax(t *testing.T) {
	inv := NewInventory()
	ledger := NewLedger()
	ledger.Set(StatEnergy, 95)

	if err := inv.Add("Energy Bar", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	applied, err := inv.Use("Energy Bar", ledger)
	if err != nil {
		t.Fatalf("Use: %v", err)
	}
	if applied[0].Value != 100 {
		t.Fatalf("applied value=%d, want 100 (clamped)", applied[0].Value)
	}
	if got := ledger.Get(StatEnergy); got != 100 {
		t.Fatalf("energy=%d, want 100 (clamped, not 115)", got)
	}
}

func TestUseAbsentItem(t *testing.T) {
	inv := NewInventory()
	ledger := NewLedger()
	before := ledger.Values()

	_, err := inv.Use("Medkit", ledger)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("Use absent: err=%v, want ErrItemNotFound", err)
	}
	var ierr *ItemError
	if !errors.As(err, &ierr) || ierr.Item != "Medkit" {
		t.Fatalf("err=%v, want ItemError for Medkit", err)
	}
	for s, v := range ledger.Values() {
		if before[s] != v {
			t.Fatalf("failed use changed %s: %d → %d", s, before[s], v)
		}
	}
}

func TestUseNonConsumableKeepsQuantity(t *testing.T) {
	inv := NewInventory()
	ledger := NewLedger()
	ledger.Set(StatStress, 50)

	if err := inv.Add("Stress Ball", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := inv.Use("Stress Ball", ledger); err != nil {
		t.Fatalf("Use: %v", err)
	}
	if got := inv.Quantity("Stress Ball"); got != 1 {
		t.Fatalf("non-consumable quantity=%d, want 1", got)
	}
	if got := ledger.Get(StatStress); got != 40 {
		t.Fatalf("stress=%d, want 40", got)
	}
}

func TestDropErrors(t *testing.T) {
	inv := NewInventory()

	if err := inv.Drop("Keys", 1); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("Drop absent: err=%v, want ErrItemNotFound", err)
	}

	if err := inv.Add("Keys", 2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := inv.Drop("Keys", 3); !errors.Is(err, ErrInsufficientQuantity) {
		t.Fatalf("Drop too many: err=%v, want ErrInsufficientQuantity", err)
	}
	if got := inv.Quantity("Keys"); got != 2 {
		t.Fatalf("rejected drop changed quantity: %d", got)
	}
}

func TestAddThenDropIsIdempotentAndEffectFree(t *testing.T) {
	inv := NewInventory()
	ledger := NewLedger()
	before := ledger.Values()

	if err := inv.Add("Medkit", 3); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := inv.Drop("Medkit", 3); err != nil {
		t.Fatalf("Drop: %v", err)
	}

	if got := inv.Quantity("Medkit"); got != 0 {
		t.Fatalf("quantity=%d, want 0", got)
	}
	if _, held := inv.Quantities()["Medkit"]; held {
		t.Fatalf("fully dropped item not pruned")
	}
	for s, v := range ledger.Values() {
		if before[s] != v {
			t.Fatalf("drop applied effects: %s %d → %d", s, before[s], v)
		}
	}
}

func TestDropAll(t *testing.T) {
	inv := NewInventory()
	if err := inv.Add("Coffee", 4); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := inv.DropAll("Coffee"); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if got := inv.Quantity("Coffee"); got != 0 {
		t.Fatalf("quantity=%d, want 0", got)
	}
	if err := inv.DropAll("Coffee"); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("DropAll on empty: err=%v, want ErrItemNotFound", err)
	}
}

func TestEntriesFollowCatalogOrder(t *testing.T) {
	inv := NewInventory()
	for _, name := range []string{"Keys", "Water Flask", "Medkit"} {
		if err := inv.Add(name, 1); err != nil {
			t.Fatalf("Add %s: %v", name, err)
		}
	}
	entries := inv.Entries()
	want := []string{"Water Flask", "Medkit", "Keys"}
	if len(entries) != len(want) {
		t.Fatalf("entries=%d, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Def.Name != name {
			t.Fatalf("entries[%d]=%s, want %s", i, entries[i].Def.Name, name)
		}
	}
}

func TestNewInventoryFromDropsStrays(t *testing.T) {
	inv := NewInventoryFrom(map[string]int{
		"Water Flask":    2,
		"Deleted Gadget": 5, // no longer in the catalog
		"Medkit":         0, // zero entries are pruned on load
	})
	if got := inv.Quantity("Water Flask"); got != 2 {
		t.Fatalf("Water Flask=%d, want 2", got)
	}
	if len(inv.Quantities()) != 1 {
		t.Fatalf("quantities=%v, want only Water Flask", inv.Quantities())
	}
}
