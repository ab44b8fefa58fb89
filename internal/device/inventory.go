package device

// Entry is one held item with its quantity.
type Entry struct {
	Def      *ItemDefinition
	Quantity int
}

// AppliedEffect records one ledger delta applied by using an item.
type AppliedEffect struct {
	Stat  Stat
	Delta int
	Value int // ledger value after clamping
}

// Inventory maps catalog item names to held quantities. Quantities are
// never negative; an entry is pruned the moment it reaches zero, so a
// used-up item is indistinguishable from one never held.
type Inventory struct {
	quantities map[string]int
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{quantities: map[string]int{}}
}

// NewInventoryFrom seeds an inventory from stored quantities. Names no
// longer in the catalog and non-positive quantities are dropped.
func NewInventoryFrom(quantities map[string]int) *Inventory {
	inv := NewInventory()
	for name, qty := range quantities {
		if _, ok := LookupItem(name); !ok {
			continue
		}
		if qty > 0 {
			inv.quantities[name] = qty
		}
	}
	return inv
}

// Quantity returns the held quantity, zero if absent.
func (inv *Inventory) Quantity(name string) int {
	return inv.quantities[name]
}

// Add increments the held quantity, creating the entry if absent.
// Names outside the catalog are rejected with ErrUnknownItem.
func (inv *Inventory) Add(name string, qty int) error {
	if qty <= 0 {
		return &ItemError{Item: name, Err: ErrInsufficientQuantity}
	}
	if _, ok := LookupItem(name); !ok {
		return &ItemError{Item: name, Err: ErrUnknownItem}
	}
	inv.quantities[name] += qty
	return nil
}

// Use consumes one unit of an item, applying its effects to the ledger in
// declared order. Non-consumable items apply effects without losing a
// unit. Returns the applied deltas with the resulting ledger values.
func (inv *Inventory) Use(name string, ledger *Ledger) ([]AppliedEffect, error) {
	if inv.quantities[name] <= 0 {
		return nil, &ItemError{Item: name, Err: ErrItemNotFound}
	}
	def, ok := LookupItem(name)
	if !ok {
		return nil, &ItemError{Item: name, Err: ErrUnknownItem}
	}

	applied := make([]AppliedEffect, 0, len(def.Effects))
	for _, eff := range def.Effects {
		v := ledger.Adjust(eff.Stat, eff.Delta)
		applied = append(applied, AppliedEffect{Stat: eff.Stat, Delta: eff.Delta, Value: v})
	}

	if def.Consumable {
		inv.remove(name, 1)
	}
	return applied, nil
}

// Drop discards units without applying effects. qty must not exceed the
// held quantity.
func (inv *Inventory) Drop(name string, qty int) error {
	held := inv.quantities[name]
	if held <= 0 {
		return &ItemError{Item: name, Err: ErrItemNotFound}
	}
	if qty <= 0 || qty > held {
		return &ItemError{Item: name, Err: ErrInsufficientQuantity}
	}
	inv.remove(name, qty)
	return nil
}

// DropAll discards every held unit of an item.
func (inv *Inventory) DropAll(name string) error {
	held := inv.quantities[name]
	if held <= 0 {
		return &ItemError{Item: name, Err: ErrItemNotFound}
	}
	return inv.Drop(name, held)
}

func (inv *Inventory) remove(name string, qty int) {
	left := inv.quantities[name] - qty
	if left <= 0 {
		delete(inv.quantities, name)
		return
	}
	inv.quantities[name] = left
}

// Entries returns held items in catalog order for stable display.
func (inv *Inventory) Entries() []Entry {
	var out []Entry
	for i := range catalog {
		def := &catalog[i]
		if qty := inv.quantities[def.Name]; qty > 0 {
			out = append(out, Entry{Def: def, Quantity: qty})
		}
	}
	return out
}

// Quantities returns a copy of the name -> quantity map.
func (inv *Inventory) Quantities() map[string]int {
	out := make(map[string]int, len(inv.quantities))
	for name, qty := range inv.quantities {
		out[name] = qty
	}
	return out
}
