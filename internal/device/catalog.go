package device

// Effect is one (stat, signed delta) pair applied when an item is used.
type Effect struct {
	Stat  Stat
	Delta int
}

// ItemDefinition is a static catalog entry. Definitions are immutable and
// built once at process start; only item names and quantities are ever
// persisted.
type ItemDefinition struct {
	Name       string
	Category   string
	WeightKg   float64
	Effects    []Effect // applied in declared order
	Consumable bool
}

// catalog lists every item the device knows about, in display order.
var catalog = []ItemDefinition{
	{
		Name:     "Water Flask",
		Category: "Drinks",
		WeightKg: 0.6,
		Effects: []Effect{
			{StatHydration, +25},
			{StatUrination, +10},
		},
		Consumable: true,
	},
	{
		Name:     "Energy Bar",
		Category: "Food",
		WeightKg: 0.1,
		Effects: []Effect{
			{StatEnergy, +20},
		},
		Consumable: true,
	},
	{
		Name:     "Ration Pack",
		Category: "Food",
		WeightKg: 0.4,
		Effects: []Effect{
			{StatEnergy, +15},
			{StatHydration, +5},
		},
		Consumable: true,
	},
	{
		Name:     "Coffee",
		Category: "Drinks",
		WeightKg: 0.3,
		Effects: []Effect{
			{StatEnergy, +15},
			{StatUrination, +10},
			{StatStress, +5},
		},
		Consumable: true,
	},
	{
		Name:     "Medkit",
		Category: "Medical",
		WeightKg: 0.5,
		Effects: []Effect{
			{StatStress, -30},
		},
		Consumable: true,
	},
	{
		Name:     "Stress Ball",
		Category: "Gear",
		WeightKg: 0.1,
		Effects: []Effect{
			{StatStress, -10},
		},
		Consumable: false,
	},
	{Name: "Phone", Category: "Electronics", WeightKg: 0.2},
	{Name: "Wallet", Category: "Essentials", WeightKg: 0.1},
	{Name: "Keys", Category: "Essentials", WeightKg: 0.05},
}

var catalogByName = func() map[string]*ItemDefinition {
	m := make(map[string]*ItemDefinition, len(catalog))
	for i := range catalog {
		m[catalog[i].Name] = &catalog[i]
	}
	return m
}()

// LookupItem returns the catalog entry for a name, if it exists.
func LookupItem(name string) (*ItemDefinition, bool) {
	def, ok := catalogByName[name]
	return def, ok
}

// Catalog returns every item definition in declaration order.
func Catalog() []ItemDefinition {
	out := make([]ItemDefinition, len(catalog))
	copy(out, catalog)
	return out
}
