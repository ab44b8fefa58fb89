package storage

import "time"

// Document is the persisted device state. It is saved as a single unit
// after every mutation; all four stat keys are always present, inventory
// keys are a subset of the item catalog, and unknown settings keys are
// preserved verbatim for forward compatibility.
type Document struct {
	Stats       map[string]int `json:"stats"`
	Inventory   map[string]int `json:"inventory"`
	Settings    map[string]any `json:"settings"`
	LastUpdated time.Time      `json:"lastUpdated"`
}
