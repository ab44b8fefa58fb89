package device

import (
	"errors"
	"fmt"
)

// Sentinel errors for the inventory taxonomy. The typed errors below wrap
// these so callers can branch with errors.Is without losing the item name.
var (
	ErrUnknownItem          = errors.New("unknown item")
	ErrItemNotFound         = errors.New("item not in inventory")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	ErrCorruptState         = errors.New("stored state is corrupt")
)

// ItemError reports an inventory operation rejected for a specific item.
// The operation made no state change and triggered no save.
type ItemError struct {
	Item string
	Err  error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Item)
}

func (e *ItemError) Unwrap() error { return e.Err }

// PersistenceError reports a save failure after a successful in-memory
// mutation. The mutation stays applied; on-disk state may lag until the
// next successful save.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("state changed but save failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
