package catalog

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
)

// Load stages reported by LoadError
const (
	StageFetch  = "fetch"
	StageDecode = "decode"
	StageBuild  = "build"
)

// LoadError is returned when the snapshot could not be fetched, decoded or
// indexed. A Loader keeps returning the same LoadError until the process
// restarts.
type LoadError struct {
	Stage  string
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("catalog load failed during %s of %s: %v", e.Stage, e.Source, e.Err)
	}
	return fmt.Sprintf("catalog load failed during %s: %v", e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SlotConflictError is returned by LookupEquipmentSpec when a resolved item
// has no unoccupied eligible slot
type SlotConflictError struct {
	ItemID int32
	// Index is the position of the offending spec in the input
	Index int
	// Slots are the item's eligible slots, all already taken. Empty when the
	// item cannot be equipped anywhere.
	Slots []items.ItemSlot
}

func (e *SlotConflictError) Error() string {
	if len(e.Slots) == 0 {
		return fmt.Sprintf("item %d at position %d has no equippable slot", e.ItemID, e.Index)
	}
	names := make([]string, len(e.Slots))
	for i, s := range e.Slots {
		names[i] = s.String()
	}
	return fmt.Sprintf("no slots left to equip item %d at position %d: %s occupied",
		e.ItemID, e.Index, strings.Join(names, ", "))
}

// DuplicateID records an id seen more than once while building a catalog.
// The later entry replaced the earlier one.
type DuplicateID struct {
	Kind string `json:"kind"`
	ID   int32  `json:"id"`
}
