package items

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EnchantRefKind says which of an enchant's identifiers a reference uses
type EnchantRefKind int32

// Enchant reference kinds
const (
	// EnchantRefAny matches effect id, item id or spell id, in that order
	EnchantRefAny EnchantRefKind = iota
	EnchantRefEffect
	EnchantRefItem
	EnchantRefSpell
)

var enchantRefKindNames = []string{
	"any",
	"effect",
	"item",
	"spell",
}

func (k EnchantRefKind) String() string { return enumName(enchantRefKindNames, int32(k)) }

// MarshalText implements encoding.TextMarshaler
func (k EnchantRefKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (k *EnchantRefKind) UnmarshalText(text []byte) error {
	for i, name := range enchantRefKindNames {
		if strings.EqualFold(string(text), name) {
			*k = EnchantRefKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown enchant reference kind %q", text)
}

// EnchantRef identifies an enchant by one of its ids. A zero ID means no enchant.
type EnchantRef struct {
	Kind EnchantRefKind `json:"kind,omitempty"`
	ID   int32          `json:"id,omitempty"`
}

// AnyEnchant builds the legacy reference where the id may be any of the three
func AnyEnchant(id int32) EnchantRef { return EnchantRef{Kind: EnchantRefAny, ID: id} }

// IsZero reports whether the reference names no enchant
func (r EnchantRef) IsZero() bool { return r.ID == 0 }

// Matches reports whether the enchant carries the referenced id
func (r EnchantRef) Matches(e *Enchant) bool {
	if e == nil || r.ID == 0 {
		return false
	}
	switch r.Kind {
	case EnchantRefEffect:
		return e.EffectID == r.ID
	case EnchantRefItem:
		return e.ItemID == r.ID
	case EnchantRefSpell:
		return e.SpellID == r.ID
	default:
		return e.EffectID == r.ID || e.ItemID == r.ID || e.SpellID == r.ID
	}
}

// ParseEnchantRef parses "55", "item:55", "spell:1234" or "effect:3789"
func ParseEnchantRef(s string) (EnchantRef, error) {
	var ref EnchantRef
	s = strings.TrimSpace(s)
	if s == "" {
		return ref, nil
	}
	idPart := s
	if kind, rest, ok := strings.Cut(s, ":"); ok {
		if err := ref.Kind.UnmarshalText([]byte(kind)); err != nil {
			return EnchantRef{}, err
		}
		idPart = rest
	}
	id, err := strconv.ParseInt(idPart, 10, 32)
	if err != nil {
		return EnchantRef{}, fmt.Errorf("invalid enchant id %q: %w", idPart, err)
	}
	ref.ID = int32(id)
	return ref, nil
}

// ItemSpec is a compact, id-only reference to an equipped item
type ItemSpec struct {
	ID      int32      `json:"id"`
	Enchant EnchantRef `json:"enchant,omitzero"`
	// Gems are positional; 0 is an empty socket
	Gems []int32 `json:"gems,omitempty"`
}

// EquipmentSpec is a list of item specs. Order does not imply slot.
type EquipmentSpec struct {
	Items []ItemSpec `json:"items"`
}

// EquippedItem is an item spec hydrated against a catalog
type EquippedItem struct {
	Item    *Item    `json:"item"`
	Enchant *Enchant `json:"enchant,omitempty"`
	// Gems keeps socket positions; a nil entry is an empty or unknown gem
	Gems []*Gem `json:"gems,omitempty"`
}

// Spec converts the equipped item back into its compact form. The enchant is
// referenced by effect id.
func (e *EquippedItem) Spec() ItemSpec {
	spec := ItemSpec{ID: e.Item.ID}
	if e.Enchant != nil {
		spec.Enchant = EnchantRef{Kind: EnchantRefEffect, ID: e.Enchant.EffectID}
	}
	if len(e.Gems) > 0 {
		spec.Gems = make([]int32, len(e.Gems))
		for i, gem := range e.Gems {
			if gem != nil {
				spec.Gems[i] = gem.ID
			}
		}
	}
	return spec
}

// Gear maps slots to equipped items. Absent keys are empty slots.
type Gear map[ItemSlot]*EquippedItem

// Get returns the item in a slot, or nil
func (g Gear) Get(slot ItemSlot) *EquippedItem {
	return g[slot]
}

// Len returns the number of occupied slots
func (g Gear) Len() int {
	n := 0
	for _, item := range g {
		if item != nil {
			n++
		}
	}
	return n
}

// Slots returns the occupied slots in paper-doll order
func (g Gear) Slots() []ItemSlot {
	slots := make([]ItemSlot, 0, len(g))
	for slot, item := range g {
		if item != nil {
			slots = append(slots, slot)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}

// Spec converts the gear back into an equipment spec in slot order
func (g Gear) Spec() EquipmentSpec {
	spec := EquipmentSpec{Items: make([]ItemSpec, 0, len(g))}
	for _, slot := range g.Slots() {
		spec.Items = append(spec.Items, g[slot].Spec())
	}
	return spec
}
