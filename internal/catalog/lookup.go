package catalog

import (
	"slices"

	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
)

// LookupItemSpec hydrates an item spec. It returns false only when the item id
// is unknown. An unresolvable enchant leaves Enchant nil. Gems keep their
// positions and unknown or empty gem ids become nil entries.
func (c *Catalog) LookupItemSpec(spec items.ItemSpec) (*items.EquippedItem, bool) {
	item, ok := c.items[spec.ID]
	if !ok {
		return nil, false
	}

	equipped := &items.EquippedItem{Item: item}
	if !spec.Enchant.IsZero() {
		equipped.Enchant = c.enchantForItem(item, spec.Enchant)
	}
	if len(spec.Gems) > 0 {
		equipped.Gems = make([]*items.Gem, len(spec.Gems))
		for i, id := range spec.Gems {
			equipped.Gems[i], _ = c.Gem(id)
		}
	}
	return equipped, true
}

// enchantForItem walks the item's eligible slots in order and returns the
// first enchant for one of them that the reference names
func (c *Catalog) enchantForItem(item *items.Item, ref items.EnchantRef) *items.Enchant {
	slots := c.itemSlots[item.ID]

	if ref.Kind == items.EnchantRefAny {
		for _, slot := range slots {
			for _, e := range c.enchantsBySlot[slot] {
				if ref.Matches(e) {
					return e
				}
			}
		}
		return nil
	}

	candidates := c.enchantsByKind[ref.Kind][ref.ID]
	for _, slot := range slots {
		for _, e := range candidates {
			if slices.Contains(c.enchantSlots[e], slot) {
				return e
			}
		}
	}
	return nil
}

// LookupEquipmentSpec resolves every spec in order and places each item in its
// first free eligible slot. Unknown item ids are skipped. If an item has no
// free slot the whole resolution fails with a *SlotConflictError.
func (c *Catalog) LookupEquipmentSpec(spec items.EquipmentSpec) (items.Gear, error) {
	gear := make(items.Gear, len(spec.Items))

	for i, itemSpec := range spec.Items {
		equipped, ok := c.LookupItemSpec(itemSpec)
		if !ok {
			continue
		}

		slots := c.itemSlots[equipped.Item.ID]
		placed := false
		for _, slot := range slots {
			if _, taken := gear[slot]; !taken {
				gear[slot] = equipped
				placed = true
				break
			}
		}
		if !placed {
			return nil, &SlotConflictError{
				ItemID: itemSpec.ID,
				Index:  i,
				Slots:  slices.Clone(slots),
			}
		}
	}

	return gear, nil
}
