// Package catalog builds the read-only index of items, enchants, gems and
// icons from a decoded snapshot and resolves id-based specs against it.
//
// A Catalog is immutable after New returns and safe for concurrent use. The
// Loader owns fetching and decoding the snapshot exactly once.
package catalog

import (
	"log/slog"
	"slices"

	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
	"github.com/KirkDiggler/sim-catalog/internal/errors"
)

// Kinds reported in DuplicateID and counts
const (
	KindItem      = "item"
	KindEnchant   = "enchant"
	KindGem       = "gem"
	KindItemIcon  = "item_icon"
	KindSpellIcon = "spell_icon"
)

type options struct {
	strictIDs bool
}

// Option configures catalog construction
type Option func(*options)

// WithStrictIDs rejects snapshots that contain duplicate ids instead of
// keeping the last entry
func WithStrictIDs() Option {
	return func(o *options) { o.strictIDs = true }
}

// Counts is the number of distinct entries of each kind
type Counts struct {
	Items      int `json:"items"`
	Enchants   int `json:"enchants"`
	Gems       int `json:"gems"`
	ItemIcons  int `json:"itemIcons"`
	SpellIcons int `json:"spellIcons"`
}

// Catalog is the in-memory index over one snapshot
type Catalog struct {
	items     map[int32]*items.Item
	itemIDs   []int32
	itemSlots map[int32][]items.ItemSlot

	enchants       []*items.Enchant
	enchantsBySlot map[items.ItemSlot][]*items.Enchant
	enchantSlots   map[*items.Enchant][]items.ItemSlot
	enchantsByKind map[items.EnchantRefKind]map[int32][]*items.Enchant

	gems   map[int32]*items.Gem
	gemIDs []int32

	itemIcons  map[int32]*items.IconData
	spellIcons map[int32]*items.IconData

	duplicates []DuplicateID
}

// New indexes a decoded snapshot. Duplicate ids keep the last entry and are
// reported by Duplicates, unless WithStrictIDs is given.
func New(s *items.Snapshot, opts ...Option) (*Catalog, error) {
	if s == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Catalog{
		items:          make(map[int32]*items.Item, len(s.Items)),
		itemSlots:      make(map[int32][]items.ItemSlot, len(s.Items)),
		enchantsBySlot: make(map[items.ItemSlot][]*items.Enchant),
		enchantSlots:   make(map[*items.Enchant][]items.ItemSlot, len(s.Enchants)),
		enchantsByKind: map[items.EnchantRefKind]map[int32][]*items.Enchant{
			items.EnchantRefEffect: {},
			items.EnchantRefItem:   {},
			items.EnchantRefSpell:  {},
		},
		gems:       make(map[int32]*items.Gem, len(s.Gems)),
		itemIcons:  make(map[int32]*items.IconData, len(s.ItemIcons)),
		spellIcons: make(map[int32]*items.IconData, len(s.SpellIcons)),
	}

	for _, item := range s.Items {
		if item == nil {
			continue
		}
		if _, ok := c.items[item.ID]; ok {
			c.duplicate(KindItem, item.ID)
		}
		c.items[item.ID] = item
		c.itemSlots[item.ID] = items.EligibleItemSlots(item)
	}
	c.itemIDs = sortedKeys(c.items)

	c.indexEnchants(s.Enchants)

	for _, gem := range s.Gems {
		if gem == nil {
			continue
		}
		if _, ok := c.gems[gem.ID]; ok {
			c.duplicate(KindGem, gem.ID)
		}
		c.gems[gem.ID] = gem
	}
	c.gemIDs = sortedKeys(c.gems)

	c.indexIcons(KindItemIcon, s.ItemIcons, c.itemIcons)
	c.indexIcons(KindSpellIcon, s.SpellIcons, c.spellIcons)

	if o.strictIDs && len(c.duplicates) > 0 {
		return nil, errors.InvalidArgumentf("snapshot contains %d duplicate ids", len(c.duplicates)).
			WithMeta("duplicates", c.duplicates)
	}

	return c, nil
}

type enchantKey struct {
	effectID int32
	itemID   int32
	spellID  int32
}

// indexEnchants keeps every enchant. Enchants may share an effect id, so only
// an exact repeat of the (effect, item, spell) ids counts as a duplicate and
// keeps the last entry. Slot lists keep snapshot order and hold each enchant
// at most once per slot.
func (c *Catalog) indexEnchants(list []*items.Enchant) {
	last := make(map[enchantKey]*items.Enchant, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		key := enchantKey{effectID: e.EffectID, itemID: e.ItemID, spellID: e.SpellID}
		if _, ok := last[key]; ok {
			c.duplicate(KindEnchant, e.EffectID)
		}
		last[key] = e
	}

	for _, e := range list {
		if e == nil {
			continue
		}
		if last[enchantKey{effectID: e.EffectID, itemID: e.ItemID, spellID: e.SpellID}] != e {
			continue
		}

		c.enchants = append(c.enchants, e)
		slots := items.EligibleEnchantSlots(e)
		c.enchantSlots[e] = slots
		for _, slot := range slots {
			c.enchantsBySlot[slot] = append(c.enchantsBySlot[slot], e)
		}

		c.indexEnchantID(items.EnchantRefEffect, e.EffectID, e)
		c.indexEnchantID(items.EnchantRefItem, e.ItemID, e)
		c.indexEnchantID(items.EnchantRefSpell, e.SpellID, e)
	}
}

func (c *Catalog) indexEnchantID(kind items.EnchantRefKind, id int32, e *items.Enchant) {
	if id == 0 {
		return
	}
	c.enchantsByKind[kind][id] = append(c.enchantsByKind[kind][id], e)
}

func (c *Catalog) indexIcons(kind string, list []*items.IconData, into map[int32]*items.IconData) {
	for _, icon := range list {
		if icon == nil {
			continue
		}
		if _, ok := into[icon.ID]; ok {
			c.duplicate(kind, icon.ID)
		}
		into[icon.ID] = icon
	}
}

func (c *Catalog) duplicate(kind string, id int32) {
	slog.Warn("Duplicate id in snapshot, keeping the last entry",
		"kind", kind,
		"id", id)
	c.duplicates = append(c.duplicates, DuplicateID{Kind: kind, ID: id})
}

// Duplicates lists every id that appeared more than once, in snapshot order
func (c *Catalog) Duplicates() []DuplicateID {
	return slices.Clone(c.duplicates)
}

// Counts returns the number of distinct entries of each kind
func (c *Catalog) Counts() Counts {
	return Counts{
		Items:      len(c.items),
		Enchants:   len(c.enchants),
		Gems:       len(c.gems),
		ItemIcons:  len(c.itemIcons),
		SpellIcons: len(c.spellIcons),
	}
}

// Items returns every item eligible for the slot, by ascending id
func (c *Catalog) Items(slot items.ItemSlot) []*items.Item {
	var result []*items.Item
	for _, id := range c.itemIDs {
		if slices.Contains(c.itemSlots[id], slot) {
			result = append(result, c.items[id])
		}
	}
	return result
}

// Enchants returns the enchants eligible for the slot in snapshot order
func (c *Catalog) Enchants(slot items.ItemSlot) []*items.Enchant {
	return slices.Clone(c.enchantsBySlot[slot])
}

// Gems returns all gems when color is nil or GemColorUnknown, otherwise the
// gems that may be placed in a socket of that color. Results are by ascending id.
func (c *Catalog) Gems(color *items.GemColor) []*items.Gem {
	all := color == nil || *color == items.GemColorUnknown
	result := make([]*items.Gem, 0, len(c.gemIDs))
	for _, id := range c.gemIDs {
		gem := c.gems[id]
		if all || items.GemEligibleForSocket(gem, *color) {
			result = append(result, gem)
		}
	}
	return result
}

// MatchingGems returns the gems that satisfy the socket color exactly. This is
// always a subset of Gems(&color).
func (c *Catalog) MatchingGems(color items.GemColor) []*items.Gem {
	var result []*items.Gem
	for _, id := range c.gemIDs {
		if gem := c.gems[id]; items.GemMatchesSocket(gem, color) {
			result = append(result, gem)
		}
	}
	return result
}

// Item returns the item with the id
func (c *Catalog) Item(id int32) (*items.Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Gem returns the gem with the id. Id 0 is an empty socket and never found.
func (c *Catalog) Gem(id int32) (*items.Gem, bool) {
	if id == 0 {
		return nil, false
	}
	gem, ok := c.gems[id]
	return gem, ok
}

// Enchant returns the enchant a reference names regardless of slot. An Any
// reference tries effect id, then item id, then spell id.
func (c *Catalog) Enchant(ref items.EnchantRef) (*items.Enchant, bool) {
	if ref.IsZero() {
		return nil, false
	}
	kinds := []items.EnchantRefKind{ref.Kind}
	if ref.Kind == items.EnchantRefAny {
		kinds = []items.EnchantRefKind{items.EnchantRefEffect, items.EnchantRefItem, items.EnchantRefSpell}
	}
	for _, kind := range kinds {
		if found := c.enchantsByKind[kind][ref.ID]; len(found) > 0 {
			return found[0], true
		}
	}
	return nil, false
}

// ItemIcon returns the icon record for an item, or the zero record
func (c *Catalog) ItemIcon(id int32) items.IconData {
	if icon, ok := c.itemIcons[id]; ok {
		return *icon
	}
	return items.IconData{}
}

// SpellIcon returns the icon record for a spell, or the zero record
func (c *Catalog) SpellIcon(id int32) items.IconData {
	if icon, ok := c.spellIcons[id]; ok {
		return *icon
	}
	return items.IconData{}
}

func sortedKeys[V any](m map[int32]V) []int32 {
	keys := make([]int32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
