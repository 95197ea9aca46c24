// Package items contains the catalog entities of the combat simulator: items,
// enchants, gems and icon records, plus the id-based specs that reference them.
//
// Entities are immutable once a snapshot is loaded. Slot and socket rules live in
// eligibility.go and are pure functions over these types.
package items

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types reported through core.Entity
const (
	EntityTypeItem    = "item"
	EntityTypeEnchant = "enchant"
	EntityTypeGem     = "gem"
)

// Item is a piece of equipment
type Item struct {
	ID         int32      `json:"id,omitempty"`
	Name       string     `json:"name,omitempty"`
	Icon       string     `json:"icon,omitempty"`
	Type       ItemType   `json:"type,omitempty"`
	HandType   HandType   `json:"handType,omitempty"`
	GemSockets []GemColor `json:"gemSockets,omitempty"`
	Quality    int32      `json:"quality,omitempty"`
	Ilvl       int32      `json:"ilvl,omitempty"`
}

// GetID returns the item id as a string
func (i *Item) GetID() string { return strconv.Itoa(int(i.ID)) }

// GetType returns the entity type for rpg-toolkit
func (i *Item) GetType() string { return EntityTypeItem }

// Enchant is a permanent enchantment. It is known by three numbers and external
// references may use any of them.
type Enchant struct {
	EffectID    int32       `json:"effectId,omitempty"`
	ItemID      int32       `json:"itemId,omitempty"`
	SpellID     int32       `json:"spellId,omitempty"`
	Name        string      `json:"name,omitempty"`
	Icon        string      `json:"icon,omitempty"`
	Type        ItemType    `json:"type,omitempty"`
	ExtraTypes  []ItemType  `json:"extraTypes,omitempty"`
	EnchantType EnchantType `json:"enchantType,omitempty"`
	Quality     int32       `json:"quality,omitempty"`
}

// GetID returns the effect id as a string
func (e *Enchant) GetID() string { return strconv.Itoa(int(e.EffectID)) }

// GetType returns the entity type for rpg-toolkit
func (e *Enchant) GetType() string { return EntityTypeEnchant }

// Gem is a socketable gem
type Gem struct {
	ID      int32    `json:"id,omitempty"`
	Name    string   `json:"name,omitempty"`
	Icon    string   `json:"icon,omitempty"`
	Color   GemColor `json:"color,omitempty"`
	Quality int32    `json:"quality,omitempty"`
	Unique  bool     `json:"unique,omitempty"`
}

// GetID returns the gem id as a string
func (g *Gem) GetID() string { return strconv.Itoa(int(g.ID)) }

// GetType returns the entity type for rpg-toolkit
func (g *Gem) GetType() string { return EntityTypeGem }

// IconData is display data for an item or spell. The zero value is the
// default record returned for unknown ids.
type IconData struct {
	ID   int32  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Icon string `json:"icon,omitempty"`
}

// Snapshot is the decoded catalog payload
type Snapshot struct {
	Items      []*Item     `json:"items,omitempty"`
	Enchants   []*Enchant  `json:"enchants,omitempty"`
	Gems       []*Gem      `json:"gems,omitempty"`
	ItemIcons  []*IconData `json:"itemIcons,omitempty"`
	SpellIcons []*IconData `json:"spellIcons,omitempty"`
}

var (
	_ core.Entity = (*Item)(nil)
	_ core.Entity = (*Enchant)(nil)
	_ core.Entity = (*Gem)(nil)
)
