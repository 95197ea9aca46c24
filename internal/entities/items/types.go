package items

import (
	"fmt"
	"strconv"
	"strings"
)

// ItemSlot is an equipment slot on a character
type ItemSlot int32

// Item slots, in paper-doll order
const (
	ItemSlotHead ItemSlot = iota
	ItemSlotNeck
	ItemSlotShoulder
	ItemSlotBack
	ItemSlotChest
	ItemSlotWrist
	ItemSlotHands
	ItemSlotWaist
	ItemSlotLegs
	ItemSlotFeet
	ItemSlotFinger1
	ItemSlotFinger2
	ItemSlotTrinket1
	ItemSlotTrinket2
	ItemSlotMainHand
	ItemSlotOffHand
	ItemSlotRanged
)

var itemSlotNames = []string{
	"ItemSlotHead",
	"ItemSlotNeck",
	"ItemSlotShoulder",
	"ItemSlotBack",
	"ItemSlotChest",
	"ItemSlotWrist",
	"ItemSlotHands",
	"ItemSlotWaist",
	"ItemSlotLegs",
	"ItemSlotFeet",
	"ItemSlotFinger1",
	"ItemSlotFinger2",
	"ItemSlotTrinket1",
	"ItemSlotTrinket2",
	"ItemSlotMainHand",
	"ItemSlotOffHand",
	"ItemSlotRanged",
}

// AllItemSlots returns every slot in paper-doll order
func AllItemSlots() []ItemSlot {
	slots := make([]ItemSlot, len(itemSlotNames))
	for i := range itemSlotNames {
		slots[i] = ItemSlot(i)
	}
	return slots
}

// Valid reports whether the slot is a known value
func (s ItemSlot) Valid() bool { return s >= 0 && int(s) < len(itemSlotNames) }

func (s ItemSlot) String() string { return enumName(itemSlotNames, int32(s)) }

// MarshalText implements encoding.TextMarshaler
func (s ItemSlot) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (s *ItemSlot) UnmarshalText(text []byte) error {
	v, err := parseEnum(itemSlotNames, "ItemSlot", string(text))
	if err != nil {
		return err
	}
	*s = ItemSlot(v)
	return nil
}

// ParseItemSlot parses a slot from its name; the "ItemSlot" prefix is optional
func ParseItemSlot(name string) (ItemSlot, error) {
	var s ItemSlot
	err := s.UnmarshalText([]byte(name))
	return s, err
}

// ItemType is the equip type of an item or the target of an enchant
type ItemType int32

// Item types
const (
	ItemTypeUnknown ItemType = iota
	ItemTypeHead
	ItemTypeNeck
	ItemTypeShoulder
	ItemTypeBack
	ItemTypeChest
	ItemTypeWrist
	ItemTypeHands
	ItemTypeWaist
	ItemTypeLegs
	ItemTypeFeet
	ItemTypeFinger
	ItemTypeTrinket
	ItemTypeWeapon
	ItemTypeRanged
)

var itemTypeNames = []string{
	"ItemTypeUnknown",
	"ItemTypeHead",
	"ItemTypeNeck",
	"ItemTypeShoulder",
	"ItemTypeBack",
	"ItemTypeChest",
	"ItemTypeWrist",
	"ItemTypeHands",
	"ItemTypeWaist",
	"ItemTypeLegs",
	"ItemTypeFeet",
	"ItemTypeFinger",
	"ItemTypeTrinket",
	"ItemTypeWeapon",
	"ItemTypeRanged",
}

func (t ItemType) String() string { return enumName(itemTypeNames, int32(t)) }

// MarshalText implements encoding.TextMarshaler
func (t ItemType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (t *ItemType) UnmarshalText(text []byte) error {
	v, err := parseEnum(itemTypeNames, "ItemType", string(text))
	if err != nil {
		return err
	}
	*t = ItemType(v)
	return nil
}

// HandType says which hand(s) a weapon occupies
type HandType int32

// Hand types
const (
	HandTypeUnknown HandType = iota
	HandTypeMainHand
	HandTypeOneHand
	HandTypeOffHand
	HandTypeTwoHand
)

var handTypeNames = []string{
	"HandTypeUnknown",
	"HandTypeMainHand",
	"HandTypeOneHand",
	"HandTypeOffHand",
	"HandTypeTwoHand",
}

func (h HandType) String() string { return enumName(handTypeNames, int32(h)) }

// MarshalText implements encoding.TextMarshaler
func (h HandType) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (h *HandType) UnmarshalText(text []byte) error {
	v, err := parseEnum(handTypeNames, "HandType", string(text))
	if err != nil {
		return err
	}
	*h = HandType(v)
	return nil
}

// EnchantType narrows which weapons an enchant applies to
type EnchantType int32

// Enchant types
const (
	EnchantTypeNormal EnchantType = iota
	EnchantTypeTwoHand
	EnchantTypeShield
	EnchantTypeKit
	EnchantTypeStaff
)

var enchantTypeNames = []string{
	"EnchantTypeNormal",
	"EnchantTypeTwoHand",
	"EnchantTypeShield",
	"EnchantTypeKit",
	"EnchantTypeStaff",
}

func (e EnchantType) String() string { return enumName(enchantTypeNames, int32(e)) }

// MarshalText implements encoding.TextMarshaler
func (e EnchantType) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (e *EnchantType) UnmarshalText(text []byte) error {
	v, err := parseEnum(enchantTypeNames, "EnchantType", string(text))
	if err != nil {
		return err
	}
	*e = EnchantType(v)
	return nil
}

// GemColor is the color of a gem or of a socket
type GemColor int32

// Gem colors
const (
	GemColorUnknown GemColor = iota
	GemColorMeta
	GemColorRed
	GemColorBlue
	GemColorYellow
	GemColorGreen
	GemColorOrange
	GemColorPurple
	GemColorPrismatic
)

var gemColorNames = []string{
	"GemColorUnknown",
	"GemColorMeta",
	"GemColorRed",
	"GemColorBlue",
	"GemColorYellow",
	"GemColorGreen",
	"GemColorOrange",
	"GemColorPurple",
	"GemColorPrismatic",
}

// Valid reports whether the color is a known, non-unknown value
func (c GemColor) Valid() bool { return c > GemColorUnknown && int(c) < len(gemColorNames) }

func (c GemColor) String() string { return enumName(gemColorNames, int32(c)) }

// MarshalText implements encoding.TextMarshaler
func (c GemColor) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (c *GemColor) UnmarshalText(text []byte) error {
	v, err := parseEnum(gemColorNames, "GemColor", string(text))
	if err != nil {
		return err
	}
	*c = GemColor(v)
	return nil
}

// ParseGemColor parses a color from its name; the "GemColor" prefix is optional
func ParseGemColor(name string) (GemColor, error) {
	var c GemColor
	err := c.UnmarshalText([]byte(name))
	return c, err
}

func enumName(names []string, v int32) string {
	if v >= 0 && int(v) < len(names) {
		return names[v]
	}
	return strconv.Itoa(int(v))
}

// parseEnum accepts the full name, the name without prefix (case-insensitive)
// or the numeric value
func parseEnum(names []string, prefix, text string) (int32, error) {
	for i, name := range names {
		if text == name || strings.EqualFold(text, name[len(prefix):]) {
			return int32(i), nil
		}
	}
	if n, err := strconv.Atoi(text); err == nil && n >= 0 && n < len(names) {
		return int32(n), nil
	}
	return 0, fmt.Errorf("unknown %s %q", prefix, text)
}
