package items

import "slices"

var itemTypeToSlots = map[ItemType][]ItemSlot{
	ItemTypeHead:     {ItemSlotHead},
	ItemTypeNeck:     {ItemSlotNeck},
	ItemTypeShoulder: {ItemSlotShoulder},
	ItemTypeBack:     {ItemSlotBack},
	ItemTypeChest:    {ItemSlotChest},
	ItemTypeWrist:    {ItemSlotWrist},
	ItemTypeHands:    {ItemSlotHands},
	ItemTypeWaist:    {ItemSlotWaist},
	ItemTypeLegs:     {ItemSlotLegs},
	ItemTypeFeet:     {ItemSlotFeet},
	ItemTypeFinger:   {ItemSlotFinger1, ItemSlotFinger2},
	ItemTypeTrinket:  {ItemSlotTrinket1, ItemSlotTrinket2},
	ItemTypeRanged:   {ItemSlotRanged},
}

// EligibleItemSlots returns the slots an item can be equipped in, in the order
// they should be filled
func EligibleItemSlots(item *Item) []ItemSlot {
	if item == nil {
		return nil
	}
	if slots, ok := itemTypeToSlots[item.Type]; ok {
		return slices.Clone(slots)
	}
	if item.Type != ItemTypeWeapon {
		return nil
	}

	switch item.HandType {
	case HandTypeMainHand, HandTypeTwoHand:
		return []ItemSlot{ItemSlotMainHand}
	case HandTypeOffHand:
		return []ItemSlot{ItemSlotOffHand}
	default:
		return []ItemSlot{ItemSlotMainHand, ItemSlotOffHand}
	}
}

// EligibleEnchantSlots returns every slot an enchant applies to. The result has
// no duplicates and keeps first-seen order across Type and ExtraTypes.
func EligibleEnchantSlots(enchant *Enchant) []ItemSlot {
	if enchant == nil {
		return nil
	}

	var slots []ItemSlot
	seen := make(map[ItemSlot]bool)
	add := func(s ...ItemSlot) {
		for _, slot := range s {
			if !seen[slot] {
				seen[slot] = true
				slots = append(slots, slot)
			}
		}
	}

	types := append([]ItemType{enchant.Type}, enchant.ExtraTypes...)
	for _, t := range types {
		if s, ok := itemTypeToSlots[t]; ok {
			add(s...)
			continue
		}
		if t != ItemTypeWeapon {
			continue
		}
		switch enchant.EnchantType {
		case EnchantTypeTwoHand, EnchantTypeStaff:
			add(ItemSlotMainHand)
		case EnchantTypeShield:
			add(ItemSlotOffHand)
		default:
			add(ItemSlotMainHand, ItemSlotOffHand)
		}
	}
	return slots
}

var socketToMatchingColors = map[GemColor][]GemColor{
	GemColorMeta:   {GemColorMeta},
	GemColorRed:    {GemColorRed, GemColorOrange, GemColorPurple, GemColorPrismatic},
	GemColorBlue:   {GemColorBlue, GemColorGreen, GemColorPurple, GemColorPrismatic},
	GemColorYellow: {GemColorYellow, GemColorOrange, GemColorGreen, GemColorPrismatic},
	GemColorPrismatic: {
		GemColorRed, GemColorBlue, GemColorYellow, GemColorGreen,
		GemColorOrange, GemColorPurple, GemColorPrismatic,
	},
}

// GemEligibleForSocket reports whether a gem can be placed in a socket at all.
// Meta gems go only in meta sockets and every other gem goes in any other socket.
func GemEligibleForSocket(gem *Gem, socketColor GemColor) bool {
	if gem == nil || !gem.Color.Valid() || !socketColor.Valid() {
		return false
	}
	return (gem.Color == GemColorMeta) == (socketColor == GemColorMeta)
}

// GemMatchesSocket reports whether a gem satisfies a socket's color requirement
func GemMatchesSocket(gem *Gem, socketColor GemColor) bool {
	if gem == nil {
		return false
	}
	for _, c := range socketToMatchingColors[socketColor] {
		if gem.Color == c {
			return true
		}
	}
	return false
}
