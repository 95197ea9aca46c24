package snapshot

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
)

// Field numbers of the database message and its nested records
const (
	fieldSnapshotItems      protowire.Number = 1
	fieldSnapshotEnchants   protowire.Number = 2
	fieldSnapshotGems       protowire.Number = 3
	fieldSnapshotItemIcons  protowire.Number = 4
	fieldSnapshotSpellIcons protowire.Number = 5

	fieldItemID         protowire.Number = 1
	fieldItemName       protowire.Number = 2
	fieldItemIcon       protowire.Number = 3
	fieldItemType       protowire.Number = 4
	fieldItemHandType   protowire.Number = 5
	fieldItemGemSockets protowire.Number = 6
	fieldItemQuality    protowire.Number = 7
	fieldItemIlvl       protowire.Number = 8

	fieldEnchantEffectID    protowire.Number = 1
	fieldEnchantItemID      protowire.Number = 2
	fieldEnchantSpellID     protowire.Number = 3
	fieldEnchantName        protowire.Number = 4
	fieldEnchantIcon        protowire.Number = 5
	fieldEnchantType        protowire.Number = 6
	fieldEnchantExtraTypes  protowire.Number = 7
	fieldEnchantEnchantType protowire.Number = 8
	fieldEnchantQuality     protowire.Number = 9

	fieldGemID      protowire.Number = 1
	fieldGemName    protowire.Number = 2
	fieldGemIcon    protowire.Number = 3
	fieldGemColor   protowire.Number = 4
	fieldGemQuality protowire.Number = 5
	fieldGemUnique  protowire.Number = 6

	fieldIconID   protowire.Number = 1
	fieldIconName protowire.Number = 2
	fieldIconIcon protowire.Number = 3
)

func marshalBinary(s *items.Snapshot) []byte {
	var b []byte
	for _, item := range s.Items {
		if item != nil {
			b = appendMessage(b, fieldSnapshotItems, appendItem(nil, item))
		}
	}
	for _, enchant := range s.Enchants {
		if enchant != nil {
			b = appendMessage(b, fieldSnapshotEnchants, appendEnchant(nil, enchant))
		}
	}
	for _, gem := range s.Gems {
		if gem != nil {
			b = appendMessage(b, fieldSnapshotGems, appendGem(nil, gem))
		}
	}
	for _, icon := range s.ItemIcons {
		if icon != nil {
			b = appendMessage(b, fieldSnapshotItemIcons, appendIcon(nil, icon))
		}
	}
	for _, icon := range s.SpellIcons {
		if icon != nil {
			b = appendMessage(b, fieldSnapshotSpellIcons, appendIcon(nil, icon))
		}
	}
	return b
}

func appendItem(b []byte, item *items.Item) []byte {
	b = appendInt32(b, fieldItemID, item.ID)
	b = appendString(b, fieldItemName, item.Name)
	b = appendString(b, fieldItemIcon, item.Icon)
	b = appendInt32(b, fieldItemType, int32(item.Type))
	b = appendInt32(b, fieldItemHandType, int32(item.HandType))
	sockets := make([]int32, len(item.GemSockets))
	for i, c := range item.GemSockets {
		sockets[i] = int32(c)
	}
	b = appendPacked(b, fieldItemGemSockets, sockets)
	b = appendInt32(b, fieldItemQuality, item.Quality)
	return appendInt32(b, fieldItemIlvl, item.Ilvl)
}

func appendEnchant(b []byte, e *items.Enchant) []byte {
	b = appendInt32(b, fieldEnchantEffectID, e.EffectID)
	b = appendInt32(b, fieldEnchantItemID, e.ItemID)
	b = appendInt32(b, fieldEnchantSpellID, e.SpellID)
	b = appendString(b, fieldEnchantName, e.Name)
	b = appendString(b, fieldEnchantIcon, e.Icon)
	b = appendInt32(b, fieldEnchantType, int32(e.Type))
	extra := make([]int32, len(e.ExtraTypes))
	for i, t := range e.ExtraTypes {
		extra[i] = int32(t)
	}
	b = appendPacked(b, fieldEnchantExtraTypes, extra)
	b = appendInt32(b, fieldEnchantEnchantType, int32(e.EnchantType))
	return appendInt32(b, fieldEnchantQuality, e.Quality)
}

func appendGem(b []byte, g *items.Gem) []byte {
	b = appendInt32(b, fieldGemID, g.ID)
	b = appendString(b, fieldGemName, g.Name)
	b = appendString(b, fieldGemIcon, g.Icon)
	b = appendInt32(b, fieldGemColor, int32(g.Color))
	b = appendInt32(b, fieldGemQuality, g.Quality)
	if g.Unique {
		b = protowire.AppendTag(b, fieldGemUnique, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	return b
}

func appendIcon(b []byte, icon *items.IconData) []byte {
	b = appendInt32(b, fieldIconID, icon.ID)
	b = appendString(b, fieldIconName, icon.Name)
	return appendString(b, fieldIconIcon, icon.Icon)
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

// int32 fields sign-extend to 64 bits like protoc-generated code does
func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendPacked(b []byte, num protowire.Number, vs []int32) []byte {
	if len(vs) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(int64(v)))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

// fieldFunc consumes the value of one field and returns the bytes read, a
// negative protowire error code, or 0 to have the field skipped as unknown
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) int

func consumeFields(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		m := fn(num, typ, b)
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
		}
		if m < 0 {
			return protowire.ParseError(m)
		}
		b = b[m:]
	}
	return nil
}

func unmarshalBinary(b []byte) (*items.Snapshot, error) {
	s := &items.Snapshot{}
	var nestedErr error

	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if typ != protowire.BytesType || num < fieldSnapshotItems || num > fieldSnapshotSpellIcons {
			return 0
		}
		msg, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n
		}

		switch num {
		case fieldSnapshotItems:
			item := &items.Item{}
			nestedErr = consumeFields(msg, itemFields(item))
			s.Items = append(s.Items, item)
		case fieldSnapshotEnchants:
			enchant := &items.Enchant{}
			nestedErr = consumeFields(msg, enchantFields(enchant))
			s.Enchants = append(s.Enchants, enchant)
		case fieldSnapshotGems:
			gem := &items.Gem{}
			nestedErr = consumeFields(msg, gemFields(gem))
			s.Gems = append(s.Gems, gem)
		case fieldSnapshotItemIcons:
			icon := &items.IconData{}
			nestedErr = consumeFields(msg, iconFields(icon))
			s.ItemIcons = append(s.ItemIcons, icon)
		case fieldSnapshotSpellIcons:
			icon := &items.IconData{}
			nestedErr = consumeFields(msg, iconFields(icon))
			s.SpellIcons = append(s.SpellIcons, icon)
		}
		if nestedErr != nil {
			return -1
		}
		return n
	})
	if nestedErr != nil {
		return nil, nestedErr
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func itemFields(item *items.Item) fieldFunc {
	return func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == fieldItemGemSockets:
			return consumeRepeated(typ, b, func(v int32) {
				item.GemSockets = append(item.GemSockets, items.GemColor(v))
			})
		case typ == protowire.BytesType:
			switch num {
			case fieldItemName:
				return consumeString(b, &item.Name)
			case fieldItemIcon:
				return consumeString(b, &item.Icon)
			}
		case typ == protowire.VarintType:
			switch num {
			case fieldItemID:
				return consumeInt32(b, &item.ID)
			case fieldItemType:
				return consumeInt32(b, (*int32)(&item.Type))
			case fieldItemHandType:
				return consumeInt32(b, (*int32)(&item.HandType))
			case fieldItemQuality:
				return consumeInt32(b, &item.Quality)
			case fieldItemIlvl:
				return consumeInt32(b, &item.Ilvl)
			}
		}
		return 0
	}
}

func enchantFields(e *items.Enchant) fieldFunc {
	return func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == fieldEnchantExtraTypes:
			return consumeRepeated(typ, b, func(v int32) {
				e.ExtraTypes = append(e.ExtraTypes, items.ItemType(v))
			})
		case typ == protowire.BytesType:
			switch num {
			case fieldEnchantName:
				return consumeString(b, &e.Name)
			case fieldEnchantIcon:
				return consumeString(b, &e.Icon)
			}
		case typ == protowire.VarintType:
			switch num {
			case fieldEnchantEffectID:
				return consumeInt32(b, &e.EffectID)
			case fieldEnchantItemID:
				return consumeInt32(b, &e.ItemID)
			case fieldEnchantSpellID:
				return consumeInt32(b, &e.SpellID)
			case fieldEnchantType:
				return consumeInt32(b, (*int32)(&e.Type))
			case fieldEnchantEnchantType:
				return consumeInt32(b, (*int32)(&e.EnchantType))
			case fieldEnchantQuality:
				return consumeInt32(b, &e.Quality)
			}
		}
		return 0
	}
}

func gemFields(g *items.Gem) fieldFunc {
	return func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case typ == protowire.BytesType:
			switch num {
			case fieldGemName:
				return consumeString(b, &g.Name)
			case fieldGemIcon:
				return consumeString(b, &g.Icon)
			}
		case typ == protowire.VarintType:
			switch num {
			case fieldGemID:
				return consumeInt32(b, &g.ID)
			case fieldGemColor:
				return consumeInt32(b, (*int32)(&g.Color))
			case fieldGemQuality:
				return consumeInt32(b, &g.Quality)
			case fieldGemUnique:
				v, n := protowire.ConsumeVarint(b)
				if n >= 0 {
					g.Unique = protowire.DecodeBool(v)
				}
				return n
			}
		}
		return 0
	}
}

func iconFields(icon *items.IconData) fieldFunc {
	return func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == fieldIconID && typ == protowire.VarintType:
			return consumeInt32(b, &icon.ID)
		case num == fieldIconName && typ == protowire.BytesType:
			return consumeString(b, &icon.Name)
		case num == fieldIconIcon && typ == protowire.BytesType:
			return consumeString(b, &icon.Icon)
		}
		return 0
	}
}

func consumeInt32(b []byte, dst *int32) int {
	v, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*dst = int32(v)
	}
	return n
}

func consumeString(b []byte, dst *string) int {
	v, n := protowire.ConsumeString(b)
	if n >= 0 {
		*dst = v
	}
	return n
}

// consumeRepeated reads a repeated enum in packed or unpacked form
func consumeRepeated(typ protowire.Type, b []byte, add func(int32)) int {
	switch typ {
	case protowire.VarintType:
		v, n := protowire.ConsumeVarint(b)
		if n >= 0 {
			add(int32(v))
		}
		return n
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return n
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeVarint(packed)
			if m < 0 {
				return m
			}
			add(int32(v))
			packed = packed[m:]
		}
		return n
	default:
		return 0
	}
}
