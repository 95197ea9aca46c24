package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
	"github.com/KirkDiggler/sim-catalog/internal/snapshot"
)

// Ids used by SampleSnapshot
const (
	ChestItemID      int32 = 100
	HeadItemID       int32 = 101
	RingItemID       int32 = 200
	TwoHandItemID    int32 = 300
	OneHandItemID    int32 = 301
	OffHandItemID    int32 = 302
	TrinketItemID    int32 = 400
	ChestEnchantID   int32 = 3832 // item id 55
	WeaponEnchantID  int32 = 3789
	TwoHandEnchantID int32 = 3827
	ShieldEnchantID  int32 = 1952
	GlovesEnchantID  int32 = 3604 // also applies to wrists
	RedGemID         int32 = 10
	BlueGemID        int32 = 20
	PurpleGemID      int32 = 30
	MetaGemID        int32 = 40
	PrismaticGemID   int32 = 50
)

// SampleSnapshot returns a small catalog with at least one entry per slot
// family and one gem of each interesting color
func SampleSnapshot() *items.Snapshot {
	return &items.Snapshot{
		Items: []*items.Item{
			{
				ID:         ChestItemID,
				Name:       "Valorous Breastplate",
				Icon:       "inv_chest_plate_26",
				Type:       items.ItemTypeChest,
				GemSockets: []items.GemColor{items.GemColorRed, items.GemColorBlue, items.GemColorYellow},
				Quality:    4,
				Ilvl:       226,
			},
			{
				ID:         HeadItemID,
				Name:       "Valorous Helmet",
				Icon:       "inv_helmet_152",
				Type:       items.ItemTypeHead,
				GemSockets: []items.GemColor{items.GemColorMeta, items.GemColorRed},
				Quality:    4,
				Ilvl:       226,
			},
			{ID: RingItemID, Name: "Band of the Invoker", Type: items.ItemTypeFinger, Quality: 4, Ilvl: 213},
			{ID: TwoHandItemID, Name: "Titansteel Destroyer", Type: items.ItemTypeWeapon, HandType: items.HandTypeTwoHand, Quality: 4, Ilvl: 200},
			{ID: OneHandItemID, Name: "Hammer of the Astral Plane", Type: items.ItemTypeWeapon, HandType: items.HandTypeOneHand, Quality: 4, Ilvl: 219},
			{ID: OffHandItemID, Name: "Bulwark of Algalon", Type: items.ItemTypeWeapon, HandType: items.HandTypeOffHand, Quality: 4, Ilvl: 239},
			{ID: TrinketItemID, Name: "Darkmoon Card: Greatness", Type: items.ItemTypeTrinket, Quality: 4, Ilvl: 200},
		},
		Enchants: []*items.Enchant{
			{EffectID: ChestEnchantID, ItemID: 55, SpellID: 60692, Name: "Powerful Stats", Type: items.ItemTypeChest, Quality: 2},
			{EffectID: WeaponEnchantID, ItemID: 44473, SpellID: 59625, Name: "Berserking", Type: items.ItemTypeWeapon, Quality: 2},
			{EffectID: TwoHandEnchantID, SpellID: 60691, Name: "Massacre", Type: items.ItemTypeWeapon, EnchantType: items.EnchantTypeTwoHand, Quality: 2},
			{EffectID: ShieldEnchantID, SpellID: 44489, Name: "Defense", Type: items.ItemTypeWeapon, EnchantType: items.EnchantTypeShield, Quality: 2},
			{
				EffectID:   GlovesEnchantID,
				SpellID:    54999,
				Name:       "Hyperspeed Accelerators",
				Type:       items.ItemTypeHands,
				ExtraTypes: []items.ItemType{items.ItemTypeWrist},
				Quality:    2,
			},
		},
		Gems: []*items.Gem{
			{ID: RedGemID, Name: "Bold Cardinal Ruby", Color: items.GemColorRed, Quality: 4},
			{ID: BlueGemID, Name: "Solid Majestic Zircon", Color: items.GemColorBlue, Quality: 4},
			{ID: PurpleGemID, Name: "Sovereign Dreadstone", Color: items.GemColorPurple, Quality: 4},
			{ID: MetaGemID, Name: "Relentless Earthsiege Diamond", Color: items.GemColorMeta, Quality: 3},
			{ID: PrismaticGemID, Name: "Nightmare Tear", Color: items.GemColorPrismatic, Quality: 3, Unique: true},
		},
		ItemIcons: []*items.IconData{
			{ID: ChestItemID, Name: "Valorous Breastplate", Icon: "inv_chest_plate_26"},
			{ID: HeadItemID, Name: "Valorous Helmet", Icon: "inv_helmet_152"},
		},
		SpellIcons: []*items.IconData{
			{ID: 59625, Name: "Berserking", Icon: "spell_nature_bloodlust"},
		},
	}
}

// EncodeSnapshot encodes the snapshot and fails the test on error
func EncodeSnapshot(t testing.TB, s *items.Snapshot, enc snapshot.Encoding) []byte {
	t.Helper()
	data, err := snapshot.Encode(s, enc)
	require.NoError(t, err)
	return data
}
