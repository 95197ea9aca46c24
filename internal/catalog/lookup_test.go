package catalog_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/sim-catalog/internal/catalog"
	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
	"github.com/KirkDiggler/sim-catalog/internal/testutils"
)

type LookupTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestLookupSuite(t *testing.T) {
	suite.Run(t, new(LookupTestSuite))
}

func (s *LookupTestSuite) SetupTest() {
	c, err := catalog.New(testutils.SampleSnapshot())
	s.Require().NoError(err)
	s.catalog = c
}

func (s *LookupTestSuite) TestLookupItemSpecExample() {
	got, ok := s.catalog.LookupItemSpec(items.ItemSpec{
		ID:      testutils.ChestItemID,
		Enchant: items.AnyEnchant(55),
		Gems:    []int32{testutils.RedGemID, 0, testutils.BlueGemID},
	})
	s.Require().True(ok)

	s.Equal(testutils.ChestItemID, got.Item.ID)
	s.Require().NotNil(got.Enchant)
	s.Equal(int32(55), got.Enchant.ItemID)
	s.Require().Len(got.Gems, 3)
	s.Equal(testutils.RedGemID, got.Gems[0].ID)
	s.Nil(got.Gems[1])
	s.Equal(testutils.BlueGemID, got.Gems[2].ID)
}

func (s *LookupTestSuite) TestLookupItemSpecEveryItem() {
	for _, item := range testutils.SampleSnapshot().Items {
		got, ok := s.catalog.LookupItemSpec(items.ItemSpec{ID: item.ID})
		s.Require().True(ok)
		s.Equal(item.ID, got.Item.ID)
		s.Nil(got.Enchant)
		s.Nil(got.Gems)
	}

	got, ok := s.catalog.LookupItemSpec(items.ItemSpec{ID: 999999})
	s.False(ok)
	s.Nil(got)
}

func (s *LookupTestSuite) TestLookupItemSpecUnknownGemKeepsPosition() {
	got, ok := s.catalog.LookupItemSpec(items.ItemSpec{
		ID:   testutils.HeadItemID,
		Gems: []int32{777, testutils.MetaGemID},
	})
	s.Require().True(ok)
	s.Require().Len(got.Gems, 2)
	s.Nil(got.Gems[0])
	s.Equal(testutils.MetaGemID, got.Gems[1].ID)
}

func (s *LookupTestSuite) TestLookupItemSpecEnchantRefs() {
	testCases := []struct {
		name   string
		itemID int32
		ref    items.EnchantRef
		want   int32
	}{
		{name: "any by item id", itemID: testutils.ChestItemID, ref: items.AnyEnchant(55), want: testutils.ChestEnchantID},
		{name: "any by effect id", itemID: testutils.ChestItemID, ref: items.AnyEnchant(testutils.ChestEnchantID), want: testutils.ChestEnchantID},
		{name: "any by spell id", itemID: testutils.ChestItemID, ref: items.AnyEnchant(60692), want: testutils.ChestEnchantID},
		{
			name:   "explicit item id",
			itemID: testutils.ChestItemID,
			ref:    items.EnchantRef{Kind: items.EnchantRefItem, ID: 55},
			want:   testutils.ChestEnchantID,
		},
		{
			name:   "explicit kind does not fall back to other ids",
			itemID: testutils.ChestItemID,
			ref:    items.EnchantRef{Kind: items.EnchantRefEffect, ID: 55},
		},
		{
			name:   "weapon enchant on two hander by spell",
			itemID: testutils.TwoHandItemID,
			ref:    items.EnchantRef{Kind: items.EnchantRefSpell, ID: 59625},
			want:   testutils.WeaponEnchantID,
		},
		{
			name:   "two hand enchant is not eligible for an off hand",
			itemID: testutils.OffHandItemID,
			ref:    items.EnchantRef{Kind: items.EnchantRefEffect, ID: testutils.TwoHandEnchantID},
		},
		{
			name:   "any ref respects slot eligibility",
			itemID: testutils.OffHandItemID,
			ref:    items.AnyEnchant(testutils.TwoHandEnchantID),
		},
		{
			name:   "chest enchant on a helmet",
			itemID: testutils.HeadItemID,
			ref:    items.AnyEnchant(55),
		},
		{
			name:   "shield enchant on an off hand",
			itemID: testutils.OffHandItemID,
			ref:    items.EnchantRef{Kind: items.EnchantRefSpell, ID: 44489},
			want:   testutils.ShieldEnchantID,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			got, ok := s.catalog.LookupItemSpec(items.ItemSpec{ID: tc.itemID, Enchant: tc.ref})
			s.Require().True(ok)
			if tc.want == 0 {
				s.Nil(got.Enchant)
				return
			}
			s.Require().NotNil(got.Enchant)
			s.Equal(tc.want, got.Enchant.EffectID)
		})
	}
}

func (s *LookupTestSuite) TestLookupEquipmentSpecDisjointSlots() {
	gear, err := s.catalog.LookupEquipmentSpec(items.EquipmentSpec{Items: []items.ItemSpec{
		{ID: testutils.ChestItemID},
		{ID: 999999},
		{ID: testutils.HeadItemID},
		{ID: testutils.TrinketItemID},
	}})
	s.Require().NoError(err)

	s.Equal(3, gear.Len())
	s.Equal([]items.ItemSlot{items.ItemSlotHead, items.ItemSlotChest, items.ItemSlotTrinket1}, gear.Slots())
	s.Equal(testutils.ChestItemID, gear.Get(items.ItemSlotChest).Item.ID)
	s.Nil(gear.Get(items.ItemSlotLegs))
}

func (s *LookupTestSuite) TestLookupEquipmentSpecFillsPairedSlots() {
	gear, err := s.catalog.LookupEquipmentSpec(items.EquipmentSpec{Items: []items.ItemSpec{
		{ID: testutils.RingItemID},
		{ID: testutils.RingItemID},
		{ID: testutils.TwoHandItemID},
		{ID: testutils.OneHandItemID},
	}})
	s.Require().NoError(err)

	s.Equal(testutils.RingItemID, gear.Get(items.ItemSlotFinger1).Item.ID)
	s.Equal(testutils.RingItemID, gear.Get(items.ItemSlotFinger2).Item.ID)
	s.Equal(testutils.TwoHandItemID, gear.Get(items.ItemSlotMainHand).Item.ID)
	s.Equal(testutils.OneHandItemID, gear.Get(items.ItemSlotOffHand).Item.ID)
}

func (s *LookupTestSuite) TestLookupEquipmentSpecConflicts() {
	testCases := []struct {
		name  string
		specs []items.ItemSpec
		want  *catalog.SlotConflictError
	}{
		{
			name:  "two chests",
			specs: []items.ItemSpec{{ID: testutils.ChestItemID}, {ID: testutils.ChestItemID}},
			want: &catalog.SlotConflictError{
				ItemID: testutils.ChestItemID,
				Index:  1,
				Slots:  []items.ItemSlot{items.ItemSlotChest},
			},
		},
		{
			name: "two hander after main hand and off hand are full",
			specs: []items.ItemSpec{
				{ID: testutils.OneHandItemID},
				{ID: testutils.OffHandItemID},
				{ID: testutils.TwoHandItemID},
			},
			want: &catalog.SlotConflictError{
				ItemID: testutils.TwoHandItemID,
				Index:  2,
				Slots:  []items.ItemSlot{items.ItemSlotMainHand},
			},
		},
		{
			name: "third ring",
			specs: []items.ItemSpec{
				{ID: testutils.RingItemID}, {ID: testutils.RingItemID}, {ID: testutils.RingItemID},
			},
			want: &catalog.SlotConflictError{
				ItemID: testutils.RingItemID,
				Index:  2,
				Slots:  []items.ItemSlot{items.ItemSlotFinger1, items.ItemSlotFinger2},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			gear, err := s.catalog.LookupEquipmentSpec(items.EquipmentSpec{Items: tc.specs})
			s.Nil(gear)

			var conflict *catalog.SlotConflictError
			s.Require().True(stderrors.As(err, &conflict))
			s.Equal(tc.want, conflict)
		})
	}
}

func (s *LookupTestSuite) TestLookupEquipmentSpecUnequippableItem() {
	c, err := catalog.New(&items.Snapshot{Items: []*items.Item{{ID: 1, Name: "Quest Token"}}})
	s.Require().NoError(err)

	_, err = c.LookupEquipmentSpec(items.EquipmentSpec{Items: []items.ItemSpec{{ID: 1}}})
	s.EqualError(err, "item 1 at position 0 has no equippable slot")
}

func (s *LookupTestSuite) TestGearRoundTripsToSpec() {
	in := items.EquipmentSpec{Items: []items.ItemSpec{
		{ID: testutils.HeadItemID, Gems: []int32{testutils.MetaGemID, testutils.RedGemID}},
		{ID: testutils.ChestItemID, Enchant: items.EnchantRef{Kind: items.EnchantRefEffect, ID: testutils.ChestEnchantID}},
	}}

	gear, err := s.catalog.LookupEquipmentSpec(in)
	s.Require().NoError(err)
	s.Equal(in, gear.Spec())
}
