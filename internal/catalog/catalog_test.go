package catalog_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/sim-catalog/internal/catalog"
	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
	"github.com/KirkDiggler/sim-catalog/internal/errors"
	"github.com/KirkDiggler/sim-catalog/internal/snapshot"
	"github.com/KirkDiggler/sim-catalog/internal/testutils"
)

type CatalogTestSuite struct {
	suite.Suite
	snapshot *items.Snapshot
	catalog  *catalog.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.snapshot = testutils.SampleSnapshot()

	c, err := catalog.New(s.snapshot)
	s.Require().NoError(err)
	s.catalog = c
}

func ids[T interface{ GetID() string }](list []T) []string {
	out := make([]string, len(list))
	for i, v := range list {
		out[i] = v.GetID()
	}
	return out
}

func (s *CatalogTestSuite) TestNewRequiresSnapshot() {
	c, err := catalog.New(nil)
	s.Nil(c)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogTestSuite) TestItemsBySlot() {
	testCases := []struct {
		slot items.ItemSlot
		want []string
	}{
		{slot: items.ItemSlotChest, want: []string{"100"}},
		{slot: items.ItemSlotFinger1, want: []string{"200"}},
		{slot: items.ItemSlotFinger2, want: []string{"200"}},
		{slot: items.ItemSlotMainHand, want: []string{"300", "301"}},
		{slot: items.ItemSlotOffHand, want: []string{"301", "302"}},
		{slot: items.ItemSlotRanged, want: []string{}},
	}

	for _, tc := range testCases {
		s.Run(tc.slot.String(), func() {
			s.Equal(tc.want, ids(s.catalog.Items(tc.slot)))
		})
	}
}

func (s *CatalogTestSuite) TestItemsMatchEligibility() {
	for _, slot := range items.AllItemSlots() {
		got := s.catalog.Items(slot)
		for _, item := range got {
			s.Contains(items.EligibleItemSlots(item), slot)
		}
		for _, item := range s.snapshot.Items {
			if !slices.Contains(got, item) {
				s.NotContains(items.EligibleItemSlots(item), slot)
			}
		}
	}
}

func (s *CatalogTestSuite) TestEnchantsBySlot() {
	s.Equal([]string{"3789", "3827"}, ids(s.catalog.Enchants(items.ItemSlotMainHand)))
	s.Equal([]string{"3789", "1952"}, ids(s.catalog.Enchants(items.ItemSlotOffHand)))
	s.Equal([]string{"3604"}, ids(s.catalog.Enchants(items.ItemSlotHands)))
	s.Equal([]string{"3604"}, ids(s.catalog.Enchants(items.ItemSlotWrist)))
	s.Empty(s.catalog.Enchants(items.ItemSlotTrinket1))
}

func (s *CatalogTestSuite) TestEnchantsAppearOncePerSlot() {
	for _, slot := range items.AllItemSlots() {
		seen := make(map[*items.Enchant]bool)
		for _, e := range s.catalog.Enchants(slot) {
			s.False(seen[e], "enchant %d listed twice for %s", e.EffectID, slot)
			seen[e] = true
		}
	}
	for _, e := range s.snapshot.Enchants {
		for _, slot := range items.EligibleEnchantSlots(e) {
			s.Contains(s.catalog.Enchants(slot), e)
		}
	}
}

func (s *CatalogTestSuite) TestEnchantsReturnsCopy() {
	list := s.catalog.Enchants(items.ItemSlotMainHand)
	list[0] = nil
	s.NotNil(s.catalog.Enchants(items.ItemSlotMainHand)[0])
}

func (s *CatalogTestSuite) TestGems() {
	all := s.catalog.Gems(nil)
	s.Equal([]string{"10", "20", "30", "40", "50"}, ids(all))

	red := items.GemColorRed
	s.Equal([]string{"10", "20", "30", "50"}, ids(s.catalog.Gems(&red)))
	s.Equal([]string{"10", "30", "50"}, ids(s.catalog.MatchingGems(items.GemColorRed)))

	meta := items.GemColorMeta
	s.Equal([]string{"40"}, ids(s.catalog.Gems(&meta)))
	s.Equal([]string{"40"}, ids(s.catalog.MatchingGems(items.GemColorMeta)))
}

func (s *CatalogTestSuite) TestEligibleGemsContainMatchingGems() {
	colors := []items.GemColor{
		items.GemColorUnknown, items.GemColorMeta, items.GemColorRed, items.GemColorBlue,
		items.GemColorYellow, items.GemColorGreen, items.GemColorOrange, items.GemColorPurple,
		items.GemColorPrismatic,
	}
	for _, color := range colors {
		eligible := s.catalog.Gems(&color)
		for _, gem := range s.catalog.MatchingGems(color) {
			s.Contains(eligible, gem, "%s", color)
		}
	}
}

func (s *CatalogTestSuite) TestPointLookups() {
	item, ok := s.catalog.Item(testutils.ChestItemID)
	s.True(ok)
	s.Equal("Valorous Breastplate", item.Name)

	_, ok = s.catalog.Item(999)
	s.False(ok)

	_, ok = s.catalog.Gem(0)
	s.False(ok)

	gem, ok := s.catalog.Gem(testutils.PrismaticGemID)
	s.True(ok)
	s.True(gem.Unique)

	e, ok := s.catalog.Enchant(items.AnyEnchant(55))
	s.True(ok)
	s.Equal(testutils.ChestEnchantID, e.EffectID)

	e, ok = s.catalog.Enchant(items.EnchantRef{Kind: items.EnchantRefSpell, ID: 59625})
	s.True(ok)
	s.Equal(testutils.WeaponEnchantID, e.EffectID)

	_, ok = s.catalog.Enchant(items.EnchantRef{Kind: items.EnchantRefEffect, ID: 55})
	s.False(ok)
	_, ok = s.catalog.Enchant(items.EnchantRef{})
	s.False(ok)
}

func (s *CatalogTestSuite) TestIcons() {
	s.Equal(items.IconData{ID: testutils.HeadItemID, Name: "Valorous Helmet", Icon: "inv_helmet_152"},
		s.catalog.ItemIcon(testutils.HeadItemID))
	s.Equal(items.IconData{}, s.catalog.ItemIcon(12345))
	s.Equal("spell_nature_bloodlust", s.catalog.SpellIcon(59625).Icon)
	s.Equal(items.IconData{}, s.catalog.SpellIcon(1))
}

func (s *CatalogTestSuite) TestCounts() {
	s.Equal(catalog.Counts{Items: 7, Enchants: 5, Gems: 5, ItemIcons: 2, SpellIcons: 1}, s.catalog.Counts())
	s.Empty(s.catalog.Duplicates())
}

func (s *CatalogTestSuite) TestDuplicatesKeepLastEntry() {
	snap := &items.Snapshot{
		Items: []*items.Item{
			{ID: 1, Name: "first", Type: items.ItemTypeHead},
			{ID: 1, Name: "second", Type: items.ItemTypeHead},
		},
		Enchants: []*items.Enchant{
			{EffectID: 5, Name: "old", Type: items.ItemTypeChest},
			{EffectID: 5, Name: "new", Type: items.ItemTypeLegs},
		},
		Gems: []*items.Gem{{ID: 9, Color: items.GemColorRed}, nil, {ID: 9, Color: items.GemColorBlue}},
	}

	c, err := catalog.New(snap)
	s.Require().NoError(err)

	item, _ := c.Item(1)
	s.Equal("second", item.Name)
	s.Equal([]*items.Item{item}, c.Items(items.ItemSlotHead))

	s.Empty(c.Enchants(items.ItemSlotChest))
	s.Require().Len(c.Enchants(items.ItemSlotLegs), 1)
	s.Equal("new", c.Enchants(items.ItemSlotLegs)[0].Name)

	gem, _ := c.Gem(9)
	s.Equal(items.GemColorBlue, gem.Color)

	s.Equal([]catalog.DuplicateID{
		{Kind: catalog.KindItem, ID: 1},
		{Kind: catalog.KindEnchant, ID: 5},
		{Kind: catalog.KindGem, ID: 9},
	}, c.Duplicates())
	s.Equal(catalog.Counts{Items: 1, Enchants: 1, Gems: 1}, c.Counts())
}

func (s *CatalogTestSuite) TestEnchantsSharingEffectIDAreKept() {
	snap := &items.Snapshot{
		Items: []*items.Item{{ID: 100, Type: items.ItemTypeChest}},
		Enchants: []*items.Enchant{
			{EffectID: 3789, ItemID: 44473, Name: "scroll", Type: items.ItemTypeChest},
			{EffectID: 3789, SpellID: 59625, Name: "spell", Type: items.ItemTypeChest},
		},
	}

	c, err := catalog.New(snap, catalog.WithStrictIDs())
	s.Require().NoError(err)
	s.Empty(c.Duplicates())
	s.Equal(2, c.Counts().Enchants)
	s.Equal(snap.Enchants, c.Enchants(items.ItemSlotChest))

	got, ok := c.LookupItemSpec(items.ItemSpec{ID: 100, Enchant: items.AnyEnchant(44473)})
	s.Require().True(ok)
	s.Require().NotNil(got.Enchant)
	s.Equal("scroll", got.Enchant.Name)

	got, ok = c.LookupItemSpec(items.ItemSpec{ID: 100, Enchant: items.EnchantRef{Kind: items.EnchantRefSpell, ID: 59625}})
	s.Require().True(ok)
	s.Require().NotNil(got.Enchant)
	s.Equal("spell", got.Enchant.Name)

	e, ok := c.Enchant(items.EnchantRef{Kind: items.EnchantRefEffect, ID: 3789})
	s.True(ok)
	s.Equal("scroll", e.Name)
}

func (s *CatalogTestSuite) TestUnknownGemColorIsUnfiltered() {
	unknown := items.GemColorUnknown
	s.Equal(s.catalog.Gems(nil), s.catalog.Gems(&unknown))
}

func (s *CatalogTestSuite) TestStrictIDsRejectDuplicates() {
	snap := &items.Snapshot{
		ItemIcons: []*items.IconData{{ID: 1}, {ID: 1}},
	}

	c, err := catalog.New(snap, catalog.WithStrictIDs())
	s.Nil(c)
	s.True(errors.IsInvalidArgument(err))
	s.Equal([]catalog.DuplicateID{{Kind: catalog.KindItemIcon, ID: 1}}, errors.GetMeta(err)["duplicates"])

	_, err = catalog.New(testutils.SampleSnapshot(), catalog.WithStrictIDs())
	s.NoError(err)
}

func (s *CatalogTestSuite) TestEncodingsBuildIdenticalCatalogs() {
	fromJSON, err := snapshot.Decode(testutils.EncodeSnapshot(s.T(), s.snapshot, snapshot.EncodingJSON), snapshot.EncodingJSON)
	s.Require().NoError(err)
	fromBinary, err := snapshot.Decode(testutils.EncodeSnapshot(s.T(), s.snapshot, snapshot.EncodingBinary), snapshot.EncodingBinary)
	s.Require().NoError(err)

	a, err := catalog.New(fromJSON)
	s.Require().NoError(err)
	b, err := catalog.New(fromBinary)
	s.Require().NoError(err)

	s.Equal(a.Counts(), b.Counts())
	for _, slot := range items.AllItemSlots() {
		s.Equal(a.Items(slot), b.Items(slot), "items %s", slot)
		s.Equal(a.Enchants(slot), b.Enchants(slot), "enchants %s", slot)
	}
	s.Equal(a.Gems(nil), b.Gems(nil))
	for _, icon := range s.snapshot.ItemIcons {
		s.Equal(a.ItemIcon(icon.ID), b.ItemIcon(icon.ID))
	}
	for _, icon := range s.snapshot.SpellIcons {
		s.Equal(a.SpellIcon(icon.ID), b.SpellIcon(icon.ID))
	}
}
