package lookup

import (
	"time"

	"github.com/KirkDiggler/sim-catalog/internal/catalog"
	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
)

// GetItemsInput defines the request for listing items by slot
type GetItemsInput struct {
	Slot items.ItemSlot
}

// GetItemsOutput defines the response for listing items by slot
type GetItemsOutput struct {
	Items []*items.Item
}

// GetEnchantsInput defines the request for listing enchants by slot
type GetEnchantsInput struct {
	Slot items.ItemSlot
}

// GetEnchantsOutput defines the response for listing enchants by slot
type GetEnchantsOutput struct {
	Enchants []*items.Enchant
}

// GetGemsInput defines the request for listing gems. A nil Color lists all
// gems; otherwise only gems eligible for a socket of that color.
type GetGemsInput struct {
	Color *items.GemColor
}

// GetGemsOutput defines the response for listing gems
type GetGemsOutput struct {
	Gems []*items.Gem
}

// GetMatchingGemsInput defines the request for gems that exactly satisfy a
// socket color
type GetMatchingGemsInput struct {
	Color items.GemColor
}

// GetMatchingGemsOutput defines the response for matching gems
type GetMatchingGemsOutput struct {
	Gems []*items.Gem
}

// LookupItemSpecInput defines the request for hydrating one item spec
type LookupItemSpecInput struct {
	Spec items.ItemSpec
}

// LookupItemSpecOutput defines the response for hydrating one item spec.
// An unknown item id is Found == false, not an error.
type LookupItemSpecOutput struct {
	Item  *items.EquippedItem
	Found bool
}

// LookupEquipmentSpecInput defines the request for resolving a full equipment spec
type LookupEquipmentSpecInput struct {
	Spec items.EquipmentSpec
}

// LookupEquipmentSpecOutput defines the response for resolving an equipment spec
type LookupEquipmentSpecOutput struct {
	Gear items.Gear
	// SkippedItemIDs are ids in the spec that are not in the catalog
	SkippedItemIDs []int32
}

// GetIconDataInput defines the request for an item or spell icon record
type GetIconDataInput struct {
	ID int32
}

// GetIconDataOutput defines the response for an icon record. Unknown ids
// return the zero record.
type GetIconDataOutput struct {
	Icon items.IconData
}

// SearchItemsInput defines the request for searching items by name
type SearchItemsInput struct {
	Query string
	// Limit defaults to DefaultSearchLimit and is capped at MaxSearchLimit
	Limit int
}

// SearchItemsOutput defines the response for an item search
type SearchItemsOutput struct {
	Items []*items.Item
}

// GetCatalogInfoInput defines the request for catalog information
type GetCatalogInfoInput struct{}

// GetCatalogInfoOutput describes the loaded catalog
type GetCatalogInfoOutput struct {
	Counts     catalog.Counts
	Duplicates []catalog.DuplicateID
	LoadedAt   time.Time
}
