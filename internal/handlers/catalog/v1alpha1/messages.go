package v1alpha1

import (
	"time"

	"github.com/KirkDiggler/sim-catalog/internal/catalog"
	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
)

// Request and response bodies travel as google.protobuf.Struct. Field names
// are the JSON names below; enums are carried by name.

// GetItemsRequest lists items that fit a slot
type GetItemsRequest struct {
	Slot items.ItemSlot `json:"slot"`
}

// GetItemsResponse holds items ordered by id
type GetItemsResponse struct {
	Items []*items.Item `json:"items"`
}

// GetEnchantsRequest lists enchants that apply to a slot
type GetEnchantsRequest struct {
	Slot items.ItemSlot `json:"slot"`
}

// GetEnchantsResponse holds enchants in snapshot order
type GetEnchantsResponse struct {
	Enchants []*items.Enchant `json:"enchants"`
}

// GetGemsRequest lists gems, optionally only those eligible for a socket color
type GetGemsRequest struct {
	Color *items.GemColor `json:"color,omitempty"`
}

// GetGemsResponse holds gems ordered by id
type GetGemsResponse struct {
	Gems []*items.Gem `json:"gems"`
}

// GetMatchingGemsRequest lists gems that satisfy a socket color
type GetMatchingGemsRequest struct {
	Color items.GemColor `json:"color"`
}

// GetMatchingGemsResponse holds gems ordered by id
type GetMatchingGemsResponse struct {
	Gems []*items.Gem `json:"gems"`
}

// SearchItemsRequest finds items whose name contains the query or is close to it
type SearchItemsRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// SearchItemsResponse holds matches, best first
type SearchItemsResponse struct {
	Items []*items.Item `json:"items"`
}

// LookupItemSpecRequest hydrates one item spec
type LookupItemSpecRequest struct {
	Spec items.ItemSpec `json:"spec"`
}

// LookupItemSpecResponse carries the hydrated item when Found is true
type LookupItemSpecResponse struct {
	Item  *items.EquippedItem `json:"item,omitempty"`
	Found bool                `json:"found"`
}

// LookupEquipmentSpecRequest resolves a full equipment spec into slots
type LookupEquipmentSpecRequest struct {
	Spec items.EquipmentSpec `json:"spec"`
}

// LookupEquipmentSpecResponse is keyed by slot name
type LookupEquipmentSpecResponse struct {
	Gear           items.Gear `json:"gear"`
	SkippedItemIDs []int32    `json:"skippedItemIds,omitempty"`
}

// GetIconDataRequest names an item or spell id
type GetIconDataRequest struct {
	ID int32 `json:"id"`
}

// GetIconDataResponse carries the zero record for unknown ids
type GetIconDataResponse struct {
	Icon items.IconData `json:"icon"`
}

// GetCatalogInfoRequest asks for catalog statistics
type GetCatalogInfoRequest struct{}

// GetCatalogInfoResponse reports entry counts, duplicate ids and load time
type GetCatalogInfoResponse struct {
	Counts     catalog.Counts        `json:"counts"`
	Duplicates []catalog.DuplicateID `json:"duplicates,omitempty"`
	LoadedAt   time.Time             `json:"loadedAt"`
}
