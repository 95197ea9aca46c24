// Package lookup implements the catalog lookup orchestrator: input
// validation, catalog access through the shared loader, and lookup metrics
package lookup

//go:generate mockgen -destination=mock/mock_service.go -package=lookupmock github.com/KirkDiggler/sim-catalog/internal/orchestrators/lookup Service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/sim-catalog/internal/catalog"
	"github.com/KirkDiggler/sim-catalog/internal/entities/items"
	"github.com/KirkDiggler/sim-catalog/internal/errors"
	"github.com/KirkDiggler/sim-catalog/internal/metrics"
)

// Search limits
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// Operation names used for metrics
const (
	OpGetItems            = "get_items"
	OpGetEnchants         = "get_enchants"
	OpGetGems             = "get_gems"
	OpGetMatchingGems     = "get_matching_gems"
	OpLookupItemSpec      = "lookup_item_spec"
	OpLookupEquipmentSpec = "lookup_equipment_spec"
	OpGetItemIconData     = "get_item_icon_data"
	OpGetSpellIconData    = "get_spell_icon_data"
	OpSearchItems         = "search_items"
	OpGetCatalogInfo      = "get_catalog_info"
)

// Service defines the interface for catalog lookups
type Service interface {
	// Listing
	GetItems(ctx context.Context, input *GetItemsInput) (*GetItemsOutput, error)
	GetEnchants(ctx context.Context, input *GetEnchantsInput) (*GetEnchantsOutput, error)
	GetGems(ctx context.Context, input *GetGemsInput) (*GetGemsOutput, error)
	GetMatchingGems(ctx context.Context, input *GetMatchingGemsInput) (*GetMatchingGemsOutput, error)
	SearchItems(ctx context.Context, input *SearchItemsInput) (*SearchItemsOutput, error)

	// Spec resolution
	LookupItemSpec(ctx context.Context, input *LookupItemSpecInput) (*LookupItemSpecOutput, error)
	LookupEquipmentSpec(ctx context.Context, input *LookupEquipmentSpecInput) (*LookupEquipmentSpecOutput, error)

	// Icons and metadata
	GetItemIconData(ctx context.Context, input *GetIconDataInput) (*GetIconDataOutput, error)
	GetSpellIconData(ctx context.Context, input *GetIconDataInput) (*GetIconDataOutput, error)
	GetCatalogInfo(ctx context.Context, input *GetCatalogInfoInput) (*GetCatalogInfoOutput, error)
}

// CatalogProvider hands out the shared catalog, loading it on first use.
// *catalog.Loader implements it.
type CatalogProvider interface {
	Initialize(ctx context.Context) (*catalog.Catalog, error)
	LoadedAt() time.Time
}

// Config holds the dependencies for the lookup orchestrator
type Config struct {
	Catalogs CatalogProvider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Catalogs == nil {
		vb.RequiredField("Catalogs")
	}
	return vb.Build()
}

type orchestrator struct {
	catalogs CatalogProvider
}

// NewOrchestrator creates a new lookup orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		catalogs: cfg.Catalogs,
	}, nil
}

func (o *orchestrator) catalog(ctx context.Context, op string) (*catalog.Catalog, error) {
	c, err := o.catalogs.Initialize(ctx)
	if err != nil {
		metrics.Lookups.WithLabelValues(op, metrics.ResultError).Inc()
		if errors.GetCode(err) == errors.CodeCanceled || errors.GetCode(err) == errors.CodeDeadlineExceeded {
			return nil, err
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "catalog is unavailable")
	}
	return c, nil
}

func validateSlot(slot items.ItemSlot) error {
	if !slot.Valid() {
		return errors.InvalidArgumentf("unknown item slot %d", slot).WithMeta("slot", int32(slot))
	}
	return nil
}

func validateColor(color items.GemColor) error {
	if !color.Valid() {
		return errors.InvalidArgumentf("unknown gem color %d", color).WithMeta("color", int32(color))
	}
	return nil
}

func (o *orchestrator) GetItems(ctx context.Context, input *GetItemsInput) (*GetItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	c, err := o.catalog(ctx, OpGetItems)
	if err != nil {
		return nil, err
	}

	metrics.Lookups.WithLabelValues(OpGetItems, metrics.ResultSuccess).Inc()
	return &GetItemsOutput{Items: c.Items(input.Slot)}, nil
}

func (o *orchestrator) GetEnchants(ctx context.Context, input *GetEnchantsInput) (*GetEnchantsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateSlot(input.Slot); err != nil {
		return nil, err
	}

	c, err := o.catalog(ctx, OpGetEnchants)
	if err != nil {
		return nil, err
	}

	metrics.Lookups.WithLabelValues(OpGetEnchants, metrics.ResultSuccess).Inc()
	return &GetEnchantsOutput{Enchants: c.Enchants(input.Slot)}, nil
}

func (o *orchestrator) GetGems(ctx context.Context, input *GetGemsInput) (*GetGemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Color != nil {
		if err := validateColor(*input.Color); err != nil {
			return nil, err
		}
	}

	c, err := o.catalog(ctx, OpGetGems)
	if err != nil {
		return nil, err
	}

	metrics.Lookups.WithLabelValues(OpGetGems, metrics.ResultSuccess).Inc()
	return &GetGemsOutput{Gems: c.Gems(input.Color)}, nil
}

func (o *orchestrator) GetMatchingGems(ctx context.Context, input *GetMatchingGemsInput) (*GetMatchingGemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateColor(input.Color); err != nil {
		return nil, err
	}

	c, err := o.catalog(ctx, OpGetMatchingGems)
	if err != nil {
		return nil, err
	}

	metrics.Lookups.WithLabelValues(OpGetMatchingGems, metrics.ResultSuccess).Inc()
	return &GetMatchingGemsOutput{Gems: c.MatchingGems(input.Color)}, nil
}

func (o *orchestrator) SearchItems(ctx context.Context, input *SearchItemsInput) (*SearchItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(input.Query) == "" {
		vb.RequiredField("query")
	}
	if input.Limit < 0 {
		vb.InvalidField("limit", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	limit := input.Limit
	switch {
	case limit == 0:
		limit = DefaultSearchLimit
	case limit > MaxSearchLimit:
		limit = MaxSearchLimit
	}

	c, err := o.catalog(ctx, OpSearchItems)
	if err != nil {
		return nil, err
	}

	found := c.SearchItems(input.Query, limit)
	result := metrics.ResultSuccess
	if len(found) == 0 {
		result = metrics.ResultNotFound
	}
	metrics.Lookups.WithLabelValues(OpSearchItems, result).Inc()

	return &SearchItemsOutput{Items: found}, nil
}

func (o *orchestrator) LookupItemSpec(ctx context.Context, input *LookupItemSpecInput) (*LookupItemSpecOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.catalog(ctx, OpLookupItemSpec)
	if err != nil {
		return nil, err
	}

	equipped, found := c.LookupItemSpec(input.Spec)
	if !found {
		metrics.Lookups.WithLabelValues(OpLookupItemSpec, metrics.ResultNotFound).Inc()
		return &LookupItemSpecOutput{}, nil
	}

	metrics.Lookups.WithLabelValues(OpLookupItemSpec, metrics.ResultSuccess).Inc()
	return &LookupItemSpecOutput{Item: equipped, Found: true}, nil
}

func (o *orchestrator) LookupEquipmentSpec(ctx context.Context, input *LookupEquipmentSpecInput) (*LookupEquipmentSpecOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.catalog(ctx, OpLookupEquipmentSpec)
	if err != nil {
		return nil, err
	}

	gear, err := c.LookupEquipmentSpec(input.Spec)
	if err != nil {
		metrics.Lookups.WithLabelValues(OpLookupEquipmentSpec, metrics.ResultError).Inc()

		var conflict *catalog.SlotConflictError
		if errors.As(err, &conflict) {
			metrics.SlotConflicts.Inc()
			slog.Info("Equipment spec has a slot conflict",
				"item_id", conflict.ItemID,
				"index", conflict.Index,
				"items", len(input.Spec.Items))

			slots := make([]string, len(conflict.Slots))
			for i, s := range conflict.Slots {
				slots[i] = s.String()
			}
			return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, conflict.Error()).
				WithMeta("item_id", conflict.ItemID).
				WithMeta("index", conflict.Index).
				WithMeta("slots", slots)
		}
		return nil, errors.Wrap(err, "failed to resolve equipment spec")
	}

	var skipped []int32
	for _, spec := range input.Spec.Items {
		if _, ok := c.Item(spec.ID); !ok {
			skipped = append(skipped, spec.ID)
		}
	}

	metrics.Lookups.WithLabelValues(OpLookupEquipmentSpec, metrics.ResultSuccess).Inc()
	return &LookupEquipmentSpecOutput{Gear: gear, SkippedItemIDs: skipped}, nil
}

func (o *orchestrator) GetItemIconData(ctx context.Context, input *GetIconDataInput) (*GetIconDataOutput, error) {
	return o.iconData(ctx, input, OpGetItemIconData, (*catalog.Catalog).ItemIcon)
}

func (o *orchestrator) GetSpellIconData(ctx context.Context, input *GetIconDataInput) (*GetIconDataOutput, error) {
	return o.iconData(ctx, input, OpGetSpellIconData, (*catalog.Catalog).SpellIcon)
}

func (o *orchestrator) iconData(
	ctx context.Context,
	input *GetIconDataInput,
	op string,
	lookup func(*catalog.Catalog, int32) items.IconData,
) (*GetIconDataOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.catalog(ctx, op)
	if err != nil {
		return nil, err
	}

	icon := lookup(c, input.ID)
	result := metrics.ResultSuccess
	if icon == (items.IconData{}) {
		result = metrics.ResultNotFound
	}
	metrics.Lookups.WithLabelValues(op, result).Inc()

	return &GetIconDataOutput{Icon: icon}, nil
}

func (o *orchestrator) GetCatalogInfo(ctx context.Context, input *GetCatalogInfoInput) (*GetCatalogInfoOutput, error) {
	c, err := o.catalog(ctx, OpGetCatalogInfo)
	if err != nil {
		return nil, err
	}

	metrics.Lookups.WithLabelValues(OpGetCatalogInfo, metrics.ResultSuccess).Inc()
	return &GetCatalogInfoOutput{
		Counts:     c.Counts(),
		Duplicates: c.Duplicates(),
		LoadedAt:   o.catalogs.LoadedAt(),
	}, nil
}
