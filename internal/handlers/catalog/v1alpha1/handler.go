// Package v1alpha1 handles the catalog grpc service interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/sim-catalog/internal/errors"
	"github.com/KirkDiggler/sim-catalog/internal/orchestrators/lookup"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	LookupService lookup.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.LookupService == nil {
		return errors.InvalidArgument("lookup service is required")
	}
	return nil
}

// Handler implements the catalog gRPC service
type Handler struct {
	lookupService lookup.Service
}

var _ CatalogServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		lookupService: cfg.LookupService,
	}, nil
}

// GetItems lists the items that can be equipped in a slot
func (h *Handler) GetItems(ctx context.Context, req *GetItemsRequest) (*GetItemsResponse, error) {
	output, err := h.lookupService.GetItems(ctx, &lookup.GetItemsInput{Slot: req.Slot})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetItemsResponse{Items: output.Items}, nil
}

// GetEnchants lists the enchants that apply to a slot
func (h *Handler) GetEnchants(ctx context.Context, req *GetEnchantsRequest) (*GetEnchantsResponse, error) {
	output, err := h.lookupService.GetEnchants(ctx, &lookup.GetEnchantsInput{Slot: req.Slot})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetEnchantsResponse{Enchants: output.Enchants}, nil
}

// GetGems lists gems, filtered by socket eligibility when a color is given
func (h *Handler) GetGems(ctx context.Context, req *GetGemsRequest) (*GetGemsResponse, error) {
	output, err := h.lookupService.GetGems(ctx, &lookup.GetGemsInput{Color: req.Color})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetGemsResponse{Gems: output.Gems}, nil
}

// GetMatchingGems lists the gems that satisfy a socket color
func (h *Handler) GetMatchingGems(
	ctx context.Context,
	req *GetMatchingGemsRequest,
) (*GetMatchingGemsResponse, error) {
	output, err := h.lookupService.GetMatchingGems(ctx, &lookup.GetMatchingGemsInput{Color: req.Color})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetMatchingGemsResponse{Gems: output.Gems}, nil
}

// SearchItems finds items by name
func (h *Handler) SearchItems(ctx context.Context, req *SearchItemsRequest) (*SearchItemsResponse, error) {
	output, err := h.lookupService.SearchItems(ctx, &lookup.SearchItemsInput{
		Query: req.Query,
		Limit: req.Limit,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SearchItemsResponse{Items: output.Items}, nil
}

// LookupItemSpec hydrates a single item spec
func (h *Handler) LookupItemSpec(
	ctx context.Context,
	req *LookupItemSpecRequest,
) (*LookupItemSpecResponse, error) {
	output, err := h.lookupService.LookupItemSpec(ctx, &lookup.LookupItemSpecInput{Spec: req.Spec})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LookupItemSpecResponse{
		Item:  output.Item,
		Found: output.Found,
	}, nil
}

// LookupEquipmentSpec resolves an equipment spec into slotted gear
func (h *Handler) LookupEquipmentSpec(
	ctx context.Context,
	req *LookupEquipmentSpecRequest,
) (*LookupEquipmentSpecResponse, error) {
	output, err := h.lookupService.LookupEquipmentSpec(ctx, &lookup.LookupEquipmentSpecInput{Spec: req.Spec})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LookupEquipmentSpecResponse{
		Gear:           output.Gear,
		SkippedItemIDs: output.SkippedItemIDs,
	}, nil
}

// GetItemIconData returns display data for an item id
func (h *Handler) GetItemIconData(ctx context.Context, req *GetIconDataRequest) (*GetIconDataResponse, error) {
	output, err := h.lookupService.GetItemIconData(ctx, &lookup.GetIconDataInput{ID: req.ID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetIconDataResponse{Icon: output.Icon}, nil
}

// GetSpellIconData returns display data for a spell id
func (h *Handler) GetSpellIconData(ctx context.Context, req *GetIconDataRequest) (*GetIconDataResponse, error) {
	output, err := h.lookupService.GetSpellIconData(ctx, &lookup.GetIconDataInput{ID: req.ID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetIconDataResponse{Icon: output.Icon}, nil
}

// GetCatalogInfo reports entry counts, duplicates and load time
func (h *Handler) GetCatalogInfo(
	ctx context.Context,
	_ *GetCatalogInfoRequest,
) (*GetCatalogInfoResponse, error) {
	output, err := h.lookupService.GetCatalogInfo(ctx, &lookup.GetCatalogInfoInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetCatalogInfoResponse{
		Counts:     output.Counts,
		Duplicates: output.Duplicates,
		LoadedAt:   output.LoadedAt,
	}, nil
}
