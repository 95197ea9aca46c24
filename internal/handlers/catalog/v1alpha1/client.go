package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/sim-catalog/internal/errors"
)

// Client calls the catalog service over a gRPC connection. Errors come back
// as *errors.Error with the server's code and metadata.
type Client struct {
	conn grpc.ClientConnInterface
}

var _ CatalogServiceServer = (*Client)(nil)

// NewClient creates a catalog client on an existing connection
func NewClient(conn grpc.ClientConnInterface) *Client {
	return &Client{conn: conn}
}

func invoke[Req, Resp any](ctx context.Context, c *Client, method string, req *Req) (*Resp, error) {
	if req == nil {
		req = new(Req)
	}
	in, err := toStruct(req)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, FullMethod(method), in, out); err != nil {
		return nil, errors.FromGRPCError(err)
	}

	resp := new(Resp)
	if err := fromStruct(out, resp); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "malformed "+method+" response")
	}
	return resp, nil
}

func (c *Client) GetItems(ctx context.Context, req *GetItemsRequest) (*GetItemsResponse, error) {
	return invoke[GetItemsRequest, GetItemsResponse](ctx, c, MethodGetItems, req)
}

func (c *Client) GetEnchants(ctx context.Context, req *GetEnchantsRequest) (*GetEnchantsResponse, error) {
	return invoke[GetEnchantsRequest, GetEnchantsResponse](ctx, c, MethodGetEnchants, req)
}

func (c *Client) GetGems(ctx context.Context, req *GetGemsRequest) (*GetGemsResponse, error) {
	return invoke[GetGemsRequest, GetGemsResponse](ctx, c, MethodGetGems, req)
}

func (c *Client) GetMatchingGems(ctx context.Context, req *GetMatchingGemsRequest) (*GetMatchingGemsResponse, error) {
	return invoke[GetMatchingGemsRequest, GetMatchingGemsResponse](ctx, c, MethodGetMatchingGems, req)
}

func (c *Client) SearchItems(ctx context.Context, req *SearchItemsRequest) (*SearchItemsResponse, error) {
	return invoke[SearchItemsRequest, SearchItemsResponse](ctx, c, MethodSearchItems, req)
}

func (c *Client) LookupItemSpec(ctx context.Context, req *LookupItemSpecRequest) (*LookupItemSpecResponse, error) {
	return invoke[LookupItemSpecRequest, LookupItemSpecResponse](ctx, c, MethodLookupItemSpec, req)
}

func (c *Client) LookupEquipmentSpec(
	ctx context.Context,
	req *LookupEquipmentSpecRequest,
) (*LookupEquipmentSpecResponse, error) {
	return invoke[LookupEquipmentSpecRequest, LookupEquipmentSpecResponse](ctx, c, MethodLookupEquipmentSpec, req)
}

func (c *Client) GetItemIconData(ctx context.Context, req *GetIconDataRequest) (*GetIconDataResponse, error) {
	return invoke[GetIconDataRequest, GetIconDataResponse](ctx, c, MethodGetItemIconData, req)
}

func (c *Client) GetSpellIconData(ctx context.Context, req *GetIconDataRequest) (*GetIconDataResponse, error) {
	return invoke[GetIconDataRequest, GetIconDataResponse](ctx, c, MethodGetSpellIconData, req)
}

func (c *Client) GetCatalogInfo(ctx context.Context, req *GetCatalogInfoRequest) (*GetCatalogInfoResponse, error) {
	return invoke[GetCatalogInfoRequest, GetCatalogInfoResponse](ctx, c, MethodGetCatalogInfo, req)
}
