package v1alpha1

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/sim-catalog/internal/errors"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "catalog.v1alpha1.CatalogService"

// Method names
const (
	MethodGetItems            = "GetItems"
	MethodGetEnchants         = "GetEnchants"
	MethodGetGems             = "GetGems"
	MethodGetMatchingGems     = "GetMatchingGems"
	MethodSearchItems         = "SearchItems"
	MethodLookupItemSpec      = "LookupItemSpec"
	MethodLookupEquipmentSpec = "LookupEquipmentSpec"
	MethodGetItemIconData     = "GetItemIconData"
	MethodGetSpellIconData    = "GetSpellIconData"
	MethodGetCatalogInfo      = "GetCatalogInfo"
)

// CatalogServiceServer is the server API for the catalog service
type CatalogServiceServer interface {
	GetItems(context.Context, *GetItemsRequest) (*GetItemsResponse, error)
	GetEnchants(context.Context, *GetEnchantsRequest) (*GetEnchantsResponse, error)
	GetGems(context.Context, *GetGemsRequest) (*GetGemsResponse, error)
	GetMatchingGems(context.Context, *GetMatchingGemsRequest) (*GetMatchingGemsResponse, error)
	SearchItems(context.Context, *SearchItemsRequest) (*SearchItemsResponse, error)
	LookupItemSpec(context.Context, *LookupItemSpecRequest) (*LookupItemSpecResponse, error)
	LookupEquipmentSpec(context.Context, *LookupEquipmentSpecRequest) (*LookupEquipmentSpecResponse, error)
	GetItemIconData(context.Context, *GetIconDataRequest) (*GetIconDataResponse, error)
	GetSpellIconData(context.Context, *GetIconDataRequest) (*GetIconDataResponse, error)
	GetCatalogInfo(context.Context, *GetCatalogInfoRequest) (*GetCatalogInfoResponse, error)
}

// CatalogServiceDesc describes the catalog service for grpc.Server
var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodGetItems, CatalogServiceServer.GetItems),
		unary(MethodGetEnchants, CatalogServiceServer.GetEnchants),
		unary(MethodGetGems, CatalogServiceServer.GetGems),
		unary(MethodGetMatchingGems, CatalogServiceServer.GetMatchingGems),
		unary(MethodSearchItems, CatalogServiceServer.SearchItems),
		unary(MethodLookupItemSpec, CatalogServiceServer.LookupItemSpec),
		unary(MethodLookupEquipmentSpec, CatalogServiceServer.LookupEquipmentSpec),
		unary(MethodGetItemIconData, CatalogServiceServer.GetItemIconData),
		unary(MethodGetSpellIconData, CatalogServiceServer.GetSpellIconData),
		unary(MethodGetCatalogInfo, CatalogServiceServer.GetCatalogInfo),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1alpha1/catalog.proto",
}

// RegisterCatalogServiceServer registers the catalog service with a gRPC server
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

// FullMethod returns the "/service/method" path for a method name
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unary[Req, Resp any](
	name string,
	call func(CatalogServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(
			srv interface{},
			ctx context.Context,
			dec func(interface{}) error,
			interceptor grpc.UnaryServerInterceptor,
		) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}

			handle := func(ctx context.Context, req interface{}) (interface{}, error) {
				var typed Req
				if err := fromStruct(req.(*structpb.Struct), &typed); err != nil {
					return nil, errors.ToGRPCError(err)
				}
				out, err := call(srv.(CatalogServiceServer), ctx, &typed)
				if err != nil {
					return nil, err
				}
				body, err := toStruct(out)
				if err != nil {
					return nil, errors.ToGRPCError(err)
				}
				return body, nil
			}

			if interceptor == nil {
				return handle(ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(name),
			}
			return interceptor(ctx, in, info, handle)
		},
	}
}

func toStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	body := new(structpb.Struct)
	if err := protojson.Unmarshal(raw, body); err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	return body, nil
}

func fromStruct(body *structpb.Struct, v interface{}) error {
	raw, err := protojson.Marshal(body)
	if err != nil {
		return errors.InvalidArgumentf("malformed message: %v", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return errors.InvalidArgumentf("malformed message: %v", err)
	}
	return nil
}
