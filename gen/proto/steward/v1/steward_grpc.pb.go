// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: steward/v1/steward.proto

package stewardv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	BulkService_FilterReceipts_FullMethodName        = "/steward.v1.BulkService/FilterReceipts"
	BulkService_GetFilteredReceiptIds_FullMethodName = "/steward.v1.BulkService/GetFilteredReceiptIds"
	BulkService_GetFilterOptions_FullMethodName      = "/steward.v1.BulkService/GetFilterOptions"
	BulkService_GetReceiptStats_FullMethodName       = "/steward.v1.BulkService/GetReceiptStats"
	BulkService_BulkUpdate_FullMethodName            = "/steward.v1.BulkService/BulkUpdate"
	BulkService_BulkDelete_FullMethodName            = "/steward.v1.BulkService/BulkDelete"
)

// BulkServiceClient is the client API for BulkService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// BulkService exposes filtering and batch mutation over a user's receipts.
type BulkServiceClient interface {
	FilterReceipts(ctx context.Context, in *FilterReceiptsRequest, opts ...grpc.CallOption) (*FilterReceiptsResponse, error)
	GetFilteredReceiptIds(ctx context.Context, in *GetFilteredReceiptIdsRequest, opts ...grpc.CallOption) (*GetFilteredReceiptIdsResponse, error)
	GetFilterOptions(ctx context.Context, in *GetFilterOptionsRequest, opts ...grpc.CallOption) (*GetFilterOptionsResponse, error)
	GetReceiptStats(ctx context.Context, in *GetReceiptStatsRequest, opts ...grpc.CallOption) (*GetReceiptStatsResponse, error)
	BulkUpdate(ctx context.Context, in *BulkUpdateRequest, opts ...grpc.CallOption) (*BulkUpdateResponse, error)
	BulkDelete(ctx context.Context, in *BulkDeleteRequest, opts ...grpc.CallOption) (*BulkDeleteResponse, error)
}

type bulkServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBulkServiceClient(cc grpc.ClientConnInterface) BulkServiceClient {
	return &bulkServiceClient{cc}
}

func (c *bulkServiceClient) FilterReceipts(ctx context.Context, in *FilterReceiptsRequest, opts ...grpc.CallOption) (*FilterReceiptsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FilterReceiptsResponse)
	err := c.cc.Invoke(ctx, BulkService_FilterReceipts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bulkServiceClient) GetFilteredReceiptIds(ctx context.Context, in *GetFilteredReceiptIdsRequest, opts ...grpc.CallOption) (*GetFilteredReceiptIdsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFilteredReceiptIdsResponse)
	err := c.cc.Invoke(ctx, BulkService_GetFilteredReceiptIds_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bulkServiceClient) GetFilterOptions(ctx context.Context, in *GetFilterOptionsRequest, opts ...grpc.CallOption) (*GetFilterOptionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFilterOptionsResponse)
	err := c.cc.Invoke(ctx, BulkService_GetFilterOptions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bulkServiceClient) GetReceiptStats(ctx context.Context, in *GetReceiptStatsRequest, opts ...grpc.CallOption) (*GetReceiptStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReceiptStatsResponse)
	err := c.cc.Invoke(ctx, BulkService_GetReceiptStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bulkServiceClient) BulkUpdate(ctx context.Context, in *BulkUpdateRequest, opts ...grpc.CallOption) (*BulkUpdateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BulkUpdateResponse)
	err := c.cc.Invoke(ctx, BulkService_BulkUpdate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *bulkServiceClient) BulkDelete(ctx context.Context, in *BulkDeleteRequest, opts ...grpc.CallOption) (*BulkDeleteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BulkDeleteResponse)
	err := c.cc.Invoke(ctx, BulkService_BulkDelete_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BulkServiceServer is the server API for BulkService service.
// All implementations must embed UnimplementedBulkServiceServer
// for forward compatibility.
//
// BulkService exposes filtering and batch mutation over a user's receipts.
type BulkServiceServer interface {
	FilterReceipts(context.Context, *FilterReceiptsRequest) (*FilterReceiptsResponse, error)
	GetFilteredReceiptIds(context.Context, *GetFilteredReceiptIdsRequest) (*GetFilteredReceiptIdsResponse, error)
	GetFilterOptions(context.Context, *GetFilterOptionsRequest) (*GetFilterOptionsResponse, error)
	GetReceiptStats(context.Context, *GetReceiptStatsRequest) (*GetReceiptStatsResponse, error)
	BulkUpdate(context.Context, *BulkUpdateRequest) (*BulkUpdateResponse, error)
	BulkDelete(context.Context, *BulkDeleteRequest) (*BulkDeleteResponse, error)
	mustEmbedUnimplementedBulkServiceServer()
}

// UnimplementedBulkServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedBulkServiceServer struct{}

func (UnimplementedBulkServiceServer) FilterReceipts(context.Context, *FilterReceiptsRequest) (*FilterReceiptsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FilterReceipts not implemented")
}
func (UnimplementedBulkServiceServer) GetFilteredReceiptIds(context.Context, *GetFilteredReceiptIdsRequest) (*GetFilteredReceiptIdsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFilteredReceiptIds not implemented")
}
func (UnimplementedBulkServiceServer) GetFilterOptions(context.Context, *GetFilterOptionsRequest) (*GetFilterOptionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFilterOptions not implemented")
}
func (UnimplementedBulkServiceServer) GetReceiptStats(context.Context, *GetReceiptStatsRequest) (*GetReceiptStatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReceiptStats not implemented")
}
func (UnimplementedBulkServiceServer) BulkUpdate(context.Context, *BulkUpdateRequest) (*BulkUpdateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BulkUpdate not implemented")
}
func (UnimplementedBulkServiceServer) BulkDelete(context.Context, *BulkDeleteRequest) (*BulkDeleteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BulkDelete not implemented")
}
func (UnimplementedBulkServiceServer) mustEmbedUnimplementedBulkServiceServer() {}
func (UnimplementedBulkServiceServer) testEmbeddedByValue()                     {}

// UnsafeBulkServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to BulkServiceServer will
// result in compilation errors.
type UnsafeBulkServiceServer interface {
	mustEmbedUnimplementedBulkServiceServer()
}

func RegisterBulkServiceServer(s grpc.ServiceRegistrar, srv BulkServiceServer) {
	// If the following call pancis, it indicates UnimplementedBulkServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&BulkService_ServiceDesc, srv)
}

func _BulkService_FilterReceipts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FilterReceiptsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BulkServiceServer).FilterReceipts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BulkService_FilterReceipts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BulkServiceServer).FilterReceipts(ctx, req.(*FilterReceiptsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BulkService_GetFilteredReceiptIds_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFilteredReceiptIdsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BulkServiceServer).GetFilteredReceiptIds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BulkService_GetFilteredReceiptIds_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BulkServiceServer).GetFilteredReceiptIds(ctx, req.(*GetFilteredReceiptIdsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BulkService_GetFilterOptions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFilterOptionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BulkServiceServer).GetFilterOptions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BulkService_GetFilterOptions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BulkServiceServer).GetFilterOptions(ctx, req.(*GetFilterOptionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BulkService_GetReceiptStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReceiptStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BulkServiceServer).GetReceiptStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BulkService_GetReceiptStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BulkServiceServer).GetReceiptStats(ctx, req.(*GetReceiptStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BulkService_BulkUpdate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BulkUpdateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BulkServiceServer).BulkUpdate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BulkService_BulkUpdate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BulkServiceServer).BulkUpdate(ctx, req.(*BulkUpdateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BulkService_BulkDelete_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BulkDeleteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BulkServiceServer).BulkDelete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BulkService_BulkDelete_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(BulkServiceServer).BulkDelete(ctx, req.(*BulkDeleteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// BulkService_ServiceDesc is the grpc.ServiceDesc for BulkService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var BulkService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "steward.v1.BulkService",
	HandlerType: (*BulkServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "FilterReceipts",
			Handler:    _BulkService_FilterReceipts_Handler,
		},
		{
			MethodName: "GetFilteredReceiptIds",
			Handler:    _BulkService_GetFilteredReceiptIds_Handler,
		},
		{
			MethodName: "GetFilterOptions",
			Handler:    _BulkService_GetFilterOptions_Handler,
		},
		{
			MethodName: "GetReceiptStats",
			Handler:    _BulkService_GetReceiptStats_Handler,
		},
		{
			MethodName: "BulkUpdate",
			Handler:    _BulkService_BulkUpdate_Handler,
		},
		{
			MethodName: "BulkDelete",
			Handler:    _BulkService_BulkDelete_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "steward/v1/steward.proto",
}

const (
	ExportService_ExportReceipts_FullMethodName = "/steward.v1.ExportService/ExportReceipts"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExportService renders validated receipt selections into export payloads.
type ExportServiceClient interface {
	ExportReceipts(ctx context.Context, in *ExportReceiptsRequest, opts ...grpc.CallOption) (*ExportReceiptsResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportReceipts(ctx context.Context, in *ExportReceiptsRequest, opts ...grpc.CallOption) (*ExportReceiptsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportReceiptsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportReceipts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
//
// ExportService renders validated receipt selections into export payloads.
type ExportServiceServer interface {
	ExportReceipts(context.Context, *ExportReceiptsRequest) (*ExportReceiptsResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportReceipts(context.Context, *ExportReceiptsRequest) (*ExportReceiptsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportReceipts not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportReceipts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportReceiptsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportReceipts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportReceipts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportReceipts(ctx, req.(*ExportReceiptsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "steward.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportReceipts",
			Handler:    _ExportService_ExportReceipts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "steward/v1/steward.proto",
}
