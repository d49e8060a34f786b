// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: parkpilot/v1/showings.proto

package parkpilotv1

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
	ShowingsService_BookShowing_FullMethodName             = "/parkpilot.v1.ShowingsService/BookShowing"
	ShowingsService_ListShowings_FullMethodName            = "/parkpilot.v1.ShowingsService/ListShowings"
	ShowingsService_ConfirmShowing_FullMethodName          = "/parkpilot.v1.ShowingsService/ConfirmShowing"
	ShowingsService_CancelShowing_FullMethodName           = "/parkpilot.v1.ShowingsService/CancelShowing"
	ShowingsService_CompleteShowing_FullMethodName         = "/parkpilot.v1.ShowingsService/CompleteShowing"
	ShowingsService_BeginCalendarConnect_FullMethodName    = "/parkpilot.v1.ShowingsService/BeginCalendarConnect"
	ShowingsService_CompleteCalendarConnect_FullMethodName = "/parkpilot.v1.ShowingsService/CompleteCalendarConnect"
	ShowingsService_DisconnectCalendar_FullMethodName      = "/parkpilot.v1.ShowingsService/DisconnectCalendar"
	ShowingsService_GetCalendarStatus_FullMethodName       = "/parkpilot.v1.ShowingsService/GetCalendarStatus"
)

// ShowingsServiceClient is the client API for ShowingsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ShowingsServiceClient interface {
	BookShowing(ctx context.Context, in *BookShowingRequest, opts ...grpc.CallOption) (*BookShowingResponse, error)
	ListShowings(ctx context.Context, in *ListShowingsRequest, opts ...grpc.CallOption) (*ListShowingsResponse, error)
	ConfirmShowing(ctx context.Context, in *ConfirmShowingRequest, opts ...grpc.CallOption) (*ConfirmShowingResponse, error)
	CancelShowing(ctx context.Context, in *CancelShowingRequest, opts ...grpc.CallOption) (*CancelShowingResponse, error)
	CompleteShowing(ctx context.Context, in *CompleteShowingRequest, opts ...grpc.CallOption) (*CompleteShowingResponse, error)
	BeginCalendarConnect(ctx context.Context, in *BeginCalendarConnectRequest, opts ...grpc.CallOption) (*BeginCalendarConnectResponse, error)
	CompleteCalendarConnect(ctx context.Context, in *CompleteCalendarConnectRequest, opts ...grpc.CallOption) (*CompleteCalendarConnectResponse, error)
	DisconnectCalendar(ctx context.Context, in *DisconnectCalendarRequest, opts ...grpc.CallOption) (*DisconnectCalendarResponse, error)
	GetCalendarStatus(ctx context.Context, in *GetCalendarStatusRequest, opts ...grpc.CallOption) (*GetCalendarStatusResponse, error)
}

type showingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewShowingsServiceClient(cc grpc.ClientConnInterface) ShowingsServiceClient {
	return &showingsServiceClient{cc}
}

func (c *showingsServiceClient) BookShowing(ctx context.Context, in *BookShowingRequest, opts ...grpc.CallOption) (*BookShowingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BookShowingResponse)
	err := c.cc.Invoke(ctx, ShowingsService_BookShowing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *showingsServiceClient) ListShowings(ctx context.Context, in *ListShowingsRequest, opts ...grpc.CallOption) (*ListShowingsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListShowingsResponse)
	err := c.cc.Invoke(ctx, ShowingsService_ListShowings_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *showingsServiceClient) ConfirmShowing(ctx context.Context, in *ConfirmShowingRequest, opts ...grpc.CallOption) (*ConfirmShowingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmShowingResponse)
	err := c.cc.Invoke(ctx, ShowingsService_ConfirmShowing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *showingsServiceClient) CancelShowing(ctx context.Context, in *CancelShowingRequest, opts ...grpc.CallOption) (*CancelShowingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelShowingResponse)
	err := c.cc.Invoke(ctx, ShowingsService_CancelShowing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *showingsServiceClient) CompleteShowing(ctx context.Context, in *CompleteShowingRequest, opts ...grpc.CallOption) (*CompleteShowingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompleteShowingResponse)
	err := c.cc.Invoke(ctx, ShowingsService_CompleteShowing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *showingsServiceClient) BeginCalendarConnect(ctx context.Context, in *BeginCalendarConnectRequest, opts ...grpc.CallOption) (*BeginCalendarConnectResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BeginCalendarConnectResponse)
	err := c.cc.Invoke(ctx, ShowingsService_BeginCalendarConnect_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *showingsServiceClient) CompleteCalendarConnect(ctx context.Context, in *CompleteCalendarConnectRequest, opts ...grpc.CallOption) (*CompleteCalendarConnectResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CompleteCalendarConnectResponse)
	err := c.cc.Invoke(ctx, ShowingsService_CompleteCalendarConnect_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *showingsServiceClient) DisconnectCalendar(ctx context.Context, in *DisconnectCalendarRequest, opts ...grpc.CallOption) (*DisconnectCalendarResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DisconnectCalendarResponse)
	err := c.cc.Invoke(ctx, ShowingsService_DisconnectCalendar_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *showingsServiceClient) GetCalendarStatus(ctx context.Context, in *GetCalendarStatusRequest, opts ...grpc.CallOption) (*GetCalendarStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetCalendarStatusResponse)
	err := c.cc.Invoke(ctx, ShowingsService_GetCalendarStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ShowingsServiceServer is the server API for ShowingsService service.
// All implementations must embed UnimplementedShowingsServiceServer
// for forward compatibility.
type ShowingsServiceServer interface {
	BookShowing(context.Context, *BookShowingRequest) (*BookShowingResponse, error)
	ListShowings(context.Context, *ListShowingsRequest) (*ListShowingsResponse, error)
	ConfirmShowing(context.Context, *ConfirmShowingRequest) (*ConfirmShowingResponse, error)
	CancelShowing(context.Context, *CancelShowingRequest) (*CancelShowingResponse, error)
	CompleteShowing(context.Context, *CompleteShowingRequest) (*CompleteShowingResponse, error)
	BeginCalendarConnect(context.Context, *BeginCalendarConnectRequest) (*BeginCalendarConnectResponse, error)
	CompleteCalendarConnect(context.Context, *CompleteCalendarConnectRequest) (*CompleteCalendarConnectResponse, error)
	DisconnectCalendar(context.Context, *DisconnectCalendarRequest) (*DisconnectCalendarResponse, error)
	GetCalendarStatus(context.Context, *GetCalendarStatusRequest) (*GetCalendarStatusResponse, error)
	mustEmbedUnimplementedShowingsServiceServer()
}

// UnimplementedShowingsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedShowingsServiceServer struct{}

func (UnimplementedShowingsServiceServer) BookShowing(context.Context, *BookShowingRequest) (*BookShowingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BookShowing not implemented")
}
func (UnimplementedShowingsServiceServer) ListShowings(context.Context, *ListShowingsRequest) (*ListShowingsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListShowings not implemented")
}
func (UnimplementedShowingsServiceServer) ConfirmShowing(context.Context, *ConfirmShowingRequest) (*ConfirmShowingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmShowing not implemented")
}
func (UnimplementedShowingsServiceServer) CancelShowing(context.Context, *CancelShowingRequest) (*CancelShowingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelShowing not implemented")
}
func (UnimplementedShowingsServiceServer) CompleteShowing(context.Context, *CompleteShowingRequest) (*CompleteShowingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteShowing not implemented")
}
func (UnimplementedShowingsServiceServer) BeginCalendarConnect(context.Context, *BeginCalendarConnectRequest) (*BeginCalendarConnectResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BeginCalendarConnect not implemented")
}
func (UnimplementedShowingsServiceServer) CompleteCalendarConnect(context.Context, *CompleteCalendarConnectRequest) (*CompleteCalendarConnectResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteCalendarConnect not implemented")
}
func (UnimplementedShowingsServiceServer) DisconnectCalendar(context.Context, *DisconnectCalendarRequest) (*DisconnectCalendarResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DisconnectCalendar not implemented")
}
func (UnimplementedShowingsServiceServer) GetCalendarStatus(context.Context, *GetCalendarStatusRequest) (*GetCalendarStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCalendarStatus not implemented")
}
func (UnimplementedShowingsServiceServer) mustEmbedUnimplementedShowingsServiceServer() {}
func (UnimplementedShowingsServiceServer) testEmbeddedByValue()                         {}

// UnsafeShowingsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ShowingsServiceServer will
// result in compilation errors.
type UnsafeShowingsServiceServer interface {
	mustEmbedUnimplementedShowingsServiceServer()
}

func RegisterShowingsServiceServer(s grpc.ServiceRegistrar, srv ShowingsServiceServer) {
	// If the following call pancis, it indicates UnimplementedShowingsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ShowingsService_ServiceDesc, srv)
}

func _ShowingsService_BookShowing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BookShowingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowingsServiceServer).BookShowing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShowingsService_BookShowing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowingsServiceServer).BookShowing(ctx, req.(*BookShowingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShowingsService_ListShowings_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListShowingsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowingsServiceServer).ListShowings(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShowingsService_ListShowings_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowingsServiceServer).ListShowings(ctx, req.(*ListShowingsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShowingsService_ConfirmShowing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmShowingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowingsServiceServer).ConfirmShowing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShowingsService_ConfirmShowing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowingsServiceServer).ConfirmShowing(ctx, req.(*ConfirmShowingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShowingsService_CancelShowing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelShowingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowingsServiceServer).CancelShowing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShowingsService_CancelShowing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowingsServiceServer).CancelShowing(ctx, req.(*CancelShowingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShowingsService_CompleteShowing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteShowingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowingsServiceServer).CompleteShowing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShowingsService_CompleteShowing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowingsServiceServer).CompleteShowing(ctx, req.(*CompleteShowingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShowingsService_BeginCalendarConnect_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BeginCalendarConnectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowingsServiceServer).BeginCalendarConnect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShowingsService_BeginCalendarConnect_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowingsServiceServer).BeginCalendarConnect(ctx, req.(*BeginCalendarConnectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShowingsService_CompleteCalendarConnect_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteCalendarConnectRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowingsServiceServer).CompleteCalendarConnect(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShowingsService_CompleteCalendarConnect_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowingsServiceServer).CompleteCalendarConnect(ctx, req.(*CompleteCalendarConnectRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShowingsService_DisconnectCalendar_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DisconnectCalendarRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowingsServiceServer).DisconnectCalendar(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShowingsService_DisconnectCalendar_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowingsServiceServer).DisconnectCalendar(ctx, req.(*DisconnectCalendarRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ShowingsService_GetCalendarStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCalendarStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ShowingsServiceServer).GetCalendarStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ShowingsService_GetCalendarStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ShowingsServiceServer).GetCalendarStatus(ctx, req.(*GetCalendarStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ShowingsService_ServiceDesc is the grpc.ServiceDesc for ShowingsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ShowingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "parkpilot.v1.ShowingsService",
	HandlerType: (*ShowingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "BookShowing",
			Handler:    _ShowingsService_BookShowing_Handler,
		},
		{
			MethodName: "ListShowings",
			Handler:    _ShowingsService_ListShowings_Handler,
		},
		{
			MethodName: "ConfirmShowing",
			Handler:    _ShowingsService_ConfirmShowing_Handler,
		},
		{
			MethodName: "CancelShowing",
			Handler:    _ShowingsService_CancelShowing_Handler,
		},
		{
			MethodName: "CompleteShowing",
			Handler:    _ShowingsService_CompleteShowing_Handler,
		},
		{
			MethodName: "BeginCalendarConnect",
			Handler:    _ShowingsService_BeginCalendarConnect_Handler,
		},
		{
			MethodName: "CompleteCalendarConnect",
			Handler:    _ShowingsService_CompleteCalendarConnect_Handler,
		},
		{
			MethodName: "DisconnectCalendar",
			Handler:    _ShowingsService_DisconnectCalendar_Handler,
		},
		{
			MethodName: "GetCalendarStatus",
			Handler:    _ShowingsService_GetCalendarStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "parkpilot/v1/showings.proto",
}
