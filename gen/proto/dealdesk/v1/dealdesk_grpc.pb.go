// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: dealdesk/v1/dealdesk.proto

package dealdeskv1

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
	VenturesService_CreateVenture_FullMethodName = "/dealdesk.v1.VenturesService/CreateVenture"
	VenturesService_GetVenture_FullMethodName    = "/dealdesk.v1.VenturesService/GetVenture"
	VenturesService_ListVentures_FullMethodName  = "/dealdesk.v1.VenturesService/ListVentures"
)

// VenturesServiceClient is the client API for VenturesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// VenturesService manages the owner aggregate for diligence documents.
type VenturesServiceClient interface {
	CreateVenture(ctx context.Context, in *CreateVentureRequest, opts ...grpc.CallOption) (*CreateVentureResponse, error)
	GetVenture(ctx context.Context, in *GetVentureRequest, opts ...grpc.CallOption) (*GetVentureResponse, error)
	ListVentures(ctx context.Context, in *ListVenturesRequest, opts ...grpc.CallOption) (*ListVenturesResponse, error)
}

type venturesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewVenturesServiceClient(cc grpc.ClientConnInterface) VenturesServiceClient {
	return &venturesServiceClient{cc}
}

func (c *venturesServiceClient) CreateVenture(ctx context.Context, in *CreateVentureRequest, opts ...grpc.CallOption) (*CreateVentureResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateVentureResponse)
	err := c.cc.Invoke(ctx, VenturesService_CreateVenture_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *venturesServiceClient) GetVenture(ctx context.Context, in *GetVentureRequest, opts ...grpc.CallOption) (*GetVentureResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetVentureResponse)
	err := c.cc.Invoke(ctx, VenturesService_GetVenture_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *venturesServiceClient) ListVentures(ctx context.Context, in *ListVenturesRequest, opts ...grpc.CallOption) (*ListVenturesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListVenturesResponse)
	err := c.cc.Invoke(ctx, VenturesService_ListVentures_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VenturesServiceServer is the server API for VenturesService service.
// All implementations must embed UnimplementedVenturesServiceServer
// for forward compatibility.
//
// VenturesService manages the owner aggregate for diligence documents.
type VenturesServiceServer interface {
	CreateVenture(context.Context, *CreateVentureRequest) (*CreateVentureResponse, error)
	GetVenture(context.Context, *GetVentureRequest) (*GetVentureResponse, error)
	ListVentures(context.Context, *ListVenturesRequest) (*ListVenturesResponse, error)
	mustEmbedUnimplementedVenturesServiceServer()
}

// UnimplementedVenturesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedVenturesServiceServer struct{}

func (UnimplementedVenturesServiceServer) CreateVenture(context.Context, *CreateVentureRequest) (*CreateVentureResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateVenture not implemented")
}
func (UnimplementedVenturesServiceServer) GetVenture(context.Context, *GetVentureRequest) (*GetVentureResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVenture not implemented")
}
func (UnimplementedVenturesServiceServer) ListVentures(context.Context, *ListVenturesRequest) (*ListVenturesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListVentures not implemented")
}
func (UnimplementedVenturesServiceServer) mustEmbedUnimplementedVenturesServiceServer() {}
func (UnimplementedVenturesServiceServer) testEmbeddedByValue()                         {}

// UnsafeVenturesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to VenturesServiceServer will
// result in compilation errors.
type UnsafeVenturesServiceServer interface {
	mustEmbedUnimplementedVenturesServiceServer()
}

func RegisterVenturesServiceServer(s grpc.ServiceRegistrar, srv VenturesServiceServer) {
	// If the following call pancis, it indicates UnimplementedVenturesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&VenturesService_ServiceDesc, srv)
}

func _VenturesService_CreateVenture_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateVentureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VenturesServiceServer).CreateVenture(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VenturesService_CreateVenture_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VenturesServiceServer).CreateVenture(ctx, req.(*CreateVentureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VenturesService_GetVenture_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVentureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VenturesServiceServer).GetVenture(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VenturesService_GetVenture_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VenturesServiceServer).GetVenture(ctx, req.(*GetVentureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VenturesService_ListVentures_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListVenturesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VenturesServiceServer).ListVentures(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VenturesService_ListVentures_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VenturesServiceServer).ListVentures(ctx, req.(*ListVenturesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VenturesService_ServiceDesc is the grpc.ServiceDesc for VenturesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var VenturesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dealdesk.v1.VenturesService",
	HandlerType: (*VenturesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateVenture",
			Handler:    _VenturesService_CreateVenture_Handler,
		},
		{
			MethodName: "GetVenture",
			Handler:    _VenturesService_GetVenture_Handler,
		},
		{
			MethodName: "ListVentures",
			Handler:    _VenturesService_ListVentures_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dealdesk/v1/dealdesk.proto",
}

const (
	DocumentsService_RegisterDocument_FullMethodName   = "/dealdesk.v1.DocumentsService/RegisterDocument"
	DocumentsService_GetDocument_FullMethodName        = "/dealdesk.v1.DocumentsService/GetDocument"
	DocumentsService_ListDocuments_FullMethodName      = "/dealdesk.v1.DocumentsService/ListDocuments"
	DocumentsService_GetDocumentContent_FullMethodName = "/dealdesk.v1.DocumentsService/GetDocumentContent"
	DocumentsService_ReprocessDocument_FullMethodName  = "/dealdesk.v1.DocumentsService/ReprocessDocument"
)

// DocumentsServiceClient is the client API for DocumentsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DocumentsService registers documents and drives the processing
// pipeline. Registration enqueues processing; results are fetched once
// the document reaches COMPLETED.
type DocumentsServiceClient interface {
	RegisterDocument(ctx context.Context, in *RegisterDocumentRequest, opts ...grpc.CallOption) (*RegisterDocumentResponse, error)
	GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	GetDocumentContent(ctx context.Context, in *GetDocumentContentRequest, opts ...grpc.CallOption) (*GetDocumentContentResponse, error)
	ReprocessDocument(ctx context.Context, in *ReprocessDocumentRequest, opts ...grpc.CallOption) (*ReprocessDocumentResponse, error)
}

type documentsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentsServiceClient(cc grpc.ClientConnInterface) DocumentsServiceClient {
	return &documentsServiceClient{cc}
}

func (c *documentsServiceClient) RegisterDocument(ctx context.Context, in *RegisterDocumentRequest, opts ...grpc.CallOption) (*RegisterDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_RegisterDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) GetDocument(ctx context.Context, in *GetDocumentRequest, opts ...grpc.CallOption) (*GetDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_GetDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) GetDocumentContent(ctx context.Context, in *GetDocumentContentRequest, opts ...grpc.CallOption) (*GetDocumentContentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetDocumentContentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_GetDocumentContent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ReprocessDocument(ctx context.Context, in *ReprocessDocumentRequest, opts ...grpc.CallOption) (*ReprocessDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReprocessDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ReprocessDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentsServiceServer is the server API for DocumentsService service.
// All implementations must embed UnimplementedDocumentsServiceServer
// for forward compatibility.
//
// DocumentsService registers documents and drives the processing
// pipeline. Registration enqueues processing; results are fetched once
// the document reaches COMPLETED.
type DocumentsServiceServer interface {
	RegisterDocument(context.Context, *RegisterDocumentRequest) (*RegisterDocumentResponse, error)
	GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	GetDocumentContent(context.Context, *GetDocumentContentRequest) (*GetDocumentContentResponse, error)
	ReprocessDocument(context.Context, *ReprocessDocumentRequest) (*ReprocessDocumentResponse, error)
	mustEmbedUnimplementedDocumentsServiceServer()
}

// UnimplementedDocumentsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocumentsServiceServer struct{}

func (UnimplementedDocumentsServiceServer) RegisterDocument(context.Context, *RegisterDocumentRequest) (*RegisterDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) GetDocument(context.Context, *GetDocumentRequest) (*GetDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedDocumentsServiceServer) GetDocumentContent(context.Context, *GetDocumentContentRequest) (*GetDocumentContentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDocumentContent not implemented")
}
func (UnimplementedDocumentsServiceServer) ReprocessDocument(context.Context, *ReprocessDocumentRequest) (*ReprocessDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReprocessDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) mustEmbedUnimplementedDocumentsServiceServer() {}
func (UnimplementedDocumentsServiceServer) testEmbeddedByValue()                          {}

// UnsafeDocumentsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocumentsServiceServer will
// result in compilation errors.
type UnsafeDocumentsServiceServer interface {
	mustEmbedUnimplementedDocumentsServiceServer()
}

func RegisterDocumentsServiceServer(s grpc.ServiceRegistrar, srv DocumentsServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocumentsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocumentsService_ServiceDesc, srv)
}

func _DocumentsService_RegisterDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).RegisterDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_RegisterDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).RegisterDocument(ctx, req.(*RegisterDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_GetDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).GetDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_GetDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).GetDocument(ctx, req.(*GetDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_GetDocumentContent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDocumentContentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).GetDocumentContent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_GetDocumentContent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).GetDocumentContent(ctx, req.(*GetDocumentContentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ReprocessDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReprocessDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ReprocessDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ReprocessDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ReprocessDocument(ctx, req.(*ReprocessDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocumentsService_ServiceDesc is the grpc.ServiceDesc for DocumentsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocumentsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dealdesk.v1.DocumentsService",
	HandlerType: (*DocumentsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterDocument",
			Handler:    _DocumentsService_RegisterDocument_Handler,
		},
		{
			MethodName: "GetDocument",
			Handler:    _DocumentsService_GetDocument_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _DocumentsService_ListDocuments_Handler,
		},
		{
			MethodName: "GetDocumentContent",
			Handler:    _DocumentsService_GetDocumentContent_Handler,
		},
		{
			MethodName: "ReprocessDocument",
			Handler:    _DocumentsService_ReprocessDocument_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dealdesk/v1/dealdesk.proto",
}

const (
	EvaluationsService_GetLatestEvaluation_FullMethodName = "/dealdesk.v1.EvaluationsService/GetLatestEvaluation"
	EvaluationsService_ListEvaluations_FullMethodName     = "/dealdesk.v1.EvaluationsService/ListEvaluations"
	EvaluationsService_ExportEvaluations_FullMethodName   = "/dealdesk.v1.EvaluationsService/ExportEvaluations"
)

// EvaluationsServiceClient is the client API for EvaluationsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// EvaluationsService exposes scoring verdicts and XLSX exports.
type EvaluationsServiceClient interface {
	GetLatestEvaluation(ctx context.Context, in *GetLatestEvaluationRequest, opts ...grpc.CallOption) (*GetLatestEvaluationResponse, error)
	ListEvaluations(ctx context.Context, in *ListEvaluationsRequest, opts ...grpc.CallOption) (*ListEvaluationsResponse, error)
	ExportEvaluations(ctx context.Context, in *ExportEvaluationsRequest, opts ...grpc.CallOption) (*ExportEvaluationsResponse, error)
}

type evaluationsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEvaluationsServiceClient(cc grpc.ClientConnInterface) EvaluationsServiceClient {
	return &evaluationsServiceClient{cc}
}

func (c *evaluationsServiceClient) GetLatestEvaluation(ctx context.Context, in *GetLatestEvaluationRequest, opts ...grpc.CallOption) (*GetLatestEvaluationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLatestEvaluationResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_GetLatestEvaluation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) ListEvaluations(ctx context.Context, in *ListEvaluationsRequest, opts ...grpc.CallOption) (*ListEvaluationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListEvaluationsResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_ListEvaluations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) ExportEvaluations(ctx context.Context, in *ExportEvaluationsRequest, opts ...grpc.CallOption) (*ExportEvaluationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportEvaluationsResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_ExportEvaluations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EvaluationsServiceServer is the server API for EvaluationsService service.
// All implementations must embed UnimplementedEvaluationsServiceServer
// for forward compatibility.
//
// EvaluationsService exposes scoring verdicts and XLSX exports.
type EvaluationsServiceServer interface {
	GetLatestEvaluation(context.Context, *GetLatestEvaluationRequest) (*GetLatestEvaluationResponse, error)
	ListEvaluations(context.Context, *ListEvaluationsRequest) (*ListEvaluationsResponse, error)
	ExportEvaluations(context.Context, *ExportEvaluationsRequest) (*ExportEvaluationsResponse, error)
	mustEmbedUnimplementedEvaluationsServiceServer()
}

// UnimplementedEvaluationsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedEvaluationsServiceServer struct{}

func (UnimplementedEvaluationsServiceServer) GetLatestEvaluation(context.Context, *GetLatestEvaluationRequest) (*GetLatestEvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLatestEvaluation not implemented")
}
func (UnimplementedEvaluationsServiceServer) ListEvaluations(context.Context, *ListEvaluationsRequest) (*ListEvaluationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListEvaluations not implemented")
}
func (UnimplementedEvaluationsServiceServer) ExportEvaluations(context.Context, *ExportEvaluationsRequest) (*ExportEvaluationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportEvaluations not implemented")
}
func (UnimplementedEvaluationsServiceServer) mustEmbedUnimplementedEvaluationsServiceServer() {}
func (UnimplementedEvaluationsServiceServer) testEmbeddedByValue()                            {}

// UnsafeEvaluationsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to EvaluationsServiceServer will
// result in compilation errors.
type UnsafeEvaluationsServiceServer interface {
	mustEmbedUnimplementedEvaluationsServiceServer()
}

func RegisterEvaluationsServiceServer(s grpc.ServiceRegistrar, srv EvaluationsServiceServer) {
	// If the following call pancis, it indicates UnimplementedEvaluationsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&EvaluationsService_ServiceDesc, srv)
}

func _EvaluationsService_GetLatestEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLatestEvaluationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).GetLatestEvaluation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_GetLatestEvaluation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).GetLatestEvaluation(ctx, req.(*GetLatestEvaluationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_ListEvaluations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEvaluationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).ListEvaluations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_ListEvaluations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).ListEvaluations(ctx, req.(*ListEvaluationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_ExportEvaluations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportEvaluationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).ExportEvaluations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_ExportEvaluations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).ExportEvaluations(ctx, req.(*ExportEvaluationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EvaluationsService_ServiceDesc is the grpc.ServiceDesc for EvaluationsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var EvaluationsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "dealdesk.v1.EvaluationsService",
	HandlerType: (*EvaluationsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetLatestEvaluation",
			Handler:    _EvaluationsService_GetLatestEvaluation_Handler,
		},
		{
			MethodName: "ListEvaluations",
			Handler:    _EvaluationsService_ListEvaluations_Handler,
		},
		{
			MethodName: "ExportEvaluations",
			Handler:    _EvaluationsService_ExportEvaluations_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dealdesk/v1/dealdesk.proto",
}
