package grpc

// proto.go defines the gRPC server interface for the CreditService. It
// stands in for buf-generated code: the wire types alias the application
// DTOs and travel over the JSON codec registered in json_codec.go. Once the
// proto definitions are generated, replace this file with the generated
// package.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/luisfernandobanegasro/entidad-financiera/internal/application/dto"
)

// Wire types, aliased to the application DTOs.
type (
	RegisterCustomerRequest = dto.RegisterCustomerRequest
	CustomerResponse        = dto.CustomerResponse
	SubmitRequestRequest    = dto.SubmitRequestRequest
	EvaluateRequestRequest  = dto.EvaluateRequestRequest
	DecideRequestRequest    = dto.DecideRequestRequest
	CreditRequestResponse   = dto.CreditRequestResponse
	GenerateScheduleRequest = dto.GenerateScheduleRequest
	GetScheduleRequest      = dto.GetScheduleRequest
	ScheduleResponse        = dto.ScheduleResponse
	SimulateScheduleRequest = dto.SimulateScheduleRequest
	SimulationResponse      = dto.SimulationResponse
	AttachDocumentRequest   = dto.AttachDocumentRequest
	AttachmentResponse      = dto.AttachmentResponse
	GetRequestRequest       = dto.GetRequestRequest
	GetChecklistRequest     = dto.GetChecklistRequest
	ChecklistResponse       = dto.ChecklistResponse
)

// CreditServiceServer is the server API for the CreditService.
type CreditServiceServer interface {
	RegisterCustomer(context.Context, *RegisterCustomerRequest) (*CustomerResponse, error)
	SubmitRequest(context.Context, *SubmitRequestRequest) (*CreditRequestResponse, error)
	EvaluateRequest(context.Context, *EvaluateRequestRequest) (*CreditRequestResponse, error)
	DecideRequest(context.Context, *DecideRequestRequest) (*CreditRequestResponse, error)
	GenerateSchedule(context.Context, *GenerateScheduleRequest) (*ScheduleResponse, error)
	SimulateSchedule(context.Context, *SimulateScheduleRequest) (*SimulationResponse, error)
	AttachDocument(context.Context, *AttachDocumentRequest) (*AttachmentResponse, error)
	GetRequest(context.Context, *GetRequestRequest) (*CreditRequestResponse, error)
	GetSchedule(context.Context, *GetScheduleRequest) (*ScheduleResponse, error)
	GetChecklist(context.Context, *GetChecklistRequest) (*ChecklistResponse, error)
	mustEmbedUnimplementedCreditServiceServer()
}

// UnimplementedCreditServiceServer provides forward-compatible default implementations.
type UnimplementedCreditServiceServer struct{}

func (UnimplementedCreditServiceServer) RegisterCustomer(context.Context, *RegisterCustomerRequest) (*CustomerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterCustomer not implemented")
}
func (UnimplementedCreditServiceServer) SubmitRequest(context.Context, *SubmitRequestRequest) (*CreditRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitRequest not implemented")
}
func (UnimplementedCreditServiceServer) EvaluateRequest(context.Context, *EvaluateRequestRequest) (*CreditRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateRequest not implemented")
}
func (UnimplementedCreditServiceServer) DecideRequest(context.Context, *DecideRequestRequest) (*CreditRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DecideRequest not implemented")
}
func (UnimplementedCreditServiceServer) GenerateSchedule(context.Context, *GenerateScheduleRequest) (*ScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateSchedule not implemented")
}
func (UnimplementedCreditServiceServer) SimulateSchedule(context.Context, *SimulateScheduleRequest) (*SimulationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SimulateSchedule not implemented")
}
func (UnimplementedCreditServiceServer) AttachDocument(context.Context, *AttachDocumentRequest) (*AttachmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AttachDocument not implemented")
}
func (UnimplementedCreditServiceServer) GetRequest(context.Context, *GetRequestRequest) (*CreditRequestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRequest not implemented")
}
func (UnimplementedCreditServiceServer) GetSchedule(context.Context, *GetScheduleRequest) (*ScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSchedule not implemented")
}
func (UnimplementedCreditServiceServer) GetChecklist(context.Context, *GetChecklistRequest) (*ChecklistResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetChecklist not implemented")
}
func (UnimplementedCreditServiceServer) mustEmbedUnimplementedCreditServiceServer() {}

// RegisterCreditServiceServer registers the CreditServiceServer with the gRPC server.
func RegisterCreditServiceServer(s *grpclib.Server, srv CreditServiceServer) {
	s.RegisterService(&_CreditService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _CreditService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "credit.v1.CreditService",
	HandlerType: (*CreditServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "RegisterCustomer", Handler: _CreditService_RegisterCustomer_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "SubmitRequest", Handler: _CreditService_SubmitRequest_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "EvaluateRequest", Handler: _CreditService_EvaluateRequest_Handler},   //nolint:revive // gRPC handler registration
		{MethodName: "DecideRequest", Handler: _CreditService_DecideRequest_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "GenerateSchedule", Handler: _CreditService_GenerateSchedule_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "SimulateSchedule", Handler: _CreditService_SimulateSchedule_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "AttachDocument", Handler: _CreditService_AttachDocument_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "GetRequest", Handler: _CreditService_GetRequest_Handler},             //nolint:revive // gRPC handler registration
		{MethodName: "GetSchedule", Handler: _CreditService_GetSchedule_Handler},           //nolint:revive // gRPC handler registration
		{MethodName: "GetChecklist", Handler: _CreditService_GetChecklist_Handler},         //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_RegisterCustomer_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterCustomerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).RegisterCustomer(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/RegisterCustomer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).RegisterCustomer(ctx, req.(*RegisterCustomerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_SubmitRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).SubmitRequest(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/SubmitRequest",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).SubmitRequest(ctx, req.(*SubmitRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_EvaluateRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).EvaluateRequest(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/EvaluateRequest",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).EvaluateRequest(ctx, req.(*EvaluateRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_DecideRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DecideRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).DecideRequest(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/DecideRequest",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).DecideRequest(ctx, req.(*DecideRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GenerateSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GenerateSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/GenerateSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GenerateSchedule(ctx, req.(*GenerateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_SimulateSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).SimulateSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/SimulateSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).SimulateSchedule(ctx, req.(*SimulateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_AttachDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttachDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).AttachDocument(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/AttachDocument",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).AttachDocument(ctx, req.(*AttachDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetRequest_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetRequest(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/GetRequest",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetRequest(ctx, req.(*GetRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/GetSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetSchedule(ctx, req.(*GetScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _CreditService_GetChecklist_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetChecklistRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CreditServiceServer).GetChecklist(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/credit.v1.CreditService/GetChecklist",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CreditServiceServer).GetChecklist(ctx, req.(*GetChecklistRequest))
	}
	return interceptor(ctx, in, info, handler)
}
