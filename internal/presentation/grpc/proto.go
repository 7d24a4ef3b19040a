package grpc

// proto.go defines the gRPC server interface derived from
// habitalibre/affordability/v1/affordability.proto. It serves as a stand-in
// for buf-generated code; the wire format is JSON via the codec registered
// in json_codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/application/dto"
)

// EvaluateRequest carries the raw applicant record.
type EvaluateRequest struct {
	Payload map[string]any `json:"payload"`
}

// EvaluateResponse wraps the evaluation result.
type EvaluateResponse struct {
	Result dto.EvaluationResponse `json:"result"`
}

// RankLendersResponse wraps the bank affinity result.
type RankLendersResponse struct {
	Result dto.BankAffinityResponse `json:"result"`
}

// AffordabilityServiceServer is the server API for AffordabilityService.
type AffordabilityServiceServer interface {
	Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error)
	RankLenders(context.Context, *EvaluateRequest) (*RankLendersResponse, error)
	mustEmbedUnimplementedAffordabilityServiceServer()
}

// UnimplementedAffordabilityServiceServer provides forward-compatible
// default implementations.
type UnimplementedAffordabilityServiceServer struct{}

func (UnimplementedAffordabilityServiceServer) Evaluate(context.Context, *EvaluateRequest) (*EvaluateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Evaluate not implemented")
}
func (UnimplementedAffordabilityServiceServer) RankLenders(context.Context, *EvaluateRequest) (*RankLendersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RankLenders not implemented")
}
func (UnimplementedAffordabilityServiceServer) mustEmbedUnimplementedAffordabilityServiceServer() {}

// RegisterAffordabilityServiceServer registers the server implementation.
func RegisterAffordabilityServiceServer(s *grpclib.Server, srv AffordabilityServiceServer) {
	s.RegisterService(&_AffordabilityService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _AffordabilityService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "habitalibre.affordability.v1.AffordabilityService",
	HandlerType: (*AffordabilityServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Evaluate", Handler: _AffordabilityService_Evaluate_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "RankLenders", Handler: _AffordabilityService_RankLenders_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _AffordabilityService_Evaluate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AffordabilityServiceServer).Evaluate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/habitalibre.affordability.v1.AffordabilityService/Evaluate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AffordabilityServiceServer).Evaluate(ctx, req.(*EvaluateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _AffordabilityService_RankLenders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AffordabilityServiceServer).RankLenders(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/habitalibre.affordability.v1.AffordabilityService/RankLenders",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AffordabilityServiceServer).RankLenders(ctx, req.(*EvaluateRequest))
	}
	return interceptor(ctx, in, info, handler)
}
