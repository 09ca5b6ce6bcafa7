package rpc

import (
	"golang.org/x/net/context"
	"google.golang.org/grpc"
)

const ServiceName = "puyotician.Puyotician"

type PuyoticianServer interface {
	Simulate(context.Context, *SimulateRequest) (*SimulateResponse, error)
	Analyze(context.Context, *AnalyzeRequest) (*AnalyzeResponse, error)
	Reach(context.Context, *ReachRequest) (*ReachResponse, error)
}

func RegisterPuyoticianServer(s *grpc.Server, srv PuyoticianServer) {
	s.RegisterService(&serviceDesc, srv)
}

func simulateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimulateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PuyoticianServer).Simulate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Simulate"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PuyoticianServer).Simulate(ctx, req.(*SimulateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func analyzeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PuyoticianServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Analyze"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PuyoticianServer).Analyze(ctx, req.(*AnalyzeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func reachHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReachRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PuyoticianServer).Reach(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/Reach"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PuyoticianServer).Reach(ctx, req.(*ReachRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PuyoticianServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Simulate", Handler: simulateHandler},
		{MethodName: "Analyze", Handler: analyzeHandler},
		{MethodName: "Reach", Handler: reachHandler},
	},
	Streams: []grpc.StreamDesc{},
}
