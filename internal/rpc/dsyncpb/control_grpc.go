// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package dsyncpb

import (
	"context"

	"google.golang.org/grpc"
)

// ServerControlServiceClient is the client API for the C7 control RPCs.
type ServerControlServiceClient interface {
	Shutdown(ctx context.Context, in *ShutdownRequest, opts ...grpc.CallOption) (*ShutdownResponse, error)
}

type serverControlServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewServerControlServiceClient(cc grpc.ClientConnInterface) ServerControlServiceClient {
	return &serverControlServiceClient{cc}
}

func (c *serverControlServiceClient) Shutdown(ctx context.Context, in *ShutdownRequest, opts ...grpc.CallOption) (*ShutdownResponse, error) {
	out := new(ShutdownResponse)
	if err := c.cc.Invoke(ctx, "/dsync.ServerControlService/Shutdown", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ServerControlServiceServer is the server API for the C7 control RPCs.
type ServerControlServiceServer interface {
	Shutdown(context.Context, *ShutdownRequest) (*ShutdownResponse, error)
}

type UnimplementedServerControlServiceServer struct{}

func (UnimplementedServerControlServiceServer) Shutdown(context.Context, *ShutdownRequest) (*ShutdownResponse, error) {
	return nil, grpcUnimplemented("Shutdown")
}

func RegisterServerControlServiceServer(s grpc.ServiceRegistrar, srv ServerControlServiceServer) {
	s.RegisterService(&_ServerControlService_serviceDesc, srv)
}

func _ServerControlService_Shutdown_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ShutdownRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ServerControlServiceServer).Shutdown(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.ServerControlService/Shutdown"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ServerControlServiceServer).Shutdown(ctx, req.(*ShutdownRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _ServerControlService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "dsync.ServerControlService",
	HandlerType: (*ServerControlServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Shutdown", Handler: _ServerControlService_Shutdown_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "idl/dsync.xdr",
}
