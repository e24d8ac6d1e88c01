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

// HostDiscoveryServiceClient is the client API for the handshake RPC
// described in idl/dsync.xdr's HostDiscoveryService program.
type HostDiscoveryServiceClient interface {
	HelloThere(ctx context.Context, in *HostInfo, opts ...grpc.CallOption) (*HostInfo, error)
}

type hostDiscoveryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewHostDiscoveryServiceClient constructs a client bound to cc. Callers
// must have dialed cc with grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec)).
func NewHostDiscoveryServiceClient(cc grpc.ClientConnInterface) HostDiscoveryServiceClient {
	return &hostDiscoveryServiceClient{cc}
}

func (c *hostDiscoveryServiceClient) HelloThere(ctx context.Context, in *HostInfo, opts ...grpc.CallOption) (*HostInfo, error) {
	out := new(HostInfo)
	err := c.cc.Invoke(ctx, "/dsync.HostDiscoveryService/HelloThere", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HostDiscoveryServiceServer is the server API for HostDiscoveryService.
type HostDiscoveryServiceServer interface {
	HelloThere(context.Context, *HostInfo) (*HostInfo, error)
}

// UnimplementedHostDiscoveryServiceServer may be embedded to satisfy the
// interface while forward-compatible with additions to it.
type UnimplementedHostDiscoveryServiceServer struct{}

func (UnimplementedHostDiscoveryServiceServer) HelloThere(context.Context, *HostInfo) (*HostInfo, error) {
	return nil, grpcUnimplemented("HelloThere")
}

func RegisterHostDiscoveryServiceServer(s grpc.ServiceRegistrar, srv HostDiscoveryServiceServer) {
	s.RegisterService(&_HostDiscoveryService_serviceDesc, srv)
}

func _HostDiscoveryService_HelloThere_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HostInfo)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HostDiscoveryServiceServer).HelloThere(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dsync.HostDiscoveryService/HelloThere",
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HostDiscoveryServiceServer).HelloThere(ctx, req.(*HostInfo))
	}
	return interceptor(ctx, in, info, handler)
}

var _HostDiscoveryService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "dsync.HostDiscoveryService",
	HandlerType: (*HostDiscoveryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "HelloThere",
			Handler:    _HostDiscoveryService_HelloThere_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "idl/dsync.xdr",
}
