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

// FileTransferServiceClient is the client API for the C5 file-transfer RPCs.
type FileTransferServiceClient interface {
	TransferSubmit(ctx context.Context, in *TransferSubmitRequest, opts ...grpc.CallOption) (*TransferSubmitResponse, error)
	TransferInit(ctx context.Context, in *TransferInitRequest, opts ...grpc.CallOption) (*TransferInitResponse, error)
	TransferChunk(ctx context.Context, opts ...grpc.CallOption) (FileTransferService_TransferChunkClient, error)
}

type fileTransferServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFileTransferServiceClient(cc grpc.ClientConnInterface) FileTransferServiceClient {
	return &fileTransferServiceClient{cc}
}

func (c *fileTransferServiceClient) TransferSubmit(ctx context.Context, in *TransferSubmitRequest, opts ...grpc.CallOption) (*TransferSubmitResponse, error) {
	out := new(TransferSubmitResponse)
	if err := c.cc.Invoke(ctx, "/dsync.FileTransferService/TransferSubmit", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fileTransferServiceClient) TransferInit(ctx context.Context, in *TransferInitRequest, opts ...grpc.CallOption) (*TransferInitResponse, error) {
	out := new(TransferInitResponse)
	if err := c.cc.Invoke(ctx, "/dsync.FileTransferService/TransferInit", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fileTransferServiceClient) TransferChunk(ctx context.Context, opts ...grpc.CallOption) (FileTransferService_TransferChunkClient, error) {
	stream, err := c.cc.NewStream(ctx, &_FileTransferService_serviceDesc.Streams[0], "/dsync.FileTransferService/TransferChunk", opts...)
	if err != nil {
		return nil, err
	}
	return &fileTransferServiceTransferChunkClient{stream}, nil
}

// FileTransferService_TransferChunkClient is the client-streaming handle
// returned by TransferChunk: one Send per chunk, a single CloseAndRecv once
// the last chunk has been written.
type FileTransferService_TransferChunkClient interface {
	Send(*TransferChunkRequest) error
	CloseAndRecv() (*TransferChunkResponse, error)
	grpc.ClientStream
}

type fileTransferServiceTransferChunkClient struct {
	grpc.ClientStream
}

func (x *fileTransferServiceTransferChunkClient) Send(m *TransferChunkRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *fileTransferServiceTransferChunkClient) CloseAndRecv() (*TransferChunkResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(TransferChunkResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// FileTransferServiceServer is the server API for the C5 file-transfer RPCs.
type FileTransferServiceServer interface {
	TransferSubmit(context.Context, *TransferSubmitRequest) (*TransferSubmitResponse, error)
	TransferInit(context.Context, *TransferInitRequest) (*TransferInitResponse, error)
	TransferChunk(FileTransferService_TransferChunkServer) error
}

type UnimplementedFileTransferServiceServer struct{}

func (UnimplementedFileTransferServiceServer) TransferSubmit(context.Context, *TransferSubmitRequest) (*TransferSubmitResponse, error) {
	return nil, grpcUnimplemented("TransferSubmit")
}

func (UnimplementedFileTransferServiceServer) TransferInit(context.Context, *TransferInitRequest) (*TransferInitResponse, error) {
	return nil, grpcUnimplemented("TransferInit")
}

func (UnimplementedFileTransferServiceServer) TransferChunk(FileTransferService_TransferChunkServer) error {
	return grpcUnimplemented("TransferChunk")
}

func RegisterFileTransferServiceServer(s grpc.ServiceRegistrar, srv FileTransferServiceServer) {
	s.RegisterService(&_FileTransferService_serviceDesc, srv)
}

func _FileTransferService_TransferSubmit_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TransferSubmitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileTransferServiceServer).TransferSubmit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.FileTransferService/TransferSubmit"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FileTransferServiceServer).TransferSubmit(ctx, req.(*TransferSubmitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FileTransferService_TransferInit_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(TransferInitRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileTransferServiceServer).TransferInit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.FileTransferService/TransferInit"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FileTransferServiceServer).TransferInit(ctx, req.(*TransferInitRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FileTransferService_TransferChunk_Handler(srv any, stream grpc.ServerStream) error {
	return srv.(FileTransferServiceServer).TransferChunk(&fileTransferServiceTransferChunkServer{stream})
}

// FileTransferService_TransferChunkServer is the server-side handle for the
// inbound chunk stream.
type FileTransferService_TransferChunkServer interface {
	SendAndClose(*TransferChunkResponse) error
	Recv() (*TransferChunkRequest, error)
	grpc.ServerStream
}

type fileTransferServiceTransferChunkServer struct {
	grpc.ServerStream
}

func (x *fileTransferServiceTransferChunkServer) SendAndClose(m *TransferChunkResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *fileTransferServiceTransferChunkServer) Recv() (*TransferChunkRequest, error) {
	m := new(TransferChunkRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

var _FileTransferService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "dsync.FileTransferService",
	HandlerType: (*FileTransferServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "TransferSubmit", Handler: _FileTransferService_TransferSubmit_Handler},
		{MethodName: "TransferInit", Handler: _FileTransferService_TransferInit_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "TransferChunk",
			Handler:       _FileTransferService_TransferChunk_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "idl/dsync.xdr",
}
