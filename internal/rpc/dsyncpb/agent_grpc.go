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

// UserAgentServiceClient is the client API for the C6 user-facing RPCs.
type UserAgentServiceClient interface {
	FileAdd(ctx context.Context, in *FileAddRequest, opts ...grpc.CallOption) (*FileAddResponse, error)
	FileRemove(ctx context.Context, in *FileRemoveRequest, opts ...grpc.CallOption) (*FileRemoveResponse, error)
	FileList(ctx context.Context, in *FileListRequest, opts ...grpc.CallOption) (*FileListResponse, error)
	FileCopy(ctx context.Context, in *FileCopyRequest, opts ...grpc.CallOption) (*FileCopyResponse, error)
	HostList(ctx context.Context, in *HostListRequest, opts ...grpc.CallOption) (*HostListResponse, error)
	HostDiscover(ctx context.Context, in *HostDiscoverRequest, opts ...grpc.CallOption) (*HostDiscoverResponse, error)
	HostAdd(ctx context.Context, in *HostAddRequest, opts ...grpc.CallOption) (*HostAddResponse, error)
	HostRemove(ctx context.Context, in *HostRemoveRequest, opts ...grpc.CallOption) (*HostRemoveResponse, error)
	GroupCreate(ctx context.Context, in *GroupCreateRequest, opts ...grpc.CallOption) (*GroupCreateResponse, error)
	GroupDelete(ctx context.Context, in *GroupDeleteRequest, opts ...grpc.CallOption) (*GroupDeleteResponse, error)
	GroupList(ctx context.Context, in *GroupListRequest, opts ...grpc.CallOption) (*GroupListResponse, error)
}

type userAgentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUserAgentServiceClient(cc grpc.ClientConnInterface) UserAgentServiceClient {
	return &userAgentServiceClient{cc}
}

func (c *userAgentServiceClient) FileAdd(ctx context.Context, in *FileAddRequest, opts ...grpc.CallOption) (*FileAddResponse, error) {
	out := new(FileAddResponse)
	if err := c.cc.Invoke(ctx, "/dsync.UserAgentService/FileAdd", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userAgentServiceClient) FileRemove(ctx context.Context, in *FileRemoveRequest, opts ...grpc.CallOption) (*FileRemoveResponse, error) {
	out := new(FileRemoveResponse)
	if err := c.cc.Invoke(ctx, "/dsync.UserAgentService/FileRemove", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userAgentServiceClient) FileList(ctx context.Context, in *FileListRequest, opts ...grpc.CallOption) (*FileListResponse, error) {
	out := new(FileListResponse)
	if err := c.cc.Invoke(ctx, "/dsync.UserAgentService/FileList", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userAgentServiceClient) FileCopy(ctx context.Context, in *FileCopyRequest, opts ...grpc.CallOption) (*FileCopyResponse, error) {
	out := new(FileCopyResponse)
	if err := c.cc.Invoke(ctx, "/dsync.UserAgentService/FileCopy", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userAgentServiceClient) HostList(ctx context.Context, in *HostListRequest, opts ...grpc.CallOption) (*HostListResponse, error) {
	out := new(HostListResponse)
	if err := c.cc.Invoke(ctx, "/dsync.UserAgentService/HostList", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userAgentServiceClient) HostDiscover(ctx context.Context, in *HostDiscoverRequest, opts ...grpc.CallOption) (*HostDiscoverResponse, error) {
	out := new(HostDiscoverResponse)
	if err := c.cc.Invoke(ctx, "/dsync.UserAgentService/HostDiscover", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userAgentServiceClient) HostAdd(ctx context.Context, in *HostAddRequest, opts ...grpc.CallOption) (*HostAddResponse, error) {
	out := new(HostAddResponse)
	if err := c.cc.Invoke(ctx, "/dsync.UserAgentService/HostAdd", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userAgentServiceClient) HostRemove(ctx context.Context, in *HostRemoveRequest, opts ...grpc.CallOption) (*HostRemoveResponse, error) {
	out := new(HostRemoveResponse)
	if err := c.cc.Invoke(ctx, "/dsync.UserAgentService/HostRemove", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userAgentServiceClient) GroupCreate(ctx context.Context, in *GroupCreateRequest, opts ...grpc.CallOption) (*GroupCreateResponse, error) {
	out := new(GroupCreateResponse)
	if err := c.cc.Invoke(ctx, "/dsync.UserAgentService/GroupCreate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userAgentServiceClient) GroupDelete(ctx context.Context, in *GroupDeleteRequest, opts ...grpc.CallOption) (*GroupDeleteResponse, error) {
	out := new(GroupDeleteResponse)
	if err := c.cc.Invoke(ctx, "/dsync.UserAgentService/GroupDelete", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *userAgentServiceClient) GroupList(ctx context.Context, in *GroupListRequest, opts ...grpc.CallOption) (*GroupListResponse, error) {
	out := new(GroupListResponse)
	if err := c.cc.Invoke(ctx, "/dsync.UserAgentService/GroupList", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// UserAgentServiceServer is the server API for the C6 user-facing RPCs.
type UserAgentServiceServer interface {
	FileAdd(context.Context, *FileAddRequest) (*FileAddResponse, error)
	FileRemove(context.Context, *FileRemoveRequest) (*FileRemoveResponse, error)
	FileList(context.Context, *FileListRequest) (*FileListResponse, error)
	FileCopy(context.Context, *FileCopyRequest) (*FileCopyResponse, error)
	HostList(context.Context, *HostListRequest) (*HostListResponse, error)
	HostDiscover(context.Context, *HostDiscoverRequest) (*HostDiscoverResponse, error)
	HostAdd(context.Context, *HostAddRequest) (*HostAddResponse, error)
	HostRemove(context.Context, *HostRemoveRequest) (*HostRemoveResponse, error)
	GroupCreate(context.Context, *GroupCreateRequest) (*GroupCreateResponse, error)
	GroupDelete(context.Context, *GroupDeleteRequest) (*GroupDeleteResponse, error)
	GroupList(context.Context, *GroupListRequest) (*GroupListResponse, error)
}

type UnimplementedUserAgentServiceServer struct{}

func (UnimplementedUserAgentServiceServer) FileAdd(context.Context, *FileAddRequest) (*FileAddResponse, error) {
	return nil, grpcUnimplemented("FileAdd")
}
func (UnimplementedUserAgentServiceServer) FileRemove(context.Context, *FileRemoveRequest) (*FileRemoveResponse, error) {
	return nil, grpcUnimplemented("FileRemove")
}
func (UnimplementedUserAgentServiceServer) FileList(context.Context, *FileListRequest) (*FileListResponse, error) {
	return nil, grpcUnimplemented("FileList")
}
func (UnimplementedUserAgentServiceServer) FileCopy(context.Context, *FileCopyRequest) (*FileCopyResponse, error) {
	return nil, grpcUnimplemented("FileCopy")
}
func (UnimplementedUserAgentServiceServer) HostList(context.Context, *HostListRequest) (*HostListResponse, error) {
	return nil, grpcUnimplemented("HostList")
}
func (UnimplementedUserAgentServiceServer) HostDiscover(context.Context, *HostDiscoverRequest) (*HostDiscoverResponse, error) {
	return nil, grpcUnimplemented("HostDiscover")
}
func (UnimplementedUserAgentServiceServer) HostAdd(context.Context, *HostAddRequest) (*HostAddResponse, error) {
	return nil, grpcUnimplemented("HostAdd")
}
func (UnimplementedUserAgentServiceServer) HostRemove(context.Context, *HostRemoveRequest) (*HostRemoveResponse, error) {
	return nil, grpcUnimplemented("HostRemove")
}
func (UnimplementedUserAgentServiceServer) GroupCreate(context.Context, *GroupCreateRequest) (*GroupCreateResponse, error) {
	return nil, grpcUnimplemented("GroupCreate")
}
func (UnimplementedUserAgentServiceServer) GroupDelete(context.Context, *GroupDeleteRequest) (*GroupDeleteResponse, error) {
	return nil, grpcUnimplemented("GroupDelete")
}
func (UnimplementedUserAgentServiceServer) GroupList(context.Context, *GroupListRequest) (*GroupListResponse, error) {
	return nil, grpcUnimplemented("GroupList")
}

func RegisterUserAgentServiceServer(s grpc.ServiceRegistrar, srv UserAgentServiceServer) {
	s.RegisterService(&_UserAgentService_serviceDesc, srv)
}

func _UserAgentService_FileAdd_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FileAddRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAgentServiceServer).FileAdd(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.UserAgentService/FileAdd"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAgentServiceServer).FileAdd(ctx, req.(*FileAddRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAgentService_FileRemove_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FileRemoveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAgentServiceServer).FileRemove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.UserAgentService/FileRemove"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAgentServiceServer).FileRemove(ctx, req.(*FileRemoveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAgentService_FileList_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FileListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAgentServiceServer).FileList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.UserAgentService/FileList"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAgentServiceServer).FileList(ctx, req.(*FileListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAgentService_FileCopy_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FileCopyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAgentServiceServer).FileCopy(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.UserAgentService/FileCopy"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAgentServiceServer).FileCopy(ctx, req.(*FileCopyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAgentService_HostList_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HostListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAgentServiceServer).HostList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.UserAgentService/HostList"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAgentServiceServer).HostList(ctx, req.(*HostListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAgentService_HostDiscover_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HostDiscoverRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAgentServiceServer).HostDiscover(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.UserAgentService/HostDiscover"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAgentServiceServer).HostDiscover(ctx, req.(*HostDiscoverRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAgentService_HostAdd_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HostAddRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAgentServiceServer).HostAdd(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.UserAgentService/HostAdd"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAgentServiceServer).HostAdd(ctx, req.(*HostAddRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAgentService_HostRemove_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HostRemoveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAgentServiceServer).HostRemove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.UserAgentService/HostRemove"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAgentServiceServer).HostRemove(ctx, req.(*HostRemoveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAgentService_GroupCreate_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GroupCreateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAgentServiceServer).GroupCreate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.UserAgentService/GroupCreate"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAgentServiceServer).GroupCreate(ctx, req.(*GroupCreateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAgentService_GroupDelete_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GroupDeleteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAgentServiceServer).GroupDelete(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.UserAgentService/GroupDelete"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAgentServiceServer).GroupDelete(ctx, req.(*GroupDeleteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _UserAgentService_GroupList_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GroupListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserAgentServiceServer).GroupList(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/dsync.UserAgentService/GroupList"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(UserAgentServiceServer).GroupList(ctx, req.(*GroupListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _UserAgentService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "dsync.UserAgentService",
	HandlerType: (*UserAgentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "FileAdd", Handler: _UserAgentService_FileAdd_Handler},
		{MethodName: "FileRemove", Handler: _UserAgentService_FileRemove_Handler},
		{MethodName: "FileList", Handler: _UserAgentService_FileList_Handler},
		{MethodName: "FileCopy", Handler: _UserAgentService_FileCopy_Handler},
		{MethodName: "HostList", Handler: _UserAgentService_HostList_Handler},
		{MethodName: "HostDiscover", Handler: _UserAgentService_HostDiscover_Handler},
		{MethodName: "HostAdd", Handler: _UserAgentService_HostAdd_Handler},
		{MethodName: "HostRemove", Handler: _UserAgentService_HostRemove_Handler},
		{MethodName: "GroupCreate", Handler: _UserAgentService_GroupCreate_Handler},
		{MethodName: "GroupDelete", Handler: _UserAgentService_GroupDelete_Handler},
		{MethodName: "GroupList", Handler: _UserAgentService_GroupList_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "idl/dsync.xdr",
}
