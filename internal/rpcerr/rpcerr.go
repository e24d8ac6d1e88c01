// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rpcerr names the error-kind-to-gRPC-status mapping that the rest
// of dsyncd's RPC handlers use to translate repository and filesystem
// failures into a response the caller can act on.
package rpcerr

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func InvalidArgument(err error) error {
	return status.Error(codes.InvalidArgument, err.Error())
}

func NotFound(err error) error {
	return status.Error(codes.NotFound, err.Error())
}

func AlreadyExists(err error) error {
	return status.Error(codes.AlreadyExists, err.Error())
}

func Unavailable(err error) error {
	return status.Error(codes.Unavailable, err.Error())
}

func Internal(err error) error {
	return status.Error(codes.Internal, err.Error())
}

func FailedPrecondition(msg string) error {
	return status.Error(codes.FailedPrecondition, msg)
}
