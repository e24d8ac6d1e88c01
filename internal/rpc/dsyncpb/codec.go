// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package dsyncpb

import "fmt"

// xdrMarshaler and xdrUnmarshaler are satisfied by every message type in
// this package; they mirror the MarshalXDR/UnmarshalXDR pair that
// calmh/xdr-based generated code has always exposed.
type xdrMarshaler interface {
	MarshalXDR() []byte
}

type xdrUnmarshaler interface {
	UnmarshalXDR([]byte) error
}

// codecName is advertised in the gRPC content-subtype of every request this
// package issues or serves. It is never looked up through grpc's global
// codec registry: client and server both pin it explicitly with
// grpc.ForceCodec / grpc.ForceServerCodec, so it never has to coexist with
// grpc's built-in "proto" codec.
const codecName = "dsyncxdr"

// xdrCodec implements encoding.Codec (github.com/grpc/grpc-go's codec
// interface) over the wire format generated from idl/dsync.xdr, instead of
// protocol buffers.
type xdrCodec struct{}

func (xdrCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(xdrMarshaler)
	if !ok {
		return nil, fmt.Errorf("dsyncpb: %T does not implement MarshalXDR", v)
	}
	return m.MarshalXDR(), nil
}

func (xdrCodec) Unmarshal(data []byte, v any) error {
	u, ok := v.(xdrUnmarshaler)
	if !ok {
		return fmt.Errorf("dsyncpb: %T does not implement UnmarshalXDR", v)
	}
	return u.UnmarshalXDR(data)
}

func (xdrCodec) Name() string { return codecName }

// Codec is the shared dsync wire codec. The generated client constructors
// in this package expect a connection dialled with
// grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec)), and every generated
// server registrar expects grpc.ForceServerCodec(Codec) to have been passed
// to grpc.NewServer.
var Codec = xdrCodec{}
