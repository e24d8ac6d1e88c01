// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dsyncpb contains the wire messages and gRPC service stubs for
// dsync's inter-daemon and CLI-to-daemon RPC surface.
//
// These files are hand-maintained "generated" code: they correspond 1:1 to
// the IDL in idl/dsync.xdr the way protoc-gen-go output corresponds to a
// .proto file, but encode over the wire using github.com/calmh/xdr instead
// of protobuf (no protoc toolchain runs in this environment; see
// DESIGN.md). Do not hand-edit message shapes without updating the IDL.
package dsyncpb
