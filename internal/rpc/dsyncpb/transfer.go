// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package dsyncpb

import (
	"bytes"

	"github.com/calmh/xdr"
)

// TransferSubmitRequest is sent by the user-agent to the source daemon's
// FileTransferService to start an outbound transfer.
type TransferSubmitRequest struct {
	SrcPath      string
	DstPath      string
	HostOrgUuid  string
	HostDstUuid  string
}

func (o TransferSubmitRequest) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteString(o.SrcPath)
	xw.WriteString(o.DstPath)
	xw.WriteString(o.HostOrgUuid)
	xw.WriteString(o.HostDstUuid)
	return buf.Bytes()
}

func (o *TransferSubmitRequest) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	o.SrcPath = xr.ReadString()
	o.DstPath = xr.ReadString()
	o.HostOrgUuid = xr.ReadString()
	o.HostDstUuid = xr.ReadString()
	return xr.Error()
}

// TransferSubmitResponse carries nothing beyond success; failure is
// conveyed via the gRPC status.
type TransferSubmitResponse struct{}

func (o TransferSubmitResponse) MarshalXDR() []byte { return nil }
func (o *TransferSubmitResponse) UnmarshalXDR(_ []byte) error { return nil }

// TransferInitRequest freezes the parameters of one inbound transfer
// session.
type TransferInitRequest struct {
	FilePathSrc   string
	FilePathDst   string
	FileSha1      string
	FileSizeBytes int64
	ChunkSize     int32
}

func (o TransferInitRequest) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteString(o.FilePathSrc)
	xw.WriteString(o.FilePathDst)
	xw.WriteString(o.FileSha1)
	xw.WriteUint64(uint64(o.FileSizeBytes))
	xw.WriteUint32(uint32(o.ChunkSize))
	return buf.Bytes()
}

func (o *TransferInitRequest) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	o.FilePathSrc = xr.ReadString()
	o.FilePathDst = xr.ReadString()
	o.FileSha1 = xr.ReadString()
	o.FileSizeBytes = int64(xr.ReadUint64())
	o.ChunkSize = int32(xr.ReadUint32())
	return xr.Error()
}

// TransferInitResponse returns the session id the destination assigned.
type TransferInitResponse struct {
	SessionId int64
}

func (o TransferInitResponse) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteUint64(uint64(o.SessionId))
	return buf.Bytes()
}

func (o *TransferInitResponse) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	o.SessionId = int64(xr.ReadUint64())
	return xr.Error()
}

// TransferChunkRequest is one message of the chunk-stream RPC body.
type TransferChunkRequest struct {
	SessionId int64
	ChunkId   int64
	Data      []byte
}

func (o TransferChunkRequest) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteUint64(uint64(o.SessionId))
	xw.WriteUint64(uint64(o.ChunkId))
	xw.WriteBytes(o.Data)
	return buf.Bytes()
}

func (o *TransferChunkRequest) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	o.SessionId = int64(xr.ReadUint64())
	o.ChunkId = int64(xr.ReadUint64())
	o.Data = xr.ReadBytes()
	return xr.Error()
}

// TransferChunkResponse is returned once, at the end of the client stream.
type TransferChunkResponse struct{}

func (o TransferChunkResponse) MarshalXDR() []byte          { return nil }
func (o *TransferChunkResponse) UnmarshalXDR(_ []byte) error { return nil }
