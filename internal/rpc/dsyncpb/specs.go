// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package dsyncpb

import (
	"bytes"
	"fmt"

	"github.com/calmh/xdr"
)

// HostSpecKind discriminates the HostSpec union, per idl/dsync.xdr.
type HostSpecKind uint32

const (
	HostSpecLocal   HostSpecKind = 0
	HostSpecName    HostSpecKind = 1
	HostSpecLocalID HostSpecKind = 2
)

// HostSpec names a host without committing to a textual syntax: either the
// local daemon, a catalog entry by display name, or one by local_id.
type HostSpec struct {
	Kind    HostSpecKind
	Name    string
	LocalID int64
}

func (o HostSpec) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	o.encodeXDR(xw)
	return buf.Bytes()
}

func (o HostSpec) encodeXDR(xw *xdr.Writer) (int, error) {
	xw.WriteUint32(uint32(o.Kind))
	switch o.Kind {
	case HostSpecLocal:
	case HostSpecName:
		xw.WriteString(o.Name)
	case HostSpecLocalID:
		xw.WriteUint64(uint64(o.LocalID))
	}
	return xw.Tot(), xw.Error()
}

func (o *HostSpec) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	return o.decodeXDR(xr)
}

func (o *HostSpec) decodeXDR(xr *xdr.Reader) error {
	o.Kind = HostSpecKind(xr.ReadUint32())
	switch o.Kind {
	case HostSpecLocal:
	case HostSpecName:
		o.Name = xr.ReadString()
	case HostSpecLocalID:
		o.LocalID = int64(xr.ReadUint64())
	}
	return xr.Error()
}

func (o HostSpec) String() string {
	switch o.Kind {
	case HostSpecLocal:
		return "localhost"
	case HostSpecName:
		return o.Name
	case HostSpecLocalID:
		return fmt.Sprintf("#%d", o.LocalID)
	default:
		return "unknown"
	}
}

// PathSpecKind discriminates the PathSpec union.
type PathSpecKind uint32

const (
	PathSpecAbsolute PathSpecKind = 0
	PathSpecRelative PathSpecKind = 1
)

// PathSpec is a filesystem path that may or may not be absolute.
type PathSpec struct {
	Kind PathSpecKind
	Path string
}

func (o PathSpec) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	o.encodeXDR(xw)
	return buf.Bytes()
}

func (o PathSpec) encodeXDR(xw *xdr.Writer) (int, error) {
	xw.WriteUint32(uint32(o.Kind))
	xw.WriteString(o.Path)
	return xw.Tot(), xw.Error()
}

func (o *PathSpec) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	return o.decodeXDR(xr)
}

func (o *PathSpec) decodeXDR(xr *xdr.Reader) error {
	o.Kind = PathSpecKind(xr.ReadUint32())
	o.Path = xr.ReadString()
	return xr.Error()
}

// FileSource pairs a host-spec with a path-spec: an abstract (host, path)
// identifier used by file_copy and host_remove.
type FileSource struct {
	Host HostSpec
	Path PathSpec
}

func (o FileSource) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	o.encodeXDR(xw)
	return buf.Bytes()
}

func (o FileSource) encodeXDR(xw *xdr.Writer) (int, error) {
	o.Host.encodeXDR(xw)
	o.Path.encodeXDR(xw)
	return xw.Tot(), xw.Error()
}

func (o *FileSource) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	return o.decodeXDR(xr)
}

func (o *FileSource) decodeXDR(xr *xdr.Reader) error {
	if err := o.Host.decodeXDR(xr); err != nil {
		return err
	}
	return o.Path.decodeXDR(xr)
}
