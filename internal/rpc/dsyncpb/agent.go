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

// LocalFileDescription describes one tracked file as returned by file_list.
type LocalFileDescription struct {
	LocalId  int64
	FilePath string
	HashSha1 string
}

func (o LocalFileDescription) encodeXDR(xw *xdr.Writer) (int, error) {
	xw.WriteUint64(uint64(o.LocalId))
	xw.WriteString(o.FilePath)
	xw.WriteString(o.HashSha1)
	return xw.Tot(), xw.Error()
}

func (o *LocalFileDescription) decodeXDR(xr *xdr.Reader) error {
	o.LocalId = int64(xr.ReadUint64())
	o.FilePath = xr.ReadString()
	o.HashSha1 = xr.ReadString()
	return xr.Error()
}

// FileAddRequest carries the list form only; a singleton caller sends a
// one-element Paths slice.
type FileAddRequest struct {
	Paths []string
	Group string // empty means no group
}

func (o FileAddRequest) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteUint32(uint32(len(o.Paths)))
	for _, p := range o.Paths {
		xw.WriteString(p)
	}
	xw.WriteString(o.Group)
	return buf.Bytes()
}

func (o *FileAddRequest) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	n := xr.ReadUint32()
	o.Paths = make([]string, n)
	for i := range o.Paths {
		o.Paths[i] = xr.ReadString()
	}
	o.Group = xr.ReadString()
	return xr.Error()
}

type FileAddResponse struct{}

func (o FileAddResponse) MarshalXDR() []byte           { return nil }
func (o *FileAddResponse) UnmarshalXDR(_ []byte) error { return nil }

type FileRemoveRequest struct {
	Path  string
	Group string
}

func (o FileRemoveRequest) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteString(o.Path)
	xw.WriteString(o.Group)
	return buf.Bytes()
}

func (o *FileRemoveRequest) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	o.Path = xr.ReadString()
	o.Group = xr.ReadString()
	return xr.Error()
}

type FileRemoveResponse struct{}

func (o FileRemoveResponse) MarshalXDR() []byte           { return nil }
func (o *FileRemoveResponse) UnmarshalXDR(_ []byte) error { return nil }

type FileListRequest struct {
	Remote string // host name filter, empty means unset
	Group  string
}

func (o FileListRequest) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteString(o.Remote)
	xw.WriteString(o.Group)
	return buf.Bytes()
}

func (o *FileListRequest) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	o.Remote = xr.ReadString()
	o.Group = xr.ReadString()
	return xr.Error()
}

type FileListResponse struct {
	Files []LocalFileDescription
}

func (o FileListResponse) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteUint32(uint32(len(o.Files)))
	for _, f := range o.Files {
		f.encodeXDR(xw)
	}
	return buf.Bytes()
}

func (o *FileListResponse) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	n := xr.ReadUint32()
	o.Files = make([]LocalFileDescription, n)
	for i := range o.Files {
		if err := o.Files[i].decodeXDR(xr); err != nil {
			return err
		}
	}
	return xr.Error()
}

type FileCopyRequest struct {
	Src FileSource
	Dst FileSource
}

func (o FileCopyRequest) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	o.Src.encodeXDR(xw)
	o.Dst.encodeXDR(xw)
	return buf.Bytes()
}

func (o *FileCopyRequest) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	if err := o.Src.decodeXDR(xr); err != nil {
		return err
	}
	return o.Dst.decodeXDR(xr)
}

type FileCopyResponse struct{}

func (o FileCopyResponse) MarshalXDR() []byte           { return nil }
func (o *FileCopyResponse) UnmarshalXDR(_ []byte) error { return nil }

type HostListRequest struct{}

func (o HostListRequest) MarshalXDR() []byte           { return nil }
func (o *HostListRequest) UnmarshalXDR(_ []byte) error { return nil }

type HostListResponse struct {
	Hosts []HostInfo
}

func (o HostListResponse) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteUint32(uint32(len(o.Hosts)))
	for _, h := range o.Hosts {
		h.encodeXDR(xw)
	}
	return buf.Bytes()
}

func (o *HostListResponse) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	n := xr.ReadUint32()
	o.Hosts = make([]HostInfo, n)
	for i := range o.Hosts {
		if err := o.Hosts[i].decodeXDR(xr); err != nil {
			return err
		}
	}
	return xr.Error()
}

type HostDiscoverRequest struct{}

func (o HostDiscoverRequest) MarshalXDR() []byte           { return nil }
func (o *HostDiscoverRequest) UnmarshalXDR(_ []byte) error { return nil }

type HostDiscoverResponse struct {
	Hosts []HostInfo
}

func (o HostDiscoverResponse) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteUint32(uint32(len(o.Hosts)))
	for _, h := range o.Hosts {
		h.encodeXDR(xw)
	}
	return buf.Bytes()
}

func (o *HostDiscoverResponse) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	n := xr.ReadUint32()
	o.Hosts = make([]HostInfo, n)
	for i := range o.Hosts {
		if err := o.Hosts[i].decodeXDR(xr); err != nil {
			return err
		}
	}
	return xr.Error()
}

type HostAddRequest struct {
	Ipv4 string
	Port int32 // 0 means unset/default
}

func (o HostAddRequest) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteString(o.Ipv4)
	xw.WriteUint32(uint32(o.Port))
	return buf.Bytes()
}

func (o *HostAddRequest) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	o.Ipv4 = xr.ReadString()
	o.Port = int32(xr.ReadUint32())
	return xr.Error()
}

type HostAddResponse struct {
	Host HostInfo
}

func (o HostAddResponse) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	o.Host.encodeXDR(xw)
	return buf.Bytes()
}

func (o *HostAddResponse) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	return o.Host.decodeXDR(xr)
}

type HostRemoveRequest struct {
	Host HostSpec
}

func (o HostRemoveRequest) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	o.Host.encodeXDR(xw)
	return buf.Bytes()
}

func (o *HostRemoveRequest) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	return o.Host.decodeXDR(xr)
}

type HostRemoveResponse struct{}

func (o HostRemoveResponse) MarshalXDR() []byte           { return nil }
func (o *HostRemoveResponse) UnmarshalXDR(_ []byte) error { return nil }

type GroupCreateRequest struct {
	Name string
}

func (o GroupCreateRequest) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteString(o.Name)
	return buf.Bytes()
}

func (o *GroupCreateRequest) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	o.Name = xr.ReadString()
	return xr.Error()
}

type GroupCreateResponse struct{}

func (o GroupCreateResponse) MarshalXDR() []byte           { return nil }
func (o *GroupCreateResponse) UnmarshalXDR(_ []byte) error { return nil }

type GroupDeleteRequest struct {
	Name string
}

func (o GroupDeleteRequest) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteString(o.Name)
	return buf.Bytes()
}

func (o *GroupDeleteRequest) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	o.Name = xr.ReadString()
	return xr.Error()
}

type GroupDeleteResponse struct{}

func (o GroupDeleteResponse) MarshalXDR() []byte           { return nil }
func (o *GroupDeleteResponse) UnmarshalXDR(_ []byte) error { return nil }

type GroupListRequest struct {
	Remote string
}

func (o GroupListRequest) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteString(o.Remote)
	return buf.Bytes()
}

func (o *GroupListRequest) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	o.Remote = xr.ReadString()
	return xr.Error()
}

type GroupListResponse struct {
	Groups []string
}

func (o GroupListResponse) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	xw.WriteUint32(uint32(len(o.Groups)))
	for _, g := range o.Groups {
		xw.WriteString(g)
	}
	return buf.Bytes()
}

func (o *GroupListResponse) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	n := xr.ReadUint32()
	o.Groups = make([]string, n)
	for i := range o.Groups {
		o.Groups[i] = xr.ReadString()
	}
	return xr.Error()
}
