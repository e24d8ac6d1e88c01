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

// HostInfo is the handshake descriptor exchanged by HostDiscoveryService
// and echoed back by UserAgentService's host operations.
type HostInfo struct {
	Uuid     string
	Name     string
	Hostname string
	Address  string
}

func (o HostInfo) MarshalXDR() []byte {
	var buf bytes.Buffer
	xw := xdr.NewWriter(&buf)
	o.encodeXDR(xw)
	return buf.Bytes()
}

func (o HostInfo) encodeXDR(xw *xdr.Writer) (int, error) {
	xw.WriteString(o.Uuid)
	xw.WriteString(o.Name)
	xw.WriteString(o.Hostname)
	xw.WriteString(o.Address)
	return xw.Tot(), xw.Error()
}

func (o *HostInfo) UnmarshalXDR(bs []byte) error {
	xr := xdr.NewReader(bytes.NewReader(bs))
	return o.decodeXDR(xr)
}

func (o *HostInfo) decodeXDR(xr *xdr.Reader) error {
	o.Uuid = xr.ReadString()
	o.Name = xr.ReadString()
	o.Hostname = xr.ReadString()
	o.Address = xr.ReadString()
	return xr.Error()
}
