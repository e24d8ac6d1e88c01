// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package transfer implements the inbound/outbound halves of file
// movement between daemons: an in-memory session table (C4) and the
// FileTransferService RPC handlers that drive it (C5).
package transfer

import (
	"sync"

	"github.com/kkafar/dsync/internal/slogutil"
)

func init() { slogutil.RegisterPackage("file transfer") }

// Session is the frozen state of one inbound transfer, from TransferInit
// until the stream completes or is abandoned.
type Session struct {
	ID            int64
	FilePathSrc   string
	FilePathDst   string
	FileSha1      string
	FileSizeBytes int64
	ChunkSize     int32
}

// Table is the process-local map from session id to Session. All
// operations serialize through a single mutex independent of the
// repository's; session ids are monotonic and never reused for the
// lifetime of the process.
type Table struct {
	mut    sync.Mutex
	nextID int64
	byID   map[int64]Session
}

func NewTable() *Table {
	return &Table{byID: make(map[int64]Session)}
}

// Allocate assigns the next session id to a frozen copy of req. The caller
// must separately call Register before a remote peer can be told about the
// id, per the table's two-step contract.
func (t *Table) Allocate(req Session) Session {
	t.mut.Lock()
	defer t.mut.Unlock()

	req.ID = t.nextID
	t.nextID++
	return req
}

func (t *Table) Register(s Session) {
	t.mut.Lock()
	defer t.mut.Unlock()
	t.byID[s.ID] = s
}

// Unregister removes id and reports whether it was present.
func (t *Table) Unregister(id int64) bool {
	t.mut.Lock()
	defer t.mut.Unlock()

	if _, ok := t.byID[id]; !ok {
		return false
	}
	delete(t.byID, id)
	return true
}

// Get returns a copy of the session registered under id.
func (t *Table) Get(id int64) (Session, bool) {
	t.mut.Lock()
	defer t.mut.Unlock()

	s, ok := t.byID[id]
	return s, ok
}
