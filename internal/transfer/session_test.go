// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package transfer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableAllocateMonotonic(t *testing.T) {
	tbl := NewTable()

	s0 := tbl.Allocate(Session{FileSha1: "a"})
	s1 := tbl.Allocate(Session{FileSha1: "b"})
	s2 := tbl.Allocate(Session{FileSha1: "c"})

	assert.Equal(t, int64(0), s0.ID)
	assert.Equal(t, int64(1), s1.ID)
	assert.Equal(t, int64(2), s2.ID)
}

func TestTableRegisterGetUnregister(t *testing.T) {
	tbl := NewTable()
	s := tbl.Allocate(Session{FileSha1: "deadbeef"})
	tbl.Register(s)

	got, ok := tbl.Get(s.ID)
	assert.True(t, ok)
	assert.Equal(t, "deadbeef", got.FileSha1)

	assert.True(t, tbl.Unregister(s.ID))
	assert.False(t, tbl.Unregister(s.ID))

	_, ok = tbl.Get(s.ID)
	assert.False(t, ok)
}

func TestTableGetUnknownID(t *testing.T) {
	tbl := NewTable()
	_, ok := tbl.Get(42)
	assert.False(t, ok)
}
