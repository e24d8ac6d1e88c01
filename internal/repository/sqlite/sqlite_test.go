// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkafar/dsync/internal/repository"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "dsync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestFetchLocalHostUninitialized(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.FetchLocalHost(ctx)
	assert.ErrorIs(t, err, repository.ErrUninitialized)
}

func TestInitSynthesizesLocalHost(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	host, err := repository.Init(ctx, db, func() (repository.Host, error) {
		return repository.Host{UUID: "abc", Name: "abc", Hostname: "myhost", IPv4: "127.0.0.1"}, nil
	})
	require.NoError(t, err)
	assert.True(t, host.IsLocal)

	hosts, err := db.FetchHosts(ctx)
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.True(t, hosts[0].IsLocal)
	assert.Equal(t, "127.0.0.1", hosts[0].IPv4)

	// Calling Init again against an already-primed store is a no-op.
	host2, err := repository.Init(ctx, db, func() (repository.Host, error) {
		t.Fatal("factory should not be invoked twice")
		return repository.Host{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, host.UUID, host2.UUID)
}

func TestFetchLocalHostCorrupt(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := db.InsertHosts(ctx, []repository.Host{
		{UUID: "a", Name: "a", IsLocal: true},
		{UUID: "b", Name: "b", IsLocal: true},
	})
	require.NoError(t, err)

	_, err = db.FetchLocalHost(ctx)
	var corrupt *repository.CorruptError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, 2, corrupt.LocalHostRows)
}

func TestInsertHostsIdempotentOnUUID(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := db.InsertHosts(ctx, []repository.Host{
		{UUID: "x", Name: "first"},
		{UUID: "x", Name: "second"},
	})
	require.NoError(t, err)

	hosts, err := db.FetchHosts(ctx)
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, "first", hosts[0].Name)
}

func TestHostRemove(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.InsertHosts(ctx, []repository.Host{{UUID: "x", Name: "x"}}))
	require.NoError(t, db.DeleteHostByUUID(ctx, "x"))

	_, err := db.FetchHostByUUID(ctx, "x")
	assert.ErrorIs(t, err, repository.ErrDoesNotExist)

	// Idempotent: deleting again is not an error.
	require.NoError(t, db.DeleteHostByUUID(ctx, "x"))
}

func TestSaveLocalFilesDuplicateAtomic(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := db.SaveLocalFiles(ctx, []repository.TrackedFile{
		{Path: "/tmp/a", SHA1: "deadbeef"},
		{Path: "/tmp/a", SHA1: "deadbeef"},
	})
	require.True(t, errors.Is(err, repository.ErrAlreadyExists))

	files, err := db.FetchLocalFiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestSaveLocalFilesThenDelete(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveLocalFiles(ctx, []repository.TrackedFile{{Path: "/tmp/a", SHA1: "deadbeef"}}))

	files, err := db.FetchLocalFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "/tmp/a", files[0].Path)

	require.NoError(t, db.DeleteLocalFile(ctx, "/tmp/a"))
	assert.ErrorIs(t, db.DeleteLocalFile(ctx, "/tmp/a"), repository.ErrDoesNotExist)
}

func TestGroupCreateDeleteRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	_, err := db.SaveLocalGroup(ctx, "g1")
	require.NoError(t, err)

	_, err = db.SaveLocalGroup(ctx, "g1")
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	require.NoError(t, db.DeleteGroupByName(ctx, "g1"))
	assert.ErrorIs(t, db.DeleteGroupByName(ctx, "g1"), repository.ErrDoesNotExist)
}
