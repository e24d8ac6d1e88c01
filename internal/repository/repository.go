// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repository defines the storage-agnostic contract the rest of
// dsyncd programs against: the local host record, the remote host catalog,
// tracked files, and groups. The only concrete implementation lives in
// internal/repository/sqlite; internal/repository/repositoryfakes provides
// an in-memory stand-in for unit tests.
package repository

import (
	"context"
	"errors"
	"fmt"
)

// Host is the repository's view of one catalog row, local or remote.
type Host struct {
	UUID         string
	Name         string
	Hostname     string
	IsLocal      bool
	IPv4         string
	DiscoveredAt int64
}

// TrackedFile is one row of the local file-tracking table.
type TrackedFile struct {
	LocalID int64
	Path    string
	SHA1    string
}

// Group is one row of the local group table.
type Group struct {
	LocalID int64
	Name    string
}

// Sentinel error kinds. Services translate these into RPC status codes;
// see internal/rpcerr.
var (
	ErrUninitialized = errors.New("repository: local host row missing")
	ErrDoesNotExist  = errors.New("repository: no such row")
	ErrAlreadyExists = errors.New("repository: row already exists")
)

// CorruptError reports more than one local-host row: a fatal, unrecoverable
// condition.
type CorruptError struct {
	LocalHostRows int
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("repository: corrupt state: %d local host rows, expected 1", e.LocalHostRows)
}

// LocalHostFactory synthesizes the local host row the first time a daemon
// ever starts against an empty store.
type LocalHostFactory func() (Host, error)

// Repository is the sole legitimate access path to persistent dsync state.
// Every method is one atomic unit of work; implementations serialize access
// internally and must never be bypassed by callers reaching for the
// backing store directly.
type Repository interface {
	// FetchLocalHost returns the single row with IsLocal set. Returns
	// ErrUninitialized if absent, *CorruptError if more than one exists.
	FetchLocalHost(ctx context.Context) (Host, error)

	// InsertHosts inserts each row; a uuid collision is silently ignored
	// (idempotent upsert-nothing), matching host_discover's repeated-run
	// semantics.
	InsertHosts(ctx context.Context, hosts []Host) error

	// FetchHosts returns the full catalog, local row included.
	FetchHosts(ctx context.Context) ([]Host, error)

	FetchHostByUUID(ctx context.Context, uuid string) (Host, error)
	FetchHostByName(ctx context.Context, name string) (Host, error)
	FetchHostByLocalID(ctx context.Context, localID int64) (Host, error)

	// DeleteHostByUUID is idempotent: deleting an absent uuid is not an
	// error.
	DeleteHostByUUID(ctx context.Context, uuid string) error

	// SaveLocalFiles bulk-inserts fragments. If any path collides with an
	// existing row, the whole batch is rejected with ErrAlreadyExists and
	// nothing is inserted.
	SaveLocalFiles(ctx context.Context, files []TrackedFile) error

	FetchLocalFiles(ctx context.Context) ([]TrackedFile, error)

	// DeleteLocalFile is exact-match by path.
	DeleteLocalFile(ctx context.Context, path string) error

	// SaveLocalGroup returns ErrAlreadyExists on a unique-name violation.
	SaveLocalGroup(ctx context.Context, name string) (Group, error)

	// DeleteGroupByName returns ErrDoesNotExist if no row was removed.
	DeleteGroupByName(ctx context.Context, name string) error

	FetchLocalGroups(ctx context.Context) ([]Group, error)

	// Close releases the backing store handle.
	Close() error
}

// Init primes repo before it serves RPC traffic: it calls FetchLocalHost,
// and on ErrUninitialized invokes factory to synthesize and persist the
// local row. A *CorruptError is returned unwrapped; cmd/dsyncd treats that
// as fatal and panic-terminates with the diagnostic.
func Init(ctx context.Context, repo Repository, factory LocalHostFactory) (Host, error) {
	host, err := repo.FetchLocalHost(ctx)
	switch {
	case err == nil:
		return host, nil
	case errors.Is(err, ErrUninitialized):
		host, err = factory()
		if err != nil {
			return Host{}, fmt.Errorf("repository: local host factory: %w", err)
		}
		host.IsLocal = true
		if err := repo.InsertHosts(ctx, []Host{host}); err != nil {
			return Host{}, fmt.Errorf("repository: persisting local host: %w", err)
		}
		return host, nil
	default:
		return Host{}, err
	}
}
