// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/kkafar/dsync/internal/repository"
)

type hostRow struct {
	UUID         string `db:"uuid"`
	Name         string `db:"name"`
	Hostname     string `db:"hostname"`
	IsLocal      bool   `db:"is_local"`
	IPv4Addr     string `db:"ipv4_addr"`
	DiscoveredAt int64  `db:"discovered_at"`
}

func (r hostRow) toHost() repository.Host {
	return repository.Host{
		UUID:         r.UUID,
		Name:         r.Name,
		Hostname:     r.Hostname,
		IsLocal:      r.IsLocal,
		IPv4:         r.IPv4Addr,
		DiscoveredAt: r.DiscoveredAt,
	}
}

func (s *DB) FetchLocalHost(_ context.Context) (repository.Host, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	var rows []hostRow
	if err := s.stmt(`SELECT uuid, name, hostname, is_local, ipv4_addr, discovered_at FROM hosts WHERE is_local = 1`).Select(&rows); err != nil {
		return repository.Host{}, wrap(err)
	}
	switch len(rows) {
	case 0:
		return repository.Host{}, repository.ErrUninitialized
	case 1:
		return rows[0].toHost(), nil
	default:
		return repository.Host{}, &repository.CorruptError{LocalHostRows: len(rows)}
	}
}

func (s *DB) InsertHosts(_ context.Context, hosts []repository.Host) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	tx, err := s.sql.Beginx()
	if err != nil {
		return wrap(err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, h := range hosts {
		_, err := tx.Exec(
			`INSERT OR IGNORE INTO hosts (uuid, name, hostname, is_local, ipv4_addr, discovered_at) VALUES (?, ?, ?, ?, ?, ?)`,
			h.UUID, h.Name, h.Hostname, h.IsLocal, h.IPv4, h.DiscoveredAt,
		)
		if err != nil {
			return wrap(err, h.UUID)
		}
	}

	return wrap(tx.Commit())
}

func (s *DB) FetchHosts(_ context.Context) ([]repository.Host, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	var rows []hostRow
	if err := s.stmt(`SELECT uuid, name, hostname, is_local, ipv4_addr, discovered_at FROM hosts`).Select(&rows); err != nil {
		return nil, wrap(err)
	}
	hosts := make([]repository.Host, len(rows))
	for i, r := range rows {
		hosts[i] = r.toHost()
	}
	return hosts, nil
}

func (s *DB) fetchHostBy(column, value string) (repository.Host, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	var r hostRow
	query := `SELECT uuid, name, hostname, is_local, ipv4_addr, discovered_at FROM hosts WHERE ` + column + ` = ?`
	if err := s.stmt(query).Get(&r, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.Host{}, repository.ErrDoesNotExist
		}
		return repository.Host{}, wrap(err)
	}
	return r.toHost(), nil
}

func (s *DB) FetchHostByUUID(_ context.Context, uuid string) (repository.Host, error) {
	return s.fetchHostBy("uuid", uuid)
}

func (s *DB) FetchHostByName(_ context.Context, name string) (repository.Host, error) {
	return s.fetchHostBy("name", name)
}

func (s *DB) FetchHostByLocalID(_ context.Context, localID int64) (repository.Host, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	var r hostRow
	err := s.stmt(`SELECT uuid, name, hostname, is_local, ipv4_addr, discovered_at FROM hosts WHERE rowid = ?`).Get(&r, localID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return repository.Host{}, repository.ErrDoesNotExist
		}
		return repository.Host{}, wrap(err)
	}
	return r.toHost(), nil
}

func (s *DB) DeleteHostByUUID(_ context.Context, uuid string) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	_, err := s.stmt(`DELETE FROM hosts WHERE uuid = ?`).Exec(uuid)
	return wrap(err)
}

// isUniqueViolation recognizes the modernc.org/sqlite wording for a UNIQUE
// constraint failure; sqlite reports these as plain *sqlite.Error with a
// message rather than a typed sentinel, so we match on substring.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
