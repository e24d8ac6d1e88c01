// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package sqlite is the repository.Repository implementation backed by a
// single sqlite file, accessed through jmoiron/sqlx over the pure-Go
// modernc.org/sqlite driver (no cgo, so the store works the same whether or
// not a C toolchain is available on the build host).
package sqlite

import (
	"database/sql"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/kkafar/dsync/internal/repository"
	"github.com/kkafar/dsync/internal/slogutil"
)

func init() { slogutil.RegisterPackage("sqlite repository") }

const maxDBConns = 16

//go:embed sql/**
var embedded embed.FS

var _ repository.Repository = (*DB)(nil)

// DB is the concrete repository.Repository implementation.
type DB struct {
	sql *sqlx.DB

	mut sync.Mutex // serializes all repository operations

	statementsMut sync.RWMutex
	statements    map[string]*sqlx.Stmt
}

// Open opens (creating if necessary) the sqlite file at path and applies
// the schema.
func Open(path string) (*DB, error) {
	sqlDB, err := sqlx.Open(dbDriver, "file:"+path+"?"+commonOptions)
	if err != nil {
		return nil, wrap(err)
	}
	sqlDB.SetMaxOpenConns(maxDBConns)
	if _, err := sqlDB.Exec(`PRAGMA journal_mode = WAL`); err != nil {
		return nil, wrap(err, "PRAGMA journal_mode")
	}

	db := &DB{
		sql:        sqlDB,
		statements: make(map[string]*sqlx.Stmt),
	}
	if err := db.runScripts("sql/schema/*"); err != nil {
		return nil, wrap(err)
	}
	return db, nil
}

// OpenTemp opens a throwaway sqlite file under the OS temp directory, for
// tests.
func OpenTemp() (*DB, error) {
	dir, err := os.MkdirTemp("", "dsync-db")
	if err != nil {
		return nil, wrap(err)
	}
	return Open(filepath.Join(dir, "dsync.db"))
}

func (s *DB) Close() error {
	s.statementsMut.Lock()
	defer s.statementsMut.Unlock()
	for _, stmt := range s.statements {
		stmt.Close()
	}
	return wrap(s.sql.Close())
}

// stmt returns a prepared statement for the given SQL string, preparing and
// caching it on first use.
func (s *DB) stmt(tpl string) stmt {
	tpl = strings.TrimSpace(tpl)

	s.statementsMut.RLock()
	st, ok := s.statements[tpl]
	s.statementsMut.RUnlock()
	if ok {
		return st
	}

	s.statementsMut.Lock()
	defer s.statementsMut.Unlock()
	st, ok = s.statements[tpl]
	if ok {
		return st
	}

	st, err := s.sql.Preparex(tpl)
	if err != nil {
		return failedStmt{err}
	}
	s.statements[tpl] = st
	return st
}

type stmt interface {
	Exec(args ...any) (sql.Result, error)
	Get(dest any, args ...any) error
	Select(dest any, args ...any) error
}

type failedStmt struct{ err error }

func (f failedStmt) Exec(_ ...any) (sql.Result, error) { return nil, f.err }
func (f failedStmt) Get(_ any, _ ...any) error         { return f.err }
func (f failedStmt) Select(_ any, _ ...any) error      { return f.err }

//nolint:noctx
func (s *DB) runScripts(glob string) error {
	scripts, err := fs.Glob(embedded, glob)
	if err != nil {
		return wrap(err)
	}

	tx, err := s.sql.Begin()
	if err != nil {
		return wrap(err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, scr := range scripts {
		bs, err := fs.ReadFile(embedded, scr)
		if err != nil {
			return wrap(err, scr)
		}
		for _, one := range strings.Split(string(bs), "\n;") {
			one = strings.TrimSpace(one)
			if one == "" {
				continue
			}
			if _, err := tx.Exec(one); err != nil {
				return wrap(err, scr)
			}
		}
	}

	return wrap(tx.Commit())
}
