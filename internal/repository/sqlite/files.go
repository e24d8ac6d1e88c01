// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package sqlite

import (
	"context"

	"github.com/kkafar/dsync/internal/repository"
)

type fileRow struct {
	ID       int64  `db:"id"`
	FilePath string `db:"file_path"`
	HashSHA1 string `db:"hash_sha1"`
}

func (r fileRow) toTrackedFile() repository.TrackedFile {
	return repository.TrackedFile{
		LocalID: r.ID,
		Path:    r.FilePath,
		SHA1:    r.HashSHA1,
	}
}

// SaveLocalFiles bulk-inserts files inside a single transaction. Any
// UNIQUE(file_path) violation rolls the whole batch back and reports
// ErrAlreadyExists, matching the "duplicate add" atomic-batch scenario.
func (s *DB) SaveLocalFiles(_ context.Context, files []repository.TrackedFile) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	tx, err := s.sql.Beginx()
	if err != nil {
		return wrap(err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, f := range files {
		if _, err := tx.Exec(`INSERT INTO files_local (file_path, hash_sha1) VALUES (?, ?)`, f.Path, f.SHA1); err != nil {
			if isUniqueViolation(err) {
				return repository.ErrAlreadyExists
			}
			return wrap(err, f.Path)
		}
	}

	return wrap(tx.Commit())
}

func (s *DB) FetchLocalFiles(_ context.Context) ([]repository.TrackedFile, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	var rows []fileRow
	if err := s.stmt(`SELECT id, file_path, hash_sha1 FROM files_local`).Select(&rows); err != nil {
		return nil, wrap(err)
	}
	files := make([]repository.TrackedFile, len(rows))
	for i, r := range rows {
		files[i] = r.toTrackedFile()
	}
	return files, nil
}

func (s *DB) DeleteLocalFile(_ context.Context, path string) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	res, err := s.stmt(`DELETE FROM files_local WHERE file_path = ?`).Exec(path)
	if err != nil {
		return wrap(err, path)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrap(err)
	}
	if n == 0 {
		return repository.ErrDoesNotExist
	}
	return nil
}
