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

type groupRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func (s *DB) SaveLocalGroup(_ context.Context, name string) (repository.Group, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	res, err := s.stmt(`INSERT INTO groups_local (name) VALUES (?)`).Exec(name)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.Group{}, repository.ErrAlreadyExists
		}
		return repository.Group{}, wrap(err, name)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return repository.Group{}, wrap(err)
	}
	return repository.Group{LocalID: id, Name: name}, nil
}

func (s *DB) DeleteGroupByName(_ context.Context, name string) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	res, err := s.stmt(`DELETE FROM groups_local WHERE name = ?`).Exec(name)
	if err != nil {
		return wrap(err, name)
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

func (s *DB) FetchLocalGroups(_ context.Context) ([]repository.Group, error) {
	s.mut.Lock()
	defer s.mut.Unlock()

	var rows []groupRow
	if err := s.stmt(`SELECT id, name FROM groups_local`).Select(&rows); err != nil {
		return nil, wrap(err)
	}
	groups := make([]repository.Group, len(rows))
	for i, r := range rows {
		groups[i] = repository.Group{LocalID: r.ID, Name: r.Name}
	}
	return groups, nil
}
