// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repositoryfakes provides an in-memory repository.Repository for
// unit tests, standing in for the sqlite implementation. There is no
// codegen toolchain available to run counterfeiter against the interface
// (see DESIGN.md), so this fake is hand-maintained; it implements the
// contract directly rather than recording call arguments.
package repositoryfakes

import (
	"context"
	"sync"

	"github.com/kkafar/dsync/internal/repository"
)

var _ repository.Repository = (*FakeRepository)(nil)

// FakeRepository is a single-mutex, map-backed Repository. Its zero value
// has nil maps and is not usable; construct with New.
type FakeRepository struct {
	mut sync.Mutex

	hosts     map[string]repository.Host // keyed by uuid
	files     map[string]repository.TrackedFile
	nextFile  int64
	groups    map[string]repository.Group
	nextGroup int64
}

func New() *FakeRepository {
	return &FakeRepository{
		hosts:  make(map[string]repository.Host),
		files:  make(map[string]repository.TrackedFile),
		groups: make(map[string]repository.Group),
	}
}

func (f *FakeRepository) FetchLocalHost(context.Context) (repository.Host, error) {
	f.mut.Lock()
	defer f.mut.Unlock()

	var found []repository.Host
	for _, h := range f.hosts {
		if h.IsLocal {
			found = append(found, h)
		}
	}
	switch len(found) {
	case 0:
		return repository.Host{}, repository.ErrUninitialized
	case 1:
		return found[0], nil
	default:
		return repository.Host{}, &repository.CorruptError{LocalHostRows: len(found)}
	}
}

func (f *FakeRepository) InsertHosts(_ context.Context, hosts []repository.Host) error {
	f.mut.Lock()
	defer f.mut.Unlock()

	for _, h := range hosts {
		if _, exists := f.hosts[h.UUID]; exists {
			continue
		}
		f.hosts[h.UUID] = h
	}
	return nil
}

func (f *FakeRepository) FetchHosts(context.Context) ([]repository.Host, error) {
	f.mut.Lock()
	defer f.mut.Unlock()

	hosts := make([]repository.Host, 0, len(f.hosts))
	for _, h := range f.hosts {
		hosts = append(hosts, h)
	}
	return hosts, nil
}

func (f *FakeRepository) FetchHostByUUID(_ context.Context, uuid string) (repository.Host, error) {
	f.mut.Lock()
	defer f.mut.Unlock()

	h, ok := f.hosts[uuid]
	if !ok {
		return repository.Host{}, repository.ErrDoesNotExist
	}
	return h, nil
}

func (f *FakeRepository) FetchHostByName(_ context.Context, name string) (repository.Host, error) {
	f.mut.Lock()
	defer f.mut.Unlock()

	for _, h := range f.hosts {
		if h.Name == name {
			return h, nil
		}
	}
	return repository.Host{}, repository.ErrDoesNotExist
}

func (f *FakeRepository) FetchHostByLocalID(_ context.Context, localID int64) (repository.Host, error) {
	f.mut.Lock()
	defer f.mut.Unlock()

	// The fake assigns no numeric row ids of its own; callers exercising
	// LocalID resolution should use the sqlite-backed repository.
	_ = localID
	return repository.Host{}, repository.ErrDoesNotExist
}

func (f *FakeRepository) DeleteHostByUUID(_ context.Context, uuid string) error {
	f.mut.Lock()
	defer f.mut.Unlock()

	delete(f.hosts, uuid)
	return nil
}

func (f *FakeRepository) SaveLocalFiles(_ context.Context, files []repository.TrackedFile) error {
	f.mut.Lock()
	defer f.mut.Unlock()

	for _, tf := range files {
		if _, exists := f.files[tf.Path]; exists {
			return repository.ErrAlreadyExists
		}
	}
	for _, tf := range files {
		f.nextFile++
		tf.LocalID = f.nextFile
		f.files[tf.Path] = tf
	}
	return nil
}

func (f *FakeRepository) FetchLocalFiles(context.Context) ([]repository.TrackedFile, error) {
	f.mut.Lock()
	defer f.mut.Unlock()

	files := make([]repository.TrackedFile, 0, len(f.files))
	for _, tf := range f.files {
		files = append(files, tf)
	}
	return files, nil
}

func (f *FakeRepository) DeleteLocalFile(_ context.Context, path string) error {
	f.mut.Lock()
	defer f.mut.Unlock()

	if _, ok := f.files[path]; !ok {
		return repository.ErrDoesNotExist
	}
	delete(f.files, path)
	return nil
}

func (f *FakeRepository) SaveLocalGroup(_ context.Context, name string) (repository.Group, error) {
	f.mut.Lock()
	defer f.mut.Unlock()

	if _, exists := f.groups[name]; exists {
		return repository.Group{}, repository.ErrAlreadyExists
	}
	f.nextGroup++
	g := repository.Group{LocalID: f.nextGroup, Name: name}
	f.groups[name] = g
	return g, nil
}

func (f *FakeRepository) DeleteGroupByName(_ context.Context, name string) error {
	f.mut.Lock()
	defer f.mut.Unlock()

	if _, ok := f.groups[name]; !ok {
		return repository.ErrDoesNotExist
	}
	delete(f.groups, name)
	return nil
}

func (f *FakeRepository) FetchLocalGroups(context.Context) ([]repository.Group, error) {
	f.mut.Lock()
	defer f.mut.Unlock()

	groups := make([]repository.Group, 0, len(f.groups))
	for _, g := range f.groups {
		groups = append(groups, g)
	}
	return groups, nil
}

func (f *FakeRepository) Close() error { return nil }
