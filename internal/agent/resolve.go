// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package agent

import (
	"context"
	"errors"

	"github.com/kkafar/dsync/internal/repository"
	"github.com/kkafar/dsync/internal/rpc/dsyncpb"
	"github.com/kkafar/dsync/internal/rpcerr"
)

// resolveHostSpec maps a HostSpec variant to a catalog row: LocalHost to
// the local row, Name/LocalId to an exact lookup.
func resolveHostSpec(ctx context.Context, repo repository.Repository, spec dsyncpb.HostSpec) (repository.Host, error) {
	switch spec.Kind {
	case dsyncpb.HostSpecLocal:
		host, err := repo.FetchLocalHost(ctx)
		if err != nil {
			return repository.Host{}, rpcerr.Internal(err)
		}
		return host, nil
	case dsyncpb.HostSpecName:
		host, err := repo.FetchHostByName(ctx, spec.Name)
		if err != nil {
			if errors.Is(err, repository.ErrDoesNotExist) {
				return repository.Host{}, rpcerr.NotFound(err)
			}
			return repository.Host{}, rpcerr.Internal(err)
		}
		return host, nil
	case dsyncpb.HostSpecLocalID:
		host, err := repo.FetchHostByLocalID(ctx, spec.LocalID)
		if err != nil {
			if errors.Is(err, repository.ErrDoesNotExist) {
				return repository.Host{}, rpcerr.NotFound(err)
			}
			return repository.Host{}, rpcerr.Internal(err)
		}
		return host, nil
	default:
		return repository.Host{}, rpcerr.InvalidArgument(errors.New("unrecognized host-spec kind"))
	}
}

// resolvePath extracts the filesystem path carried by a PathSpec. Whether
// it is absolute or relative is established client-side when the
// "[HOST@]PATH" string is parsed; the daemon uses it as given.
func resolvePath(spec dsyncpb.PathSpec) string {
	return spec.Path
}
