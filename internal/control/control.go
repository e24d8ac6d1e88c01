// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package control implements the daemon's single shutdown operation: a
// notifier consumed exactly once, with a background task that fires it
// after letting the RPC response flush.
package control

import (
	"context"
	"runtime"
	"sync"

	"github.com/kkafar/dsync/internal/rpc/dsyncpb"
	"github.com/kkafar/dsync/internal/rpcerr"
	"github.com/kkafar/dsync/internal/slogutil"
)

func init() { slogutil.RegisterPackage("server control") }

// Service implements dsyncpb.ServerControlServiceServer. Its zero value is
// not usable; construct with New.
type Service struct {
	dsyncpb.UnimplementedServerControlServiceServer

	mut      sync.Mutex
	consumed bool
	notifyC  chan struct{}
}

// New builds a Service with a fresh, unconsumed notifier.
func New() *Service {
	return &Service{notifyC: make(chan struct{})}
}

// Done returns the channel that closes once Shutdown has been accepted and
// its background task has fired the notifier. cmd/dsyncd's top-level
// serve loop selects on this to know when to tear the daemon down.
func (s *Service) Done() <-chan struct{} {
	return s.notifyC
}

// Shutdown consumes the notifier exactly once. A second call while the
// first is still pending (or after it has fired) fails with
// FailedPrecondition — shutdown is intentionally not idempotent.
func (s *Service) Shutdown(_ context.Context, _ *dsyncpb.ShutdownRequest) (*dsyncpb.ShutdownResponse, error) {
	s.mut.Lock()
	if s.consumed {
		s.mut.Unlock()
		return nil, rpcerr.FailedPrecondition("shutdown already requested")
	}
	s.consumed = true
	s.mut.Unlock()

	go func() {
		// Yield once so the RPC response has a chance to flush before the
		// daemon starts tearing itself down.
		runtime.Gosched()
		close(s.notifyC)
	}()

	return &dsyncpb.ShutdownResponse{}, nil
}
