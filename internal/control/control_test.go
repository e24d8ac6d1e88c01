// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package control

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kkafar/dsync/internal/rpc/dsyncpb"
)

func TestShutdownFiresNotifier(t *testing.T) {
	svc := New()

	_, err := svc.Shutdown(context.Background(), &dsyncpb.ShutdownRequest{})
	require.NoError(t, err)

	select {
	case <-svc.Done():
	case <-time.After(time.Second):
		t.Fatal("notifier did not fire")
	}
}

func TestShutdownSecondCallFails(t *testing.T) {
	svc := New()

	_, err := svc.Shutdown(context.Background(), &dsyncpb.ShutdownRequest{})
	require.NoError(t, err)

	_, err = svc.Shutdown(context.Background(), &dsyncpb.ShutdownRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}
