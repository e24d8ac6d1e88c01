// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package dsyncpb

// ShutdownRequest carries no parameters. Shutdown is NOT idempotent: a
// second call while the first is still pending fails with
// FailedPrecondition rather than returning success again.
type ShutdownRequest struct{}

func (o ShutdownRequest) MarshalXDR() []byte           { return nil }
func (o *ShutdownRequest) UnmarshalXDR(_ []byte) error { return nil }

// ShutdownResponse carries nothing beyond success; a rejected second call
// is conveyed via the gRPC status instead.
type ShutdownResponse struct{}

func (o ShutdownResponse) MarshalXDR() []byte           { return nil }
func (o *ShutdownResponse) UnmarshalXDR(_ []byte) error { return nil }
