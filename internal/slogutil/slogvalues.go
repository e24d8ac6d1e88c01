// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package slogutil

import (
	"log/slog"
	"slices"
)

func Address(v any) slog.Attr {
	return slog.Any("address", v)
}

func Error(err any) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func FilePath(path string) slog.Attr {
	return slog.String("path", path)
}

func HostUUID(id string) slog.Attr {
	return slog.String("host_uuid", id)
}

func SessionID(id int64) slog.Attr {
	return slog.Int64("session_id", id)
}

func Map[T any](m map[string]T) []any {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	var attrs []any
	for _, key := range keys {
		attrs = append(attrs, slog.Any(key, m[key]))
	}
	return attrs
}
