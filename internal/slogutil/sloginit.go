// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package slogutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	GlobalRecorder = &lineRecorder{level: -1000}
	ErrorRecorder  = &lineRecorder{level: slog.LevelError}
	globalLevels   = &levelTracker{
		levels: make(map[string]slog.Level),
		descrs: make(map[string]string),
	}
	globalFormatter = &formattingOptions{
		out:  os.Stdout,
		recs: []*lineRecorder{GlobalRecorder, ErrorRecorder},
	}
	slogDef *slog.Logger
)

func init() {
	var out io.Writer = os.Stdout
	if os.Getenv("DSYNC_LOGGER_DISCARD") != "" {
		out = io.Discard
	}
	globalFormatter.out = out

	slogDef = slog.New(&formattingHandler{opts: globalFormatter})
	slog.SetDefault(slogDef)

	// DSYNC_TRACE mirrors the legacy STTRACE convention: a comma-separated
	// list of package names, each optionally followed by ":LEVEL", that
	// sets that package's log level.
	pkgs := strings.Split(os.Getenv("DSYNC_TRACE"), ",")
	for _, pkg := range pkgs {
		pkg = strings.TrimSpace(pkg)
		if pkg == "" {
			continue
		}
		level := slog.LevelDebug
		if cutPkg, levelStr, ok := strings.Cut(pkg, ":"); ok {
			pkg = cutPkg
			if err := level.UnmarshalText([]byte(levelStr)); err != nil {
				slog.Warn("Bad log level requested in DSYNC_TRACE", slog.String("pkg", pkg), slog.String("level", levelStr), Error(err))
			}
		}
		globalLevels.Set(pkg, level)
	}
}
