// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package slogutil

import "runtime"

// Log levels:
// - DEBUG: developer-only detail (wire dumps, lock timing)
// - INFO: normal operation, the bulk of what gets logged
// - WARN: recoverable errors (a retryable dial failure, a skipped host)
// - ERROR: errors that need attention

// RegisterPackage records a human-readable description for the calling
// package, returned by PackageDescrs alongside the bare package name.
func RegisterPackage(descr string) {
	registerPackage(descr, 2)
}

func registerPackage(descr string, frames int) {
	var pcs [1]uintptr
	runtime.Callers(1+frames, pcs[:])
	pc := pcs[0]
	fr := runtime.CallersFrames([]uintptr{pc})
	if fram, _ := fr.Next(); fram.Function != "" {
		pkgName, _ := funcNameToPkg(fram.Function)
		globalLevels.SetDescr(pkgName, descr)
	}
}
