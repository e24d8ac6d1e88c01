// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"

	"github.com/kkafar/dsync/internal/rpc/dsyncpb"
)

// newCliContext builds a minimal *cli.Context over args, enough to drive
// expects' NArg() check without a full app.Run.
func newCliContext(t *testing.T, args []string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		t.Fatalf("parsing flag set: %v", err)
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestParseFileSourceLocalAbsolute(t *testing.T) {
	src := parseFileSource("/srv/data/report.csv")
	assert.Equal(t, dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocal}, src.Host)
	assert.Equal(t, dsyncpb.PathSpec{Kind: dsyncpb.PathSpecAbsolute, Path: "/srv/data/report.csv"}, src.Path)
}

func TestParseFileSourceLocalRelative(t *testing.T) {
	src := parseFileSource("report.csv")
	assert.Equal(t, dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocal}, src.Host)
	assert.Equal(t, dsyncpb.PathSpec{Kind: dsyncpb.PathSpecRelative, Path: "report.csv"}, src.Path)
}

func TestParseFileSourceRemoteHost(t *testing.T) {
	src := parseFileSource("backup-host@/srv/data/report.csv")
	assert.Equal(t, dsyncpb.HostSpec{Kind: dsyncpb.HostSpecName, Name: "backup-host"}, src.Host)
	assert.Equal(t, dsyncpb.PathSpec{Kind: dsyncpb.PathSpecAbsolute, Path: "/srv/data/report.csv"}, src.Path)
}

func TestParseFileSourceLocalhostLiteral(t *testing.T) {
	src := parseFileSource("localhost@/srv/data/report.csv")
	assert.Equal(t, dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocal}, src.Host)
}

func TestParseFileSourceLocalID(t *testing.T) {
	src := parseFileSource("5@/srv/data/report.csv")
	assert.Equal(t, dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocalID, LocalID: 5}, src.Host)
}

func TestParseFileSourceEmptyHostBeforeAt(t *testing.T) {
	// A leading "@" with nothing before it is treated as local, not a named
	// host with an empty name.
	src := parseFileSource("@/srv/data/report.csv")
	assert.Equal(t, dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocal}, src.Host)
	assert.Equal(t, dsyncpb.PathSpecAbsolute, src.Path.Kind)
}

func TestParseHostSpecLocal(t *testing.T) {
	assert.Equal(t, dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocal}, parseHostSpec(""))
	assert.Equal(t, dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocal}, parseHostSpec("localhost"))
}

func TestParseHostSpecLocalID(t *testing.T) {
	assert.Equal(t, dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocalID, LocalID: 42}, parseHostSpec("42"))
}

func TestParseHostSpecName(t *testing.T) {
	assert.Equal(t, dsyncpb.HostSpec{Kind: dsyncpb.HostSpecName, Name: "backup-host"}, parseHostSpec("backup-host"))
}

func TestExpectsRejectsTooFewArgs(t *testing.T) {
	called := false
	action := expects(2, func(*cli.Context) error {
		called = true
		return nil
	})

	ctx := newCliContext(t, []string{"only-one"})
	err := action(ctx)
	assert.Error(t, err)
	assert.False(t, called)
}

func TestExpectsRunsActionWhenSatisfied(t *testing.T) {
	called := false
	action := expects(1, func(*cli.Context) error {
		called = true
		return nil
	})

	ctx := newCliContext(t, []string{"one-arg"})
	err := action(ctx)
	assert.NoError(t, err)
	assert.True(t, called)
}
