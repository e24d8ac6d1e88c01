// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package netprobe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArpOutput(t *testing.T) {
	out := `? (192.168.1.5) at aa:bb:cc:dd:ee:ff on en0 ifscope [ethernet]
? (192.168.1.6) at <incomplete> on en0 ifscope [ethernet]
garbage line with no address
`
	entries, err := parseArpOutput(out)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "192.168.1.5", entries[0].IP.String())
	assert.False(t, entries[0].Incomplete)
	assert.Equal(t, "192.168.1.6", entries[1].IP.String())
	assert.True(t, entries[1].Incomplete)
}

func TestParseIPNeighOutput(t *testing.T) {
	out := []byte(`[
		{"dst":"192.168.1.5","dev":"eth0","lladdr":"aa:bb:cc:dd:ee:ff","state":["REACHABLE"]},
		{"dst":"192.168.1.6","dev":"eth0","state":["FAILED"]},
		{"dst":"fe80::1","dev":"eth0","state":["STALE"]}
	]`)
	entries, err := parseIPNeighOutput(out)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "192.168.1.5", entries[0].IP.String())
	assert.False(t, entries[0].Incomplete)
	assert.Equal(t, "192.168.1.6", entries[1].IP.String())
	assert.True(t, entries[1].Incomplete)
}

func TestParseIPNeighOutputEmpty(t *testing.T) {
	entries, err := parseIPNeighOutput([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
