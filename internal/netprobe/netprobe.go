// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package netprobe produces a best-effort list of candidate IPv4 addresses
// on the local LAN: a broadcast ping sweep followed by a read of whatever
// neighbor cache the sweep populated. Both steps shell out to external
// tools, the same way cmd/syncthing/openurl.go picks between xdg-open,
// open and cmd.exe by platform.
package netprobe

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os/exec"

	"github.com/jackpal/gateway"

	"github.com/kkafar/dsync/internal/slogutil"
)

func init() { slogutil.RegisterPackage("LAN address probe") }

// ErrNoProbeUtility is returned when nmap cannot be found on PATH. Callers
// map this to a fatal "Internal" status per the discovery RPC's contract.
var ErrNoProbeUtility = errors.New("netprobe: nmap not found on PATH")

// Candidates returns parsed IPv4 addresses observed in the neighbor cache
// after a sweep of the local /24, skipping incomplete entries and the
// default gateway. It returns ErrNoProbeUtility if nmap is missing. A sweep
// that fails is only logged, and the neighbor cache is read anyway; no
// neighbor reader available, no usable local subnet, or a failed cache
// read degrades to an empty, non-error result, since the cache read is
// already best-effort by design.
func Candidates(ctx context.Context) ([]string, error) {
	if _, err := exec.LookPath("nmap"); err != nil {
		return nil, ErrNoProbeUtility
	}

	cidr, err := localCIDR()
	if err != nil {
		slog.Default().Warn("netprobe: could not determine local network, skipping sweep", slogutil.Error(err))
		return nil, nil
	}

	sweep(ctx, cidr)

	reader := pickReader()
	if reader == nil {
		slog.Default().Warn("netprobe: no neighbor-table reader available (need arp or ip)")
		return nil, nil
	}

	gw, _ := gateway.DiscoverGateway() //nolint:errcheck

	entries, err := reader.Read(ctx)
	if err != nil {
		slog.Default().Warn("netprobe: reading neighbor cache failed", slogutil.Error(err))
		return nil, nil
	}

	candidates := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Incomplete {
			continue
		}
		if gw != nil && e.IP.Equal(gw) {
			continue
		}
		candidates = append(candidates, e.IP.String())
	}
	return candidates, nil
}

func localCIDR() (string, error) {
	ip, err := gateway.DiscoverInterface()
	if err != nil {
		return "", err
	}
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", err
	}
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ipNet, ok := a.(*net.IPNet)
			if !ok || ipNet.IP.To4() == nil {
				continue
			}
			if ipNet.IP.Equal(ip) {
				network := ipNet.IP.Mask(ipNet.Mask)
				ones, _ := ipNet.Mask.Size()
				return network.String() + "/" + itoa(ones), nil
			}
		}
	}
	return "", errors.New("netprobe: no interface carries the default-route address")
}

func itoa(n int) string {
	// Small enough (0-32) to not need strconv's generality; kept inline to
	// avoid importing strconv for a single call site.
	digits := "0123456789"
	if n == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = digits[n%10]
		n /= 10
	}
	return string(buf[i:])
}

// sweep invokes a broadcast ping sweep against cidr. Its purpose is the
// side effect of populating the OS neighbor cache; the scan output itself
// is discarded.
func sweep(ctx context.Context, cidr string) {
	cmd := exec.CommandContext(ctx, "nmap", "-sn", cidr)
	if err := cmd.Run(); err != nil {
		slog.Default().Debug("netprobe: nmap sweep exited non-zero", slogutil.Error(err))
	}
}
