// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package catalog

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kkafar/dsync/internal/repository"
	"github.com/kkafar/dsync/internal/repository/repositoryfakes"
	"github.com/kkafar/dsync/internal/rpc/dsyncpb"
)

func localHostFunc(h repository.Host) func() (repository.Host, error) {
	return func() (repository.Host, error) { return h, nil }
}

func TestHelloThereRejectsNilDescriptor(t *testing.T) {
	svc := New(repositoryfakes.New(), localHostFunc(repository.Host{UUID: "local"}), 22555)

	_, err := svc.HelloThere(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHelloThereEchoesLocalDescriptor(t *testing.T) {
	local := repository.Host{UUID: "local-uuid", Name: "box", Hostname: "box.local"}
	svc := New(repositoryfakes.New(), localHostFunc(local), 22555)

	resp, err := svc.HelloThere(context.Background(), &dsyncpb.HostInfo{Uuid: "caller"})
	require.NoError(t, err)
	assert.Equal(t, local.UUID, resp.Uuid)
	assert.Equal(t, local.Name, resp.Name)
	assert.Equal(t, local.Hostname, resp.Hostname)
	assert.Empty(t, resp.Address)
}

func TestRemoveRefusesLocalHost(t *testing.T) {
	svc := New(repositoryfakes.New(), localHostFunc(repository.Host{UUID: "local"}), 22555)

	err := svc.Remove(context.Background(), repository.Host{UUID: "local", IsLocal: true})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

// startTestPeer spins up a real listener serving HostDiscoveryService, to
// exercise Service.Add's dial-and-handshake path end to end.
func startTestPeer(t *testing.T, remote repository.Host) (ipv4 string, port uint16) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer(grpc.ForceServerCodec(dsyncpb.Codec))
	peer := New(repositoryfakes.New(), localHostFunc(remote), 0)
	dsyncpb.RegisterHostDiscoveryServiceServer(srv, peer)

	go srv.Serve(lis) //nolint:errcheck
	t.Cleanup(srv.Stop)

	addr := lis.Addr().(*net.TCPAddr)
	return addr.IP.String(), uint16(addr.Port)
}

func TestAddHandshakesAndPersists(t *testing.T) {
	remote := repository.Host{UUID: "remote-uuid", Name: "peer", Hostname: "peer.local"}
	ip, port := startTestPeer(t, remote)

	repo := repositoryfakes.New()
	svc := New(repo, localHostFunc(repository.Host{UUID: "local"}), 22555)

	host, err := svc.Add(context.Background(), ip, port)
	require.NoError(t, err)
	assert.Equal(t, remote.UUID, host.UUID)
	assert.Equal(t, ip, host.IPv4)
	assert.False(t, host.IsLocal)

	hosts, err := repo.FetchHosts(context.Background())
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, remote.UUID, hosts[0].UUID)
}
