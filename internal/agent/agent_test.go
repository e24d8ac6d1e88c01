// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package agent

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kkafar/dsync/internal/catalog"
	"github.com/kkafar/dsync/internal/repository"
	"github.com/kkafar/dsync/internal/repository/repositoryfakes"
	"github.com/kkafar/dsync/internal/rpc/dsyncpb"
	"github.com/kkafar/dsync/internal/transfer"
)

const testPort uint16 = 22555

func newTestService(t *testing.T) (*Service, *repositoryfakes.FakeRepository, repository.Host) {
	t.Helper()

	repo := repositoryfakes.New()
	local := repository.Host{UUID: "local-uuid", Name: "local", Hostname: "local-host", IsLocal: true, IPv4: "127.0.0.1"}
	require.NoError(t, repo.InsertHosts(context.Background(), []repository.Host{local}))

	selfFn := func() (repository.Host, error) { return repo.FetchLocalHost(context.Background()) }
	cat := catalog.New(repo, selfFn, testPort)
	xfer := transfer.New(repo)
	return New(repo, cat, xfer, testPort), repo, local
}

func TestFileAddAndList(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	_, err := svc.FileAdd(ctx, &dsyncpb.FileAddRequest{Paths: []string{path}})
	require.NoError(t, err)

	resp, err := svc.FileList(ctx, &dsyncpb.FileListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Files, 1)
	assert.Equal(t, path, resp.Files[0].FilePath)
	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", resp.Files[0].HashSha1)
}

func TestFileAddRejectsRelativePath(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.FileAdd(context.Background(), &dsyncpb.FileAddRequest{Paths: []string{"relative.txt"}})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestFileAddDuplicateFailsWholeBatch(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	_, err := svc.FileAdd(ctx, &dsyncpb.FileAddRequest{Paths: []string{path}})
	require.NoError(t, err)

	_, err = svc.FileAdd(ctx, &dsyncpb.FileAddRequest{Paths: []string{path}})
	require.Error(t, err)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
}

func TestFileRemoveUnknownPath(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.FileRemove(context.Background(), &dsyncpb.FileRemoveRequest{Path: "/nope"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGroupCreateDeleteList(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GroupCreate(ctx, &dsyncpb.GroupCreateRequest{Name: "photos"})
	require.NoError(t, err)

	_, err = svc.GroupCreate(ctx, &dsyncpb.GroupCreateRequest{Name: "photos"})
	require.Error(t, err)
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	list, err := svc.GroupList(ctx, &dsyncpb.GroupListRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"photos"}, list.Groups)

	_, err = svc.GroupDelete(ctx, &dsyncpb.GroupDeleteRequest{Name: "photos"})
	require.NoError(t, err)

	_, err = svc.GroupDelete(ctx, &dsyncpb.GroupDeleteRequest{Name: "photos"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHostListIncludesLocal(t *testing.T) {
	svc, _, local := newTestService(t)

	resp, err := svc.HostList(context.Background(), &dsyncpb.HostListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Hosts, 1)
	assert.Equal(t, local.UUID, resp.Hosts[0].Uuid)
}

func TestHostRemoveRefusesLocal(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.HostRemove(context.Background(), &dsyncpb.HostRemoveRequest{Host: dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocal}})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHostRemoveByName(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	remote := repository.Host{UUID: "remote-uuid", Name: "peer", IPv4: "10.0.0.2"}
	require.NoError(t, repo.InsertHosts(ctx, []repository.Host{remote}))

	_, err := svc.HostRemove(ctx, &dsyncpb.HostRemoveRequest{Host: dsyncpb.HostSpec{Kind: dsyncpb.HostSpecName, Name: "peer"}})
	require.NoError(t, err)

	_, err = repo.FetchHostByUUID(ctx, remote.UUID)
	assert.ErrorIs(t, err, repository.ErrDoesNotExist)
}

// startTestAgentPeer spins up a second, fully independent Service behind a
// real gRPC listener, standing in for a remote daemon that owns the
// source file in a FileCopy test.
func startTestAgentPeer(t *testing.T) (addr string, repo *repositoryfakes.FakeRepository, srcHost repository.Host) {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { lis.Close() })

	repo = repositoryfakes.New()
	srcHost = repository.Host{UUID: "remote-src-uuid", Name: "src-peer", IsLocal: true, IPv4: "127.0.0.1"}
	require.NoError(t, repo.InsertHosts(context.Background(), []repository.Host{srcHost}))

	selfFn := func() (repository.Host, error) { return repo.FetchLocalHost(context.Background()) }
	cat := catalog.New(repo, selfFn, testPort)
	xfer := transfer.New(repo)

	srv := grpc.NewServer(grpc.ForceServerCodec(dsyncpb.Codec))
	dsyncpb.RegisterFileTransferServiceServer(srv, xfer)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	return lis.Addr().String(), repo, srcHost
}

func TestFileCopyLocalSource(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	dstDir := t.TempDir()
	dstHost := repository.Host{UUID: "dst-uuid", Name: "dst", IPv4: "127.0.0.1"}
	require.NoError(t, repo.InsertHosts(ctx, []repository.Host{dstHost}))

	srcDir := t.TempDir()
	srcPath := filepath.Join(srcDir, "f.bin")
	require.NoError(t, os.WriteFile(srcPath, []byte("payload"), 0o644))

	req := &dsyncpb.FileCopyRequest{
		Src: dsyncpb.FileSource{Host: dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocal}, Path: dsyncpb.PathSpec{Kind: dsyncpb.PathSpecAbsolute, Path: srcPath}},
		Dst: dsyncpb.FileSource{Host: dsyncpb.HostSpec{Kind: dsyncpb.HostSpecName, Name: "dst"}, Path: dsyncpb.PathSpec{Kind: dsyncpb.PathSpecAbsolute, Path: filepath.Join(dstDir, "f.bin")}},
	}
	// dstHost has nothing listening on DefaultPort, so TransferSubmit's own
	// dial fails; this only confirms the local-source branch is taken and
	// resolution succeeds end to end up to the submit call.
	_, err := svc.FileCopy(ctx, req)
	require.Error(t, err)
}

func TestFileCopyUnknownHostSpec(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	req := &dsyncpb.FileCopyRequest{
		Src: dsyncpb.FileSource{Host: dsyncpb.HostSpec{Kind: dsyncpb.HostSpecName, Name: "nonexistent"}},
		Dst: dsyncpb.FileSource{Host: dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocal}},
	}
	_, err := svc.FileCopy(ctx, req)
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestFileCopyDialsRemoteSource(t *testing.T) {
	addr, _, srcHost := startTestAgentPeer(t)
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	_ = port

	// Register the remote peer in our own catalog under its real address
	// so resolveHostSpec finds it as a non-local row.
	remote := repository.Host{UUID: srcHost.UUID, Name: "src-peer", IPv4: host}
	require.NoError(t, repo.InsertHosts(ctx, []repository.Host{remote}))

	dstDir := t.TempDir()
	dstHost := repository.Host{UUID: "dst-uuid", Name: "dst", IPv4: "127.0.0.1"}
	require.NoError(t, repo.InsertHosts(ctx, []repository.Host{dstHost}))

	srcPath := filepath.Join(t.TempDir(), "f.bin")
	require.NoError(t, os.WriteFile(srcPath, []byte("payload"), 0o644))

	req := &dsyncpb.FileCopyRequest{
		Src: dsyncpb.FileSource{Host: dsyncpb.HostSpec{Kind: dsyncpb.HostSpecName, Name: "src-peer"}, Path: dsyncpb.PathSpec{Kind: dsyncpb.PathSpecAbsolute, Path: srcPath}},
		Dst: dsyncpb.FileSource{Host: dsyncpb.HostSpec{Kind: dsyncpb.HostSpecName, Name: "dst"}, Path: dsyncpb.PathSpec{Kind: dsyncpb.PathSpecAbsolute, Path: filepath.Join(dstDir, "f.bin")}},
	}
	// FileCopy dials the source peer at this agent's own port (testPort),
	// not at the test listener's ephemeral port, so the TransferSubmit call
	// fails in transport. We only assert that both host-specs resolved and
	// the failure is not an InvalidArgument from resolution or validation.
	_, err = svc.FileCopy(ctx, req)
	require.Error(t, err)
	assert.NotEqual(t, codes.InvalidArgument, status.Code(err))

	// Sanity: a dial cache entry for this peer, if present, is keyed by the
	// peer's address and testPort.
	conn, ok := svc.conns.Get(net.JoinHostPort(host, "22555"))
	if ok {
		require.NotNil(t, conn)
	}
}
