// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package agent implements UserAgentService, the local control plane CLIs
// and other tools talk to: file, host, and group operations.
package agent

import (
	"context"
	"crypto/sha1" //nolint:gosec // content-addressing hash, not used for security
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kkafar/dsync/internal/catalog"
	"github.com/kkafar/dsync/internal/repository"
	"github.com/kkafar/dsync/internal/rpc/dsyncpb"
	"github.com/kkafar/dsync/internal/rpcerr"
	"github.com/kkafar/dsync/internal/slogutil"
	"github.com/kkafar/dsync/internal/transfer"
)

func init() { slogutil.RegisterPackage("user agent") }

const (
	fileCopyDialTimeout = 5 * time.Second
	connCacheSize       = 32
	hashReadBufferSize  = transfer.DefaultReadBufferSize
)

// Service implements dsyncpb.UserAgentServiceServer.
type Service struct {
	dsyncpb.UnimplementedUserAgentServiceServer

	repo     repository.Repository
	catalog  *catalog.Service
	transfer *transfer.Service
	port     uint16

	conns *lru.Cache[string, *grpc.ClientConn]
}

// New wires a Service against the repository and the C3/C5 services
// already bound to it. port is the daemon's own bind port, used as the
// default when dialling peers that share convention.
func New(repo repository.Repository, cat *catalog.Service, xfer *transfer.Service, port uint16) *Service {
	cache, err := lru.NewWithEvict[string, *grpc.ClientConn](connCacheSize, func(_ string, conn *grpc.ClientConn) {
		conn.Close()
	})
	if err != nil {
		// Only returns an error for a non-positive size, which connCacheSize
		// never is.
		panic(err)
	}
	return &Service{repo: repo, catalog: cat, transfer: xfer, port: port, conns: cache}
}

// FileAdd computes a SHA-1 per path serially and bulk-inserts the batch;
// per the atomic-batch contract, any path collision fails the whole call.
func (s *Service) FileAdd(ctx context.Context, req *dsyncpb.FileAddRequest) (*dsyncpb.FileAddResponse, error) {
	files := make([]repository.TrackedFile, 0, len(req.Paths))
	for _, p := range req.Paths {
		if !filepath.IsAbs(p) {
			return nil, status.Errorf(codes.InvalidArgument, "path %q must be absolute", p)
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "%v", err)
		}
		if !info.Mode().IsRegular() {
			return nil, status.Errorf(codes.InvalidArgument, "%q is not a regular file", p)
		}
		sum, err := hashFile(p)
		if err != nil {
			return nil, rpcerr.Internal(err)
		}
		files = append(files, repository.TrackedFile{Path: filepath.Clean(p), SHA1: sum})
	}

	if err := s.repo.SaveLocalFiles(ctx, files); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, rpcerr.AlreadyExists(err)
		}
		return nil, rpcerr.Internal(err)
	}
	return &dsyncpb.FileAddResponse{}, nil
}

// FileRemove deletes a tracked file by exact path; group-scoped removal is
// not implemented.
func (s *Service) FileRemove(ctx context.Context, req *dsyncpb.FileRemoveRequest) (*dsyncpb.FileRemoveResponse, error) {
	if req.Group != "" {
		return nil, status.Error(codes.Unimplemented, "group-scoped file_remove")
	}
	if err := s.repo.DeleteLocalFile(ctx, req.Path); err != nil {
		if errors.Is(err, repository.ErrDoesNotExist) {
			return nil, rpcerr.InvalidArgument(err)
		}
		return nil, rpcerr.Internal(err)
	}
	return &dsyncpb.FileRemoveResponse{}, nil
}

// FileList returns every tracked file; remote- or group-scoped listing is
// not implemented.
func (s *Service) FileList(ctx context.Context, req *dsyncpb.FileListRequest) (*dsyncpb.FileListResponse, error) {
	if req.Remote != "" || req.Group != "" {
		return nil, status.Error(codes.Unimplemented, "filtered file_list")
	}
	files, err := s.repo.FetchLocalFiles(ctx)
	if err != nil {
		return nil, rpcerr.Internal(err)
	}
	out := make([]dsyncpb.LocalFileDescription, len(files))
	for i, f := range files {
		out[i] = dsyncpb.LocalFileDescription{LocalId: f.LocalID, FilePath: f.Path, HashSha1: f.SHA1}
	}
	return &dsyncpb.FileListResponse{Files: out}, nil
}

// FileCopy resolves both endpoints, then asks whichever host owns the
// source file to submit a transfer to the destination: the call is made
// in-process if that host is us, or dialled with a 5-second connect
// timeout otherwise.
func (s *Service) FileCopy(ctx context.Context, req *dsyncpb.FileCopyRequest) (*dsyncpb.FileCopyResponse, error) {
	srcHost, err := resolveHostSpec(ctx, s.repo, req.Src.Host)
	if err != nil {
		return nil, err
	}
	dstHost, err := resolveHostSpec(ctx, s.repo, req.Dst.Host)
	if err != nil {
		return nil, err
	}

	submitReq := &dsyncpb.TransferSubmitRequest{
		SrcPath:     resolvePath(req.Src.Path),
		DstPath:     resolvePath(req.Dst.Path),
		HostOrgUuid: srcHost.UUID,
		HostDstUuid: dstHost.UUID,
	}

	if srcHost.IsLocal {
		if _, err := s.transfer.TransferSubmit(ctx, submitReq); err != nil {
			return nil, err
		}
		return &dsyncpb.FileCopyResponse{}, nil
	}

	conn, err := s.dial(srcHost.IPv4, s.port)
	if err != nil {
		return nil, rpcerr.Unavailable(err)
	}

	dialCtx, cancel := context.WithTimeout(ctx, fileCopyDialTimeout)
	defer cancel()

	client := dsyncpb.NewFileTransferServiceClient(conn)
	if _, err := client.TransferSubmit(dialCtx, submitReq); err != nil {
		return nil, status.Errorf(codes.Unavailable, "transfer_submit: %v", err)
	}
	return &dsyncpb.FileCopyResponse{}, nil
}

// HostList returns the full catalog, local row included.
func (s *Service) HostList(ctx context.Context, _ *dsyncpb.HostListRequest) (*dsyncpb.HostListResponse, error) {
	hosts, err := s.repo.FetchHosts(ctx)
	if err != nil {
		return nil, rpcerr.Internal(err)
	}
	return &dsyncpb.HostListResponse{Hosts: toHostInfos(hosts)}, nil
}

// HostDiscover delegates to the catalog's active discovery algorithm.
func (s *Service) HostDiscover(ctx context.Context, _ *dsyncpb.HostDiscoverRequest) (*dsyncpb.HostDiscoverResponse, error) {
	found, err := s.catalog.Discover(ctx)
	if err != nil {
		return nil, err
	}
	return &dsyncpb.HostDiscoverResponse{Hosts: toHostInfos(found)}, nil
}

// HostAdd delegates to the catalog's manual-add handshake.
func (s *Service) HostAdd(ctx context.Context, req *dsyncpb.HostAddRequest) (*dsyncpb.HostAddResponse, error) {
	host, err := s.catalog.Add(ctx, req.Ipv4, uint16(req.Port))
	if err != nil {
		return nil, err
	}
	return &dsyncpb.HostAddResponse{Host: toHostInfo(host)}, nil
}

// HostRemove resolves the host-spec and delegates to the catalog's remove,
// which refuses to delete the local row.
func (s *Service) HostRemove(ctx context.Context, req *dsyncpb.HostRemoveRequest) (*dsyncpb.HostRemoveResponse, error) {
	host, err := resolveHostSpec(ctx, s.repo, req.Host)
	if err != nil {
		return nil, err
	}
	if err := s.catalog.Remove(ctx, host); err != nil {
		return nil, err
	}
	return &dsyncpb.HostRemoveResponse{}, nil
}

// GroupCreate inserts a new group row.
func (s *Service) GroupCreate(ctx context.Context, req *dsyncpb.GroupCreateRequest) (*dsyncpb.GroupCreateResponse, error) {
	if _, err := s.repo.SaveLocalGroup(ctx, req.Name); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, rpcerr.AlreadyExists(err)
		}
		return nil, rpcerr.Internal(err)
	}
	return &dsyncpb.GroupCreateResponse{}, nil
}

// GroupDelete removes a group by name.
func (s *Service) GroupDelete(ctx context.Context, req *dsyncpb.GroupDeleteRequest) (*dsyncpb.GroupDeleteResponse, error) {
	if err := s.repo.DeleteGroupByName(ctx, req.Name); err != nil {
		if errors.Is(err, repository.ErrDoesNotExist) {
			return nil, rpcerr.InvalidArgument(err)
		}
		return nil, rpcerr.Internal(err)
	}
	return &dsyncpb.GroupDeleteResponse{}, nil
}

// GroupList returns every local group; remote listing is not implemented.
func (s *Service) GroupList(ctx context.Context, req *dsyncpb.GroupListRequest) (*dsyncpb.GroupListResponse, error) {
	if req.Remote != "" {
		return nil, status.Error(codes.Unimplemented, "remote group_list")
	}
	groups, err := s.repo.FetchLocalGroups(ctx)
	if err != nil {
		return nil, rpcerr.Internal(err)
	}
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return &dsyncpb.GroupListResponse{Groups: names}, nil
}

// dial returns a cached channel to ipv4:port, dialling and caching a new
// one on a miss. Connections are not health-checked on reuse; a dead entry
// surfaces as an RPC failure on the caller's next attempt and is evicted
// only when the LRU is full (connCacheSize entries) and it is the least
// recently used, not on error — acceptable given file_copy's low call
// volume.
func (s *Service) dial(ipv4 string, port uint16) (*grpc.ClientConn, error) {
	addr := net.JoinHostPort(ipv4, strconv.Itoa(int(port)))
	if conn, ok := s.conns.Get(addr); ok {
		return conn, nil
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(dsyncpb.Codec)),
	)
	if err != nil {
		return nil, err
	}
	s.conns.Add(addr, conn)
	return conn, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha1.New() //nolint:gosec
	if _, err := io.CopyBuffer(h, f, make([]byte, hashReadBufferSize)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func toHostInfo(h repository.Host) dsyncpb.HostInfo {
	return dsyncpb.HostInfo{Uuid: h.UUID, Name: h.Name, Hostname: h.Hostname, Address: h.IPv4}
}

func toHostInfos(hosts []repository.Host) []dsyncpb.HostInfo {
	out := make([]dsyncpb.HostInfo, len(hosts))
	for i, h := range hosts {
		out[i] = toHostInfo(h)
	}
	return out
}
