// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package catalog implements the host-discovery side of dsyncd: the
// HelloThere handshake server, the active sweep-and-dial discovery
// algorithm, and manual add/remove of catalog entries.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/kkafar/dsync/internal/netprobe"
	"github.com/kkafar/dsync/internal/repository"
	"github.com/kkafar/dsync/internal/rpc/dsyncpb"
	"github.com/kkafar/dsync/internal/slogutil"
)

func init() { slogutil.RegisterPackage("host catalog") }

const helloThereTimeout = 10 * time.Second

// Service implements dsyncpb.HostDiscoveryServiceServer and the discovery
// operations UserAgentService delegates to it.
type Service struct {
	dsyncpb.UnimplementedHostDiscoveryServiceServer

	repo        repository.Repository
	self        func() (repository.Host, error)
	defaultPort uint16
}

// New builds a Service. self returns the current local host row (used to
// answer HelloThere); defaultPort is used when a dialled address omits a
// port.
func New(repo repository.Repository, self func() (repository.Host, error), defaultPort uint16) *Service {
	return &Service{repo: repo, self: self, defaultPort: defaultPort}
}

// HelloThere answers the handshake: echo our local descriptor. Whether to
// record the caller is left to the responder's discretion; we choose not
// to record anything here — the active discovery side is the one that
// persists catalog rows, via Discover/Add.
func (s *Service) HelloThere(ctx context.Context, in *dsyncpb.HostInfo) (*dsyncpb.HostInfo, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "missing host descriptor")
	}

	local, err := s.self()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "resolve local host: %v", err)
	}

	return &dsyncpb.HostInfo{
		Uuid:     local.UUID,
		Name:     local.Name,
		Hostname: local.Hostname,
		Address:  "",
	}, nil
}

// Discover runs the active discovery algorithm: sweep for candidates,
// dial each in turn, persist successful handshakes, and return them.
func (s *Service) Discover(ctx context.Context) ([]repository.Host, error) {
	candidates, err := netprobe.Candidates(ctx)
	if err != nil {
		if errors.Is(err, netprobe.ErrNoProbeUtility) {
			return nil, status.Error(codes.Internal, "Missing binary: nmap")
		}
		return nil, status.Errorf(codes.Internal, "probe candidates: %v", err)
	}

	var found []repository.Host
	for _, ip := range candidates {
		host, ok := s.dial(ctx, ip, s.defaultPort)
		if !ok {
			continue
		}
		found = append(found, host)
	}

	if len(found) > 0 {
		if err := s.repo.InsertHosts(ctx, found); err != nil {
			return nil, status.Errorf(codes.Internal, "persisting discovered hosts: %v", err)
		}
	}

	return found, nil
}

// Add performs the manual host_add handshake against a user-supplied
// address, persisting the result as a non-local host.
func (s *Service) Add(ctx context.Context, ipv4 string, port uint16) (repository.Host, error) {
	if port == 0 {
		port = s.defaultPort
	}
	host, ok := s.dial(ctx, ipv4, port)
	if !ok {
		return repository.Host{}, status.Errorf(codes.Unavailable, "could not reach %s:%d", ipv4, port)
	}
	if err := s.repo.InsertHosts(ctx, []repository.Host{host}); err != nil {
		return repository.Host{}, status.Errorf(codes.Internal, "persisting host: %v", err)
	}
	return host, nil
}

// dial connects to addr:port, performs HelloThere, and on success returns a
// Host whose address is the dialled IPv4: the responder does not know its
// own reachable address, so the caller fills it in.
func (s *Service) dial(ctx context.Context, ipv4 string, port uint16) (repository.Host, bool) {
	dialCtx, cancel := context.WithTimeout(ctx, helloThereTimeout)
	defer cancel()

	addr := net.JoinHostPort(ipv4, strconv.Itoa(int(port)))
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(dsyncpb.Codec)),
	)
	if err != nil {
		slog.Default().Debug("catalog: dial failed", slogutil.Address(addr), slogutil.Error(err))
		return repository.Host{}, false
	}
	defer conn.Close()

	local, err := s.self()
	if err != nil {
		slog.Default().Warn("catalog: could not resolve local descriptor for handshake", slogutil.Error(err))
		return repository.Host{}, false
	}

	client := dsyncpb.NewHostDiscoveryServiceClient(conn)
	resp, err := client.HelloThere(dialCtx, &dsyncpb.HostInfo{
		Uuid:     local.UUID,
		Name:     local.Name,
		Hostname: local.Hostname,
	})
	if err != nil {
		slog.Default().Debug("catalog: handshake failed", slogutil.Address(addr), slogutil.Error(err))
		return repository.Host{}, false
	}

	return repository.Host{
		UUID:         resp.Uuid,
		Name:         resp.Name,
		Hostname:     resp.Hostname,
		IsLocal:      false,
		IPv4:         ipv4,
		DiscoveredAt: time.Now().Unix(),
	}, true
}

// Remove deletes the referenced host, refusing to remove the local row.
func (s *Service) Remove(ctx context.Context, host repository.Host) error {
	if host.IsLocal {
		return status.Error(codes.InvalidArgument, "Can not remove current server instance")
	}
	return s.repo.DeleteHostByUUID(ctx, host.UUID)
}
