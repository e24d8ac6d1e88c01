// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Command dsyncd is the peer-to-peer file-synchronization daemon: it
// serves HostDiscoveryService, FileTransferService, UserAgentService and
// ServerControlService over gRPC/XDR, and a Prometheus surface alongside.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/thejerf/suture/v4"
	"google.golang.org/grpc"

	"github.com/kkafar/dsync/internal/agent"
	"github.com/kkafar/dsync/internal/build"
	"github.com/kkafar/dsync/internal/catalog"
	"github.com/kkafar/dsync/internal/config"
	"github.com/kkafar/dsync/internal/control"
	"github.com/kkafar/dsync/internal/metrics"
	"github.com/kkafar/dsync/internal/repository"
	"github.com/kkafar/dsync/internal/repository/sqlite"
	"github.com/kkafar/dsync/internal/rpc/dsyncpb"
	"github.com/kkafar/dsync/internal/slogutil"
	"github.com/kkafar/dsync/internal/transfer"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("dsyncd: fatal", slogutil.Error(err))
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	slogutil.SetDefaultLevel(cfg.LogLevel.Slog())
	slog.Info(build.String())

	db, err := sqlite.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("dsyncd: opening database: %w", err)
	}
	defer db.Close()

	local, err := repository.Init(context.Background(), db, localHostFactory)
	if err != nil {
		var corrupt *repository.CorruptError
		if errors.As(err, &corrupt) {
			panic(err)
		}
		return fmt.Errorf("dsyncd: priming local host: %w", err)
	}
	slog.Info("local host identity", "uuid", local.UUID, "name", local.Name)

	transfer.DefaultPort = cfg.ServerPort

	selfFn := func() (repository.Host, error) {
		return db.FetchLocalHost(context.Background())
	}
	cat := catalog.New(db, selfFn, cfg.ServerPort)
	xfer := transfer.New(db)
	ctrl := control.New()
	ag := agent.New(db, cat, xfer, cfg.ServerPort)

	grpcSrv := grpc.NewServer(grpc.ForceServerCodec(dsyncpb.Codec))
	dsyncpb.RegisterHostDiscoveryServiceServer(grpcSrv, cat)
	dsyncpb.RegisterFileTransferServiceServer(grpcSrv, xfer)
	dsyncpb.RegisterUserAgentServiceServer(grpcSrv, ag)
	dsyncpb.RegisterServerControlServiceServer(grpcSrv, ctrl)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.ServerPort))
	if err != nil {
		return fmt.Errorf("dsyncd: listening: %w", err)
	}

	metrics.RegisterTransferThroughput(transfer.ThroughputMeter)

	main := suture.New("dsyncd", suture.Spec{PassThroughPanics: true})
	main.Add(&grpcService{lis: lis, srv: grpcSrv})
	main.Add(metrics.New(fmt.Sprintf(":%d", cfg.MetricsPort)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigC:
			slog.Info("dsyncd: received signal, shutting down", "signal", sig)
		case <-ctrl.Done():
			slog.Info("dsyncd: shutdown requested over the control API")
		}
		cancel()
	}()

	return main.Serve(ctx)
}

// localHostFactory synthesizes the local host row the first time dsyncd
// runs against an empty database: a fresh uuid and a name built from the
// OS hostname and platform string.
func localHostFactory() (repository.Host, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown-host"
	}
	name := hostname
	if info, err := host.Info(); err == nil && info.Platform != "" {
		name = fmt.Sprintf("%s (%s)", hostname, info.Platform)
	}
	return repository.Host{
		UUID:     uuid.NewString(),
		Name:     name,
		Hostname: hostname,
		IPv4:     "127.0.0.1",
	}, nil
}

// grpcService adapts a *grpc.Server + net.Listener pair to suture.Service,
// stopping gracefully when its context is cancelled.
type grpcService struct {
	lis net.Listener
	srv *grpc.Server
}

func (g *grpcService) Serve(ctx context.Context) error {
	errC := make(chan error, 1)
	go func() { errC <- g.srv.Serve(g.lis) }()

	select {
	case <-ctx.Done():
		g.srv.GracefulStop()
		<-errC
		return ctx.Err()
	case err := <-errC:
		return err
	}
}
