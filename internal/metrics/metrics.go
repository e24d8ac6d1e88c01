// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package metrics serves dsyncd's Prometheus exposition and liveness
// endpoints, and bridges the go-metrics meters kept by the transfer
// service onto Prometheus gauges.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	rcmetrics "github.com/rcrowley/go-metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kkafar/dsync/internal/slogutil"
)

func init() { slogutil.RegisterPackage("metrics") }

const shutdownGrace = 5 * time.Second

// Service serves /metrics and /healthz on addr. It implements
// suture.Service's Serve(ctx) contract without importing suture directly,
// so it can be supervised the same way the gRPC listeners are.
type Service struct {
	addr   string
	mux    *http.ServeMux
	server *http.Server
}

// New builds a Service bound to addr (e.g. ":9100"); it is not listening
// until Serve is called.
func New(addr string) *Service {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return &Service{addr: addr, mux: mux}
}

// RegisterTransferThroughput exposes meter's one-minute rate as a
// dsync_transfer_bytes_per_second gauge, sampled at scrape time.
func RegisterTransferThroughput(meter rcmetrics.Meter) {
	prometheus.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "dsync_transfer_bytes_per_second",
			Help: "One-minute moving average of bytes/sec moved by transfer_chunk.",
		},
		meter.Rate1,
	))
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// gracefully within shutdownGrace.
func (s *Service) Serve(ctx context.Context) error {
	s.server = &http.Server{Addr: s.addr, Handler: s.mux}

	errC := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
			return
		}
		errC <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
		<-errC
		return ctx.Err()
	case err := <-errC:
		return err
	}
}
