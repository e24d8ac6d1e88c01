// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package transfer

import (
	"bufio"
	"context"
	"crypto/sha1" //nolint:gosec // content-addressing hash, not used for security
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"time"

	metrics "github.com/rcrowley/go-metrics"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/kkafar/dsync/internal/repository"
	"github.com/kkafar/dsync/internal/rpc/dsyncpb"
	"github.com/kkafar/dsync/internal/rpcerr"
	"github.com/kkafar/dsync/internal/slogutil"
)

const (
	// DefaultReadBufferSize is the fixed-size buffer used to hash the source
	// file. The sender reads the file for streaming in chunkSize pieces.
	DefaultReadBufferSize = 1024
	// DefaultChunkSize is the size of each TransferChunk payload.
	DefaultChunkSize = 8 * 1024

	submitDialTimeout = 5 * time.Second
)

// ThroughputMeter is exported for cmd/dsyncd to register against the
// metrics HTTP surface.
var ThroughputMeter = metrics.NewMeter()

// Service implements dsyncpb.FileTransferServiceServer: the inbound half
// (TransferInit/TransferChunk) plus TransferSubmit, which is invoked
// locally by the user-agent service to start an outbound transfer.
type Service struct {
	dsyncpb.UnimplementedFileTransferServiceServer

	repo           repository.Repository
	sessions       *Table
	readBufferSize int
	chunkSize      int32
}

// New builds a Service against repo, used to resolve destination host
// descriptors for outbound submits.
func New(repo repository.Repository) *Service {
	return &Service{
		repo:           repo,
		sessions:       NewTable(),
		readBufferSize: DefaultReadBufferSize,
		chunkSize:      DefaultChunkSize,
	}
}

// TransferSubmit is called by the user-agent on the host that owns the
// source file. It hashes the file, asks the destination to accept a
// transfer, and — on acceptance — spawns a detached streaming task,
// returning to the caller as soon as the destination has committed to the
// session.
func (s *Service) TransferSubmit(ctx context.Context, req *dsyncpb.TransferSubmitRequest) (*dsyncpb.TransferSubmitResponse, error) {
	if req.SrcPath == "" || req.SrcPath[0] != '/' {
		return nil, status.Error(codes.InvalidArgument, "src_path must be absolute")
	}

	info, err := os.Stat(req.SrcPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, status.Errorf(codes.InvalidArgument, "src_path: %v", err)
		}
		return nil, status.Errorf(codes.Internal, "stat src_path: %v", err)
	}
	if !info.Mode().IsRegular() {
		return nil, status.Error(codes.InvalidArgument, "src_path must be a regular file")
	}

	sum, err := hashFile(req.SrcPath, s.readBufferSize)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "hashing src_path: %v", err)
	}

	dst, err := s.repo.FetchHostByUUID(ctx, req.HostDstUuid)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "resolve destination host: %v", err)
	}

	conn, err := dialHost(dst)
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "dial destination: %v", err)
	}

	initCtx, cancel := context.WithTimeout(ctx, submitDialTimeout)
	defer cancel()

	client := dsyncpb.NewFileTransferServiceClient(conn)
	initResp, err := client.TransferInit(initCtx, &dsyncpb.TransferInitRequest{
		FilePathSrc:   req.SrcPath,
		FilePathDst:   req.DstPath,
		FileSha1:      sum,
		FileSizeBytes: info.Size(),
		ChunkSize:     s.chunkSize,
	})
	if err != nil {
		conn.Close()
		return nil, status.Errorf(codes.Unavailable, "transfer_init rejected: %v", err)
	}

	go s.stream(conn, req.SrcPath, initResp.SessionId, s.chunkSize)

	return &dsyncpb.TransferSubmitResponse{}, nil
}

// stream is the detached sender-side task: it reads the file in chunkSize
// pieces and feeds them to the destination's TransferChunk stream. Failures
// here are logged only — TransferSubmit's caller has already received
// success.
func (s *Service) stream(conn *grpc.ClientConn, path string, sessionID int64, chunkSize int32) {
	defer conn.Close()

	f, err := os.Open(path)
	if err != nil {
		slog.Default().Warn("transfer: reopening source for streaming failed", slogutil.FilePath(path), slogutil.Error(err))
		return
	}
	defer f.Close()

	client := dsyncpb.NewFileTransferServiceClient(conn)
	stream, err := client.TransferChunk(context.Background())
	if err != nil {
		slog.Default().Warn("transfer: opening chunk stream failed", slogutil.SessionID(sessionID), slogutil.Error(err))
		return
	}

	buf := make([]byte, chunkSize)
	var chunkID int64
	for {
		n, readErr := f.Read(buf)
		if n > 0 {
			ThroughputMeter.Mark(int64(n))
			if sendErr := stream.Send(&dsyncpb.TransferChunkRequest{
				SessionId: sessionID,
				ChunkId:   chunkID,
				Data:      append([]byte(nil), buf[:n]...),
			}); sendErr != nil {
				slog.Default().Warn("transfer: sending chunk failed", slogutil.SessionID(sessionID), slogutil.Error(sendErr))
				return
			}
			chunkID++
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			slog.Default().Warn("transfer: reading source failed mid-stream", slogutil.SessionID(sessionID), slogutil.Error(readErr))
			return
		}
	}

	if _, err := stream.CloseAndRecv(); err != nil {
		slog.Default().Warn("transfer: destination reported failure", slogutil.SessionID(sessionID), slogutil.Error(err))
	}
}

// TransferInit allocates a session and freezes the request fields; no
// filesystem work happens until the first chunk arrives.
func (s *Service) TransferInit(_ context.Context, req *dsyncpb.TransferInitRequest) (*dsyncpb.TransferInitResponse, error) {
	session := s.sessions.Allocate(Session{
		FilePathSrc:   req.FilePathSrc,
		FilePathDst:   req.FilePathDst,
		FileSha1:      req.FileSha1,
		FileSizeBytes: req.FileSizeBytes,
		ChunkSize:     req.ChunkSize,
	})
	s.sessions.Register(session)
	return &dsyncpb.TransferInitResponse{SessionId: session.ID}, nil
}

// TransferChunk consumes the inbound chunk stream: first chunk opens (and truncates) the
// destination file, subsequent chunks extend the running hash, and stream
// end verifies integrity before releasing the session.
func (s *Service) TransferChunk(stream dsyncpb.FileTransferService_TransferChunkServer) error {
	first, err := stream.Recv()
	if err != nil {
		return status.Errorf(codes.Internal, "receiving first chunk: %v", err)
	}

	session, ok := s.sessions.Get(first.SessionId)
	if !ok {
		return rpcerr.FailedPrecondition("session-not-established")
	}

	f, err := os.OpenFile(session.FilePathDst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return status.Errorf(codes.Internal, "opening destination: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	h := sha1.New() //nolint:gosec

	chunk := first
	for {
		if chunk.SessionId != session.ID {
			s.sessions.Unregister(session.ID)
			return rpcerr.FailedPrecondition("session-id-mismatch")
		}
		if int32(len(chunk.Data)) > session.ChunkSize {
			s.sessions.Unregister(session.ID)
			return status.Error(codes.InvalidArgument, "chunk exceeds negotiated chunk_size")
		}

		h.Write(chunk.Data)
		if _, err := writeFull(w, chunk.Data); err != nil {
			s.sessions.Unregister(session.ID)
			return status.Errorf(codes.Internal, "writing chunk: %v", err)
		}

		chunk, err = stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			s.sessions.Unregister(session.ID)
			return status.Errorf(codes.Internal, "receiving chunk: %v", err)
		}
	}

	if err := w.Flush(); err != nil {
		s.sessions.Unregister(session.ID)
		return status.Errorf(codes.Internal, "flushing destination: %v", err)
	}
	s.sessions.Unregister(session.ID)

	sum := fmt.Sprintf("%x", h.Sum(nil))
	if sum != session.FileSha1 {
		return status.Error(codes.InvalidArgument, "file-hash-mismatch")
	}

	return stream.SendAndClose(&dsyncpb.TransferChunkResponse{})
}

// writeFull loops until p is fully drained.
func writeFull(w io.Writer, p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := w.Write(p[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func hashFile(path string, bufSize int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha1.New() //nolint:gosec
	if _, err := io.CopyBuffer(h, f, make([]byte, bufSize)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// dialHost builds a (lazily-connecting) channel to host's daemon port
// using the XDR codec. The actual connection attempt happens on the first
// RPC, so callers wrap that call's context with the relevant timeout.
func dialHost(host repository.Host) (*grpc.ClientConn, error) {
	addr := net.JoinHostPort(host.IPv4, strconv.Itoa(int(DefaultPort)))
	return grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(dsyncpb.Codec)),
	)
}

// DefaultPort is overridden by cmd/dsyncd at startup to the configured
// server_port; it exists so dialHost does not need a Service receiver.
var DefaultPort uint16 = 22555
