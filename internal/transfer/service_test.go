// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package transfer

import (
	"context"
	"crypto/sha1" //nolint:gosec
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/kkafar/dsync/internal/repository/repositoryfakes"
	"github.com/kkafar/dsync/internal/rpc/dsyncpb"
)

func startTestServer(t *testing.T) dsyncpb.FileTransferServiceClient {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer(grpc.ForceServerCodec(dsyncpb.Codec))
	dsyncpb.RegisterFileTransferServiceServer(srv, New(repositoryfakes.New()))

	go srv.Serve(lis) //nolint:errcheck
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(dsyncpb.Codec)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return dsyncpb.NewFileTransferServiceClient(conn)
}

func sha1Hex(data []byte) string {
	h := sha1.New() //nolint:gosec
	h.Write(data)
	return fmt.Sprintf("%x", h.Sum(nil))
}

func TestTransferChunkHappyPath(t *testing.T) {
	client := startTestServer(t)
	dst := filepath.Join(t.TempDir(), "out")
	data := []byte("hello")

	initResp, err := client.TransferInit(context.Background(), &dsyncpb.TransferInitRequest{
		FilePathSrc:   "/tmp/in",
		FilePathDst:   dst,
		FileSha1:      sha1Hex(data),
		FileSizeBytes: int64(len(data)),
		ChunkSize:     1024,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), initResp.SessionId)

	stream, err := client.TransferChunk(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&dsyncpb.TransferChunkRequest{
		SessionId: initResp.SessionId,
		ChunkId:   0,
		Data:      data,
	}))
	_, err = stream.CloseAndRecv()
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestTransferChunkUnknownSession(t *testing.T) {
	client := startTestServer(t)

	stream, err := client.TransferChunk(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&dsyncpb.TransferChunkRequest{SessionId: 999, ChunkId: 0, Data: []byte("x")}))
	_, err = stream.CloseAndRecv()
	require.Error(t, err)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestTransferChunkHashMismatch(t *testing.T) {
	client := startTestServer(t)
	dst := filepath.Join(t.TempDir(), "out")

	initResp, err := client.TransferInit(context.Background(), &dsyncpb.TransferInitRequest{
		FilePathDst: dst,
		FileSha1:    "0000000000000000000000000000000000000000",
		ChunkSize:   1024,
	})
	require.NoError(t, err)

	stream, err := client.TransferChunk(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&dsyncpb.TransferChunkRequest{
		SessionId: initResp.SessionId,
		ChunkId:   0,
		Data:      []byte("hello"),
	}))
	_, err = stream.CloseAndRecv()
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestTransferChunkExceedsNegotiatedSize(t *testing.T) {
	client := startTestServer(t)
	dst := filepath.Join(t.TempDir(), "out")

	initResp, err := client.TransferInit(context.Background(), &dsyncpb.TransferInitRequest{
		FilePathDst: dst,
		FileSha1:    sha1Hex([]byte("hello")),
		ChunkSize:   2,
	})
	require.NoError(t, err)

	stream, err := client.TransferChunk(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&dsyncpb.TransferChunkRequest{
		SessionId: initResp.SessionId,
		ChunkId:   0,
		Data:      []byte("hello"),
	}))
	_, err = stream.CloseAndRecv()
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestHashFileEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	sum, err := hashFile(path, DefaultReadBufferSize)
	require.NoError(t, err)
	assert.Equal(t, sha1Hex(nil), sum)
}

func TestHashFileKnownContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	sum, err := hashFile(path, DefaultReadBufferSize)
	require.NoError(t, err)
	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", sum)
}
