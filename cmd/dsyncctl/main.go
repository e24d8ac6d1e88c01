// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Command dsyncctl is the command-line front-end to a running dsyncd: file,
// host and group operations, plus shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/kkafar/dsync/internal/build"
	"github.com/kkafar/dsync/internal/rpc/dsyncpb"
)

const dialTimeout = 5 * time.Second

func main() {
	app := cli.NewApp()
	app.Name = "dsyncctl"
	app.Usage = "Control a dsyncd instance"
	app.Version = build.Version
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "server",
			Value: "127.0.0.1:22555",
			Usage: "dsyncd address to connect to",
		},
	}
	app.Commands = []cli.Command{
		fileCommand,
		hostCommand,
		groupCommand,
		shutdownCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "dsyncctl:", err)
		os.Exit(1)
	}
}

func dial(c *cli.Context) (*grpc.ClientConn, error) {
	addr := c.GlobalString("server")
	if addr == "" {
		addr = c.String("server")
	}
	return grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(dsyncpb.Codec)),
	)
}

func dialCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, dialTimeout)
}

// parseFileSource splits a "[HOST@]PATH" argument into its host-spec and
// path-spec. An absent host half means the local daemon; a path beginning
// with "/" is absolute, anything else relative.
func parseFileSource(arg string) dsyncpb.FileSource {
	host := dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocal}
	path := arg

	if idx := strings.Index(arg, "@"); idx >= 0 {
		path = arg[idx+1:]
		host = parseHostSpec(arg[:idx])
	}

	kind := dsyncpb.PathSpecRelative
	if filepath.IsAbs(path) {
		kind = dsyncpb.PathSpecAbsolute
	}
	return dsyncpb.FileSource{Host: host, Path: dsyncpb.PathSpec{Kind: kind, Path: path}}
}

// parseHostSpec maps a HOST half to LocalHost when the literal is
// "localhost", LocalId when it parses as a signed integer, else Name. An
// empty string also means the local daemon, the absent-host-half case.
func parseHostSpec(arg string) dsyncpb.HostSpec {
	if arg == "" || arg == "localhost" {
		return dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocal}
	}
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return dsyncpb.HostSpec{Kind: dsyncpb.HostSpecLocalID, LocalID: id}
	}
	return dsyncpb.HostSpec{Kind: dsyncpb.HostSpecName, Name: arg}
}

func expects(n int, action func(*cli.Context) error) func(*cli.Context) error {
	return func(c *cli.Context) error {
		if c.NArg() < n {
			return fmt.Errorf("expected at least %d argument(s)", n)
		}
		return action(c)
	}
}

var fileCommand = cli.Command{
	Name:  "file",
	Usage: "Manage tracked files",
	Subcommands: []cli.Command{
		{
			Name:      "add",
			Usage:     "Start tracking one or more local files",
			ArgsUsage: "PATH...",
			Action: expects(1, func(c *cli.Context) error {
				conn, err := dial(c)
				if err != nil {
					return err
				}
				defer conn.Close()
				client := dsyncpb.NewUserAgentServiceClient(conn)
				ctx, cancel := dialCtx(context.Background())
				defer cancel()
				_, err = client.FileAdd(ctx, &dsyncpb.FileAddRequest{Paths: c.Args()})
				return err
			}),
		},
		{
			Name:      "remove",
			Usage:     "Stop tracking a local file",
			ArgsUsage: "PATH",
			Action: expects(1, func(c *cli.Context) error {
				conn, err := dial(c)
				if err != nil {
					return err
				}
				defer conn.Close()
				client := dsyncpb.NewUserAgentServiceClient(conn)
				ctx, cancel := dialCtx(context.Background())
				defer cancel()
				_, err = client.FileRemove(ctx, &dsyncpb.FileRemoveRequest{Path: c.Args().Get(0)})
				return err
			}),
		},
		{
			Name:  "list",
			Usage: "List tracked files",
			Action: func(c *cli.Context) error {
				conn, err := dial(c)
				if err != nil {
					return err
				}
				defer conn.Close()
				client := dsyncpb.NewUserAgentServiceClient(conn)
				ctx, cancel := dialCtx(context.Background())
				defer cancel()
				resp, err := client.FileList(ctx, &dsyncpb.FileListRequest{})
				if err != nil {
					return err
				}
				for _, f := range resp.Files {
					fmt.Printf("%d\t%s\t%s\n", f.LocalId, f.HashSha1, f.FilePath)
				}
				return nil
			},
		},
		{
			Name:      "copy",
			Usage:     "Copy a tracked file to another host",
			ArgsUsage: "[SRC_HOST@]SRC_PATH [DST_HOST@]DST_PATH",
			Action: expects(2, func(c *cli.Context) error {
				conn, err := dial(c)
				if err != nil {
					return err
				}
				defer conn.Close()
				client := dsyncpb.NewUserAgentServiceClient(conn)
				ctx, cancel := dialCtx(context.Background())
				defer cancel()
				req := &dsyncpb.FileCopyRequest{
					Src: parseFileSource(c.Args().Get(0)),
					Dst: parseFileSource(c.Args().Get(1)),
				}
				_, err = client.FileCopy(ctx, req)
				return err
			}),
		},
	},
}

var hostCommand = cli.Command{
	Name:  "host",
	Usage: "Manage the host catalog",
	Subcommands: []cli.Command{
		{
			Name:  "list",
			Usage: "List known hosts",
			Action: func(c *cli.Context) error {
				conn, err := dial(c)
				if err != nil {
					return err
				}
				defer conn.Close()
				client := dsyncpb.NewUserAgentServiceClient(conn)
				ctx, cancel := dialCtx(context.Background())
				defer cancel()
				resp, err := client.HostList(ctx, &dsyncpb.HostListRequest{})
				if err != nil {
					return err
				}
				printHosts(resp.Hosts)
				return nil
			},
		},
		{
			Name:  "discover",
			Usage: "Sweep the local network for dsyncd peers",
			Action: func(c *cli.Context) error {
				conn, err := dial(c)
				if err != nil {
					return err
				}
				defer conn.Close()
				client := dsyncpb.NewUserAgentServiceClient(conn)
				resp, err := client.HostDiscover(context.Background(), &dsyncpb.HostDiscoverRequest{})
				if err != nil {
					return err
				}
				printHosts(resp.Hosts)
				return nil
			},
		},
		{
			Name:      "add",
			Usage:     "Manually register a peer by address",
			ArgsUsage: "IPV4 [PORT]",
			Action: expects(1, func(c *cli.Context) error {
				conn, err := dial(c)
				if err != nil {
					return err
				}
				defer conn.Close()
				client := dsyncpb.NewUserAgentServiceClient(conn)
				var port int64
				if c.NArg() > 1 {
					port, _ = strconv.ParseInt(c.Args().Get(1), 10, 32)
				}
				ctx, cancel := dialCtx(context.Background())
				defer cancel()
				resp, err := client.HostAdd(ctx, &dsyncpb.HostAddRequest{Ipv4: c.Args().Get(0), Port: int32(port)})
				if err != nil {
					return err
				}
				printHosts([]dsyncpb.HostInfo{resp.Host})
				return nil
			}),
		},
		{
			Name:      "remove",
			Usage:     "Remove a host from the catalog",
			ArgsUsage: "HOST",
			Action: expects(1, func(c *cli.Context) error {
				conn, err := dial(c)
				if err != nil {
					return err
				}
				defer conn.Close()
				client := dsyncpb.NewUserAgentServiceClient(conn)
				ctx, cancel := dialCtx(context.Background())
				defer cancel()
				_, err = client.HostRemove(ctx, &dsyncpb.HostRemoveRequest{Host: parseHostSpec(c.Args().Get(0))})
				return err
			}),
		},
	},
}

var groupCommand = cli.Command{
	Name:  "group",
	Usage: "Manage file groups",
	Subcommands: []cli.Command{
		{
			Name:      "create",
			Usage:     "Create a group",
			ArgsUsage: "NAME",
			Action: expects(1, func(c *cli.Context) error {
				conn, err := dial(c)
				if err != nil {
					return err
				}
				defer conn.Close()
				client := dsyncpb.NewUserAgentServiceClient(conn)
				ctx, cancel := dialCtx(context.Background())
				defer cancel()
				_, err = client.GroupCreate(ctx, &dsyncpb.GroupCreateRequest{Name: c.Args().Get(0)})
				return err
			}),
		},
		{
			Name:      "delete",
			Usage:     "Delete a group",
			ArgsUsage: "NAME",
			Action: expects(1, func(c *cli.Context) error {
				conn, err := dial(c)
				if err != nil {
					return err
				}
				defer conn.Close()
				client := dsyncpb.NewUserAgentServiceClient(conn)
				ctx, cancel := dialCtx(context.Background())
				defer cancel()
				_, err = client.GroupDelete(ctx, &dsyncpb.GroupDeleteRequest{Name: c.Args().Get(0)})
				return err
			}),
		},
		{
			Name:  "list",
			Usage: "List groups",
			Action: func(c *cli.Context) error {
				conn, err := dial(c)
				if err != nil {
					return err
				}
				defer conn.Close()
				client := dsyncpb.NewUserAgentServiceClient(conn)
				ctx, cancel := dialCtx(context.Background())
				defer cancel()
				resp, err := client.GroupList(ctx, &dsyncpb.GroupListRequest{})
				if err != nil {
					return err
				}
				for _, g := range resp.Groups {
					fmt.Println(g)
				}
				return nil
			},
		},
	},
}

var shutdownCommand = cli.Command{
	Name:  "shutdown",
	Usage: "Ask the daemon to shut down",
	Action: func(c *cli.Context) error {
		conn, err := dial(c)
		if err != nil {
			return err
		}
		defer conn.Close()
		client := dsyncpb.NewServerControlServiceClient(conn)
		ctx, cancel := dialCtx(context.Background())
		defer cancel()
		_, err = client.Shutdown(ctx, &dsyncpb.ShutdownRequest{})
		return err
	},
}

func printHosts(hosts []dsyncpb.HostInfo) {
	for _, h := range hosts {
		fmt.Printf("%s\t%s\t%s\t%s\n", h.Uuid, h.Name, h.Hostname, h.Address)
	}
}
