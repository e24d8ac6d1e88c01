// Copyright (C) 2026 The dsync Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config resolves dsyncd's startup configuration: CLI flags override
// environment variables override built-in defaults.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/kkafar/dsync/internal/slogutil"
)

func init() { slogutil.RegisterPackage("Configuration loading") }

// DefaultServerPort is both the default bind port for dsyncd and the default
// dial port when a host_add caller omits one.
const DefaultServerPort uint16 = 22555

// LogLevel is the enum accepted by the log_level config option.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// DefaultMetricsPort is the default bind port for the Prometheus/healthz
// HTTP surface.
const DefaultMetricsPort uint16 = 8080

// Config is the resolved, validated configuration dsyncd runs with.
type Config struct {
	ServerPort  uint16
	MetricsPort uint16
	DatabaseURL string
	EnvFile     string
	LogLevel    LogLevel
}

// cli mirrors the flags kong parses; defaults here are the lowest-priority
// tier, overridden by environment variables and then by flags actually
// present on the command line (kong.Parse already applies that ordering
// internally for values it owns — env handling below covers the
// SERVER_PORT/DATABASE_URL/ENV_FILE/LOG_LEVEL surface explicitly, since the
// legacy variable names don't match kong's auto-derived ones).
type cli struct {
	ServerPort  uint16 `name:"server-port" help:"TCP port dsyncd binds and peers dial by default."`
	MetricsPort uint16 `name:"metrics-port" help:"TCP port serving /metrics and /healthz."`
	// Not tagged required: kong only considers a flag "provided" via the
	// command line, which would reject a DATABASE_URL-only invocation even
	// though params.DatabaseURL is already populated from the environment
	// by the time Parse runs. The manual emptiness check below enforces
	// the same requirement across all three sources.
	DatabaseURL string `name:"database-url" help:"Path to the sqlite database file."`
	EnvFile     string `name:"env-file" help:"Optional path to a key=value env file loaded before flag parsing."`
	LogLevel    string `name:"log-level" help:"One of debug, info, warn, error." default:"warn"`
}

// Load resolves configuration from args (normally os.Args[1:]), honoring
// precedence CLI > environment > default. env_file, if given on the
// command line or via ENV_FILE, is loaded first so its values can still be
// overridden by real environment variables and flags.
func Load(args []string) (*Config, error) {
	if envFile, ok := peekEnvFile(args); ok {
		if err := loadEnvFile(envFile); err != nil {
			return nil, fmt.Errorf("config: loading env file: %w", err)
		}
	}

	params := cli{
		ServerPort:  DefaultServerPort,
		MetricsPort: DefaultMetricsPort,
	}
	if v, ok := os.LookupEnv("SERVER_PORT"); ok {
		if port, err := strconv.ParseUint(v, 10, 16); err == nil {
			params.ServerPort = uint16(port)
		}
	}
	if v, ok := os.LookupEnv("METRICS_PORT"); ok {
		if port, err := strconv.ParseUint(v, 10, 16); err == nil {
			params.MetricsPort = uint16(port)
		}
	}
	if v, ok := os.LookupEnv("DATABASE_URL"); ok {
		params.DatabaseURL = v
	}
	if v, ok := os.LookupEnv("ENV_FILE"); ok {
		params.EnvFile = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		params.LogLevel = v
	}

	parser, err := kong.New(&params, kong.Name("dsyncd"), kong.Description("Peer-to-peer file synchronization daemon."))
	if err != nil {
		return nil, fmt.Errorf("config: building parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, fmt.Errorf("config: parsing arguments: %w", err)
	}

	lvl := LogLevel(strings.ToLower(params.LogLevel))
	switch lvl {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return nil, fmt.Errorf("config: invalid log_level %q", params.LogLevel)
	}
	if params.DatabaseURL == "" {
		return nil, fmt.Errorf("config: database_url is required")
	}

	return &Config{
		ServerPort:  params.ServerPort,
		MetricsPort: params.MetricsPort,
		DatabaseURL: params.DatabaseURL,
		EnvFile:     params.EnvFile,
		LogLevel:    lvl,
	}, nil
}

func peekEnvFile(args []string) (string, bool) {
	for i, a := range args {
		if a == "--env-file" && i+1 < len(args) {
			return args[i+1], true
		}
		if rest, ok := strings.CutPrefix(a, "--env-file="); ok {
			return rest, true
		}
	}
	if v, ok := os.LookupEnv("ENV_FILE"); ok {
		return v, true
	}
	return "", false
}

// loadEnvFile applies simple KEY=VALUE lines to the process environment,
// without overwriting variables already set. There is no pack-provided
// dotenv library (see DESIGN.md); the format handled here is deliberately
// minimal: one assignment per line, '#' comments, no quoting or expansion.
func loadEnvFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.Trim(strings.TrimSpace(val), `"'`)
		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, val)
		}
	}
	return scanner.Err()
}
