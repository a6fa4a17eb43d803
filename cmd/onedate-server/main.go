// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hypergrow-online/OneDate/lib/clock"
	"github.com/hypergrow-online/OneDate/lib/config"
	"github.com/hypergrow-online/OneDate/lib/mediastore"
	"github.com/hypergrow-online/OneDate/lib/service"
	"github.com/hypergrow-online/OneDate/lib/store"
	"github.com/hypergrow-online/OneDate/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "path to onedate.yaml (default: $ONEDATE_CONFIG)")
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("onedate-server %s\n", version.Info())
		return nil
	}

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.EnsurePaths(); err != nil {
		return fmt.Errorf("preparing directories: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	documents, err := store.Open(store.Config{
		Path:     cfg.Database.Path,
		PoolSize: cfg.Database.PoolSize,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("opening document store: %w", err)
	}
	defer documents.Close()
	logger.Info("document store open", "path", cfg.Database.Path)

	media, err := mediastore.Open(cfg.Media.Dir, logger)
	if err != nil {
		return fmt.Errorf("opening media store: %w", err)
	}

	var uploader mediastore.Uploader
	if cfg.Media.RemoteEndpoint != "" {
		uploader = &mediastore.RemoteUploader{
			Endpoint: cfg.Media.RemoteEndpoint,
			Token:    cfg.Media.RemoteToken,
		}
		logger.Info("remote media uploads enabled", "endpoint", cfg.Media.RemoteEndpoint)
	}

	srv := &server{
		store:       documents,
		media:       media,
		uploader:    uploader,
		clock:       clock.Real(),
		logger:      logger,
		tokenSecret: []byte(cfg.Auth.TokenSecret),
		tokenTTL:    cfg.TokenTTL(),
		bcryptCost:  cfg.Auth.BcryptCost,
		baseURL:     cfg.Server.BaseURL,
	}

	httpServer := service.NewHTTPServer(service.HTTPServerConfig{
		Address:         cfg.Server.Address,
		Handler:         srv.routes(),
		ShutdownTimeout: cfg.ShutdownTimeout(),
		Logger:          logger,
	})

	logger.Info("starting onedate-server",
		"version", version.Info(),
		"environment", string(cfg.Environment),
		"address", cfg.Server.Address,
	)
	return httpServer.Serve(ctx)
}
