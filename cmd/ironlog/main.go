package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/ironlog/internal/analytics"
	"github.com/meltforce/ironlog/internal/config"
	"github.com/meltforce/ironlog/internal/mcp"
	"github.com/meltforce/ironlog/internal/server"
	"github.com/meltforce/ironlog/internal/storage"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	mcpMode := flag.Bool("mcp", false, "serve MCP over stdio instead of HTTP")
	mcpURL := flag.String("mcp-url", "", "remote IronLog base URL for MCP mode (skips local database)")
	mcpUser := flag.Int("mcp-user", 1, "user ID for MCP mode")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Remote MCP mode needs no local database at all.
	if *mcpMode && *mcpURL != "" {
		serveMCP(mcp.NewHTTPClient(*mcpURL), *mcpUser, log)
		return
	}

	log.Info("IronLog starting", "version", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	if *migrateOnly {
		log.Info("migrate-only: exiting")
		return
	}

	ctx := context.Background()
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	engine := analytics.NewEngine(db, db, db, log,
		analytics.WithFanOutLimit(cfg.Analytics.FanOutConcurrency),
		analytics.WithFetchTimeout(time.Duration(cfg.Analytics.FetchTimeoutSeconds)*time.Second),
	)

	if *mcpMode {
		serveMCP(engine, *mcpUser, log)
		return
	}

	srv := server.New(db, engine, cfg.Auth.APIKey, log)

	// Start server — tsnet or plain HTTP
	var listener net.Listener

	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		lc, err := tsServer.LocalClient()
		if err != nil {
			log.Error("tsnet local client failed", "error", err)
			os.Exit(1)
		}
		srv.SetTailscale(lc)

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// serveMCP runs the MCP server over stdio, pinning every request to the
// given user ID.
func serveMCP(ds mcp.DataSource, userID int, log *slog.Logger) {
	s := mcp.New(ds, Version, log)
	err := mcpserver.ServeStdio(s,
		mcpserver.WithStdioContextFunc(func(ctx context.Context) context.Context {
			return mcp.WithUserID(ctx, userID)
		}),
	)
	if err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
