package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aretw0/boolmin"
	httpAdapter "github.com/aretw0/boolmin/pkg/adapters/http"
	"github.com/aretw0/boolmin/pkg/adapters/mcp"
	"github.com/aretw0/boolmin/pkg/observability"
)

// ShutdownTimeout bounds how long in-flight requests get to finish.
const ShutdownTimeout = 5 * time.Second

// NewServerHandler builds the HTTP handler with a private metrics registry wired to the tool hooks.
func NewServerHandler(opts Options, logger *slog.Logger) (http.Handler, func() error, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return nil, nil, err
	}
	opts.Hooks = append(opts.Hooks, metrics.Hooks())
	if opts.RedisAddr == "" {
		opts.MemoryCache = true
	}

	m, closer, err := NewMinimizer(opts, logger)
	if err != nil {
		return nil, nil, err
	}
	handler := httpAdapter.NewHandler(m, httpAdapter.WithMetrics(reg), httpAdapter.WithLogger(logger))
	return handler, closer, nil
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, addr string, opts Options, logger *slog.Logger) error {
	handler, closer, err := NewServerHandler(opts, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer(); err != nil {
			logger.Warn("Cache close failed", "error", err)
		}
	}()

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting boolmin server", "addr", srv.Addr, "settings", opts.ConfigPath)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Start shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown did not complete", "timeout", ShutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		logger.Info("Server stopped gracefully")
		return nil
	}
}

// ServeMCP exposes the minimizer as MCP tools over stdio.
// Logs must never reach stdout here since it carries JSON-RPC.
func ServeMCP(opts Options, logger *slog.Logger) error {
	if opts.RedisAddr == "" {
		opts.MemoryCache = true
	}
	m, closer, err := NewMinimizer(opts, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer(); err != nil {
			logger.Warn("Cache close failed", "error", err)
		}
	}()

	srv := mcp.NewServer(m, boolmin.Version)
	logger.Info("Starting boolmin MCP Server (Stdio)")
	return srv.ServeStdio()
}
