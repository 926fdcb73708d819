package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/turingtoy"
	"github.com/aretw0/turingtoy/internal/logging"
	"github.com/aretw0/turingtoy/internal/presentation/tui"
	httpadapter "github.com/aretw0/turingtoy/pkg/adapters/http"
	"github.com/aretw0/turingtoy/pkg/adapters/memory"
	redisadapter "github.com/aretw0/turingtoy/pkg/adapters/redis"
	"github.com/aretw0/turingtoy/pkg/observability"
	"github.com/aretw0/turingtoy/pkg/ports"
)

// ServeOptions carries the flags of the serve command.
type ServeOptions struct {
	Addr      string
	RedisAddr string
	ResultTTL time.Duration
	LogLevel  string
	Banner    bool
}

// Serve runs the HTTP adapter until ctx is cancelled. Results are kept
// in memory unless a redis address is configured.
func Serve(ctx context.Context, opts ServeOptions) error {
	logger := logging.New(logging.ParseLevel(opts.LogLevel))

	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	sim := turingtoy.New(
		turingtoy.WithLogger(logger),
		turingtoy.WithHooks(metrics.Hooks()),
	)

	var store ports.ResultStore
	if opts.RedisAddr != "" {
		redisStore := redisadapter.New(opts.RedisAddr, "", 0,
			redisadapter.WithTTL(opts.ResultTTL),
		)
		defer redisStore.Close()
		store = redisStore
		logger.Info("using redis result store", "addr", opts.RedisAddr)
	} else {
		store = memory.New()
		logger.Info("using in-memory result store")
	}

	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Mount("/", httpadapter.NewHandler(sim, httpadapter.WithStore(store)))

	server := &http.Server{
		Addr:    opts.Addr,
		Handler: r,
	}

	if opts.Banner && tui.IsTerminal() {
		tui.PrintBanner(turingtoy.Version)
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", opts.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		logger.Info("server stopped")
		return nil
	}
}
