// Package app wires the application together: configuration, logging,
// the lexicon core, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/klattlab/pronlex/internal/config"
	"github.com/klattlab/pronlex/internal/dictionary"
	"github.com/klattlab/pronlex/internal/resource"
	"github.com/klattlab/pronlex/internal/transport/rest"
	"github.com/klattlab/pronlex/internal/unit"
)

// Run is the application entry point. It loads configuration, allocates
// the dictionary, and serves lexicon lookups over HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	units := unit.NewManager()
	dict := dictionary.New(logger, units, resource.Open, dictionary.Options{
		WordLocation:     cfg.Dictionary.WordLocation,
		FillerLocation:   cfg.Dictionary.FillerLocation,
		AddendaLocations: cfg.Dictionary.AddendaLocations(),
		AddSilEnding:     cfg.Dictionary.AddSilEnding,
		Replacement:      cfg.Dictionary.Replacement,
		AllowMissing:     cfg.Dictionary.AllowMissing,
		CreateMissing:    cfg.Dictionary.CreateMissing,
	})

	if err := dict.Allocate(ctx); err != nil {
		return fmt.Errorf("allocate dictionary: %w", err)
	}

	handler := rest.Router(logger,
		rest.NewLookupHandler(dict, logger),
		rest.NewHealthHandler(dict, BuildVersion()),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	dict.Deallocate()
	logger.Info("stopped")

	return nil
}
