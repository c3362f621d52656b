package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aeron-ops/backend/internal/config"
	"github.com/aeron-ops/backend/internal/db"
	httpapi "github.com/aeron-ops/backend/internal/http"
	"github.com/aeron-ops/backend/internal/optionsource"
	"github.com/aeron-ops/backend/internal/refdata"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "aeron-backend").Logger()

	ctx := context.Background()

	var store *db.Store
	if cfg.DatabaseURL != "" {
		store, err = db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect db")
		}
		defer store.Close()
	} else {
		logger.Info().Msg("no database configured, running without persistence")
	}

	var sources []optionsource.Source
	if cfg.RecoveryAPIURL != "" {
		sources = append(sources, optionsource.HTTPSource{BaseURL: cfg.RecoveryAPIURL})
	}
	if store != nil {
		sources = append(sources, optionsource.StoreSource{Store: store})
	}
	sources = append(sources, optionsource.Local{})
	resolver := optionsource.NewResolver(logger, sources...)

	ref := refdata.Default()
	if cfg.RosterFile != "" {
		loaded, err := refdata.FromFile(cfg.RosterFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", cfg.RosterFile).Msg("failed to load roster override")
		}
		ref = loaded
		logger.Info().Str("file", cfg.RosterFile).Msg("using roster override")
	}

	router := httpapi.Router(cfg, resolver, store, ref, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
