package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/sheikh-saqib/till-float-management/internal/config"
	"github.com/sheikh-saqib/till-float-management/internal/events/kafka"
	"github.com/sheikh-saqib/till-float-management/internal/httpapi"
	"github.com/sheikh-saqib/till-float-management/internal/metrics"
	"github.com/sheikh-saqib/till-float-management/internal/register"
	"github.com/sheikh-saqib/till-float-management/internal/storage"
	"github.com/sheikh-saqib/till-float-management/internal/till"
	"github.com/sheikh-saqib/till-float-management/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info"})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open journal store")
	}
	defer closeStore()

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	opts := []register.Option{
		register.WithLogger(log),
		register.WithMetrics(metrics.New(promRegistry)),
		register.WithProcessor(till.NewProcessor(till.Options{LegacyItemDecrement: cfg.LegacyItemDecrement})),
	}
	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer publisher.Close()
		opts = append(opts, register.WithPublisher(publisher))
	}

	// One till per process; every request goes through the same register.
	reg := register.NewRegister(store, till.DefaultSeed(), opts...)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpapi.NewRouter(httpapi.NewHandler(reg, promRegistry, log)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("session_id", reg.SessionID()).Msg("Starting till server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	log.Info().Int("balance", reg.Balance()).Msg("Till server stopped")
}
