// Command till runs a transaction log through a fresh till and prints the
// transaction summary and remaining till balance to stdout.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/sheikh-saqib/till-float-management/internal/config"
	"github.com/sheikh-saqib/till-float-management/internal/events/kafka"
	"github.com/sheikh-saqib/till-float-management/internal/register"
	"github.com/sheikh-saqib/till-float-management/internal/session"
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

	input := flag.String("input", cfg.InputPath, "transaction log to process")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.New(logger.Config{Level: *logLevel, Pretty: cfg.LogPretty})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *input, log); err != nil {
		log.Error().Err(err).Str("input", *input).Msg("Till session failed")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, input string, log zerolog.Logger) error {
	store, closeStore, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer closeStore()

	opts := []register.Option{
		register.WithLogger(log),
		register.WithProcessor(till.NewProcessor(till.Options{LegacyItemDecrement: cfg.LegacyItemDecrement})),
	}
	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer publisher.Close()
		opts = append(opts, register.WithPublisher(publisher))
	}
	reg := register.NewRegister(store, till.DefaultSeed(), opts...)

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = session.NewRunner(reg, log).Run(ctx, f, os.Stdout)
	return err
}
