package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wishcowork/sitekit/core/config"
	"github.com/wishcowork/sitekit/core/server"
	"github.com/wishcowork/sitekit/mockapi"
)

type appConfig struct {
	Addr          string        `env:"MOCKAPI_ADDR" envDefault:":8089"`
	AdminEmail    string        `env:"MOCKAPI_ADMIN_EMAIL" envDefault:"admin@wishcowork.com"`
	AdminPassword string        `env:"MOCKAPI_ADMIN_PASSWORD" envDefault:"admin123"`
	TokenTTL      time.Duration `env:"MOCKAPI_TOKEN_TTL" envDefault:"24h"`
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		log.Error("config load failed", "error", err)
		os.Exit(1)
	}

	api := mockapi.New(
		mockapi.WithLogger(log),
		mockapi.WithCredentials(cfg.AdminEmail, cfg.AdminPassword),
		mockapi.WithTokenTTL(cfg.TokenTTL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Addr, server.WithLogger(log))
	if err := srv.Start(ctx, api.Handler()); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
