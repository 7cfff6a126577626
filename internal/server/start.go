package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MikeMC777/shop-demo/internal/config"
	"github.com/MikeMC777/shop-demo/internal/probe"
)

// ListenAndRun binds the addresses from cfg and runs h until ctx is cancelled.
func ListenAndRun(ctx context.Context, cfg config.Config, lg zerolog.Logger, h http.Handler) error {
	httpLis, healthLis, err := Listen(cfg.Addr(), cfg.GRPCHealthAddr())
	if err != nil {
		return err
	}
	s := &Server{
		HTTP: &http.Server{
			Handler:           h,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		HTTPListener:    httpLis,
		HealthListener:  healthLis,
		ShutdownTimeout: cfg.ShutdownTimeout,
		Log:             lg,
	}
	if healthLis != nil {
		s.Health = probe.NewHealth(cfg.Service)
	}
	return s.Run(ctx)
}
