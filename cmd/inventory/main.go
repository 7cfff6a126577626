package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/shop-demo/internal/config"
	"github.com/MikeMC777/shop-demo/internal/httpx"
	inv "github.com/MikeMC777/shop-demo/internal/inventory"
	"github.com/MikeMC777/shop-demo/internal/latency"
	"github.com/MikeMC777/shop-demo/internal/logging"
	"github.com/MikeMC777/shop-demo/internal/metrics"
	"github.com/MikeMC777/shop-demo/internal/server"
)

func main() {
	cfg := config.Load(config.Inventory)
	lg := logging.New(cfg.Service, cfg.LogLevel)
	cfg.Log(lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo inv.Repository = inv.NewStaticRepo(inv.Seed)
	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			lg.Fatal().Err(err).Msg("postgres")
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			lg.Fatal().Err(err).Msg("postgres ping")
		}
		repo = inv.NewPGRepo(pool)
	}

	gin.SetMode(gin.ReleaseMode)
	r := httpx.NewEngine(lg, metrics.New(cfg.Service))
	routes(r, repo, latency.New(cfg.SimulatedDelay))

	if err := server.ListenAndRun(ctx, cfg, lg, r); err != nil {
		lg.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
	lg.Info().Msg("inventory service stopped")
}
