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
	"github.com/MikeMC777/shop-demo/internal/latency"
	"github.com/MikeMC777/shop-demo/internal/logging"
	"github.com/MikeMC777/shop-demo/internal/metrics"
	prod "github.com/MikeMC777/shop-demo/internal/product"
	"github.com/MikeMC777/shop-demo/internal/server"
)

func main() {
	cfg := config.Load(config.ProductAPI)
	lg := logging.New(cfg.Service, cfg.LogLevel)
	cfg.Log(lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repo prod.Repository = prod.NewStaticRepo(prod.Seed)
	if cfg.PostgresDSN != "" {
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			lg.Fatal().Err(err).Msg("postgres")
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			lg.Fatal().Err(err).Msg("postgres ping")
		}
		repo = prod.NewPGRepo(pool)
	}

	m := metrics.New(cfg.Service)
	cat := prod.NewCatalog(repo,
		prod.NewInventoryClient(httpx.NewClient(cfg.UpstreamTimeout), cfg.InventoryURL),
		prod.WithLogger(lg),
		prod.WithMetrics(m),
		prod.WithListDelay(latency.New(cfg.SimulatedDelay)),
	)

	gin.SetMode(gin.ReleaseMode)
	r := httpx.NewEngine(lg, m)
	routes(r, cat, lg)

	if err := server.ListenAndRun(ctx, cfg, lg, r); err != nil {
		lg.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
	lg.Info().Msg("product api stopped")
}
