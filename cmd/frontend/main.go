package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-demo/internal/config"
	"github.com/MikeMC777/shop-demo/internal/frontend"
	"github.com/MikeMC777/shop-demo/internal/httpx"
	"github.com/MikeMC777/shop-demo/internal/logging"
	"github.com/MikeMC777/shop-demo/internal/metrics"
	"github.com/MikeMC777/shop-demo/internal/server"
)

func main() {
	cfg := config.Load(config.Frontend)
	lg := logging.New(cfg.Service, cfg.LogLevel)
	cfg.Log(lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := frontend.NewProductAPI(httpx.NewClient(cfg.UpstreamTimeout), cfg.ProductAPIURL)

	gin.SetMode(gin.ReleaseMode)
	r := httpx.NewEngine(lg, metrics.New(cfg.Service))
	routes(r, api, lg)

	if err := server.ListenAndRun(ctx, cfg, lg, r); err != nil {
		lg.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
	lg.Info().Msg("frontend stopped")
}
