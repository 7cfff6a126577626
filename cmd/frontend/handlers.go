package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/shop-demo/internal/config"
	"github.com/MikeMC777/shop-demo/internal/docs"
	"github.com/MikeMC777/shop-demo/internal/httpx"
	"github.com/MikeMC777/shop-demo/internal/logging"
)

// ProductSource is the part of frontend.ProductAPI the handlers need.
type ProductSource interface {
	Products(ctx context.Context) (json.RawMessage, error)
	Product(ctx context.Context, id string) (json.RawMessage, error)
}

const isoMillis = "2006-01-02T15:04:05.000Z"

var now = time.Now

func timestamp() string { return now().UTC().Format(isoMillis) }

type homeResponse struct {
	Service   string          `json:"service"`
	Message   string          `json:"message"`
	Products  json.RawMessage `json:"products"`
	Timestamp string          `json:"timestamp"`
}

type productResponse struct {
	Service   string          `json:"service"`
	Product   json.RawMessage `json:"product"`
	Timestamp string          `json:"timestamp"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func routes(r *gin.Engine, api ProductSource, lg zerolog.Logger) {
	r.GET("/health", httpx.Health(config.Frontend))
	r.GET("/", homeHandler(api, lg))
	r.GET("/product/:id", productHandler(api, lg))
	r.GET("/error", errorHandler(lg))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.Frontend)))
}

func homeHandler(api ProductSource, lg zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := api.Products(c.Request.Context())
		if err != nil {
			lg.Error().Str(logging.REQUEST_ID, httpx.RID(c)).Err(err).Msg("Error fetching products")
			c.JSON(http.StatusInternalServerError, errorResponse{
				Error:   "Failed to fetch products",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, homeResponse{
			Service:   config.Frontend,
			Message:   "E-commerce shop frontend",
			Products:  products,
			Timestamp: timestamp(),
		})
	}
}

func productHandler(api ProductSource, lg zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		p, err := api.Product(c.Request.Context(), id)
		if err != nil {
			lg.Error().Str(logging.REQUEST_ID, httpx.RID(c)).Str(logging.PRODUCT_ID, id).Err(err).Msg("Error fetching product")
			c.JSON(http.StatusInternalServerError, errorResponse{
				Error:   "Failed to fetch product",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, productResponse{
			Service:   config.Frontend,
			Product:   p,
			Timestamp: timestamp(),
		})
	}
}

func errorHandler(lg zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		lg.Error().Str(logging.REQUEST_ID, httpx.RID(c)).Msg("Intentional error triggered for demo")
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:   "Intentional error",
			Message: "This endpoint always returns 500 to demonstrate error tracking",
		})
	}
}
