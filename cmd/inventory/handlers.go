package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/shop-demo/internal/config"
	"github.com/MikeMC777/shop-demo/internal/docs"
	"github.com/MikeMC777/shop-demo/internal/httpx"
	inv "github.com/MikeMC777/shop-demo/internal/inventory"
	"github.com/MikeMC777/shop-demo/internal/latency"
)

func routes(r *gin.Engine, repo inv.Repository, delay *latency.Simulator) {
	r.GET("/health", httpx.Health(config.Inventory))
	r.GET("/inventory/:productId", getInventoryHandler(repo, delay))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.Inventory)))
}

// getInventoryHandler godoc
// @Summary  Stock for one product
// @Param    productId path int true "product id"
// @Success  200 {object} inventory.Record
// @Failure  404 {object} inventory.HTTPError
// @Router   /inventory/{productId} [get]
func getInventoryHandler(repo inv.Repository, delay *latency.Simulator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// simulated store latency applies to hits and misses alike
		if err := delay.Wait(c.Request.Context()); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, inv.HTTPError{Error: "request cancelled"})
			return
		}

		id, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			c.JSON(http.StatusNotFound, inv.HTTPError{Error: "Product not found in inventory"})
			return
		}
		rec, err := repo.GetStock(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, inv.ErrNotFound) {
				c.JSON(http.StatusNotFound, inv.HTTPError{Error: "Product not found in inventory"})
				return
			}
			c.JSON(http.StatusInternalServerError, inv.HTTPError{Error: "Failed to fetch inventory"})
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}
