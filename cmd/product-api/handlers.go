package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/shop-demo/internal/config"
	"github.com/MikeMC777/shop-demo/internal/docs"
	"github.com/MikeMC777/shop-demo/internal/httpx"
	"github.com/MikeMC777/shop-demo/internal/logging"
	prod "github.com/MikeMC777/shop-demo/internal/product"
)

func routes(r *gin.Engine, cat *prod.Catalog, lg zerolog.Logger) {
	r.GET("/health", httpx.Health(config.ProductAPI))
	r.GET("/products", listProductsHandler(cat, lg))
	r.GET("/product/:id", getProductHandler(cat, lg))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.ProductAPI)))
}

// listProductsHandler godoc
// @Summary  All products with stock
// @Success  200 {array}  product.EnrichedProduct
// @Failure  500 {object} product.HTTPError
// @Router   /products [get]
func listProductsHandler(cat *prod.Catalog, lg zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cat.List(c.Request.Context())
		if err != nil {
			lg.Error().Str(logging.REQUEST_ID, httpx.RID(c)).Err(err).Msg("Error in /products")
			c.JSON(http.StatusInternalServerError, prod.HTTPError{Error: "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// getProductHandler godoc
// @Summary  One product with stock
// @Param    id path int true "product id"
// @Success  200 {object} product.EnrichedProduct
// @Failure  404 {object} product.HTTPError
// @Router   /product/{id} [get]
func getProductHandler(cat *prod.Catalog, lg zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, prod.HTTPError{Error: "Product not found"})
			return
		}
		p, err := cat.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, prod.ErrNotFound) {
				c.JSON(http.StatusNotFound, prod.HTTPError{Error: "Product not found"})
				return
			}
			lg.Error().Str(logging.REQUEST_ID, httpx.RID(c)).Int(logging.PRODUCT_ID, id).Err(err).Msg("Error in /product")
			c.JSON(http.StatusInternalServerError, prod.HTTPError{Error: "Failed to fetch product"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
