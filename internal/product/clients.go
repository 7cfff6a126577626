package product

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MikeMC777/shop-demo/internal/httpx"
)

// StockSource answers stock lookups for the catalog.
type StockSource interface {
	Stock(ctx context.Context, productID int) (int, error)
}

type inventoryDTO struct {
	ProductID int  `json:"productId"`
	Stock     *int `json:"stock"`
}

// InventoryClient calls the inventory service over HTTP.
type InventoryClient struct {
	HTTP    *http.Client
	BaseURL string
}

func NewInventoryClient(hc *http.Client, baseURL string) *InventoryClient {
	return &InventoryClient{HTTP: hc, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (c *InventoryClient) Stock(ctx context.Context, productID int) (int, error) {
	body, err := httpx.GetJSON(ctx, c.HTTP, fmt.Sprintf("%s/inventory/%d", c.BaseURL, productID))
	if err != nil {
		return 0, err
	}
	var dto inventoryDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return 0, fmt.Errorf("decode inventory %d: %w", productID, err)
	}
	if dto.Stock == nil {
		return 0, fmt.Errorf("inventory %d: missing stock", productID)
	}
	return *dto.Stock, nil
}
