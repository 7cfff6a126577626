// Package frontend holds the client the frontend uses to reach product-api.
package frontend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MikeMC777/shop-demo/internal/httpx"
)

// ProductAPI returns product-api payloads undecoded so they can be forwarded verbatim.
type ProductAPI struct {
	HTTP    *http.Client
	BaseURL string
}

func NewProductAPI(hc *http.Client, baseURL string) *ProductAPI {
	return &ProductAPI{HTTP: hc, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (p *ProductAPI) Products(ctx context.Context) (json.RawMessage, error) {
	return httpx.GetJSON(ctx, p.HTTP, p.BaseURL+"/products")
}

// Product fetches one product; id is passed through as given.
func (p *ProductAPI) Product(ctx context.Context, id string) (json.RawMessage, error) {
	return httpx.GetJSON(ctx, p.HTTP, fmt.Sprintf("%s/product/%s", p.BaseURL, url.PathEscape(id)))
}
