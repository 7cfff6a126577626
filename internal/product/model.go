package product

import "github.com/shopspring/decimal"

func init() {
	// prices go out as JSON numbers (299.99), not strings
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// EnrichedProduct is a Product merged with its stock for one response.
// Stock is always present; it is 0 when the inventory lookup failed.
type EnrichedProduct struct {
	Product
	Stock int `json:"stock"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: Product not found
	Error string `json:"error"`
}

// Seed is the catalog the service starts with, in response order.
var Seed = []Product{
	{ID: 1, Name: "Solar Panel 400W", Price: decimal.RequireFromString("299.99"), Category: "solar"},
	{ID: 2, Name: "Battery Storage 10kWh", Price: decimal.RequireFromString("7999.99"), Category: "storage"},
	{ID: 3, Name: "Inverter 5kW", Price: decimal.RequireFromString("1499.99"), Category: "inverter"},
}
