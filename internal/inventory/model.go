package inventory

// Record is the stock held for one product.
type Record struct {
	ProductID int `json:"productId"`
	Stock     int `json:"stock"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: Product not found in inventory
	Error string `json:"error"`
}

// Seed is the stock table the service starts with.
var Seed = map[int]int{
	1: 150,
	2: 25,
	3: 80,
}
