// Package docs registers the swagger documents of the three services with swag.
package docs

import "github.com/swaggo/swag"

// Instance names passed to ginSwagger.InstanceName.
const (
	Inventory  = "inventory"
	ProductAPI = "productapi"
	Frontend   = "frontend"
)

const errorDefinition = `
        "HTTPError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "Health": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "service": {"type": "string"}
            }
        }`

const healthPath = `
        "/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Health"}}
                }
            }
        }`

const enrichedProductDefinition = `
        "EnrichedProduct": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Solar Panel 400W"},
                "price": {"type": "number", "example": 299.99},
                "category": {"type": "string", "example": "solar"},
                "stock": {"type": "integer", "example": 150}
            }
        }`

const inventoryTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {` + healthPath + `,
        "/inventory/{productId}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Stock for one product",
                "parameters": [
                    {"type": "integer", "name": "productId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/InventoryRecord"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            }
        }
    },
    "definitions": {` + errorDefinition + `,
        "InventoryRecord": {
            "type": "object",
            "properties": {
                "productId": {"type": "integer", "example": 1},
                "stock": {"type": "integer", "example": 150}
            }
        }
    }
}`

const productAPITemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {` + healthPath + `,
        "/products": {
            "get": {
                "produces": ["application/json"],
                "summary": "All products with stock",
                "description": "Products whose inventory lookup fails are returned with stock 0.",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/EnrichedProduct"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            }
        },
        "/product/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "One product with stock",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/EnrichedProduct"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            }
        }
    },
    "definitions": {` + errorDefinition + `,` + enrichedProductDefinition + `
    }
}`

const frontendTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {` + healthPath + `,
        "/": {
            "get": {
                "produces": ["application/json"],
                "summary": "Shop homepage with the product list",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "product-api unreachable", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            }
        },
        "/product/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Product detail page",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "product-api failed", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            }
        },
        "/error": {
            "get": {
                "produces": ["application/json"],
                "summary": "Always fails, for error tracking demos",
                "responses": {
                    "500": {"description": "Intentional error", "schema": {"$ref": "#/definitions/HTTPError"}}
                }
            }
        }
    },
    "definitions": {` + errorDefinition + `,` + enrichedProductDefinition + `
    }
}`

var InventoryInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inventory API",
	Description:      "Static stock table with simulated lookup latency.",
	InfoInstanceName: Inventory,
	SwaggerTemplate:  inventoryTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

var ProductAPIInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Product API",
	Description:      "Product catalog enriched with inventory stock.",
	InfoInstanceName: ProductAPI,
	SwaggerTemplate:  productAPITemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

var FrontendInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shop Frontend",
	Description:      "Pass-through frontend over product-api.",
	InfoInstanceName: Frontend,
	SwaggerTemplate:  frontendTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(InventoryInfo.InstanceName(), InventoryInfo)
	swag.Register(ProductAPIInfo.InstanceName(), ProductAPIInfo)
	swag.Register(FrontendInfo.InstanceName(), FrontendInfo)
}
