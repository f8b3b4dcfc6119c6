// Package storefront holds the Swagger document served by the BFF at
// /swagger/. Regenerate it with swag init after changing handler annotations.
package storefront

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "AussieBroadWAN Team",
			"url": "https://github.com/aussiebroadwan/storefront"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/livez": {
			"get": {
				"tags": [
					"Health"
				],
				"summary": "Health Check Endpoint",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/readyz": {
			"get": {
				"tags": [
					"Health"
				],
				"summary": "Readiness Check Endpoint",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/session": {
			"get": {
				"tags": [
					"Session"
				],
				"summary": "Current session",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/session/login": {
			"post": {
				"tags": [
					"Session"
				],
				"summary": "Log in with email and password",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/session/register": {
			"post": {
				"tags": [
					"Session"
				],
				"summary": "Register",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/session/google": {
			"post": {
				"tags": [
					"Session"
				],
				"summary": "Log in with Google",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/session/logout": {
			"post": {
				"tags": [
					"Session"
				],
				"summary": "Log out",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/cart": {
			"get": {
				"tags": [
					"Cart"
				],
				"summary": "Get cart",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/cart/items": {
			"post": {
				"tags": [
					"Cart"
				],
				"summary": "Add to cart",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/cart/items/{id}": {
			"delete": {
				"tags": [
					"Cart"
				],
				"summary": "Remove from cart",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/cart/coupon": {
			"post": {
				"tags": [
					"Checkout"
				],
				"summary": "Apply coupon",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/checkout": {
			"post": {
				"tags": [
					"Checkout"
				],
				"summary": "Checkout",
				"responses": {
					"201": {
						"description": "Created"
					}
				}
			}
		},
		"/v1/favorites": {
			"get": {
				"tags": [
					"Favorites"
				],
				"summary": "List favorites",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/favorites/{productId}/toggle": {
			"post": {
				"tags": [
					"Favorites"
				],
				"summary": "Toggle favorite",
				"parameters": [
					{
						"type": "integer",
						"name": "productId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/products": {
			"get": {
				"tags": [
					"Catalog"
				],
				"summary": "List products",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/products/{id}": {
			"get": {
				"tags": [
					"Catalog"
				],
				"summary": "Get product",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/categories": {
			"get": {
				"tags": [
					"Catalog"
				],
				"summary": "List categories",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/addresses": {
			"get": {
				"tags": [
					"Account"
				],
				"summary": "List addresses",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"tags": [
					"Account"
				],
				"summary": "Create address",
				"responses": {
					"201": {
						"description": "Created"
					}
				}
			}
		},
		"/v1/addresses/{id}": {
			"put": {
				"tags": [
					"Account"
				],
				"summary": "Update address",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			},
			"delete": {
				"tags": [
					"Account"
				],
				"summary": "Delete address",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/profile": {
			"put": {
				"tags": [
					"Account"
				],
				"summary": "Update profile",
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/profile/email": {
			"put": {
				"tags": [
					"Account"
				],
				"summary": "Change email",
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/orders": {
			"get": {
				"tags": [
					"Orders"
				],
				"summary": "List my orders",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/orders/{id}/cancel": {
			"post": {
				"tags": [
					"Orders"
				],
				"summary": "Cancel order",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/orders/{id}/invoice": {
			"get": {
				"tags": [
					"Orders"
				],
				"summary": "Download invoice",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/admin/products": {
			"get": {
				"tags": [
					"Admin"
				],
				"summary": "List products (admin)",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"tags": [
					"Admin"
				],
				"summary": "Create product",
				"responses": {
					"201": {
						"description": "Created"
					}
				}
			}
		},
		"/v1/admin/products/{id}": {
			"put": {
				"tags": [
					"Admin"
				],
				"summary": "Update product",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			},
			"delete": {
				"tags": [
					"Admin"
				],
				"summary": "Delete product",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/admin/categories": {
			"get": {
				"tags": [
					"Admin"
				],
				"summary": "List categories (admin)",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"tags": [
					"Admin"
				],
				"summary": "Create category",
				"responses": {
					"201": {
						"description": "Created"
					}
				}
			}
		},
		"/v1/admin/categories/{id}": {
			"put": {
				"tags": [
					"Admin"
				],
				"summary": "Update category",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			},
			"delete": {
				"tags": [
					"Admin"
				],
				"summary": "Delete category",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/admin/coupons": {
			"get": {
				"tags": [
					"Admin"
				],
				"summary": "List coupons",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"tags": [
					"Admin"
				],
				"summary": "Create coupon",
				"responses": {
					"201": {
						"description": "Created"
					}
				}
			}
		},
		"/v1/admin/coupons/{id}": {
			"put": {
				"tags": [
					"Admin"
				],
				"summary": "Update coupon",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			},
			"delete": {
				"tags": [
					"Admin"
				],
				"summary": "Delete coupon",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/admin/orders": {
			"get": {
				"tags": [
					"Admin"
				],
				"summary": "List all orders",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/admin/orders/{id}": {
			"get": {
				"tags": [
					"Admin"
				],
				"summary": "Get order",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/admin/orders/{id}/status": {
			"put": {
				"tags": [
					"Admin"
				],
				"summary": "Set order status",
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/admin/users": {
			"get": {
				"tags": [
					"Admin"
				],
				"summary": "List users",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/admin/users/{id}": {
			"get": {
				"tags": [
					"Admin"
				],
				"summary": "Get user",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/admin/users/{id}/roles": {
			"put": {
				"tags": [
					"Admin"
				],
				"summary": "Replace user roles",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/admin/users/{id}/ban": {
			"put": {
				"tags": [
					"Admin"
				],
				"summary": "Ban or unban user",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/admin/roles": {
			"get": {
				"tags": [
					"Admin"
				],
				"summary": "List roles",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"tags": [
					"Admin"
				],
				"summary": "Create role",
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/admin/roles/{id}": {
			"put": {
				"tags": [
					"Admin"
				],
				"summary": "Rename role",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			},
			"delete": {
				"tags": [
					"Admin"
				],
				"summary": "Delete role",
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				}
			}
		},
		"/v1/events": {
			"get": {
				"tags": [
					"Events"
				],
				"summary": "Event stream",
				"description": "Server-sent events: \"notice\" with a JSON notice, \"unauthorized\" with an empty payload.",
				"produces": [
					"text/event-stream"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Resume after this notice id",
						"name": "Last-Event-ID",
						"in": "header"
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Storefront BFF API",
	Description:      "Local backend for the storefront shell. It holds one customer session, the guest cart and the favorites mirror, and relays everything else to the remote storefront service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
