// Package docs registers the OpenAPI document served under /docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/webhook": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["webhook"],
                "summary": "Accept an order event",
                "parameters": [
                    {
                        "description": "order_id, customer_name, amount, team_id and optional pickup_address, delivery_address, status, platform",
                        "name": "order",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.WebhookRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.WebhookResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/list_payouts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payouts"],
                "summary": "List pending payouts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.PayoutResp"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/generate_payout_file": {
            "get": {
                "produces": ["text/csv"],
                "tags": ["payouts"],
                "summary": "Download pending payouts as a post office batch file",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "http.WebhookRequest": {
            "type": "object",
            "required": ["order_id", "customer_name", "amount", "team_id"],
            "properties": {
                "order_id": {"type": "string"},
                "customer_name": {"type": "string"},
                "amount": {"type": "number"},
                "team_id": {"type": "string"},
                "pickup_address": {"type": "string"},
                "delivery_address": {"type": "string"},
                "status": {"type": "string"},
                "platform": {"type": "string"}
            }
        },
        "http.RevenueSplitResp": {
            "type": "object",
            "properties": {
                "owner": {"type": "number"},
                "team": {"type": "number"},
                "system": {"type": "number"},
                "total": {"type": "number"}
            }
        },
        "http.WebhookResp": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "order_id": {"type": "string"},
                "revenue_split": {"$ref": "#/definitions/http.RevenueSplitResp"}
            }
        },
        "http.PayoutResp": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "order_id": {"type": "string"},
                "recipient_type": {"type": "string"},
                "recipient_account": {"type": "string"},
                "amount": {"type": "number"},
                "status": {"type": "string"},
                "created_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Payout ledger API",
	Description:      "Order intake, revenue split and pending payout settlement.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
