// Package docs registers the console backend's OpenAPI description with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/ping": {"get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "pong"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log an operator in", "responses": {"200": {"description": "session"}, "401": {"description": "invalid credentials"}}}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Drop the caller's session", "security": [{"Bearer": []}], "responses": {"204": {"description": "logged out"}}}},
        "/auth/me": {"get": {"tags": ["auth"], "summary": "Current session", "security": [{"Bearer": []}], "responses": {"200": {"description": "session"}}}},
        "/team-members": {"get": {"tags": ["team"], "summary": "List team members", "security": [{"Bearer": []}], "responses": {"200": {"description": "members"}}}, "post": {"tags": ["team"], "summary": "Create a team member", "security": [{"Bearer": []}], "responses": {"201": {"description": "created"}}}},
        "/clients": {"get": {"tags": ["clients"], "summary": "List clients", "security": [{"Bearer": []}], "responses": {"200": {"description": "clients"}}}, "post": {"tags": ["clients"], "summary": "Create a client", "security": [{"Bearer": []}], "responses": {"201": {"description": "created"}}}},
        "/clients/{id}/toggle-active": {"patch": {"tags": ["clients"], "summary": "Flip a client's active flag", "security": [{"Bearer": []}], "responses": {"200": {"description": "client"}}}},
        "/products": {"get": {"tags": ["products"], "summary": "List the catalog", "security": [{"Bearer": []}], "responses": {"200": {"description": "products"}}}, "post": {"tags": ["products"], "summary": "Create a product", "security": [{"Bearer": []}], "responses": {"201": {"description": "created"}}}},
        "/quotations": {"get": {"tags": ["quotations"], "summary": "List quotations", "security": [{"Bearer": []}], "responses": {"200": {"description": "quotations"}}}, "post": {"tags": ["quotations"], "summary": "Create a quotation", "security": [{"Bearer": []}], "responses": {"201": {"description": "quotation with totals"}}}},
        "/quotations/{id}/generate-order": {"post": {"tags": ["quotations"], "summary": "Convert a quotation into an order", "security": [{"Bearer": []}], "responses": {"201": {"description": "order"}, "409": {"description": "already converted or cancelled"}}}},
        "/orders": {"get": {"tags": ["orders"], "summary": "List orders", "security": [{"Bearer": []}], "responses": {"200": {"description": "orders"}}}, "post": {"tags": ["orders"], "summary": "Create an order", "security": [{"Bearer": []}], "responses": {"201": {"description": "order with totals"}}}},
        "/orders/{id}/payments": {"post": {"tags": ["payments"], "summary": "Record a payment against an order", "security": [{"Bearer": []}], "responses": {"201": {"description": "receipt"}}}},
        "/orders/{id}/invoice.pdf": {"get": {"tags": ["documents"], "summary": "Render the invoice", "produces": ["application/pdf"], "security": [{"Bearer": []}], "responses": {"200": {"description": "pdf"}}}},
        "/orders/{id}/challan.pdf": {"get": {"tags": ["documents"], "summary": "Render the delivery challan", "produces": ["application/pdf"], "security": [{"Bearer": []}], "responses": {"200": {"description": "pdf"}}}},
        "/payments": {"get": {"tags": ["payments"], "summary": "Payment report", "security": [{"Bearer": []}], "responses": {"200": {"description": "payments"}}}},
        "/payments/pending": {"get": {"tags": ["payments"], "summary": "Pending payment report", "security": [{"Bearer": []}], "responses": {"200": {"description": "payments"}}}},
        "/payments/export.xlsx": {"get": {"tags": ["payments"], "summary": "Export the payment report", "security": [{"Bearer": []}], "responses": {"200": {"description": "workbook"}}}},
        "/terms": {"get": {"tags": ["terms"], "summary": "List terms & conditions", "security": [{"Bearer": []}], "responses": {"200": {"description": "terms"}}}},
        "/invoice-names": {"get": {"tags": ["terms"], "summary": "List invoice business names", "security": [{"Bearer": []}], "responses": {"200": {"description": "names"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Rental Console API",
	Description:      "Console backend for laptop and PC rentals, fronting the rental API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
