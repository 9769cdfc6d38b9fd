// Package docs especificación OpenAPI de la API en el formato de swaggo/swag.
// Regenerar con: swag init -g cmd/api/main.go -o docs
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
    "paths": {
        "/health": {
            "get": {"tags": ["health"], "summary": "Estado del servicio", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HealthResponse"}}}}
        },
        "/api/auth/login": {
            "post": {"tags": ["auth"], "summary": "Iniciar sesión", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }}
        },
        "/api/auth/register": {
            "post": {"security": [{"Bearer": []}], "tags": ["auth"], "summary": "Registrar usuario (admin)", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.UserResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }}
        },
        "/api/access/check": {
            "get": {"security": [{"Bearer": []}], "tags": ["access"], "summary": "Decidir si el usuario puede abrir una ruta", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "query", "name": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AccessCheckResponse"}}}}
        },
        "/api/access/default-path": {
            "get": {"security": [{"Bearer": []}], "tags": ["access"], "summary": "Ruta inicial del usuario", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.DefaultPathResponse"}}}}
        },
        "/api/access/pages": {
            "get": {"security": [{"Bearer": []}], "tags": ["access"], "summary": "Tabla de páginas y sistemas", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PagesResponse"}}}}
        },
        "/api/users/{id}/access": {
            "put": {"security": [{"Bearer": []}], "tags": ["users"], "summary": "Editar el acceso de un usuario (admin)", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateAccessRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.UserAccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }}
        },
        "/api/products": {
            "get": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Listar productos activos", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "query", "name": "search"},
                    {"type": "integer", "in": "query", "name": "limit"},
                    {"type": "integer", "in": "query", "name": "offset"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductListResponse"}}}}
        },
        "/api/products/{code}": {
            "get": {"security": [{"Bearer": []}], "tags": ["products"], "summary": "Obtener producto por código", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "code", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ProductResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }}
        },
        "/api/quotations/preview": {
            "post": {"security": [{"Bearer": []}], "tags": ["quotations"], "summary": "Vista previa de totales", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PreviewQuotationRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PreviewQuotationResponse"}}}}
        },
        "/api/quotations": {
            "get": {"security": [{"Bearer": []}], "tags": ["quotations"], "summary": "Listar cotizaciones", "produces": ["application/json"],
                "parameters": [
                    {"type": "boolean", "in": "query", "name": "mine"},
                    {"type": "integer", "in": "query", "name": "limit"},
                    {"type": "integer", "in": "query", "name": "offset"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuotationListResponse"}}}},
            "post": {"security": [{"Bearer": []}], "tags": ["quotations"], "summary": "Crear cotización (DRAFT)", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SaveQuotationRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.QuotationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }}
        },
        "/api/quotations/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["quotations"], "summary": "Obtener cotización", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuotationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }},
            "put": {"security": [{"Bearer": []}], "tags": ["quotations"], "summary": "Editar cotización", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SaveQuotationRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuotationResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }}
        },
        "/api/quotations/{id}/items/{position}": {
            "delete": {"security": [{"Bearer": []}], "tags": ["quotations"], "summary": "Quitar una línea", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"type": "integer", "in": "path", "name": "position", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.QuotationResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }}
        },
        "/api/quotations/{id}/pdf": {
            "post": {"security": [{"Bearer": []}], "tags": ["quotations"], "summary": "Generar PDF", "produces": ["application/pdf"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}
        },
        "/api/quotations/{id}/save": {
            "post": {"security": [{"Bearer": []}], "tags": ["quotations"], "summary": "Guardar PDF en el almacenamiento", "produces": ["application/json"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SavedDocumentResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }}
        },
        "/api/quotations/{id}/xlsx": {
            "get": {"security": [{"Bearer": []}], "tags": ["quotations"], "summary": "Exportar a Excel",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}
        }
    },
    "definitions": {
        "dto.ErrorResponse": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}}},
        "dto.HealthResponse": {"type": "object", "properties": {"status": {"type": "string"}, "app": {"type": "string"}}},
        "dto.LoginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "dto.RegisterRequest": {"type": "object", "required": ["email", "password"], "properties": {
            "email": {"type": "string"}, "password": {"type": "string", "minLength": 8}, "name": {"type": "string"},
            "role": {"type": "string"}, "user_type": {"type": "string"},
            "system_access": {"type": "array", "items": {"type": "string"}},
            "page_access": {"type": "array", "items": {"type": "string"}}}},
        "dto.UserResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"}, "role": {"type": "string"},
            "user_type": {"type": "string"}, "status": {"type": "string"},
            "system_access": {"type": "array", "items": {"type": "string"}},
            "page_access": {"type": "array", "items": {"type": "string"}},
            "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "dto.LoginResponse": {"type": "object", "properties": {
            "token": {"type": "string"}, "user": {"$ref": "#/definitions/dto.UserResponse"}, "default_path": {"type": "string"}}},
        "dto.AccessCheckResponse": {"type": "object", "properties": {
            "path": {"type": "string"}, "allowed": {"type": "boolean"}, "default_path": {"type": "string"}}},
        "dto.DefaultPathResponse": {"type": "object", "properties": {"default_path": {"type": "string"}}},
        "dto.PageInfo": {"type": "object", "properties": {"name": {"type": "string"}, "route": {"type": "string"}, "system": {"type": "string"}}},
        "dto.PagesResponse": {"type": "object", "properties": {
            "systems": {"type": "array", "items": {"type": "string"}},
            "pages": {"type": "array", "items": {"$ref": "#/definitions/dto.PageInfo"}}}},
        "dto.UpdateAccessRequest": {"type": "object", "properties": {
            "role": {"type": "string"}, "user_type": {"type": "string"},
            "system_access": {"type": "array", "items": {"type": "string"}},
            "page_access": {"type": "array", "items": {"type": "string"}}}},
        "dto.AccessGrantPayload": {"type": "object", "properties": {
            "system_access": {"type": "string"}, "page_access": {"type": "string"}, "role": {"type": "string"}, "user_type": {"type": "string"}}},
        "dto.UserAccessResponse": {"type": "object", "properties": {
            "user": {"$ref": "#/definitions/dto.UserResponse"}, "legacy": {"$ref": "#/definitions/dto.AccessGrantPayload"}}},
        "dto.PageResponse": {"type": "object", "properties": {"limit": {"type": "integer"}, "offset": {"type": "integer"}, "total": {"type": "integer"}}},
        "dto.ProductResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "code": {"type": "string"}, "name": {"type": "string"}, "unit": {"type": "string"},
            "rate": {"type": "string"}, "gst_percent": {"type": "string"}, "hsn_code": {"type": "string"}, "updated_at": {"type": "string"}}},
        "dto.ProductListResponse": {"type": "object", "properties": {
            "items": {"type": "array", "items": {"$ref": "#/definitions/dto.ProductResponse"}}, "page": {"$ref": "#/definitions/dto.PageResponse"}}},
        "dto.QuotationItemInput": {"type": "object", "properties": {
            "product_code": {"type": "string"}, "description": {"type": "string"}, "unit": {"type": "string"},
            "quantity": {"type": "string"}, "rate": {"type": "string"}, "discount_percent": {"type": "string"}, "gst_percent": {"type": "string"}}},
        "dto.PreviewQuotationRequest": {"type": "object", "properties": {
            "tax_mode": {"type": "string", "enum": ["IGST", "CGST_SGST"]},
            "igst_rate": {"type": "string"}, "cgst_rate": {"type": "string"}, "sgst_rate": {"type": "string"},
            "items": {"type": "array", "items": {"$ref": "#/definitions/dto.QuotationItemInput"}},
            "total_flat_discount": {"type": "string"}, "special_discount": {"type": "string"}}},
        "dto.SaveQuotationRequest": {"type": "object", "required": ["customer_name", "items"], "properties": {
            "tax_mode": {"type": "string", "enum": ["IGST", "CGST_SGST"]},
            "igst_rate": {"type": "string"}, "cgst_rate": {"type": "string"}, "sgst_rate": {"type": "string"},
            "lead_id": {"type": "string"}, "customer_name": {"type": "string"}, "customer_address": {"type": "string"},
            "customer_gstin": {"type": "string"}, "contact_person": {"type": "string"}, "contact_phone": {"type": "string"},
            "date": {"type": "string"}, "valid_until": {"type": "string"},
            "items": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/dto.QuotationItemInput"}},
            "total_flat_discount": {"type": "string"}, "special_discount": {"type": "string"}, "terms": {"type": "string"}}},
        "dto.QuotationItemResponse": {"type": "object", "properties": {
            "position": {"type": "integer"}, "product_code": {"type": "string"}, "description": {"type": "string"}, "unit": {"type": "string"},
            "quantity": {"type": "string"}, "rate": {"type": "string"}, "discount_percent": {"type": "string"},
            "gst_percent": {"type": "string"}, "amount": {"type": "string"}}},
        "quotation.Payload": {"type": "object", "properties": {
            "subtotal": {"type": "string"}, "total_flat_discount": {"type": "string"}, "taxable_amount": {"type": "string"},
            "tax_mode": {"type": "string"}, "igst_rate": {"type": "string"}, "igst_amount": {"type": "string"},
            "cgst_rate": {"type": "string"}, "cgst_amount": {"type": "string"}, "sgst_rate": {"type": "string"},
            "sgst_amount": {"type": "string"}, "special_discount": {"type": "string"}, "grand_total": {"type": "string"},
            "display_grand_total": {"type": "string"}}},
        "dto.PreviewQuotationResponse": {"type": "object", "properties": {
            "items": {"type": "array", "items": {"$ref": "#/definitions/dto.QuotationItemResponse"}},
            "totals": {"$ref": "#/definitions/quotation.Payload"},
            "grand_total_inr": {"type": "string"}, "amount_in_words": {"type": "string"}}},
        "dto.QuotationResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "number": {"type": "string"}, "lead_id": {"type": "string"},
            "customer_name": {"type": "string"}, "customer_address": {"type": "string"}, "customer_gstin": {"type": "string"},
            "contact_person": {"type": "string"}, "contact_phone": {"type": "string"},
            "date": {"type": "string"}, "valid_until": {"type": "string"},
            "items": {"type": "array", "items": {"$ref": "#/definitions/dto.QuotationItemResponse"}},
            "totals": {"$ref": "#/definitions/quotation.Payload"}, "amount_in_words": {"type": "string"},
            "terms": {"type": "string"}, "status": {"type": "string", "enum": ["DRAFT", "GENERATED", "PERSISTED"]},
            "document_url": {"type": "string"}, "created_by": {"type": "string"},
            "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "dto.QuotationSummary": {"type": "object", "properties": {
            "id": {"type": "string"}, "number": {"type": "string"}, "customer_name": {"type": "string"}, "date": {"type": "string"},
            "grand_total": {"type": "string"}, "status": {"type": "string"}, "document_url": {"type": "string"}}},
        "dto.QuotationListResponse": {"type": "object", "properties": {
            "items": {"type": "array", "items": {"$ref": "#/definitions/dto.QuotationSummary"}}, "page": {"$ref": "#/definitions/dto.PageResponse"}}},
        "dto.SavedDocumentResponse": {"type": "object", "properties": {
            "id": {"type": "string"}, "number": {"type": "string"}, "status": {"type": "string"}, "document_url": {"type": "string"}}}
    },
    "securityDefinitions": {
        "Bearer": {"description": "Bearer <token>", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo metadatos exportados de la API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "O2D Pipeline API",
	Description:      "Control de acceso del dashboard y cotizaciones lead-to-order con GST.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
