// Package docs registers the OpenAPI document served under /swagger. It is
// maintained by hand alongside the route table.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/quotes/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Generate an AI quote for the public request form",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.QuoteFormRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/entities.GeneratedQuote"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/quotes": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "List the caller's quotes, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.QuoteListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Store a generated quote for the caller",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.ProposeQuoteRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.QuoteEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/quotes/{quote_id}": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Get a quote",
                "parameters": [{"type": "string", "name": "quote_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.QuoteEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/quotes/{quote_id}/feedback": {
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Set or clear the owner's feedback",
                "parameters": [
                    {"type": "string", "name": "quote_id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "schema": {"$ref": "#/definitions/request.FeedbackRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.QuoteEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/quotes/{quote_id}/request-call": {
            "post": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["quotes"],
                "summary": "Request a call about an answered quote",
                "parameters": [{"type": "string", "name": "quote_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.RequestCallResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/profile/data": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Profile and businesses of the caller",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ProfileDataResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/overview": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "All quotes, profiles and businesses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.AdminOverviewResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/quotes/{quote_id}/feedback": {
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Set or clear admin feedback",
                "parameters": [
                    {"type": "string", "name": "quote_id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "schema": {"$ref": "#/definitions/request.FeedbackRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.QuoteEnvelope"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/quotes/{quote_id}/status": {
            "patch": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Set a quote status",
                "parameters": [
                    {"type": "string", "name": "quote_id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/request.StatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.QuoteEnvelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/admin/quotes/{quote_id}/activities": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Activity trail of a quote, newest first",
                "parameters": [{"type": "string", "name": "quote_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ActivityListResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true}
            }
        },
        "request.QuoteFormRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "websiteNeeds": {"type": "string"},
                "collaborationPreferences": {"type": "string"},
                "budget": {"type": "string"}
            }
        },
        "request.ProposeQuoteRequest": {
            "type": "object",
            "properties": {
                "formValues": {"$ref": "#/definitions/request.QuoteFormRequest"},
                "aiResult": {"$ref": "#/definitions/entities.GeneratedQuote"}
            }
        },
        "request.FeedbackRequest": {
            "type": "object",
            "properties": {"feedback": {"type": "string", "x-nullable": true}}
        },
        "request.StatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": ["draft", "pending", "under_review", "accepted", "rejected", "call_requested", "project_created"]
                }
            }
        },
        "entities.GeneratedQuote": {
            "type": "object",
            "properties": {
                "projectTitle": {"type": "string"},
                "projectSummary": {"type": "string"},
                "quote": {"type": "string"},
                "suggestedCollaboration": {"type": "string"},
                "estimatedCost": {"type": "number", "x-nullable": true},
                "currency": {"type": "string"},
                "suggestions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "response.QuoteResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "business_id": {"type": "string", "x-nullable": true},
                "title": {"type": "string"},
                "summary": {"type": "string"},
                "website_needs": {"type": "string"},
                "collaboration_preferences": {"type": "string"},
                "budget_range": {"type": "string"},
                "ai_quote": {"type": "string"},
                "suggested_collaboration": {"type": "string"},
                "ai_suggestions": {"type": "array", "items": {"type": "string"}},
                "estimated_cost": {"type": "number", "x-nullable": true},
                "currency": {"type": "string"},
                "status": {"type": "string"},
                "status_label": {"type": "string"},
                "admin_feedback": {"type": "string", "x-nullable": true},
                "user_feedback": {"type": "string", "x-nullable": true},
                "can_request_call": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "response.QuoteEnvelope": {
            "type": "object",
            "properties": {"quote": {"$ref": "#/definitions/response.QuoteResponse"}}
        },
        "response.QuoteListResponse": {
            "type": "object",
            "properties": {"quotes": {"type": "array", "items": {"$ref": "#/definitions/response.QuoteResponse"}}}
        },
        "response.RequestCallResponse": {
            "type": "object",
            "properties": {
                "quote": {"$ref": "#/definitions/response.QuoteResponse"},
                "message": {"type": "string"}
            }
        },
        "response.ProfileResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "clerk_user_id": {"type": "string"},
                "email": {"type": "string"},
                "full_name": {"type": "string"},
                "phone": {"type": "string"},
                "role": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "response.ProfileDataResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "role": {"type": "string"},
                "profile": {"$ref": "#/definitions/response.ProfileResponse"},
                "businesses": {"type": "array", "items": {"type": "object"}}
            }
        },
        "response.AdminOverviewResponse": {
            "type": "object",
            "properties": {
                "quotes": {"type": "array", "items": {"$ref": "#/definitions/response.QuoteResponse"}},
                "profiles": {"type": "array", "items": {"$ref": "#/definitions/response.ProfileResponse"}},
                "businesses": {"type": "array", "items": {"type": "object"}}
            }
        },
        "response.ActivityListResponse": {
            "type": "object",
            "properties": {"activities": {"type": "array", "items": {"type": "object"}}}
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Webara Portal API",
	Description:      "Quote lifecycle engine for the Webara client portal, backed by DynamoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
