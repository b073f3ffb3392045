// Package apidocs registers the OpenAPI document served at /swagger/.
// The document is maintained by hand; keep it in step with the handler
// annotations when routes or response types change.
package apidocs

import (
	"github.com/swaggo/swag"

	"github.com/HerbHall/distrofinder/internal/version"
)

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {"name": "MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/catalog/distros": {
            "get": {
                "description": "Returns distros whose name or subtitle contains q (case-insensitive) and that carry the given category, in catalog order. When nothing matches and q is set, fuzzy name suggestions are included.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Browse distros",
                "parameters": [
                    {"type": "string", "description": "Free-text search", "name": "q", "in": "query"},
                    {"type": "string", "default": "all", "description": "Category tag, or 'all'", "name": "category", "in": "query"},
                    {"type": "string", "description": "Locale (pt, en, es)", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.DistroListResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.Problem"}}
                }
            }
        },
        "/catalog/distros/{id}": {
            "get": {
                "description": "Returns one distro record with text resolved for the requested locale.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get a distro",
                "parameters": [
                    {"type": "string", "description": "Distro ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Locale (pt, en, es)", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.DistroView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/server.Problem"}}
                }
            }
        },
        "/catalog/match": {
            "get": {
                "description": "Narrows the catalog by every axis not set to 'any'. Never returns an empty list: when nothing matches, the catalog default is returned with fallback=true.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Match distros to a questionnaire",
                "parameters": [
                    {"type": "string", "default": "any", "description": "Processor tier option ID", "name": "processor", "in": "query"},
                    {"type": "string", "default": "any", "description": "Memory tier option ID", "name": "memory", "in": "query"},
                    {"type": "string", "default": "any", "description": "Experience option ID", "name": "experience", "in": "query"},
                    {"type": "string", "default": "any", "description": "Objective option ID", "name": "objective", "in": "query"},
                    {"type": "string", "default": "any", "description": "Graphics tier option ID", "name": "graphics", "in": "query"},
                    {"type": "string", "description": "Locale (pt, en, es)", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.MatchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.Problem"}}
                }
            }
        },
        "/catalog/categories": {
            "get": {
                "description": "Returns the 'all' sentinel followed by every category tag, with labels for the requested locale.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List categories",
                "parameters": [
                    {"type": "string", "description": "Locale (pt, en, es)", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.CategoriesResponse"}}
                }
            }
        },
        "/catalog/questionnaire": {
            "get": {
                "description": "Returns every axis with its options in display order, the 'any' sentinel first.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Describe the questionnaire",
                "parameters": [
                    {"type": "string", "description": "Locale (pt, en, es)", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/catalog.QuestionnaireResponse"}}
                }
            }
        }
    },
    "definitions": {
        "catalog.CategoryLabel": {
            "type": "object",
            "properties": {"tag": {"type": "string"}, "label": {"type": "string"}}
        },
        "catalog.Requirements": {
            "type": "object",
            "properties": {
                "processor": {"type": "array", "items": {"type": "string"}},
                "memory": {"type": "array", "items": {"type": "string"}},
                "graphics": {"type": "array", "items": {"type": "string"}}
            }
        },
        "catalog.DistroView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "subtitle": {"type": "string"},
                "description": {"type": "string"},
                "logo": {"type": "string"},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/catalog.CategoryLabel"}},
                "requirements": {"$ref": "#/definitions/catalog.Requirements"},
                "experience": {"type": "array", "items": {"type": "string"}},
                "objectives": {"type": "array", "items": {"type": "string"}}
            }
        },
        "catalog.Query": {
            "type": "object",
            "properties": {"text": {"type": "string"}, "category": {"type": "string"}}
        },
        "catalog.Answer": {
            "type": "object",
            "properties": {
                "processor": {"type": "string"},
                "memory": {"type": "string"},
                "experience": {"type": "string"},
                "objective": {"type": "string"},
                "graphics": {"type": "string"}
            }
        },
        "catalog.SuggestionView": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}}
        },
        "catalog.DistroListResponse": {
            "type": "object",
            "properties": {
                "locale": {"type": "string"},
                "query": {"$ref": "#/definitions/catalog.Query"},
                "count": {"type": "integer"},
                "distros": {"type": "array", "items": {"$ref": "#/definitions/catalog.DistroView"}},
                "suggestions": {"type": "array", "items": {"$ref": "#/definitions/catalog.SuggestionView"}}
            }
        },
        "catalog.MatchResponse": {
            "type": "object",
            "properties": {
                "locale": {"type": "string"},
                "answer": {"$ref": "#/definitions/catalog.Answer"},
                "fallback": {"type": "boolean"},
                "count": {"type": "integer"},
                "distros": {"type": "array", "items": {"$ref": "#/definitions/catalog.DistroView"}}
            }
        },
        "catalog.CategoriesResponse": {
            "type": "object",
            "properties": {
                "locale": {"type": "string"},
                "version": {"type": "integer"},
                "categories": {"type": "array", "items": {"$ref": "#/definitions/catalog.CategoryLabel"}}
            }
        },
        "catalog.OptionView": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "label": {"type": "string"}}
        },
        "catalog.AxisView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "label": {"type": "string"},
                "ordinal": {"type": "boolean"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/catalog.OptionView"}}
            }
        },
        "catalog.QuestionnaireResponse": {
            "type": "object",
            "properties": {
                "locale": {"type": "string"},
                "version": {"type": "integer"},
                "axes": {"type": "array", "items": {"$ref": "#/definitions/catalog.AxisView"}}
            }
        },
        "server.Problem": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "title": {"type": "string"},
                "status": {"type": "integer"},
                "detail": {"type": "string"},
                "instance": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "dev",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "DistroFinder API",
	Description:      "Read-only catalog of Linux distributions with a browse filter and a hardware questionnaire.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	SwaggerInfo.Version = version.Short()
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
