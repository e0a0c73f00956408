// Package docs registers the OpenAPI document served under /swagger.
// Keep it in line with the swag annotations on the router handlers.
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
        "/": {
            "get": {
                "description": "Lists published recipes, newest first, with the page links around the current page",
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Published recipes",
                "parameters": [
                    {"type": "string", "description": "Page number; invalid values fall back to 1", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/recipes.ListView"}}
                }
            }
        },
        "/recipes/search/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Search recipes",
                "parameters": [
                    {"type": "string", "description": "Search term", "name": "q", "in": "query", "required": true},
                    {"type": "string", "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/recipes.ListView"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/recipes/category/{category_id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Recipes of a category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "category_id", "in": "path", "required": true},
                    {"type": "string", "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/recipes.ListView"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/recipes/tags/{slug}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Recipes with a tag",
                "parameters": [
                    {"type": "string", "description": "Tag slug", "name": "slug", "in": "path", "required": true},
                    {"type": "string", "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/recipes.ListView"}}
                }
            }
        },
        "/recipes/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Recipe detail",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Recipe"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/recipes/api/v1/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["api-v1"],
                "summary": "Current page of recipes",
                "parameters": [
                    {"type": "string", "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Recipe"}}}
                }
            }
        },
        "/recipes/api/v1/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["api-v1"],
                "summary": "Recipe detail",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RecipeV1"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/recipes/api/v2/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["api-v2"],
                "summary": "List recipes",
                "parameters": [
                    {"type": "string", "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PageEnvelope-dto_Recipe"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["api-v2"],
                "summary": "Create a recipe",
                "parameters": [
                    {"description": "Recipe", "name": "recipe", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.RecipePatch"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.Recipe"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/recipes/api/v2/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["api-v2"],
                "summary": "Get a recipe",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Recipe"}},
                    "404": {"description": "Not Found"}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["api-v2"],
                "summary": "Partially update a recipe",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "recipe", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.RecipePatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Recipe"}},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["api-v2"],
                "summary": "Delete a recipe",
                "parameters": [
                    {"type": "integer", "description": "Recipe ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/recipes/api/v2/tag/{id}/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["api-v2"],
                "summary": "Get a tag",
                "parameters": [
                    {"type": "integer", "description": "Tag ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.Tag"}},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "domain.Recipe": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "slug": {"type": "string"},
                "preparation_time": {"type": "integer"},
                "preparation_time_unit": {"type": "string"},
                "servings": {"type": "integer"},
                "servings_unit": {"type": "string"},
                "preparation_steps": {"type": "string"},
                "is_published": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.RecipePatch": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "preparation_time": {"type": "integer"},
                "preparation_time_unit": {"type": "string"},
                "servings": {"type": "integer"},
                "servings_unit": {"type": "string"},
                "preparation_steps": {"type": "string"},
                "cover": {"type": "string"},
                "public": {"type": "boolean"},
                "category_id": {"type": "integer"},
                "author_id": {"type": "integer"},
                "tag_ids": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "dto.Recipe": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "public": {"type": "boolean"},
                "preparation": {"type": "string"},
                "category": {"type": "string"},
                "author": {"type": "integer"},
                "tags": {"type": "array", "items": {"type": "integer"}},
                "tag_objects": {"type": "array", "items": {"$ref": "#/definitions/dto.Tag"}},
                "tag_links": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.RecipeV1": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "slug": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "category": {"type": "integer"},
                "author": {"type": "integer"},
                "tags": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "dto.Tag": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "dto.PageEnvelope-dto_Recipe": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "next": {"type": "string"},
                "previous": {"type": "string"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/dto.Recipe"}}
            }
        },
        "recipes.ListView": {
            "type": "object",
            "properties": {
                "recipes": {"type": "object"},
                "pagination_range": {
                    "type": "object",
                    "properties": {
                        "page_range": {"type": "array", "items": {"type": "integer"}},
                        "current_page": {"type": "integer"},
                        "total_pages": {"type": "integer"},
                        "first_page": {"type": "integer"},
                        "last_page": {"type": "integer"}
                    }
                },
                "page_title": {"type": "string"},
                "search_term": {"type": "string"},
                "additional_url_query": {"type": "string"}
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
	Title:            "Recipes API",
	Description:      "Published recipes, paginated for listing pages and for the REST API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
