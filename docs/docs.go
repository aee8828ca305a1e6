// Package docs holds the Swagger 2.0 document for the catalog API and
// registers it with swag so the /swagger/ route can serve it. Keep it in
// step with the godoc annotations on the controllers.
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
        "/albums": {
            "get": {
                "description": "Albums in catalog order with their photo counts.",
                "produces": ["application/json"],
                "tags": ["albums"],
                "summary": "List albums",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListAlbumsSuccessResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates an empty album. Names are unique ignoring case.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["albums"],
                "summary": "Create an album",
                "parameters": [
                    {"description": "Album name", "name": "album", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.AlbumNameRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.AlbumSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: conflict", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/albums/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["albums"],
                "summary": "Get an album",
                "parameters": [
                    {"type": "string", "description": "Album name (case-insensitive)", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.AlbumSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Deletes the album and every photo in it.",
                "produces": ["application/json"],
                "tags": ["albums"],
                "summary": "Delete an album",
                "parameters": [
                    {"type": "string", "description": "Album name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "data.status: deleted", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "description": "Renaming to a name held by another album (ignoring case) is rejected. Changing only the case of the album's own name is allowed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["albums"],
                "summary": "Rename an album",
                "parameters": [
                    {"type": "string", "description": "Current album name", "name": "name", "in": "path", "required": true},
                    {"description": "New name", "name": "album", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.AlbumNameRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.AlbumSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "409": {"description": "error.code: conflict", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/albums/{name}/photos": {
            "get": {
                "description": "Photos in display order with their tags and positions.",
                "produces": ["application/json"],
                "tags": ["photos"],
                "summary": "List photos in an album",
                "parameters": [
                    {"type": "string", "description": "Album name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListPhotosSuccessResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Appends the photo. Returns 201 with changed=true when added, 200 with changed=false when the album already holds the reference.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["photos"],
                "summary": "Add a photo to an album",
                "parameters": [
                    {"type": "string", "description": "Album name", "name": "name", "in": "path", "required": true},
                    {"description": "Photo", "name": "photo", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.AddPhotoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ChangeSuccessResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.ChangeSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["photos"],
                "summary": "Remove a photo from an album",
                "parameters": [
                    {"type": "string", "description": "Album name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Resource reference", "name": "ref", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ChangeSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/albums/{name}/photos/content": {
            "get": {
                "description": "Streams the resource behind the photo's reference with its detected content type.",
                "produces": ["application/octet-stream"],
                "tags": ["photos"],
                "summary": "Photo bytes",
                "parameters": [
                    {"type": "string", "description": "Album name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Resource reference", "name": "ref", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "error.code: not_found (photo or resource)", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/albums/{name}/photos/detail": {
            "get": {
                "description": "The photo with its position and the neighbouring references, for previous/next navigation.",
                "produces": ["application/json"],
                "tags": ["photos"],
                "summary": "Get one photo",
                "parameters": [
                    {"type": "string", "description": "Album name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Resource reference", "name": "ref", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.PhotoSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/albums/{name}/photos/move": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Moves the photo with its tags to the end of the target album. changed=false when the target already holds the reference; nothing is modified then.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["photos"],
                "summary": "Move a photo to another album",
                "parameters": [
                    {"type": "string", "description": "Source album name", "name": "name", "in": "path", "required": true},
                    {"description": "Reference and target album", "name": "move", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.MovePhotoRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ChangeSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/albums/{name}/photos/tags": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Adds a person or location tag. changed=false when an equal tag (ignoring case) is already present.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "Tag a photo",
                "parameters": [
                    {"type": "string", "description": "Album name", "name": "name", "in": "path", "required": true},
                    {"description": "Tag", "name": "tag", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.TagRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ChangeSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["tags"],
                "summary": "Remove a tag from a photo",
                "parameters": [
                    {"type": "string", "description": "Album name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "description": "Resource reference", "name": "ref", "in": "query", "required": true},
                    {"type": "string", "description": "person or location", "name": "category", "in": "query", "required": true},
                    {"type": "string", "description": "Tag value", "name": "value", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ChangeSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "404": {"description": "error.code: not_found", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/catalog/reload": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Replaces the in-memory catalog with the persisted one. Unsaved changes are discarded; an absent or unreadable record gives an empty catalog.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Reload the catalog",
                "responses": {
                    "200": {"description": "data.status: reloaded", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/catalog/save": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Writes the whole catalog to the configured storage slot.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Save the catalog",
                "responses": {
                    "200": {"description": "data.status: saved", "schema": {"$ref": "#/definitions/helpers.APIResponse"}},
                    "500": {"description": "error.code: internal_error", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        },
        "/search": {
            "post": {
                "description": "Exact, case-insensitive tag matching across every album. Mode \"and\" requires every criterion, \"or\" any of them. Each photo reference is reported once, with the first album in catalog order that contains it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["search"],
                "summary": "Search photos by tag",
                "parameters": [
                    {"description": "Mode and criteria", "name": "query", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.SearchRequest"}},
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default 20, max 100)", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.SearchSuccessResponse"}},
                    "400": {"description": "error.code: bad_request", "schema": {"$ref": "#/definitions/helpers.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.AddPhotoRequest": {
            "type": "object",
            "properties": {
                "display_name": {"type": "string"},
                "resource_ref": {"type": "string"}
            }
        },
        "controllers.AlbumNameRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            }
        },
        "controllers.AlbumSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.AlbumSummary"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ChangeResponse": {
            "type": "object",
            "properties": {
                "changed": {"type": "boolean"}
            }
        },
        "controllers.ChangeSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/controllers.ChangeResponse"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListAlbumsResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.AlbumSummary"}},
                "pagination": {"$ref": "#/definitions/helpers.PaginationMeta"}
            }
        },
        "controllers.ListAlbumsSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/controllers.ListAlbumsResponse"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.ListPhotosSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/domain.PhotoDetail"}},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.MovePhotoRequest": {
            "type": "object",
            "properties": {
                "resource_ref": {"type": "string"},
                "target": {"type": "string"}
            }
        },
        "controllers.PhotoSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/domain.PhotoDetail"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.SearchRequest": {
            "type": "object",
            "properties": {
                "criteria": {"type": "array", "items": {"$ref": "#/definitions/domain.Criterion"}},
                "mode": {"type": "string", "example": "and"}
            }
        },
        "controllers.SearchResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.SearchHit"}},
                "mode": {"type": "string"},
                "pagination": {"$ref": "#/definitions/helpers.PaginationMeta"}
            }
        },
        "controllers.SearchSuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/controllers.SearchResponse"},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "controllers.TagRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "resource_ref": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "domain.AlbumSummary": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "photo_count": {"type": "integer"}
            }
        },
        "domain.Criterion": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "enum": ["person", "location"]},
                "value": {"type": "string"}
            }
        },
        "domain.PhotoDetail": {
            "type": "object",
            "properties": {
                "display_name": {"type": "string"},
                "next": {"type": "string"},
                "position": {"type": "integer"},
                "previous": {"type": "string"},
                "resource_ref": {"type": "string"},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/domain.Tag"}}
            }
        },
        "domain.SearchHit": {
            "type": "object",
            "properties": {
                "album_name": {"type": "string"},
                "photo": {"$ref": "#/definitions/domain.PhotoDetail"}
            }
        },
        "domain.Tag": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "enum": ["person", "location"]},
                "value": {"type": "string"}
            }
        },
        "helpers.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/helpers.APIError"}
            }
        },
        "helpers.PaginationMeta": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and a catalog write token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Photo Catalog API",
	Description:      "Albums of tagged photo references, persisted as one catalog record, with tag search.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
