// Package docs registra el documento OpenAPI que sirve /swagger/doc.json.
// Se mantiene a mano junto con las anotaciones de los handlers.
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
        "/pet": {
            "get": {
                "description": "Devuelve la mascota de la sesión con su estado derivado (alive/dead).",
                "produces": ["application/json"],
                "tags": ["pet"],
                "summary": "Ver mascota",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}}
                }
            },
            "patch": {
                "description": "El nombre es texto libre, sin validación de formato.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pet"],
                "summary": "Renombrar mascota",
                "parameters": [
                    {"description": "Nuevo nombre", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.renameRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}}
                }
            }
        },
        "/pet/activity": {
            "get": {
                "description": "Lista las acciones aplicadas en la sesión, más reciente primero, con los valores de la mascota después de cada una. Vive solo en memoria.",
                "produces": ["application/json"],
                "tags": ["activity"],
                "summary": "Historial de acciones",
                "parameters": [
                    {"type": "integer", "description": "Máximo de entradas (> 0, se recorta a 200). Por defecto 50", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Lista CSV de acciones a incluir (ej: feed,walk)", "name": "actions", "in": "query"},
                    {"type": "string", "description": "Fecha/hora mínima (RFC3339)", "name": "from", "in": "query"},
                    {"type": "string", "description": "Fecha/hora máxima (RFC3339)", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/activity.entryResponse"}}},
                    "400": {"description": "Parámetros de filtro inválidos", "schema": {"type": "string"}},
                    "500": {"description": "internal error", "schema": {"type": "string"}}
                }
            }
        },
        "/pet/children": {
            "post": {
                "description": "Agrega un nombre al final de la lista de hijos. Sin deduplicar ni límite.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pet"],
                "summary": "Adoptar hijo",
                "parameters": [
                    {"description": "Nombre del hijo", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.adoptChildRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "400": {"description": "invalid json / name required", "schema": {"type": "string"}}
                }
            }
        },
        "/pet/have-child": {
            "post": {
                "description": "Con age >= 10 reemplaza la mascota por una nueva por defecto que adopta a los hijos previos y, al final, a la mascota anterior.",
                "produces": ["application/json"],
                "tags": ["pet"],
                "summary": "Tener hijo (transición generacional)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}},
                    "409": {"description": "pet too young", "schema": {"type": "string"}}
                }
            }
        },
        "/pet/{action}": {
            "post": {
                "description": "feed baja hunger 3 (piso 0), walk sube fitness 3 (tope 10), grow-up suma edad y hambre y resta fitness, reset vuelve a los valores por defecto.",
                "produces": ["application/json"],
                "tags": ["pet"],
                "summary": "Acción simple sobre la mascota",
                "parameters": [
                    {"enum": ["feed", "walk", "grow-up", "reset"], "type": "string", "description": "Acción", "name": "action", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.petResponse"}}
                }
            }
        }
    },
    "definitions": {
        "activity.entryResponse": {
            "type": "object",
            "properties": {
                "action": {"type": "string", "enum": ["feed", "walk", "grow_up", "rename", "adopt_child", "reset", "have_child"]},
                "age": {"type": "integer"},
                "alive": {"type": "boolean"},
                "fitness": {"type": "integer"},
                "hunger": {"type": "integer"},
                "id": {"type": "string"},
                "occurred_at": {"type": "string"},
                "pet_name": {"type": "string"}
            }
        },
        "pets.adoptChildRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            }
        },
        "pets.petResponse": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "alive": {"type": "boolean"},
                "can_have_child": {"type": "boolean"},
                "children": {"type": "array", "items": {"type": "string"}},
                "fitness": {"type": "integer"},
                "hunger": {"type": "integer"},
                "name": {"type": "string"},
                "state": {"type": "string", "enum": ["alive", "dead"]},
                "status": {"type": "string"}
            }
        },
        "pets.renameRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo expone los metadatos del documento; cmd/api no los modifica.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "virtual-pet API",
	Description:      "Shell HTTP de la mascota virtual: acciones, estado derivado e historial de la sesión.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
