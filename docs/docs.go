// Package docs registers the OpenAPI document of the readings service with swag.
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
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/devices/{device_uuid}/readings/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["readings"],
                "summary": "List readings",
                "parameters": [
                    {"$ref": "#/parameters/device_uuid"},
                    {"type": "string", "description": "Sensor type", "name": "type", "in": "query", "enum": ["temperature", "humidity"]},
                    {"type": "integer", "description": "Earliest date_created (epoch seconds, inclusive)", "name": "start", "in": "query"},
                    {"type": "integer", "description": "Latest date_created (epoch seconds, inclusive)", "name": "end", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Reading"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["readings"],
                "summary": "Record a reading",
                "parameters": [
                    {"$ref": "#/parameters/device_uuid"},
                    {"description": "Reading", "name": "reading", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ReadingInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Reading"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/devices/{device_uuid}/readings/min/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["statistics"],
                "summary": "Minimum reading",
                "parameters": [
                    {"$ref": "#/parameters/device_uuid"},
                    {"$ref": "#/parameters/type"},
                    {"$ref": "#/parameters/start"},
                    {"$ref": "#/parameters/end"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StatisticResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/devices/{device_uuid}/readings/max/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["statistics"],
                "summary": "Maximum reading",
                "parameters": [
                    {"$ref": "#/parameters/device_uuid"},
                    {"$ref": "#/parameters/type"},
                    {"$ref": "#/parameters/start"},
                    {"$ref": "#/parameters/end"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StatisticResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/devices/{device_uuid}/readings/median/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["statistics"],
                "summary": "Median reading",
                "parameters": [
                    {"$ref": "#/parameters/device_uuid"},
                    {"$ref": "#/parameters/type"},
                    {"$ref": "#/parameters/start"},
                    {"$ref": "#/parameters/end"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StatisticResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/devices/{device_uuid}/readings/mean/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["statistics"],
                "summary": "Mean reading",
                "parameters": [
                    {"$ref": "#/parameters/device_uuid"},
                    {"$ref": "#/parameters/type"},
                    {"$ref": "#/parameters/start"},
                    {"$ref": "#/parameters/end"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StatisticResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/devices/{device_uuid}/readings/mode/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["statistics"],
                "summary": "Mode of readings, null unless unique",
                "parameters": [
                    {"$ref": "#/parameters/device_uuid"},
                    {"$ref": "#/parameters/type"},
                    {"$ref": "#/parameters/start"},
                    {"$ref": "#/parameters/end"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StatisticResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        },
        "/devices/{device_uuid}/readings/quartiles/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["statistics"],
                "summary": "First and third quartile",
                "description": "Quartiles are linearly interpolated between order statistics and returned as JSON numbers with a fractional part (62.5), not truncated to integers.",
                "parameters": [
                    {"$ref": "#/parameters/device_uuid"},
                    {"$ref": "#/parameters/type"},
                    {"type": "integer", "description": "Start (epoch seconds)", "name": "start", "in": "query", "required": true},
                    {"type": "integer", "description": "End (epoch seconds)", "name": "end", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.QuartileResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.APIError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.APIError"}}
                }
            }
        }
    },
    "parameters": {
        "device_uuid": {"type": "string", "description": "Device UUID", "name": "device_uuid", "in": "path", "required": true},
        "type": {"type": "string", "description": "Sensor type", "name": "type", "in": "query", "required": true, "enum": ["temperature", "humidity"]},
        "start": {"type": "integer", "description": "Start (epoch seconds, inclusive)", "name": "start", "in": "query"},
        "end": {"type": "integer", "description": "End (epoch seconds, inclusive)", "name": "end", "in": "query"}
    },
    "definitions": {
        "errors.APIError": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "message": {"type": "string"},
                "code": {"type": "integer"},
                "request_id": {"type": "string"},
                "details": {}
            }
        },
        "models.Reading": {
            "type": "object",
            "properties": {
                "device_uuid": {"type": "string"},
                "type": {"type": "string", "enum": ["temperature", "humidity"]},
                "value": {"type": "integer", "minimum": 0, "maximum": 100},
                "date_created": {"type": "integer"}
            }
        },
        "models.ReadingInput": {
            "type": "object",
            "required": ["type", "value"],
            "properties": {
                "type": {"type": "string", "enum": ["temperature", "humidity"]},
                "value": {"type": "integer", "minimum": 0, "maximum": 100},
                "date_created": {"type": "integer"}
            }
        },
        "models.StatisticResult": {
            "type": "object",
            "properties": {
                "device_uuid": {"type": "string"},
                "device_type": {"type": "string"},
                "value": {"type": "number", "x-nullable": true}
            }
        },
        "models.QuartileResult": {
            "type": "object",
            "properties": {
                "device_uuid": {"type": "string"},
                "device_type": {"type": "string"},
                "first_quartile": {"type": "number"},
                "third_quartile": {"type": "number"}
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
	Title:            "Device Readings API",
	Description:      "Records IoT sensor readings per device and answers descriptive statistics over them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
