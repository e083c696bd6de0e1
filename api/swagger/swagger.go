package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "tags": [
        {"name": "Kalender", "description": "Gregorian, Hijri, Javanese and Chinese calendar views"},
        {"name": "Ops", "description": "Health and metrics"}
    ],
    "paths": {
        "/": {
            "get": {
                "tags": ["Kalender"],
                "summary": "Service banner",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["Ops"],
                "summary": "Liveness probe",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/kalender/{year}/{month}": {
            "get": {
                "tags": ["Kalender"],
                "summary": "Multi-calendar view of one Gregorian month",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "year", "in": "path", "required": true, "type": "integer", "minimum": 1, "maximum": 9999},
                    {"name": "month", "in": "path", "required": true, "type": "integer", "minimum": 1, "maximum": 12},
                    {"name": "lang", "in": "query", "required": false, "type": "string", "enum": ["id", "en"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/KalenderResponse"}},
                    "400": {"description": "Invalid year or month", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "429": {"description": "Rate limited", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/kalender/{year}/{month}/export": {
            "get": {
                "tags": ["Kalender"],
                "summary": "Download one month as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "year", "in": "path", "required": true, "type": "integer", "minimum": 1, "maximum": 9999},
                    {"name": "month", "in": "path", "required": true, "type": "integer", "minimum": 1, "maximum": 12},
                    {"name": "format", "in": "query", "required": false, "type": "string", "enum": ["csv", "pdf"], "default": "csv"},
                    {"name": "lang", "in": "query", "required": false, "type": "string", "enum": ["id", "en"]}
                ],
                "responses": {
                    "200": {"description": "Attachment kalender-YYYY-MM.csv or .pdf", "schema": {"type": "file"}},
                    "400": {"description": "Invalid range or format", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Export disabled", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": ["Ops"],
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "MasehiDate": {
            "type": "object",
            "properties": {
                "tanggal": {"type": "integer"},
                "hari": {"type": "string"},
                "bulan": {"type": "string"},
                "tahun": {"type": "integer"}
            }
        },
        "HijriyahDate": {
            "type": "object",
            "properties": {
                "tanggal": {"type": "integer", "x-nullable": true},
                "bulan": {"type": "string", "x-nullable": true},
                "tahun": {"type": "integer", "x-nullable": true}
            }
        },
        "JawaDate": {
            "type": "object",
            "properties": {
                "tanggal": {"type": "integer"},
                "pasaran": {"type": "string", "enum": ["Legi", "Pahing", "Pon", "Wage", "Kliwon"]},
                "bulan": {"type": "string"},
                "tahun": {"type": "integer"}
            }
        },
        "ChinaDate": {
            "type": "object",
            "properties": {
                "tanggal": {"type": "string", "x-nullable": true},
                "bulan": {"type": "string", "x-nullable": true},
                "tahun": {"type": "integer", "x-nullable": true}
            }
        },
        "DayRecord": {
            "type": "object",
            "properties": {
                "masehi": {"$ref": "#/definitions/MasehiDate"},
                "hijriyah": {"$ref": "#/definitions/HijriyahDate"},
                "jawa": {"$ref": "#/definitions/JawaDate"},
                "china": {"$ref": "#/definitions/ChinaDate"},
                "libur": {"type": "string", "x-nullable": true}
            }
        },
        "KalenderResponse": {
            "type": "object",
            "properties": {
                "kalender": {"type": "array", "items": {"$ref": "#/definitions/DayRecord"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Kalender API",
	Description:      "Gregorian months annotated with Hijri, Javanese and Chinese lunar dates plus Indonesian public holidays.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
