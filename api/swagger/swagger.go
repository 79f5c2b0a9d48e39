package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Gender & Youth Department API",
        "description": "CRUD backend for department events, courses and timetable slots",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Health", "description": "Liveness, diagnostics and schema introspection"},
        {"name": "Events", "description": "Department events"},
        {"name": "Courses", "description": "Courses per semester"},
        {"name": "Timetable", "description": "Semester timetable slots"},
        {"name": "Export", "description": "CSV/PDF downloads"}
    ],
    "paths": {
        "/": {
            "get": {
                "tags": ["Health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/test": {
            "get": {
                "tags": ["Health"],
                "summary": "Store connectivity diagnostic",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DiagnosticReport"}}
                }
            }
        },
        "/schema": {
            "get": {
                "tags": ["Health"],
                "summary": "JSON Schema for every entity",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/events": {
            "get": {
                "tags": ["Events"],
                "summary": "List events",
                "parameters": [
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Event"}}},
                    "500": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Event"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Event"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/events/{id}": {
            "put": {
                "tags": ["Events"],
                "summary": "Partially update event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Event"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Event"}},
                    "400": {"description": "Invalid id or empty payload", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Delete event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessFlag"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "parameters": [
                    {"name": "semester", "in": "query", "type": "string", "enum": ["Fall", "Spring", "Summer"]},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Course"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Course"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/courses/{id}": {
            "put": {
                "tags": ["Courses"],
                "summary": "Partially update course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Course"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Course"}},
                    "400": {"description": "Invalid id or empty payload", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessFlag"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/courses/export": {
            "get": {
                "tags": ["Export"],
                "summary": "Download courses as CSV or PDF",
                "parameters": [
                    {"name": "semester", "in": "query", "type": "string"},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/api/timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "List timetable slots",
                "parameters": [
                    {"name": "semester", "in": "query", "type": "string", "enum": ["Fall", "Spring", "Summer"]},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "day", "in": "query", "type": "string"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/TimetableSlot"}}}
                }
            },
            "post": {
                "tags": ["Timetable"],
                "summary": "Create timetable slot",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TimetableSlot"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TimetableSlot"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/timetable/{id}": {
            "put": {
                "tags": ["Timetable"],
                "summary": "Partially update timetable slot",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TimetableSlot"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TimetableSlot"}},
                    "400": {"description": "Invalid id or empty payload", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Timetable"],
                "summary": "Delete timetable slot",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SuccessFlag"}},
                    "400": {"description": "Invalid id", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/timetable/export": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the timetable as CSV or PDF",
                "parameters": [
                    {"name": "semester", "in": "query", "type": "string"},
                    {"name": "year", "in": "query", "type": "integer"},
                    {"name": "day", "in": "query", "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "Event": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "date": {"type": "string", "format": "date"},
                "time": {"type": "string"},
                "location": {"type": "string"},
                "audience": {"type": "string"},
                "link": {"type": "string"},
                "updated_at": {"type": "string", "format": "date-time"}
            },
            "required": ["title", "date"]
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "code": {"type": "string"},
                "title": {"type": "string"},
                "semester": {"type": "string", "enum": ["Fall", "Spring", "Summer"]},
                "year": {"type": "integer", "minimum": 2000, "maximum": 2100},
                "lecturer": {"type": "string"},
                "credits": {"type": "integer", "minimum": 0, "maximum": 30, "default": 3},
                "description": {"type": "string"},
                "updated_at": {"type": "string", "format": "date-time"}
            },
            "required": ["code", "title", "semester", "year"]
        },
        "TimetableSlot": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "semester": {"type": "string", "enum": ["Fall", "Spring", "Summer"]},
                "year": {"type": "integer", "minimum": 2000, "maximum": 2100},
                "day": {"type": "string", "enum": ["Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"]},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"},
                "course_code": {"type": "string"},
                "venue": {"type": "string"},
                "lecturer": {"type": "string"},
                "notes": {"type": "string"},
                "updated_at": {"type": "string", "format": "date-time"}
            },
            "required": ["semester", "year", "day", "start_time", "end_time", "course_code"]
        },
        "DiagnosticReport": {
            "type": "object",
            "properties": {
                "backend": {"type": "string"},
                "database": {"type": "string"},
                "database_url_set": {"type": "boolean"},
                "database_name_set": {"type": "boolean"},
                "connection_status": {"type": "string"},
                "collections": {"type": "array", "items": {"type": "string"}}
            }
        },
        "SuccessFlag": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
