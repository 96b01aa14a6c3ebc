// Package docs registers the OpenAPI document served under /swagger. It is
// maintained by hand next to the handler annotations in api/http/handlers.
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
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/resume/analyze": {
            "post": {
                "description": "Accepts a PDF, DOCX, PNG, JPEG or TIFF resume, extracts its text and returns categorized skills and certifications.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["resume"],
                "summary": "Analyze an uploaded resume",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Resume file (.pdf .docx .png .jpg .jpeg .tif .tiff)",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/resume.Analysis"}},
                    "400": {"description": "Missing file or unsupported format", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "422": {"description": "No text found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "429": {"description": "OCR busy", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal error", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "502": {"description": "Document content not accessible", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "503": {"description": "OCR unavailable", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/resume/analyze-text": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["resume"],
                "summary": "Analyze resume text",
                "parameters": [
                    {
                        "description": "Resume text",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.AnalyzeTextRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/resume.Analysis"}},
                    "400": {"description": "Invalid body or empty text", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "413": {"description": "Text too large", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.AnalyzeTextRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}}
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "ocr.Confidence": {
            "type": "object",
            "properties": {
                "average": {"type": "number"},
                "count": {"type": "integer"},
                "max": {"type": "number"},
                "min": {"type": "number"}
            }
        },
        "ocr.Info": {
            "type": "object",
            "properties": {
                "confidence": {"$ref": "#/definitions/ocr.Confidence"},
                "format": {"type": "string"},
                "height": {"type": "integer"},
                "lines": {"type": "integer"},
                "pages": {"type": "integer"},
                "width": {"type": "integer"},
                "words": {"type": "integer"}
            }
        },
        "certification.Detail": {
            "type": "object",
            "properties": {
                "certification": {"type": "string"},
                "date": {"type": "string"},
                "issuing_organization": {"type": "string"}
            }
        },
        "certification.Summary": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}},
                "certification_count_by_category": {"type": "object", "additionalProperties": {"type": "integer"}},
                "top_certifications": {"type": "array", "items": {"type": "string"}},
                "total_certifications_found": {"type": "integer"}
            }
        },
        "skill.Summary": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}},
                "skill_count_by_category": {"type": "object", "additionalProperties": {"type": "integer"}},
                "top_skills": {"type": "array", "items": {"type": "string"}},
                "total_skills_found": {"type": "integer"}
            }
        },
        "resume.Analysis": {
            "type": "object",
            "properties": {
                "certification_details": {"type": "array", "items": {"$ref": "#/definitions/certification.Detail"}},
                "certifications": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "certifications_summary": {"$ref": "#/definitions/certification.Summary"},
                "checksum": {"type": "string"},
                "content_length": {"type": "integer"},
                "created_at": {"type": "string"},
                "document_info": {"$ref": "#/definitions/ocr.Info"},
                "extraction_method": {"type": "string"},
                "filename": {"type": "string"},
                "id": {"type": "string"},
                "skills": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "skills_summary": {"$ref": "#/definitions/skill.Summary"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "resume-analyzer API",
	Description:      "Extracts skills and professional certifications from uploaded resumes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
