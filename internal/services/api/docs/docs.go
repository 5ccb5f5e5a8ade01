// Package docs holds the OpenAPI document of the tirefit API registered with swag
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/fitment/validate": {
            "post": {
                "tags": ["Fitment"],
                "summary": "Validate a tire size against the domain bounds",
                "operationId": "fitmentValidate",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SizeInput"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ValidateResponse"}}}}}
            }
        },
        "/fitment/diameter": {
            "post": {
                "tags": ["Fitment"],
                "summary": "Rolling diameter and geometry of a size",
                "operationId": "fitmentDiameter",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SizeInput"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Geometry"}}}}}
            }
        },
        "/fitment/alternatives": {
            "post": {
                "tags": ["Fitment"],
                "summary": "Alternative sizes within the diameter tolerance, best first",
                "operationId": "fitmentAlternatives",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/AlternativesRequest"}}}},
                "responses": {
                    "200": {
                        "description": "ok",
                        "headers": {"X-Fitment-Key": {"description": "result key", "schema": {"type": "string"}}},
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/AlternativesResponse"}}}
                    }
                }
            }
        },
        "/fitment/impact": {
            "post": {
                "tags": ["Fitment"],
                "summary": "Speedometer impact of a diameter change",
                "operationId": "fitmentImpact",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ImpactRequest"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ImpactResponse"}}}}}
            }
        },
        "/fitment/compare": {
            "post": {
                "tags": ["Fitment"],
                "summary": "Side by side comparison of two sizes",
                "operationId": "fitmentCompare",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/CompareRequest"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Comparison"}}}}}
            }
        },
        "/fitment/sizes/{label}": {
            "get": {
                "tags": ["Fitment"],
                "summary": "Parse a size label and describe it",
                "operationId": "fitmentDescribe",
                "parameters": [{"name": "label", "in": "path", "required": true, "description": "Size label, e.g. 205-55R16-91V", "schema": {"type": "string"}}],
                "responses": {
                    "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/SizeInfo"}}}},
                    "422": {"description": "unparseable label", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
                }
            }
        },
        "/fitment/speed-ratings": {
            "get": {
                "tags": ["Fitment"],
                "summary": "Speed rating table in published order",
                "operationId": "fitmentSpeedRatings",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/SpeedRating"}}}}}}
            }
        },
        "/fitment/defaults": {
            "get": {
                "tags": ["Fitment"],
                "summary": "Search defaults used when a request leaves a parameter out",
                "operationId": "fitmentDefaults",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Defaults"}}}}}
            }
        },
        "/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Liveness",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/HealthResponse"}}}}}
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build information",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/BuildInfo"}}}}}
            }
        },
        "/meta/service": {
            "get": {
                "tags": ["Meta"],
                "summary": "Service name, uptime and the modules that exposed ports",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ServiceResponse"}}}}}
            }
        }
    },
    "components": {
        "schemas": {
            "SizeInput": {
                "type": "object",
                "properties": {
                    "label": {"type": "string", "example": "205/55 R16 91V"},
                    "width": {"type": "integer", "example": 205},
                    "profile": {"type": "integer", "example": 55},
                    "diameter": {"type": "integer", "example": 16},
                    "load_index": {"type": "integer", "example": 91},
                    "speed_index": {"type": "string", "example": "V"}
                }
            },
            "Size": {
                "type": "object",
                "properties": {
                    "width": {"type": "integer", "example": 205},
                    "profile": {"type": "integer", "example": 55},
                    "diameter": {"type": "integer", "example": 16},
                    "load_index": {"type": "integer", "example": 91},
                    "speed_index": {"type": "string", "example": "V"}
                }
            },
            "Validation": {
                "type": "object",
                "properties": {
                    "is_valid": {"type": "boolean"},
                    "errors": {"type": "array", "items": {"type": "string"}}
                }
            },
            "ValidateResponse": {
                "type": "object",
                "properties": {
                    "size": {"type": "string", "example": "205/55 R16"},
                    "is_valid": {"type": "boolean"},
                    "errors": {"type": "array", "items": {"type": "string"}}
                }
            },
            "Geometry": {
                "type": "object",
                "properties": {
                    "size": {"type": "string", "example": "205/55 R16"},
                    "diameter": {"type": "number", "example": 631.9},
                    "sidewall_mm": {"type": "number", "example": 112.8},
                    "circumference_mm": {"type": "number", "example": 1985.2},
                    "revs_per_km": {"type": "number", "example": 503.7},
                    "rim_width": {"type": "string", "example": "5.0-6.5"}
                }
            },
            "AlternativesRequest": {
                "type": "object",
                "required": ["original_size"],
                "properties": {
                    "original_size": {"$ref": "#/components/schemas/SizeInput"},
                    "max_deviation_percent": {"type": "number", "example": 3},
                    "allowed_width_range": {"type": "integer", "example": 20},
                    "allowed_diameter_range": {"type": "integer", "example": 1},
                    "min_load_index": {"type": "integer", "example": 91},
                    "min_speed_index": {"type": "string", "example": "H"},
                    "season": {"type": "string", "example": "summer"},
                    "car_type": {"type": "string", "example": "passenger"},
                    "tiers": {"type": "array", "items": {"type": "string", "enum": ["recommended", "attention", "check", "other"]}},
                    "limit": {"type": "integer", "minimum": 1, "maximum": 50, "example": 10}
                }
            },
            "Alternative": {
                "type": "object",
                "properties": {
                    "size": {"type": "string", "example": "215/50 R16"},
                    "width": {"type": "integer", "example": 215},
                    "profile": {"type": "integer", "example": 50},
                    "diameter": {"type": "integer", "example": 16},
                    "calculated_diameter": {"type": "number", "example": 621.4},
                    "deviation_percent": {"type": "number", "example": -1.66},
                    "deviation_mm": {"type": "number", "example": -10.5},
                    "load_index": {"type": "integer", "example": 91},
                    "speed_index": {"type": "string", "example": "V"},
                    "recommended_rim_width": {"type": "string", "example": "5.0-7.0"},
                    "is_recommended": {"type": "boolean"},
                    "tier": {"type": "string", "enum": ["recommended", "attention", "check", "other"]},
                    "warnings": {"type": "array", "items": {"type": "string"}}
                }
            },
            "SearchParams": {
                "type": "object",
                "properties": {
                    "original_size": {"$ref": "#/components/schemas/Size"},
                    "max_deviation_percent": {"type": "number"},
                    "allowed_width_range": {"type": "integer"},
                    "allowed_diameter_range": {"type": "integer"},
                    "min_load_index": {"type": "integer"},
                    "min_speed_index": {"type": "string"},
                    "season": {"type": "string"},
                    "car_type": {"type": "string"}
                }
            },
            "AlternativesResponse": {
                "type": "object",
                "properties": {
                    "key": {"type": "string", "format": "uuid"},
                    "original_diameter": {"type": "number", "example": 631.9},
                    "alternatives": {"type": "array", "items": {"$ref": "#/components/schemas/Alternative"}},
                    "search_params": {"$ref": "#/components/schemas/SearchParams"},
                    "total_found": {"type": "integer", "example": 26},
                    "returned": {"type": "integer", "example": 26},
                    "tier_counts": {"type": "object", "additionalProperties": {"type": "integer"}}
                }
            },
            "ImpactRequest": {
                "type": "object",
                "properties": {
                    "original_diameter": {"type": "number", "example": 631.9},
                    "candidate_diameter": {"type": "number", "example": 621.4},
                    "original_size": {"$ref": "#/components/schemas/SizeInput"},
                    "candidate_size": {"$ref": "#/components/schemas/SizeInput"},
                    "indicated_speed": {"type": "number", "example": 100},
                    "speeds": {"type": "array", "items": {"type": "number"}}
                }
            },
            "Impact": {
                "type": "object",
                "properties": {
                    "indicated_speed": {"type": "number", "example": 100},
                    "real_speed": {"type": "number", "example": 98.3},
                    "deviation_kmh": {"type": "number", "example": -1.7},
                    "deviation_percent": {"type": "number", "example": -1.66},
                    "description": {"type": "string"}
                }
            },
            "ImpactResponse": {
                "type": "object",
                "properties": {
                    "original_diameter": {"type": "number", "example": 631.9},
                    "candidate_diameter": {"type": "number", "example": 621.4},
                    "impact": {"$ref": "#/components/schemas/Impact"},
                    "table": {"type": "array", "items": {"$ref": "#/components/schemas/Impact"}}
                }
            },
            "CompareRequest": {
                "type": "object",
                "required": ["from", "to"],
                "properties": {
                    "from": {"$ref": "#/components/schemas/SizeInput"},
                    "to": {"$ref": "#/components/schemas/SizeInput"},
                    "speeds": {"type": "array", "items": {"type": "number"}}
                }
            },
            "Comparison": {
                "type": "object",
                "properties": {
                    "from": {"$ref": "#/components/schemas/Geometry"},
                    "to": {"$ref": "#/components/schemas/Geometry"},
                    "width_diff_mm": {"type": "integer", "example": 10},
                    "diameter_diff_mm": {"type": "number", "example": -10.5},
                    "diameter_diff_percent": {"type": "number", "example": -1.66},
                    "sidewall_diff_mm": {"type": "number", "example": -5.3},
                    "revs_per_km_diff": {"type": "number", "example": 8.5},
                    "clearance_change_mm": {"type": "number", "example": -5.3},
                    "tier": {"type": "string"},
                    "impacts": {"type": "array", "items": {"$ref": "#/components/schemas/Impact"}}
                }
            },
            "SizeInfo": {
                "type": "object",
                "properties": {
                    "label": {"type": "string", "example": "205/55 R16 91V"},
                    "size": {"$ref": "#/components/schemas/Size"},
                    "validation": {"$ref": "#/components/schemas/Validation"},
                    "geometry": {"$ref": "#/components/schemas/Geometry"},
                    "load_capacity_kg": {"type": "integer", "example": 615},
                    "max_speed_kmh": {"type": "integer", "example": 240}
                }
            },
            "SpeedRating": {
                "type": "object",
                "properties": {
                    "symbol": {"type": "string", "example": "V"},
                    "rank": {"type": "integer", "example": 27},
                    "max_speed_kmh": {"type": "integer", "example": 240}
                }
            },
            "RimWidthBand": {
                "type": "object",
                "properties": {
                    "min": {"type": "number", "example": 0.6},
                    "optimal": {"type": "number", "example": 0.7},
                    "max": {"type": "number", "example": 0.8}
                }
            },
            "Defaults": {
                "type": "object",
                "properties": {
                    "max_deviation_percent": {"type": "number", "example": 3},
                    "allowed_width_range": {"type": "integer", "example": 20},
                    "allowed_diameter_range": {"type": "integer", "example": 1},
                    "impact_speeds": {"type": "array", "items": {"type": "number"}},
                    "rim_width_band": {"$ref": "#/components/schemas/RimWidthBand"}
                }
            },
            "HealthResponse": {
                "type": "object",
                "properties": {
                    "ok": {"type": "boolean"},
                    "service": {"type": "string", "example": "tirefit-api"},
                    "started": {"type": "string", "format": "date-time"},
                    "now": {"type": "string", "format": "date-time"}
                }
            },
            "BuildInfo": {
                "type": "object",
                "properties": {
                    "service": {"type": "string"},
                    "version": {"type": "string"},
                    "commit": {"type": "string"},
                    "date": {"type": "string"},
                    "go_version": {"type": "string"}
                }
            },
            "ServiceResponse": {
                "type": "object",
                "properties": {
                    "name": {"type": "string"},
                    "started": {"type": "string", "format": "date-time"},
                    "uptime": {"type": "integer"},
                    "modules": {"type": "array", "items": {"type": "string"}},
                    "fitment_defaults": {"$ref": "#/components/schemas/Defaults"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "tirefit API",
	Description:      "Tire fitment alternatives, speedometer impact and size comparison.",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
