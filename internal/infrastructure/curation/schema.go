package curation

// responseSchema strict contract for the delegate's /curate payload.
// Anything that fails this schema is treated as a bad response and the
// orchestrator degrades; the dynamically-shaped JSON is never trusted.
const responseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["curatedProducts", "reasoning", "confidence"],
  "properties": {
    "curatedProducts":       {"type": "array", "items": {"$ref": "#/definitions/product"}},
    "platinumProducts":      {"type": "array", "items": {"$ref": "#/definitions/product"}},
    "bundledProducts":       {"type": "array", "items": {"$ref": "#/definitions/product"}},
    "localFavoriteProducts": {"type": "array", "items": {"$ref": "#/definitions/product"}},
    "curatedProductIds":     {"type": "array", "items": {"type": "string"}},
    "reasoning":             {"type": "array", "items": {"type": "string"}},
    "confidence":            {"type": "number", "minimum": 0, "maximum": 1},
    "businessInsights":      {"type": "array", "items": {"type": "string"}},
    "nextSteps":             {"type": "array", "items": {"type": "string"}},
    "generatedAt":           {"type": "string"}
  },
  "definitions": {
    "product": {
      "type": "object",
      "required": ["id", "name"],
      "properties": {
        "id":   {"type": "string"},
        "name": {"type": "string"}
      }
    }
  }
}`
