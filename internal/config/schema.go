package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const configSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"title": "CafeConfig",
	"type": "object",
	"properties": {
		"service_name":    { "type": "string", "minLength": 1 },
		"env":             { "type": "string" },
		"log_level":       { "type": "string" },
		"currency_symbol": { "type": "string", "minLength": 1 },
		"tracing": {
			"type": "object",
			"properties": { "enabled": { "type": "boolean" } },
			"additionalProperties": false
		},
		"metrics": {
			"type": "object",
			"properties": { "enabled": { "type": "boolean" } },
			"additionalProperties": false
		}
	},
	"additionalProperties": false
}`

var schemaLoader = gojsonschema.NewStringLoader(configSchema)

// ValidateDocument checks a raw config document against the config schema.
// It returns false and the list of violations if the document is invalid.
func ValidateDocument(doc []byte) (bool, []string, error) {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return false, nil, fmt.Errorf("error during validation: %w", err)
	}

	if result.Valid() {
		return true, nil, nil
	}

	var errors []string
	for _, desc := range result.Errors() {
		errors = append(errors, desc.String())
	}
	return false, errors, nil
}

// FormatErrors joins validation errors into a single message.
func FormatErrors(validationErrors []string) string {
	if len(validationErrors) == 0 {
		return ""
	}
	return "Validation errors: " + strings.Join(validationErrors, "; ")
}
