package erp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidRequest wraps payloads rejected by a JSON schema.
var ErrInvalidRequest = errors.New("erp: invalid request")

// MaxPageSize bounds the page size a caller may request.
const MaxPageSize = 100

// PayloadValidator validates payloads against named JSON schemas.
type PayloadValidator interface {
	Validate(name string, schema map[string]any, payload any) error
}

// JSONSchemaValidator compiles schemas once per name and validates payloads.
type JSONSchemaValidator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewJSONSchemaValidator builds a validator backed by jsonschema v5.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate ensures payload satisfies schema. An empty schema accepts anything.
func (v *JSONSchemaValidator) Validate(name string, schema map[string]any, payload any) error {
	if len(schema) == 0 {
		return nil
	}
	compiled, err := v.schemaFor(name, schema)
	if err != nil {
		return err
	}
	var normalized any = map[string]any{}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erp: marshal payload for %s: %w", name, err)
		}
		if err := json.Unmarshal(data, &normalized); err != nil {
			return fmt.Errorf("erp: normalize payload for %s: %w", name, err)
		}
	}
	if err := compiled.Validate(normalized); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRequest, name, err)
	}
	return nil
}

func (v *JSONSchemaValidator) schemaFor(name string, schema map[string]any) (*jsonschema.Schema, error) {
	v.mu.RLock()
	compiled, ok := v.compiled[name]
	v.mu.RUnlock()
	if ok {
		return compiled, nil
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("erp: marshal schema %s: %w", name, err)
	}
	compiler := jsonschema.NewCompiler()
	resource := name + ".json"
	if err := compiler.AddResource(resource, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("erp: load schema %s: %w", name, err)
	}
	compiled, err = compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("erp: compile schema %s: %w", name, err)
	}
	v.mu.Lock()
	v.compiled[name] = compiled
	v.mu.Unlock()
	return compiled, nil
}

type noopValidator struct{}

func (noopValidator) Validate(string, map[string]any, any) error { return nil }

var listRequestSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"search": map[string]any{"type": "string", "maxLength": 200},
		"filters": map[string]any{
			"type":          "object",
			"propertyNames": map[string]any{"pattern": "^[a-z][a-z0-9_]*$"},
			"additionalProperties": map[string]any{
				"type": "string",
			},
		},
		"page":      map[string]any{"type": "integer"},
		"page_size": map[string]any{"type": "integer", "minimum": 0, "maximum": MaxPageSize},
	},
}

var exportRequestSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []string{"report", "format"},
	"properties": map[string]any{
		"report": map[string]any{"enum": []string{ReportSales, ReportRevenue, ReportRegions, ReportProducts, ReportComparison}},
		"format": map[string]any{"enum": []string{FormatCSV, FormatPDF}},
		"months": map[string]any{"type": "integer", "minimum": 0},
		"region": map[string]any{"type": "string"},
	},
}

var settingsSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []string{"language", "timezone", "currency"},
	"properties": map[string]any{
		"email_notifications": map[string]any{"type": "boolean"},
		"push_notifications":  map[string]any{"type": "boolean"},
		"marketing_emails":    map[string]any{"type": "boolean"},
		"two_factor_auth":     map[string]any{"type": "boolean"},
		"language":            map[string]any{"enum": SettingsLanguages},
		"timezone":            map[string]any{"enum": SettingsTimezones},
		"currency":            map[string]any{"enum": SettingsCurrencies},
	},
}
