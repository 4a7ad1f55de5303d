package validation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/oakfield-labs/docuflow/internal/entity"
)

// BuildPayloadJSONSchema returns a JSON-Schema (draft 2020-12 subset) for
// the field extractor's response payload, derived from the template's field
// definitions. The orchestrator validates every provider payload against it
// before any field is persisted. Fields the template names must match their
// declared type; extractor fields outside the template are accepted as long
// as they carry a well-formed value/confidence envelope, and stay visible
// downstream.
func BuildPayloadJSONSchema(fields []entity.FieldDefinition) map[string]any {
	props := map[string]any{}
	for _, fd := range fields {
		props[fd.Name] = fieldEnvelope(valueProp(fd.Type))
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fields": map[string]any{
				"type":                 "object",
				"properties":           props,
				"additionalProperties": fieldEnvelope(nil),
			},
		},
		"required": []string{"fields"},
	}
}

// fieldEnvelope is the schema for one extracted value. A nil valueSchema
// leaves the value unconstrained (used for out-of-template fields).
func fieldEnvelope(valueSchema map[string]any) map[string]any {
	props := map[string]any{
		"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		"source_page": map[string]any{
			"type": "integer", "minimum": 1,
		},
		"source_bbox": map[string]any{"type": "object"},
		"source_text": map[string]any{"type": "string"},
	}
	if valueSchema != nil {
		props["value"] = valueSchema
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []string{"value", "confidence"},
	}
}

func valueProp(t entity.FieldType) map[string]any {
	switch t {
	case entity.FieldNumber:
		// providers emit numbers or numeric strings for money fields
		return map[string]any{"type": []string{"number", "string"}}
	case entity.FieldBoolean:
		return map[string]any{"type": "boolean"}
	case entity.FieldArray, entity.FieldTable, entity.FieldArrayOfObject:
		return map[string]any{"type": "array"}
	default:
		return map[string]any{"type": "string"}
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
