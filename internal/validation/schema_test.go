package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/docuflow/internal/entity"
)

func TestPayloadSchema(t *testing.T) {
	schema := BuildPayloadJSONSchema([]entity.FieldDefinition{
		{Name: "invoice_number", Type: entity.FieldText},
		{Name: "total_amount", Type: entity.FieldNumber},
		{Name: "line_items", Type: entity.FieldTable},
	})

	t.Run("accepts a conforming payload", func(t *testing.T) {
		err := ValidateJSONAgainstSchema(schema, []byte(`{"fields":{
			"invoice_number":{"value":"INV-1","confidence":0.9,"source_page":1,"source_text":"INV-1"},
			"total_amount":{"value":"1,200.00","confidence":0.7},
			"line_items":{"value":[{"sku":"a"}],"confidence":0.6}
		}}`))
		assert.NoError(t, err)
	})

	t.Run("accepts well-formed fields outside the template", func(t *testing.T) {
		err := ValidateJSONAgainstSchema(schema, []byte(`{"fields":{
			"surprise":{"value":"x","confidence":0.5}
		}}`))
		assert.NoError(t, err)
	})

	t.Run("rejects malformed envelopes on unknown fields", func(t *testing.T) {
		err := ValidateJSONAgainstSchema(schema, []byte(`{"fields":{
			"surprise":{"value":"x"}
		}}`))
		assert.Error(t, err, "confidence is required even outside the template")
	})

	t.Run("rejects missing confidence", func(t *testing.T) {
		err := ValidateJSONAgainstSchema(schema, []byte(`{"fields":{
			"invoice_number":{"value":"INV-1"}
		}}`))
		assert.Error(t, err)
	})

	t.Run("rejects out-of-range confidence", func(t *testing.T) {
		err := ValidateJSONAgainstSchema(schema, []byte(`{"fields":{
			"invoice_number":{"value":"INV-1","confidence":1.4}
		}}`))
		assert.Error(t, err)
	})

	t.Run("rejects wrong value type for arrays", func(t *testing.T) {
		err := ValidateJSONAgainstSchema(schema, []byte(`{"fields":{
			"line_items":{"value":"not an array","confidence":0.5}
		}}`))
		assert.Error(t, err)
	})

	t.Run("requires the fields envelope", func(t *testing.T) {
		require.Error(t, ValidateJSONAgainstSchema(schema, []byte(`{}`)))
	})
}
