package validation

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/entity"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func invoiceTemplate() *entity.Template {
	return &entity.Template{
		ID:       uuid.New(),
		Name:     "standard-invoice",
		Category: "Invoice",
		Version:  1,
		Fields: []entity.FieldDefinition{
			{Name: "invoice_number", Type: entity.FieldText, Required: true, Rules: entity.RuleSpec{Pattern: `^INV-\d+$`}},
			{Name: "total_amount", Type: entity.FieldNumber, Required: true, Rules: entity.RuleSpec{Min: fptr(0)}},
			{Name: "invoice_date", Type: entity.FieldDate, Required: true},
		},
	}
}

func extracted(name, value string, confidence float32) *entity.ExtractedField {
	return &entity.ExtractedField{
		ID:         uuid.New(),
		Name:       name,
		Value:      json.RawMessage(value),
		Confidence: confidence,
	}
}

func TestEngineValidate(t *testing.T) {
	engine := NewEngine(0.8, nil)
	tpl := invoiceTemplate()

	t.Run("clean fields are valid", func(t *testing.T) {
		results, err := engine.Validate([]*entity.ExtractedField{
			extracted("invoice_number", `"INV-1042"`, 0.95),
			extracted("total_amount", `420.50`, 0.9),
			extracted("invoice_date", `"2026-03-14"`, 0.85),
		}, tpl)
		require.NoError(t, err)
		for name, res := range results {
			assert.Equal(t, constants.ValidationValid, res.Status, "field %s", name)
			assert.Empty(t, res.Messages)
		}
	})

	t.Run("rule violation with low confidence stays an error", func(t *testing.T) {
		results, err := engine.Validate([]*entity.ExtractedField{
			extracted("invoice_number", `"1042"`, 0.5),
		}, tpl)
		require.NoError(t, err)
		assert.Equal(t, constants.ValidationError, results["invoice_number"].Status)
	})

	t.Run("rule violation with high confidence downgrades to warning", func(t *testing.T) {
		results, err := engine.Validate([]*entity.ExtractedField{
			extracted("invoice_number", `"1042"`, 0.9),
		}, tpl)
		require.NoError(t, err)
		assert.Equal(t, constants.ValidationWarning, results["invoice_number"].Status)
		assert.NotEmpty(t, results["invoice_number"].Messages)
	})

	t.Run("downgrade boundary is inclusive", func(t *testing.T) {
		results, err := engine.Validate([]*entity.ExtractedField{
			extracted("invoice_number", `"1042"`, 0.8),
		}, tpl)
		require.NoError(t, err)
		assert.Equal(t, constants.ValidationWarning, results["invoice_number"].Status)
	})

	t.Run("warnings are never upgraded", func(t *testing.T) {
		warnTpl := &entity.Template{
			ID: uuid.New(), Name: "t", Category: "Generic", Version: 1,
			Fields: []entity.FieldDefinition{
				{Name: "amount", Type: entity.FieldNumber, Rules: entity.RuleSpec{RecommendedMax: fptr(100)}},
			},
		}
		results, err := engine.Validate([]*entity.ExtractedField{
			extracted("amount", `5000`, 0.3),
		}, warnTpl)
		require.NoError(t, err)
		assert.Equal(t, constants.ValidationWarning, results["amount"].Status)
	})

	t.Run("zero confidence means not extracted", func(t *testing.T) {
		results, err := engine.Validate([]*entity.ExtractedField{
			extracted("invoice_number", `"INV-1"`, 0),
		}, tpl)
		require.NoError(t, err)
		res := results["invoice_number"]
		assert.Equal(t, constants.ValidationError, res.Status)
		assert.Contains(t, res.Messages, NotExtractedMessage)
	})

	t.Run("empty value means not extracted even with confidence", func(t *testing.T) {
		results, err := engine.Validate([]*entity.ExtractedField{
			extracted("invoice_number", `""`, 0.9),
		}, tpl)
		require.NoError(t, err)
		res := results["invoice_number"]
		assert.Equal(t, constants.ValidationError, res.Status)
		assert.Contains(t, res.Messages, NotExtractedMessage)
	})

	t.Run("field outside template passes through", func(t *testing.T) {
		results, err := engine.Validate([]*entity.ExtractedField{
			extracted("footnote", `"irrelevant"`, 0.9),
		}, tpl)
		require.NoError(t, err)
		assert.Equal(t, constants.ValidationValid, results["footnote"].Status)
	})

	t.Run("uncompilable template is an error", func(t *testing.T) {
		bad := &entity.Template{
			ID: uuid.New(), Name: "bad", Category: "Generic", Version: 1,
			Fields: []entity.FieldDefinition{
				{Name: "x", Type: entity.FieldText, Rules: entity.RuleSpec{Pattern: `([`}},
			},
		}
		_, err := engine.Validate(nil, bad)
		assert.Error(t, err)
	})
}

func TestEngineCrossFieldRules(t *testing.T) {
	engine := NewEngine(0.8, nil)
	tpl := &entity.Template{
		ID: uuid.New(), Name: "inv", Category: "Invoice", Version: 1,
		Fields: []entity.FieldDefinition{
			{Name: "invoice_date", Type: entity.FieldDate},
			{Name: "due_date", Type: entity.FieldDate},
			{Name: "total_amount", Type: entity.FieldNumber},
		},
	}

	t.Run("due date before invoice date flags the due date", func(t *testing.T) {
		results, err := engine.Validate([]*entity.ExtractedField{
			extracted("invoice_date", `"2026-05-01"`, 0.4),
			extracted("due_date", `"2026-04-01"`, 0.4),
		}, tpl)
		require.NoError(t, err)
		assert.Equal(t, constants.ValidationError, results["due_date"].Status)
		assert.Equal(t, constants.ValidationValid, results["invoice_date"].Status)
	})

	t.Run("negative total flagged", func(t *testing.T) {
		results, err := engine.Validate([]*entity.ExtractedField{
			extracted("total_amount", `-10`, 0.4),
		}, tpl)
		require.NoError(t, err)
		assert.Equal(t, constants.ValidationError, results["total_amount"].Status)
	})
}

func TestEngineModelCacheInvalidation(t *testing.T) {
	engine := NewEngine(0.8, nil)
	tpl := invoiceTemplate()

	_, err := engine.Validate([]*entity.ExtractedField{
		extracted("invoice_number", `"INV-1"`, 0.9),
	}, tpl)
	require.NoError(t, err)

	// Same ID, bumped version and loosened rule: the recompiled model must
	// accept what the old one rejected.
	tpl2 := *tpl
	tpl2.Version = 2
	tpl2.Fields = []entity.FieldDefinition{
		{Name: "invoice_number", Type: entity.FieldText},
	}
	results, err := engine.Validate([]*entity.ExtractedField{
		extracted("invoice_number", `"1042"`, 0.5),
	}, &tpl2)
	require.NoError(t, err)
	assert.Equal(t, constants.ValidationValid, results["invoice_number"].Status)
}
