package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/docuflow/constants"
)

func runRules(category constants.TemplateCategory, fields map[string]json.RawMessage) []FieldIssue {
	var out []FieldIssue
	for _, rule := range businessRulesFor(category) {
		out = append(out, rule(fields)...)
	}
	return out
}

func TestInvoiceRules(t *testing.T) {
	t.Run("accepts a sane invoice", func(t *testing.T) {
		issues := runRules(constants.CategoryInvoice, map[string]json.RawMessage{
			"total_amount": json.RawMessage(`199.90`),
			"invoice_date": json.RawMessage(`"2026-04-01"`),
			"due_date":     json.RawMessage(`"2026-05-01"`),
			"line_items":   json.RawMessage(`[{"sku":"a"}]`),
		})
		assert.Empty(t, issues)
	})

	t.Run("flags ceiling breach", func(t *testing.T) {
		issues := runRules(constants.CategoryInvoice, map[string]json.RawMessage{
			"total_amount": json.RawMessage(`2000000`),
		})
		require.Len(t, issues, 1)
		assert.Equal(t, "total_amount", issues[0].Field)
		assert.Equal(t, constants.ValidationError, issues[0].Issue.Severity)
	})

	t.Run("flags empty line items", func(t *testing.T) {
		issues := runRules(constants.CategoryInvoice, map[string]json.RawMessage{
			"line_items": json.RawMessage(`[]`),
		})
		require.Len(t, issues, 1)
		assert.Equal(t, "line_items", issues[0].Field)
	})

	t.Run("implausible date is a warning", func(t *testing.T) {
		issues := runRules(constants.CategoryInvoice, map[string]json.RawMessage{
			"invoice_date": json.RawMessage(`"1971-01-01"`),
		})
		require.Len(t, issues, 1)
		assert.Equal(t, constants.ValidationWarning, issues[0].Issue.Severity)
	})
}

func TestContractRules(t *testing.T) {
	t.Run("requires two parties", func(t *testing.T) {
		issues := runRules(constants.CategoryContract, map[string]json.RawMessage{
			"parties": json.RawMessage(`["Acme Corp"]`),
		})
		require.Len(t, issues, 1)
		assert.Equal(t, "parties", issues[0].Field)
	})

	t.Run("end must follow start", func(t *testing.T) {
		issues := runRules(constants.CategoryContract, map[string]json.RawMessage{
			"start_date": json.RawMessage(`"2026-06-01"`),
			"end_date":   json.RawMessage(`"2026-06-01"`),
			"parties":    json.RawMessage(`["Acme Corp","Globex"]`),
		})
		require.Len(t, issues, 1)
		assert.Equal(t, "end_date", issues[0].Field)
	})
}

func TestReceiptRules(t *testing.T) {
	t.Run("lower ceiling than invoices", func(t *testing.T) {
		issues := runRules(constants.CategoryReceipt, map[string]json.RawMessage{
			"total": json.RawMessage(`60000`),
		})
		require.Len(t, issues, 1)
		assert.Equal(t, "total", issues[0].Field)
	})

	t.Run("generic category has no rules", func(t *testing.T) {
		assert.Empty(t, runRules(constants.CategoryGeneric, map[string]json.RawMessage{
			"total": json.RawMessage(`-5`),
		}))
	})
}
