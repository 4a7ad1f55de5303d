package validation

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/oakfield-labs/docuflow/constants"
)

// FieldIssue attributes a cross-field finding to one field.
type FieldIssue struct {
	Field string
	Issue Issue
}

// businessRule inspects the whole extracted field set of one document.
type businessRule func(fields map[string]json.RawMessage) []FieldIssue

// Category ceilings for total amounts; totals above these are suspicious
// enough to flag even when the schema range allows them.
var categoryCeilings = map[constants.TemplateCategory]float64{
	constants.CategoryInvoice:  1_000_000,
	constants.CategoryReceipt:  50_000,
	constants.CategoryContract: 100_000_000,
}

// Dates further out than this from today are treated as implausible.
const datePlausibilityYears = 30

func businessRulesFor(category constants.TemplateCategory) []businessRule {
	switch category {
	case constants.CategoryInvoice:
		return []businessRule{
			totalPositiveBelow(categoryCeilings[constants.CategoryInvoice], "total_amount", "total", "amount_due"),
			datePlausible("invoice_date", "issue_date", "date"),
			endAfterStart("invoice_date", "due_date"),
			minItems(1, "line_items", "items"),
		}
	case constants.CategoryContract:
		return []businessRule{
			endAfterStart("start_date", "end_date"),
			endAfterStart("effective_date", "expiration_date"),
			datePlausible("start_date", "effective_date"),
			minItems(2, "parties"),
			totalPositiveBelow(categoryCeilings[constants.CategoryContract], "contract_value", "total_value"),
		}
	case constants.CategoryReceipt:
		return []businessRule{
			totalPositiveBelow(categoryCeilings[constants.CategoryReceipt], "total", "total_amount"),
			datePlausible("date", "transaction_date", "tx_date"),
		}
	default:
		return nil
	}
}

func firstPresent(fields map[string]json.RawMessage, names ...string) (string, json.RawMessage, bool) {
	for _, name := range names {
		if raw, ok := fields[name]; ok && !isEmptyValue(raw) {
			return name, raw, true
		}
	}
	return "", nil, false
}

// totalPositiveBelow: the document total must be positive and below the
// category ceiling.
func totalPositiveBelow(ceiling float64, names ...string) businessRule {
	return func(fields map[string]json.RawMessage) []FieldIssue {
		name, raw, ok := firstPresent(fields, names...)
		if !ok {
			return nil
		}
		n, ok := decodeNumber(raw)
		if !ok {
			return nil // typed checks already flagged it
		}
		if n <= 0 {
			return []FieldIssue{{Field: name, Issue: *errorf("total amount must be positive")}}
		}
		if n > ceiling {
			return []FieldIssue{{Field: name, Issue: *errorf("total amount %.2f exceeds category ceiling %.0f", n, ceiling)}}
		}
		return nil
	}
}

// datePlausible: the primary date must not be implausibly far in the past
// or future.
func datePlausible(names ...string) businessRule {
	return func(fields map[string]json.RawMessage) []FieldIssue {
		name, raw, ok := firstPresent(fields, names...)
		if !ok {
			return nil
		}
		s, ok := decodeString(raw)
		if !ok {
			return nil
		}
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil
		}
		now := time.Now()
		if d.Before(now.AddDate(-datePlausibilityYears, 0, 0)) || d.After(now.AddDate(datePlausibilityYears, 0, 0)) {
			return []FieldIssue{{Field: name, Issue: *warnf("date %s is implausibly far from today", s)}}
		}
		return nil
	}
}

// endAfterStart: when both dates are present, the ending date must follow
// the starting date.
func endAfterStart(startName, endName string) businessRule {
	return func(fields map[string]json.RawMessage) []FieldIssue {
		startRaw, ok := fields[startName]
		if !ok || isEmptyValue(startRaw) {
			return nil
		}
		endRaw, ok := fields[endName]
		if !ok || isEmptyValue(endRaw) {
			return nil
		}
		startStr, ok1 := decodeString(startRaw)
		endStr, ok2 := decodeString(endRaw)
		if !ok1 || !ok2 {
			return nil
		}
		start, err1 := time.Parse("2006-01-02", startStr)
		end, err2 := time.Parse("2006-01-02", endStr)
		if err1 != nil || err2 != nil {
			return nil
		}
		if !end.After(start) {
			return []FieldIssue{{
				Field: endName,
				Issue: *errorf("%s must follow %s", endName, startName),
			}}
		}
		return nil
	}
}

// minItems: an array field must carry at least n entries.
func minItems(n int, names ...string) businessRule {
	return func(fields map[string]json.RawMessage) []FieldIssue {
		name, raw, ok := firstPresent(fields, names...)
		if !ok {
			return nil
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		if len(items) < n {
			return []FieldIssue{{
				Field: name,
				Issue: Issue{
					Severity: constants.ValidationError,
					Message:  fmt.Sprintf("must have at least %d entries, found %d", n, len(items)),
				},
			}}
		}
		return nil
	}
}
