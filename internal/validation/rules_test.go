package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/entity"
)

func mustCompile(t *testing.T, fd entity.FieldDefinition) *fieldChecker {
	t.Helper()
	fc, err := compileField(fd)
	require.NoError(t, err)
	return fc
}

func TestCompileField(t *testing.T) {
	t.Run("rejects bad pattern", func(t *testing.T) {
		_, err := compileField(entity.FieldDefinition{
			Name: "x", Type: entity.FieldText, Rules: entity.RuleSpec{Pattern: `([`},
		})
		assert.Error(t, err)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := compileField(entity.FieldDefinition{
			Name: "x", Type: entity.FieldText, Rules: entity.RuleSpec{Format: "ssn"},
		})
		assert.Error(t, err)
	})
}

func TestCheckerText(t *testing.T) {
	fc := mustCompile(t, entity.FieldDefinition{
		Name: "code", Type: entity.FieldText,
		Rules: entity.RuleSpec{Pattern: `^[A-Z]{2}\d{4}$`, MinLength: iptr(6), MaxLength: iptr(6)},
	})

	assert.Empty(t, fc.Check(json.RawMessage(`"AB1234"`)))
	assert.NotEmpty(t, fc.Check(json.RawMessage(`"ab1234"`)), "pattern mismatch")
	assert.NotEmpty(t, fc.Check(json.RawMessage(`"AB12"`)), "too short")
	assert.NotEmpty(t, fc.Check(json.RawMessage(`42`)), "wrong JSON type")
}

func TestCheckerNumber(t *testing.T) {
	fc := mustCompile(t, entity.FieldDefinition{
		Name: "amount", Type: entity.FieldNumber,
		Rules: entity.RuleSpec{Min: fptr(0), Max: fptr(10000), RecommendedMax: fptr(5000)},
	})

	t.Run("in range", func(t *testing.T) {
		assert.Empty(t, fc.Check(json.RawMessage(`1200.55`)))
	})

	t.Run("numeric string accepted", func(t *testing.T) {
		assert.Empty(t, fc.Check(json.RawMessage(`"1,200.55"`)))
	})

	t.Run("hard bound is an error", func(t *testing.T) {
		issues := fc.Check(json.RawMessage(`20000`))
		require.Len(t, issues, 1)
		assert.Equal(t, constants.ValidationError, issues[0].Severity)
	})

	t.Run("recommended bound is a warning", func(t *testing.T) {
		issues := fc.Check(json.RawMessage(`7500`))
		require.Len(t, issues, 1)
		assert.Equal(t, constants.ValidationWarning, issues[0].Severity)
	})

	t.Run("non-numeric string rejected", func(t *testing.T) {
		issues := fc.Check(json.RawMessage(`"twelve"`))
		require.Len(t, issues, 1)
		assert.Equal(t, constants.ValidationError, issues[0].Severity)
	})
}

func TestCheckerDate(t *testing.T) {
	fc := mustCompile(t, entity.FieldDefinition{Name: "d", Type: entity.FieldDate})

	assert.Empty(t, fc.Check(json.RawMessage(`"2026-02-28"`)))
	assert.NotEmpty(t, fc.Check(json.RawMessage(`"28/02/2026"`)))
	assert.NotEmpty(t, fc.Check(json.RawMessage(`"2026-13-01"`)))
}

func TestCheckerArray(t *testing.T) {
	fc := mustCompile(t, entity.FieldDefinition{
		Name: "line_items", Type: entity.FieldTable,
		Rules: entity.RuleSpec{MinLength: iptr(1), MaxLength: iptr(3)},
	})

	assert.Empty(t, fc.Check(json.RawMessage(`[{"sku":"a"},{"sku":"b"}]`)))
	assert.NotEmpty(t, fc.Check(json.RawMessage(`[]`)), "below min items")
	assert.NotEmpty(t, fc.Check(json.RawMessage(`[1,2,3,4]`)), "above max items")
	assert.NotEmpty(t, fc.Check(json.RawMessage(`{"not":"array"}`)))
}

func TestCheckerBoolean(t *testing.T) {
	fc := mustCompile(t, entity.FieldDefinition{Name: "signed", Type: entity.FieldBoolean})

	assert.Empty(t, fc.Check(json.RawMessage(`true`)))
	assert.NotEmpty(t, fc.Check(json.RawMessage(`"yes"`)))
}

func TestFormats(t *testing.T) {
	tests := []struct {
		format string
		good   []string
		bad    []string
	}{
		{"email", []string{"a@b.co", "first.last+tag@example.org"}, []string{"no-at-sign", "x@y"}},
		{"phone", []string{"+1 (415) 555-0101", "020 7946 0958"}, []string{"abc", "12"}},
		{"url", []string{"https://example.com/x", "ftp://host/file"}, []string{"not a url", "/relative/only"}},
		{"postal_code", []string{"94105", "SW1A 1AA"}, []string{"!", "a"}},
		{"currency", []string{"USD", "EUR"}, []string{"us", "DOLLARS"}},
		{"iso_date", []string{"2026-01-02"}, []string{"01/02/2026"}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			fn := formatValidators[tt.format]
			require.NotNil(t, fn)
			for _, s := range tt.good {
				assert.Nil(t, fn(s), "expected %q to pass %s", s, tt.format)
			}
			for _, s := range tt.bad {
				assert.NotNil(t, fn(s), "expected %q to fail %s", s, tt.format)
			}
		})
	}
}

func TestIsEmptyValue(t *testing.T) {
	assert.True(t, isEmptyValue(json.RawMessage(``)))
	assert.True(t, isEmptyValue(json.RawMessage(`null`)))
	assert.True(t, isEmptyValue(json.RawMessage(`""`)))
	assert.False(t, isEmptyValue(json.RawMessage(`0`)))
	assert.False(t, isEmptyValue(json.RawMessage(`"x"`)))
}
