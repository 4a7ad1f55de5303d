package docai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFields(t *testing.T, raw []byte) map[string]map[string]any {
	t.Helper()
	var doc struct {
		Fields map[string]map[string]any `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc.Fields
}

func TestNormalizePayload(t *testing.T) {
	t.Run("bare values are wrapped with zero confidence", func(t *testing.T) {
		out, dropped, err := NormalizePayload([]byte(`{"fields":{"vendor":"Acme"}}`))
		require.NoError(t, err)
		assert.Empty(t, dropped)

		fields := decodeFields(t, out)
		assert.Equal(t, "Acme", fields["vendor"]["value"])
		assert.Equal(t, float64(0), fields["vendor"]["confidence"])
	})

	t.Run("score is accepted as confidence", func(t *testing.T) {
		out, _, err := NormalizePayload([]byte(`{"fields":{"total":{"value":12.5,"score":0.77}}}`))
		require.NoError(t, err)

		fields := decodeFields(t, out)
		assert.Equal(t, 0.77, fields["total"]["confidence"])
		assert.NotContains(t, fields["total"], "score")
	})

	t.Run("confidence is clamped into unit range", func(t *testing.T) {
		out, _, err := NormalizePayload([]byte(`{"fields":{
			"a":{"value":1,"confidence":1.7},
			"b":{"value":2,"confidence":-0.2}
		}}`))
		require.NoError(t, err)

		fields := decodeFields(t, out)
		assert.Equal(t, float64(1), fields["a"]["confidence"])
		assert.Equal(t, float64(0), fields["b"]["confidence"])
	})

	t.Run("missing confidence defaults to zero", func(t *testing.T) {
		out, _, err := NormalizePayload([]byte(`{"fields":{"x":{"value":"v"}}}`))
		require.NoError(t, err)

		fields := decodeFields(t, out)
		assert.Equal(t, float64(0), fields["x"]["confidence"])
	})

	t.Run("null entries are dropped and reported", func(t *testing.T) {
		out, dropped, err := NormalizePayload([]byte(`{"fields":{
			"kept":{"value":"v","confidence":0.9},
			"gone":null,
			"also_gone":{"confidence":0.5}
		}}`))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"gone", "also_gone"}, dropped)

		fields := decodeFields(t, out)
		assert.Contains(t, fields, "kept")
		assert.NotContains(t, fields, "gone")
		assert.NotContains(t, fields, "also_gone")
	})

	t.Run("invalid JSON is an error", func(t *testing.T) {
		_, _, err := NormalizePayload([]byte(`{"fields":`))
		assert.Error(t, err)
	})
}
