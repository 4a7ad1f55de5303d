package docai

import (
	"encoding/json"
	"fmt"
)

// NormalizePayload makes the extractor response lenient to decode:
// - bare values are wrapped into {"value": ..., "confidence": 0}
// - "score" is accepted as a synonym for "confidence"
// - confidence values are clamped into [0, 1]
// - null-valued entries are dropped (reported as not extracted upstream)
// It returns the normalized document and the names of dropped fields.
func NormalizePayload(raw []byte) ([]byte, []string, error) {
	var doc struct {
		Fields map[string]json.RawMessage `json:"fields"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("normalize: decode: %w", err)
	}

	var dropped []string
	fields := make(map[string]map[string]any, len(doc.Fields))

	for name, rawVal := range doc.Fields {
		var obj map[string]any
		if err := json.Unmarshal(rawVal, &obj); err != nil || obj == nil {
			// Not an object (or null): treat the whole entry as a bare value.
			var v any
			if err := json.Unmarshal(rawVal, &v); err != nil || v == nil {
				dropped = append(dropped, name)
				continue
			}
			fields[name] = map[string]any{"value": v, "confidence": float64(0)}
			continue
		}

		if _, ok := obj["confidence"]; !ok {
			if score, ok := obj["score"]; ok {
				obj["confidence"] = score
				delete(obj, "score")
			}
		}
		switch c := obj["confidence"].(type) {
		case float64:
			if c < 0 {
				obj["confidence"] = float64(0)
			} else if c > 1 {
				obj["confidence"] = float64(1)
			}
		case nil:
			obj["confidence"] = float64(0)
		}

		if v, ok := obj["value"]; !ok || v == nil {
			dropped = append(dropped, name)
			continue
		}
		fields[name] = obj
	}

	out, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return nil, nil, err
	}
	return out, dropped, nil
}
