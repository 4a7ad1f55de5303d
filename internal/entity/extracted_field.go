package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ExtractedField is one named value within an Extraction. Structured values
// (array/table/array_of_objects) are kept as raw JSON.
type ExtractedField struct {
	ID           uuid.UUID       `json:"id"`
	ExtractionID uuid.UUID       `json:"extraction_id"`
	Name         string          `json:"name"`
	Value        json.RawMessage `json:"value,omitempty"`
	Confidence   float32         `json:"confidence"`
	SourcePage   *int            `json:"source_page,omitempty"`
	SourceBBox   *BoundingBox    `json:"source_bbox,omitempty"`
	SourceText   string          `json:"source_text,omitempty"`
	Verified     bool            `json:"verified"`

	ValidationStatus string   `json:"validation_status"`
	ValidationErrors []string `json:"validation_errors,omitempty"`
	AuditPriority    int      `json:"audit_priority"`
}

// ValueString returns the field value as a plain string when it is a JSON
// string, or the raw JSON text otherwise.
func (f *ExtractedField) ValueString() string {
	if len(f.Value) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(f.Value, &s); err == nil {
		return s
	}
	return string(f.Value)
}
