// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/extractedfield"
	"github.com/oakfield-labs/docuflow/gen/ent/extraction"
)

// ExtractedField is the model entity for the ExtractedField schema.
type ExtractedField struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ExtractionID holds the value of the "extraction_id" field.
	ExtractionID uuid.UUID `json:"extraction_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Value holds the value of the "value" field.
	Value json.RawMessage `json:"value,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// SourcePage holds the value of the "source_page" field.
	SourcePage *int `json:"source_page,omitempty"`
	// SourceBbox holds the value of the "source_bbox" field.
	SourceBbox json.RawMessage `json:"source_bbox,omitempty"`
	// SourceText holds the value of the "source_text" field.
	SourceText string `json:"source_text,omitempty"`
	// Verified holds the value of the "verified" field.
	Verified bool `json:"verified,omitempty"`
	// ValidationStatus holds the value of the "validation_status" field.
	ValidationStatus string `json:"validation_status,omitempty"`
	// ValidationErrors holds the value of the "validation_errors" field.
	ValidationErrors []string `json:"validation_errors,omitempty"`
	// AuditPriority holds the value of the "audit_priority" field.
	AuditPriority int `json:"audit_priority,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractedFieldQuery when eager-loading is set.
	Edges        ExtractedFieldEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractedFieldEdges holds the relations/edges for other nodes in the graph.
type ExtractedFieldEdges struct {
	// Extraction holds the value of the extraction edge.
	Extraction *Extraction `json:"extraction,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExtractionOrErr returns the Extraction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractedFieldEdges) ExtractionOrErr() (*Extraction, error) {
	if e.Extraction != nil {
		return e.Extraction, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: extraction.Label}
	}
	return nil, &NotLoadedError{edge: "extraction"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractedField) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractedfield.FieldValue, extractedfield.FieldSourceBbox, extractedfield.FieldValidationErrors:
			values[i] = new([]byte)
		case extractedfield.FieldVerified:
			values[i] = new(sql.NullBool)
		case extractedfield.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case extractedfield.FieldSourcePage, extractedfield.FieldAuditPriority:
			values[i] = new(sql.NullInt64)
		case extractedfield.FieldName, extractedfield.FieldSourceText, extractedfield.FieldValidationStatus:
			values[i] = new(sql.NullString)
		case extractedfield.FieldID, extractedfield.FieldExtractionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractedField fields.
func (_m *ExtractedField) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractedfield.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractedfield.FieldExtractionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field extraction_id", values[i])
			} else if value != nil {
				_m.ExtractionID = *value
			}
		case extractedfield.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case extractedfield.FieldValue:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Value); err != nil {
					return fmt.Errorf("unmarshal field value: %w", err)
				}
			}
		case extractedfield.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case extractedfield.FieldSourcePage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_page", values[i])
			} else if value.Valid {
				_m.SourcePage = new(int)
				*_m.SourcePage = int(value.Int64)
			}
		case extractedfield.FieldSourceBbox:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field source_bbox", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SourceBbox); err != nil {
					return fmt.Errorf("unmarshal field source_bbox: %w", err)
				}
			}
		case extractedfield.FieldSourceText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_text", values[i])
			} else if value.Valid {
				_m.SourceText = value.String
			}
		case extractedfield.FieldVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field verified", values[i])
			} else if value.Valid {
				_m.Verified = value.Bool
			}
		case extractedfield.FieldValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_status", values[i])
			} else if value.Valid {
				_m.ValidationStatus = value.String
			}
		case extractedfield.FieldValidationErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field validation_errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ValidationErrors); err != nil {
					return fmt.Errorf("unmarshal field validation_errors: %w", err)
				}
			}
		case extractedfield.FieldAuditPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field audit_priority", values[i])
			} else if value.Valid {
				_m.AuditPriority = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the ExtractedField.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractedField) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExtraction queries the "extraction" edge of the ExtractedField entity.
func (_m *ExtractedField) QueryExtraction() *ExtractionQuery {
	return NewExtractedFieldClient(_m.config).QueryExtraction(_m)
}

// Update returns a builder for updating this ExtractedField.
// Note that you need to call ExtractedField.Unwrap() before calling this method if this ExtractedField
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractedField) Update() *ExtractedFieldUpdateOne {
	return NewExtractedFieldClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractedField entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractedField) Unwrap() *ExtractedField {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractedField is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractedField) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractedField(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("extraction_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExtractionID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("value=")
	builder.WriteString(fmt.Sprintf("%v", _m.Value))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	if v := _m.SourcePage; v != nil {
		builder.WriteString("source_page=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source_bbox=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceBbox))
	builder.WriteString(", ")
	builder.WriteString("source_text=")
	builder.WriteString(_m.SourceText)
	builder.WriteString(", ")
	builder.WriteString("verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verified))
	builder.WriteString(", ")
	builder.WriteString("validation_status=")
	builder.WriteString(_m.ValidationStatus)
	builder.WriteString(", ")
	builder.WriteString("validation_errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationErrors))
	builder.WriteString(", ")
	builder.WriteString("audit_priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuditPriority))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractedFields is a parsable slice of ExtractedField.
type ExtractedFields []*ExtractedField
