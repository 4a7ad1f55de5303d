// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/extraction"
	"github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
	"github.com/oakfield-labs/docuflow/gen/ent/template"
)

// Extraction is the model entity for the Extraction schema.
type Extraction struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// TemplateID holds the value of the "template_id" field.
	TemplateID uuid.UUID `json:"template_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// OrganizedPath holds the value of the "organized_path" field.
	OrganizedPath *string `json:"organized_path,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionQuery when eager-loading is set.
	Edges        ExtractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionEdges holds the relations/edges for other nodes in the graph.
type ExtractionEdges struct {
	// File holds the value of the file edge.
	File *PhysicalFile `json:"file,omitempty"`
	// Template holds the value of the template edge.
	Template *Template `json:"template,omitempty"`
	// Fields holds the value of the fields edge.
	Fields []*ExtractedField `json:"fields,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionEdges) FileOrErr() (*PhysicalFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: physicalfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// TemplateOrErr returns the Template value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionEdges) TemplateOrErr() (*Template, error) {
	if e.Template != nil {
		return e.Template, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: template.Label}
	}
	return nil, &NotLoadedError{edge: "template"}
}

// FieldsOrErr returns the Fields value or an error if the edge
// was not loaded in eager-loading.
func (e ExtractionEdges) FieldsOrErr() ([]*ExtractedField, error) {
	if e.loadedTypes[2] {
		return e.Fields, nil
	}
	return nil, &NotLoadedError{edge: "fields"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Extraction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extraction.FieldStatus, extraction.FieldErrorMessage, extraction.FieldOrganizedPath:
			values[i] = new(sql.NullString)
		case extraction.FieldStartedAt, extraction.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case extraction.FieldID, extraction.FieldFileID, extraction.FieldTemplateID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Extraction fields.
func (_m *Extraction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extraction.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extraction.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case extraction.FieldTemplateID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value != nil {
				_m.TemplateID = *value
			}
		case extraction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extraction.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case extraction.FieldOrganizedPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organized_path", values[i])
			} else if value.Valid {
				_m.OrganizedPath = new(string)
				*_m.OrganizedPath = value.String
			}
		case extraction.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case extraction.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Extraction.
// This includes values selected through modifiers, order, etc.
func (_m *Extraction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the Extraction entity.
func (_m *Extraction) QueryFile() *PhysicalFileQuery {
	return NewExtractionClient(_m.config).QueryFile(_m)
}

// QueryTemplate queries the "template" edge of the Extraction entity.
func (_m *Extraction) QueryTemplate() *TemplateQuery {
	return NewExtractionClient(_m.config).QueryTemplate(_m)
}

// QueryFields queries the "fields" edge of the Extraction entity.
func (_m *Extraction) QueryFields() *ExtractedFieldQuery {
	return NewExtractionClient(_m.config).QueryFields(_m)
}

// Update returns a builder for updating this Extraction.
// Note that you need to call Extraction.Unwrap() before calling this method if this Extraction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Extraction) Update() *ExtractionUpdateOne {
	return NewExtractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Extraction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Extraction) Unwrap() *Extraction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Extraction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Extraction) String() string {
	var builder strings.Builder
	builder.WriteString("Extraction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("template_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TemplateID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.OrganizedPath; v != nil {
		builder.WriteString("organized_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Extractions is a parsable slice of Extraction.
type Extractions []*Extraction
