// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	"github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
)

// ParseRecord is the model entity for the ParseRecord schema.
type ParseRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// JobToken holds the value of the "job_token" field.
	JobToken string `json:"job_token,omitempty"`
	// Blocks holds the value of the "blocks" field.
	Blocks json.RawMessage `json:"blocks,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParseRecordQuery when eager-loading is set.
	Edges        ParseRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParseRecordEdges holds the relations/edges for other nodes in the graph.
type ParseRecordEdges struct {
	// File holds the value of the file edge.
	File *PhysicalFile `json:"file,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParseRecordEdges) FileOrErr() (*PhysicalFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: physicalfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParseRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case parserecord.FieldBlocks:
			values[i] = new([]byte)
		case parserecord.FieldJobToken:
			values[i] = new(sql.NullString)
		case parserecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case parserecord.FieldID, parserecord.FieldFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParseRecord fields.
func (_m *ParseRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case parserecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case parserecord.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case parserecord.FieldJobToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_token", values[i])
			} else if value.Valid {
				_m.JobToken = value.String
			}
		case parserecord.FieldBlocks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field blocks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Blocks); err != nil {
					return fmt.Errorf("unmarshal field blocks: %w", err)
				}
			}
		case parserecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParseRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ParseRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the ParseRecord entity.
func (_m *ParseRecord) QueryFile() *PhysicalFileQuery {
	return NewParseRecordClient(_m.config).QueryFile(_m)
}

// Update returns a builder for updating this ParseRecord.
// Note that you need to call ParseRecord.Unwrap() before calling this method if this ParseRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParseRecord) Update() *ParseRecordUpdateOne {
	return NewParseRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParseRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParseRecord) Unwrap() *ParseRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParseRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParseRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ParseRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("job_token=")
	builder.WriteString(_m.JobToken)
	builder.WriteString(", ")
	builder.WriteString("blocks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Blocks))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ParseRecords is a parsable slice of ParseRecord.
type ParseRecords []*ParseRecord
