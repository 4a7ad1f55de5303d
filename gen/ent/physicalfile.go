// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	"github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
)

// PhysicalFile is the model entity for the PhysicalFile schema.
type PhysicalFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// StoragePath holds the value of the "storage_path" field.
	StoragePath string `json:"storage_path,omitempty"`
	// RefCount holds the value of the "ref_count" field.
	RefCount int `json:"ref_count,omitempty"`
	// DiscoveryStatus holds the value of the "discovery_status" field.
	DiscoveryStatus string `json:"discovery_status,omitempty"`
	// MatchedTemplateID holds the value of the "matched_template_id" field.
	MatchedTemplateID *uuid.UUID `json:"matched_template_id,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PhysicalFileQuery when eager-loading is set.
	Edges        PhysicalFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PhysicalFileEdges holds the relations/edges for other nodes in the graph.
type PhysicalFileEdges struct {
	// ParseRecord holds the value of the parse_record edge.
	ParseRecord *ParseRecord `json:"parse_record,omitempty"`
	// Extractions holds the value of the extractions edge.
	Extractions []*Extraction `json:"extractions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ParseRecordOrErr returns the ParseRecord value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PhysicalFileEdges) ParseRecordOrErr() (*ParseRecord, error) {
	if e.ParseRecord != nil {
		return e.ParseRecord, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: parserecord.Label}
	}
	return nil, &NotLoadedError{edge: "parse_record"}
}

// ExtractionsOrErr returns the Extractions value or an error if the edge
// was not loaded in eager-loading.
func (e PhysicalFileEdges) ExtractionsOrErr() ([]*Extraction, error) {
	if e.loadedTypes[1] {
		return e.Extractions, nil
	}
	return nil, &NotLoadedError{edge: "extractions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PhysicalFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case physicalfile.FieldMatchedTemplateID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case physicalfile.FieldContentHash:
			values[i] = new([]byte)
		case physicalfile.FieldFileSize, physicalfile.FieldRefCount:
			values[i] = new(sql.NullInt64)
		case physicalfile.FieldStoragePath, physicalfile.FieldDiscoveryStatus:
			values[i] = new(sql.NullString)
		case physicalfile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case physicalfile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PhysicalFile fields.
func (_m *PhysicalFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case physicalfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case physicalfile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case physicalfile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case physicalfile.FieldStoragePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_path", values[i])
			} else if value.Valid {
				_m.StoragePath = value.String
			}
		case physicalfile.FieldRefCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ref_count", values[i])
			} else if value.Valid {
				_m.RefCount = int(value.Int64)
			}
		case physicalfile.FieldDiscoveryStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discovery_status", values[i])
			} else if value.Valid {
				_m.DiscoveryStatus = value.String
			}
		case physicalfile.FieldMatchedTemplateID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field matched_template_id", values[i])
			} else if value.Valid {
				_m.MatchedTemplateID = new(uuid.UUID)
				*_m.MatchedTemplateID = *value.S.(*uuid.UUID)
			}
		case physicalfile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PhysicalFile.
// This includes values selected through modifiers, order, etc.
func (_m *PhysicalFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParseRecord queries the "parse_record" edge of the PhysicalFile entity.
func (_m *PhysicalFile) QueryParseRecord() *ParseRecordQuery {
	return NewPhysicalFileClient(_m.config).QueryParseRecord(_m)
}

// QueryExtractions queries the "extractions" edge of the PhysicalFile entity.
func (_m *PhysicalFile) QueryExtractions() *ExtractionQuery {
	return NewPhysicalFileClient(_m.config).QueryExtractions(_m)
}

// Update returns a builder for updating this PhysicalFile.
// Note that you need to call PhysicalFile.Unwrap() before calling this method if this PhysicalFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PhysicalFile) Update() *PhysicalFileUpdateOne {
	return NewPhysicalFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PhysicalFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PhysicalFile) Unwrap() *PhysicalFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PhysicalFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PhysicalFile) String() string {
	var builder strings.Builder
	builder.WriteString("PhysicalFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("storage_path=")
	builder.WriteString(_m.StoragePath)
	builder.WriteString(", ")
	builder.WriteString("ref_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RefCount))
	builder.WriteString(", ")
	builder.WriteString("discovery_status=")
	builder.WriteString(_m.DiscoveryStatus)
	builder.WriteString(", ")
	if v := _m.MatchedTemplateID; v != nil {
		builder.WriteString("matched_template_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PhysicalFiles is a parsable slice of PhysicalFile.
type PhysicalFiles []*PhysicalFile
