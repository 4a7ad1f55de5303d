package entity

import (
	"time"

	"github.com/google/uuid"
)

// FieldType is the semantic type of a template field definition.
type FieldType string

const (
	FieldText          FieldType = "text"
	FieldNumber        FieldType = "number"
	FieldDate          FieldType = "date"
	FieldBoolean       FieldType = "boolean"
	FieldArray         FieldType = "array"
	FieldTable         FieldType = "table"
	FieldArrayOfObject FieldType = "array_of_objects"
)

// RuleSpec is the declarative validation rule block attached to a field
// definition. Nil/zero members mean "no constraint".
type RuleSpec struct {
	Pattern        string   `json:"pattern,omitempty"`
	Min            *float64 `json:"min,omitempty"`
	Max            *float64 `json:"max,omitempty"`
	MinLength      *int     `json:"min_length,omitempty"`
	MaxLength      *int     `json:"max_length,omitempty"`
	Format         string   `json:"format,omitempty"` // email|phone|url|postal_code|currency|iso_date
	RecommendedMin *float64 `json:"recommended_min,omitempty"`
	RecommendedMax *float64 `json:"recommended_max,omitempty"`
}

// FieldDefinition describes one field a template extracts.
type FieldDefinition struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Rules    RuleSpec  `json:"rules"`
}

// Template is a named, versioned set of field definitions. Templates are
// immutable once referenced by a completed Extraction unless versioned.
type Template struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Category  string            `json:"category"`
	Version   int               `json:"version"`
	Fields    []FieldDefinition `json:"fields"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Field returns the definition with the given name, if present.
func (t *Template) Field(name string) (FieldDefinition, bool) {
	for _, fd := range t.Fields {
		if fd.Name == name {
			return fd, true
		}
	}
	return FieldDefinition{}, false
}
