// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractedField is the predicate function for extractedfield builders.
type ExtractedField func(*sql.Selector)

// Extraction is the predicate function for extraction builders.
type Extraction func(*sql.Selector)

// ParseRecord is the predicate function for parserecord builders.
type ParseRecord func(*sql.Selector)

// PhysicalFile is the predicate function for physicalfile builders.
type PhysicalFile func(*sql.Selector)

// Template is the predicate function for template builders.
type Template func(*sql.Selector)
