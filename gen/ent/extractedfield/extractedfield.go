// Code generated by ent, DO NOT EDIT.

package extractedfield

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the extractedfield type in the database.
	Label = "extracted_field"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExtractionID holds the string denoting the extraction_id field in the database.
	FieldExtractionID = "extraction_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSourcePage holds the string denoting the source_page field in the database.
	FieldSourcePage = "source_page"
	// FieldSourceBbox holds the string denoting the source_bbox field in the database.
	FieldSourceBbox = "source_bbox"
	// FieldSourceText holds the string denoting the source_text field in the database.
	FieldSourceText = "source_text"
	// FieldVerified holds the string denoting the verified field in the database.
	FieldVerified = "verified"
	// FieldValidationStatus holds the string denoting the validation_status field in the database.
	FieldValidationStatus = "validation_status"
	// FieldValidationErrors holds the string denoting the validation_errors field in the database.
	FieldValidationErrors = "validation_errors"
	// FieldAuditPriority holds the string denoting the audit_priority field in the database.
	FieldAuditPriority = "audit_priority"
	// EdgeExtraction holds the string denoting the extraction edge name in mutations.
	EdgeExtraction = "extraction"
	// Table holds the table name of the extractedfield in the database.
	Table = "extracted_fields"
	// ExtractionTable is the table that holds the extraction relation/edge.
	ExtractionTable = "extracted_fields"
	// ExtractionInverseTable is the table name for the Extraction entity.
	// It exists in this package in order to avoid circular dependency with the "extraction" package.
	ExtractionInverseTable = "extractions"
	// ExtractionColumn is the table column denoting the extraction relation/edge.
	ExtractionColumn = "extraction_id"
)

// Columns holds all SQL columns for extractedfield fields.
var Columns = []string{
	FieldID,
	FieldExtractionID,
	FieldName,
	FieldValue,
	FieldConfidence,
	FieldSourcePage,
	FieldSourceBbox,
	FieldSourceText,
	FieldVerified,
	FieldValidationStatus,
	FieldValidationErrors,
	FieldAuditPriority,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float32
	// DefaultVerified holds the default value on creation for the "verified" field.
	DefaultVerified bool
	// DefaultValidationStatus holds the default value on creation for the "validation_status" field.
	DefaultValidationStatus string
	// ValidationStatusValidator is a validator for the "validation_status" field. It is called by the builders before save.
	ValidationStatusValidator func(string) error
	// DefaultAuditPriority holds the default value on creation for the "audit_priority" field.
	DefaultAuditPriority int
	// AuditPriorityValidator is a validator for the "audit_priority" field. It is called by the builders before save.
	AuditPriorityValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ExtractedField queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExtractionID orders the results by the extraction_id field.
func ByExtractionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractionID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySourcePage orders the results by the source_page field.
func BySourcePage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePage, opts...).ToFunc()
}

// BySourceText orders the results by the source_text field.
func BySourceText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceText, opts...).ToFunc()
}

// ByVerified orders the results by the verified field.
func ByVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerified, opts...).ToFunc()
}

// ByValidationStatus orders the results by the validation_status field.
func ByValidationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationStatus, opts...).ToFunc()
}

// ByAuditPriority orders the results by the audit_priority field.
func ByAuditPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuditPriority, opts...).ToFunc()
}

// ByExtractionField orders the results by extraction field.
func ByExtractionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractionStep(), sql.OrderByField(field, opts...))
	}
}
func newExtractionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExtractionTable, ExtractionColumn),
	)
}
