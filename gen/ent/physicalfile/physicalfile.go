// Code generated by ent, DO NOT EDIT.

package physicalfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the physicalfile type in the database.
	Label = "physical_file"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldStoragePath holds the string denoting the storage_path field in the database.
	FieldStoragePath = "storage_path"
	// FieldRefCount holds the string denoting the ref_count field in the database.
	FieldRefCount = "ref_count"
	// FieldDiscoveryStatus holds the string denoting the discovery_status field in the database.
	FieldDiscoveryStatus = "discovery_status"
	// FieldMatchedTemplateID holds the string denoting the matched_template_id field in the database.
	FieldMatchedTemplateID = "matched_template_id"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// EdgeParseRecord holds the string denoting the parse_record edge name in mutations.
	EdgeParseRecord = "parse_record"
	// EdgeExtractions holds the string denoting the extractions edge name in mutations.
	EdgeExtractions = "extractions"
	// Table holds the table name of the physicalfile in the database.
	Table = "physical_files"
	// ParseRecordTable is the table that holds the parse_record relation/edge.
	ParseRecordTable = "parse_records"
	// ParseRecordInverseTable is the table name for the ParseRecord entity.
	// It exists in this package in order to avoid circular dependency with the "parserecord" package.
	ParseRecordInverseTable = "parse_records"
	// ParseRecordColumn is the table column denoting the parse_record relation/edge.
	ParseRecordColumn = "file_id"
	// ExtractionsTable is the table that holds the extractions relation/edge.
	ExtractionsTable = "extractions"
	// ExtractionsInverseTable is the table name for the Extraction entity.
	// It exists in this package in order to avoid circular dependency with the "extraction" package.
	ExtractionsInverseTable = "extractions"
	// ExtractionsColumn is the table column denoting the extractions relation/edge.
	ExtractionsColumn = "file_id"
)

// Columns holds all SQL columns for physicalfile fields.
var Columns = []string{
	FieldID,
	FieldContentHash,
	FieldFileSize,
	FieldStoragePath,
	FieldRefCount,
	FieldDiscoveryStatus,
	FieldMatchedTemplateID,
	FieldUploadedAt,
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
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func([]byte) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int) error
	// StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	StoragePathValidator func(string) error
	// DefaultRefCount holds the default value on creation for the "ref_count" field.
	DefaultRefCount int
	// RefCountValidator is a validator for the "ref_count" field. It is called by the builders before save.
	RefCountValidator func(int) error
	// DefaultDiscoveryStatus holds the default value on creation for the "discovery_status" field.
	DefaultDiscoveryStatus string
	// DiscoveryStatusValidator is a validator for the "discovery_status" field. It is called by the builders before save.
	DiscoveryStatusValidator func(string) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PhysicalFile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByStoragePath orders the results by the storage_path field.
func ByStoragePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoragePath, opts...).ToFunc()
}

// ByRefCount orders the results by the ref_count field.
func ByRefCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRefCount, opts...).ToFunc()
}

// ByDiscoveryStatus orders the results by the discovery_status field.
func ByDiscoveryStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscoveryStatus, opts...).ToFunc()
}

// ByMatchedTemplateID orders the results by the matched_template_id field.
func ByMatchedTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchedTemplateID, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByParseRecordField orders the results by parse_record field.
func ByParseRecordField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParseRecordStep(), sql.OrderByField(field, opts...))
	}
}

// ByExtractionsCount orders the results by extractions count.
func ByExtractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExtractionsStep(), opts...)
	}
}

// ByExtractions orders the results by extractions terms.
func ByExtractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExtractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newParseRecordStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParseRecordInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ParseRecordTable, ParseRecordColumn),
	)
}
func newExtractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExtractionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
	)
}
