// Code generated by ent, DO NOT EDIT.

package physicalfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLTE(FieldID, id))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldContentHash, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldFileSize, v))
}

// StoragePath applies equality check predicate on the "storage_path" field. It's identical to StoragePathEQ.
func StoragePath(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldStoragePath, v))
}

// RefCount applies equality check predicate on the "ref_count" field. It's identical to RefCountEQ.
func RefCount(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldRefCount, v))
}

// DiscoveryStatus applies equality check predicate on the "discovery_status" field. It's identical to DiscoveryStatusEQ.
func DiscoveryStatus(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldDiscoveryStatus, v))
}

// MatchedTemplateID applies equality check predicate on the "matched_template_id" field. It's identical to MatchedTemplateIDEQ.
func MatchedTemplateID(v uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldMatchedTemplateID, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldUploadedAt, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLTE(FieldContentHash, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLTE(FieldFileSize, v))
}

// StoragePathEQ applies the EQ predicate on the "storage_path" field.
func StoragePathEQ(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldStoragePath, v))
}

// StoragePathNEQ applies the NEQ predicate on the "storage_path" field.
func StoragePathNEQ(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNEQ(FieldStoragePath, v))
}

// StoragePathIn applies the In predicate on the "storage_path" field.
func StoragePathIn(vs ...string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldIn(FieldStoragePath, vs...))
}

// StoragePathNotIn applies the NotIn predicate on the "storage_path" field.
func StoragePathNotIn(vs ...string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNotIn(FieldStoragePath, vs...))
}

// StoragePathGT applies the GT predicate on the "storage_path" field.
func StoragePathGT(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGT(FieldStoragePath, v))
}

// StoragePathGTE applies the GTE predicate on the "storage_path" field.
func StoragePathGTE(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGTE(FieldStoragePath, v))
}

// StoragePathLT applies the LT predicate on the "storage_path" field.
func StoragePathLT(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLT(FieldStoragePath, v))
}

// StoragePathLTE applies the LTE predicate on the "storage_path" field.
func StoragePathLTE(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLTE(FieldStoragePath, v))
}

// StoragePathContains applies the Contains predicate on the "storage_path" field.
func StoragePathContains(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldContains(FieldStoragePath, v))
}

// StoragePathHasPrefix applies the HasPrefix predicate on the "storage_path" field.
func StoragePathHasPrefix(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldHasPrefix(FieldStoragePath, v))
}

// StoragePathHasSuffix applies the HasSuffix predicate on the "storage_path" field.
func StoragePathHasSuffix(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldHasSuffix(FieldStoragePath, v))
}

// StoragePathEqualFold applies the EqualFold predicate on the "storage_path" field.
func StoragePathEqualFold(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEqualFold(FieldStoragePath, v))
}

// StoragePathContainsFold applies the ContainsFold predicate on the "storage_path" field.
func StoragePathContainsFold(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldContainsFold(FieldStoragePath, v))
}

// RefCountEQ applies the EQ predicate on the "ref_count" field.
func RefCountEQ(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldRefCount, v))
}

// RefCountNEQ applies the NEQ predicate on the "ref_count" field.
func RefCountNEQ(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNEQ(FieldRefCount, v))
}

// RefCountIn applies the In predicate on the "ref_count" field.
func RefCountIn(vs ...int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldIn(FieldRefCount, vs...))
}

// RefCountNotIn applies the NotIn predicate on the "ref_count" field.
func RefCountNotIn(vs ...int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNotIn(FieldRefCount, vs...))
}

// RefCountGT applies the GT predicate on the "ref_count" field.
func RefCountGT(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGT(FieldRefCount, v))
}

// RefCountGTE applies the GTE predicate on the "ref_count" field.
func RefCountGTE(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGTE(FieldRefCount, v))
}

// RefCountLT applies the LT predicate on the "ref_count" field.
func RefCountLT(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLT(FieldRefCount, v))
}

// RefCountLTE applies the LTE predicate on the "ref_count" field.
func RefCountLTE(v int) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLTE(FieldRefCount, v))
}

// DiscoveryStatusEQ applies the EQ predicate on the "discovery_status" field.
func DiscoveryStatusEQ(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldDiscoveryStatus, v))
}

// DiscoveryStatusNEQ applies the NEQ predicate on the "discovery_status" field.
func DiscoveryStatusNEQ(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNEQ(FieldDiscoveryStatus, v))
}

// DiscoveryStatusIn applies the In predicate on the "discovery_status" field.
func DiscoveryStatusIn(vs ...string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldIn(FieldDiscoveryStatus, vs...))
}

// DiscoveryStatusNotIn applies the NotIn predicate on the "discovery_status" field.
func DiscoveryStatusNotIn(vs ...string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNotIn(FieldDiscoveryStatus, vs...))
}

// DiscoveryStatusGT applies the GT predicate on the "discovery_status" field.
func DiscoveryStatusGT(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGT(FieldDiscoveryStatus, v))
}

// DiscoveryStatusGTE applies the GTE predicate on the "discovery_status" field.
func DiscoveryStatusGTE(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGTE(FieldDiscoveryStatus, v))
}

// DiscoveryStatusLT applies the LT predicate on the "discovery_status" field.
func DiscoveryStatusLT(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLT(FieldDiscoveryStatus, v))
}

// DiscoveryStatusLTE applies the LTE predicate on the "discovery_status" field.
func DiscoveryStatusLTE(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLTE(FieldDiscoveryStatus, v))
}

// DiscoveryStatusContains applies the Contains predicate on the "discovery_status" field.
func DiscoveryStatusContains(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldContains(FieldDiscoveryStatus, v))
}

// DiscoveryStatusHasPrefix applies the HasPrefix predicate on the "discovery_status" field.
func DiscoveryStatusHasPrefix(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldHasPrefix(FieldDiscoveryStatus, v))
}

// DiscoveryStatusHasSuffix applies the HasSuffix predicate on the "discovery_status" field.
func DiscoveryStatusHasSuffix(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldHasSuffix(FieldDiscoveryStatus, v))
}

// DiscoveryStatusEqualFold applies the EqualFold predicate on the "discovery_status" field.
func DiscoveryStatusEqualFold(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEqualFold(FieldDiscoveryStatus, v))
}

// DiscoveryStatusContainsFold applies the ContainsFold predicate on the "discovery_status" field.
func DiscoveryStatusContainsFold(v string) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldContainsFold(FieldDiscoveryStatus, v))
}

// MatchedTemplateIDEQ applies the EQ predicate on the "matched_template_id" field.
func MatchedTemplateIDEQ(v uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldMatchedTemplateID, v))
}

// MatchedTemplateIDNEQ applies the NEQ predicate on the "matched_template_id" field.
func MatchedTemplateIDNEQ(v uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNEQ(FieldMatchedTemplateID, v))
}

// MatchedTemplateIDIn applies the In predicate on the "matched_template_id" field.
func MatchedTemplateIDIn(vs ...uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldIn(FieldMatchedTemplateID, vs...))
}

// MatchedTemplateIDNotIn applies the NotIn predicate on the "matched_template_id" field.
func MatchedTemplateIDNotIn(vs ...uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNotIn(FieldMatchedTemplateID, vs...))
}

// MatchedTemplateIDGT applies the GT predicate on the "matched_template_id" field.
func MatchedTemplateIDGT(v uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGT(FieldMatchedTemplateID, v))
}

// MatchedTemplateIDGTE applies the GTE predicate on the "matched_template_id" field.
func MatchedTemplateIDGTE(v uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGTE(FieldMatchedTemplateID, v))
}

// MatchedTemplateIDLT applies the LT predicate on the "matched_template_id" field.
func MatchedTemplateIDLT(v uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLT(FieldMatchedTemplateID, v))
}

// MatchedTemplateIDLTE applies the LTE predicate on the "matched_template_id" field.
func MatchedTemplateIDLTE(v uuid.UUID) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLTE(FieldMatchedTemplateID, v))
}

// MatchedTemplateIDIsNil applies the IsNil predicate on the "matched_template_id" field.
func MatchedTemplateIDIsNil() predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldIsNull(FieldMatchedTemplateID))
}

// MatchedTemplateIDNotNil applies the NotNil predicate on the "matched_template_id" field.
func MatchedTemplateIDNotNil() predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNotNull(FieldMatchedTemplateID))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasParseRecord applies the HasEdge predicate on the "parse_record" edge.
func HasParseRecord() predicate.PhysicalFile {
	return predicate.PhysicalFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ParseRecordTable, ParseRecordColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParseRecordWith applies the HasEdge predicate on the "parse_record" edge with a given conditions (other predicates).
func HasParseRecordWith(preds ...predicate.ParseRecord) predicate.PhysicalFile {
	return predicate.PhysicalFile(func(s *sql.Selector) {
		step := newParseRecordStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExtractions applies the HasEdge predicate on the "extractions" edge.
func HasExtractions() predicate.PhysicalFile {
	return predicate.PhysicalFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExtractionsTable, ExtractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionsWith applies the HasEdge predicate on the "extractions" edge with a given conditions (other predicates).
func HasExtractionsWith(preds ...predicate.Extraction) predicate.PhysicalFile {
	return predicate.PhysicalFile(func(s *sql.Selector) {
		step := newExtractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PhysicalFile) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PhysicalFile) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PhysicalFile) predicate.PhysicalFile {
	return predicate.PhysicalFile(sql.NotPredicates(p))
}
