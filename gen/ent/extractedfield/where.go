// Code generated by ent, DO NOT EDIT.

package extractedfield

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldID, id))
}

// ExtractionID applies equality check predicate on the "extraction_id" field. It's identical to ExtractionIDEQ.
func ExtractionID(v uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldExtractionID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldName, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldConfidence, v))
}

// SourcePage applies equality check predicate on the "source_page" field. It's identical to SourcePageEQ.
func SourcePage(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldSourcePage, v))
}

// SourceText applies equality check predicate on the "source_text" field. It's identical to SourceTextEQ.
func SourceText(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldSourceText, v))
}

// Verified applies equality check predicate on the "verified" field. It's identical to VerifiedEQ.
func Verified(v bool) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldVerified, v))
}

// ValidationStatus applies equality check predicate on the "validation_status" field. It's identical to ValidationStatusEQ.
func ValidationStatus(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldValidationStatus, v))
}

// AuditPriority applies equality check predicate on the "audit_priority" field. It's identical to AuditPriorityEQ.
func AuditPriority(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldAuditPriority, v))
}

// ExtractionIDEQ applies the EQ predicate on the "extraction_id" field.
func ExtractionIDEQ(v uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldExtractionID, v))
}

// ExtractionIDNEQ applies the NEQ predicate on the "extraction_id" field.
func ExtractionIDNEQ(v uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldExtractionID, v))
}

// ExtractionIDIn applies the In predicate on the "extraction_id" field.
func ExtractionIDIn(vs ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldExtractionID, vs...))
}

// ExtractionIDNotIn applies the NotIn predicate on the "extraction_id" field.
func ExtractionIDNotIn(vs ...uuid.UUID) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldExtractionID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContainsFold(FieldName, v))
}

// ValueIsNil applies the IsNil predicate on the "value" field.
func ValueIsNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIsNull(FieldValue))
}

// ValueNotNil applies the NotNil predicate on the "value" field.
func ValueNotNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotNull(FieldValue))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldConfidence, v))
}

// SourcePageEQ applies the EQ predicate on the "source_page" field.
func SourcePageEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldSourcePage, v))
}

// SourcePageNEQ applies the NEQ predicate on the "source_page" field.
func SourcePageNEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldSourcePage, v))
}

// SourcePageIn applies the In predicate on the "source_page" field.
func SourcePageIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldSourcePage, vs...))
}

// SourcePageNotIn applies the NotIn predicate on the "source_page" field.
func SourcePageNotIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldSourcePage, vs...))
}

// SourcePageGT applies the GT predicate on the "source_page" field.
func SourcePageGT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldSourcePage, v))
}

// SourcePageGTE applies the GTE predicate on the "source_page" field.
func SourcePageGTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldSourcePage, v))
}

// SourcePageLT applies the LT predicate on the "source_page" field.
func SourcePageLT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldSourcePage, v))
}

// SourcePageLTE applies the LTE predicate on the "source_page" field.
func SourcePageLTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldSourcePage, v))
}

// SourcePageIsNil applies the IsNil predicate on the "source_page" field.
func SourcePageIsNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIsNull(FieldSourcePage))
}

// SourcePageNotNil applies the NotNil predicate on the "source_page" field.
func SourcePageNotNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotNull(FieldSourcePage))
}

// SourceBboxIsNil applies the IsNil predicate on the "source_bbox" field.
func SourceBboxIsNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIsNull(FieldSourceBbox))
}

// SourceBboxNotNil applies the NotNil predicate on the "source_bbox" field.
func SourceBboxNotNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotNull(FieldSourceBbox))
}

// SourceTextEQ applies the EQ predicate on the "source_text" field.
func SourceTextEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldSourceText, v))
}

// SourceTextNEQ applies the NEQ predicate on the "source_text" field.
func SourceTextNEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldSourceText, v))
}

// SourceTextIn applies the In predicate on the "source_text" field.
func SourceTextIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldSourceText, vs...))
}

// SourceTextNotIn applies the NotIn predicate on the "source_text" field.
func SourceTextNotIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldSourceText, vs...))
}

// SourceTextGT applies the GT predicate on the "source_text" field.
func SourceTextGT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldSourceText, v))
}

// SourceTextGTE applies the GTE predicate on the "source_text" field.
func SourceTextGTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldSourceText, v))
}

// SourceTextLT applies the LT predicate on the "source_text" field.
func SourceTextLT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldSourceText, v))
}

// SourceTextLTE applies the LTE predicate on the "source_text" field.
func SourceTextLTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldSourceText, v))
}

// SourceTextContains applies the Contains predicate on the "source_text" field.
func SourceTextContains(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContains(FieldSourceText, v))
}

// SourceTextHasPrefix applies the HasPrefix predicate on the "source_text" field.
func SourceTextHasPrefix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasPrefix(FieldSourceText, v))
}

// SourceTextHasSuffix applies the HasSuffix predicate on the "source_text" field.
func SourceTextHasSuffix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasSuffix(FieldSourceText, v))
}

// SourceTextIsNil applies the IsNil predicate on the "source_text" field.
func SourceTextIsNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIsNull(FieldSourceText))
}

// SourceTextNotNil applies the NotNil predicate on the "source_text" field.
func SourceTextNotNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotNull(FieldSourceText))
}

// SourceTextEqualFold applies the EqualFold predicate on the "source_text" field.
func SourceTextEqualFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEqualFold(FieldSourceText, v))
}

// SourceTextContainsFold applies the ContainsFold predicate on the "source_text" field.
func SourceTextContainsFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContainsFold(FieldSourceText, v))
}

// VerifiedEQ applies the EQ predicate on the "verified" field.
func VerifiedEQ(v bool) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldVerified, v))
}

// VerifiedNEQ applies the NEQ predicate on the "verified" field.
func VerifiedNEQ(v bool) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldVerified, v))
}

// ValidationStatusEQ applies the EQ predicate on the "validation_status" field.
func ValidationStatusEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldValidationStatus, v))
}

// ValidationStatusNEQ applies the NEQ predicate on the "validation_status" field.
func ValidationStatusNEQ(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldValidationStatus, v))
}

// ValidationStatusIn applies the In predicate on the "validation_status" field.
func ValidationStatusIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldValidationStatus, vs...))
}

// ValidationStatusNotIn applies the NotIn predicate on the "validation_status" field.
func ValidationStatusNotIn(vs ...string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldValidationStatus, vs...))
}

// ValidationStatusGT applies the GT predicate on the "validation_status" field.
func ValidationStatusGT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldValidationStatus, v))
}

// ValidationStatusGTE applies the GTE predicate on the "validation_status" field.
func ValidationStatusGTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldValidationStatus, v))
}

// ValidationStatusLT applies the LT predicate on the "validation_status" field.
func ValidationStatusLT(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldValidationStatus, v))
}

// ValidationStatusLTE applies the LTE predicate on the "validation_status" field.
func ValidationStatusLTE(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldValidationStatus, v))
}

// ValidationStatusContains applies the Contains predicate on the "validation_status" field.
func ValidationStatusContains(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContains(FieldValidationStatus, v))
}

// ValidationStatusHasPrefix applies the HasPrefix predicate on the "validation_status" field.
func ValidationStatusHasPrefix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasPrefix(FieldValidationStatus, v))
}

// ValidationStatusHasSuffix applies the HasSuffix predicate on the "validation_status" field.
func ValidationStatusHasSuffix(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldHasSuffix(FieldValidationStatus, v))
}

// ValidationStatusEqualFold applies the EqualFold predicate on the "validation_status" field.
func ValidationStatusEqualFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEqualFold(FieldValidationStatus, v))
}

// ValidationStatusContainsFold applies the ContainsFold predicate on the "validation_status" field.
func ValidationStatusContainsFold(v string) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldContainsFold(FieldValidationStatus, v))
}

// ValidationErrorsIsNil applies the IsNil predicate on the "validation_errors" field.
func ValidationErrorsIsNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIsNull(FieldValidationErrors))
}

// ValidationErrorsNotNil applies the NotNil predicate on the "validation_errors" field.
func ValidationErrorsNotNil() predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotNull(FieldValidationErrors))
}

// AuditPriorityEQ applies the EQ predicate on the "audit_priority" field.
func AuditPriorityEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldEQ(FieldAuditPriority, v))
}

// AuditPriorityNEQ applies the NEQ predicate on the "audit_priority" field.
func AuditPriorityNEQ(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNEQ(FieldAuditPriority, v))
}

// AuditPriorityIn applies the In predicate on the "audit_priority" field.
func AuditPriorityIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldIn(FieldAuditPriority, vs...))
}

// AuditPriorityNotIn applies the NotIn predicate on the "audit_priority" field.
func AuditPriorityNotIn(vs ...int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldNotIn(FieldAuditPriority, vs...))
}

// AuditPriorityGT applies the GT predicate on the "audit_priority" field.
func AuditPriorityGT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGT(FieldAuditPriority, v))
}

// AuditPriorityGTE applies the GTE predicate on the "audit_priority" field.
func AuditPriorityGTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldGTE(FieldAuditPriority, v))
}

// AuditPriorityLT applies the LT predicate on the "audit_priority" field.
func AuditPriorityLT(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLT(FieldAuditPriority, v))
}

// AuditPriorityLTE applies the LTE predicate on the "audit_priority" field.
func AuditPriorityLTE(v int) predicate.ExtractedField {
	return predicate.ExtractedField(sql.FieldLTE(FieldAuditPriority, v))
}

// HasExtraction applies the HasEdge predicate on the "extraction" edge.
func HasExtraction() predicate.ExtractedField {
	return predicate.ExtractedField(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExtractionTable, ExtractionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExtractionWith applies the HasEdge predicate on the "extraction" edge with a given conditions (other predicates).
func HasExtractionWith(preds ...predicate.Extraction) predicate.ExtractedField {
	return predicate.ExtractedField(func(s *sql.Selector) {
		step := newExtractionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedField) predicate.ExtractedField {
	return predicate.ExtractedField(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedField) predicate.ExtractedField {
	return predicate.ExtractedField(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedField) predicate.ExtractedField {
	return predicate.ExtractedField(sql.NotPredicates(p))
}
