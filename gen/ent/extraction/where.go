// Code generated by ent, DO NOT EDIT.

package extraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFileID, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldTemplateID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldErrorMessage, v))
}

// OrganizedPath applies equality check predicate on the "organized_path" field. It's identical to OrganizedPathEQ.
func OrganizedPath(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldOrganizedPath, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFinishedAt, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldFileID, vs...))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...uuid.UUID) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldTemplateID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldErrorMessage, v))
}

// OrganizedPathEQ applies the EQ predicate on the "organized_path" field.
func OrganizedPathEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldOrganizedPath, v))
}

// OrganizedPathNEQ applies the NEQ predicate on the "organized_path" field.
func OrganizedPathNEQ(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldOrganizedPath, v))
}

// OrganizedPathIn applies the In predicate on the "organized_path" field.
func OrganizedPathIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldOrganizedPath, vs...))
}

// OrganizedPathNotIn applies the NotIn predicate on the "organized_path" field.
func OrganizedPathNotIn(vs ...string) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldOrganizedPath, vs...))
}

// OrganizedPathGT applies the GT predicate on the "organized_path" field.
func OrganizedPathGT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldOrganizedPath, v))
}

// OrganizedPathGTE applies the GTE predicate on the "organized_path" field.
func OrganizedPathGTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldOrganizedPath, v))
}

// OrganizedPathLT applies the LT predicate on the "organized_path" field.
func OrganizedPathLT(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldOrganizedPath, v))
}

// OrganizedPathLTE applies the LTE predicate on the "organized_path" field.
func OrganizedPathLTE(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldOrganizedPath, v))
}

// OrganizedPathContains applies the Contains predicate on the "organized_path" field.
func OrganizedPathContains(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContains(FieldOrganizedPath, v))
}

// OrganizedPathHasPrefix applies the HasPrefix predicate on the "organized_path" field.
func OrganizedPathHasPrefix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasPrefix(FieldOrganizedPath, v))
}

// OrganizedPathHasSuffix applies the HasSuffix predicate on the "organized_path" field.
func OrganizedPathHasSuffix(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldHasSuffix(FieldOrganizedPath, v))
}

// OrganizedPathIsNil applies the IsNil predicate on the "organized_path" field.
func OrganizedPathIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldOrganizedPath))
}

// OrganizedPathNotNil applies the NotNil predicate on the "organized_path" field.
func OrganizedPathNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldOrganizedPath))
}

// OrganizedPathEqualFold applies the EqualFold predicate on the "organized_path" field.
func OrganizedPathEqualFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldEqualFold(FieldOrganizedPath, v))
}

// OrganizedPathContainsFold applies the ContainsFold predicate on the "organized_path" field.
func OrganizedPathContainsFold(v string) predicate.Extraction {
	return predicate.Extraction(sql.FieldContainsFold(FieldOrganizedPath, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldStartedAt, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Extraction {
	return predicate.Extraction(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.Extraction {
	return predicate.Extraction(sql.FieldNotNull(FieldFinishedAt))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.Extraction {
	return predicate.Extraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.PhysicalFile) predicate.Extraction {
	return predicate.Extraction(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTemplate applies the HasEdge predicate on the "template" edge.
func HasTemplate() predicate.Extraction {
	return predicate.Extraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TemplateTable, TemplateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTemplateWith applies the HasEdge predicate on the "template" edge with a given conditions (other predicates).
func HasTemplateWith(preds ...predicate.Template) predicate.Extraction {
	return predicate.Extraction(func(s *sql.Selector) {
		step := newTemplateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFields applies the HasEdge predicate on the "fields" edge.
func HasFields() predicate.Extraction {
	return predicate.Extraction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FieldsTable, FieldsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldsWith applies the HasEdge predicate on the "fields" edge with a given conditions (other predicates).
func HasFieldsWith(preds ...predicate.ExtractedField) predicate.Extraction {
	return predicate.Extraction(func(s *sql.Selector) {
		step := newFieldsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Extraction) predicate.Extraction {
	return predicate.Extraction(sql.NotPredicates(p))
}
