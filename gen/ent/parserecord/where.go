// Code generated by ent, DO NOT EDIT.

package parserecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldEQ(FieldFileID, v))
}

// JobToken applies equality check predicate on the "job_token" field. It's identical to JobTokenEQ.
func JobToken(v string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldEQ(FieldJobToken, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldNotIn(FieldFileID, vs...))
}

// JobTokenEQ applies the EQ predicate on the "job_token" field.
func JobTokenEQ(v string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldEQ(FieldJobToken, v))
}

// JobTokenNEQ applies the NEQ predicate on the "job_token" field.
func JobTokenNEQ(v string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldNEQ(FieldJobToken, v))
}

// JobTokenIn applies the In predicate on the "job_token" field.
func JobTokenIn(vs ...string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldIn(FieldJobToken, vs...))
}

// JobTokenNotIn applies the NotIn predicate on the "job_token" field.
func JobTokenNotIn(vs ...string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldNotIn(FieldJobToken, vs...))
}

// JobTokenGT applies the GT predicate on the "job_token" field.
func JobTokenGT(v string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldGT(FieldJobToken, v))
}

// JobTokenGTE applies the GTE predicate on the "job_token" field.
func JobTokenGTE(v string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldGTE(FieldJobToken, v))
}

// JobTokenLT applies the LT predicate on the "job_token" field.
func JobTokenLT(v string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldLT(FieldJobToken, v))
}

// JobTokenLTE applies the LTE predicate on the "job_token" field.
func JobTokenLTE(v string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldLTE(FieldJobToken, v))
}

// JobTokenContains applies the Contains predicate on the "job_token" field.
func JobTokenContains(v string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldContains(FieldJobToken, v))
}

// JobTokenHasPrefix applies the HasPrefix predicate on the "job_token" field.
func JobTokenHasPrefix(v string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldHasPrefix(FieldJobToken, v))
}

// JobTokenHasSuffix applies the HasSuffix predicate on the "job_token" field.
func JobTokenHasSuffix(v string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldHasSuffix(FieldJobToken, v))
}

// JobTokenIsNil applies the IsNil predicate on the "job_token" field.
func JobTokenIsNil() predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldIsNull(FieldJobToken))
}

// JobTokenNotNil applies the NotNil predicate on the "job_token" field.
func JobTokenNotNil() predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldNotNull(FieldJobToken))
}

// JobTokenEqualFold applies the EqualFold predicate on the "job_token" field.
func JobTokenEqualFold(v string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldEqualFold(FieldJobToken, v))
}

// JobTokenContainsFold applies the ContainsFold predicate on the "job_token" field.
func JobTokenContainsFold(v string) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldContainsFold(FieldJobToken, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ParseRecord {
	return predicate.ParseRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.ParseRecord {
	return predicate.ParseRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.PhysicalFile) predicate.ParseRecord {
	return predicate.ParseRecord(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ParseRecord) predicate.ParseRecord {
	return predicate.ParseRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ParseRecord) predicate.ParseRecord {
	return predicate.ParseRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ParseRecord) predicate.ParseRecord {
	return predicate.ParseRecord(sql.NotPredicates(p))
}
