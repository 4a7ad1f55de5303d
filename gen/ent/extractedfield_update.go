// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/extractedfield"
	"github.com/oakfield-labs/docuflow/gen/ent/extraction"
	"github.com/oakfield-labs/docuflow/gen/ent/predicate"
)

// ExtractedFieldUpdate is the builder for updating ExtractedField entities.
type ExtractedFieldUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// Where appends a list predicates to the ExtractedFieldUpdate builder.
func (_u *ExtractedFieldUpdate) Where(ps ...predicate.ExtractedField) *ExtractedFieldUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExtractionID sets the "extraction_id" field.
func (_u *ExtractedFieldUpdate) SetExtractionID(v uuid.UUID) *ExtractedFieldUpdate {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableExtractionID(v *uuid.UUID) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExtractedFieldUpdate) SetName(v string) *ExtractedFieldUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableName(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ExtractedFieldUpdate) SetValue(v json.RawMessage) *ExtractedFieldUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// AppendValue appends value to the "value" field.
func (_u *ExtractedFieldUpdate) AppendValue(v json.RawMessage) *ExtractedFieldUpdate {
	_u.mutation.AppendValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *ExtractedFieldUpdate) ClearValue() *ExtractedFieldUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractedFieldUpdate) SetConfidence(v float32) *ExtractedFieldUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableConfidence(v *float32) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractedFieldUpdate) AddConfidence(v float32) *ExtractedFieldUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourcePage sets the "source_page" field.
func (_u *ExtractedFieldUpdate) SetSourcePage(v int) *ExtractedFieldUpdate {
	_u.mutation.ResetSourcePage()
	_u.mutation.SetSourcePage(v)
	return _u
}

// SetNillableSourcePage sets the "source_page" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableSourcePage(v *int) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetSourcePage(*v)
	}
	return _u
}

// AddSourcePage adds value to the "source_page" field.
func (_u *ExtractedFieldUpdate) AddSourcePage(v int) *ExtractedFieldUpdate {
	_u.mutation.AddSourcePage(v)
	return _u
}

// ClearSourcePage clears the value of the "source_page" field.
func (_u *ExtractedFieldUpdate) ClearSourcePage() *ExtractedFieldUpdate {
	_u.mutation.ClearSourcePage()
	return _u
}

// SetSourceBbox sets the "source_bbox" field.
func (_u *ExtractedFieldUpdate) SetSourceBbox(v json.RawMessage) *ExtractedFieldUpdate {
	_u.mutation.SetSourceBbox(v)
	return _u
}

// AppendSourceBbox appends value to the "source_bbox" field.
func (_u *ExtractedFieldUpdate) AppendSourceBbox(v json.RawMessage) *ExtractedFieldUpdate {
	_u.mutation.AppendSourceBbox(v)
	return _u
}

// ClearSourceBbox clears the value of the "source_bbox" field.
func (_u *ExtractedFieldUpdate) ClearSourceBbox() *ExtractedFieldUpdate {
	_u.mutation.ClearSourceBbox()
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *ExtractedFieldUpdate) SetSourceText(v string) *ExtractedFieldUpdate {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableSourceText(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// ClearSourceText clears the value of the "source_text" field.
func (_u *ExtractedFieldUpdate) ClearSourceText() *ExtractedFieldUpdate {
	_u.mutation.ClearSourceText()
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ExtractedFieldUpdate) SetVerified(v bool) *ExtractedFieldUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableVerified(v *bool) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *ExtractedFieldUpdate) SetValidationStatus(v string) *ExtractedFieldUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableValidationStatus(v *string) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetValidationErrors sets the "validation_errors" field.
func (_u *ExtractedFieldUpdate) SetValidationErrors(v []string) *ExtractedFieldUpdate {
	_u.mutation.SetValidationErrors(v)
	return _u
}

// AppendValidationErrors appends value to the "validation_errors" field.
func (_u *ExtractedFieldUpdate) AppendValidationErrors(v []string) *ExtractedFieldUpdate {
	_u.mutation.AppendValidationErrors(v)
	return _u
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (_u *ExtractedFieldUpdate) ClearValidationErrors() *ExtractedFieldUpdate {
	_u.mutation.ClearValidationErrors()
	return _u
}

// SetAuditPriority sets the "audit_priority" field.
func (_u *ExtractedFieldUpdate) SetAuditPriority(v int) *ExtractedFieldUpdate {
	_u.mutation.ResetAuditPriority()
	_u.mutation.SetAuditPriority(v)
	return _u
}

// SetNillableAuditPriority sets the "audit_priority" field if the given value is not nil.
func (_u *ExtractedFieldUpdate) SetNillableAuditPriority(v *int) *ExtractedFieldUpdate {
	if v != nil {
		_u.SetAuditPriority(*v)
	}
	return _u
}

// AddAuditPriority adds value to the "audit_priority" field.
func (_u *ExtractedFieldUpdate) AddAuditPriority(v int) *ExtractedFieldUpdate {
	_u.mutation.AddAuditPriority(v)
	return _u
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_u *ExtractedFieldUpdate) SetExtraction(v *Extraction) *ExtractedFieldUpdate {
	return _u.SetExtractionID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_u *ExtractedFieldUpdate) Mutation() *ExtractedFieldMutation {
	return _u.mutation
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (_u *ExtractedFieldUpdate) ClearExtraction() *ExtractedFieldUpdate {
	_u.mutation.ClearExtraction()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedFieldUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFieldUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedFieldUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFieldUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFieldUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := extractedfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := extractedfield.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.validation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuditPriority(); ok {
		if err := extractedfield.AuditPriorityValidator(v); err != nil {
			return &ValidationError{Name: "audit_priority", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.audit_priority": %w`, err)}
		}
	}
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedField.extraction"`)
	}
	return nil
}

func (_u *ExtractedFieldUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfield.Table, extractedfield.Columns, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(extractedfield.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(extractedfield.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedfield.FieldValue, value)
		})
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(extractedfield.FieldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractedfield.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractedfield.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.SourcePage(); ok {
		_spec.SetField(extractedfield.FieldSourcePage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourcePage(); ok {
		_spec.AddField(extractedfield.FieldSourcePage, field.TypeInt, value)
	}
	if _u.mutation.SourcePageCleared() {
		_spec.ClearField(extractedfield.FieldSourcePage, field.TypeInt)
	}
	if value, ok := _u.mutation.SourceBbox(); ok {
		_spec.SetField(extractedfield.FieldSourceBbox, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceBbox(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedfield.FieldSourceBbox, value)
		})
	}
	if _u.mutation.SourceBboxCleared() {
		_spec.ClearField(extractedfield.FieldSourceBbox, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(extractedfield.FieldSourceText, field.TypeString, value)
	}
	if _u.mutation.SourceTextCleared() {
		_spec.ClearField(extractedfield.FieldSourceText, field.TypeString)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(extractedfield.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(extractedfield.FieldValidationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationErrors(); ok {
		_spec.SetField(extractedfield.FieldValidationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedfield.FieldValidationErrors, value)
		})
	}
	if _u.mutation.ValidationErrorsCleared() {
		_spec.ClearField(extractedfield.FieldValidationErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.AuditPriority(); ok {
		_spec.SetField(extractedfield.FieldAuditPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAuditPriority(); ok {
		_spec.AddField(extractedfield.FieldAuditPriority, field.TypeInt, value)
	}
	if _u.mutation.ExtractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.ExtractionTable,
			Columns: []string{extractedfield.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.ExtractionTable,
			Columns: []string{extractedfield.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedFieldUpdateOne is the builder for updating a single ExtractedField entity.
type ExtractedFieldUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedFieldMutation
}

// SetExtractionID sets the "extraction_id" field.
func (_u *ExtractedFieldUpdateOne) SetExtractionID(v uuid.UUID) *ExtractedFieldUpdateOne {
	_u.mutation.SetExtractionID(v)
	return _u
}

// SetNillableExtractionID sets the "extraction_id" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableExtractionID(v *uuid.UUID) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetExtractionID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExtractedFieldUpdateOne) SetName(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableName(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ExtractedFieldUpdateOne) SetValue(v json.RawMessage) *ExtractedFieldUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// AppendValue appends value to the "value" field.
func (_u *ExtractedFieldUpdateOne) AppendValue(v json.RawMessage) *ExtractedFieldUpdateOne {
	_u.mutation.AppendValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *ExtractedFieldUpdateOne) ClearValue() *ExtractedFieldUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractedFieldUpdateOne) SetConfidence(v float32) *ExtractedFieldUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableConfidence(v *float32) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractedFieldUpdateOne) AddConfidence(v float32) *ExtractedFieldUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSourcePage sets the "source_page" field.
func (_u *ExtractedFieldUpdateOne) SetSourcePage(v int) *ExtractedFieldUpdateOne {
	_u.mutation.ResetSourcePage()
	_u.mutation.SetSourcePage(v)
	return _u
}

// SetNillableSourcePage sets the "source_page" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableSourcePage(v *int) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetSourcePage(*v)
	}
	return _u
}

// AddSourcePage adds value to the "source_page" field.
func (_u *ExtractedFieldUpdateOne) AddSourcePage(v int) *ExtractedFieldUpdateOne {
	_u.mutation.AddSourcePage(v)
	return _u
}

// ClearSourcePage clears the value of the "source_page" field.
func (_u *ExtractedFieldUpdateOne) ClearSourcePage() *ExtractedFieldUpdateOne {
	_u.mutation.ClearSourcePage()
	return _u
}

// SetSourceBbox sets the "source_bbox" field.
func (_u *ExtractedFieldUpdateOne) SetSourceBbox(v json.RawMessage) *ExtractedFieldUpdateOne {
	_u.mutation.SetSourceBbox(v)
	return _u
}

// AppendSourceBbox appends value to the "source_bbox" field.
func (_u *ExtractedFieldUpdateOne) AppendSourceBbox(v json.RawMessage) *ExtractedFieldUpdateOne {
	_u.mutation.AppendSourceBbox(v)
	return _u
}

// ClearSourceBbox clears the value of the "source_bbox" field.
func (_u *ExtractedFieldUpdateOne) ClearSourceBbox() *ExtractedFieldUpdateOne {
	_u.mutation.ClearSourceBbox()
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *ExtractedFieldUpdateOne) SetSourceText(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableSourceText(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// ClearSourceText clears the value of the "source_text" field.
func (_u *ExtractedFieldUpdateOne) ClearSourceText() *ExtractedFieldUpdateOne {
	_u.mutation.ClearSourceText()
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ExtractedFieldUpdateOne) SetVerified(v bool) *ExtractedFieldUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableVerified(v *bool) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *ExtractedFieldUpdateOne) SetValidationStatus(v string) *ExtractedFieldUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableValidationStatus(v *string) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetValidationErrors sets the "validation_errors" field.
func (_u *ExtractedFieldUpdateOne) SetValidationErrors(v []string) *ExtractedFieldUpdateOne {
	_u.mutation.SetValidationErrors(v)
	return _u
}

// AppendValidationErrors appends value to the "validation_errors" field.
func (_u *ExtractedFieldUpdateOne) AppendValidationErrors(v []string) *ExtractedFieldUpdateOne {
	_u.mutation.AppendValidationErrors(v)
	return _u
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (_u *ExtractedFieldUpdateOne) ClearValidationErrors() *ExtractedFieldUpdateOne {
	_u.mutation.ClearValidationErrors()
	return _u
}

// SetAuditPriority sets the "audit_priority" field.
func (_u *ExtractedFieldUpdateOne) SetAuditPriority(v int) *ExtractedFieldUpdateOne {
	_u.mutation.ResetAuditPriority()
	_u.mutation.SetAuditPriority(v)
	return _u
}

// SetNillableAuditPriority sets the "audit_priority" field if the given value is not nil.
func (_u *ExtractedFieldUpdateOne) SetNillableAuditPriority(v *int) *ExtractedFieldUpdateOne {
	if v != nil {
		_u.SetAuditPriority(*v)
	}
	return _u
}

// AddAuditPriority adds value to the "audit_priority" field.
func (_u *ExtractedFieldUpdateOne) AddAuditPriority(v int) *ExtractedFieldUpdateOne {
	_u.mutation.AddAuditPriority(v)
	return _u
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_u *ExtractedFieldUpdateOne) SetExtraction(v *Extraction) *ExtractedFieldUpdateOne {
	return _u.SetExtractionID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_u *ExtractedFieldUpdateOne) Mutation() *ExtractedFieldMutation {
	return _u.mutation
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (_u *ExtractedFieldUpdateOne) ClearExtraction() *ExtractedFieldUpdateOne {
	_u.mutation.ClearExtraction()
	return _u
}

// Where appends a list predicates to the ExtractedFieldUpdate builder.
func (_u *ExtractedFieldUpdateOne) Where(ps ...predicate.ExtractedField) *ExtractedFieldUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedFieldUpdateOne) Select(field string, fields ...string) *ExtractedFieldUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedField entity.
func (_u *ExtractedFieldUpdateOne) Save(ctx context.Context) (*ExtractedField, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedFieldUpdateOne) SaveX(ctx context.Context) *ExtractedField {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedFieldUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedFieldUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedFieldUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := extractedfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := extractedfield.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.validation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuditPriority(); ok {
		if err := extractedfield.AuditPriorityValidator(v); err != nil {
			return &ValidationError{Name: "audit_priority", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.audit_priority": %w`, err)}
		}
	}
	if _u.mutation.ExtractionCleared() && len(_u.mutation.ExtractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedField.extraction"`)
	}
	return nil
}

func (_u *ExtractedFieldUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedField, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedfield.Table, extractedfield.Columns, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedField.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedfield.FieldID)
		for _, f := range fields {
			if !extractedfield.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedfield.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(extractedfield.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(extractedfield.FieldValue, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValue(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedfield.FieldValue, value)
		})
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(extractedfield.FieldValue, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractedfield.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractedfield.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.SourcePage(); ok {
		_spec.SetField(extractedfield.FieldSourcePage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourcePage(); ok {
		_spec.AddField(extractedfield.FieldSourcePage, field.TypeInt, value)
	}
	if _u.mutation.SourcePageCleared() {
		_spec.ClearField(extractedfield.FieldSourcePage, field.TypeInt)
	}
	if value, ok := _u.mutation.SourceBbox(); ok {
		_spec.SetField(extractedfield.FieldSourceBbox, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSourceBbox(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedfield.FieldSourceBbox, value)
		})
	}
	if _u.mutation.SourceBboxCleared() {
		_spec.ClearField(extractedfield.FieldSourceBbox, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(extractedfield.FieldSourceText, field.TypeString, value)
	}
	if _u.mutation.SourceTextCleared() {
		_spec.ClearField(extractedfield.FieldSourceText, field.TypeString)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(extractedfield.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(extractedfield.FieldValidationStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationErrors(); ok {
		_spec.SetField(extractedfield.FieldValidationErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidationErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedfield.FieldValidationErrors, value)
		})
	}
	if _u.mutation.ValidationErrorsCleared() {
		_spec.ClearField(extractedfield.FieldValidationErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.AuditPriority(); ok {
		_spec.SetField(extractedfield.FieldAuditPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAuditPriority(); ok {
		_spec.AddField(extractedfield.FieldAuditPriority, field.TypeInt, value)
	}
	if _u.mutation.ExtractionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.ExtractionTable,
			Columns: []string{extractedfield.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedfield.ExtractionTable,
			Columns: []string{extractedfield.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedField{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedfield.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
