// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/extractedfield"
	"github.com/oakfield-labs/docuflow/gen/ent/extraction"
)

// ExtractedFieldCreate is the builder for creating a ExtractedField entity.
type ExtractedFieldCreate struct {
	config
	mutation *ExtractedFieldMutation
	hooks    []Hook
}

// SetExtractionID sets the "extraction_id" field.
func (_c *ExtractedFieldCreate) SetExtractionID(v uuid.UUID) *ExtractedFieldCreate {
	_c.mutation.SetExtractionID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ExtractedFieldCreate) SetName(v string) *ExtractedFieldCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ExtractedFieldCreate) SetValue(v json.RawMessage) *ExtractedFieldCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractedFieldCreate) SetConfidence(v float32) *ExtractedFieldCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableConfidence(v *float32) *ExtractedFieldCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetSourcePage sets the "source_page" field.
func (_c *ExtractedFieldCreate) SetSourcePage(v int) *ExtractedFieldCreate {
	_c.mutation.SetSourcePage(v)
	return _c
}

// SetNillableSourcePage sets the "source_page" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableSourcePage(v *int) *ExtractedFieldCreate {
	if v != nil {
		_c.SetSourcePage(*v)
	}
	return _c
}

// SetSourceBbox sets the "source_bbox" field.
func (_c *ExtractedFieldCreate) SetSourceBbox(v json.RawMessage) *ExtractedFieldCreate {
	_c.mutation.SetSourceBbox(v)
	return _c
}

// SetSourceText sets the "source_text" field.
func (_c *ExtractedFieldCreate) SetSourceText(v string) *ExtractedFieldCreate {
	_c.mutation.SetSourceText(v)
	return _c
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableSourceText(v *string) *ExtractedFieldCreate {
	if v != nil {
		_c.SetSourceText(*v)
	}
	return _c
}

// SetVerified sets the "verified" field.
func (_c *ExtractedFieldCreate) SetVerified(v bool) *ExtractedFieldCreate {
	_c.mutation.SetVerified(v)
	return _c
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableVerified(v *bool) *ExtractedFieldCreate {
	if v != nil {
		_c.SetVerified(*v)
	}
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *ExtractedFieldCreate) SetValidationStatus(v string) *ExtractedFieldCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableValidationStatus(v *string) *ExtractedFieldCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetValidationErrors sets the "validation_errors" field.
func (_c *ExtractedFieldCreate) SetValidationErrors(v []string) *ExtractedFieldCreate {
	_c.mutation.SetValidationErrors(v)
	return _c
}

// SetAuditPriority sets the "audit_priority" field.
func (_c *ExtractedFieldCreate) SetAuditPriority(v int) *ExtractedFieldCreate {
	_c.mutation.SetAuditPriority(v)
	return _c
}

// SetNillableAuditPriority sets the "audit_priority" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableAuditPriority(v *int) *ExtractedFieldCreate {
	if v != nil {
		_c.SetAuditPriority(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedFieldCreate) SetID(v uuid.UUID) *ExtractedFieldCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractedFieldCreate) SetNillableID(v *uuid.UUID) *ExtractedFieldCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_c *ExtractedFieldCreate) SetExtraction(v *Extraction) *ExtractedFieldCreate {
	return _c.SetExtractionID(v.ID)
}

// Mutation returns the ExtractedFieldMutation object of the builder.
func (_c *ExtractedFieldCreate) Mutation() *ExtractedFieldMutation {
	return _c.mutation
}

// Save creates the ExtractedField in the database.
func (_c *ExtractedFieldCreate) Save(ctx context.Context) (*ExtractedField, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedFieldCreate) SaveX(ctx context.Context) *ExtractedField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedFieldCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedFieldCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedFieldCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := extractedfield.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Verified(); !ok {
		v := extractedfield.DefaultVerified
		_c.mutation.SetVerified(v)
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := extractedfield.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.AuditPriority(); !ok {
		v := extractedfield.DefaultAuditPriority
		_c.mutation.SetAuditPriority(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extractedfield.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedFieldCreate) check() error {
	if _, ok := _c.mutation.ExtractionID(); !ok {
		return &ValidationError{Name: "extraction_id", err: errors.New(`ent: missing required field "ExtractedField.extraction_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ExtractedField.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := extractedfield.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ExtractedField.confidence"`)}
	}
	if _, ok := _c.mutation.Verified(); !ok {
		return &ValidationError{Name: "verified", err: errors.New(`ent: missing required field "ExtractedField.verified"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "ExtractedField.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := extractedfield.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AuditPriority(); !ok {
		return &ValidationError{Name: "audit_priority", err: errors.New(`ent: missing required field "ExtractedField.audit_priority"`)}
	}
	if v, ok := _c.mutation.AuditPriority(); ok {
		if err := extractedfield.AuditPriorityValidator(v); err != nil {
			return &ValidationError{Name: "audit_priority", err: fmt.Errorf(`ent: validator failed for field "ExtractedField.audit_priority": %w`, err)}
		}
	}
	if len(_c.mutation.ExtractionIDs()) == 0 {
		return &ValidationError{Name: "extraction", err: errors.New(`ent: missing required edge "ExtractedField.extraction"`)}
	}
	return nil
}

func (_c *ExtractedFieldCreate) sqlSave(ctx context.Context) (*ExtractedField, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractedFieldCreate) createSpec() (*ExtractedField, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedField{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedfield.Table, sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(extractedfield.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(extractedfield.FieldValue, field.TypeJSON, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extractedfield.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.SourcePage(); ok {
		_spec.SetField(extractedfield.FieldSourcePage, field.TypeInt, value)
		_node.SourcePage = &value
	}
	if value, ok := _c.mutation.SourceBbox(); ok {
		_spec.SetField(extractedfield.FieldSourceBbox, field.TypeJSON, value)
		_node.SourceBbox = value
	}
	if value, ok := _c.mutation.SourceText(); ok {
		_spec.SetField(extractedfield.FieldSourceText, field.TypeString, value)
		_node.SourceText = value
	}
	if value, ok := _c.mutation.Verified(); ok {
		_spec.SetField(extractedfield.FieldVerified, field.TypeBool, value)
		_node.Verified = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(extractedfield.FieldValidationStatus, field.TypeString, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.ValidationErrors(); ok {
		_spec.SetField(extractedfield.FieldValidationErrors, field.TypeJSON, value)
		_node.ValidationErrors = value
	}
	if value, ok := _c.mutation.AuditPriority(); ok {
		_spec.SetField(extractedfield.FieldAuditPriority, field.TypeInt, value)
		_node.AuditPriority = value
	}
	if nodes := _c.mutation.ExtractionIDs(); len(nodes) > 0 {
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
		_node.ExtractionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractedFieldCreateBulk is the builder for creating many ExtractedField entities in bulk.
type ExtractedFieldCreateBulk struct {
	config
	err      error
	builders []*ExtractedFieldCreate
}

// Save creates the ExtractedField entities in the database.
func (_c *ExtractedFieldCreateBulk) Save(ctx context.Context) ([]*ExtractedField, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedField, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedFieldMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtractedFieldCreateBulk) SaveX(ctx context.Context) []*ExtractedField {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedFieldCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedFieldCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
