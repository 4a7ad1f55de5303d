// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	"github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
)

// ParseRecordCreate is the builder for creating a ParseRecord entity.
type ParseRecordCreate struct {
	config
	mutation *ParseRecordMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *ParseRecordCreate) SetFileID(v uuid.UUID) *ParseRecordCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetJobToken sets the "job_token" field.
func (_c *ParseRecordCreate) SetJobToken(v string) *ParseRecordCreate {
	_c.mutation.SetJobToken(v)
	return _c
}

// SetNillableJobToken sets the "job_token" field if the given value is not nil.
func (_c *ParseRecordCreate) SetNillableJobToken(v *string) *ParseRecordCreate {
	if v != nil {
		_c.SetJobToken(*v)
	}
	return _c
}

// SetBlocks sets the "blocks" field.
func (_c *ParseRecordCreate) SetBlocks(v json.RawMessage) *ParseRecordCreate {
	_c.mutation.SetBlocks(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ParseRecordCreate) SetCreatedAt(v time.Time) *ParseRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ParseRecordCreate) SetNillableCreatedAt(v *time.Time) *ParseRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParseRecordCreate) SetID(v uuid.UUID) *ParseRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ParseRecordCreate) SetNillableID(v *uuid.UUID) *ParseRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the PhysicalFile entity.
func (_c *ParseRecordCreate) SetFile(v *PhysicalFile) *ParseRecordCreate {
	return _c.SetFileID(v.ID)
}

// Mutation returns the ParseRecordMutation object of the builder.
func (_c *ParseRecordCreate) Mutation() *ParseRecordMutation {
	return _c.mutation
}

// Save creates the ParseRecord in the database.
func (_c *ParseRecordCreate) Save(ctx context.Context) (*ParseRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParseRecordCreate) SaveX(ctx context.Context) *ParseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParseRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := parserecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := parserecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParseRecordCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "ParseRecord.file_id"`)}
	}
	if _, ok := _c.mutation.Blocks(); !ok {
		return &ValidationError{Name: "blocks", err: errors.New(`ent: missing required field "ParseRecord.blocks"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ParseRecord.created_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "ParseRecord.file"`)}
	}
	return nil
}

func (_c *ParseRecordCreate) sqlSave(ctx context.Context) (*ParseRecord, error) {
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

func (_c *ParseRecordCreate) createSpec() (*ParseRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ParseRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(parserecord.Table, sqlgraph.NewFieldSpec(parserecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.JobToken(); ok {
		_spec.SetField(parserecord.FieldJobToken, field.TypeString, value)
		_node.JobToken = value
	}
	if value, ok := _c.mutation.Blocks(); ok {
		_spec.SetField(parserecord.FieldBlocks, field.TypeJSON, value)
		_node.Blocks = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(parserecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   parserecord.FileTable,
			Columns: []string{parserecord.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicalfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ParseRecordCreateBulk is the builder for creating many ParseRecord entities in bulk.
type ParseRecordCreateBulk struct {
	config
	err      error
	builders []*ParseRecordCreate
}

// Save creates the ParseRecord entities in the database.
func (_c *ParseRecordCreateBulk) Save(ctx context.Context) ([]*ParseRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ParseRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParseRecordMutation)
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
func (_c *ParseRecordCreateBulk) SaveX(ctx context.Context) []*ParseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParseRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParseRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
