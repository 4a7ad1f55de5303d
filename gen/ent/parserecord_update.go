// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	"github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
	"github.com/oakfield-labs/docuflow/gen/ent/predicate"
)

// ParseRecordUpdate is the builder for updating ParseRecord entities.
type ParseRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ParseRecordMutation
}

// Where appends a list predicates to the ParseRecordUpdate builder.
func (_u *ParseRecordUpdate) Where(ps ...predicate.ParseRecord) *ParseRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ParseRecordUpdate) SetFileID(v uuid.UUID) *ParseRecordUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ParseRecordUpdate) SetNillableFileID(v *uuid.UUID) *ParseRecordUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetJobToken sets the "job_token" field.
func (_u *ParseRecordUpdate) SetJobToken(v string) *ParseRecordUpdate {
	_u.mutation.SetJobToken(v)
	return _u
}

// SetNillableJobToken sets the "job_token" field if the given value is not nil.
func (_u *ParseRecordUpdate) SetNillableJobToken(v *string) *ParseRecordUpdate {
	if v != nil {
		_u.SetJobToken(*v)
	}
	return _u
}

// ClearJobToken clears the value of the "job_token" field.
func (_u *ParseRecordUpdate) ClearJobToken() *ParseRecordUpdate {
	_u.mutation.ClearJobToken()
	return _u
}

// SetBlocks sets the "blocks" field.
func (_u *ParseRecordUpdate) SetBlocks(v json.RawMessage) *ParseRecordUpdate {
	_u.mutation.SetBlocks(v)
	return _u
}

// AppendBlocks appends value to the "blocks" field.
func (_u *ParseRecordUpdate) AppendBlocks(v json.RawMessage) *ParseRecordUpdate {
	_u.mutation.AppendBlocks(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ParseRecordUpdate) SetCreatedAt(v time.Time) *ParseRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ParseRecordUpdate) SetNillableCreatedAt(v *time.Time) *ParseRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the PhysicalFile entity.
func (_u *ParseRecordUpdate) SetFile(v *PhysicalFile) *ParseRecordUpdate {
	return _u.SetFileID(v.ID)
}

// Mutation returns the ParseRecordMutation object of the builder.
func (_u *ParseRecordUpdate) Mutation() *ParseRecordMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the PhysicalFile entity.
func (_u *ParseRecordUpdate) ClearFile() *ParseRecordUpdate {
	_u.mutation.ClearFile()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParseRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParseRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseRecordUpdate) check() error {
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseRecord.file"`)
	}
	return nil
}

func (_u *ParseRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parserecord.Table, parserecord.Columns, sqlgraph.NewFieldSpec(parserecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobToken(); ok {
		_spec.SetField(parserecord.FieldJobToken, field.TypeString, value)
	}
	if _u.mutation.JobTokenCleared() {
		_spec.ClearField(parserecord.FieldJobToken, field.TypeString)
	}
	if value, ok := _u.mutation.Blocks(); ok {
		_spec.SetField(parserecord.FieldBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parserecord.FieldBlocks, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(parserecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParseRecordUpdateOne is the builder for updating a single ParseRecord entity.
type ParseRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParseRecordMutation
}

// SetFileID sets the "file_id" field.
func (_u *ParseRecordUpdateOne) SetFileID(v uuid.UUID) *ParseRecordUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ParseRecordUpdateOne) SetNillableFileID(v *uuid.UUID) *ParseRecordUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetJobToken sets the "job_token" field.
func (_u *ParseRecordUpdateOne) SetJobToken(v string) *ParseRecordUpdateOne {
	_u.mutation.SetJobToken(v)
	return _u
}

// SetNillableJobToken sets the "job_token" field if the given value is not nil.
func (_u *ParseRecordUpdateOne) SetNillableJobToken(v *string) *ParseRecordUpdateOne {
	if v != nil {
		_u.SetJobToken(*v)
	}
	return _u
}

// ClearJobToken clears the value of the "job_token" field.
func (_u *ParseRecordUpdateOne) ClearJobToken() *ParseRecordUpdateOne {
	_u.mutation.ClearJobToken()
	return _u
}

// SetBlocks sets the "blocks" field.
func (_u *ParseRecordUpdateOne) SetBlocks(v json.RawMessage) *ParseRecordUpdateOne {
	_u.mutation.SetBlocks(v)
	return _u
}

// AppendBlocks appends value to the "blocks" field.
func (_u *ParseRecordUpdateOne) AppendBlocks(v json.RawMessage) *ParseRecordUpdateOne {
	_u.mutation.AppendBlocks(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ParseRecordUpdateOne) SetCreatedAt(v time.Time) *ParseRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ParseRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *ParseRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the PhysicalFile entity.
func (_u *ParseRecordUpdateOne) SetFile(v *PhysicalFile) *ParseRecordUpdateOne {
	return _u.SetFileID(v.ID)
}

// Mutation returns the ParseRecordMutation object of the builder.
func (_u *ParseRecordUpdateOne) Mutation() *ParseRecordMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the PhysicalFile entity.
func (_u *ParseRecordUpdateOne) ClearFile() *ParseRecordUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// Where appends a list predicates to the ParseRecordUpdate builder.
func (_u *ParseRecordUpdateOne) Where(ps ...predicate.ParseRecord) *ParseRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParseRecordUpdateOne) Select(field string, fields ...string) *ParseRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ParseRecord entity.
func (_u *ParseRecordUpdateOne) Save(ctx context.Context) (*ParseRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParseRecordUpdateOne) SaveX(ctx context.Context) *ParseRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParseRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParseRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParseRecordUpdateOne) check() error {
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ParseRecord.file"`)
	}
	return nil
}

func (_u *ParseRecordUpdateOne) sqlSave(ctx context.Context) (_node *ParseRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(parserecord.Table, parserecord.Columns, sqlgraph.NewFieldSpec(parserecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ParseRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, parserecord.FieldID)
		for _, f := range fields {
			if !parserecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != parserecord.FieldID {
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
	if value, ok := _u.mutation.JobToken(); ok {
		_spec.SetField(parserecord.FieldJobToken, field.TypeString, value)
	}
	if _u.mutation.JobTokenCleared() {
		_spec.ClearField(parserecord.FieldJobToken, field.TypeString)
	}
	if value, ok := _u.mutation.Blocks(); ok {
		_spec.SetField(parserecord.FieldBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, parserecord.FieldBlocks, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(parserecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ParseRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{parserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
