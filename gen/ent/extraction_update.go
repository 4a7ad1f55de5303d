// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/extractedfield"
	"github.com/oakfield-labs/docuflow/gen/ent/extraction"
	"github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
	"github.com/oakfield-labs/docuflow/gen/ent/predicate"
	"github.com/oakfield-labs/docuflow/gen/ent/template"
)

// ExtractionUpdate is the builder for updating Extraction entities.
type ExtractionUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionMutation
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdate) Where(ps ...predicate.Extraction) *ExtractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *ExtractionUpdate) SetFileID(v uuid.UUID) *ExtractionUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableFileID(v *uuid.UUID) *ExtractionUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ExtractionUpdate) SetTemplateID(v uuid.UUID) *ExtractionUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableTemplateID(v *uuid.UUID) *ExtractionUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionUpdate) SetStatus(v string) *ExtractionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableStatus(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionUpdate) SetErrorMessage(v string) *ExtractionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableErrorMessage(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionUpdate) ClearErrorMessage() *ExtractionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOrganizedPath sets the "organized_path" field.
func (_u *ExtractionUpdate) SetOrganizedPath(v string) *ExtractionUpdate {
	_u.mutation.SetOrganizedPath(v)
	return _u
}

// SetNillableOrganizedPath sets the "organized_path" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableOrganizedPath(v *string) *ExtractionUpdate {
	if v != nil {
		_u.SetOrganizedPath(*v)
	}
	return _u
}

// ClearOrganizedPath clears the value of the "organized_path" field.
func (_u *ExtractionUpdate) ClearOrganizedPath() *ExtractionUpdate {
	_u.mutation.ClearOrganizedPath()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionUpdate) SetStartedAt(v time.Time) *ExtractionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableStartedAt(v *time.Time) *ExtractionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionUpdate) SetFinishedAt(v time.Time) *ExtractionUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionUpdate) SetNillableFinishedAt(v *time.Time) *ExtractionUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionUpdate) ClearFinishedAt() *ExtractionUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetFile sets the "file" edge to the PhysicalFile entity.
func (_u *ExtractionUpdate) SetFile(v *PhysicalFile) *ExtractionUpdate {
	return _u.SetFileID(v.ID)
}

// SetTemplate sets the "template" edge to the Template entity.
func (_u *ExtractionUpdate) SetTemplate(v *Template) *ExtractionUpdate {
	return _u.SetTemplateID(v.ID)
}

// AddFieldIDs adds the "fields" edge to the ExtractedField entity by IDs.
func (_u *ExtractionUpdate) AddFieldIDs(ids ...uuid.UUID) *ExtractionUpdate {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the ExtractedField entity.
func (_u *ExtractionUpdate) AddFields(v ...*ExtractedField) *ExtractionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdate) Mutation() *ExtractionMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the PhysicalFile entity.
func (_u *ExtractionUpdate) ClearFile() *ExtractionUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearTemplate clears the "template" edge to the Template entity.
func (_u *ExtractionUpdate) ClearTemplate() *ExtractionUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// ClearFields clears all "fields" edges to the ExtractedField entity.
func (_u *ExtractionUpdate) ClearFields() *ExtractionUpdate {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to ExtractedField entities by IDs.
func (_u *ExtractionUpdate) RemoveFieldIDs(ids ...uuid.UUID) *ExtractionUpdate {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to ExtractedField entities.
func (_u *ExtractionUpdate) RemoveFields(v ...*ExtractedField) *ExtractionUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Extraction.status": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Extraction.file"`)
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Extraction.template"`)
	}
	return nil
}

func (_u *ExtractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extraction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extraction.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extraction.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OrganizedPath(); ok {
		_spec.SetField(extraction.FieldOrganizedPath, field.TypeString, value)
	}
	if _u.mutation.OrganizedPathCleared() {
		_spec.ClearField(extraction.FieldOrganizedPath, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extraction.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extraction.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extraction.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.FileTable,
			Columns: []string{extraction.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicalfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.FileTable,
			Columns: []string{extraction.FileColumn},
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
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.TemplateTable,
			Columns: []string{extraction.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.TemplateTable,
			Columns: []string{extraction.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extraction.FieldsTable,
			Columns: []string{extraction.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extraction.FieldsTable,
			Columns: []string{extraction.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extraction.FieldsTable,
			Columns: []string{extraction.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionUpdateOne is the builder for updating a single Extraction entity.
type ExtractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionMutation
}

// SetFileID sets the "file_id" field.
func (_u *ExtractionUpdateOne) SetFileID(v uuid.UUID) *ExtractionUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableFileID(v *uuid.UUID) *ExtractionUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *ExtractionUpdateOne) SetTemplateID(v uuid.UUID) *ExtractionUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableTemplateID(v *uuid.UUID) *ExtractionUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionUpdateOne) SetStatus(v string) *ExtractionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableStatus(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionUpdateOne) SetErrorMessage(v string) *ExtractionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableErrorMessage(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionUpdateOne) ClearErrorMessage() *ExtractionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetOrganizedPath sets the "organized_path" field.
func (_u *ExtractionUpdateOne) SetOrganizedPath(v string) *ExtractionUpdateOne {
	_u.mutation.SetOrganizedPath(v)
	return _u
}

// SetNillableOrganizedPath sets the "organized_path" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableOrganizedPath(v *string) *ExtractionUpdateOne {
	if v != nil {
		_u.SetOrganizedPath(*v)
	}
	return _u
}

// ClearOrganizedPath clears the value of the "organized_path" field.
func (_u *ExtractionUpdateOne) ClearOrganizedPath() *ExtractionUpdateOne {
	_u.mutation.ClearOrganizedPath()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExtractionUpdateOne) SetStartedAt(v time.Time) *ExtractionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableStartedAt(v *time.Time) *ExtractionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExtractionUpdateOne) SetFinishedAt(v time.Time) *ExtractionUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExtractionUpdateOne) SetNillableFinishedAt(v *time.Time) *ExtractionUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExtractionUpdateOne) ClearFinishedAt() *ExtractionUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetFile sets the "file" edge to the PhysicalFile entity.
func (_u *ExtractionUpdateOne) SetFile(v *PhysicalFile) *ExtractionUpdateOne {
	return _u.SetFileID(v.ID)
}

// SetTemplate sets the "template" edge to the Template entity.
func (_u *ExtractionUpdateOne) SetTemplate(v *Template) *ExtractionUpdateOne {
	return _u.SetTemplateID(v.ID)
}

// AddFieldIDs adds the "fields" edge to the ExtractedField entity by IDs.
func (_u *ExtractionUpdateOne) AddFieldIDs(ids ...uuid.UUID) *ExtractionUpdateOne {
	_u.mutation.AddFieldIDs(ids...)
	return _u
}

// AddFields adds the "fields" edges to the ExtractedField entity.
func (_u *ExtractionUpdateOne) AddFields(v ...*ExtractedField) *ExtractionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFieldIDs(ids...)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_u *ExtractionUpdateOne) Mutation() *ExtractionMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the PhysicalFile entity.
func (_u *ExtractionUpdateOne) ClearFile() *ExtractionUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearTemplate clears the "template" edge to the Template entity.
func (_u *ExtractionUpdateOne) ClearTemplate() *ExtractionUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// ClearFields clears all "fields" edges to the ExtractedField entity.
func (_u *ExtractionUpdateOne) ClearFields() *ExtractionUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// RemoveFieldIDs removes the "fields" edge to ExtractedField entities by IDs.
func (_u *ExtractionUpdateOne) RemoveFieldIDs(ids ...uuid.UUID) *ExtractionUpdateOne {
	_u.mutation.RemoveFieldIDs(ids...)
	return _u
}

// RemoveFields removes "fields" edges to ExtractedField entities.
func (_u *ExtractionUpdateOne) RemoveFields(v ...*ExtractedField) *ExtractionUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFieldIDs(ids...)
}

// Where appends a list predicates to the ExtractionUpdate builder.
func (_u *ExtractionUpdateOne) Where(ps ...predicate.Extraction) *ExtractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionUpdateOne) Select(field string, fields ...string) *ExtractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Extraction entity.
func (_u *ExtractionUpdateOne) Save(ctx context.Context) (*Extraction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionUpdateOne) SaveX(ctx context.Context) *Extraction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Extraction.status": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Extraction.file"`)
	}
	if _u.mutation.TemplateCleared() && len(_u.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Extraction.template"`)
	}
	return nil
}

func (_u *ExtractionUpdateOne) sqlSave(ctx context.Context) (_node *Extraction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraction.Table, extraction.Columns, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Extraction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extraction.FieldID)
		for _, f := range fields {
			if !extraction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extraction.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extraction.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extraction.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extraction.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.OrganizedPath(); ok {
		_spec.SetField(extraction.FieldOrganizedPath, field.TypeString, value)
	}
	if _u.mutation.OrganizedPathCleared() {
		_spec.ClearField(extraction.FieldOrganizedPath, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(extraction.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(extraction.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(extraction.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.FileTable,
			Columns: []string{extraction.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicalfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.FileTable,
			Columns: []string{extraction.FileColumn},
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
	if _u.mutation.TemplateCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.TemplateTable,
			Columns: []string{extraction.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.TemplateTable,
			Columns: []string{extraction.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(template.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extraction.FieldsTable,
			Columns: []string{extraction.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFieldsIDs(); len(nodes) > 0 && !_u.mutation.FieldsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extraction.FieldsTable,
			Columns: []string{extraction.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extraction.FieldsTable,
			Columns: []string{extraction.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedfield.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Extraction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
