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
	"github.com/oakfield-labs/docuflow/gen/ent/extraction"
	"github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	"github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
	"github.com/oakfield-labs/docuflow/gen/ent/predicate"
)

// PhysicalFileUpdate is the builder for updating PhysicalFile entities.
type PhysicalFileUpdate struct {
	config
	hooks    []Hook
	mutation *PhysicalFileMutation
}

// Where appends a list predicates to the PhysicalFileUpdate builder.
func (_u *PhysicalFileUpdate) Where(ps ...predicate.PhysicalFile) *PhysicalFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *PhysicalFileUpdate) SetContentHash(v []byte) *PhysicalFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *PhysicalFileUpdate) SetFileSize(v int) *PhysicalFileUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *PhysicalFileUpdate) SetNillableFileSize(v *int) *PhysicalFileUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *PhysicalFileUpdate) AddFileSize(v int) *PhysicalFileUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *PhysicalFileUpdate) SetStoragePath(v string) *PhysicalFileUpdate {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *PhysicalFileUpdate) SetNillableStoragePath(v *string) *PhysicalFileUpdate {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetRefCount sets the "ref_count" field.
func (_u *PhysicalFileUpdate) SetRefCount(v int) *PhysicalFileUpdate {
	_u.mutation.ResetRefCount()
	_u.mutation.SetRefCount(v)
	return _u
}

// SetNillableRefCount sets the "ref_count" field if the given value is not nil.
func (_u *PhysicalFileUpdate) SetNillableRefCount(v *int) *PhysicalFileUpdate {
	if v != nil {
		_u.SetRefCount(*v)
	}
	return _u
}

// AddRefCount adds value to the "ref_count" field.
func (_u *PhysicalFileUpdate) AddRefCount(v int) *PhysicalFileUpdate {
	_u.mutation.AddRefCount(v)
	return _u
}

// SetDiscoveryStatus sets the "discovery_status" field.
func (_u *PhysicalFileUpdate) SetDiscoveryStatus(v string) *PhysicalFileUpdate {
	_u.mutation.SetDiscoveryStatus(v)
	return _u
}

// SetNillableDiscoveryStatus sets the "discovery_status" field if the given value is not nil.
func (_u *PhysicalFileUpdate) SetNillableDiscoveryStatus(v *string) *PhysicalFileUpdate {
	if v != nil {
		_u.SetDiscoveryStatus(*v)
	}
	return _u
}

// SetMatchedTemplateID sets the "matched_template_id" field.
func (_u *PhysicalFileUpdate) SetMatchedTemplateID(v uuid.UUID) *PhysicalFileUpdate {
	_u.mutation.SetMatchedTemplateID(v)
	return _u
}

// SetNillableMatchedTemplateID sets the "matched_template_id" field if the given value is not nil.
func (_u *PhysicalFileUpdate) SetNillableMatchedTemplateID(v *uuid.UUID) *PhysicalFileUpdate {
	if v != nil {
		_u.SetMatchedTemplateID(*v)
	}
	return _u
}

// ClearMatchedTemplateID clears the value of the "matched_template_id" field.
func (_u *PhysicalFileUpdate) ClearMatchedTemplateID() *PhysicalFileUpdate {
	_u.mutation.ClearMatchedTemplateID()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *PhysicalFileUpdate) SetUploadedAt(v time.Time) *PhysicalFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *PhysicalFileUpdate) SetNillableUploadedAt(v *time.Time) *PhysicalFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetParseRecordID sets the "parse_record" edge to the ParseRecord entity by ID.
func (_u *PhysicalFileUpdate) SetParseRecordID(id uuid.UUID) *PhysicalFileUpdate {
	_u.mutation.SetParseRecordID(id)
	return _u
}

// SetNillableParseRecordID sets the "parse_record" edge to the ParseRecord entity by ID if the given value is not nil.
func (_u *PhysicalFileUpdate) SetNillableParseRecordID(id *uuid.UUID) *PhysicalFileUpdate {
	if id != nil {
		_u = _u.SetParseRecordID(*id)
	}
	return _u
}

// SetParseRecord sets the "parse_record" edge to the ParseRecord entity.
func (_u *PhysicalFileUpdate) SetParseRecord(v *ParseRecord) *PhysicalFileUpdate {
	return _u.SetParseRecordID(v.ID)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_u *PhysicalFileUpdate) AddExtractionIDs(ids ...uuid.UUID) *PhysicalFileUpdate {
	_u.mutation.AddExtractionIDs(ids...)
	return _u
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_u *PhysicalFileUpdate) AddExtractions(v ...*Extraction) *PhysicalFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractionIDs(ids...)
}

// Mutation returns the PhysicalFileMutation object of the builder.
func (_u *PhysicalFileUpdate) Mutation() *PhysicalFileMutation {
	return _u.mutation
}

// ClearParseRecord clears the "parse_record" edge to the ParseRecord entity.
func (_u *PhysicalFileUpdate) ClearParseRecord() *PhysicalFileUpdate {
	_u.mutation.ClearParseRecord()
	return _u
}

// ClearExtractions clears all "extractions" edges to the Extraction entity.
func (_u *PhysicalFileUpdate) ClearExtractions() *PhysicalFileUpdate {
	_u.mutation.ClearExtractions()
	return _u
}

// RemoveExtractionIDs removes the "extractions" edge to Extraction entities by IDs.
func (_u *PhysicalFileUpdate) RemoveExtractionIDs(ids ...uuid.UUID) *PhysicalFileUpdate {
	_u.mutation.RemoveExtractionIDs(ids...)
	return _u
}

// RemoveExtractions removes "extractions" edges to Extraction entities.
func (_u *PhysicalFileUpdate) RemoveExtractions(v ...*Extraction) *PhysicalFileUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PhysicalFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhysicalFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PhysicalFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhysicalFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhysicalFileUpdate) check() error {
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := physicalfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := physicalfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := physicalfile.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RefCount(); ok {
		if err := physicalfile.RefCountValidator(v); err != nil {
			return &ValidationError{Name: "ref_count", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.ref_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiscoveryStatus(); ok {
		if err := physicalfile.DiscoveryStatusValidator(v); err != nil {
			return &ValidationError{Name: "discovery_status", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.discovery_status": %w`, err)}
		}
	}
	return nil
}

func (_u *PhysicalFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(physicalfile.Table, physicalfile.Columns, sqlgraph.NewFieldSpec(physicalfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(physicalfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(physicalfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(physicalfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(physicalfile.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefCount(); ok {
		_spec.SetField(physicalfile.FieldRefCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRefCount(); ok {
		_spec.AddField(physicalfile.FieldRefCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DiscoveryStatus(); ok {
		_spec.SetField(physicalfile.FieldDiscoveryStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.MatchedTemplateID(); ok {
		_spec.SetField(physicalfile.FieldMatchedTemplateID, field.TypeUUID, value)
	}
	if _u.mutation.MatchedTemplateIDCleared() {
		_spec.ClearField(physicalfile.FieldMatchedTemplateID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(physicalfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ParseRecordCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   physicalfile.ParseRecordTable,
			Columns: []string{physicalfile.ParseRecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parserecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParseRecordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   physicalfile.ParseRecordTable,
			Columns: []string{physicalfile.ParseRecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parserecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   physicalfile.ExtractionsTable,
			Columns: []string{physicalfile.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractionsIDs(); len(nodes) > 0 && !_u.mutation.ExtractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   physicalfile.ExtractionsTable,
			Columns: []string{physicalfile.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   physicalfile.ExtractionsTable,
			Columns: []string{physicalfile.ExtractionsColumn},
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
			err = &NotFoundError{physicalfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PhysicalFileUpdateOne is the builder for updating a single PhysicalFile entity.
type PhysicalFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhysicalFileMutation
}

// SetContentHash sets the "content_hash" field.
func (_u *PhysicalFileUpdateOne) SetContentHash(v []byte) *PhysicalFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *PhysicalFileUpdateOne) SetFileSize(v int) *PhysicalFileUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *PhysicalFileUpdateOne) SetNillableFileSize(v *int) *PhysicalFileUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *PhysicalFileUpdateOne) AddFileSize(v int) *PhysicalFileUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetStoragePath sets the "storage_path" field.
func (_u *PhysicalFileUpdateOne) SetStoragePath(v string) *PhysicalFileUpdateOne {
	_u.mutation.SetStoragePath(v)
	return _u
}

// SetNillableStoragePath sets the "storage_path" field if the given value is not nil.
func (_u *PhysicalFileUpdateOne) SetNillableStoragePath(v *string) *PhysicalFileUpdateOne {
	if v != nil {
		_u.SetStoragePath(*v)
	}
	return _u
}

// SetRefCount sets the "ref_count" field.
func (_u *PhysicalFileUpdateOne) SetRefCount(v int) *PhysicalFileUpdateOne {
	_u.mutation.ResetRefCount()
	_u.mutation.SetRefCount(v)
	return _u
}

// SetNillableRefCount sets the "ref_count" field if the given value is not nil.
func (_u *PhysicalFileUpdateOne) SetNillableRefCount(v *int) *PhysicalFileUpdateOne {
	if v != nil {
		_u.SetRefCount(*v)
	}
	return _u
}

// AddRefCount adds value to the "ref_count" field.
func (_u *PhysicalFileUpdateOne) AddRefCount(v int) *PhysicalFileUpdateOne {
	_u.mutation.AddRefCount(v)
	return _u
}

// SetDiscoveryStatus sets the "discovery_status" field.
func (_u *PhysicalFileUpdateOne) SetDiscoveryStatus(v string) *PhysicalFileUpdateOne {
	_u.mutation.SetDiscoveryStatus(v)
	return _u
}

// SetNillableDiscoveryStatus sets the "discovery_status" field if the given value is not nil.
func (_u *PhysicalFileUpdateOne) SetNillableDiscoveryStatus(v *string) *PhysicalFileUpdateOne {
	if v != nil {
		_u.SetDiscoveryStatus(*v)
	}
	return _u
}

// SetMatchedTemplateID sets the "matched_template_id" field.
func (_u *PhysicalFileUpdateOne) SetMatchedTemplateID(v uuid.UUID) *PhysicalFileUpdateOne {
	_u.mutation.SetMatchedTemplateID(v)
	return _u
}

// SetNillableMatchedTemplateID sets the "matched_template_id" field if the given value is not nil.
func (_u *PhysicalFileUpdateOne) SetNillableMatchedTemplateID(v *uuid.UUID) *PhysicalFileUpdateOne {
	if v != nil {
		_u.SetMatchedTemplateID(*v)
	}
	return _u
}

// ClearMatchedTemplateID clears the value of the "matched_template_id" field.
func (_u *PhysicalFileUpdateOne) ClearMatchedTemplateID() *PhysicalFileUpdateOne {
	_u.mutation.ClearMatchedTemplateID()
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *PhysicalFileUpdateOne) SetUploadedAt(v time.Time) *PhysicalFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *PhysicalFileUpdateOne) SetNillableUploadedAt(v *time.Time) *PhysicalFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetParseRecordID sets the "parse_record" edge to the ParseRecord entity by ID.
func (_u *PhysicalFileUpdateOne) SetParseRecordID(id uuid.UUID) *PhysicalFileUpdateOne {
	_u.mutation.SetParseRecordID(id)
	return _u
}

// SetNillableParseRecordID sets the "parse_record" edge to the ParseRecord entity by ID if the given value is not nil.
func (_u *PhysicalFileUpdateOne) SetNillableParseRecordID(id *uuid.UUID) *PhysicalFileUpdateOne {
	if id != nil {
		_u = _u.SetParseRecordID(*id)
	}
	return _u
}

// SetParseRecord sets the "parse_record" edge to the ParseRecord entity.
func (_u *PhysicalFileUpdateOne) SetParseRecord(v *ParseRecord) *PhysicalFileUpdateOne {
	return _u.SetParseRecordID(v.ID)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_u *PhysicalFileUpdateOne) AddExtractionIDs(ids ...uuid.UUID) *PhysicalFileUpdateOne {
	_u.mutation.AddExtractionIDs(ids...)
	return _u
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_u *PhysicalFileUpdateOne) AddExtractions(v ...*Extraction) *PhysicalFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExtractionIDs(ids...)
}

// Mutation returns the PhysicalFileMutation object of the builder.
func (_u *PhysicalFileUpdateOne) Mutation() *PhysicalFileMutation {
	return _u.mutation
}

// ClearParseRecord clears the "parse_record" edge to the ParseRecord entity.
func (_u *PhysicalFileUpdateOne) ClearParseRecord() *PhysicalFileUpdateOne {
	_u.mutation.ClearParseRecord()
	return _u
}

// ClearExtractions clears all "extractions" edges to the Extraction entity.
func (_u *PhysicalFileUpdateOne) ClearExtractions() *PhysicalFileUpdateOne {
	_u.mutation.ClearExtractions()
	return _u
}

// RemoveExtractionIDs removes the "extractions" edge to Extraction entities by IDs.
func (_u *PhysicalFileUpdateOne) RemoveExtractionIDs(ids ...uuid.UUID) *PhysicalFileUpdateOne {
	_u.mutation.RemoveExtractionIDs(ids...)
	return _u
}

// RemoveExtractions removes "extractions" edges to Extraction entities.
func (_u *PhysicalFileUpdateOne) RemoveExtractions(v ...*Extraction) *PhysicalFileUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExtractionIDs(ids...)
}

// Where appends a list predicates to the PhysicalFileUpdate builder.
func (_u *PhysicalFileUpdateOne) Where(ps ...predicate.PhysicalFile) *PhysicalFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PhysicalFileUpdateOne) Select(field string, fields ...string) *PhysicalFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PhysicalFile entity.
func (_u *PhysicalFileUpdateOne) Save(ctx context.Context) (*PhysicalFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhysicalFileUpdateOne) SaveX(ctx context.Context) *PhysicalFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PhysicalFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhysicalFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhysicalFileUpdateOne) check() error {
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := physicalfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := physicalfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StoragePath(); ok {
		if err := physicalfile.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.storage_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RefCount(); ok {
		if err := physicalfile.RefCountValidator(v); err != nil {
			return &ValidationError{Name: "ref_count", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.ref_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiscoveryStatus(); ok {
		if err := physicalfile.DiscoveryStatusValidator(v); err != nil {
			return &ValidationError{Name: "discovery_status", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.discovery_status": %w`, err)}
		}
	}
	return nil
}

func (_u *PhysicalFileUpdateOne) sqlSave(ctx context.Context) (_node *PhysicalFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(physicalfile.Table, physicalfile.Columns, sqlgraph.NewFieldSpec(physicalfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PhysicalFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, physicalfile.FieldID)
		for _, f := range fields {
			if !physicalfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != physicalfile.FieldID {
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
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(physicalfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(physicalfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(physicalfile.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StoragePath(); ok {
		_spec.SetField(physicalfile.FieldStoragePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.RefCount(); ok {
		_spec.SetField(physicalfile.FieldRefCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRefCount(); ok {
		_spec.AddField(physicalfile.FieldRefCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DiscoveryStatus(); ok {
		_spec.SetField(physicalfile.FieldDiscoveryStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.MatchedTemplateID(); ok {
		_spec.SetField(physicalfile.FieldMatchedTemplateID, field.TypeUUID, value)
	}
	if _u.mutation.MatchedTemplateIDCleared() {
		_spec.ClearField(physicalfile.FieldMatchedTemplateID, field.TypeUUID)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(physicalfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ParseRecordCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   physicalfile.ParseRecordTable,
			Columns: []string{physicalfile.ParseRecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parserecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParseRecordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   physicalfile.ParseRecordTable,
			Columns: []string{physicalfile.ParseRecordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(parserecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExtractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   physicalfile.ExtractionsTable,
			Columns: []string{physicalfile.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExtractionsIDs(); len(nodes) > 0 && !_u.mutation.ExtractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   physicalfile.ExtractionsTable,
			Columns: []string{physicalfile.ExtractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExtractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   physicalfile.ExtractionsTable,
			Columns: []string{physicalfile.ExtractionsColumn},
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
	_node = &PhysicalFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{physicalfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
