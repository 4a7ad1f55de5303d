// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/extraction"
	"github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	"github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
)

// PhysicalFileCreate is the builder for creating a PhysicalFile entity.
type PhysicalFileCreate struct {
	config
	mutation *PhysicalFileMutation
	hooks    []Hook
}

// SetContentHash sets the "content_hash" field.
func (_c *PhysicalFileCreate) SetContentHash(v []byte) *PhysicalFileCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *PhysicalFileCreate) SetFileSize(v int) *PhysicalFileCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetStoragePath sets the "storage_path" field.
func (_c *PhysicalFileCreate) SetStoragePath(v string) *PhysicalFileCreate {
	_c.mutation.SetStoragePath(v)
	return _c
}

// SetRefCount sets the "ref_count" field.
func (_c *PhysicalFileCreate) SetRefCount(v int) *PhysicalFileCreate {
	_c.mutation.SetRefCount(v)
	return _c
}

// SetNillableRefCount sets the "ref_count" field if the given value is not nil.
func (_c *PhysicalFileCreate) SetNillableRefCount(v *int) *PhysicalFileCreate {
	if v != nil {
		_c.SetRefCount(*v)
	}
	return _c
}

// SetDiscoveryStatus sets the "discovery_status" field.
func (_c *PhysicalFileCreate) SetDiscoveryStatus(v string) *PhysicalFileCreate {
	_c.mutation.SetDiscoveryStatus(v)
	return _c
}

// SetNillableDiscoveryStatus sets the "discovery_status" field if the given value is not nil.
func (_c *PhysicalFileCreate) SetNillableDiscoveryStatus(v *string) *PhysicalFileCreate {
	if v != nil {
		_c.SetDiscoveryStatus(*v)
	}
	return _c
}

// SetMatchedTemplateID sets the "matched_template_id" field.
func (_c *PhysicalFileCreate) SetMatchedTemplateID(v uuid.UUID) *PhysicalFileCreate {
	_c.mutation.SetMatchedTemplateID(v)
	return _c
}

// SetNillableMatchedTemplateID sets the "matched_template_id" field if the given value is not nil.
func (_c *PhysicalFileCreate) SetNillableMatchedTemplateID(v *uuid.UUID) *PhysicalFileCreate {
	if v != nil {
		_c.SetMatchedTemplateID(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *PhysicalFileCreate) SetUploadedAt(v time.Time) *PhysicalFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *PhysicalFileCreate) SetNillableUploadedAt(v *time.Time) *PhysicalFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PhysicalFileCreate) SetID(v uuid.UUID) *PhysicalFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PhysicalFileCreate) SetNillableID(v *uuid.UUID) *PhysicalFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetParseRecordID sets the "parse_record" edge to the ParseRecord entity by ID.
func (_c *PhysicalFileCreate) SetParseRecordID(id uuid.UUID) *PhysicalFileCreate {
	_c.mutation.SetParseRecordID(id)
	return _c
}

// SetNillableParseRecordID sets the "parse_record" edge to the ParseRecord entity by ID if the given value is not nil.
func (_c *PhysicalFileCreate) SetNillableParseRecordID(id *uuid.UUID) *PhysicalFileCreate {
	if id != nil {
		_c = _c.SetParseRecordID(*id)
	}
	return _c
}

// SetParseRecord sets the "parse_record" edge to the ParseRecord entity.
func (_c *PhysicalFileCreate) SetParseRecord(v *ParseRecord) *PhysicalFileCreate {
	return _c.SetParseRecordID(v.ID)
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by IDs.
func (_c *PhysicalFileCreate) AddExtractionIDs(ids ...uuid.UUID) *PhysicalFileCreate {
	_c.mutation.AddExtractionIDs(ids...)
	return _c
}

// AddExtractions adds the "extractions" edges to the Extraction entity.
func (_c *PhysicalFileCreate) AddExtractions(v ...*Extraction) *PhysicalFileCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExtractionIDs(ids...)
}

// Mutation returns the PhysicalFileMutation object of the builder.
func (_c *PhysicalFileCreate) Mutation() *PhysicalFileMutation {
	return _c.mutation
}

// Save creates the PhysicalFile in the database.
func (_c *PhysicalFileCreate) Save(ctx context.Context) (*PhysicalFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PhysicalFileCreate) SaveX(ctx context.Context) *PhysicalFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhysicalFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhysicalFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PhysicalFileCreate) defaults() {
	if _, ok := _c.mutation.RefCount(); !ok {
		v := physicalfile.DefaultRefCount
		_c.mutation.SetRefCount(v)
	}
	if _, ok := _c.mutation.DiscoveryStatus(); !ok {
		v := physicalfile.DefaultDiscoveryStatus
		_c.mutation.SetDiscoveryStatus(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := physicalfile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := physicalfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PhysicalFileCreate) check() error {
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "PhysicalFile.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := physicalfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "PhysicalFile.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := physicalfile.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoragePath(); !ok {
		return &ValidationError{Name: "storage_path", err: errors.New(`ent: missing required field "PhysicalFile.storage_path"`)}
	}
	if v, ok := _c.mutation.StoragePath(); ok {
		if err := physicalfile.StoragePathValidator(v); err != nil {
			return &ValidationError{Name: "storage_path", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.storage_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RefCount(); !ok {
		return &ValidationError{Name: "ref_count", err: errors.New(`ent: missing required field "PhysicalFile.ref_count"`)}
	}
	if v, ok := _c.mutation.RefCount(); ok {
		if err := physicalfile.RefCountValidator(v); err != nil {
			return &ValidationError{Name: "ref_count", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.ref_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscoveryStatus(); !ok {
		return &ValidationError{Name: "discovery_status", err: errors.New(`ent: missing required field "PhysicalFile.discovery_status"`)}
	}
	if v, ok := _c.mutation.DiscoveryStatus(); ok {
		if err := physicalfile.DiscoveryStatusValidator(v); err != nil {
			return &ValidationError{Name: "discovery_status", err: fmt.Errorf(`ent: validator failed for field "PhysicalFile.discovery_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "PhysicalFile.uploaded_at"`)}
	}
	return nil
}

func (_c *PhysicalFileCreate) sqlSave(ctx context.Context) (*PhysicalFile, error) {
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

func (_c *PhysicalFileCreate) createSpec() (*PhysicalFile, *sqlgraph.CreateSpec) {
	var (
		_node = &PhysicalFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(physicalfile.Table, sqlgraph.NewFieldSpec(physicalfile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(physicalfile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(physicalfile.FieldFileSize, field.TypeInt, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.StoragePath(); ok {
		_spec.SetField(physicalfile.FieldStoragePath, field.TypeString, value)
		_node.StoragePath = value
	}
	if value, ok := _c.mutation.RefCount(); ok {
		_spec.SetField(physicalfile.FieldRefCount, field.TypeInt, value)
		_node.RefCount = value
	}
	if value, ok := _c.mutation.DiscoveryStatus(); ok {
		_spec.SetField(physicalfile.FieldDiscoveryStatus, field.TypeString, value)
		_node.DiscoveryStatus = value
	}
	if value, ok := _c.mutation.MatchedTemplateID(); ok {
		_spec.SetField(physicalfile.FieldMatchedTemplateID, field.TypeUUID, value)
		_node.MatchedTemplateID = &value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(physicalfile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.ParseRecordIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExtractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PhysicalFileCreateBulk is the builder for creating many PhysicalFile entities in bulk.
type PhysicalFileCreateBulk struct {
	config
	err      error
	builders []*PhysicalFileCreate
}

// Save creates the PhysicalFile entities in the database.
func (_c *PhysicalFileCreateBulk) Save(ctx context.Context) ([]*PhysicalFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PhysicalFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhysicalFileMutation)
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
func (_c *PhysicalFileCreateBulk) SaveX(ctx context.Context) []*PhysicalFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhysicalFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhysicalFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
