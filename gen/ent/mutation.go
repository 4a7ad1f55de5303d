// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/oakfield-labs/docuflow/gen/ent/extractedfield"
	"github.com/oakfield-labs/docuflow/gen/ent/extraction"
	"github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	"github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
	"github.com/oakfield-labs/docuflow/gen/ent/predicate"
	"github.com/oakfield-labs/docuflow/gen/ent/template"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractedField = "ExtractedField"
	TypeExtraction     = "Extraction"
	TypeParseRecord    = "ParseRecord"
	TypePhysicalFile   = "PhysicalFile"
	TypeTemplate       = "Template"
)

// ExtractedFieldMutation represents an operation that mutates the ExtractedField nodes in the graph.
type ExtractedFieldMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	name                    *string
	value                   *json.RawMessage
	appendvalue             json.RawMessage
	confidence              *float32
	addconfidence           *float32
	source_page             *int
	addsource_page          *int
	source_bbox             *json.RawMessage
	appendsource_bbox       json.RawMessage
	source_text             *string
	verified                *bool
	validation_status       *string
	validation_errors       *[]string
	appendvalidation_errors []string
	audit_priority          *int
	addaudit_priority       *int
	clearedFields           map[string]struct{}
	extraction              *uuid.UUID
	clearedextraction       bool
	done                    bool
	oldValue                func(context.Context) (*ExtractedField, error)
	predicates              []predicate.ExtractedField
}

var _ ent.Mutation = (*ExtractedFieldMutation)(nil)

// extractedfieldOption allows management of the mutation configuration using functional options.
type extractedfieldOption func(*ExtractedFieldMutation)

// newExtractedFieldMutation creates new mutation for the ExtractedField entity.
func newExtractedFieldMutation(c config, op Op, opts ...extractedfieldOption) *ExtractedFieldMutation {
	m := &ExtractedFieldMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedField,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedFieldID sets the ID field of the mutation.
func withExtractedFieldID(id uuid.UUID) extractedfieldOption {
	return func(m *ExtractedFieldMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedField
		)
		m.oldValue = func(ctx context.Context) (*ExtractedField, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedField.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedField sets the old ExtractedField of the mutation.
func withExtractedField(node *ExtractedField) extractedfieldOption {
	return func(m *ExtractedFieldMutation) {
		m.oldValue = func(context.Context) (*ExtractedField, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedFieldMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedFieldMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedField entities.
func (m *ExtractedFieldMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedFieldMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedFieldMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedField.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExtractionID sets the "extraction_id" field.
func (m *ExtractedFieldMutation) SetExtractionID(u uuid.UUID) {
	m.extraction = &u
}

// ExtractionID returns the value of the "extraction_id" field in the mutation.
func (m *ExtractedFieldMutation) ExtractionID() (r uuid.UUID, exists bool) {
	v := m.extraction
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionID returns the old "extraction_id" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldExtractionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionID: %w", err)
	}
	return oldValue.ExtractionID, nil
}

// ResetExtractionID resets all changes to the "extraction_id" field.
func (m *ExtractedFieldMutation) ResetExtractionID() {
	m.extraction = nil
}

// SetName sets the "name" field.
func (m *ExtractedFieldMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExtractedFieldMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ExtractedFieldMutation) ResetName() {
	m.name = nil
}

// SetValue sets the "value" field.
func (m *ExtractedFieldMutation) SetValue(jm json.RawMessage) {
	m.value = &jm
	m.appendvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *ExtractedFieldMutation) Value() (r json.RawMessage, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldValue(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AppendValue adds jm to the "value" field.
func (m *ExtractedFieldMutation) AppendValue(jm json.RawMessage) {
	m.appendvalue = append(m.appendvalue, jm...)
}

// AppendedValue returns the list of values that were appended to the "value" field in this mutation.
func (m *ExtractedFieldMutation) AppendedValue() (json.RawMessage, bool) {
	if len(m.appendvalue) == 0 {
		return nil, false
	}
	return m.appendvalue, true
}

// ClearValue clears the value of the "value" field.
func (m *ExtractedFieldMutation) ClearValue() {
	m.value = nil
	m.appendvalue = nil
	m.clearedFields[extractedfield.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *ExtractedFieldMutation) ValueCleared() bool {
	_, ok := m.clearedFields[extractedfield.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *ExtractedFieldMutation) ResetValue() {
	m.value = nil
	m.appendvalue = nil
	delete(m.clearedFields, extractedfield.FieldValue)
}

// SetConfidence sets the "confidence" field.
func (m *ExtractedFieldMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractedFieldMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractedFieldMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractedFieldMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractedFieldMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetSourcePage sets the "source_page" field.
func (m *ExtractedFieldMutation) SetSourcePage(i int) {
	m.source_page = &i
	m.addsource_page = nil
}

// SourcePage returns the value of the "source_page" field in the mutation.
func (m *ExtractedFieldMutation) SourcePage() (r int, exists bool) {
	v := m.source_page
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePage returns the old "source_page" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldSourcePage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePage: %w", err)
	}
	return oldValue.SourcePage, nil
}

// AddSourcePage adds i to the "source_page" field.
func (m *ExtractedFieldMutation) AddSourcePage(i int) {
	if m.addsource_page != nil {
		*m.addsource_page += i
	} else {
		m.addsource_page = &i
	}
}

// AddedSourcePage returns the value that was added to the "source_page" field in this mutation.
func (m *ExtractedFieldMutation) AddedSourcePage() (r int, exists bool) {
	v := m.addsource_page
	if v == nil {
		return
	}
	return *v, true
}

// ClearSourcePage clears the value of the "source_page" field.
func (m *ExtractedFieldMutation) ClearSourcePage() {
	m.source_page = nil
	m.addsource_page = nil
	m.clearedFields[extractedfield.FieldSourcePage] = struct{}{}
}

// SourcePageCleared returns if the "source_page" field was cleared in this mutation.
func (m *ExtractedFieldMutation) SourcePageCleared() bool {
	_, ok := m.clearedFields[extractedfield.FieldSourcePage]
	return ok
}

// ResetSourcePage resets all changes to the "source_page" field.
func (m *ExtractedFieldMutation) ResetSourcePage() {
	m.source_page = nil
	m.addsource_page = nil
	delete(m.clearedFields, extractedfield.FieldSourcePage)
}

// SetSourceBbox sets the "source_bbox" field.
func (m *ExtractedFieldMutation) SetSourceBbox(jm json.RawMessage) {
	m.source_bbox = &jm
	m.appendsource_bbox = nil
}

// SourceBbox returns the value of the "source_bbox" field in the mutation.
func (m *ExtractedFieldMutation) SourceBbox() (r json.RawMessage, exists bool) {
	v := m.source_bbox
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceBbox returns the old "source_bbox" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldSourceBbox(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceBbox is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceBbox requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceBbox: %w", err)
	}
	return oldValue.SourceBbox, nil
}

// AppendSourceBbox adds jm to the "source_bbox" field.
func (m *ExtractedFieldMutation) AppendSourceBbox(jm json.RawMessage) {
	m.appendsource_bbox = append(m.appendsource_bbox, jm...)
}

// AppendedSourceBbox returns the list of values that were appended to the "source_bbox" field in this mutation.
func (m *ExtractedFieldMutation) AppendedSourceBbox() (json.RawMessage, bool) {
	if len(m.appendsource_bbox) == 0 {
		return nil, false
	}
	return m.appendsource_bbox, true
}

// ClearSourceBbox clears the value of the "source_bbox" field.
func (m *ExtractedFieldMutation) ClearSourceBbox() {
	m.source_bbox = nil
	m.appendsource_bbox = nil
	m.clearedFields[extractedfield.FieldSourceBbox] = struct{}{}
}

// SourceBboxCleared returns if the "source_bbox" field was cleared in this mutation.
func (m *ExtractedFieldMutation) SourceBboxCleared() bool {
	_, ok := m.clearedFields[extractedfield.FieldSourceBbox]
	return ok
}

// ResetSourceBbox resets all changes to the "source_bbox" field.
func (m *ExtractedFieldMutation) ResetSourceBbox() {
	m.source_bbox = nil
	m.appendsource_bbox = nil
	delete(m.clearedFields, extractedfield.FieldSourceBbox)
}

// SetSourceText sets the "source_text" field.
func (m *ExtractedFieldMutation) SetSourceText(s string) {
	m.source_text = &s
}

// SourceText returns the value of the "source_text" field in the mutation.
func (m *ExtractedFieldMutation) SourceText() (r string, exists bool) {
	v := m.source_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceText returns the old "source_text" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldSourceText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceText: %w", err)
	}
	return oldValue.SourceText, nil
}

// ClearSourceText clears the value of the "source_text" field.
func (m *ExtractedFieldMutation) ClearSourceText() {
	m.source_text = nil
	m.clearedFields[extractedfield.FieldSourceText] = struct{}{}
}

// SourceTextCleared returns if the "source_text" field was cleared in this mutation.
func (m *ExtractedFieldMutation) SourceTextCleared() bool {
	_, ok := m.clearedFields[extractedfield.FieldSourceText]
	return ok
}

// ResetSourceText resets all changes to the "source_text" field.
func (m *ExtractedFieldMutation) ResetSourceText() {
	m.source_text = nil
	delete(m.clearedFields, extractedfield.FieldSourceText)
}

// SetVerified sets the "verified" field.
func (m *ExtractedFieldMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *ExtractedFieldMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *ExtractedFieldMutation) ResetVerified() {
	m.verified = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *ExtractedFieldMutation) SetValidationStatus(s string) {
	m.validation_status = &s
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *ExtractedFieldMutation) ValidationStatus() (r string, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldValidationStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *ExtractedFieldMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetValidationErrors sets the "validation_errors" field.
func (m *ExtractedFieldMutation) SetValidationErrors(s []string) {
	m.validation_errors = &s
	m.appendvalidation_errors = nil
}

// ValidationErrors returns the value of the "validation_errors" field in the mutation.
func (m *ExtractedFieldMutation) ValidationErrors() (r []string, exists bool) {
	v := m.validation_errors
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationErrors returns the old "validation_errors" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldValidationErrors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationErrors: %w", err)
	}
	return oldValue.ValidationErrors, nil
}

// AppendValidationErrors adds s to the "validation_errors" field.
func (m *ExtractedFieldMutation) AppendValidationErrors(s []string) {
	m.appendvalidation_errors = append(m.appendvalidation_errors, s...)
}

// AppendedValidationErrors returns the list of values that were appended to the "validation_errors" field in this mutation.
func (m *ExtractedFieldMutation) AppendedValidationErrors() ([]string, bool) {
	if len(m.appendvalidation_errors) == 0 {
		return nil, false
	}
	return m.appendvalidation_errors, true
}

// ClearValidationErrors clears the value of the "validation_errors" field.
func (m *ExtractedFieldMutation) ClearValidationErrors() {
	m.validation_errors = nil
	m.appendvalidation_errors = nil
	m.clearedFields[extractedfield.FieldValidationErrors] = struct{}{}
}

// ValidationErrorsCleared returns if the "validation_errors" field was cleared in this mutation.
func (m *ExtractedFieldMutation) ValidationErrorsCleared() bool {
	_, ok := m.clearedFields[extractedfield.FieldValidationErrors]
	return ok
}

// ResetValidationErrors resets all changes to the "validation_errors" field.
func (m *ExtractedFieldMutation) ResetValidationErrors() {
	m.validation_errors = nil
	m.appendvalidation_errors = nil
	delete(m.clearedFields, extractedfield.FieldValidationErrors)
}

// SetAuditPriority sets the "audit_priority" field.
func (m *ExtractedFieldMutation) SetAuditPriority(i int) {
	m.audit_priority = &i
	m.addaudit_priority = nil
}

// AuditPriority returns the value of the "audit_priority" field in the mutation.
func (m *ExtractedFieldMutation) AuditPriority() (r int, exists bool) {
	v := m.audit_priority
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditPriority returns the old "audit_priority" field's value of the ExtractedField entity.
// If the ExtractedField object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedFieldMutation) OldAuditPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditPriority: %w", err)
	}
	return oldValue.AuditPriority, nil
}

// AddAuditPriority adds i to the "audit_priority" field.
func (m *ExtractedFieldMutation) AddAuditPriority(i int) {
	if m.addaudit_priority != nil {
		*m.addaudit_priority += i
	} else {
		m.addaudit_priority = &i
	}
}

// AddedAuditPriority returns the value that was added to the "audit_priority" field in this mutation.
func (m *ExtractedFieldMutation) AddedAuditPriority() (r int, exists bool) {
	v := m.addaudit_priority
	if v == nil {
		return
	}
	return *v, true
}

// ResetAuditPriority resets all changes to the "audit_priority" field.
func (m *ExtractedFieldMutation) ResetAuditPriority() {
	m.audit_priority = nil
	m.addaudit_priority = nil
}

// ClearExtraction clears the "extraction" edge to the Extraction entity.
func (m *ExtractedFieldMutation) ClearExtraction() {
	m.clearedextraction = true
	m.clearedFields[extractedfield.FieldExtractionID] = struct{}{}
}

// ExtractionCleared reports if the "extraction" edge to the Extraction entity was cleared.
func (m *ExtractedFieldMutation) ExtractionCleared() bool {
	return m.clearedextraction
}

// ExtractionIDs returns the "extraction" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExtractionID instead. It exists only for internal usage by the builders.
func (m *ExtractedFieldMutation) ExtractionIDs() (ids []uuid.UUID) {
	if id := m.extraction; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExtraction resets all changes to the "extraction" edge.
func (m *ExtractedFieldMutation) ResetExtraction() {
	m.extraction = nil
	m.clearedextraction = false
}

// Where appends a list predicates to the ExtractedFieldMutation builder.
func (m *ExtractedFieldMutation) Where(ps ...predicate.ExtractedField) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedFieldMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedFieldMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedField, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedFieldMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedFieldMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedField).
func (m *ExtractedFieldMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedFieldMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.extraction != nil {
		fields = append(fields, extractedfield.FieldExtractionID)
	}
	if m.name != nil {
		fields = append(fields, extractedfield.FieldName)
	}
	if m.value != nil {
		fields = append(fields, extractedfield.FieldValue)
	}
	if m.confidence != nil {
		fields = append(fields, extractedfield.FieldConfidence)
	}
	if m.source_page != nil {
		fields = append(fields, extractedfield.FieldSourcePage)
	}
	if m.source_bbox != nil {
		fields = append(fields, extractedfield.FieldSourceBbox)
	}
	if m.source_text != nil {
		fields = append(fields, extractedfield.FieldSourceText)
	}
	if m.verified != nil {
		fields = append(fields, extractedfield.FieldVerified)
	}
	if m.validation_status != nil {
		fields = append(fields, extractedfield.FieldValidationStatus)
	}
	if m.validation_errors != nil {
		fields = append(fields, extractedfield.FieldValidationErrors)
	}
	if m.audit_priority != nil {
		fields = append(fields, extractedfield.FieldAuditPriority)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedFieldMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedfield.FieldExtractionID:
		return m.ExtractionID()
	case extractedfield.FieldName:
		return m.Name()
	case extractedfield.FieldValue:
		return m.Value()
	case extractedfield.FieldConfidence:
		return m.Confidence()
	case extractedfield.FieldSourcePage:
		return m.SourcePage()
	case extractedfield.FieldSourceBbox:
		return m.SourceBbox()
	case extractedfield.FieldSourceText:
		return m.SourceText()
	case extractedfield.FieldVerified:
		return m.Verified()
	case extractedfield.FieldValidationStatus:
		return m.ValidationStatus()
	case extractedfield.FieldValidationErrors:
		return m.ValidationErrors()
	case extractedfield.FieldAuditPriority:
		return m.AuditPriority()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedFieldMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedfield.FieldExtractionID:
		return m.OldExtractionID(ctx)
	case extractedfield.FieldName:
		return m.OldName(ctx)
	case extractedfield.FieldValue:
		return m.OldValue(ctx)
	case extractedfield.FieldConfidence:
		return m.OldConfidence(ctx)
	case extractedfield.FieldSourcePage:
		return m.OldSourcePage(ctx)
	case extractedfield.FieldSourceBbox:
		return m.OldSourceBbox(ctx)
	case extractedfield.FieldSourceText:
		return m.OldSourceText(ctx)
	case extractedfield.FieldVerified:
		return m.OldVerified(ctx)
	case extractedfield.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case extractedfield.FieldValidationErrors:
		return m.OldValidationErrors(ctx)
	case extractedfield.FieldAuditPriority:
		return m.OldAuditPriority(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedField field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedFieldMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedfield.FieldExtractionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionID(v)
		return nil
	case extractedfield.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case extractedfield.FieldValue:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case extractedfield.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extractedfield.FieldSourcePage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePage(v)
		return nil
	case extractedfield.FieldSourceBbox:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceBbox(v)
		return nil
	case extractedfield.FieldSourceText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceText(v)
		return nil
	case extractedfield.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	case extractedfield.FieldValidationStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case extractedfield.FieldValidationErrors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationErrors(v)
		return nil
	case extractedfield.FieldAuditPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditPriority(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedField field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedFieldMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, extractedfield.FieldConfidence)
	}
	if m.addsource_page != nil {
		fields = append(fields, extractedfield.FieldSourcePage)
	}
	if m.addaudit_priority != nil {
		fields = append(fields, extractedfield.FieldAuditPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedFieldMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedfield.FieldConfidence:
		return m.AddedConfidence()
	case extractedfield.FieldSourcePage:
		return m.AddedSourcePage()
	case extractedfield.FieldAuditPriority:
		return m.AddedAuditPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedFieldMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedfield.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case extractedfield.FieldSourcePage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourcePage(v)
		return nil
	case extractedfield.FieldAuditPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAuditPriority(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedField numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedFieldMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedfield.FieldValue) {
		fields = append(fields, extractedfield.FieldValue)
	}
	if m.FieldCleared(extractedfield.FieldSourcePage) {
		fields = append(fields, extractedfield.FieldSourcePage)
	}
	if m.FieldCleared(extractedfield.FieldSourceBbox) {
		fields = append(fields, extractedfield.FieldSourceBbox)
	}
	if m.FieldCleared(extractedfield.FieldSourceText) {
		fields = append(fields, extractedfield.FieldSourceText)
	}
	if m.FieldCleared(extractedfield.FieldValidationErrors) {
		fields = append(fields, extractedfield.FieldValidationErrors)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedFieldMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedFieldMutation) ClearField(name string) error {
	switch name {
	case extractedfield.FieldValue:
		m.ClearValue()
		return nil
	case extractedfield.FieldSourcePage:
		m.ClearSourcePage()
		return nil
	case extractedfield.FieldSourceBbox:
		m.ClearSourceBbox()
		return nil
	case extractedfield.FieldSourceText:
		m.ClearSourceText()
		return nil
	case extractedfield.FieldValidationErrors:
		m.ClearValidationErrors()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedFieldMutation) ResetField(name string) error {
	switch name {
	case extractedfield.FieldExtractionID:
		m.ResetExtractionID()
		return nil
	case extractedfield.FieldName:
		m.ResetName()
		return nil
	case extractedfield.FieldValue:
		m.ResetValue()
		return nil
	case extractedfield.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extractedfield.FieldSourcePage:
		m.ResetSourcePage()
		return nil
	case extractedfield.FieldSourceBbox:
		m.ResetSourceBbox()
		return nil
	case extractedfield.FieldSourceText:
		m.ResetSourceText()
		return nil
	case extractedfield.FieldVerified:
		m.ResetVerified()
		return nil
	case extractedfield.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case extractedfield.FieldValidationErrors:
		m.ResetValidationErrors()
		return nil
	case extractedfield.FieldAuditPriority:
		m.ResetAuditPriority()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedFieldMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.extraction != nil {
		edges = append(edges, extractedfield.EdgeExtraction)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedFieldMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedfield.EdgeExtraction:
		if id := m.extraction; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedFieldMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedFieldMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedFieldMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedextraction {
		edges = append(edges, extractedfield.EdgeExtraction)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedFieldMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedfield.EdgeExtraction:
		return m.clearedextraction
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedFieldMutation) ClearEdge(name string) error {
	switch name {
	case extractedfield.EdgeExtraction:
		m.ClearExtraction()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedFieldMutation) ResetEdge(name string) error {
	switch name {
	case extractedfield.EdgeExtraction:
		m.ResetExtraction()
		return nil
	}
	return fmt.Errorf("unknown ExtractedField edge %s", name)
}

// ExtractionMutation represents an operation that mutates the Extraction nodes in the graph.
type ExtractionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	status          *string
	error_message   *string
	organized_path  *string
	started_at      *time.Time
	finished_at     *time.Time
	clearedFields   map[string]struct{}
	file            *uuid.UUID
	clearedfile     bool
	template        *uuid.UUID
	clearedtemplate bool
	fields          map[uuid.UUID]struct{}
	removedfields   map[uuid.UUID]struct{}
	clearedfields   bool
	done            bool
	oldValue        func(context.Context) (*Extraction, error)
	predicates      []predicate.Extraction
}

var _ ent.Mutation = (*ExtractionMutation)(nil)

// extractionOption allows management of the mutation configuration using functional options.
type extractionOption func(*ExtractionMutation)

// newExtractionMutation creates new mutation for the Extraction entity.
func newExtractionMutation(c config, op Op, opts ...extractionOption) *ExtractionMutation {
	m := &ExtractionMutation{
		config:        c,
		op:            op,
		typ:           TypeExtraction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionID sets the ID field of the mutation.
func withExtractionID(id uuid.UUID) extractionOption {
	return func(m *ExtractionMutation) {
		var (
			err   error
			once  sync.Once
			value *Extraction
		)
		m.oldValue = func(ctx context.Context) (*Extraction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Extraction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtraction sets the old Extraction of the mutation.
func withExtraction(node *Extraction) extractionOption {
	return func(m *ExtractionMutation) {
		m.oldValue = func(context.Context) (*Extraction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Extraction entities.
func (m *ExtractionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Extraction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ExtractionMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ExtractionMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ExtractionMutation) ResetFileID() {
	m.file = nil
}

// SetTemplateID sets the "template_id" field.
func (m *ExtractionMutation) SetTemplateID(u uuid.UUID) {
	m.template = &u
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *ExtractionMutation) TemplateID() (r uuid.UUID, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldTemplateID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *ExtractionMutation) ResetTemplateID() {
	m.template = nil
}

// SetStatus sets the "status" field.
func (m *ExtractionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extraction.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extraction.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extraction.FieldErrorMessage)
}

// SetOrganizedPath sets the "organized_path" field.
func (m *ExtractionMutation) SetOrganizedPath(s string) {
	m.organized_path = &s
}

// OrganizedPath returns the value of the "organized_path" field in the mutation.
func (m *ExtractionMutation) OrganizedPath() (r string, exists bool) {
	v := m.organized_path
	if v == nil {
		return
	}
	return *v, true
}

// OldOrganizedPath returns the old "organized_path" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldOrganizedPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrganizedPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrganizedPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrganizedPath: %w", err)
	}
	return oldValue.OrganizedPath, nil
}

// ClearOrganizedPath clears the value of the "organized_path" field.
func (m *ExtractionMutation) ClearOrganizedPath() {
	m.organized_path = nil
	m.clearedFields[extraction.FieldOrganizedPath] = struct{}{}
}

// OrganizedPathCleared returns if the "organized_path" field was cleared in this mutation.
func (m *ExtractionMutation) OrganizedPathCleared() bool {
	_, ok := m.clearedFields[extraction.FieldOrganizedPath]
	return ok
}

// ResetOrganizedPath resets all changes to the "organized_path" field.
func (m *ExtractionMutation) ResetOrganizedPath() {
	m.organized_path = nil
	delete(m.clearedFields, extraction.FieldOrganizedPath)
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractionMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractionMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Extraction entity.
// If the Extraction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractionMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extraction.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractionMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extraction.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractionMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extraction.FieldFinishedAt)
}

// ClearFile clears the "file" edge to the PhysicalFile entity.
func (m *ExtractionMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[extraction.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the PhysicalFile entity was cleared.
func (m *ExtractionMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ExtractionMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ExtractionMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearTemplate clears the "template" edge to the Template entity.
func (m *ExtractionMutation) ClearTemplate() {
	m.clearedtemplate = true
	m.clearedFields[extraction.FieldTemplateID] = struct{}{}
}

// TemplateCleared reports if the "template" edge to the Template entity was cleared.
func (m *ExtractionMutation) TemplateCleared() bool {
	return m.clearedtemplate
}

// TemplateIDs returns the "template" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TemplateID instead. It exists only for internal usage by the builders.
func (m *ExtractionMutation) TemplateIDs() (ids []uuid.UUID) {
	if id := m.template; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTemplate resets all changes to the "template" edge.
func (m *ExtractionMutation) ResetTemplate() {
	m.template = nil
	m.clearedtemplate = false
}

// AddFieldIDs adds the "fields" edge to the ExtractedField entity by ids.
func (m *ExtractionMutation) AddFieldIDs(ids ...uuid.UUID) {
	if m.fields == nil {
		m.fields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.fields[ids[i]] = struct{}{}
	}
}

// ClearFields clears the "fields" edge to the ExtractedField entity.
func (m *ExtractionMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the ExtractedField entity was cleared.
func (m *ExtractionMutation) FieldsCleared() bool {
	return m.clearedfields
}

// RemoveFieldIDs removes the "fields" edge to the ExtractedField entity by IDs.
func (m *ExtractionMutation) RemoveFieldIDs(ids ...uuid.UUID) {
	if m.removedfields == nil {
		m.removedfields = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.fields, ids[i])
		m.removedfields[ids[i]] = struct{}{}
	}
}

// RemovedFields returns the removed IDs of the "fields" edge to the ExtractedField entity.
func (m *ExtractionMutation) RemovedFieldsIDs() (ids []uuid.UUID) {
	for id := range m.removedfields {
		ids = append(ids, id)
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
func (m *ExtractionMutation) FieldsIDs() (ids []uuid.UUID) {
	for id := range m.fields {
		ids = append(ids, id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *ExtractionMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
	m.removedfields = nil
}

// Where appends a list predicates to the ExtractionMutation builder.
func (m *ExtractionMutation) Where(ps ...predicate.Extraction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Extraction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Extraction).
func (m *ExtractionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.file != nil {
		fields = append(fields, extraction.FieldFileID)
	}
	if m.template != nil {
		fields = append(fields, extraction.FieldTemplateID)
	}
	if m.status != nil {
		fields = append(fields, extraction.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extraction.FieldErrorMessage)
	}
	if m.organized_path != nil {
		fields = append(fields, extraction.FieldOrganizedPath)
	}
	if m.started_at != nil {
		fields = append(fields, extraction.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extraction.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extraction.FieldFileID:
		return m.FileID()
	case extraction.FieldTemplateID:
		return m.TemplateID()
	case extraction.FieldStatus:
		return m.Status()
	case extraction.FieldErrorMessage:
		return m.ErrorMessage()
	case extraction.FieldOrganizedPath:
		return m.OrganizedPath()
	case extraction.FieldStartedAt:
		return m.StartedAt()
	case extraction.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extraction.FieldFileID:
		return m.OldFileID(ctx)
	case extraction.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case extraction.FieldStatus:
		return m.OldStatus(ctx)
	case extraction.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extraction.FieldOrganizedPath:
		return m.OldOrganizedPath(ctx)
	case extraction.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extraction.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Extraction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extraction.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case extraction.FieldTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case extraction.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extraction.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extraction.FieldOrganizedPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrganizedPath(v)
		return nil
	case extraction.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extraction.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Extraction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extraction.FieldErrorMessage) {
		fields = append(fields, extraction.FieldErrorMessage)
	}
	if m.FieldCleared(extraction.FieldOrganizedPath) {
		fields = append(fields, extraction.FieldOrganizedPath)
	}
	if m.FieldCleared(extraction.FieldFinishedAt) {
		fields = append(fields, extraction.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionMutation) ClearField(name string) error {
	switch name {
	case extraction.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extraction.FieldOrganizedPath:
		m.ClearOrganizedPath()
		return nil
	case extraction.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Extraction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionMutation) ResetField(name string) error {
	switch name {
	case extraction.FieldFileID:
		m.ResetFileID()
		return nil
	case extraction.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case extraction.FieldStatus:
		m.ResetStatus()
		return nil
	case extraction.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extraction.FieldOrganizedPath:
		m.ResetOrganizedPath()
		return nil
	case extraction.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extraction.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Extraction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.file != nil {
		edges = append(edges, extraction.EdgeFile)
	}
	if m.template != nil {
		edges = append(edges, extraction.EdgeTemplate)
	}
	if m.fields != nil {
		edges = append(edges, extraction.EdgeFields)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extraction.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case extraction.EdgeTemplate:
		if id := m.template; id != nil {
			return []ent.Value{*id}
		}
	case extraction.EdgeFields:
		ids := make([]ent.Value, 0, len(m.fields))
		for id := range m.fields {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedfields != nil {
		edges = append(edges, extraction.EdgeFields)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case extraction.EdgeFields:
		ids := make([]ent.Value, 0, len(m.removedfields))
		for id := range m.removedfields {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedfile {
		edges = append(edges, extraction.EdgeFile)
	}
	if m.clearedtemplate {
		edges = append(edges, extraction.EdgeTemplate)
	}
	if m.clearedfields {
		edges = append(edges, extraction.EdgeFields)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionMutation) EdgeCleared(name string) bool {
	switch name {
	case extraction.EdgeFile:
		return m.clearedfile
	case extraction.EdgeTemplate:
		return m.clearedtemplate
	case extraction.EdgeFields:
		return m.clearedfields
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionMutation) ClearEdge(name string) error {
	switch name {
	case extraction.EdgeFile:
		m.ClearFile()
		return nil
	case extraction.EdgeTemplate:
		m.ClearTemplate()
		return nil
	}
	return fmt.Errorf("unknown Extraction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionMutation) ResetEdge(name string) error {
	switch name {
	case extraction.EdgeFile:
		m.ResetFile()
		return nil
	case extraction.EdgeTemplate:
		m.ResetTemplate()
		return nil
	case extraction.EdgeFields:
		m.ResetFields()
		return nil
	}
	return fmt.Errorf("unknown Extraction edge %s", name)
}

// ParseRecordMutation represents an operation that mutates the ParseRecord nodes in the graph.
type ParseRecordMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	job_token     *string
	blocks        *json.RawMessage
	appendblocks  json.RawMessage
	created_at    *time.Time
	clearedFields map[string]struct{}
	file          *uuid.UUID
	clearedfile   bool
	done          bool
	oldValue      func(context.Context) (*ParseRecord, error)
	predicates    []predicate.ParseRecord
}

var _ ent.Mutation = (*ParseRecordMutation)(nil)

// parserecordOption allows management of the mutation configuration using functional options.
type parserecordOption func(*ParseRecordMutation)

// newParseRecordMutation creates new mutation for the ParseRecord entity.
func newParseRecordMutation(c config, op Op, opts ...parserecordOption) *ParseRecordMutation {
	m := &ParseRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeParseRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParseRecordID sets the ID field of the mutation.
func withParseRecordID(id uuid.UUID) parserecordOption {
	return func(m *ParseRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ParseRecord
		)
		m.oldValue = func(ctx context.Context) (*ParseRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParseRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParseRecord sets the old ParseRecord of the mutation.
func withParseRecord(node *ParseRecord) parserecordOption {
	return func(m *ParseRecordMutation) {
		m.oldValue = func(context.Context) (*ParseRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParseRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParseRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParseRecord entities.
func (m *ParseRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParseRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParseRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParseRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ParseRecordMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ParseRecordMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ParseRecord entity.
// If the ParseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRecordMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ParseRecordMutation) ResetFileID() {
	m.file = nil
}

// SetJobToken sets the "job_token" field.
func (m *ParseRecordMutation) SetJobToken(s string) {
	m.job_token = &s
}

// JobToken returns the value of the "job_token" field in the mutation.
func (m *ParseRecordMutation) JobToken() (r string, exists bool) {
	v := m.job_token
	if v == nil {
		return
	}
	return *v, true
}

// OldJobToken returns the old "job_token" field's value of the ParseRecord entity.
// If the ParseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRecordMutation) OldJobToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobToken: %w", err)
	}
	return oldValue.JobToken, nil
}

// ClearJobToken clears the value of the "job_token" field.
func (m *ParseRecordMutation) ClearJobToken() {
	m.job_token = nil
	m.clearedFields[parserecord.FieldJobToken] = struct{}{}
}

// JobTokenCleared returns if the "job_token" field was cleared in this mutation.
func (m *ParseRecordMutation) JobTokenCleared() bool {
	_, ok := m.clearedFields[parserecord.FieldJobToken]
	return ok
}

// ResetJobToken resets all changes to the "job_token" field.
func (m *ParseRecordMutation) ResetJobToken() {
	m.job_token = nil
	delete(m.clearedFields, parserecord.FieldJobToken)
}

// SetBlocks sets the "blocks" field.
func (m *ParseRecordMutation) SetBlocks(jm json.RawMessage) {
	m.blocks = &jm
	m.appendblocks = nil
}

// Blocks returns the value of the "blocks" field in the mutation.
func (m *ParseRecordMutation) Blocks() (r json.RawMessage, exists bool) {
	v := m.blocks
	if v == nil {
		return
	}
	return *v, true
}

// OldBlocks returns the old "blocks" field's value of the ParseRecord entity.
// If the ParseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRecordMutation) OldBlocks(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlocks: %w", err)
	}
	return oldValue.Blocks, nil
}

// AppendBlocks adds jm to the "blocks" field.
func (m *ParseRecordMutation) AppendBlocks(jm json.RawMessage) {
	m.appendblocks = append(m.appendblocks, jm...)
}

// AppendedBlocks returns the list of values that were appended to the "blocks" field in this mutation.
func (m *ParseRecordMutation) AppendedBlocks() (json.RawMessage, bool) {
	if len(m.appendblocks) == 0 {
		return nil, false
	}
	return m.appendblocks, true
}

// ResetBlocks resets all changes to the "blocks" field.
func (m *ParseRecordMutation) ResetBlocks() {
	m.blocks = nil
	m.appendblocks = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ParseRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ParseRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ParseRecord entity.
// If the ParseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ParseRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearFile clears the "file" edge to the PhysicalFile entity.
func (m *ParseRecordMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[parserecord.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the PhysicalFile entity was cleared.
func (m *ParseRecordMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ParseRecordMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ParseRecordMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// Where appends a list predicates to the ParseRecordMutation builder.
func (m *ParseRecordMutation) Where(ps ...predicate.ParseRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParseRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParseRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParseRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParseRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParseRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParseRecord).
func (m *ParseRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParseRecordMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.file != nil {
		fields = append(fields, parserecord.FieldFileID)
	}
	if m.job_token != nil {
		fields = append(fields, parserecord.FieldJobToken)
	}
	if m.blocks != nil {
		fields = append(fields, parserecord.FieldBlocks)
	}
	if m.created_at != nil {
		fields = append(fields, parserecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParseRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parserecord.FieldFileID:
		return m.FileID()
	case parserecord.FieldJobToken:
		return m.JobToken()
	case parserecord.FieldBlocks:
		return m.Blocks()
	case parserecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParseRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parserecord.FieldFileID:
		return m.OldFileID(ctx)
	case parserecord.FieldJobToken:
		return m.OldJobToken(ctx)
	case parserecord.FieldBlocks:
		return m.OldBlocks(ctx)
	case parserecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ParseRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parserecord.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case parserecord.FieldJobToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobToken(v)
		return nil
	case parserecord.FieldBlocks:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlocks(v)
		return nil
	case parserecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ParseRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParseRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParseRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ParseRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParseRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parserecord.FieldJobToken) {
		fields = append(fields, parserecord.FieldJobToken)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParseRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParseRecordMutation) ClearField(name string) error {
	switch name {
	case parserecord.FieldJobToken:
		m.ClearJobToken()
		return nil
	}
	return fmt.Errorf("unknown ParseRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParseRecordMutation) ResetField(name string) error {
	switch name {
	case parserecord.FieldFileID:
		m.ResetFileID()
		return nil
	case parserecord.FieldJobToken:
		m.ResetJobToken()
		return nil
	case parserecord.FieldBlocks:
		m.ResetBlocks()
		return nil
	case parserecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ParseRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParseRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.file != nil {
		edges = append(edges, parserecord.EdgeFile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParseRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case parserecord.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParseRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParseRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParseRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfile {
		edges = append(edges, parserecord.EdgeFile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParseRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case parserecord.EdgeFile:
		return m.clearedfile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParseRecordMutation) ClearEdge(name string) error {
	switch name {
	case parserecord.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown ParseRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParseRecordMutation) ResetEdge(name string) error {
	switch name {
	case parserecord.EdgeFile:
		m.ResetFile()
		return nil
	}
	return fmt.Errorf("unknown ParseRecord edge %s", name)
}

// PhysicalFileMutation represents an operation that mutates the PhysicalFile nodes in the graph.
type PhysicalFileMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	content_hash        *[]byte
	file_size           *int
	addfile_size        *int
	storage_path        *string
	ref_count           *int
	addref_count        *int
	discovery_status    *string
	matched_template_id *uuid.UUID
	uploaded_at         *time.Time
	clearedFields       map[string]struct{}
	parse_record        *uuid.UUID
	clearedparse_record bool
	extractions         map[uuid.UUID]struct{}
	removedextractions  map[uuid.UUID]struct{}
	clearedextractions  bool
	done                bool
	oldValue            func(context.Context) (*PhysicalFile, error)
	predicates          []predicate.PhysicalFile
}

var _ ent.Mutation = (*PhysicalFileMutation)(nil)

// physicalfileOption allows management of the mutation configuration using functional options.
type physicalfileOption func(*PhysicalFileMutation)

// newPhysicalFileMutation creates new mutation for the PhysicalFile entity.
func newPhysicalFileMutation(c config, op Op, opts ...physicalfileOption) *PhysicalFileMutation {
	m := &PhysicalFileMutation{
		config:        c,
		op:            op,
		typ:           TypePhysicalFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPhysicalFileID sets the ID field of the mutation.
func withPhysicalFileID(id uuid.UUID) physicalfileOption {
	return func(m *PhysicalFileMutation) {
		var (
			err   error
			once  sync.Once
			value *PhysicalFile
		)
		m.oldValue = func(ctx context.Context) (*PhysicalFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PhysicalFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPhysicalFile sets the old PhysicalFile of the mutation.
func withPhysicalFile(node *PhysicalFile) physicalfileOption {
	return func(m *PhysicalFileMutation) {
		m.oldValue = func(context.Context) (*PhysicalFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PhysicalFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PhysicalFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PhysicalFile entities.
func (m *PhysicalFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PhysicalFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PhysicalFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PhysicalFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContentHash sets the "content_hash" field.
func (m *PhysicalFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *PhysicalFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the PhysicalFile entity.
// If the PhysicalFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *PhysicalFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFileSize sets the "file_size" field.
func (m *PhysicalFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *PhysicalFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the PhysicalFile entity.
// If the PhysicalFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *PhysicalFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *PhysicalFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *PhysicalFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetStoragePath sets the "storage_path" field.
func (m *PhysicalFileMutation) SetStoragePath(s string) {
	m.storage_path = &s
}

// StoragePath returns the value of the "storage_path" field in the mutation.
func (m *PhysicalFileMutation) StoragePath() (r string, exists bool) {
	v := m.storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoragePath returns the old "storage_path" field's value of the PhysicalFile entity.
// If the PhysicalFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalFileMutation) OldStoragePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoragePath: %w", err)
	}
	return oldValue.StoragePath, nil
}

// ResetStoragePath resets all changes to the "storage_path" field.
func (m *PhysicalFileMutation) ResetStoragePath() {
	m.storage_path = nil
}

// SetRefCount sets the "ref_count" field.
func (m *PhysicalFileMutation) SetRefCount(i int) {
	m.ref_count = &i
	m.addref_count = nil
}

// RefCount returns the value of the "ref_count" field in the mutation.
func (m *PhysicalFileMutation) RefCount() (r int, exists bool) {
	v := m.ref_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRefCount returns the old "ref_count" field's value of the PhysicalFile entity.
// If the PhysicalFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalFileMutation) OldRefCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefCount: %w", err)
	}
	return oldValue.RefCount, nil
}

// AddRefCount adds i to the "ref_count" field.
func (m *PhysicalFileMutation) AddRefCount(i int) {
	if m.addref_count != nil {
		*m.addref_count += i
	} else {
		m.addref_count = &i
	}
}

// AddedRefCount returns the value that was added to the "ref_count" field in this mutation.
func (m *PhysicalFileMutation) AddedRefCount() (r int, exists bool) {
	v := m.addref_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRefCount resets all changes to the "ref_count" field.
func (m *PhysicalFileMutation) ResetRefCount() {
	m.ref_count = nil
	m.addref_count = nil
}

// SetDiscoveryStatus sets the "discovery_status" field.
func (m *PhysicalFileMutation) SetDiscoveryStatus(s string) {
	m.discovery_status = &s
}

// DiscoveryStatus returns the value of the "discovery_status" field in the mutation.
func (m *PhysicalFileMutation) DiscoveryStatus() (r string, exists bool) {
	v := m.discovery_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscoveryStatus returns the old "discovery_status" field's value of the PhysicalFile entity.
// If the PhysicalFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalFileMutation) OldDiscoveryStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscoveryStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscoveryStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscoveryStatus: %w", err)
	}
	return oldValue.DiscoveryStatus, nil
}

// ResetDiscoveryStatus resets all changes to the "discovery_status" field.
func (m *PhysicalFileMutation) ResetDiscoveryStatus() {
	m.discovery_status = nil
}

// SetMatchedTemplateID sets the "matched_template_id" field.
func (m *PhysicalFileMutation) SetMatchedTemplateID(u uuid.UUID) {
	m.matched_template_id = &u
}

// MatchedTemplateID returns the value of the "matched_template_id" field in the mutation.
func (m *PhysicalFileMutation) MatchedTemplateID() (r uuid.UUID, exists bool) {
	v := m.matched_template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMatchedTemplateID returns the old "matched_template_id" field's value of the PhysicalFile entity.
// If the PhysicalFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalFileMutation) OldMatchedTemplateID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatchedTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatchedTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatchedTemplateID: %w", err)
	}
	return oldValue.MatchedTemplateID, nil
}

// ClearMatchedTemplateID clears the value of the "matched_template_id" field.
func (m *PhysicalFileMutation) ClearMatchedTemplateID() {
	m.matched_template_id = nil
	m.clearedFields[physicalfile.FieldMatchedTemplateID] = struct{}{}
}

// MatchedTemplateIDCleared returns if the "matched_template_id" field was cleared in this mutation.
func (m *PhysicalFileMutation) MatchedTemplateIDCleared() bool {
	_, ok := m.clearedFields[physicalfile.FieldMatchedTemplateID]
	return ok
}

// ResetMatchedTemplateID resets all changes to the "matched_template_id" field.
func (m *PhysicalFileMutation) ResetMatchedTemplateID() {
	m.matched_template_id = nil
	delete(m.clearedFields, physicalfile.FieldMatchedTemplateID)
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *PhysicalFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *PhysicalFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the PhysicalFile entity.
// If the PhysicalFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *PhysicalFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetParseRecordID sets the "parse_record" edge to the ParseRecord entity by id.
func (m *PhysicalFileMutation) SetParseRecordID(id uuid.UUID) {
	m.parse_record = &id
}

// ClearParseRecord clears the "parse_record" edge to the ParseRecord entity.
func (m *PhysicalFileMutation) ClearParseRecord() {
	m.clearedparse_record = true
}

// ParseRecordCleared reports if the "parse_record" edge to the ParseRecord entity was cleared.
func (m *PhysicalFileMutation) ParseRecordCleared() bool {
	return m.clearedparse_record
}

// ParseRecordID returns the "parse_record" edge ID in the mutation.
func (m *PhysicalFileMutation) ParseRecordID() (id uuid.UUID, exists bool) {
	if m.parse_record != nil {
		return *m.parse_record, true
	}
	return
}

// ParseRecordIDs returns the "parse_record" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParseRecordID instead. It exists only for internal usage by the builders.
func (m *PhysicalFileMutation) ParseRecordIDs() (ids []uuid.UUID) {
	if id := m.parse_record; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParseRecord resets all changes to the "parse_record" edge.
func (m *PhysicalFileMutation) ResetParseRecord() {
	m.parse_record = nil
	m.clearedparse_record = false
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by ids.
func (m *PhysicalFileMutation) AddExtractionIDs(ids ...uuid.UUID) {
	if m.extractions == nil {
		m.extractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.extractions[ids[i]] = struct{}{}
	}
}

// ClearExtractions clears the "extractions" edge to the Extraction entity.
func (m *PhysicalFileMutation) ClearExtractions() {
	m.clearedextractions = true
}

// ExtractionsCleared reports if the "extractions" edge to the Extraction entity was cleared.
func (m *PhysicalFileMutation) ExtractionsCleared() bool {
	return m.clearedextractions
}

// RemoveExtractionIDs removes the "extractions" edge to the Extraction entity by IDs.
func (m *PhysicalFileMutation) RemoveExtractionIDs(ids ...uuid.UUID) {
	if m.removedextractions == nil {
		m.removedextractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.extractions, ids[i])
		m.removedextractions[ids[i]] = struct{}{}
	}
}

// RemovedExtractions returns the removed IDs of the "extractions" edge to the Extraction entity.
func (m *PhysicalFileMutation) RemovedExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.removedextractions {
		ids = append(ids, id)
	}
	return
}

// ExtractionsIDs returns the "extractions" edge IDs in the mutation.
func (m *PhysicalFileMutation) ExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.extractions {
		ids = append(ids, id)
	}
	return
}

// ResetExtractions resets all changes to the "extractions" edge.
func (m *PhysicalFileMutation) ResetExtractions() {
	m.extractions = nil
	m.clearedextractions = false
	m.removedextractions = nil
}

// Where appends a list predicates to the PhysicalFileMutation builder.
func (m *PhysicalFileMutation) Where(ps ...predicate.PhysicalFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PhysicalFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PhysicalFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PhysicalFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PhysicalFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PhysicalFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PhysicalFile).
func (m *PhysicalFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PhysicalFileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.content_hash != nil {
		fields = append(fields, physicalfile.FieldContentHash)
	}
	if m.file_size != nil {
		fields = append(fields, physicalfile.FieldFileSize)
	}
	if m.storage_path != nil {
		fields = append(fields, physicalfile.FieldStoragePath)
	}
	if m.ref_count != nil {
		fields = append(fields, physicalfile.FieldRefCount)
	}
	if m.discovery_status != nil {
		fields = append(fields, physicalfile.FieldDiscoveryStatus)
	}
	if m.matched_template_id != nil {
		fields = append(fields, physicalfile.FieldMatchedTemplateID)
	}
	if m.uploaded_at != nil {
		fields = append(fields, physicalfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PhysicalFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case physicalfile.FieldContentHash:
		return m.ContentHash()
	case physicalfile.FieldFileSize:
		return m.FileSize()
	case physicalfile.FieldStoragePath:
		return m.StoragePath()
	case physicalfile.FieldRefCount:
		return m.RefCount()
	case physicalfile.FieldDiscoveryStatus:
		return m.DiscoveryStatus()
	case physicalfile.FieldMatchedTemplateID:
		return m.MatchedTemplateID()
	case physicalfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PhysicalFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case physicalfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case physicalfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case physicalfile.FieldStoragePath:
		return m.OldStoragePath(ctx)
	case physicalfile.FieldRefCount:
		return m.OldRefCount(ctx)
	case physicalfile.FieldDiscoveryStatus:
		return m.OldDiscoveryStatus(ctx)
	case physicalfile.FieldMatchedTemplateID:
		return m.OldMatchedTemplateID(ctx)
	case physicalfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PhysicalFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhysicalFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case physicalfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case physicalfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case physicalfile.FieldStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoragePath(v)
		return nil
	case physicalfile.FieldRefCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefCount(v)
		return nil
	case physicalfile.FieldDiscoveryStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscoveryStatus(v)
		return nil
	case physicalfile.FieldMatchedTemplateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatchedTemplateID(v)
		return nil
	case physicalfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PhysicalFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PhysicalFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, physicalfile.FieldFileSize)
	}
	if m.addref_count != nil {
		fields = append(fields, physicalfile.FieldRefCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PhysicalFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case physicalfile.FieldFileSize:
		return m.AddedFileSize()
	case physicalfile.FieldRefCount:
		return m.AddedRefCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhysicalFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case physicalfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case physicalfile.FieldRefCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRefCount(v)
		return nil
	}
	return fmt.Errorf("unknown PhysicalFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PhysicalFileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(physicalfile.FieldMatchedTemplateID) {
		fields = append(fields, physicalfile.FieldMatchedTemplateID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PhysicalFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PhysicalFileMutation) ClearField(name string) error {
	switch name {
	case physicalfile.FieldMatchedTemplateID:
		m.ClearMatchedTemplateID()
		return nil
	}
	return fmt.Errorf("unknown PhysicalFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PhysicalFileMutation) ResetField(name string) error {
	switch name {
	case physicalfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case physicalfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case physicalfile.FieldStoragePath:
		m.ResetStoragePath()
		return nil
	case physicalfile.FieldRefCount:
		m.ResetRefCount()
		return nil
	case physicalfile.FieldDiscoveryStatus:
		m.ResetDiscoveryStatus()
		return nil
	case physicalfile.FieldMatchedTemplateID:
		m.ResetMatchedTemplateID()
		return nil
	case physicalfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown PhysicalFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PhysicalFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.parse_record != nil {
		edges = append(edges, physicalfile.EdgeParseRecord)
	}
	if m.extractions != nil {
		edges = append(edges, physicalfile.EdgeExtractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PhysicalFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case physicalfile.EdgeParseRecord:
		if id := m.parse_record; id != nil {
			return []ent.Value{*id}
		}
	case physicalfile.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.extractions))
		for id := range m.extractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PhysicalFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedextractions != nil {
		edges = append(edges, physicalfile.EdgeExtractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PhysicalFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case physicalfile.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.removedextractions))
		for id := range m.removedextractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PhysicalFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedparse_record {
		edges = append(edges, physicalfile.EdgeParseRecord)
	}
	if m.clearedextractions {
		edges = append(edges, physicalfile.EdgeExtractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PhysicalFileMutation) EdgeCleared(name string) bool {
	switch name {
	case physicalfile.EdgeParseRecord:
		return m.clearedparse_record
	case physicalfile.EdgeExtractions:
		return m.clearedextractions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PhysicalFileMutation) ClearEdge(name string) error {
	switch name {
	case physicalfile.EdgeParseRecord:
		m.ClearParseRecord()
		return nil
	}
	return fmt.Errorf("unknown PhysicalFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PhysicalFileMutation) ResetEdge(name string) error {
	switch name {
	case physicalfile.EdgeParseRecord:
		m.ResetParseRecord()
		return nil
	case physicalfile.EdgeExtractions:
		m.ResetExtractions()
		return nil
	}
	return fmt.Errorf("unknown PhysicalFile edge %s", name)
}

// TemplateMutation represents an operation that mutates the Template nodes in the graph.
type TemplateMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	name               *string
	category           *string
	version            *int
	addversion         *int
	fields             *json.RawMessage
	appendfields       json.RawMessage
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	extractions        map[uuid.UUID]struct{}
	removedextractions map[uuid.UUID]struct{}
	clearedextractions bool
	done               bool
	oldValue           func(context.Context) (*Template, error)
	predicates         []predicate.Template
}

var _ ent.Mutation = (*TemplateMutation)(nil)

// templateOption allows management of the mutation configuration using functional options.
type templateOption func(*TemplateMutation)

// newTemplateMutation creates new mutation for the Template entity.
func newTemplateMutation(c config, op Op, opts ...templateOption) *TemplateMutation {
	m := &TemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTemplateID sets the ID field of the mutation.
func withTemplateID(id uuid.UUID) templateOption {
	return func(m *TemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *Template
		)
		m.oldValue = func(ctx context.Context) (*Template, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Template.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTemplate sets the old Template of the mutation.
func withTemplate(node *Template) templateOption {
	return func(m *TemplateMutation) {
		m.oldValue = func(context.Context) (*Template, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Template entities.
func (m *TemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Template.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *TemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TemplateMutation) ResetName() {
	m.name = nil
}

// SetCategory sets the "category" field.
func (m *TemplateMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *TemplateMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *TemplateMutation) ResetCategory() {
	m.category = nil
}

// SetVersion sets the "version" field.
func (m *TemplateMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *TemplateMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *TemplateMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *TemplateMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *TemplateMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetFields sets the "fields" field.
func (m *TemplateMutation) SetFields(jm json.RawMessage) {
	m.fields = &jm
	m.appendfields = nil
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *TemplateMutation) GetFields() (r json.RawMessage, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// AppendFields adds jm to the "fields" field.
func (m *TemplateMutation) AppendFields(jm json.RawMessage) {
	m.appendfields = append(m.appendfields, jm...)
}

// AppendedFields returns the list of values that were appended to the "fields" field in this mutation.
func (m *TemplateMutation) AppendedFields() (json.RawMessage, bool) {
	if len(m.appendfields) == 0 {
		return nil, false
	}
	return m.appendfields, true
}

// ResetFields resets all changes to the "fields" field.
func (m *TemplateMutation) ResetFields() {
	m.fields = nil
	m.appendfields = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Template entity.
// If the Template object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddExtractionIDs adds the "extractions" edge to the Extraction entity by ids.
func (m *TemplateMutation) AddExtractionIDs(ids ...uuid.UUID) {
	if m.extractions == nil {
		m.extractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.extractions[ids[i]] = struct{}{}
	}
}

// ClearExtractions clears the "extractions" edge to the Extraction entity.
func (m *TemplateMutation) ClearExtractions() {
	m.clearedextractions = true
}

// ExtractionsCleared reports if the "extractions" edge to the Extraction entity was cleared.
func (m *TemplateMutation) ExtractionsCleared() bool {
	return m.clearedextractions
}

// RemoveExtractionIDs removes the "extractions" edge to the Extraction entity by IDs.
func (m *TemplateMutation) RemoveExtractionIDs(ids ...uuid.UUID) {
	if m.removedextractions == nil {
		m.removedextractions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.extractions, ids[i])
		m.removedextractions[ids[i]] = struct{}{}
	}
}

// RemovedExtractions returns the removed IDs of the "extractions" edge to the Extraction entity.
func (m *TemplateMutation) RemovedExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.removedextractions {
		ids = append(ids, id)
	}
	return
}

// ExtractionsIDs returns the "extractions" edge IDs in the mutation.
func (m *TemplateMutation) ExtractionsIDs() (ids []uuid.UUID) {
	for id := range m.extractions {
		ids = append(ids, id)
	}
	return
}

// ResetExtractions resets all changes to the "extractions" edge.
func (m *TemplateMutation) ResetExtractions() {
	m.extractions = nil
	m.clearedextractions = false
	m.removedextractions = nil
}

// Where appends a list predicates to the TemplateMutation builder.
func (m *TemplateMutation) Where(ps ...predicate.Template) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Template, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Template).
func (m *TemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TemplateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, template.FieldName)
	}
	if m.category != nil {
		fields = append(fields, template.FieldCategory)
	}
	if m.version != nil {
		fields = append(fields, template.FieldVersion)
	}
	if m.fields != nil {
		fields = append(fields, template.FieldFields)
	}
	if m.created_at != nil {
		fields = append(fields, template.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, template.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case template.FieldName:
		return m.Name()
	case template.FieldCategory:
		return m.Category()
	case template.FieldVersion:
		return m.Version()
	case template.FieldFields:
		return m.GetFields()
	case template.FieldCreatedAt:
		return m.CreatedAt()
	case template.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case template.FieldName:
		return m.OldName(ctx)
	case template.FieldCategory:
		return m.OldCategory(ctx)
	case template.FieldVersion:
		return m.OldVersion(ctx)
	case template.FieldFields:
		return m.OldFields(ctx)
	case template.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case template.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Template field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case template.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case template.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case template.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case template.FieldFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case template.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case template.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TemplateMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, template.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case template.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case template.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Template numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TemplateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TemplateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Template nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TemplateMutation) ResetField(name string) error {
	switch name {
	case template.FieldName:
		m.ResetName()
		return nil
	case template.FieldCategory:
		m.ResetCategory()
		return nil
	case template.FieldVersion:
		m.ResetVersion()
		return nil
	case template.FieldFields:
		m.ResetFields()
		return nil
	case template.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case template.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Template field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.extractions != nil {
		edges = append(edges, template.EdgeExtractions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TemplateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case template.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.extractions))
		for id := range m.extractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedextractions != nil {
		edges = append(edges, template.EdgeExtractions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TemplateMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case template.EdgeExtractions:
		ids := make([]ent.Value, 0, len(m.removedextractions))
		for id := range m.removedextractions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedextractions {
		edges = append(edges, template.EdgeExtractions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TemplateMutation) EdgeCleared(name string) bool {
	switch name {
	case template.EdgeExtractions:
		return m.clearedextractions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TemplateMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Template unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TemplateMutation) ResetEdge(name string) error {
	switch name {
	case template.EdgeExtractions:
		m.ResetExtractions()
		return nil
	}
	return fmt.Errorf("unknown Template edge %s", name)
}
