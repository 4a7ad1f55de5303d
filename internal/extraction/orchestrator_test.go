package extraction

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/audit"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/provider"
	"github.com/oakfield-labs/docuflow/internal/repository"
	"github.com/oakfield-labs/docuflow/internal/validation"
)

// --- fakes -----------------------------------------------------------------

type fakeExtractions struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]*entity.Extraction
	history map[uuid.UUID][]string
}

func newFakeExtractions() *fakeExtractions {
	return &fakeExtractions{
		rows:    make(map[uuid.UUID]*entity.Extraction),
		history: make(map[uuid.UUID][]string),
	}
}

func (f *fakeExtractions) add(ext *entity.Extraction) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[ext.ID] = ext
}

func (f *fakeExtractions) GetByID(_ context.Context, id uuid.UUID) (*entity.Extraction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ext, ok := f.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	clone := *ext
	return &clone, nil
}

func (f *fakeExtractions) ListByFile(_ context.Context, fileID uuid.UUID) ([]*entity.Extraction, error) {
	return nil, nil
}

func (f *fakeExtractions) Create(_ context.Context, fileID, templateID uuid.UUID) (*entity.Extraction, error) {
	ext := &entity.Extraction{
		ID:         uuid.New(),
		FileID:     fileID,
		TemplateID: templateID,
		Status:     string(constants.ExtractionUploaded),
		StartedAt:  time.Now(),
	}
	f.add(ext)
	return ext, nil
}

func (f *fakeExtractions) SetStatus(_ context.Context, id uuid.UUID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id].Status = status
	f.history[id] = append(f.history[id], status)
	return nil
}

func (f *fakeExtractions) MarkCompleted(_ context.Context, id uuid.UUID, organizedPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id].Status = string(constants.ExtractionCompleted)
	f.rows[id].OrganizedPath = &organizedPath
	f.history[id] = append(f.history[id], string(constants.ExtractionCompleted))
	return nil
}

func (f *fakeExtractions) MarkError(_ context.Context, id uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id].Status = string(constants.ExtractionError)
	f.rows[id].ErrorMessage = &message
	f.history[id] = append(f.history[id], string(constants.ExtractionError))
	return nil
}

func (f *fakeExtractions) MarkCancelled(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id].Status = string(constants.ExtractionCancelled)
	f.history[id] = append(f.history[id], string(constants.ExtractionCancelled))
	return nil
}

func (f *fakeExtractions) Delete(_ context.Context, _ uuid.UUID) (bool, string, error) {
	return false, "", nil
}

type fakeFields struct {
	mu          sync.Mutex
	byExt       map[uuid.UUID][]*entity.ExtractedField
	validations map[uuid.UUID]int // field id -> persisted priority
}

func newFakeFields() *fakeFields {
	return &fakeFields{
		byExt:       make(map[uuid.UUID][]*entity.ExtractedField),
		validations: make(map[uuid.UUID]int),
	}
}

func (f *fakeFields) GetByID(_ context.Context, _ uuid.UUID) (*entity.ExtractedField, error) {
	return nil, common.ErrNotFound
}

func (f *fakeFields) ListByExtraction(_ context.Context, extractionID uuid.UUID) ([]*entity.ExtractedField, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byExt[extractionID], nil
}

func (f *fakeFields) ReplaceForExtraction(_ context.Context, extractionID uuid.UUID, fields []*entity.ExtractedField) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, fld := range fields {
		if fld.ID == uuid.Nil {
			fld.ID = uuid.New()
		}
	}
	f.byExt[extractionID] = fields
	return nil
}

func (f *fakeFields) ListUnverified(_ context.Context, _ repository.AuditFilter) ([]*entity.ExtractedField, error) {
	return nil, nil
}

func (f *fakeFields) UpdateValue(_ context.Context, _ uuid.UUID, _ json.RawMessage, _ bool) (*entity.ExtractedField, error) {
	return nil, common.ErrNotFound
}

func (f *fakeFields) UpdateValidation(_ context.Context, id uuid.UUID, status string, messages []string, priority int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validations[id] = priority
	for _, rows := range f.byExt {
		for _, fld := range rows {
			if fld.ID == id {
				fld.ValidationStatus = status
				fld.ValidationErrors = messages
				fld.AuditPriority = priority
			}
		}
	}
	return nil
}

type fakeTemplates struct {
	tpl *entity.Template
}

func (f *fakeTemplates) GetByID(_ context.Context, id uuid.UUID) (*entity.Template, error) {
	if f.tpl == nil || f.tpl.ID != id {
		return nil, common.ErrNotFound
	}
	return f.tpl, nil
}
func (f *fakeTemplates) List(_ context.Context) ([]*entity.Template, error) {
	if f.tpl == nil {
		return nil, nil
	}
	return []*entity.Template{f.tpl}, nil
}
func (f *fakeTemplates) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.tpl != nil && f.tpl.ID == id, nil
}
func (f *fakeTemplates) Create(_ context.Context, _, _ string, _ []entity.FieldDefinition) (*entity.Template, error) {
	return nil, nil
}
func (f *fakeTemplates) UpdateFields(_ context.Context, _ uuid.UUID, _ []entity.FieldDefinition) (*entity.Template, error) {
	return nil, common.ErrNotFound
}

type fakeParseCache struct {
	calls int
	err   error
}

func (f *fakeParseCache) GetOrParse(_ context.Context, fileID uuid.UUID) (*entity.ParseRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &entity.ParseRecord{ID: uuid.New(), FileID: fileID, JobToken: "job-7"}, nil
}

type fakeExtractor struct {
	mu     sync.Mutex
	calls  int
	values map[string]provider.ExtractedValue
	raw    []byte
	err    error
}

func (f *fakeExtractor) ExtractFields(_ context.Context, _ provider.ExtractRequest) (map[string]provider.ExtractedValue, []byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.values, f.raw, nil
}

// --- fixtures --------------------------------------------------------------

func testTemplate() *entity.Template {
	return &entity.Template{
		ID:       uuid.New(),
		Name:     "standard-invoice",
		Category: "Invoice",
		Version:  1,
		Fields: []entity.FieldDefinition{
			{Name: "invoice_number", Type: entity.FieldText, Required: true},
			{Name: "total_amount", Type: entity.FieldNumber, Required: true},
		},
	}
}

type fixture struct {
	orch        *Orchestrator
	extractions *fakeExtractions
	fields      *fakeFields
	templates   *fakeTemplates
	cache       *fakeParseCache
	extractor   *fakeExtractor
	tpl         *entity.Template
}

func newOrchFixture(t *testing.T) *fixture {
	t.Helper()
	tpl := testTemplate()
	fx := &fixture{
		extractions: newFakeExtractions(),
		fields:      newFakeFields(),
		templates:   &fakeTemplates{tpl: tpl},
		cache:       &fakeParseCache{},
		extractor: &fakeExtractor{
			values: map[string]provider.ExtractedValue{
				"invoice_number": {Value: json.RawMessage(`"INV-9"`), Confidence: 0.95},
				"total_amount":   {Value: json.RawMessage(`120.50`), Confidence: 0.4},
			},
			raw: []byte(`{"fields":{"invoice_number":{"value":"INV-9","confidence":0.95},"total_amount":{"value":120.50,"confidence":0.4}}}`),
		},
		tpl: tpl,
	}
	engine := validation.NewEngine(0.8, nil)
	fx.orch = NewOrchestrator(
		Config{MaxAttempts: 3, BackoffBase: time.Millisecond, Thresholds: audit.DefaultThresholds()},
		fx.extractions, fx.fields, fx.templates, fx.cache, fx.extractor, engine, nil,
	)
	fx.orch.sleep = func(time.Duration) {}
	return fx
}

func (fx *fixture) newExtraction(t *testing.T) *entity.Extraction {
	t.Helper()
	ext, err := fx.extractions.Create(context.Background(), uuid.New(), fx.tpl.ID)
	require.NoError(t, err)
	return ext
}

// --- tests -----------------------------------------------------------------

func TestProcessSuccess(t *testing.T) {
	fx := newOrchFixture(t)
	ext := fx.newExtraction(t)

	err := fx.orch.Process(context.Background(), ext.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{
		string(constants.ExtractionParsing),
		string(constants.ExtractionParsed),
		string(constants.ExtractionExtracting),
		string(constants.ExtractionCompleted),
	}, fx.extractions.history[ext.ID])

	final, _ := fx.extractions.GetByID(context.Background(), ext.ID)
	require.NotNil(t, final.OrganizedPath)
	assert.Contains(t, *final.OrganizedPath, "invoice/")

	rows := fx.fields.byExt[ext.ID]
	require.Len(t, rows, 2)
	byName := map[string]*entity.ExtractedField{}
	for _, r := range rows {
		byName[r.Name] = r
	}
	assert.Equal(t, string(constants.ValidationValid), byName["invoice_number"].ValidationStatus)
	assert.Equal(t, int(audit.Low), byName["invoice_number"].AuditPriority)
	// low-confidence field lands in the review queue
	assert.Equal(t, int(audit.High), byName["total_amount"].AuditPriority)
}

func TestProcessMissingRequiredField(t *testing.T) {
	fx := newOrchFixture(t)
	fx.extractor.values = map[string]provider.ExtractedValue{
		"invoice_number": {Value: json.RawMessage(`"INV-9"`), Confidence: 0.95},
	}
	fx.extractor.raw = []byte(`{"fields":{"invoice_number":{"value":"INV-9","confidence":0.95}}}`)
	ext := fx.newExtraction(t)

	require.NoError(t, fx.orch.Process(context.Background(), ext.ID))

	rows := fx.fields.byExt[ext.ID]
	require.Len(t, rows, 2)
	var missing *entity.ExtractedField
	for _, r := range rows {
		if r.Name == "total_amount" {
			missing = r
		}
	}
	require.NotNil(t, missing, "required field must materialize even when the extractor skips it")
	assert.Zero(t, missing.Confidence)
	assert.Equal(t, string(constants.ValidationError), missing.ValidationStatus)
	assert.Equal(t, int(audit.Critical), missing.AuditPriority)
	assert.Contains(t, missing.ValidationErrors, validation.NotExtractedMessage)
}

func TestProcessRetriesTransientErrors(t *testing.T) {
	fx := newOrchFixture(t)
	fx.extractor.err = &common.TransientError{Cause: assert.AnError}
	ext := fx.newExtraction(t)

	err := fx.orch.Process(context.Background(), ext.ID)
	require.Error(t, err)

	assert.Equal(t, 3, fx.extractor.calls, "retries exactly up to the attempt cap")
	final, _ := fx.extractions.GetByID(context.Background(), ext.ID)
	assert.Equal(t, string(constants.ExtractionError), final.Status)
	require.NotNil(t, final.ErrorMessage)
	assert.Contains(t, *final.ErrorMessage, "extract")
}

func TestProcessDoesNotRetryFatalErrors(t *testing.T) {
	fx := newOrchFixture(t)
	fx.extractor.err = assert.AnError
	ext := fx.newExtraction(t)

	err := fx.orch.Process(context.Background(), ext.ID)
	require.Error(t, err)
	assert.Equal(t, 1, fx.extractor.calls)
}

func TestProcessParseFailure(t *testing.T) {
	fx := newOrchFixture(t)
	fx.cache.err = assert.AnError
	ext := fx.newExtraction(t)

	err := fx.orch.Process(context.Background(), ext.ID)
	require.Error(t, err)

	assert.Zero(t, fx.extractor.calls, "extractor must not run without a parse")
	final, _ := fx.extractions.GetByID(context.Background(), ext.ID)
	assert.Equal(t, string(constants.ExtractionError), final.Status)
}

func TestProcessRejectsMalformedPayload(t *testing.T) {
	fx := newOrchFixture(t)
	// confidence missing from the envelope
	fx.extractor.raw = []byte(`{"fields":{"invoice_number":{"value":"INV-9"}}}`)
	ext := fx.newExtraction(t)

	err := fx.orch.Process(context.Background(), ext.ID)
	require.Error(t, err)

	final, _ := fx.extractions.GetByID(context.Background(), ext.ID)
	assert.Equal(t, string(constants.ExtractionError), final.Status)
	assert.Empty(t, fx.fields.byExt[ext.ID], "no fields persisted from a rejected payload")
}

func TestProcessKeepsExtraFields(t *testing.T) {
	fx := newOrchFixture(t)
	fx.extractor.values["handwritten_note"] = provider.ExtractedValue{
		Value: json.RawMessage(`"see attached"`), Confidence: 0.9,
	}
	fx.extractor.raw = []byte(`{"fields":{
		"invoice_number":{"value":"INV-9","confidence":0.95},
		"total_amount":{"value":120.50,"confidence":0.4},
		"handwritten_note":{"value":"see attached","confidence":0.9}
	}}`)
	ext := fx.newExtraction(t)

	require.NoError(t, fx.orch.Process(context.Background(), ext.ID))

	final, _ := fx.extractions.GetByID(context.Background(), ext.ID)
	assert.Equal(t, string(constants.ExtractionCompleted), final.Status)

	rows := fx.fields.byExt[ext.ID]
	require.Len(t, rows, 3, "the out-of-template field stays visible")
	var extra *entity.ExtractedField
	for _, r := range rows {
		if r.Name == "handwritten_note" {
			extra = r
		}
	}
	require.NotNil(t, extra)
	assert.Equal(t, string(constants.ValidationValid), extra.ValidationStatus)
}

func TestProcessTemplateLoadFailure(t *testing.T) {
	fx := newOrchFixture(t)
	ext, err := fx.extractions.Create(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)

	err = fx.orch.Process(context.Background(), ext.ID)
	require.Error(t, err)

	// Pre-parse failure still lands in ERROR through the transition table.
	final, _ := fx.extractions.GetByID(context.Background(), ext.ID)
	assert.Equal(t, string(constants.ExtractionError), final.Status)
	require.NotNil(t, final.ErrorMessage)
	assert.Contains(t, *final.ErrorMessage, "load template")
	assert.Zero(t, fx.cache.calls, "no parse attempted without a template")
}

func TestProcessRefusesNonProcessableStatus(t *testing.T) {
	fx := newOrchFixture(t)
	ext := fx.newExtraction(t)
	require.NoError(t, fx.orch.Process(context.Background(), ext.ID))

	// Already COMPLETED; a second run must be refused, not restarted.
	err := fx.orch.Process(context.Background(), ext.ID)
	assert.Error(t, err)
	assert.Equal(t, 1, fx.cache.calls)
}

func TestReprocessCreatesNewExtraction(t *testing.T) {
	fx := newOrchFixture(t)
	ext := fx.newExtraction(t)
	require.NoError(t, fx.orch.Process(context.Background(), ext.ID))

	next, err := fx.orch.Reprocess(context.Background(), ext.ID)
	require.NoError(t, err)
	assert.NotEqual(t, ext.ID, next.ID)
	assert.Equal(t, ext.FileID, next.FileID)
	assert.Equal(t, ext.TemplateID, next.TemplateID)
	assert.Equal(t, string(constants.ExtractionUploaded), next.Status)

	// The first extraction and its fields survive.
	prev, err := fx.extractions.GetByID(context.Background(), ext.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ExtractionCompleted), prev.Status)
	assert.Len(t, fx.fields.byExt[ext.ID], 2)
}

func TestRevalidate(t *testing.T) {
	fx := newOrchFixture(t)
	ext := fx.newExtraction(t)
	require.NoError(t, fx.orch.Process(context.Background(), ext.ID))

	// Simulate a reviewer correcting the low-confidence amount.
	for _, r := range fx.fields.byExt[ext.ID] {
		if r.Name == "total_amount" {
			r.Value = json.RawMessage(`99.99`)
			r.Confidence = 1
		}
	}
	require.NoError(t, fx.orch.Revalidate(context.Background(), ext.ID))

	for _, r := range fx.fields.byExt[ext.ID] {
		if r.Name == "total_amount" {
			assert.Equal(t, string(constants.ValidationValid), r.ValidationStatus)
			assert.Equal(t, int(audit.Low), r.AuditPriority)
		}
	}
}
