package extraction

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/provider"
)

type fakeFilesRepo struct {
	known map[uuid.UUID]*entity.PhysicalFile
}

func (f *fakeFilesRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.PhysicalFile, error) {
	file, ok := f.known[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return file, nil
}
func (f *fakeFilesRepo) GetByHash(_ context.Context, _ []byte) (*entity.PhysicalFile, error) {
	return nil, common.ErrNotFound
}
func (f *fakeFilesRepo) CreateOrRef(_ context.Context, _ []byte, _ int, _ string) (*entity.PhysicalFile, bool, error) {
	return nil, false, nil
}
func (f *fakeFilesRepo) Release(_ context.Context, _ uuid.UUID) (bool, string, error) {
	return false, "", nil
}
func (f *fakeFilesRepo) SetDiscovery(_ context.Context, id uuid.UUID, status string, matchedTemplateID *uuid.UUID) error {
	if file, ok := f.known[id]; ok {
		file.DiscoveryStatus = status
		file.MatchedTemplateID = matchedTemplateID
	}
	return nil
}

// slowExtractor blocks each call until released, to keep units in flight.
type slowExtractor struct {
	gate   chan struct{}
	values map[string]provider.ExtractedValue
	raw    []byte
}

func (s *slowExtractor) ExtractFields(_ context.Context, _ provider.ExtractRequest) (map[string]provider.ExtractedValue, []byte, error) {
	<-s.gate
	return s.values, s.raw, nil
}

type poolFixture struct {
	*fixture
	pool  *Pool
	files *fakeFilesRepo
}

func newPoolFixture(t *testing.T, opts ...Option) *poolFixture {
	t.Helper()
	fx := newOrchFixture(t)
	files := &fakeFilesRepo{known: make(map[uuid.UUID]*entity.PhysicalFile)}
	pool := NewPool(fx.orch, fx.extractions, files, fx.templates, nil, opts...)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		pool.Shutdown(ctx)
	})
	return &poolFixture{fixture: fx, pool: pool, files: files}
}

func (p *poolFixture) addFile() uuid.UUID {
	id := uuid.New()
	p.files.known[id] = &entity.PhysicalFile{
		ID:              id,
		StoragePath:     "ab/cd",
		RefCount:        1,
		DiscoveryStatus: string(constants.DocumentUploaded),
	}
	return id
}

func waitSettled(t *testing.T, pool *Pool, batchID uuid.UUID) BatchSnapshot {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		snap, err := pool.Snapshot(batchID)
		require.NoError(t, err)
		if snap.Completed+snap.Failed+snap.Cancelled >= snap.Total {
			return snap
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("batch %s did not settle", batchID)
	return BatchSnapshot{}
}

func TestSubmitValidation(t *testing.T) {
	fx := newPoolFixture(t)

	t.Run("empty batch rejected", func(t *testing.T) {
		_, _, err := fx.pool.Submit(context.Background(), nil)
		assert.Error(t, err)
	})

	t.Run("unknown file rejects the whole batch", func(t *testing.T) {
		_, _, err := fx.pool.Submit(context.Background(), []Pair{
			{FileID: fx.addFile(), TemplateID: fx.tpl.ID},
			{FileID: uuid.New(), TemplateID: fx.tpl.ID},
		})
		require.Error(t, err)
		var appErr *common.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNKNOWN_FILE", appErr.Code)
	})

	t.Run("unknown template rejects the whole batch", func(t *testing.T) {
		_, _, err := fx.pool.Submit(context.Background(), []Pair{
			{FileID: fx.addFile(), TemplateID: uuid.New()},
		})
		require.Error(t, err)
		var appErr *common.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "UNKNOWN_TEMPLATE", appErr.Code)
	})
}

func TestBatchCompletes(t *testing.T) {
	fx := newPoolFixture(t, WithWorkers(2))

	pairs := []Pair{
		{FileID: fx.addFile(), TemplateID: fx.tpl.ID},
		{FileID: fx.addFile(), TemplateID: fx.tpl.ID},
		{FileID: fx.addFile(), TemplateID: fx.tpl.ID},
	}
	batchID, ids, err := fx.pool.Submit(context.Background(), pairs)
	require.NoError(t, err)
	require.Len(t, ids, 3)

	snap := waitSettled(t, fx.pool, batchID)
	assert.Equal(t, BatchCompleted, snap.State)
	assert.Equal(t, 3, snap.Completed)
	assert.Zero(t, snap.Failed)

	for _, id := range ids {
		ext, err := fx.extractions.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, string(constants.ExtractionCompleted), ext.Status)
	}
}

func TestBatchFailureIsIsolated(t *testing.T) {
	fx := newPoolFixture(t, WithWorkers(1))

	// Second unit references a template the orchestrator cannot load.
	ghostTemplate := uuid.New()
	good := fx.addFile()
	bad := fx.addFile()
	badExt, err := fx.extractions.Create(context.Background(), bad, ghostTemplate)
	require.NoError(t, err)

	batchID, ids, err := fx.pool.Submit(context.Background(), []Pair{
		{FileID: good, TemplateID: fx.tpl.ID},
	})
	require.NoError(t, err)
	require.Len(t, ids, 1)

	// Queue the doomed unit through the same pool.
	_, err = fx.pool.SubmitExisting(badExt.ID)
	require.NoError(t, err)

	snap := waitSettled(t, fx.pool, batchID)
	assert.Equal(t, BatchCompleted, snap.State, "unrelated failure must not taint this batch")
}

func TestBatchCancel(t *testing.T) {
	gate := make(chan struct{})
	fx := newPoolFixture(t, WithWorkers(1))
	fx.orch.extractor = &slowExtractor{
		gate: gate,
		values: map[string]provider.ExtractedValue{
			"invoice_number": {Value: json.RawMessage(`"INV-9"`), Confidence: 0.95},
			"total_amount":   {Value: json.RawMessage(`10`), Confidence: 0.9},
		},
	}

	pairs := make([]Pair, 0, 4)
	for i := 0; i < 4; i++ {
		pairs = append(pairs, Pair{FileID: fx.addFile(), TemplateID: fx.tpl.ID})
	}
	batchID, ids, err := fx.pool.Submit(context.Background(), pairs)
	require.NoError(t, err)

	// First unit is in flight on the single worker; cancel while the rest
	// sit in the queue, then release the gate.
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, fx.pool.Cancel(batchID))
	close(gate)

	snap := waitSettled(t, fx.pool, batchID)
	assert.Equal(t, BatchCancelled, snap.State)
	assert.Equal(t, 3, snap.Cancelled, "undispatched units are dropped")
	assert.Equal(t, 1, snap.Completed, "the in-flight unit runs to completion")

	cancelled := 0
	for _, id := range ids {
		ext, err := fx.extractions.GetByID(context.Background(), id)
		require.NoError(t, err)
		if ext.Status == string(constants.ExtractionCancelled) {
			cancelled++
		}
	}
	assert.Equal(t, 3, cancelled)
}

func TestSnapshotUnknownBatch(t *testing.T) {
	fx := newPoolFixture(t)
	_, err := fx.pool.Snapshot(uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.ErrorIs(t, fx.pool.Cancel(uuid.New()), common.ErrNotFound)
}
