package parsecache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/provider"
)

type fakeFiles struct {
	files map[uuid.UUID]*entity.PhysicalFile
}

func (f *fakeFiles) GetByID(_ context.Context, id uuid.UUID) (*entity.PhysicalFile, error) {
	file, ok := f.files[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return file, nil
}

type fakeParses struct {
	mu      sync.Mutex
	records map[uuid.UUID]*entity.ParseRecord
	upserts int32
}

func (f *fakeParses) GetByFileID(_ context.Context, fileID uuid.UUID) (*entity.ParseRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[fileID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return rec, nil
}

func (f *fakeParses) Upsert(_ context.Context, fileID uuid.UUID, jobToken string, blocks []entity.ParseBlock) (*entity.ParseRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	rec := &entity.ParseRecord{ID: uuid.New(), FileID: fileID, JobToken: jobToken, Blocks: blocks}
	f.records[fileID] = rec
	return rec, nil
}

type countingParser struct {
	calls int32
	delay time.Duration
	err   error
}

func (p *countingParser) Parse(_ context.Context, _ []byte) (provider.ParseResult, error) {
	atomic.AddInt32(&p.calls, 1)
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	if p.err != nil {
		return provider.ParseResult{}, p.err
	}
	return provider.ParseResult{
		JobToken: "job-1",
		Blocks:   []entity.ParseBlock{{ID: "b1", Page: 1, Text: "hello"}},
	}, nil
}

type fakeBlobs struct{}

func (fakeBlobs) ReadFile(_ context.Context, _ string) ([]byte, error) {
	return []byte("file bytes"), nil
}

func newFixture(parser provider.DocumentParser) (*Cache, uuid.UUID, *fakeParses) {
	fileID := uuid.New()
	files := &fakeFiles{files: map[uuid.UUID]*entity.PhysicalFile{
		fileID: {ID: fileID, StoragePath: "ab/abcd"},
	}}
	parses := &fakeParses{records: make(map[uuid.UUID]*entity.ParseRecord)}
	return New(files, parses, parser, fakeBlobs{}, nil), fileID, parses
}

func TestGetOrParse(t *testing.T) {
	t.Run("parses once and persists", func(t *testing.T) {
		parser := &countingParser{}
		cache, fileID, parses := newFixture(parser)

		rec, err := cache.GetOrParse(context.Background(), fileID)
		require.NoError(t, err)
		assert.Equal(t, "job-1", rec.JobToken)
		assert.EqualValues(t, 1, atomic.LoadInt32(&parser.calls))
		assert.EqualValues(t, 1, parses.upserts)
	})

	t.Run("second call is served from the record", func(t *testing.T) {
		parser := &countingParser{}
		cache, fileID, _ := newFixture(parser)

		first, err := cache.GetOrParse(context.Background(), fileID)
		require.NoError(t, err)
		second, err := cache.GetOrParse(context.Background(), fileID)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.EqualValues(t, 1, atomic.LoadInt32(&parser.calls))
	})

	t.Run("concurrent callers share one parse", func(t *testing.T) {
		parser := &countingParser{delay: 50 * time.Millisecond}
		cache, fileID, _ := newFixture(parser)

		const callers = 16
		var wg sync.WaitGroup
		results := make([]*entity.ParseRecord, callers)
		errs := make([]error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = cache.GetOrParse(context.Background(), fileID)
			}(i)
		}
		wg.Wait()

		assert.EqualValues(t, 1, atomic.LoadInt32(&parser.calls))
		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			require.NotNil(t, results[i])
			assert.Equal(t, results[0].ID, results[i].ID)
		}
	})

	t.Run("independent files do not serialize", func(t *testing.T) {
		parser := &countingParser{}
		fileA, fileB := uuid.New(), uuid.New()
		files := &fakeFiles{files: map[uuid.UUID]*entity.PhysicalFile{
			fileA: {ID: fileA, StoragePath: "aa/1"},
			fileB: {ID: fileB, StoragePath: "bb/2"},
		}}
		parses := &fakeParses{records: make(map[uuid.UUID]*entity.ParseRecord)}
		cache := New(files, parses, parser, fakeBlobs{}, nil)

		recA, err := cache.GetOrParse(context.Background(), fileA)
		require.NoError(t, err)
		recB, err := cache.GetOrParse(context.Background(), fileB)
		require.NoError(t, err)

		assert.NotEqual(t, recA.FileID, recB.FileID)
		assert.EqualValues(t, 2, atomic.LoadInt32(&parser.calls))
	})

	t.Run("failed parse is not cached", func(t *testing.T) {
		parser := &countingParser{err: assert.AnError}
		cache, fileID, parses := newFixture(parser)

		_, err := cache.GetOrParse(context.Background(), fileID)
		require.Error(t, err)
		assert.EqualValues(t, 0, parses.upserts)

		// A later call retries the upstream parse.
		parser.err = nil
		rec, err := cache.GetOrParse(context.Background(), fileID)
		require.NoError(t, err)
		assert.Equal(t, "job-1", rec.JobToken)
		assert.EqualValues(t, 2, atomic.LoadInt32(&parser.calls))
	})

	t.Run("unknown file surfaces not found", func(t *testing.T) {
		cache, _, _ := newFixture(&countingParser{})
		_, err := cache.GetOrParse(context.Background(), uuid.New())
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
