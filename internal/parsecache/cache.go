package parsecache

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/provider"
)

// BlobReader loads stored file bytes for a physical file's storage path.
type BlobReader interface {
	ReadFile(ctx context.Context, storagePath string) ([]byte, error)
}

// FileLookup resolves a physical file id to its stored metadata.
type FileLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PhysicalFile, error)
}

// Cache is the single-flight parse cache. The persisted ParseRecord is the
// durable cache; the in-flight map only collapses concurrent parse calls for
// the same file so one upstream call serves every waiter. Independent keys
// never block each other.
type Cache struct {
	files  FileLookup
	parses ParseRecordStore
	parser provider.DocumentParser
	blobs  BlobReader
	logger *slog.Logger

	mu       sync.Mutex
	inflight map[uuid.UUID]*call
}

// ParseRecordStore is the persistence the cache reads through.
type ParseRecordStore interface {
	GetByFileID(ctx context.Context, fileID uuid.UUID) (*entity.ParseRecord, error)
	Upsert(ctx context.Context, fileID uuid.UUID, jobToken string, blocks []entity.ParseBlock) (*entity.ParseRecord, error)
}

type call struct {
	done chan struct{}
	rec  *entity.ParseRecord
	err  error
}

func New(files FileLookup, parses ParseRecordStore, parser provider.DocumentParser, blobs BlobReader, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		files:    files,
		parses:   parses,
		parser:   parser,
		blobs:    blobs,
		logger:   logger,
		inflight: make(map[uuid.UUID]*call),
	}
}

// GetOrParse returns the parse record for the file, issuing at most one
// upstream parse call per file regardless of concurrent callers.
func (c *Cache) GetOrParse(ctx context.Context, fileID uuid.UUID) (*entity.ParseRecord, error) {
	if rec, err := c.parses.GetByFileID(ctx, fileID); err == nil {
		return rec, nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	c.mu.Lock()
	if cl, ok := c.inflight[fileID]; ok {
		c.mu.Unlock()
		c.logger.Debug("parse in flight, waiting", "file_id", fileID)
		select {
		case <-cl.done:
			return cl.rec, cl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	cl := &call{done: make(chan struct{})}
	c.inflight[fileID] = cl
	c.mu.Unlock()

	cl.rec, cl.err = c.parse(ctx, fileID)

	c.mu.Lock()
	delete(c.inflight, fileID)
	c.mu.Unlock()
	close(cl.done)

	return cl.rec, cl.err
}

func (c *Cache) parse(ctx context.Context, fileID uuid.UUID) (*entity.ParseRecord, error) {
	// A parallel caller may have persisted a record between our miss and
	// acquiring the flight slot.
	if rec, err := c.parses.GetByFileID(ctx, fileID); err == nil {
		return rec, nil
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	file, err := c.files.GetByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	data, err := c.blobs.ReadFile(ctx, file.StoragePath)
	if err != nil {
		return nil, err
	}

	c.logger.Info("parsing file", "file_id", fileID, "bytes", len(data))
	res, err := c.parser.Parse(ctx, data)
	if err != nil {
		return nil, err
	}

	rec, err := c.parses.Upsert(ctx, fileID, res.JobToken, res.Blocks)
	if err != nil {
		return nil, err
	}
	c.logger.Info("parse record cached", "file_id", fileID, "blocks", len(rec.Blocks))
	return rec, nil
}
