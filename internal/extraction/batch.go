package extraction

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/repository"
)

// Pair names one unit of work in a batch: a stored file to run against a
// template.
type Pair struct {
	FileID     uuid.UUID
	TemplateID uuid.UUID
}

// Job is one queued extraction.
type Job struct {
	BatchID      uuid.UUID
	ExtractionID uuid.UUID
}

// BatchState is the aggregate lifecycle of a submitted batch.
type BatchState string

const (
	BatchRunning   BatchState = "RUNNING"
	BatchCompleted BatchState = "COMPLETED"
	BatchPartial   BatchState = "COMPLETED_WITH_ERRORS"
	BatchCancelled BatchState = "CANCELLED"
)

// BatchSnapshot is a point-in-time view of a batch's progress.
type BatchSnapshot struct {
	ID        uuid.UUID
	State     BatchState
	Total     int
	Completed int
	Failed    int
	Cancelled int
}

type batchState struct {
	total           int
	completed       int
	failed          int
	cancelled       int
	cancelRequested bool
}

func (b *batchState) settled() int { return b.completed + b.failed + b.cancelled }

// Pool runs extractions on a bounded set of workers. Units are independent:
// one failure never aborts its batch.
type Pool struct {
	orch        *Orchestrator
	extractions repository.ExtractionRepository
	files       repository.PhysicalFileRepository
	templates   repository.TemplateRepository
	logger      *slog.Logger
	workers     int
	timeout     time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu      sync.Mutex
	closed  bool
	batches map[uuid.UUID]*batchState
}

type Option func(*Pool)

func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewPool(
	orch *Orchestrator,
	extractions repository.ExtractionRepository,
	files repository.PhysicalFileRepository,
	templates repository.TemplateRepository,
	logger *slog.Logger,
	opts ...Option,
) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{
		orch:        orch,
		extractions: extractions,
		files:       files,
		templates:   templates,
		logger:      logger,
		workers:     4,
		timeout:     3 * time.Minute,
		ch:          make(chan Job, 256),
		batches:     make(map[uuid.UUID]*batchState),
	}
	for _, o := range opts {
		o(p)
	}
	p.start()
	return p
}

func (p *Pool) start() {
	p.once.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go func(workerID int) {
				defer p.wg.Done()
				p.logger.Info("extraction worker started", "worker_id", workerID)

				for job := range p.ch {
					p.run(workerID, job)
				}

				p.logger.Info("extraction worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (p *Pool) run(workerID int, job Job) {
	if p.cancelRequested(job.BatchID) {
		// Undispatched unit of a cancelled batch: drop it without running.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := p.cancelUnit(ctx, job.ExtractionID)
		cancel()
		if err != nil {
			p.logger.Error("failed to cancel extraction", "worker_id", workerID, "extraction_id", job.ExtractionID, "error", err)
		}
		p.record(job.BatchID, func(b *batchState) { b.cancelled++ })
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	err := p.orch.Process(ctx, job.ExtractionID)
	cancel()

	if err != nil {
		p.logger.Error("extraction failed", "worker_id", workerID, "extraction_id", job.ExtractionID, "error", err)
		p.record(job.BatchID, func(b *batchState) { b.failed++ })
		return
	}
	p.logger.Info("extraction succeeded", "worker_id", workerID, "extraction_id", job.ExtractionID)
	p.record(job.BatchID, func(b *batchState) { b.completed++ })
}

// cancelUnit moves one undispatched extraction to CANCELLED, but only when
// the transition table allows it from the unit's current status.
func (p *Pool) cancelUnit(ctx context.Context, extractionID uuid.UUID) error {
	ext, err := p.extractions.GetByID(ctx, extractionID)
	if err != nil {
		return err
	}
	if err := Transition(constants.ExtractionStatus(ext.Status), constants.ExtractionCancelled); err != nil {
		return err
	}
	return p.extractions.MarkCancelled(ctx, extractionID)
}

// Submit validates every pair up front, creates one extraction per pair,
// and enqueues them all under a fresh batch id. A single unknown file or
// template rejects the whole batch before anything is queued.
func (p *Pool) Submit(ctx context.Context, pairs []Pair) (uuid.UUID, []uuid.UUID, error) {
	if len(pairs) == 0 {
		return uuid.Nil, nil, common.NewAppError("EMPTY_BATCH", "batch has no units", common.ErrInvalidInput)
	}
	for _, pair := range pairs {
		if _, err := p.files.GetByID(ctx, pair.FileID); err != nil {
			return uuid.Nil, nil, common.NewAppError("UNKNOWN_FILE", pair.FileID.String(), err)
		}
		ok, err := p.templates.Exists(ctx, pair.TemplateID)
		if err != nil {
			return uuid.Nil, nil, err
		}
		if !ok {
			return uuid.Nil, nil, common.NewAppError("UNKNOWN_TEMPLATE", pair.TemplateID.String(), common.ErrNotFound)
		}
	}

	batchID := uuid.New()
	ids := make([]uuid.UUID, 0, len(pairs))
	jobs := make([]Job, 0, len(pairs))
	for _, pair := range pairs {
		ext, err := p.extractions.Create(ctx, pair.FileID, pair.TemplateID)
		if err != nil {
			return uuid.Nil, nil, err
		}
		ids = append(ids, ext.ID)
		jobs = append(jobs, Job{BatchID: batchID, ExtractionID: ext.ID})
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return uuid.Nil, nil, common.NewAppError("QUEUE_CLOSED", "pool is shutting down", common.ErrInternal)
	}
	p.batches[batchID] = &batchState{total: len(jobs)}
	p.mu.Unlock()

	for _, job := range jobs {
		select {
		case p.ch <- job:
		default:
			p.logger.Warn("queue full, applying backpressure", "batch_id", batchID, "extraction_id", job.ExtractionID)
			p.ch <- job
		}
	}
	p.logger.Info("batch submitted", "batch_id", batchID, "units", len(jobs))
	return batchID, ids, nil
}

// SubmitExisting queues an already-created extraction as a single-unit
// batch; used by reprocessing.
func (p *Pool) SubmitExisting(extractionID uuid.UUID) (uuid.UUID, error) {
	batchID := uuid.New()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return uuid.Nil, common.NewAppError("QUEUE_CLOSED", "pool is shutting down", common.ErrInternal)
	}
	p.batches[batchID] = &batchState{total: 1}
	p.mu.Unlock()

	p.ch <- Job{BatchID: batchID, ExtractionID: extractionID}
	p.logger.Info("extraction requeued", "batch_id", batchID, "extraction_id", extractionID)
	return batchID, nil
}

// Cancel flags a batch. Units not yet dispatched are dropped and marked
// cancelled when a worker reaches them; a unit already running completes in
// the background.
func (p *Pool) Cancel(batchID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.batches[batchID]
	if !ok {
		return common.ErrNotFound
	}
	b.cancelRequested = true
	p.logger.Info("batch cancel requested", "batch_id", batchID, "settled", b.settled(), "total", b.total)
	return nil
}

// Snapshot reports a batch's current progress.
func (p *Pool) Snapshot(batchID uuid.UUID) (BatchSnapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.batches[batchID]
	if !ok {
		return BatchSnapshot{}, common.ErrNotFound
	}
	return BatchSnapshot{
		ID:        batchID,
		State:     b.state(),
		Total:     b.total,
		Completed: b.completed,
		Failed:    b.failed,
		Cancelled: b.cancelled,
	}, nil
}

func (b *batchState) state() BatchState {
	if b.cancelRequested {
		return BatchCancelled
	}
	if b.settled() < b.total {
		return BatchRunning
	}
	if b.failed > 0 {
		return BatchPartial
	}
	return BatchCompleted
}

func (p *Pool) cancelRequested(batchID uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	b, ok := p.batches[batchID]
	return ok && b.cancelRequested
}

func (p *Pool) record(batchID uuid.UUID, update func(*batchState)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if b, ok := p.batches[batchID]; ok {
		update(b)
	}
}

// Shutdown stops intake, drains queued jobs, and waits for workers up to
// the context deadline.
func (p *Pool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.ch)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); p.wg.Wait() }()

	select {
	case <-ctx.Done():
		p.logger.Warn("pool shutdown interrupted by context")
	case <-done:
		p.logger.Info("pool drained, shutdown complete")
	}
}
