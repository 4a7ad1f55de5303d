package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/audit"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/provider"
	"github.com/oakfield-labs/docuflow/internal/repository"
	"github.com/oakfield-labs/docuflow/internal/validation"
)

// Parser yields the cached parse for a file; satisfied by parsecache.Cache.
type Parser interface {
	GetOrParse(ctx context.Context, fileID uuid.UUID) (*entity.ParseRecord, error)
}

// Config carries the pipeline knobs the orchestrator needs.
type Config struct {
	MaxAttempts int
	BackoffBase time.Duration
	Thresholds  audit.Thresholds
}

func ConfigFromPipeline(p common.PipelineConfig) Config {
	return Config{
		MaxAttempts: p.MaxAttempts,
		BackoffBase: p.BackoffBase,
		Thresholds:  audit.Thresholds{Medium: p.MediumConfidence, High: p.HighConfidence},
	}
}

// Orchestrator drives one extraction through its lifecycle: parse (through
// the shared cache), extract, schema-check the payload, validate fields,
// persist. Every status move goes through the transition table.
type Orchestrator struct {
	cfg         Config
	extractions repository.ExtractionRepository
	fields      repository.ExtractedFieldRepository
	templates   repository.TemplateRepository
	parser      Parser
	extractor   provider.FieldExtractor
	engine      *validation.Engine
	logger      *slog.Logger

	sleep func(time.Duration)
}

func NewOrchestrator(
	cfg Config,
	extractions repository.ExtractionRepository,
	fields repository.ExtractedFieldRepository,
	templates repository.TemplateRepository,
	parser Parser,
	extractor provider.FieldExtractor,
	engine *validation.Engine,
	logger *slog.Logger,
) *Orchestrator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = 500 * time.Millisecond
	}
	if cfg.Thresholds.Medium <= 0 || cfg.Thresholds.High <= cfg.Thresholds.Medium {
		cfg.Thresholds = audit.DefaultThresholds()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		cfg:         cfg,
		extractions: extractions,
		fields:      fields,
		templates:   templates,
		parser:      parser,
		extractor:   extractor,
		engine:      engine,
		logger:      logger,
		sleep:       time.Sleep,
	}
}

// Process runs the full pipeline for one extraction. A returned error means
// the unit failed; its status has already been moved to ERROR.
func (o *Orchestrator) Process(ctx context.Context, extractionID uuid.UUID) error {
	ext, err := o.extractions.GetByID(ctx, extractionID)
	if err != nil {
		return err
	}
	status := constants.ExtractionStatus(ext.Status)
	if status != constants.ExtractionUploaded {
		return fmt.Errorf("extraction %s is %s, not processable", extractionID, status)
	}
	tpl, err := o.templates.GetByID(ctx, ext.TemplateID)
	if err != nil {
		return o.fail(ctx, extractionID, status, fmt.Errorf("load template: %w", err))
	}

	if err := o.advance(ctx, extractionID, &status, constants.ExtractionParsing); err != nil {
		return err
	}
	var rec *entity.ParseRecord
	err = o.withRetry(ctx, "parse", func() error {
		var perr error
		rec, perr = o.parser.GetOrParse(ctx, ext.FileID)
		return perr
	})
	if err != nil {
		return o.fail(ctx, extractionID, status, fmt.Errorf("parse: %w", err))
	}
	if err := o.advance(ctx, extractionID, &status, constants.ExtractionParsed); err != nil {
		return err
	}

	if err := o.advance(ctx, extractionID, &status, constants.ExtractionExtracting); err != nil {
		return err
	}
	var (
		values map[string]provider.ExtractedValue
		raw    []byte
	)
	err = o.withRetry(ctx, "extract", func() error {
		var eerr error
		values, raw, eerr = o.extractor.ExtractFields(ctx, provider.ExtractRequest{
			JobToken: rec.JobToken,
			Fields:   tpl.Fields,
		})
		return eerr
	})
	if err != nil {
		return o.fail(ctx, extractionID, status, fmt.Errorf("extract: %w", err))
	}

	// Reject the whole payload before persisting anything from it.
	if len(raw) > 0 {
		schema := validation.BuildPayloadJSONSchema(tpl.Fields)
		if err := validation.ValidateJSONAgainstSchema(schema, raw); err != nil {
			return o.fail(ctx, extractionID, status, fmt.Errorf("extractor payload rejected: %w", err))
		}
	}

	rows := materialize(extractionID, tpl, values)
	results, err := o.engine.Validate(rows, tpl)
	if err != nil {
		return o.fail(ctx, extractionID, status, fmt.Errorf("validate: %w", err))
	}
	for _, row := range rows {
		res := results[row.Name]
		row.ValidationStatus = string(res.Status)
		row.ValidationErrors = res.Messages
		row.AuditPriority = int(audit.PriorityFor(row.Confidence, row.ValidationStatus, o.cfg.Thresholds))
	}
	if err := o.fields.ReplaceForExtraction(ctx, extractionID, rows); err != nil {
		return o.fail(ctx, extractionID, status, fmt.Errorf("persist fields: %w", err))
	}

	if err := Transition(status, constants.ExtractionCompleted); err != nil {
		return err
	}
	if err := o.extractions.MarkCompleted(ctx, extractionID, organizedPath(tpl, ext)); err != nil {
		return err
	}
	o.logger.Info("extraction processed",
		"extraction_id", extractionID,
		"template_id", tpl.ID,
		"fields", len(rows))
	return nil
}

// Reprocess starts a fresh extraction for the same file and template. The
// prior extraction and its fields are untouched; the cached parse is reused.
func (o *Orchestrator) Reprocess(ctx context.Context, extractionID uuid.UUID) (*entity.Extraction, error) {
	prev, err := o.extractions.GetByID(ctx, extractionID)
	if err != nil {
		return nil, err
	}
	return o.extractions.Create(ctx, prev.FileID, prev.TemplateID)
}

// Revalidate reruns validation for an extraction's current field rows and
// persists the refreshed status and audit priority per field. Used after a
// reviewer corrects a value or after a template's rules change.
func (o *Orchestrator) Revalidate(ctx context.Context, extractionID uuid.UUID) error {
	ext, err := o.extractions.GetByID(ctx, extractionID)
	if err != nil {
		return err
	}
	tpl, err := o.templates.GetByID(ctx, ext.TemplateID)
	if err != nil {
		return err
	}
	rows, err := o.fields.ListByExtraction(ctx, extractionID)
	if err != nil {
		return err
	}
	results, err := o.engine.Validate(rows, tpl)
	if err != nil {
		return err
	}
	for _, row := range rows {
		res := results[row.Name]
		priority := int(audit.PriorityFor(row.Confidence, string(res.Status), o.cfg.Thresholds))
		if err := o.fields.UpdateValidation(ctx, row.ID, string(res.Status), res.Messages, priority); err != nil {
			return err
		}
	}
	o.logger.Info("extraction revalidated", "extraction_id", extractionID, "fields", len(rows))
	return nil
}

func (o *Orchestrator) advance(ctx context.Context, id uuid.UUID, current *constants.ExtractionStatus, to constants.ExtractionStatus) error {
	if err := Transition(*current, to); err != nil {
		return err
	}
	if err := o.extractions.SetStatus(ctx, id, string(to)); err != nil {
		return err
	}
	*current = to
	return nil
}

func (o *Orchestrator) fail(ctx context.Context, id uuid.UUID, from constants.ExtractionStatus, cause error) error {
	if terr := Transition(from, constants.ExtractionError); terr != nil {
		o.logger.Error("refusing error transition", "extraction_id", id, "from", from, "err", terr)
		return cause
	}
	if err := o.extractions.MarkError(ctx, id, cause.Error()); err != nil {
		o.logger.Error("failed to record extraction error", "extraction_id", id, "err", err)
	}
	return cause
}

// withRetry runs fn up to MaxAttempts times, backing off exponentially.
// Only transient provider failures are retried; anything else returns
// immediately.
func (o *Orchestrator) withRetry(ctx context.Context, op string, fn func() error) error {
	var err error
	for attempt := 1; attempt <= o.cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = fn()
		if err == nil {
			return nil
		}
		if !common.Transient(err) || attempt == o.cfg.MaxAttempts {
			return err
		}
		delay := o.cfg.BackoffBase << (attempt - 1)
		o.logger.Warn("provider call failed, retrying",
			"op", op, "attempt", attempt, "max_attempts", o.cfg.MaxAttempts, "delay", delay, "error", err)
		o.sleep(delay)
	}
	return err
}

// materialize turns the extractor payload into field rows. Every returned
// field gets a row; required template fields the extractor skipped get an
// empty row (confidence zero) so validation surfaces them.
func materialize(extractionID uuid.UUID, tpl *entity.Template, values map[string]provider.ExtractedValue) []*entity.ExtractedField {
	rows := make([]*entity.ExtractedField, 0, len(tpl.Fields))
	seen := make(map[string]bool, len(values))
	for _, fd := range tpl.Fields {
		v, ok := values[fd.Name]
		if !ok {
			if fd.Required {
				rows = append(rows, &entity.ExtractedField{
					ExtractionID: extractionID,
					Name:         fd.Name,
					Confidence:   0,
				})
			}
			continue
		}
		seen[fd.Name] = true
		rows = append(rows, &entity.ExtractedField{
			ExtractionID: extractionID,
			Name:         fd.Name,
			Value:        v.Value,
			Confidence:   v.Confidence,
			SourcePage:   v.SourcePage,
			SourceBBox:   v.SourceBBox,
			SourceText:   v.SourceText,
		})
	}
	for name, v := range values {
		if seen[name] {
			continue
		}
		if _, ok := tpl.Field(name); ok {
			continue
		}
		// extractor returned a field outside the template; keep it visible
		rows = append(rows, &entity.ExtractedField{
			ExtractionID: extractionID,
			Name:         name,
			Value:        v.Value,
			Confidence:   v.Confidence,
			SourcePage:   v.SourcePage,
			SourceBBox:   v.SourceBBox,
			SourceText:   v.SourceText,
		})
	}
	return rows
}

// organizedPath places a completed extraction under category/year/id.
func organizedPath(tpl *entity.Template, ext *entity.Extraction) string {
	category, _ := constants.CanonicalizeCategory(tpl.Category)
	year := ext.StartedAt.Year()
	if year <= 1 {
		year = time.Now().Year()
	}
	return fmt.Sprintf("%s/%d/%s", strings.ToLower(string(category)), year, ext.ID)
}
