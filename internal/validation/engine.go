package validation

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/entity"
)

// NotExtractedMessage marks a field the extractor did not produce (or
// produced with no confidence). Zero/absent confidence is treated as "not
// extracted" rather than a genuine zero-confidence extraction.
const NotExtractedMessage = "not extracted"

// Result is the per-field validation outcome persisted onto the field.
type Result struct {
	Status   constants.ValidationStatus
	Messages []string
}

// Engine validates extracted fields against a template's schema-derived
// checks plus its category business rules, and applies confidence-adjusted
// severity. Check models are cached per template and invalidated by the
// template version counter.
type Engine struct {
	highConfidence float32
	logger         *slog.Logger

	mu     sync.Mutex
	models map[uuid.UUID]*model
}

type model struct {
	version  int
	checkers map[string]*fieldChecker
	rules    []businessRule
}

func NewEngine(highConfidence float32, logger *slog.Logger) *Engine {
	if highConfidence <= 0 {
		highConfidence = 0.8
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		highConfidence: highConfidence,
		logger:         logger,
		models:         make(map[uuid.UUID]*model),
	}
}

func (e *Engine) modelFor(tpl *entity.Template) (*model, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if m, ok := e.models[tpl.ID]; ok && m.version == tpl.Version {
		return m, nil
	}

	checkers := make(map[string]*fieldChecker, len(tpl.Fields))
	for _, fd := range tpl.Fields {
		fc, err := compileField(fd)
		if err != nil {
			return nil, err
		}
		checkers[fd.Name] = fc
	}
	category, _ := constants.CanonicalizeCategory(tpl.Category)
	m := &model{
		version:  tpl.Version,
		checkers: checkers,
		rules:    businessRulesFor(category),
	}
	e.models[tpl.ID] = m
	e.logger.Debug("validation model compiled", "template_id", tpl.ID, "version", tpl.Version, "fields", len(checkers))
	return m, nil
}

// Invalidate drops the cached model for a template.
func (e *Engine) Invalidate(templateID uuid.UUID) {
	e.mu.Lock()
	delete(e.models, templateID)
	e.mu.Unlock()
}

// Validate checks every extracted field and returns a result per field
// name. Validation findings are data, never errors: the only error return
// is a template whose rule table cannot compile.
func (e *Engine) Validate(fields []*entity.ExtractedField, tpl *entity.Template) (map[string]Result, error) {
	m, err := e.modelFor(tpl)
	if err != nil {
		return nil, err
	}

	issues := make(map[string][]Issue, len(fields))
	values := make(map[string]json.RawMessage, len(fields))
	confidences := make(map[string]float32, len(fields))

	for _, f := range fields {
		confidences[f.Name] = f.Confidence
		issues[f.Name] = nil

		if f.Confidence <= 0 || len(f.Value) == 0 || isEmptyValue(f.Value) {
			issues[f.Name] = append(issues[f.Name], *errorf(NotExtractedMessage))
			continue
		}
		values[f.Name] = f.Value

		checker, ok := m.checkers[f.Name]
		if !ok {
			continue // field not in template; nothing to check
		}
		issues[f.Name] = append(issues[f.Name], checker.Check(f.Value)...)
	}

	for _, rule := range m.rules {
		for _, fi := range rule(values) {
			issues[fi.Field] = append(issues[fi.Field], fi.Issue)
		}
	}

	results := make(map[string]Result, len(issues))
	for name, found := range issues {
		results[name] = e.resolve(found, confidences[name])
	}
	return results, nil
}

// resolve folds issues into a single status, downgrading errors to
// warnings when extraction confidence is high enough to suspect the rule
// rather than the data. Warnings are never upgraded.
func (e *Engine) resolve(found []Issue, confidence float32) Result {
	if len(found) == 0 {
		return Result{Status: constants.ValidationValid}
	}
	downgrade := confidence >= e.highConfidence

	status := constants.ValidationValid
	messages := make([]string, 0, len(found))
	for _, issue := range found {
		severity := issue.Severity
		if severity == constants.ValidationError && downgrade {
			severity = constants.ValidationWarning
		}
		messages = append(messages, issue.Message)
		if severity == constants.ValidationError {
			status = constants.ValidationError
		} else if severity == constants.ValidationWarning && status != constants.ValidationError {
			status = constants.ValidationWarning
		}
	}
	return Result{Status: status, Messages: messages}
}
