package audit

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/repository"
)

// Priority ranks fields for human review; lower is more urgent.
type Priority int

const (
	Critical Priority = 0
	High     Priority = 1
	Medium   Priority = 2
	Low      Priority = 3
)

func (p Priority) String() string {
	switch p {
	case Critical:
		return "CRITICAL"
	case High:
		return "HIGH"
	case Medium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// Thresholds are the confidence cut points for priority derivation.
type Thresholds struct {
	Medium float32 // below: low confidence
	High   float32 // below (and >= Medium): mid confidence
}

func DefaultThresholds() Thresholds {
	return Thresholds{Medium: 0.6, High: 0.8}
}

// PriorityFor derives the audit priority of one field from its confidence
// and validation status.
func PriorityFor(confidence float32, status string, th Thresholds) Priority {
	lowConf := confidence < th.Medium
	hasError := status == string(constants.ValidationError)
	if lowConf && hasError {
		return Critical
	}
	if lowConf || hasError {
		return High
	}
	midConf := confidence >= th.Medium && confidence < th.High
	hasWarn := status == string(constants.ValidationWarning)
	if midConf || hasWarn {
		return Medium
	}
	return Low
}

// Request filters and paginates the review queue. MinPriority is the
// least-urgent tier included (0 admits only CRITICAL, 3 admits everything).
type Request struct {
	TemplateID  *uuid.UUID
	MinPriority Priority
	Offset      int
	Limit       int
}

// Entry is one queue position.
type Entry struct {
	Field    *entity.ExtractedField
	Priority Priority
}

// Queue derives the prioritized review queue. It is a pure view over the
// current field rows, recomputed on every call so verification and
// revalidation are reflected immediately; nothing here may be cached.
type Queue struct {
	fields     repository.ExtractedFieldRepository
	thresholds Thresholds
	logger     *slog.Logger
}

func NewQueue(fields repository.ExtractedFieldRepository, th Thresholds, logger *slog.Logger) *Queue {
	if th.Medium <= 0 || th.High <= th.Medium {
		th = DefaultThresholds()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue{fields: fields, thresholds: th, logger: logger}
}

// Page returns one page of the queue plus the total number of matching
// entries across all pages.
func (q *Queue) Page(ctx context.Context, req Request) ([]Entry, int, error) {
	rows, err := q.fields.ListUnverified(ctx, repository.AuditFilter{TemplateID: req.TemplateID})
	if err != nil {
		return nil, 0, err
	}
	entries := Build(rows, q.thresholds, req.MinPriority)
	total := len(entries)

	if req.Limit <= 0 {
		req.Limit = 50
	}
	if req.Offset < 0 {
		req.Offset = 0
	}
	if req.Offset >= total {
		return []Entry{}, total, nil
	}
	end := req.Offset + req.Limit
	if end > total {
		end = total
	}
	return entries[req.Offset:end], total, nil
}

// Build derives and orders queue entries from field rows. Verified fields
// are excluded regardless of priority. Ordering: priority tier, then
// ascending confidence (least certain first), then field name for
// determinism.
func Build(rows []*entity.ExtractedField, th Thresholds, minPriority Priority) []Entry {
	entries := make([]Entry, 0, len(rows))
	for _, f := range rows {
		if f.Verified {
			continue
		}
		p := PriorityFor(f.Confidence, f.ValidationStatus, th)
		if p > minPriority {
			continue
		}
		entries = append(entries, Entry{Field: f, Priority: p})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority < entries[j].Priority
		}
		if entries[i].Field.Confidence != entries[j].Field.Confidence {
			return entries[i].Field.Confidence < entries[j].Field.Confidence
		}
		return entries[i].Field.Name < entries[j].Field.Name
	})
	return entries
}
