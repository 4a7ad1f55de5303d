package provider

import (
	"context"
	"encoding/json"

	"github.com/oakfield-labs/docuflow/internal/entity"
)

// ParseResult is Stage 1 output: document bytes -> structured blocks.
// The job token can be replayed to the field extractor so bytes are not
// resubmitted when the provider supports job-based pipelining.
type ParseResult struct {
	JobToken string
	Blocks   []entity.ParseBlock
}

// DocumentParser is the upstream parse service. Invoked at most once per
// physical file; results are cached and reused across templates.
type DocumentParser interface {
	Parse(ctx context.Context, fileBytes []byte) (ParseResult, error)
}

// ExtractedValue is one field as returned by the field extractor.
type ExtractedValue struct {
	Value      json.RawMessage
	Confidence float32
	SourcePage *int
	SourceBBox *entity.BoundingBox
	SourceText string
}

// ExtractRequest carries either a parse job token or raw bytes, plus the
// field definitions the extractor should fill.
type ExtractRequest struct {
	JobToken  string
	FileBytes []byte
	Fields    []entity.FieldDefinition
}

// FieldExtractor is Stage 2: parse result -> named field values.
// The raw JSON payload is returned alongside for schema validation and
// failure diagnostics.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, req ExtractRequest) (map[string]ExtractedValue, []byte, error)
}
