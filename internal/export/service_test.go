package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/audit"
	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/repository"
)

type stubFields struct {
	repository.ExtractedFieldRepository
	rows []*entity.ExtractedField
}

func (s *stubFields) ListUnverified(_ context.Context, _ repository.AuditFilter) ([]*entity.ExtractedField, error) {
	return s.rows, nil
}

func (s *stubFields) ListByExtraction(_ context.Context, extractionID uuid.UUID) ([]*entity.ExtractedField, error) {
	var out []*entity.ExtractedField
	for _, f := range s.rows {
		if f.ExtractionID == extractionID {
			out = append(out, f)
		}
	}
	return out, nil
}

func TestExportAuditQueueXLSX(t *testing.T) {
	rows := []*entity.ExtractedField{
		{
			ID:               uuid.New(),
			ExtractionID:     uuid.New(),
			Name:             "total_amount",
			Value:            json.RawMessage(`"1200.50"`),
			Confidence:       0.2,
			ValidationStatus: string(constants.ValidationError),
			ValidationErrors: []string{"must be at most 1000"},
		},
		{
			ID:               uuid.New(),
			ExtractionID:     uuid.New(),
			Name:             "vendor",
			Value:            json.RawMessage(`"Acme"`),
			Confidence:       0.7,
			ValidationStatus: string(constants.ValidationValid),
		},
	}
	fields := &stubFields{rows: rows}
	queue := audit.NewQueue(fields, audit.DefaultThresholds(), nil)
	svc := NewService(queue, fields, nil)

	out, err := svc.ExportAuditQueueXLSX(context.Background(), audit.Request{MinPriority: audit.Low})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows("Audit Queue")
	require.NoError(t, err)
	require.Len(t, cells, 3, "header plus two entries")

	assert.Equal(t, "Priority", cells[0][0])
	// CRITICAL entry first: low confidence with an error
	assert.Equal(t, "CRITICAL", cells[1][0])
	assert.Equal(t, "total_amount", cells[1][1])
	assert.Equal(t, "MEDIUM", cells[2][0])
	assert.Equal(t, "vendor", cells[2][1])
}

func TestExportExtractionXLSX(t *testing.T) {
	extractionID := uuid.New()
	fields := &stubFields{rows: []*entity.ExtractedField{
		{
			ID:               uuid.New(),
			ExtractionID:     extractionID,
			Name:             "invoice_number",
			Value:            json.RawMessage(`"INV-7"`),
			Confidence:       0.95,
			Verified:         true,
			ValidationStatus: string(constants.ValidationValid),
		},
		{
			ID:           uuid.New(),
			ExtractionID: uuid.New(), // different extraction, must not appear
			Name:         "other",
		},
	}}
	svc := NewService(audit.NewQueue(fields, audit.DefaultThresholds(), nil), fields, nil)

	out, err := svc.ExportExtractionXLSX(context.Background(), extractionID)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	cells, err := f.GetRows("Fields")
	require.NoError(t, err)
	require.Len(t, cells, 2, "header plus the extraction's one field")
	assert.Equal(t, "Field", cells[0][0])
	assert.Equal(t, "invoice_number", cells[1][0])
	assert.Equal(t, "INV-7", cells[1][1])
}
