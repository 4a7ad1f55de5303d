package audit

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/repository"
)

func TestPriorityFor(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name       string
		confidence float32
		status     string
		want       Priority
	}{
		{"low confidence and error", 0.3, string(constants.ValidationError), Critical},
		{"low confidence only", 0.3, string(constants.ValidationValid), High},
		{"error only", 0.95, string(constants.ValidationError), High},
		{"mid confidence", 0.7, string(constants.ValidationValid), Medium},
		{"warning only", 0.95, string(constants.ValidationWarning), Medium},
		{"high confidence valid", 0.95, string(constants.ValidationValid), Low},
		{"boundary at medium threshold", 0.6, string(constants.ValidationValid), Medium},
		{"boundary at high threshold", 0.8, string(constants.ValidationValid), Low},
		{"low confidence with warning", 0.5, string(constants.ValidationWarning), High},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityFor(tt.confidence, tt.status, th))
		})
	}
}

func TestPriorityString(t *testing.T) {
	assert.Equal(t, "CRITICAL", Critical.String())
	assert.Equal(t, "HIGH", High.String())
	assert.Equal(t, "MEDIUM", Medium.String())
	assert.Equal(t, "LOW", Low.String())
}

func field(name string, confidence float32, status string, verified bool) *entity.ExtractedField {
	return &entity.ExtractedField{
		ID:               uuid.New(),
		ExtractionID:     uuid.New(),
		Name:             name,
		Value:            json.RawMessage(`"x"`),
		Confidence:       confidence,
		Verified:         verified,
		ValidationStatus: status,
	}
}

func TestBuild(t *testing.T) {
	th := DefaultThresholds()

	t.Run("excludes verified fields", func(t *testing.T) {
		rows := []*entity.ExtractedField{
			field("a", 0.1, string(constants.ValidationError), true),
			field("b", 0.1, string(constants.ValidationError), false),
		}
		entries := Build(rows, th, Low)
		require.Len(t, entries, 1)
		assert.Equal(t, "b", entries[0].Field.Name)
	})

	t.Run("filters by min priority", func(t *testing.T) {
		rows := []*entity.ExtractedField{
			field("critical", 0.1, string(constants.ValidationError), false),
			field("high", 0.1, string(constants.ValidationValid), false),
			field("medium", 0.7, string(constants.ValidationValid), false),
			field("low", 0.95, string(constants.ValidationValid), false),
		}
		entries := Build(rows, th, High)
		require.Len(t, entries, 2)
		assert.Equal(t, "critical", entries[0].Field.Name)
		assert.Equal(t, "high", entries[1].Field.Name)
	})

	t.Run("orders by tier then ascending confidence then name", func(t *testing.T) {
		rows := []*entity.ExtractedField{
			field("zeta", 0.95, string(constants.ValidationValid), false),
			field("tied_b", 0.3, string(constants.ValidationValid), false),
			field("tied_a", 0.3, string(constants.ValidationValid), false),
			field("least_certain", 0.1, string(constants.ValidationValid), false),
			field("urgent", 0.2, string(constants.ValidationError), false),
		}
		entries := Build(rows, th, Low)
		require.Len(t, entries, 5)

		assert.Equal(t, "urgent", entries[0].Field.Name) // only CRITICAL
		assert.Equal(t, "least_certain", entries[1].Field.Name)
		assert.Equal(t, "tied_a", entries[2].Field.Name)
		assert.Equal(t, "tied_b", entries[3].Field.Name)
		assert.Equal(t, "zeta", entries[4].Field.Name)

		for i := 1; i < len(entries); i++ {
			assert.LessOrEqual(t, entries[i-1].Priority, entries[i].Priority)
		}
	})
}

type stubFieldRepo struct {
	repository.ExtractedFieldRepository
	rows []*entity.ExtractedField
	seen *repository.AuditFilter
}

func (s *stubFieldRepo) ListUnverified(_ context.Context, filter repository.AuditFilter) ([]*entity.ExtractedField, error) {
	s.seen = &filter
	return s.rows, nil
}

func TestQueuePage(t *testing.T) {
	rows := make([]*entity.ExtractedField, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, field(string(rune('a'+i)), 0.1, string(constants.ValidationValid), false))
	}
	repo := &stubFieldRepo{rows: rows}
	q := NewQueue(repo, DefaultThresholds(), nil)

	t.Run("paginates with total", func(t *testing.T) {
		entries, total, err := q.Page(context.Background(), Request{MinPriority: Low, Offset: 4, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, 10, total)
		require.Len(t, entries, 3)
		assert.Equal(t, "e", entries[0].Field.Name)
	})

	t.Run("offset past end yields empty page", func(t *testing.T) {
		entries, total, err := q.Page(context.Background(), Request{MinPriority: Low, Offset: 50, Limit: 3})
		require.NoError(t, err)
		assert.Equal(t, 10, total)
		assert.Empty(t, entries)
	})

	t.Run("passes template filter through", func(t *testing.T) {
		tid := uuid.New()
		_, _, err := q.Page(context.Background(), Request{TemplateID: &tid, MinPriority: Low})
		require.NoError(t, err)
		require.NotNil(t, repo.seen.TemplateID)
		assert.Equal(t, tid, *repo.seen.TemplateID)
	})
}
