package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/gen/ent"
	entfield "github.com/oakfield-labs/docuflow/gen/ent/extractedfield"
	entextraction "github.com/oakfield-labs/docuflow/gen/ent/extraction"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
)

// AuditFilter narrows the unverified-field listing backing the audit queue.
type AuditFilter struct {
	TemplateID *uuid.UUID
}

type ExtractedFieldRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractedField, error)
	ListByExtraction(ctx context.Context, extractionID uuid.UUID) ([]*entity.ExtractedField, error)
	// ReplaceForExtraction drops any prior rows for the extraction and
	// inserts the given set, so reprocessed results land atomically.
	ReplaceForExtraction(ctx context.Context, extractionID uuid.UUID, fields []*entity.ExtractedField) error
	// ListUnverified returns every unverified field matching the filter;
	// the audit queue is derived from this at read time.
	ListUnverified(ctx context.Context, filter AuditFilter) ([]*entity.ExtractedField, error)
	UpdateValue(ctx context.Context, id uuid.UUID, value json.RawMessage, verified bool) (*entity.ExtractedField, error)
	UpdateValidation(ctx context.Context, id uuid.UUID, status string, messages []string, priority int) error
}

type extractedFieldRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractedFieldRepository(entc *ent.Client, log *slog.Logger) ExtractedFieldRepository {
	return &extractedFieldRepo{ent: entc, log: log}
}

func toExtractedField(row *ent.ExtractedField) *entity.ExtractedField {
	f := &entity.ExtractedField{
		ID:               row.ID,
		ExtractionID:     row.ExtractionID,
		Name:             row.Name,
		Value:            row.Value,
		Confidence:       row.Confidence,
		SourcePage:       row.SourcePage,
		SourceText:       row.SourceText,
		Verified:         row.Verified,
		ValidationStatus: row.ValidationStatus,
		ValidationErrors: row.ValidationErrors,
		AuditPriority:    row.AuditPriority,
	}
	if len(row.SourceBbox) > 0 {
		var bbox entity.BoundingBox
		if err := json.Unmarshal(row.SourceBbox, &bbox); err == nil {
			f.SourceBBox = &bbox
		}
	}
	return f
}

func (r *extractedFieldRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractedField, error) {
	row, err := r.ent.ExtractedField.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toExtractedField(row), nil
}

func (r *extractedFieldRepo) ListByExtraction(ctx context.Context, extractionID uuid.UUID) ([]*entity.ExtractedField, error) {
	rows, err := r.ent.ExtractedField.Query().
		Where(entfield.ExtractionID(extractionID)).
		Order(ent.Asc(entfield.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ExtractedField, 0, len(rows))
	for _, row := range rows {
		out = append(out, toExtractedField(row))
	}
	return out, nil
}

func (r *extractedFieldRepo) ReplaceForExtraction(ctx context.Context, extractionID uuid.UUID, fields []*entity.ExtractedField) error {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return err
	}
	if _, err := tx.ExtractedField.Delete().Where(entfield.ExtractionID(extractionID)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, f := range fields {
		create := tx.ExtractedField.Create().
			SetExtractionID(extractionID).
			SetName(f.Name).
			SetConfidence(f.Confidence).
			SetSourceText(f.SourceText).
			SetValidationStatus(f.ValidationStatus).
			SetValidationErrors(f.ValidationErrors).
			SetAuditPriority(f.AuditPriority)
		if len(f.Value) > 0 {
			create = create.SetValue(f.Value)
		}
		if f.SourcePage != nil {
			create = create.SetSourcePage(*f.SourcePage)
		}
		if f.SourceBBox != nil {
			if raw, err := json.Marshal(f.SourceBBox); err == nil {
				create = create.SetSourceBbox(raw)
			}
		}
		if _, err := create.Save(ctx); err != nil {
			_ = tx.Rollback()
			r.log.Error("extracted field insert failed", "extraction_id", extractionID, "name", f.Name, "err", err)
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	r.log.Info("extracted fields persisted", "extraction_id", extractionID, "count", len(fields))
	return nil
}

func (r *extractedFieldRepo) ListUnverified(ctx context.Context, filter AuditFilter) ([]*entity.ExtractedField, error) {
	q := r.ent.ExtractedField.Query().
		Where(entfield.Verified(false))
	if filter.TemplateID != nil {
		q = q.Where(entfield.HasExtractionWith(entextraction.TemplateID(*filter.TemplateID)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ExtractedField, 0, len(rows))
	for _, row := range rows {
		out = append(out, toExtractedField(row))
	}
	return out, nil
}

func (r *extractedFieldRepo) UpdateValue(ctx context.Context, id uuid.UUID, value json.RawMessage, verified bool) (*entity.ExtractedField, error) {
	upd := r.ent.ExtractedField.UpdateOneID(id).SetVerified(verified)
	if len(value) > 0 {
		upd = upd.SetValue(value)
	}
	row, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("extracted field value update failed", "field_id", id, "err", err)
		return nil, err
	}
	return toExtractedField(row), nil
}

func (r *extractedFieldRepo) UpdateValidation(ctx context.Context, id uuid.UUID, status string, messages []string, priority int) error {
	_, err := r.ent.ExtractedField.UpdateOneID(id).
		SetValidationStatus(status).
		SetValidationErrors(messages).
		SetAuditPriority(priority).
		Save(ctx)
	if err != nil {
		r.log.Error("extracted field validation update failed", "field_id", id, "err", err)
	}
	return err
}
