package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/gen/ent"
	entfield "github.com/oakfield-labs/docuflow/gen/ent/extractedfield"
	entextraction "github.com/oakfield-labs/docuflow/gen/ent/extraction"
	entparse "github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
)

type ExtractionRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Extraction, error)
	ListByFile(ctx context.Context, fileID uuid.UUID) ([]*entity.Extraction, error)
	// Create registers a new extraction and increments the owning file's
	// reference count in the same transaction.
	Create(ctx context.Context, fileID, templateID uuid.UUID) (*entity.Extraction, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
	MarkCompleted(ctx context.Context, id uuid.UUID, organizedPath string) error
	MarkError(ctx context.Context, id uuid.UUID, message string) error
	MarkCancelled(ctx context.Context, id uuid.UUID) error
	// Delete removes the extraction with its fields, decrements the file's
	// reference count, and destroys the file at zero. The returned storage
	// path (non-empty only when the file was destroyed) is for byte cleanup.
	Delete(ctx context.Context, id uuid.UUID) (fileDeleted bool, storagePath string, err error)
}

type extractionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractionRepository(entc *ent.Client, log *slog.Logger) ExtractionRepository {
	return &extractionRepo{ent: entc, log: log}
}

func toExtraction(row *ent.Extraction) *entity.Extraction {
	return &entity.Extraction{
		ID:            row.ID,
		FileID:        row.FileID,
		TemplateID:    row.TemplateID,
		Status:        row.Status,
		ErrorMessage:  row.ErrorMessage,
		OrganizedPath: row.OrganizedPath,
		StartedAt:     row.StartedAt,
		FinishedAt:    row.FinishedAt,
	}
}

func (r *extractionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Extraction, error) {
	row, err := r.ent.Extraction.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toExtraction(row), nil
}

func (r *extractionRepo) ListByFile(ctx context.Context, fileID uuid.UUID) ([]*entity.Extraction, error) {
	rows, err := r.ent.Extraction.Query().
		Where(entextraction.FileID(fileID)).
		Order(ent.Desc(entextraction.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Extraction, 0, len(rows))
	for _, row := range rows {
		out = append(out, toExtraction(row))
	}
	return out, nil
}

func (r *extractionRepo) Create(ctx context.Context, fileID, templateID uuid.UUID) (*entity.Extraction, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	row, err := tx.Extraction.Create().
		SetFileID(fileID).
		SetTemplateID(templateID).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.log.Error("extraction create failed", "file_id", fileID, "template_id", templateID, "err", err)
		return nil, err
	}
	// Refcount moves with extraction lifecycle so the file cannot be
	// garbage-collected out from under a live extraction.
	if _, err := tx.PhysicalFile.UpdateOneID(fileID).AddRefCount(1).Save(ctx); err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.log.Info("extraction created", "extraction_id", row.ID, "file_id", fileID, "template_id", templateID)
	return toExtraction(row), nil
}

func (r *extractionRepo) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.ent.Extraction.UpdateOneID(id).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction status update failed", "extraction_id", id, "status", status, "err", err)
	}
	return err
}

func (r *extractionRepo) MarkCompleted(ctx context.Context, id uuid.UUID, organizedPath string) error {
	_, err := r.ent.Extraction.UpdateOneID(id).
		SetStatus(string(constants.ExtractionCompleted)).
		SetOrganizedPath(organizedPath).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction complete update failed", "extraction_id", id, "err", err)
		return err
	}
	r.log.Info("extraction completed", "extraction_id", id, "organized_path", organizedPath)
	return nil
}

func (r *extractionRepo) MarkError(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.ent.Extraction.UpdateOneID(id).
		SetStatus(string(constants.ExtractionError)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction error update failed", "extraction_id", id, "err", err)
		return err
	}
	r.log.Warn("extraction failed", "extraction_id", id, "error", message)
	return nil
}

func (r *extractionRepo) MarkCancelled(ctx context.Context, id uuid.UUID) error {
	_, err := r.ent.Extraction.UpdateOneID(id).
		SetStatus(string(constants.ExtractionCancelled)).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction cancel update failed", "extraction_id", id, "err", err)
	}
	return err
}

func (r *extractionRepo) Delete(ctx context.Context, id uuid.UUID) (bool, string, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return false, "", err
	}
	row, err := tx.Extraction.Get(ctx, id)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return false, "", common.ErrNotFound
		}
		return false, "", err
	}

	if _, err := tx.ExtractedField.Delete().Where(entfield.ExtractionID(id)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return false, "", err
	}
	if err := tx.Extraction.DeleteOneID(id).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return false, "", err
	}

	file, err := tx.PhysicalFile.Get(ctx, row.FileID)
	if err != nil {
		_ = tx.Rollback()
		return false, "", err
	}
	if file.RefCount > 1 {
		if _, err := tx.PhysicalFile.UpdateOneID(file.ID).AddRefCount(-1).Save(ctx); err != nil {
			_ = tx.Rollback()
			return false, "", err
		}
		if err := tx.Commit(); err != nil {
			return false, "", err
		}
		r.log.Info("extraction deleted", "extraction_id", id, "file_id", file.ID, "ref_count", file.RefCount-1)
		return false, "", nil
	}

	// Last reference gone: destroy the physical file and its parse cache.
	if _, err := tx.ParseRecord.Delete().Where(entparse.FileID(file.ID)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return false, "", err
	}
	if err := tx.PhysicalFile.DeleteOneID(file.ID).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return false, "", err
	}
	if err := tx.Commit(); err != nil {
		return false, "", err
	}
	r.log.Info("extraction deleted and file destroyed", "extraction_id", id, "file_id", file.ID)
	return true, file.StoragePath, nil
}
