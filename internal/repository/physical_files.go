package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/gen/ent"
	entparse "github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	entfile "github.com/oakfield-labs/docuflow/gen/ent/physicalfile"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
)

type PhysicalFileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PhysicalFile, error)
	GetByHash(ctx context.Context, hash []byte) (*entity.PhysicalFile, error)
	// CreateOrRef inserts a new record for the hash, or increments the
	// reference count of the existing one. The bool result reports whether
	// the content was already stored.
	CreateOrRef(ctx context.Context, hash []byte, size int, storagePath string) (*entity.PhysicalFile, bool, error)
	// Release decrements the reference count. When it reaches zero the
	// record is deleted and the storage path is returned for cleanup.
	Release(ctx context.Context, id uuid.UUID) (deleted bool, storagePath string, err error)
	SetDiscovery(ctx context.Context, id uuid.UUID, status string, matchedTemplateID *uuid.UUID) error
}

type physicalFileRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPhysicalFileRepository(entc *ent.Client, logger *slog.Logger) PhysicalFileRepository {
	return &physicalFileRepo{ent: entc, logger: logger}
}

func toPhysicalFile(row *ent.PhysicalFile) *entity.PhysicalFile {
	return &entity.PhysicalFile{
		ID:                row.ID,
		ContentHash:       row.ContentHash,
		FileSize:          row.FileSize,
		StoragePath:       row.StoragePath,
		RefCount:          row.RefCount,
		DiscoveryStatus:   row.DiscoveryStatus,
		MatchedTemplateID: row.MatchedTemplateID,
		UploadedAt:        row.UploadedAt,
	}
}

func (r *physicalFileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.PhysicalFile, error) {
	row, err := r.ent.PhysicalFile.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toPhysicalFile(row), nil
}

func (r *physicalFileRepo) GetByHash(ctx context.Context, hash []byte) (*entity.PhysicalFile, error) {
	row, err := r.ent.PhysicalFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toPhysicalFile(row), nil
}

func (r *physicalFileRepo) CreateOrRef(ctx context.Context, hash []byte, size int, storagePath string) (*entity.PhysicalFile, bool, error) {
	row, err := r.ent.PhysicalFile.Create().
		SetContentHash(hash).
		SetFileSize(size).
		SetStoragePath(storagePath).
		Save(ctx)
	if err == nil {
		r.logger.Info("physical file created", "file_id", row.ID, "size", size)
		return toPhysicalFile(row), false, nil
	}
	if !ent.IsConstraintError(err) {
		r.logger.Error("failed to create physical file", "error", err)
		return nil, false, err
	}

	// Concurrent upload of identical content: the unique hash constraint
	// fired, so resolve to the existing row and bump its refcount.
	existing, err := r.ent.PhysicalFile.Query().
		Where(entfile.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to resolve duplicate hash", "error", err)
		return nil, false, err
	}
	updated, err := r.ent.PhysicalFile.UpdateOneID(existing.ID).
		AddRefCount(1).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to increment ref count", "file_id", existing.ID, "error", err)
		return nil, false, err
	}
	r.logger.Info("duplicate content deduplicated", "file_id", updated.ID, "ref_count", updated.RefCount)
	return toPhysicalFile(updated), true, nil
}

func (r *physicalFileRepo) Release(ctx context.Context, id uuid.UUID) (bool, string, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return false, "", err
	}
	row, err := tx.PhysicalFile.Get(ctx, id)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsNotFound(err) {
			return false, "", common.ErrNotFound
		}
		return false, "", err
	}

	live, err := tx.PhysicalFile.QueryExtractions(row).Count(ctx)
	if err != nil {
		_ = tx.Rollback()
		return false, "", err
	}
	if row.RefCount <= 1 && live > 0 {
		_ = tx.Rollback()
		return false, "", common.ErrReferentialIntegrity
	}

	if row.RefCount > 1 {
		if _, err := tx.PhysicalFile.UpdateOneID(id).AddRefCount(-1).Save(ctx); err != nil {
			_ = tx.Rollback()
			return false, "", err
		}
		if err := tx.Commit(); err != nil {
			return false, "", err
		}
		r.logger.Info("physical file released", "file_id", id, "ref_count", row.RefCount-1)
		return false, "", nil
	}

	// Last reference: drop the cached parse record, then the file itself.
	if _, err := tx.ParseRecord.Delete().Where(entparse.FileID(id)).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return false, "", err
	}
	if err := tx.PhysicalFile.DeleteOneID(id).Exec(ctx); err != nil {
		_ = tx.Rollback()
		return false, "", err
	}
	if err := tx.Commit(); err != nil {
		return false, "", err
	}
	r.logger.Info("physical file destroyed", "file_id", id, "storage_path", row.StoragePath)
	return true, row.StoragePath, nil
}

func (r *physicalFileRepo) SetDiscovery(ctx context.Context, id uuid.UUID, status string, matchedTemplateID *uuid.UUID) error {
	upd := r.ent.PhysicalFile.UpdateOneID(id).SetDiscoveryStatus(status)
	if matchedTemplateID != nil {
		upd = upd.SetMatchedTemplateID(*matchedTemplateID)
	} else {
		upd = upd.ClearMatchedTemplateID()
	}
	if _, err := upd.Save(ctx); err != nil {
		r.logger.Error("failed to update discovery status", "file_id", id, "status", status, "error", err)
		return err
	}
	return nil
}
