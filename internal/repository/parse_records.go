package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/gen/ent"
	entparse "github.com/oakfield-labs/docuflow/gen/ent/parserecord"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
)

type ParseRecordRepository interface {
	GetByFileID(ctx context.Context, fileID uuid.UUID) (*entity.ParseRecord, error)
	// Upsert overwrites any prior record for the file; a file owns at most
	// one parse record at a time.
	Upsert(ctx context.Context, fileID uuid.UUID, jobToken string, blocks []entity.ParseBlock) (*entity.ParseRecord, error)
}

type parseRecordRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewParseRecordRepository(entc *ent.Client, log *slog.Logger) ParseRecordRepository {
	return &parseRecordRepo{ent: entc, log: log}
}

func toParseRecord(row *ent.ParseRecord) (*entity.ParseRecord, error) {
	var blocks []entity.ParseBlock
	if len(row.Blocks) > 0 {
		if err := json.Unmarshal(row.Blocks, &blocks); err != nil {
			return nil, err
		}
	}
	return &entity.ParseRecord{
		ID:        row.ID,
		FileID:    row.FileID,
		JobToken:  row.JobToken,
		Blocks:    blocks,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (r *parseRecordRepo) GetByFileID(ctx context.Context, fileID uuid.UUID) (*entity.ParseRecord, error) {
	row, err := r.ent.ParseRecord.Query().
		Where(entparse.FileID(fileID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toParseRecord(row)
}

func (r *parseRecordRepo) Upsert(ctx context.Context, fileID uuid.UUID, jobToken string, blocks []entity.ParseBlock) (*entity.ParseRecord, error) {
	raw, err := json.Marshal(blocks)
	if err != nil {
		return nil, err
	}

	if existing, err := r.ent.ParseRecord.Query().Where(entparse.FileID(fileID)).Only(ctx); err == nil {
		row, err := r.ent.ParseRecord.UpdateOneID(existing.ID).
			SetJobToken(jobToken).
			SetBlocks(raw).
			Save(ctx)
		if err != nil {
			r.log.Error("parse record overwrite failed", "file_id", fileID, "err", err)
			return nil, err
		}
		r.log.Info("parse record overwritten", "file_id", fileID, "blocks", len(blocks))
		return toParseRecord(row)
	}

	row, err := r.ent.ParseRecord.Create().
		SetFileID(fileID).
		SetJobToken(jobToken).
		SetBlocks(raw).
		Save(ctx)
	if err != nil {
		r.log.Error("parse record create failed", "file_id", fileID, "err", err)
		return nil, err
	}
	r.log.Info("parse record created", "file_id", fileID, "blocks", len(blocks))
	return toParseRecord(row)
}
