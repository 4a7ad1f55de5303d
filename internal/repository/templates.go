package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/gen/ent"
	enttpl "github.com/oakfield-labs/docuflow/gen/ent/template"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
)

type TemplateRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Template, error)
	List(ctx context.Context) ([]*entity.Template, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, name, category string, fields []entity.FieldDefinition) (*entity.Template, error)
	// UpdateFields replaces the field definitions and bumps the version
	// counter so cached validation models invalidate.
	UpdateFields(ctx context.Context, id uuid.UUID, fields []entity.FieldDefinition) (*entity.Template, error)
}

type templateRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTemplateRepository(entc *ent.Client, log *slog.Logger) TemplateRepository {
	return &templateRepo{ent: entc, log: log}
}

func toTemplate(row *ent.Template) (*entity.Template, error) {
	var fields []entity.FieldDefinition
	if len(row.Fields) > 0 {
		if err := json.Unmarshal(row.Fields, &fields); err != nil {
			return nil, err
		}
	}
	return &entity.Template{
		ID:        row.ID,
		Name:      row.Name,
		Category:  row.Category,
		Version:   row.Version,
		Fields:    fields,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *templateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Template, error) {
	row, err := r.ent.Template.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toTemplate(row)
}

func (r *templateRepo) List(ctx context.Context) ([]*entity.Template, error) {
	rows, err := r.ent.Template.Query().
		Order(ent.Asc(enttpl.FieldName)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Template, 0, len(rows))
	for _, row := range rows {
		t, err := toTemplate(row)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *templateRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Template.Query().Where(enttpl.ID(id)).Exist(ctx)
}

func (r *templateRepo) Create(ctx context.Context, name, category string, fields []entity.FieldDefinition) (*entity.Template, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	row, err := r.ent.Template.Create().
		SetName(name).
		SetCategory(category).
		SetFields(raw).
		Save(ctx)
	if err != nil {
		r.log.Error("template create failed", "name", name, "err", err)
		return nil, err
	}
	r.log.Info("template created", "template_id", row.ID, "name", name, "fields", len(fields))
	return toTemplate(row)
}

func (r *templateRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields []entity.FieldDefinition) (*entity.Template, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	row, err := r.ent.Template.UpdateOneID(id).
		SetFields(raw).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("template update failed", "template_id", id, "err", err)
		return nil, err
	}
	r.log.Info("template fields updated", "template_id", id, "version", row.Version)
	return toTemplate(row)
}
