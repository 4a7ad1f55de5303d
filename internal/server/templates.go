package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/oakfield-labs/docuflow/gen/proto/docuflow/v1"
	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/repository"
	"github.com/oakfield-labs/docuflow/internal/validation"
)

type TemplateService struct {
	v1.UnimplementedTemplateServiceServer
	templates repository.TemplateRepository
	engine    *validation.Engine
	logger    *slog.Logger
}

func NewTemplateService(templates repository.TemplateRepository, engine *validation.Engine, logger *slog.Logger) *TemplateService {
	return &TemplateService{templates: templates, engine: engine, logger: logger}
}

// CreateTemplate implements v1.TemplateServiceServer
func (s *TemplateService) CreateTemplate(ctx context.Context, req *v1.CreateTemplateRequest) (*v1.TemplateResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	category, ok := constants.CanonicalizeCategory(req.GetCategory())
	if !ok && strings.TrimSpace(req.GetCategory()) != "" {
		s.logger.Warn("unknown template category, using generic", "category", req.GetCategory())
	}
	fields, err := fieldDefsFromProto(req.GetFields())
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one field is required")
	}

	tpl, err := s.templates.Create(ctx, name, string(category), fields)
	if err != nil {
		s.logger.Error("template create failed", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create template: %v", err)
	}
	return &v1.TemplateResponse{Template: templateProto(tpl)}, nil
}

func (s *TemplateService) GetTemplate(ctx context.Context, req *v1.GetTemplateRequest) (*v1.TemplateResponse, error) {
	templateID, err := parseUUID(req.GetTemplateId(), "template_id")
	if err != nil {
		return nil, err
	}
	tpl, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		return nil, status.Errorf(codes.Internal, "get template: %v", err)
	}
	return &v1.TemplateResponse{Template: templateProto(tpl)}, nil
}

func (s *TemplateService) ListTemplates(ctx context.Context, _ *v1.ListTemplatesRequest) (*v1.ListTemplatesResponse, error) {
	tpls, err := s.templates.List(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list templates: %v", err)
	}
	out := make([]*v1.Template, 0, len(tpls))
	for _, tpl := range tpls {
		out = append(out, templateProto(tpl))
	}
	return &v1.ListTemplatesResponse{Templates: out}, nil
}

func (s *TemplateService) UpdateTemplateFields(ctx context.Context, req *v1.UpdateTemplateFieldsRequest) (*v1.TemplateResponse, error) {
	templateID, err := parseUUID(req.GetTemplateId(), "template_id")
	if err != nil {
		return nil, err
	}
	fields, err := fieldDefsFromProto(req.GetFields())
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one field is required")
	}

	tpl, err := s.templates.UpdateFields(ctx, templateID, fields)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "template not found")
		}
		s.logger.Error("template update failed", "template_id", templateID, "error", err)
		return nil, status.Errorf(codes.Internal, "update template: %v", err)
	}

	// Drop the compiled rule model so the next validation sees the new
	// version.
	s.engine.Invalidate(templateID)
	s.logger.Info("template fields updated", "template_id", templateID, "version", tpl.Version)
	return &v1.TemplateResponse{Template: templateProto(tpl)}, nil
}

var knownFieldTypes = map[string]entity.FieldType{
	string(entity.FieldText):          entity.FieldText,
	string(entity.FieldNumber):        entity.FieldNumber,
	string(entity.FieldDate):          entity.FieldDate,
	string(entity.FieldBoolean):       entity.FieldBoolean,
	string(entity.FieldArray):         entity.FieldArray,
	string(entity.FieldTable):         entity.FieldTable,
	string(entity.FieldArrayOfObject): entity.FieldArrayOfObject,
}

func fieldDefsFromProto(in []*v1.FieldDefinition) ([]entity.FieldDefinition, error) {
	out := make([]entity.FieldDefinition, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, fd := range in {
		name := strings.TrimSpace(fd.GetName())
		if name == "" {
			return nil, status.Error(codes.InvalidArgument, "field name is required")
		}
		if seen[name] {
			return nil, status.Errorf(codes.InvalidArgument, "duplicate field name %q", name)
		}
		seen[name] = true

		ft, ok := knownFieldTypes[strings.ToLower(strings.TrimSpace(fd.GetType()))]
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown field type %q", fd.GetType())
		}

		def := entity.FieldDefinition{Name: name, Type: ft, Required: fd.GetRequired()}
		if r := fd.GetRules(); r != nil {
			def.Rules = entity.RuleSpec{
				Pattern: r.GetPattern(),
				Format:  r.GetFormat(),
			}
			if r.Min != nil {
				v := r.GetMin()
				def.Rules.Min = &v
			}
			if r.Max != nil {
				v := r.GetMax()
				def.Rules.Max = &v
			}
			if r.MinLength != nil {
				v := int(r.GetMinLength())
				def.Rules.MinLength = &v
			}
			if r.MaxLength != nil {
				v := int(r.GetMaxLength())
				def.Rules.MaxLength = &v
			}
			if r.RecommendedMin != nil {
				v := r.GetRecommendedMin()
				def.Rules.RecommendedMin = &v
			}
			if r.RecommendedMax != nil {
				v := r.GetRecommendedMax()
				def.Rules.RecommendedMax = &v
			}
		}
		out = append(out, def)
	}
	return out, nil
}

func templateProto(tpl *entity.Template) *v1.Template {
	out := &v1.Template{
		TemplateId: tpl.ID.String(),
		Name:       tpl.Name,
		Category:   tpl.Category,
		Version:    int32(tpl.Version),
		Fields:     make([]*v1.FieldDefinition, 0, len(tpl.Fields)),
		CreatedAt:  tpl.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  tpl.UpdatedAt.UTC().Format(time.RFC3339),
	}
	for _, fd := range tpl.Fields {
		pf := &v1.FieldDefinition{
			Name:     fd.Name,
			Type:     string(fd.Type),
			Required: fd.Required,
			Rules: &v1.FieldRule{
				Pattern: fd.Rules.Pattern,
				Format:  fd.Rules.Format,
			},
		}
		if fd.Rules.Min != nil {
			pf.Rules.Min = fd.Rules.Min
		}
		if fd.Rules.Max != nil {
			pf.Rules.Max = fd.Rules.Max
		}
		if fd.Rules.MinLength != nil {
			v := int32(*fd.Rules.MinLength)
			pf.Rules.MinLength = &v
		}
		if fd.Rules.MaxLength != nil {
			v := int32(*fd.Rules.MaxLength)
			pf.Rules.MaxLength = &v
		}
		if fd.Rules.RecommendedMin != nil {
			pf.Rules.RecommendedMin = fd.Rules.RecommendedMin
		}
		if fd.Rules.RecommendedMax != nil {
			pf.Rules.RecommendedMax = fd.Rules.RecommendedMax
		}
		out.Fields = append(out.Fields, pf)
	}
	return out
}
