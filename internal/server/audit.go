package server

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/oakfield-labs/docuflow/gen/proto/docuflow/v1"
	"github.com/oakfield-labs/docuflow/internal/audit"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/export"
	"github.com/oakfield-labs/docuflow/internal/extraction"
	"github.com/oakfield-labs/docuflow/internal/repository"
)

type AuditServer struct {
	v1.UnimplementedAuditServiceServer
	queue    *audit.Queue
	fields   repository.ExtractedFieldRepository
	orch     *extraction.Orchestrator
	exporter *export.Service
	logger   *slog.Logger
}

func NewAuditServer(
	queue *audit.Queue,
	fields repository.ExtractedFieldRepository,
	orch *extraction.Orchestrator,
	exporter *export.Service,
	logger *slog.Logger,
) *AuditServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditServer{queue: queue, fields: fields, orch: orch, exporter: exporter, logger: logger}
}

// GetAuditQueue implements v1.AuditServiceServer
func (s *AuditServer) GetAuditQueue(ctx context.Context, req *v1.GetAuditQueueRequest) (*v1.GetAuditQueueResponse, error) {
	auditReq, err := buildRequest(req.GetTemplateId(), req.GetMinPriority())
	if err != nil {
		return nil, err
	}
	auditReq.Offset = int(req.GetOffset())
	auditReq.Limit = int(req.GetLimit())

	entries, total, err := s.queue.Page(ctx, auditReq)
	if err != nil {
		s.logger.Error("audit queue derivation failed", "error", err)
		return nil, status.Errorf(codes.Internal, "audit queue: %v", err)
	}

	resp := &v1.GetAuditQueueResponse{
		Entries: make([]*v1.AuditEntry, 0, len(entries)),
		Total:   int32(total),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &v1.AuditEntry{
			Field:        fieldView(e.Field),
			ExtractionId: e.Field.ExtractionID.String(),
			Priority:     e.Priority.String(),
		})
	}
	return resp, nil
}

func (s *AuditServer) VerifyField(ctx context.Context, req *v1.VerifyFieldRequest) (*v1.VerifyFieldResponse, error) {
	fieldID, err := parseUUID(req.GetFieldId(), "field_id")
	if err != nil {
		return nil, err
	}

	var corrected json.RawMessage
	if raw := strings.TrimSpace(req.GetCorrectedValueJson()); raw != "" {
		if !json.Valid([]byte(raw)) {
			return nil, status.Error(codes.InvalidArgument, "corrected_value_json must be valid JSON")
		}
		corrected = json.RawMessage(raw)
	}

	field, err := s.fields.UpdateValue(ctx, fieldID, corrected, true)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "field not found")
		}
		s.logger.Error("verify failed", "field_id", fieldID, "error", err)
		return nil, status.Errorf(codes.Internal, "verify: %v", err)
	}

	// A corrected value can change the validation picture for the whole
	// extraction, cross-field rules included.
	if len(corrected) > 0 {
		if err := s.orch.Revalidate(ctx, field.ExtractionID); err != nil {
			s.logger.Error("revalidation failed", "extraction_id", field.ExtractionID, "error", err)
			return nil, status.Errorf(codes.Internal, "revalidate: %v", err)
		}
		if field, err = s.fields.GetByID(ctx, fieldID); err != nil {
			return nil, status.Errorf(codes.Internal, "reload field: %v", err)
		}
	}

	s.logger.Info("field verified", "field_id", fieldID, "corrected", len(corrected) > 0)
	return &v1.VerifyFieldResponse{Field: fieldView(field)}, nil
}

func (s *AuditServer) ExportAuditQueue(ctx context.Context, req *v1.ExportAuditQueueRequest) (*v1.ExportAuditQueueResponse, error) {
	auditReq, err := buildRequest(req.GetTemplateId(), req.GetMinPriority())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportAuditQueueXLSX(ctx, auditReq)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &v1.ExportAuditQueueResponse{Xlsx: xlsx}, nil
}

func (s *AuditServer) ExportExtraction(ctx context.Context, req *v1.ExportExtractionRequest) (*v1.ExportExtractionResponse, error) {
	extractionID, err := parseUUID(req.GetExtractionId(), "extraction_id")
	if err != nil {
		return nil, err
	}

	xlsx, err := s.exporter.ExportExtractionXLSX(ctx, extractionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "extraction not found")
		}
		s.logger.Error("export.xlsx.failed", "extraction_id", extractionID, "error", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &v1.ExportExtractionResponse{Xlsx: xlsx}, nil
}

func buildRequest(templateID, minPriority string) (audit.Request, error) {
	req := audit.Request{MinPriority: audit.Low}
	if tid := strings.TrimSpace(templateID); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return audit.Request{}, status.Error(codes.InvalidArgument, "template_id must be a UUID")
		}
		req.TemplateID = &id
	}
	if mp := strings.TrimSpace(minPriority); mp != "" {
		p, ok := parsePriority(mp)
		if !ok {
			return audit.Request{}, status.Error(codes.InvalidArgument, "min_priority must be CRITICAL, HIGH, MEDIUM or LOW")
		}
		req.MinPriority = p
	}
	return req, nil
}

func parsePriority(s string) (audit.Priority, bool) {
	switch strings.ToUpper(s) {
	case "CRITICAL":
		return audit.Critical, true
	case "HIGH":
		return audit.High, true
	case "MEDIUM":
		return audit.Medium, true
	case "LOW":
		return audit.Low, true
	default:
		return audit.Low, false
	}
}
