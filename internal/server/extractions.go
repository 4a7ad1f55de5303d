package server

import (
	"context"
	"errors"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/oakfield-labs/docuflow/gen/proto/docuflow/v1"
	"github.com/oakfield-labs/docuflow/internal/audit"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/extraction"
	"github.com/oakfield-labs/docuflow/internal/repository"
)

type ExtractionService struct {
	v1.UnimplementedExtractionServiceServer
	pool        *extraction.Pool
	orch        *extraction.Orchestrator
	extractions repository.ExtractionRepository
	fields      repository.ExtractedFieldRepository
	logger      *slog.Logger
}

func NewExtractionService(
	pool *extraction.Pool,
	orch *extraction.Orchestrator,
	extractions repository.ExtractionRepository,
	fields repository.ExtractedFieldRepository,
	logger *slog.Logger,
) *ExtractionService {
	return &ExtractionService{
		pool:        pool,
		orch:        orch,
		extractions: extractions,
		fields:      fields,
		logger:      logger,
	}
}

// SubmitBatch implements v1.ExtractionServiceServer
func (s *ExtractionService) SubmitBatch(ctx context.Context, req *v1.SubmitBatchRequest) (*v1.SubmitBatchResponse, error) {
	units := req.GetUnits()
	if len(units) == 0 {
		return nil, status.Error(codes.InvalidArgument, "units are required")
	}

	pairs := make([]extraction.Pair, 0, len(units))
	for _, u := range units {
		fileID, err := parseUUID(u.GetFileId(), "file_id")
		if err != nil {
			return nil, err
		}
		templateID, err := parseUUID(u.GetTemplateId(), "template_id")
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, extraction.Pair{FileID: fileID, TemplateID: templateID})
	}

	s.logger.Info("submitting batch", "units", len(pairs))
	batchID, ids, err := s.pool.Submit(ctx, pairs)
	if err != nil {
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			return nil, status.Errorf(codes.InvalidArgument, "%s: %s", appErr.Code, appErr.Message)
		}
		s.logger.Error("batch submit failed", "error", err)
		return nil, status.Errorf(codes.Internal, "submit batch: %v", err)
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return &v1.SubmitBatchResponse{BatchId: batchID.String(), ExtractionIds: out}, nil
}

func (s *ExtractionService) GetBatchStatus(_ context.Context, req *v1.GetBatchStatusRequest) (*v1.GetBatchStatusResponse, error) {
	batchID, err := parseUUID(req.GetBatchId(), "batch_id")
	if err != nil {
		return nil, err
	}
	snap, err := s.pool.Snapshot(batchID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "batch not found")
	}
	return &v1.GetBatchStatusResponse{
		BatchId:   snap.ID.String(),
		State:     string(snap.State),
		Total:     int32(snap.Total),
		Completed: int32(snap.Completed),
		Failed:    int32(snap.Failed),
		Cancelled: int32(snap.Cancelled),
	}, nil
}

func (s *ExtractionService) CancelBatch(_ context.Context, req *v1.CancelBatchRequest) (*v1.CancelBatchResponse, error) {
	batchID, err := parseUUID(req.GetBatchId(), "batch_id")
	if err != nil {
		return nil, err
	}
	if err := s.pool.Cancel(batchID); err != nil {
		return nil, status.Error(codes.NotFound, "batch not found")
	}
	s.logger.Info("batch cancelled", "batch_id", batchID)
	return &v1.CancelBatchResponse{}, nil
}

func (s *ExtractionService) GetExtraction(ctx context.Context, req *v1.GetExtractionRequest) (*v1.GetExtractionResponse, error) {
	extractionID, err := parseUUID(req.GetExtractionId(), "extraction_id")
	if err != nil {
		return nil, err
	}
	ext, err := s.extractions.GetByID(ctx, extractionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "extraction not found")
		}
		return nil, status.Errorf(codes.Internal, "get extraction: %v", err)
	}
	rows, err := s.fields.ListByExtraction(ctx, extractionID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list fields: %v", err)
	}

	resp := &v1.GetExtractionResponse{
		ExtractionId:  ext.ID.String(),
		FileId:        ext.FileID.String(),
		TemplateId:    ext.TemplateID.String(),
		Status:        ext.Status,
		ErrorMessage:  deref(ext.ErrorMessage),
		OrganizedPath: deref(ext.OrganizedPath),
		Fields:        make([]*v1.ExtractedFieldView, 0, len(rows)),
	}
	for _, f := range rows {
		resp.Fields = append(resp.Fields, fieldView(f))
	}
	return resp, nil
}

func (s *ExtractionService) ReprocessExtraction(ctx context.Context, req *v1.ReprocessExtractionRequest) (*v1.ReprocessExtractionResponse, error) {
	extractionID, err := parseUUID(req.GetExtractionId(), "extraction_id")
	if err != nil {
		return nil, err
	}
	next, err := s.orch.Reprocess(ctx, extractionID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "extraction not found")
		}
		s.logger.Error("reprocess failed", "extraction_id", extractionID, "error", err)
		return nil, status.Errorf(codes.Internal, "reprocess: %v", err)
	}

	// Single-unit batch so the new extraction rides the same worker pool.
	batchID, err := s.pool.SubmitExisting(next.ID)
	if err != nil {
		s.logger.Error("failed to queue reprocessed extraction", "extraction_id", next.ID, "error", err)
		return nil, status.Errorf(codes.Internal, "queue reprocess: %v", err)
	}
	s.logger.Info("reprocess queued", "extraction_id", next.ID, "batch_id", batchID)
	return &v1.ReprocessExtractionResponse{ExtractionId: next.ID.String()}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fieldView(f *entity.ExtractedField) *v1.ExtractedFieldView {
	view := &v1.ExtractedFieldView{
		FieldId:          f.ID.String(),
		Name:             f.Name,
		ValueJson:        string(f.Value),
		Confidence:       f.Confidence,
		SourceText:       f.SourceText,
		Verified:         f.Verified,
		ValidationStatus: f.ValidationStatus,
		ValidationErrors: f.ValidationErrors,
		AuditPriority:    audit.Priority(f.AuditPriority).String(),
	}
	if f.SourcePage != nil {
		view.SourcePage = int32(*f.SourcePage)
	}
	return view
}
