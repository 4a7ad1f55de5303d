package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/oakfield-labs/docuflow/gen/proto/docuflow/v1"
	"github.com/oakfield-labs/docuflow/internal/common"
	"github.com/oakfield-labs/docuflow/internal/contentstore"
	"github.com/oakfield-labs/docuflow/internal/extraction"
)

type DocumentService struct {
	v1.UnimplementedDocumentServiceServer
	store    *contentstore.Store
	analyzer *extraction.Analyzer
	logger   *slog.Logger
}

func NewDocumentService(store *contentstore.Store, analyzer *extraction.Analyzer, logger *slog.Logger) *DocumentService {
	return &DocumentService{store: store, analyzer: analyzer, logger: logger}
}

// UploadDocument implements v1.DocumentServiceServer
func (s *DocumentService) UploadDocument(ctx context.Context, req *v1.UploadDocumentRequest) (*v1.UploadDocumentResponse, error) {
	content := req.GetContent()
	if len(content) == 0 {
		s.logger.Error("upload request with empty content")
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	s.logger.Info("starting document upload", "bytes", len(content))
	res, err := s.store.Store(ctx, content)
	if err != nil {
		s.logger.Error("upload failed", "error", err)
		return nil, status.Errorf(codes.Internal, "store document: %v", err)
	}
	s.logger.Info("document upload succeeded", "file_id", res.File.ID, "deduplicated", res.DuplicateFound)

	return &v1.UploadDocumentResponse{
		FileId:         res.File.ID.String(),
		Deduplicated:   res.DuplicateFound,
		ContentHashHex: res.HashHex,
		FileSize:       int64(res.File.FileSize),
		UploadedAt:     res.File.UploadedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *DocumentService) ReleaseDocument(ctx context.Context, req *v1.ReleaseDocumentRequest) (*v1.ReleaseDocumentResponse, error) {
	fileID, err := parseUUID(req.GetFileId(), "file_id")
	if err != nil {
		return nil, err
	}

	if err := s.store.Release(ctx, fileID); err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			return nil, status.Error(codes.NotFound, "file not found")
		case errors.Is(err, common.ErrReferentialIntegrity):
			return nil, status.Error(codes.FailedPrecondition, "file still referenced by extractions")
		default:
			s.logger.Error("release failed", "file_id", fileID, "error", err)
			return nil, status.Errorf(codes.Internal, "release: %v", err)
		}
	}
	return &v1.ReleaseDocumentResponse{Deleted: true}, nil
}

func (s *DocumentService) AnalyzeDocument(ctx context.Context, req *v1.AnalyzeDocumentRequest) (*v1.AnalyzeDocumentResponse, error) {
	fileID, err := parseUUID(req.GetFileId(), "file_id")
	if err != nil {
		return nil, err
	}

	s.logger.Info("starting document analysis", "file_id", fileID)
	res, err := s.analyzer.Analyze(ctx, fileID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "file not found")
		}
		s.logger.Error("analysis failed", "file_id", fileID, "error", err)
		return nil, status.Errorf(codes.Internal, "analyze: %v", err)
	}

	resp := &v1.AnalyzeDocumentResponse{
		DiscoveryStatus: string(res.Status),
		BestScore:       res.BestScore,
	}
	if res.MatchedTemplateID != nil {
		resp.MatchedTemplateId = res.MatchedTemplateID.String()
	}
	return resp, nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}
