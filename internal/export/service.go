package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/oakfield-labs/docuflow/internal/audit"
	"github.com/oakfield-labs/docuflow/internal/repository"
)

// Service produces XLSX bytes for the review queue so auditors can work a
// snapshot offline.
type Service struct {
	queue  *audit.Queue
	fields repository.ExtractedFieldRepository
	logger *slog.Logger
}

func NewService(queue *audit.Queue, fields repository.ExtractedFieldRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{queue: queue, fields: fields, logger: logger}
}

// ExportAuditQueueXLSX renders the current queue (all pages) as a workbook.
func (s *Service) ExportAuditQueueXLSX(ctx context.Context, req audit.Request) ([]byte, error) {
	start := time.Now()

	req.Offset = 0
	req.Limit = 1 << 20 // whole queue in one page
	entries, total, err := s.queue.Page(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("derive audit queue: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Audit Queue"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Priority",
		"Field",
		"Value",
		"Confidence",
		"Validation Status",
		"Validation Messages",
		"Extraction ID",
		"Source Text",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range entries {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, e.Priority.String())
		write(2, e.Field.Name)
		write(3, truncate(e.Field.ValueString(), 140))
		write(4, fmt.Sprintf("%.2f", e.Field.Confidence))
		write(5, e.Field.ValidationStatus)
		write(6, truncate(joinMessages(e.Field.ValidationErrors), 200))
		write(7, e.Field.ExtractionID.String())
		write(8, truncate(e.Field.SourceText, 80))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 24)
	_ = f.SetColWidth(sheet, "C", "C", 36)
	_ = f.SetColWidth(sheet, "D", "E", 14)
	_ = f.SetColWidth(sheet, "F", "F", 48)
	_ = f.SetColWidth(sheet, "G", "G", 38)
	_ = f.SetColWidth(sheet, "H", "H", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportExtractionXLSX renders one extraction's fields for reviewer handoff.
func (s *Service) ExportExtractionXLSX(ctx context.Context, extractionID uuid.UUID) ([]byte, error) {
	rows, err := s.fields.ListByExtraction(ctx, extractionID)
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Fields"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Field",
		"Value",
		"Confidence",
		"Verified",
		"Validation Status",
		"Validation Messages",
		"Source Page",
		"Source Text",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, fld := range rows {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, fld.Name)
		write(2, truncate(fld.ValueString(), 140))
		write(3, fmt.Sprintf("%.2f", fld.Confidence))
		write(4, fld.Verified)
		write(5, fld.ValidationStatus)
		write(6, truncate(joinMessages(fld.ValidationErrors), 200))
		if fld.SourcePage != nil {
			write(7, *fld.SourcePage)
		}
		write(8, truncate(fld.SourceText, 80))
	}

	_ = f.SetColWidth(sheet, "A", "A", 24)
	_ = f.SetColWidth(sheet, "B", "B", 36)
	_ = f.SetColWidth(sheet, "C", "E", 14)
	_ = f.SetColWidth(sheet, "F", "F", 48)
	_ = f.SetColWidth(sheet, "H", "H", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"extraction_id", extractionID,
		"rows", len(rows),
	)
	return buf.Bytes(), nil
}

func joinMessages(msgs []string) string {
	out := ""
	for i, m := range msgs {
		if i > 0 {
			out += "; "
		}
		out += m
	}
	return out
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
