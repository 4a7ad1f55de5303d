package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/repository"
)

// matchThreshold is the minimum fraction of a template's field names that
// must surface in the parsed text before the template counts as a match.
const matchThreshold = 0.5

// AnalysisResult reports the outcome of template discovery for one file.
type AnalysisResult struct {
	Status            constants.DocumentStatus
	MatchedTemplateID *uuid.UUID
	BestScore         float64
}

// Analyzer runs template discovery: parse the document (through the shared
// cache) and score every known template against the parsed text.
type Analyzer struct {
	files     repository.PhysicalFileRepository
	templates repository.TemplateRepository
	parser    Parser
	logger    *slog.Logger
}

func NewAnalyzer(files repository.PhysicalFileRepository, templates repository.TemplateRepository, parser Parser, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{files: files, templates: templates, parser: parser, logger: logger}
}

// Analyze moves the file through the discovery track and records the best
// matching template, if any clears the threshold.
func (a *Analyzer) Analyze(ctx context.Context, fileID uuid.UUID) (AnalysisResult, error) {
	file, err := a.files.GetByID(ctx, fileID)
	if err != nil {
		return AnalysisResult{}, err
	}
	from := constants.DocumentStatus(file.DiscoveryStatus)
	if !CanTransitionDiscovery(from, constants.DocumentAnalyzing) {
		return AnalysisResult{}, fmt.Errorf("file %s discovery status %s cannot be analyzed", fileID, from)
	}
	if err := a.files.SetDiscovery(ctx, fileID, string(constants.DocumentAnalyzing), nil); err != nil {
		return AnalysisResult{}, err
	}

	rec, err := a.parser.GetOrParse(ctx, fileID)
	if err != nil {
		return AnalysisResult{}, err
	}
	tokens := tokenize(rec.Blocks)

	templates, err := a.templates.List(ctx)
	if err != nil {
		return AnalysisResult{}, err
	}

	var (
		best      *entity.Template
		bestScore float64
	)
	for _, tpl := range templates {
		score := scoreTemplate(tpl, tokens)
		a.logger.Debug("template scored", "file_id", fileID, "template_id", tpl.ID, "score", score)
		if score > bestScore {
			best, bestScore = tpl, score
		}
	}

	if best == nil || bestScore < matchThreshold {
		if err := a.files.SetDiscovery(ctx, fileID, string(constants.DocumentTemplateNeeded), nil); err != nil {
			return AnalysisResult{}, err
		}
		a.logger.Info("no template matched", "file_id", fileID, "best_score", bestScore)
		return AnalysisResult{Status: constants.DocumentTemplateNeeded, BestScore: bestScore}, nil
	}

	if err := a.files.SetDiscovery(ctx, fileID, string(constants.DocumentTemplateMatched), &best.ID); err != nil {
		return AnalysisResult{}, err
	}
	a.logger.Info("template matched", "file_id", fileID, "template_id", best.ID, "score", bestScore)
	return AnalysisResult{
		Status:            constants.DocumentTemplateMatched,
		MatchedTemplateID: &best.ID,
		BestScore:         bestScore,
	}, nil
}

// scoreTemplate is the fraction of the template's field names whose word
// tokens all appear somewhere in the parsed text.
func scoreTemplate(tpl *entity.Template, tokens map[string]bool) float64 {
	if len(tpl.Fields) == 0 {
		return 0
	}
	hits := 0
	for _, fd := range tpl.Fields {
		if fieldNameMatches(fd.Name, tokens) {
			hits++
		}
	}
	return float64(hits) / float64(len(tpl.Fields))
}

func fieldNameMatches(name string, tokens map[string]bool) bool {
	words := splitWords(name)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if !tokens[w] {
			return false
		}
	}
	return true
}

func tokenize(blocks []entity.ParseBlock) map[string]bool {
	tokens := make(map[string]bool)
	for _, b := range blocks {
		for _, w := range splitWords(b.Text) {
			tokens[w] = true
		}
	}
	return tokens
}

func splitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}
