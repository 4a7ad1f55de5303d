package extraction

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakfield-labs/docuflow/constants"
	"github.com/oakfield-labs/docuflow/internal/entity"
)

type blockParser struct {
	blocks []entity.ParseBlock
}

func (p *blockParser) GetOrParse(_ context.Context, fileID uuid.UUID) (*entity.ParseRecord, error) {
	return &entity.ParseRecord{ID: uuid.New(), FileID: fileID, JobToken: "job", Blocks: p.blocks}, nil
}

func TestAnalyze(t *testing.T) {
	tpl := &entity.Template{
		ID:       uuid.New(),
		Name:     "standard-invoice",
		Category: "Invoice",
		Version:  1,
		Fields: []entity.FieldDefinition{
			{Name: "invoice_number", Type: entity.FieldText},
			{Name: "total_amount", Type: entity.FieldNumber},
		},
	}
	templates := &fakeTemplates{tpl: tpl}

	newFile := func(files *fakeFilesRepo) uuid.UUID {
		id := uuid.New()
		files.known[id] = &entity.PhysicalFile{
			ID:              id,
			StoragePath:     "ab/cd",
			DiscoveryStatus: string(constants.DocumentUploaded),
		}
		return id
	}

	t.Run("matches when field names appear in the text", func(t *testing.T) {
		files := &fakeFilesRepo{known: make(map[uuid.UUID]*entity.PhysicalFile)}
		fileID := newFile(files)
		parser := &blockParser{blocks: []entity.ParseBlock{
			{ID: "1", Page: 1, Text: "Invoice Number: INV-42"},
			{ID: "2", Page: 1, Text: "Total Amount Due: $120.50"},
		}}
		a := NewAnalyzer(files, templates, parser, nil)

		res, err := a.Analyze(context.Background(), fileID)
		require.NoError(t, err)
		assert.Equal(t, constants.DocumentTemplateMatched, res.Status)
		require.NotNil(t, res.MatchedTemplateID)
		assert.Equal(t, tpl.ID, *res.MatchedTemplateID)
		assert.Equal(t, 1.0, res.BestScore)

		assert.Equal(t, string(constants.DocumentTemplateMatched), files.known[fileID].DiscoveryStatus)
		assert.Equal(t, tpl.ID, *files.known[fileID].MatchedTemplateID)
	})

	t.Run("needs a template when nothing scores", func(t *testing.T) {
		files := &fakeFilesRepo{known: make(map[uuid.UUID]*entity.PhysicalFile)}
		fileID := newFile(files)
		parser := &blockParser{blocks: []entity.ParseBlock{
			{ID: "1", Page: 1, Text: "Meeting notes from Tuesday"},
		}}
		a := NewAnalyzer(files, templates, parser, nil)

		res, err := a.Analyze(context.Background(), fileID)
		require.NoError(t, err)
		assert.Equal(t, constants.DocumentTemplateNeeded, res.Status)
		assert.Nil(t, res.MatchedTemplateID)
		assert.Equal(t, string(constants.DocumentTemplateNeeded), files.known[fileID].DiscoveryStatus)
	})

	t.Run("template-needed files can be re-analyzed", func(t *testing.T) {
		files := &fakeFilesRepo{known: make(map[uuid.UUID]*entity.PhysicalFile)}
		fileID := newFile(files)
		files.known[fileID].DiscoveryStatus = string(constants.DocumentTemplateNeeded)
		parser := &blockParser{blocks: []entity.ParseBlock{
			{ID: "1", Page: 1, Text: "invoice number and total amount"},
		}}
		a := NewAnalyzer(files, templates, parser, nil)

		res, err := a.Analyze(context.Background(), fileID)
		require.NoError(t, err)
		assert.Equal(t, constants.DocumentTemplateMatched, res.Status)
	})

	t.Run("partial overlap below threshold", func(t *testing.T) {
		files := &fakeFilesRepo{known: make(map[uuid.UUID]*entity.PhysicalFile)}
		fileID := newFile(files)
		parser := &blockParser{blocks: []entity.ParseBlock{
			{ID: "1", Page: 1, Text: "amount only, nothing else"},
		}}
		a := NewAnalyzer(files, templates, parser, nil)

		res, err := a.Analyze(context.Background(), fileID)
		require.NoError(t, err)
		assert.Equal(t, constants.DocumentTemplateNeeded, res.Status)
		assert.Less(t, res.BestScore, matchThreshold)
	})
}

func TestScoreTemplate(t *testing.T) {
	tpl := &entity.Template{
		Fields: []entity.FieldDefinition{
			{Name: "invoice_number"},
			{Name: "total_amount"},
			{Name: "due_date"},
		},
	}
	tokens := tokenize([]entity.ParseBlock{
		{Text: "Invoice Number INV-1 Total Amount 12.00"},
	})

	// invoice_number and total_amount hit, due_date does not
	assert.InDelta(t, 2.0/3.0, scoreTemplate(tpl, tokens), 1e-9)
	assert.Zero(t, scoreTemplate(&entity.Template{}, tokens))
}
