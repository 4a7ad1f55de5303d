package docai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/oakfield-labs/docuflow/internal/entity"
	"github.com/oakfield-labs/docuflow/internal/provider"
)

// Parse implements provider.DocumentParser over the /v1/parse endpoint.
func (c *Client) Parse(ctx context.Context, fileBytes []byte) (provider.ParseResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("docai.parse.start", "req_id", rid, "bytes", len(fileBytes))

	body := map[string]any{
		"content": base64.StdEncoding.EncodeToString(fileBytes),
	}
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/parse"
	raw, _, err := provider.SendJSON(ctx, c.http, endpoint, body, c.headers(), c.log)
	if err != nil {
		c.log.Error("docai.parse.http_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return provider.ParseResult{}, err
	}

	var resp struct {
		JobToken string `json:"job_token"`
		Blocks   []struct {
			ID         string             `json:"id"`
			Page       int                `json:"page"`
			Text       string             `json:"text"`
			BBox       entity.BoundingBox `json:"bbox"`
			Confidence float32            `json:"confidence"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.log.Error("docai.parse.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return provider.ParseResult{}, fmt.Errorf("decode parse response: %w", err)
	}

	blocks := make([]entity.ParseBlock, 0, len(resp.Blocks))
	for _, b := range resp.Blocks {
		blocks = append(blocks, entity.ParseBlock{
			ID:         b.ID,
			Page:       b.Page,
			Text:       b.Text,
			BBox:       b.BBox,
			Confidence: b.Confidence,
		})
	}

	c.log.Info("docai.parse.ok", "req_id", rid, "job_token", resp.JobToken,
		"blocks", len(blocks), "elapsed_ms", time.Since(start).Milliseconds())
	return provider.ParseResult{JobToken: resp.JobToken, Blocks: blocks}, nil
}

// ExtractFields implements provider.FieldExtractor over the /v1/extract
// endpoint. When a job token from a prior parse is present it is replayed
// instead of resubmitting bytes.
func (c *Client) ExtractFields(ctx context.Context, req provider.ExtractRequest) (map[string]provider.ExtractedValue, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("docai.extract.start",
		"req_id", rid,
		"job_token", req.JobToken != "",
		"fields", len(req.Fields),
	)

	defs := make([]map[string]any, 0, len(req.Fields))
	for _, fd := range req.Fields {
		defs = append(defs, map[string]any{
			"name":     fd.Name,
			"type":     string(fd.Type),
			"required": fd.Required,
		})
	}

	body := map[string]any{"field_definitions": defs}
	if req.JobToken != "" {
		body["job_token"] = req.JobToken
	} else {
		body["content"] = base64.StdEncoding.EncodeToString(req.FileBytes)
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/extract"
	raw, _, err := provider.SendJSON(ctx, c.http, endpoint, body, c.headers(), c.log)
	if err != nil {
		c.log.Error("docai.extract.http_error", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, raw, err
	}

	normalized, dropped, err := NormalizePayload(raw)
	if err != nil {
		c.log.Error("docai.extract.decode_error", "req_id", rid, "error", err, "raw_bytes", len(raw))
		return nil, raw, fmt.Errorf("decode extract response: %w", err)
	}
	if len(dropped) > 0 {
		c.log.Warn("docai.extract.normalized", "req_id", rid, "dropped", dropped)
	}

	var resp struct {
		Fields map[string]struct {
			Value      json.RawMessage     `json:"value"`
			Confidence float32             `json:"confidence"`
			SourcePage *int                `json:"source_page,omitempty"`
			SourceBBox *entity.BoundingBox `json:"source_bbox,omitempty"`
			SourceText string              `json:"source_text,omitempty"`
		} `json:"fields"`
	}
	if err := json.Unmarshal(normalized, &resp); err != nil {
		return nil, raw, fmt.Errorf("decode normalized extract response: %w", err)
	}

	out := make(map[string]provider.ExtractedValue, len(resp.Fields))
	for name, v := range resp.Fields {
		out[name] = provider.ExtractedValue{
			Value:      v.Value,
			Confidence: v.Confidence,
			SourcePage: v.SourcePage,
			SourceBBox: v.SourceBBox,
			SourceText: v.SourceText,
		}
	}

	c.log.Info("docai.extract.ok", "req_id", rid, "fields", len(out),
		"elapsed_ms", time.Since(start).Milliseconds())
	return out, normalized, nil
}
