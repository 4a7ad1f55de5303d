package entity

import (
	"time"

	"github.com/google/uuid"
)

// BoundingBox locates a block or field on its source page, in page-relative
// coordinates (0..1).
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ParseBlock is one structured block from the upstream document parser.
type ParseBlock struct {
	ID         string      `json:"id"`
	Page       int         `json:"page"`
	Text       string      `json:"text"`
	BBox       BoundingBox `json:"bbox"`
	Confidence float32     `json:"confidence"`
}

// ParseRecord is the cached result of the upstream parse call for one
// PhysicalFile. At most one exists per file; reprocessing overwrites it.
type ParseRecord struct {
	ID        uuid.UUID    `json:"id"`
	FileID    uuid.UUID    `json:"file_id"`
	JobToken  string       `json:"job_token"`
	Blocks    []ParseBlock `json:"blocks"`
	CreatedAt time.Time    `json:"created_at"`
}
