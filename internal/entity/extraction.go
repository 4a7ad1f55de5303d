package entity

import (
	"time"

	"github.com/google/uuid"
)

// Extraction is one run of a Template against one PhysicalFile, with its
// own lifecycle. Reprocessing creates a new Extraction; history is kept.
type Extraction struct {
	ID            uuid.UUID  `json:"id"`
	FileID        uuid.UUID  `json:"file_id"`
	TemplateID    uuid.UUID  `json:"template_id"`
	Status        string     `json:"status"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	OrganizedPath *string    `json:"organized_path,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
}
