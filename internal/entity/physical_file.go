package entity

import (
	"time"

	"github.com/google/uuid"
)

// PhysicalFile represents unique byte content for data transfer between layers.
// There is exactly one record per distinct content hash.
type PhysicalFile struct {
	ID                uuid.UUID  `json:"id"`
	ContentHash       []byte     `json:"content_hash"`
	FileSize          int        `json:"file_size"`
	StoragePath       string     `json:"storage_path"`
	RefCount          int        `json:"ref_count"`
	DiscoveryStatus   string     `json:"discovery_status"`
	MatchedTemplateID *uuid.UUID `json:"matched_template_id,omitempty"`
	UploadedAt        time.Time  `json:"uploaded_at"`
}
