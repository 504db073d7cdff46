package models

import (
	"time"
)

// HistoryRecord is one rendered rename plan stored in the journal.
type HistoryRecord struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`

	// SourceFile is the original file the plan was computed for.
	SourceFile string `json:"source_file"`

	// RenderedPath is the destination path the template produced.
	RenderedPath string `json:"rendered_path"`

	// Template is the template string that was rendered.
	Template string `json:"template"`

	// Preset names the preset the template came from, empty for ad-hoc templates.
	Preset string `json:"preset,omitempty"`

	// CreatedAt is when the plan was recorded.
	CreatedAt time.Time `json:"created_at"`
}
