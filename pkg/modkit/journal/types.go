// Package journal records modkit operations (project writes, scaffold
// creations) as JSON entries on disk for later inspection.
package journal

import "time"

// OperationType represents the type of operation.
type OperationType string

const (
	// OpProjectWrite represents a project file write.
	OpProjectWrite OperationType = "project-write"
	// OpScaffold represents a mod scaffold creation.
	OpScaffold OperationType = "scaffold"
)

// Entry represents a single journal entry.
type Entry struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	Operation OperationType `json:"operation"`
	Path      string        `json:"path"`

	// OriginalSize and CompressedSize are set for project writes.
	OriginalSize   int64 `json:"original_size,omitempty"`
	CompressedSize int64 `json:"compressed_size,omitempty"`

	// ModID is set for scaffold creations.
	ModID string `json:"mod_id,omitempty"`
}
