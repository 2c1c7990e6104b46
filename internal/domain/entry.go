// Package domain contains the core data types for the Mood Journal application.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler, query).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry represents a single journal entry.
// Mood is derived from Text by the classifier; it may be empty for records
// written before mood extraction existed, in which case the service fills it
// in lazily on the next read.
type Entry struct {
	ID        uuid.UUID  `json:"id"`
	Text      string     `json:"text"`
	Mood      Mood       `json:"mood,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"` // nil until the first update
}
