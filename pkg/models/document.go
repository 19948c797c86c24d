package models

import "time"

// DocumentVersion is a numbered, immutable snapshot of the document.
// Version numbers form a gap-free sequence from 1 within a session.
type DocumentVersion struct {
	Version      int       `json:"version"`
	Title        string    `json:"title"`
	DocumentType string    `json:"document_type"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`

	// ProducedFromVersion is the version the moderator consumed to
	// produce this one; 0 for the initial submission (v1).
	ProducedFromVersion int `json:"produced_from_version,omitempty"`

	LengthChars int `json:"length_chars"`
}
