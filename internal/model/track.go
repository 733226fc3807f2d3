package model

import "time"

// DefaultComposer is used for imported tracks with no composer metadata.
const DefaultComposer = "unknown"

// Track represents a single imported background music track. The JSON field
// names match the persisted index entry written to preferences; the playable
// audio bytes themselves live only in memory for the current session and are
// never serialized.
type Track struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Composer     string    `json:"composer"`
	SourceName   string    `json:"filename"`     // transient in-memory source label
	OriginalName string    `json:"originalName"` // filename as picked by the user
	Size         int64     `json:"size"`         // bytes
	MIMEType     string    `json:"type"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// GetDisplayTitle returns the title, or the original filename as a fallback
func (t *Track) GetDisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.OriginalName
}

// GetDisplayComposer returns the composer, or the default placeholder
func (t *Track) GetDisplayComposer() string {
	if t.Composer != "" {
		return t.Composer
	}
	return DefaultComposer
}
