package upload

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/soundclock/soundclock/internal/model"
)

// MaxFileSize is the admission limit for imported audio files (10 MiB)
const MaxFileSize = 10 * 1024 * 1024

// Validation errors surfaced to the user, one at a time
var (
	ErrFileTooLarge      = errors.New("file is larger than 10MB")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)

// acceptedMIMETypes is the set of admitted audio formats
var acceptedMIMETypes = map[string]bool{
	"audio/mpeg":  true,
	"audio/wav":   true,
	"audio/ogg":   true,
	"audio/x-m4a": true,
}

// extensionMIMETypes maps file extensions to MIME types for pickers that do
// not report one
var extensionMIMETypes = map[string]string{
	".mp3": "audio/mpeg",
	".wav": "audio/wav",
	".ogg": "audio/ogg",
	".m4a": "audio/x-m4a",
}

// Validate checks a candidate file against the admission rules. The size
// check runs first, so an oversized file of an unknown format reports the
// size error.
func Validate(size int64, mimeType string) error {
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	if !acceptedMIMETypes[mimeType] {
		return ErrUnsupportedFormat
	}
	return nil
}

// AcceptedExtensions returns the file extensions offered by the file picker
func AcceptedExtensions() []string {
	return []string{".mp3", ".wav", ".ogg", ".m4a"}
}

// MIMEForName resolves a MIME type from the filename extension, for pickers
// that report no type. Unknown extensions yield an empty string, which the
// validator rejects as an unsupported format.
func MIMEForName(name string) string {
	return extensionMIMETypes[strings.ToLower(filepath.Ext(name))]
}

// NewTrack builds the metadata for an admitted file. The ID derives from the
// creation timestamp, the title is the filename with its extension stripped,
// and the composer gets the fixed placeholder.
func NewTrack(name string, size int64, mimeType string) model.Track {
	now := time.Now()
	id := fmt.Sprintf("track-%d", now.UnixNano())
	base := filepath.Base(name)
	title := strings.TrimSuffix(base, filepath.Ext(base))

	return model.Track{
		ID:           id,
		Title:        title,
		Composer:     model.DefaultComposer,
		SourceName:   "mem://" + id,
		OriginalName: base,
		Size:         size,
		MIMEType:     mimeType,
		UploadedAt:   now,
	}
}
