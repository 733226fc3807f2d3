package config

import (
	"encoding/json"
	"log"

	"fyne.io/fyne/v2"

	"github.com/soundclock/soundclock/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyBGMTracks = "bgmTracks"
)

// Settings manages application configuration and the persisted track index
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// LoadTracks reads the persisted track index. A missing entry yields an empty
// list; a malformed entry is logged and degrades to an empty list rather than
// failing startup.
func (s *Settings) LoadTracks() []model.Track {
	raw := s.app.Preferences().String(KeyBGMTracks)
	if raw == "" {
		return nil
	}

	var tracks []model.Track
	if err := json.Unmarshal([]byte(raw), &tracks); err != nil {
		log.Printf("Malformed track index, starting with empty library: %v", err)
		return nil
	}
	return tracks
}

// SaveTracks writes the full track index, replacing the previous entry
func (s *Settings) SaveTracks(tracks []model.Track) {
	if tracks == nil {
		tracks = []model.Track{}
	}

	raw, err := json.Marshal(tracks)
	if err != nil {
		log.Printf("Failed to serialize track index: %v", err)
		return
	}
	s.app.Preferences().SetString(KeyBGMTracks, string(raw))
}
