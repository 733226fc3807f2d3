package library

import (
	"github.com/soundclock/soundclock/internal/model"
)

// TrackStore persists the track index. The audio bytes are never stored;
// only metadata survives a restart.
type TrackStore interface {
	LoadTracks() []model.Track
	SaveTracks(tracks []model.Track)
}
