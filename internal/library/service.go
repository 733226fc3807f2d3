package library

import (
	"log"
	"sync"

	"github.com/soundclock/soundclock/internal/model"
)

// Service is the track library: an insertion-ordered catalog of imported
// tracks with a single optional selection. Metadata is persisted through the
// store on every mutation; the playable audio bytes are held in memory only.
//
// Entries loaded from the store at startup are metadata-only: their audio
// bytes did not survive the restart, so they remain listed but unplayable
// until the user imports the file again.
type Service struct {
	mu         sync.RWMutex
	store      TrackStore
	tracks     []model.Track
	data       map[string][]byte // in-session audio bytes by track ID
	selectedID string

	// onChange fires after any catalog or selection change; onRemoved fires
	// first on removal so playback of an evicted track can be stopped.
	onChange  func()
	onRemoved func(trackID string, wasSelected bool)
}

// NewService creates the library and loads the persisted index. Loaded
// entries have no audio bytes and report as not playable.
func NewService(store TrackStore) *Service {
	s := &Service{
		store: store,
		data:  make(map[string][]byte),
	}

	s.tracks = store.LoadTracks()
	if len(s.tracks) > 0 {
		log.Printf("Loaded %d persisted tracks (metadata only, re-import to play)", len(s.tracks))
	}
	return s
}

// SetChangeCallback sets the callback fired after any catalog or selection change
func (s *Service) SetChangeCallback(callback func()) {
	s.onChange = callback
}

// SetRemovedCallback sets the callback fired when a track is removed, before
// the change callback. wasSelected lets the caller stop playback of the
// track being evicted.
func (s *Service) SetRemovedCallback(callback func(trackID string, wasSelected bool)) {
	s.onRemoved = callback
}

// Tracks returns the catalog in insertion order
func (s *Service) Tracks() []model.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tracks := make([]model.Track, len(s.tracks))
	copy(tracks, s.tracks)
	return tracks
}

// Count returns the number of tracks in the catalog
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tracks)
}

// Add appends a track with its audio bytes and persists the updated index
func (s *Service) Add(track model.Track, audio []byte) {
	s.mu.Lock()
	s.tracks = append(s.tracks, track)
	s.data[track.ID] = audio
	s.persistLocked()
	s.mu.Unlock()

	log.Printf("Track added: id=%s title=%q size=%d type=%s", track.ID, track.Title, track.Size, track.MIMEType)
	s.notifyChange()
}

// Remove deletes a track by ID and persists the updated index. If the track
// was selected the selection is cleared first. The in-memory audio bytes are
// released before removal completes. Returns false for an unknown ID.
func (s *Service) Remove(id string) bool {
	s.mu.Lock()

	index := -1
	for i, track := range s.tracks {
		if track.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		s.mu.Unlock()
		return false
	}

	wasSelected := s.selectedID == id
	if wasSelected {
		s.selectedID = ""
	}
	delete(s.data, id)
	s.tracks = append(s.tracks[:index], s.tracks[index+1:]...)
	s.persistLocked()
	s.mu.Unlock()

	log.Printf("Track removed: id=%s selected=%v", id, wasSelected)

	if s.onRemoved != nil {
		s.onRemoved(id, wasSelected)
	}
	s.notifyChange()
	return true
}

// Select records the given track as selected and returns it. Selection never
// starts playback; the caller decides whether to load the track into the
// player. Returns false for an unknown ID.
func (s *Service) Select(id string) (model.Track, bool) {
	s.mu.Lock()

	for _, track := range s.tracks {
		if track.ID == id {
			s.selectedID = id
			s.mu.Unlock()

			s.notifyChange()
			return track, true
		}
	}

	s.mu.Unlock()
	return model.Track{}, false
}

// ClearSelection drops the current selection
func (s *Service) ClearSelection() {
	s.mu.Lock()
	s.selectedID = ""
	s.mu.Unlock()

	s.notifyChange()
}

// SelectedID returns the selected track's ID, or an empty string
func (s *Service) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// Data returns the in-session audio bytes for a track. Metadata-only entries
// restored from a previous session have no bytes.
func (s *Service) Data(id string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	audio, ok := s.data[id]
	return audio, ok
}

// Playable reports whether the track has audio bytes in this session
func (s *Service) Playable(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[id]
	return ok
}

// persistLocked writes the current index through the store. Caller holds mu.
func (s *Service) persistLocked() {
	s.store.SaveTracks(s.tracks)
}

// notifyChange calls the change callback if set
func (s *Service) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}
