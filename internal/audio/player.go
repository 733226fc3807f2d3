package audio

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/soundclock/soundclock/internal/model"
)

// DefaultVolume is the initial BGM volume
const DefaultVolume = 1.0

// BGM is the background music player state machine. Decoding runs in a
// goroutine per load attempt; each attempt carries a generation tag so a
// completion arriving after the track has been superseded is dropped instead
// of resurrecting a stale player.
type BGM struct {
	mu         sync.Mutex
	backend    Backend
	state      model.PlayState
	player     Player
	volume     float64
	generation string // tag of the load attempt we still care about
	trackID    string

	onState func(state model.PlayState)
}

// NewBGM creates an unloaded background music player
func NewBGM(backend Backend) *BGM {
	return &BGM{
		backend: backend,
		state:   model.PlayStateNotLoaded,
		volume:  DefaultVolume,
	}
}

// SetStateCallback sets the callback invoked after every state transition.
// Callbacks may arrive from the decode goroutine; the UI layer is expected to
// marshal onto its own thread.
func (b *BGM) SetStateCallback(callback func(state model.PlayState)) {
	b.onState = callback
}

// State returns the current playback state
func (b *BGM) State() model.PlayState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// TrackID returns the ID of the loaded or loading track, or an empty string
func (b *BGM) TrackID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.trackID
}

// Load replaces the current track with a new one and starts the asynchronous
// decode. Any current playback stops immediately; the state drops to
// not-loaded until the decode completes. A pending decode for a previous
// track is abandoned by retagging the generation.
func (b *BGM) Load(trackID string, data []byte, mimeType string) {
	b.mu.Lock()
	b.closePlayerLocked()
	b.state = model.PlayStateNotLoaded
	b.trackID = trackID
	generation := uuid.NewString()
	b.generation = generation
	b.mu.Unlock()

	b.notifyState(model.PlayStateNotLoaded)

	go func() {
		player, err := b.backend.NewLoopPlayer(data, mimeType)
		b.finishLoad(generation, player, err)
	}()
}

// finishLoad applies a decode completion. Completions whose generation no
// longer matches are stale and are discarded.
func (b *BGM) finishLoad(generation string, player Player, err error) {
	b.mu.Lock()
	if generation != b.generation {
		b.mu.Unlock()
		if player != nil {
			player.Close()
		}
		log.Printf("Dropped stale load completion (generation %s)", generation)
		return
	}

	if err != nil {
		b.state = model.PlayStateNotLoaded
		b.player = nil
		b.mu.Unlock()

		log.Printf("Track load failed: %v", err)
		b.notifyState(model.PlayStateNotLoaded)
		return
	}

	player.SetVolume(b.volume)
	b.player = player
	b.state = model.PlayStateLoaded
	b.mu.Unlock()

	b.notifyState(model.PlayStateLoaded)
}

// Unload stops playback, releases the player, and abandons any pending load
func (b *BGM) Unload() {
	b.mu.Lock()
	b.closePlayerLocked()
	b.state = model.PlayStateNotLoaded
	b.trackID = ""
	b.generation = uuid.NewString()
	b.mu.Unlock()

	b.notifyState(model.PlayStateNotLoaded)
}

// Toggle flips between playing and loaded-idle. While not loaded it is a
// no-op. A rejected play request keeps the player in loaded-idle and is
// logged; pausing rewinds the track to its start.
func (b *BGM) Toggle() {
	b.mu.Lock()

	switch b.state {
	case model.PlayStateNotLoaded:
		b.mu.Unlock()
		return

	case model.PlayStateLoaded:
		player := b.player
		if err := player.Play(); err != nil {
			b.mu.Unlock()
			log.Printf("Playback rejected: %v", err)
			return
		}
		b.state = model.PlayStatePlaying
		b.mu.Unlock()
		b.notifyState(model.PlayStatePlaying)

	case model.PlayStatePlaying:
		b.pauseAndRewindLocked()
		b.mu.Unlock()
		b.notifyState(model.PlayStateLoaded)
	}
}

// PauseAndRewind stops playback and resets the position to the start. Used
// by the alarm before it rings. No-op unless playing.
func (b *BGM) PauseAndRewind() {
	b.mu.Lock()
	if b.state != model.PlayStatePlaying {
		b.mu.Unlock()
		return
	}
	b.pauseAndRewindLocked()
	b.mu.Unlock()

	b.notifyState(model.PlayStateLoaded)
}

// SetVolume clamps the volume to [0,1], stores it for future loads, and
// applies it to the active player immediately
func (b *BGM) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	b.mu.Lock()
	b.volume = volume
	if b.player != nil {
		b.player.SetVolume(volume)
	}
	b.mu.Unlock()
}

// Volume returns the current volume
func (b *BGM) Volume() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.volume
}

// pauseAndRewindLocked pauses and rewinds the active player. Caller holds mu.
func (b *BGM) pauseAndRewindLocked() {
	b.player.Pause()
	if err := b.player.Rewind(); err != nil {
		log.Printf("Failed to rewind track: %v", err)
	}
	b.state = model.PlayStateLoaded
}

// closePlayerLocked releases the active player if any. Caller holds mu.
func (b *BGM) closePlayerLocked() {
	if b.player == nil {
		return
	}
	b.player.Pause()
	if err := b.player.Close(); err != nil {
		log.Printf("Failed to close player: %v", err)
	}
	b.player = nil
}

// notifyState calls the state callback if set
func (b *BGM) notifyState(state model.PlayState) {
	if b.onState != nil {
		b.onState(state)
	}
}
