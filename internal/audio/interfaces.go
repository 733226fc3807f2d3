package audio

// Player is a single playable audio stream
type Player interface {
	// Play begins or resumes playback. The error mirrors platform playback
	// rejection; on success playback continues until Pause.
	Play() error
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// Backend decodes raw audio bytes into playable streams
type Backend interface {
	// NewLoopPlayer decodes the bytes and wraps them in a continuously
	// looping player for background music
	NewLoopPlayer(data []byte, mimeType string) (Player, error)

	// NewPlayer decodes the bytes into a one-shot player for the alarm
	NewPlayer(data []byte, mimeType string) (Player, error)
}
