package model

// PlayState represents the state of the background music player
type PlayState string

const (
	// PlayStateNotLoaded means no playable track is loaded
	PlayStateNotLoaded PlayState = "NotLoaded"

	// PlayStateLoaded means a track is decoded and ready to play
	PlayStateLoaded PlayState = "Loaded"

	// PlayStatePlaying means a track is currently playing
	PlayStatePlaying PlayState = "Playing"
)

// String returns the string representation of PlayState
func (ps PlayState) String() string {
	return string(ps)
}

// IsLoaded returns true if a playable track is available
func (ps PlayState) IsLoaded() bool {
	return ps == PlayStateLoaded || ps == PlayStatePlaying
}

// IsPlaying returns true if playback is in progress
func (ps PlayState) IsPlaying() bool {
	return ps == PlayStatePlaying
}

// TimerMode selects how the countdown deadline is computed
type TimerMode string

const (
	// ModeClockTime targets a wall-clock time of day ("HH:MM")
	ModeClockTime TimerMode = "ClockTime"

	// ModeDuration counts down a fixed hours/minutes/seconds span
	ModeDuration TimerMode = "Duration"
)
