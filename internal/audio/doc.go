package audio

// Package audio implements background music playback and the one-shot alarm
// sound on top of the Ebitengine audio stack. The BGM player is an explicit
// state machine (not-loaded, loaded, playing) fed by asynchronous decode
// completions tagged with generation IDs.
