package library

// Package library manages the ordered catalog of imported background music
// tracks: insertion-ordered listing, selection, removal, in-session audio
// bytes, and metadata persistence through a TrackStore.
