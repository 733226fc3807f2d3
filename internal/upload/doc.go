package upload

// Package upload gates audio files into the track library: size and format
// validation, MIME type detection for picked files, and construction of new
// track metadata from an admitted file.
