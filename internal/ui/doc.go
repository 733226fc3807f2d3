package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the timer engine, the background music player,
// and the track library, and renders the clock, the countdown, and the track list.
