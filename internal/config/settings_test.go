package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/soundclock/soundclock/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLoadTracks_Empty(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	tracks := settings.LoadTracks()
	if len(tracks) != 0 {
		t.Errorf("Expected empty track index, got %d entries", len(tracks))
	}
}

func TestSaveAndLoadTracks(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	uploaded := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	saved := []model.Track{
		{
			ID:           "track-1",
			Title:        "rainfall",
			Composer:     model.DefaultComposer,
			SourceName:   "mem://track-1",
			OriginalName: "rainfall.mp3",
			Size:         2048,
			MIMEType:     "audio/mpeg",
			UploadedAt:   uploaded,
		},
		{
			ID:           "track-2",
			Title:        "waves",
			Composer:     model.DefaultComposer,
			SourceName:   "mem://track-2",
			OriginalName: "waves.ogg",
			Size:         4096,
			MIMEType:     "audio/ogg",
			UploadedAt:   uploaded,
		},
	}

	settings.SaveTracks(saved)

	loaded := settings.LoadTracks()
	if len(loaded) != len(saved) {
		t.Fatalf("Expected %d tracks, got %d", len(saved), len(loaded))
	}

	for i, track := range loaded {
		if track.ID != saved[i].ID {
			t.Errorf("Track %d: expected ID %s, got %s", i, saved[i].ID, track.ID)
		}
		if track.Title != saved[i].Title {
			t.Errorf("Track %d: expected title %s, got %s", i, saved[i].Title, track.Title)
		}
		if track.MIMEType != saved[i].MIMEType {
			t.Errorf("Track %d: expected MIME type %s, got %s", i, saved[i].MIMEType, track.MIMEType)
		}
		if !track.UploadedAt.Equal(saved[i].UploadedAt) {
			t.Errorf("Track %d: expected upload time %v, got %v", i, saved[i].UploadedAt, track.UploadedAt)
		}
	}
}

func TestLoadTracks_Malformed(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	app.Preferences().SetString(KeyBGMTracks, "{not valid json")

	tracks := settings.LoadTracks()
	if len(tracks) != 0 {
		t.Errorf("Expected malformed index to degrade to empty, got %d entries", len(tracks))
	}
}

func TestSaveTracks_PreservesOrder(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	saved := []model.Track{
		{ID: "track-3", Title: "c"},
		{ID: "track-1", Title: "a"},
		{ID: "track-2", Title: "b"},
	}
	settings.SaveTracks(saved)

	loaded := settings.LoadTracks()
	if len(loaded) != 3 {
		t.Fatalf("Expected 3 tracks, got %d", len(loaded))
	}
	for i, track := range loaded {
		if track.ID != saved[i].ID {
			t.Errorf("Position %d: expected %s, got %s", i, saved[i].ID, track.ID)
		}
	}
}
