package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/soundclock/soundclock/internal/audio"
	"github.com/soundclock/soundclock/internal/config"
	"github.com/soundclock/soundclock/internal/library"
	"github.com/soundclock/soundclock/internal/timer"
	"github.com/soundclock/soundclock/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.soundclock.app"
	AppName = "SoundClock"

	WindowWidth  = 420
	WindowHeight = 600
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	lib := library.NewService(settings)

	backend := audio.NewEbitenBackend()
	bgm := audio.NewBGM(backend)
	alarm := audio.NewAlarm(backend, bgm)
	if err := alarm.LoadAsset(audio.DefaultAlarmPath); err != nil {
		// The timer still works without the alarm sound
		log.Printf("Failed to load alarm sound: %v", err)
	}

	engine := timer.NewEngine()

	// Create and setup UI
	ui.NewRootUI(myWindow, engine, bgm, alarm, lib)

	engine.StartTicker()
	defer engine.StopTicker()

	myWindow.ShowAndRun()
}
