package ui

import (
	"io"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/soundclock/soundclock/internal/audio"
	"github.com/soundclock/soundclock/internal/library"
	"github.com/soundclock/soundclock/internal/model"
	"github.com/soundclock/soundclock/internal/timer"
	"github.com/soundclock/soundclock/internal/upload"
)

// RootUI represents the main UI structure
type RootUI struct {
	window  fyne.Window
	engine  *timer.Engine
	bgm     *audio.BGM
	alarm   *audio.Alarm
	library *library.Service

	mode model.TimerMode

	// Snapshot of the catalog backing the list widget
	tracks []model.Track

	// Clock and countdown
	clockLabel     *widget.Label
	countdownLabel *widget.Label

	// Timer controls
	modeRadio    *widget.RadioGroup
	targetEntry  *widget.Entry
	targetBox    *fyne.Container
	hoursEntry   *DurationEntry
	minutesEntry *DurationEntry
	secondsEntry *DurationEntry
	durationBox  *fyne.Container
	startStopBtn *widget.Button

	// BGM controls
	bgmToggleBtn    *widget.Button
	volumeSlider    *widget.Slider
	volumeIconLabel *widget.Label

	// Library
	addTrackBtn *widget.Button
	trackList   *widget.List

	// One validation or playback error at a time
	errorLabel *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, engine *timer.Engine, bgm *audio.BGM, alarm *audio.Alarm, lib *library.Service) *RootUI {
	ui := &RootUI{
		window:  window,
		engine:  engine,
		bgm:     bgm,
		alarm:   alarm,
		library: lib,
		mode:    model.ModeDuration,
		tracks:  lib.Tracks(),
	}

	// Engine callbacks arrive from the ticker goroutine; marshal onto the
	// UI thread before touching widgets.
	engine.SetTickCallback(func(now time.Time) {
		fyne.Do(func() {
			ui.clockLabel.SetText(now.Format(ClockTimeFormat))
		})
	})
	engine.SetCountdownCallback(func(remaining int) {
		fyne.Do(func() {
			ui.countdownLabel.SetText(timer.FormatRemaining(remaining))
		})
	})
	engine.SetExpireCallback(func() {
		ui.alarm.Ring()
		fyne.Do(ui.showIdle)
	})

	bgm.SetStateCallback(func(state model.PlayState) {
		fyne.Do(func() {
			ui.updateBGMButton(state)
			ui.refreshTrackList()
		})
	})

	lib.SetChangeCallback(func() {
		fyne.Do(ui.refreshTrackList)
	})
	lib.SetRemovedCallback(func(trackID string, wasSelected bool) {
		// Playback of an evicted track must stop immediately
		if wasSelected || ui.bgm.TrackID() == trackID {
			ui.bgm.Unload()
		}
	})

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.clockLabel = widget.NewLabelWithStyle(time.Now().Format(ClockTimeFormat),
		fyne.TextAlignCenter, fyne.TextStyle{Bold: true, Monospace: true})

	ui.countdownLabel = widget.NewLabelWithStyle("",
		fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})
	ui.countdownLabel.Hide()

	ui.modeRadio = widget.NewRadioGroup(
		[]string{ModeLabelClockTime, ModeLabelDuration}, ui.onModeChanged)
	ui.modeRadio.Horizontal = true
	ui.modeRadio.Selected = ModeLabelDuration

	ui.targetEntry = widget.NewEntry()
	ui.targetEntry.SetPlaceHolder(TargetPlaceholder)
	ui.targetEntry.OnSubmitted = func(string) {
		ui.onStartStopClick()
	}
	ui.targetBox = container.NewVBox(ui.targetEntry)
	ui.targetBox.Hide()

	ui.hoursEntry = NewDurationEntry(model.MaxHours)
	ui.minutesEntry = NewDurationEntry(model.MaxMinutes)
	ui.secondsEntry = NewDurationEntry(model.MaxSeconds)
	ui.hoursEntry.SetNeighbors(nil, ui.minutesEntry)
	ui.minutesEntry.SetNeighbors(ui.hoursEntry, ui.secondsEntry)
	ui.secondsEntry.SetNeighbors(ui.minutesEntry, nil)
	ui.durationBox = container.NewVBox(container.NewGridWithColumns(3,
		durationColumn(ui.hoursEntry),
		durationColumn(ui.minutesEntry),
		durationColumn(ui.secondsEntry)))

	ui.startStopBtn = widget.NewButton(LabelStart, ui.onStartStopClick)
	ui.startStopBtn.Importance = widget.HighImportance

	ui.bgmToggleBtn = widget.NewButton(IconBGMPlay, ui.onBGMToggleClick)
	ui.bgmToggleBtn.Disable()

	ui.volumeIconLabel = widget.NewLabel(VolumeIcon(ui.bgm.Volume()))
	ui.volumeSlider = widget.NewSlider(0, 1)
	ui.volumeSlider.Step = VolumeSliderStep
	ui.volumeSlider.Value = ui.bgm.Volume()
	ui.volumeSlider.OnChanged = ui.onVolumeChanged

	ui.addTrackBtn = widget.NewButton(LabelAddTrack, ui.onAddTrackClick)

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()

	ui.trackList = widget.NewList(
		func() int {
			return len(ui.tracks)
		},
		func() fyne.CanvasObject {
			row := NewTrackRow()
			row.SetCallbacks(ui.onSelectTrack, ui.onDeleteTrack)
			return row
		},
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < 0 || id >= len(ui.tracks) {
				return
			}
			track := ui.tracks[id]
			row := item.(*TrackRow)
			row.UpdateTrack(track,
				track.ID == ui.library.SelectedID(),
				ui.library.Playable(track.ID))
		},
	)

	volumeRow := container.NewBorder(nil, nil,
		container.NewHBox(ui.bgmToggleBtn, ui.volumeIconLabel), nil,
		ui.volumeSlider)

	timerBox := container.NewVBox(
		ui.clockLabel,
		ui.countdownLabel,
		ui.modeRadio,
		container.NewStack(ui.targetBox, ui.durationBox),
		ui.startStopBtn,
	)

	top := container.NewVBox(
		timerBox,
		widget.NewSeparator(),
		volumeRow,
		ui.errorLabel,
		ui.addTrackBtn,
	)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.trackList))
}

// durationColumn stacks a duration field between its stepper buttons
func durationColumn(entry *DurationEntry) *fyne.Container {
	plus := widget.NewButton("+", func() { entry.Step(1) })
	plus.Importance = widget.LowImportance
	minus := widget.NewButton("-", func() { entry.Step(-1) })
	minus.Importance = widget.LowImportance
	return container.NewVBox(plus, entry, minus)
}

// onModeChanged switches between the time-of-day and duration input forms
func (ui *RootUI) onModeChanged(selected string) {
	if selected == ModeLabelClockTime {
		ui.mode = model.ModeClockTime
		ui.durationBox.Hide()
		ui.targetBox.Show()
	} else {
		ui.mode = model.ModeDuration
		ui.targetBox.Hide()
		ui.durationBox.Show()
	}
	ui.clearError()
}

// onStartStopClick starts or stops the countdown depending on engine state
func (ui *RootUI) onStartStopClick() {
	if ui.engine.Running() {
		ui.engine.Stop()
		ui.showIdle()
		return
	}

	switch ui.mode {
	case model.ModeClockTime:
		target := strings.TrimSpace(ui.targetEntry.Text)
		if err := ui.engine.StartClockTime(target); err != nil {
			ui.showError(err.Error())
			return
		}
	case model.ModeDuration:
		d := model.Duration{
			Hours:   ui.hoursEntry.Value(),
			Minutes: ui.minutesEntry.Value(),
			Seconds: ui.secondsEntry.Value(),
		}
		if !ui.engine.StartDuration(d) {
			// Zero duration: stay idle, nothing to count down
			return
		}
	}

	ui.clearError()
	ui.showRunning()
}

// showRunning puts the timer controls into their running presentation
func (ui *RootUI) showRunning() {
	ui.startStopBtn.SetText(LabelStop)
	ui.startStopBtn.Importance = widget.DangerImportance
	ui.startStopBtn.Refresh()

	ui.countdownLabel.SetText(timer.FormatRemaining(ui.engine.Remaining()))
	ui.countdownLabel.Show()

	ui.modeRadio.Disable()
	ui.targetEntry.Disable()
	ui.hoursEntry.Disable()
	ui.minutesEntry.Disable()
	ui.secondsEntry.Disable()
}

// showIdle returns the timer controls to their idle presentation
func (ui *RootUI) showIdle() {
	ui.startStopBtn.SetText(LabelStart)
	ui.startStopBtn.Importance = widget.HighImportance
	ui.startStopBtn.Refresh()

	ui.countdownLabel.Hide()

	ui.modeRadio.Enable()
	ui.targetEntry.Enable()
	ui.hoursEntry.Enable()
	ui.minutesEntry.Enable()
	ui.secondsEntry.Enable()
}

// onBGMToggleClick flips background music between playing and paused
func (ui *RootUI) onBGMToggleClick() {
	ui.bgm.Toggle()
}

// updateBGMButton reflects the playback state on the toggle button
func (ui *RootUI) updateBGMButton(state model.PlayState) {
	switch state {
	case model.PlayStatePlaying:
		ui.bgmToggleBtn.SetText(IconBGMPause)
		ui.bgmToggleBtn.Enable()
	case model.PlayStateLoaded:
		ui.bgmToggleBtn.SetText(IconBGMPlay)
		ui.bgmToggleBtn.Enable()
	default:
		ui.bgmToggleBtn.SetText(IconBGMPlay)
		ui.bgmToggleBtn.Disable()
	}
}

// onVolumeChanged applies the slider position and updates the tier icon
func (ui *RootUI) onVolumeChanged(value float64) {
	ui.bgm.SetVolume(value)
	ui.volumeIconLabel.SetText(VolumeIcon(value))
}

// onSelectTrack marks a track selected and loads it into the player without
// starting playback
func (ui *RootUI) onSelectTrack(trackID string) {
	track, ok := ui.library.Select(trackID)
	if !ok {
		return
	}

	data, ok := ui.library.Data(trackID)
	if !ok {
		// Metadata-only entry from a previous session
		ui.bgm.Unload()
		ui.showError(track.GetDisplayTitle() + ": " + NotPlayableHint)
		return
	}

	ui.clearError()
	ui.bgm.Load(track.ID, data, track.MIMEType)
}

// onDeleteTrack removes a track from the library
func (ui *RootUI) onDeleteTrack(trackID string) {
	ui.library.Remove(trackID)
}

// onAddTrackClick opens the file picker and imports the chosen audio file
func (ui *RootUI) onAddTrackClick() {
	// A new import attempt supersedes any earlier error message
	ui.clearError()

	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.showError(err.Error())
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		ui.importTrack(reader)
	}, ui.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(upload.AcceptedExtensions()))
	fileDialog.Show()
}

// importTrack validates and adds the picked file, then selects it
func (ui *RootUI) importTrack(reader fyne.URIReadCloser) {
	name := reader.URI().Name()

	data, err := io.ReadAll(io.LimitReader(reader, upload.MaxFileSize+1))
	if err != nil {
		log.Printf("Failed to read %s: %v", name, err)
		ui.showError(err.Error())
		return
	}

	mimeType := reader.URI().MimeType()
	if mimeType == "" {
		mimeType = upload.MIMEForName(name)
	}

	if err := upload.Validate(int64(len(data)), mimeType); err != nil {
		log.Printf("Rejected %s: %v", name, err)
		ui.showError(err.Error())
		return
	}

	track := upload.NewTrack(name, int64(len(data)), mimeType)
	ui.library.Add(track, data)

	ui.clearError()
	ui.library.Select(track.ID)
	ui.bgm.Load(track.ID, data, track.MIMEType)
}

// refreshTrackList re-snapshots the catalog and redraws the list
func (ui *RootUI) refreshTrackList() {
	ui.tracks = ui.library.Tracks()
	ui.trackList.Refresh()
}

// showError displays a single error message, replacing any previous one
func (ui *RootUI) showError(message string) {
	ui.errorLabel.SetText(message)
	ui.errorLabel.Show()
}

// clearError hides the error message
func (ui *RootUI) clearError() {
	ui.errorLabel.SetText("")
	ui.errorLabel.Hide()
}
