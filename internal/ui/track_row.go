package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/soundclock/soundclock/internal/model"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

// TrackRow represents a compact track row widget in the library list
type TrackRow struct {
	widget.BaseWidget

	track    model.Track
	selected bool
	playable bool

	// UI components
	titleLabel *widget.Label
	metaLabel  *widget.Label

	// Action buttons
	selectBtn *widget.Button
	deleteBtn *widget.Button

	// Callbacks
	onSelect func(trackID string)
	onDelete func(trackID string)
}

// NewTrackRow creates a new track row widget
func NewTrackRow() *TrackRow {
	tr := &TrackRow{}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

// SetCallbacks sets the action callbacks
func (tr *TrackRow) SetCallbacks(onSelect, onDelete func(trackID string)) {
	tr.onSelect = onSelect
	tr.onDelete = onDelete
}

// UpdateTrack updates the row with new track data
func (tr *TrackRow) UpdateTrack(track model.Track, selected, playable bool) {
	tr.track = track
	tr.selected = selected
	tr.playable = playable
	tr.updateFromTrack()
	tr.Refresh()
}

// createUI creates the UI components
func (tr *TrackRow) createUI() {
	tr.titleLabel = widget.NewLabel("")
	tr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	tr.titleLabel.Alignment = fyne.TextAlignLeading

	tr.metaLabel = widget.NewLabel("")
	tr.metaLabel.Alignment = fyne.TextAlignLeading

	tr.selectBtn = widget.NewButton(LabelSelectTrack, func() {
		if tr.onSelect != nil {
			tr.onSelect(tr.track.ID)
		}
	})
	tr.selectBtn.Importance = widget.MediumImportance

	tr.deleteBtn = widget.NewButton(IconDelete, func() {
		if tr.onDelete != nil {
			tr.onDelete(tr.track.ID)
		}
	})
	tr.deleteBtn.Importance = widget.MediumImportance
}

// updateFromTrack updates UI components based on track data
func (tr *TrackRow) updateFromTrack() {
	title := tr.track.GetDisplayTitle()
	if tr.selected {
		title = IconSelected + " " + title
	}
	tr.titleLabel.SetText(title)

	meta := tr.track.GetDisplayComposer() + MiddleDotSeparator + formatFileSize(tr.track.Size)
	if !tr.playable {
		meta += MiddleDotSeparator + NotPlayableHint
	}
	tr.metaLabel.SetText(meta)

	if tr.selected {
		tr.selectBtn.Importance = widget.HighImportance
		tr.selectBtn.Disable()
	} else {
		tr.selectBtn.Importance = widget.MediumImportance
		tr.selectBtn.Enable()
	}
	tr.selectBtn.Refresh()
}

// CreateRenderer creates the widget renderer
func (tr *TrackRow) CreateRenderer() fyne.WidgetRenderer {
	return &trackRowRenderer{trackRow: tr}
}

// trackRowRenderer renders the track row widget
type trackRowRenderer struct {
	trackRow *TrackRow
	layout   *fyne.Container
}

// Layout arranges the components
func (r *trackRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < TrackRowMinWidth {
		size.Width = TrackRowMinWidth
	}
	if size.Height < TrackRowMinHeight {
		size.Height = TrackRowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *trackRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(TrackRowMinWidth, TrackRowMinHeight)
}

// Refresh refreshes the renderer
func (r *trackRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *trackRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *trackRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *trackRowRenderer) createLayout() {
	tr := r.trackRow

	info := container.NewVBox(tr.titleLabel, tr.metaLabel)
	actions := container.NewHBox(tr.selectBtn, tr.deleteBtn)

	// Buttons pinned to the right edge, text taking the remaining width
	r.layout = container.NewBorder(nil, nil, nil, actions, info)
}
