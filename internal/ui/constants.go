package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconBGMPlay  = "▶"
	IconBGMPause = "⏸"
	IconDelete   = "🗑"
	IconSelected = "✓"

	// Volume tiers
	IconVolumeMuted = "🔇"
	IconVolumeLow   = "🔉"
	IconVolumeFull  = "🔊"
)

// Labels and text fragments
const (
	LabelStart         = "Start"
	LabelStop          = "Stop"
	LabelAddTrack      = "Add track"
	LabelSelectTrack   = "Use"
	ModeLabelClockTime = "At time"
	ModeLabelDuration  = "For duration"

	TargetPlaceholder  = "HH:MM"
	MiddleDotSeparator = " · "
	NotPlayableHint    = "re-import to play"
)

// Clock display format
const ClockTimeFormat = "15:04:05"

// Volume slider behavior
const (
	VolumeSliderStep   = 0.01
	VolumeLowThreshold = 0.5
)

// Layout sizing (TrackRow / lists)
const (
	TrackRowMinWidth  float32 = 360
	TrackRowMinHeight float32 = 52
)

// VolumeIcon returns the three-tier volume glyph for a level in [0,1]:
// muted at zero, low below the threshold, full otherwise.
func VolumeIcon(volume float64) string {
	if volume <= 0 {
		return IconVolumeMuted
	}
	if volume < VolumeLowThreshold {
		return IconVolumeLow
	}
	return IconVolumeFull
}
