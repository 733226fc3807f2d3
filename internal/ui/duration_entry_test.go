package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"

	"github.com/soundclock/soundclock/internal/model"
)

// newEntryChain builds the hours/minutes/seconds fields attached to a test
// canvas so focus traversal can be observed
func newEntryChain(t *testing.T) (*DurationEntry, *DurationEntry, *DurationEntry, fyne.Window) {
	t.Helper()
	test.NewApp()

	hours := NewDurationEntry(model.MaxHours)
	minutes := NewDurationEntry(model.MaxMinutes)
	seconds := NewDurationEntry(model.MaxSeconds)
	hours.SetNeighbors(nil, minutes)
	minutes.SetNeighbors(hours, seconds)
	seconds.SetNeighbors(minutes, nil)

	window := test.NewWindow(container.NewGridWithColumns(3, hours, minutes, seconds))
	return hours, minutes, seconds, window
}

func TestDurationEntry_DigitsShiftIn(t *testing.T) {
	_, minutes, _, window := newEntryChain(t)
	defer window.Close()

	minutes.TypedRune('1')
	if minutes.Value() != 1 {
		t.Errorf("Expected value 1 after typing '1', got %d", minutes.Value())
	}
	minutes.TypedRune('5')
	if minutes.Value() != 15 {
		t.Errorf("Expected value 15 after typing '15', got %d", minutes.Value())
	}
	if minutes.Text != "15" {
		t.Errorf("Expected display \"15\", got %q", minutes.Text)
	}
}

func TestDurationEntry_NonDigitIgnored(t *testing.T) {
	_, minutes, _, window := newEntryChain(t)
	defer window.Close()

	minutes.TypedRune('a')
	minutes.TypedRune('-')
	if minutes.Value() != 0 {
		t.Errorf("Expected non-digit input to be ignored, got %d", minutes.Value())
	}
}

func TestDurationEntry_OverflowClampsAndAdvances(t *testing.T) {
	hours, minutes, _, window := newEntryChain(t)
	defer window.Close()

	window.Canvas().Focus(hours)

	// 2 then 9 overflows the 23 hour cap
	hours.TypedRune('2')
	hours.TypedRune('9')

	if hours.Value() != model.MaxHours {
		t.Errorf("Expected hours clamped to %d, got %d", model.MaxHours, hours.Value())
	}
	if window.Canvas().Focused() != minutes {
		t.Error("Expected focus to advance to the minutes field")
	}
}

func TestDurationEntry_TwoDigitValueAdvances(t *testing.T) {
	_, minutes, seconds, window := newEntryChain(t)
	defer window.Close()

	window.Canvas().Focus(minutes)

	minutes.TypedRune('1')
	minutes.TypedRune('5')

	if minutes.Value() != 15 {
		t.Errorf("Expected minutes 15, got %d", minutes.Value())
	}
	if window.Canvas().Focused() != seconds {
		t.Error("Expected focus to advance to the seconds field")
	}
}

func TestDurationEntry_LastFieldBlursOnAdvance(t *testing.T) {
	_, _, seconds, window := newEntryChain(t)
	defer window.Close()

	window.Canvas().Focus(seconds)

	seconds.TypedRune('3')
	seconds.TypedRune('0')

	if seconds.Value() != 30 {
		t.Errorf("Expected seconds 30, got %d", seconds.Value())
	}
	if window.Canvas().Focused() == seconds {
		t.Error("Expected the last field to drop focus after a full value")
	}
}

func TestDurationEntry_BackspaceShiftsOut(t *testing.T) {
	_, minutes, _, window := newEntryChain(t)
	defer window.Close()

	minutes.SetValue(15)
	minutes.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	if minutes.Value() != 1 {
		t.Errorf("Expected 1 after backspace on 15, got %d", minutes.Value())
	}
	minutes.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	if minutes.Value() != 0 {
		t.Errorf("Expected 0 after second backspace, got %d", minutes.Value())
	}
}

func TestDurationEntry_BackspaceOnEmptyRetreats(t *testing.T) {
	hours, minutes, _, window := newEntryChain(t)
	defer window.Close()

	window.Canvas().Focus(minutes)

	minutes.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})

	if window.Canvas().Focused() != hours {
		t.Error("Expected focus to retreat to the hours field")
	}
}

func TestDurationEntry_ArrowKeysStep(t *testing.T) {
	_, minutes, _, window := newEntryChain(t)
	defer window.Close()

	minutes.TypedKey(&fyne.KeyEvent{Name: fyne.KeyUp})
	if minutes.Value() != 1 {
		t.Errorf("Expected 1 after arrow up, got %d", minutes.Value())
	}

	minutes.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDown})
	minutes.TypedKey(&fyne.KeyEvent{Name: fyne.KeyDown})
	if minutes.Value() != 0 {
		t.Errorf("Expected step down to clamp at 0, got %d", minutes.Value())
	}
}

func TestDurationEntry_SetValueClamps(t *testing.T) {
	_, minutes, _, window := newEntryChain(t)
	defer window.Close()

	minutes.SetValue(75)
	if minutes.Value() != model.MaxMinutes {
		t.Errorf("Expected clamp to %d, got %d", model.MaxMinutes, minutes.Value())
	}
	minutes.SetValue(-3)
	if minutes.Value() != 0 {
		t.Errorf("Expected clamp to 0, got %d", minutes.Value())
	}
	if minutes.Text != "00" {
		t.Errorf("Expected zero-padded display \"00\", got %q", minutes.Text)
	}
}

func TestDurationEntry_OnChangeFires(t *testing.T) {
	_, minutes, _, window := newEntryChain(t)
	defer window.Close()

	var got []int
	minutes.SetOnChange(func(value int) { got = append(got, value) })

	minutes.TypedRune('7')
	minutes.SetValue(7) // unchanged value must not re-fire

	if len(got) != 1 || got[0] != 7 {
		t.Errorf("Expected a single change notification for 7, got %v", got)
	}
}
