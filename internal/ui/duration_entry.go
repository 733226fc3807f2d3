package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/soundclock/soundclock/internal/model"
)

// DurationEntry is a two-digit numeric field for one duration component
// (hours, minutes, or seconds). Digits shift in from the right like a numeric
// keypad: typing "1" then "5" yields 15. Once the shifted value overflows two
// digits or the field maximum, focus advances to the next field so a full
// duration can be typed without touching the mouse. Backspace shifts digits
// out; backspace on an empty field retreats to the previous one.
type DurationEntry struct {
	widget.Entry

	max   int
	value int

	prev *DurationEntry
	next *DurationEntry

	onChange func(value int)
}

// NewDurationEntry creates a duration field capped at max
func NewDurationEntry(max int) *DurationEntry {
	e := &DurationEntry{max: max}
	e.ExtendBaseWidget(e)
	e.Text = e.formatValue()
	return e
}

// SetNeighbors wires the focus chain. Either side may be nil; a nil next
// means typing past this field just drops focus.
func (e *DurationEntry) SetNeighbors(prev, next *DurationEntry) {
	e.prev = prev
	e.next = next
}

// SetOnChange sets the callback invoked whenever the value changes
func (e *DurationEntry) SetOnChange(callback func(value int)) {
	e.onChange = callback
}

// Value returns the current component value
func (e *DurationEntry) Value() int {
	return e.value
}

// SetValue clamps the value to [0,max] and refreshes the display
func (e *DurationEntry) SetValue(value int) {
	if value < 0 {
		value = 0
	}
	if value > e.max {
		value = e.max
	}
	if value == e.value {
		e.Entry.SetText(e.formatValue())
		return
	}
	e.value = value
	e.Entry.SetText(e.formatValue())
	if e.onChange != nil {
		e.onChange(e.value)
	}
}

// Step adjusts the value by delta, clamping at the bounds. No-op while the
// field is disabled, so steppers cannot edit a running timer.
func (e *DurationEntry) Step(delta int) {
	if e.Disabled() {
		return
	}
	e.SetValue(e.value + delta)
}

// TypedRune accepts digits only and applies the shift-in rule
func (e *DurationEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		return
	}

	value, advance := model.ShiftDigit(e.value, int(r-'0'), e.max)
	e.SetValue(value)

	if advance {
		if e.next != nil {
			e.focusOn(e.next)
		} else {
			e.blur()
		}
	}
}

// TypedKey handles backspace; everything else falls through to Entry
func (e *DurationEntry) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyBackspace, fyne.KeyDelete:
		if e.value == 0 {
			if e.prev != nil {
				e.focusOn(e.prev)
			}
			return
		}
		e.SetValue(e.value / 10)
	case fyne.KeyUp:
		e.Step(1)
	case fyne.KeyDown:
		e.Step(-1)
	case fyne.KeyReturn, fyne.KeyEnter, fyne.KeyEscape:
		e.blur()
	}
}

// TypedShortcut swallows paste and other shortcuts that would bypass the
// digit filter
func (e *DurationEntry) TypedShortcut(shortcut fyne.Shortcut) {}

func (e *DurationEntry) formatValue() string {
	return fmt.Sprintf("%02d", e.value)
}

func (e *DurationEntry) focusOn(target *DurationEntry) {
	canvas := fyne.CurrentApp().Driver().CanvasForObject(e)
	if canvas == nil {
		return
	}
	canvas.Focus(target)
}

func (e *DurationEntry) blur() {
	canvas := fyne.CurrentApp().Driver().CanvasForObject(e)
	if canvas == nil {
		return
	}
	canvas.Unfocus()
}
