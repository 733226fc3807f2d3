package model

import "fmt"

// Field bounds for duration input
const (
	MaxHours   = 23
	MaxMinutes = 59
	MaxSeconds = 59
)

// Duration is the user-entered countdown span. Fields are clamped to their
// bounds on every mutation path, so a Duration obtained through Clamped or
// the UI entries is always valid.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// Clamped returns the duration with every field forced into its valid range
func (d Duration) Clamped() Duration {
	return Duration{
		Hours:   clampField(d.Hours, MaxHours),
		Minutes: clampField(d.Minutes, MaxMinutes),
		Seconds: clampField(d.Seconds, MaxSeconds),
	}
}

// TotalSeconds returns the duration converted to whole seconds
func (d Duration) TotalSeconds() int {
	return d.Hours*3600 + d.Minutes*60 + d.Seconds
}

// IsZero returns true when all fields are zero
func (d Duration) IsZero() bool {
	return d.Hours == 0 && d.Minutes == 0 && d.Seconds == 0
}

// Format returns the duration as zero-padded "HH:MM:SS"
func (d Duration) Format() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// ShiftDigit implements keypad-style rolling entry for one bounded field:
// the previous value shifts left, the new digit enters on the right, and the
// result wraps at two digits before clamping to the field maximum. advance
// reports that the field is complete (two digits entered, or the maximum was
// exceeded) and focus should move to the next field.
func ShiftDigit(value, digit, max int) (v int, advance bool) {
	v = (value*10 + digit) % 100
	advance = v >= 10 || v > max
	if v > max {
		v = max
	}
	return v, advance
}

func clampField(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
