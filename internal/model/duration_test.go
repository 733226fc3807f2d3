package model

import "testing"

func TestDuration_Clamped(t *testing.T) {
	tests := []struct {
		input    Duration
		expected Duration
	}{
		{Duration{0, 0, 0}, Duration{0, 0, 0}},
		{Duration{23, 59, 59}, Duration{23, 59, 59}},
		{Duration{24, 60, 60}, Duration{23, 59, 59}},
		{Duration{-1, -1, -1}, Duration{0, 0, 0}},
		{Duration{99, 30, 99}, Duration{23, 30, 59}},
	}

	for _, test := range tests {
		result := test.input.Clamped()
		if result != test.expected {
			t.Errorf("Duration%v.Clamped() = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestDuration_TotalSeconds(t *testing.T) {
	tests := []struct {
		input    Duration
		expected int
	}{
		{Duration{0, 0, 0}, 0},
		{Duration{0, 0, 1}, 1},
		{Duration{0, 1, 30}, 90},
		{Duration{1, 0, 0}, 3600},
		{Duration{23, 59, 59}, 86399},
	}

	for _, test := range tests {
		result := test.input.TotalSeconds()
		if result != test.expected {
			t.Errorf("Duration%v.TotalSeconds() = %d, expected %d", test.input, result, test.expected)
		}
	}
}

func TestDuration_IsZero(t *testing.T) {
	if !(Duration{}).IsZero() {
		t.Error("Expected zero duration to report IsZero")
	}
	if (Duration{Seconds: 1}).IsZero() {
		t.Error("Expected non-zero duration to not report IsZero")
	}
}

func TestDuration_Format(t *testing.T) {
	tests := []struct {
		input    Duration
		expected string
	}{
		{Duration{0, 0, 0}, "00:00:00"},
		{Duration{1, 2, 3}, "01:02:03"},
		{Duration{23, 59, 59}, "23:59:59"},
	}

	for _, test := range tests {
		result := test.input.Format()
		if result != test.expected {
			t.Errorf("Duration%v.Format() = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestShiftDigit(t *testing.T) {
	tests := []struct {
		value   int
		digit   int
		max     int
		want    int
		advance bool
	}{
		// First digit entered into an empty field
		{0, 5, 59, 5, false},
		{0, 0, 59, 0, false},
		// Second digit shifts the first left
		{5, 9, 59, 59, true},
		{1, 2, 23, 12, true},
		// Overflow clamps to the field maximum and advances
		{5, 0, 23, 23, true},
		{9, 9, 59, 59, true},
		// Rolling entry wraps at two digits
		{59, 3, 59, 59, true},
		{23, 5, 59, 35, true},
	}

	for _, test := range tests {
		v, advance := ShiftDigit(test.value, test.digit, test.max)
		if v != test.want || advance != test.advance {
			t.Errorf("ShiftDigit(%d, %d, %d) = (%d, %v), expected (%d, %v)",
				test.value, test.digit, test.max, v, advance, test.want, test.advance)
		}
	}
}
