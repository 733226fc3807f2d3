package timer

// Package timer implements the countdown engine: a 1-second ticker that
// drives the clock display, deadline computation for both time-of-day and
// duration targets, and expiry detection with a single alarm callback.
