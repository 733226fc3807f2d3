package timer

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/soundclock/soundclock/internal/model"
)

// TickInterval is the cadence of the clock ticker
const TickInterval = time.Second

// ClockTimeLayout is the accepted format for time-of-day targets
const ClockTimeLayout = "15:04"

// Engine owns the countdown state machine: idle (no deadline) or running
// (deadline set). Its ticker goroutine reports the current time on every tick
// and, while running, the remaining whole seconds until the deadline. When
// the remaining time reaches zero the expiry callback fires exactly once and
// the engine returns to idle.
type Engine struct {
	mu       sync.Mutex
	deadline time.Time
	running  bool

	stopCh chan struct{}
	doneCh chan struct{}

	now func() time.Time

	onTick      func(now time.Time) // every tick, clock display
	onCountdown func(remaining int) // every tick while running
	onExpire    func()              // once per run, at expiry
}

// NewEngine creates a new countdown engine in the idle state
func NewEngine() *Engine {
	return &Engine{
		now: time.Now,
	}
}

// SetTickCallback sets the callback invoked with the current time on every tick
func (e *Engine) SetTickCallback(callback func(now time.Time)) {
	e.onTick = callback
}

// SetCountdownCallback sets the callback invoked with the remaining seconds
// on every tick while a timer is running
func (e *Engine) SetCountdownCallback(callback func(remaining int)) {
	e.onCountdown = callback
}

// SetExpireCallback sets the callback invoked once when a running timer expires
func (e *Engine) SetExpireCallback(callback func()) {
	e.onExpire = callback
}

// StartTicker starts the 1-second ticker goroutine. Calling it while the
// ticker is already running does nothing.
func (e *Engine) StartTicker() {
	e.mu.Lock()
	if e.stopCh != nil {
		e.mu.Unlock()
		return
	}
	e.stopCh = make(chan struct{})
	e.doneCh = make(chan struct{})
	stopCh, doneCh := e.stopCh, e.doneCh
	e.mu.Unlock()

	go e.run(stopCh, doneCh)
}

// StopTicker stops the ticker goroutine and waits for it to finish. Intended
// for widget teardown only; it does not clear a pending deadline.
func (e *Engine) StopTicker() {
	e.mu.Lock()
	if e.stopCh == nil {
		e.mu.Unlock()
		return
	}
	close(e.stopCh)
	doneCh := e.doneCh
	e.stopCh = nil
	e.doneCh = nil
	e.mu.Unlock()

	<-doneCh
}

// run is the ticker loop
func (e *Engine) run(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	ticker := time.NewTicker(TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

// tick advances the clock display and performs the expiry check
func (e *Engine) tick() {
	now := e.now()

	if e.onTick != nil {
		e.onTick(now)
	}

	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	remaining := remainingSeconds(e.deadline, now)
	expired := remaining == 0
	if expired {
		// Back to idle before the callbacks run, so a re-entrant Start or
		// Stop from a callback sees a clean state.
		e.running = false
		e.deadline = time.Time{}
	}
	e.mu.Unlock()

	if e.onCountdown != nil {
		e.onCountdown(remaining)
	}
	if expired {
		log.Printf("Timer expired")
		if e.onExpire != nil {
			e.onExpire()
		}
	}
}

// StartDuration starts a countdown of the given duration. A zero duration is
// a no-op and the engine stays idle; the return value reports whether the
// timer actually started.
func (e *Engine) StartDuration(d model.Duration) bool {
	d = d.Clamped()
	if d.IsZero() {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.deadline = e.now().Add(time.Duration(d.TotalSeconds()) * time.Second)
	e.running = true
	log.Printf("Timer started for %s, deadline %s", d.Format(), e.deadline.Format(time.RFC3339))
	return true
}

// StartClockTime starts a countdown to the given "HH:MM" time of day. If that
// time has already passed today the deadline rolls forward to tomorrow, so a
// computed deadline is always in the future.
func (e *Engine) StartClockTime(target string) error {
	parsed, err := time.Parse(ClockTimeLayout, target)
	if err != nil {
		return fmt.Errorf("invalid target time %q: %w", target, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	deadline := time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	if !deadline.After(now) {
		deadline = deadline.AddDate(0, 0, 1)
	}

	e.deadline = deadline
	e.running = true
	log.Printf("Timer started for %s, deadline %s", target, deadline.Format(time.RFC3339))
	return nil
}

// Stop clears the deadline unconditionally and returns the engine to idle.
// Idempotent.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.running = false
	e.deadline = time.Time{}
}

// Running returns whether a countdown is in progress
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Deadline returns the current deadline, or the zero time when idle
func (e *Engine) Deadline() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.deadline
}

// Remaining returns the whole seconds left until the deadline, or 0 when idle
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return 0
	}
	return remainingSeconds(e.deadline, e.now())
}

// remainingSeconds computes the non-negative whole seconds until deadline
func remainingSeconds(deadline, now time.Time) int {
	remaining := int(deadline.Sub(now) / time.Second)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatRemaining formats a remaining second count as zero-padded "HH:MM:SS"
func FormatRemaining(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
}
