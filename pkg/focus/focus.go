// Package focus implements the countdown state machine for timed study
// sessions. Remaining time is always derived from the wall clock and the
// captured end instant, so missed ticks never skew the countdown, and the
// completion transition fires exactly once per run.
package focus

import (
	"errors"
	"fmt"
	"time"

	"tableflip.dev/lifeos/pkg/calendar"
	"tableflip.dev/lifeos/pkg/entity"
)

// DefaultMinutes is the initial selected duration.
const DefaultMinutes = 25

// State is the controller lifecycle position.
type State int

const (
	Idle State = iota
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "idle"
	}
}

var (
	ErrNotIdle     = errors.New("focus: timer not idle")
	ErrRunning     = errors.New("focus: timer running")
	ErrBadDuration = errors.New("focus: minutes must be positive")
)

// Sink receives the study-minutes delta and session record emitted when a
// run completes. The entity store satisfies this.
type Sink interface {
	RecordStudyMinutes(iso string, minutes int) error
	AppendFocusSession(rec *entity.FocusSession)
}

// Controller drives one timer at a time: Idle -> Running -> Completed ->
// (Reset) -> Idle. Manual Stop from Running discards the session entirely.
type Controller struct {
	state   State
	minutes int
	end     time.Time
	sink    Sink
}

// New returns an idle controller with the default duration selected.
func New(sink Sink) *Controller {
	return &Controller{minutes: DefaultMinutes, sink: sink}
}

func (c *Controller) State() State { return c.state }
func (c *Controller) Minutes() int { return c.minutes }

// SetMinutes changes the selected duration. Rejected while running.
func (c *Controller) SetMinutes(m int) error {
	if c.state == Running {
		return ErrRunning
	}
	if m <= 0 {
		return ErrBadDuration
	}
	c.minutes = m
	return nil
}

// Start captures the end instant and begins the countdown. Only valid from
// Idle; a completed run must be acknowledged with Reset first.
func (c *Controller) Start(now time.Time) error {
	if c.state != Idle {
		return ErrNotIdle
	}
	c.end = now.Add(time.Duration(c.minutes) * time.Minute)
	c.state = Running
	return nil
}

// Stop abandons a running session: no minutes are logged, no record is
// appended. A no-op outside Running.
func (c *Controller) Stop() {
	if c.state != Running {
		return
	}
	c.state = Idle
	c.end = time.Time{}
}

// Reset acknowledges a completed run and returns to Idle without re-emitting
// anything. A no-op outside Completed.
func (c *Controller) Reset() {
	if c.state != Completed {
		return
	}
	c.state = Idle
	c.end = time.Time{}
}

// Remaining is a pure function of the wall clock and the captured end
// instant, clamped at zero. Idle shows the full selected duration.
func (c *Controller) Remaining(now time.Time) time.Duration {
	switch c.state {
	case Running:
		left := c.end.Sub(now)
		if left < 0 {
			return 0
		}
		return left
	case Completed:
		return 0
	default:
		return time.Duration(c.minutes) * time.Minute
	}
}

// Tick advances the state machine against the wall clock. On natural expiry
// it atomically logs the selected minutes to today's study log and appends
// one FocusSession record, then reports completed=true. The Running state
// check makes the transition idempotent: repeated ticks after expiry, or
// stray ticks after a stop, are no-ops.
func (c *Controller) Tick(now time.Time) (bool, error) {
	if c.state != Running || now.Before(c.end) {
		return false, nil
	}
	c.state = Completed
	day := calendar.Normalize(now)
	if c.sink == nil {
		return true, errors.New("focus: no sink configured")
	}
	if err := c.sink.RecordStudyMinutes(day.ISO(), c.minutes); err != nil {
		return true, err
	}
	c.sink.AppendFocusSession(entity.NewFocusSession(day, c.minutes, entity.Timestamp{Time: now}))
	return true, nil
}

// FormatClock renders a countdown as MM:SS, flooring to whole seconds.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
