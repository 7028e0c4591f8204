package focus

import (
	"testing"
	"time"

	"tableflip.dev/lifeos/pkg/entity"
)

type recordingSink struct {
	minutes  map[string]int
	sessions []*entity.FocusSession
}

func newRecordingSink() *recordingSink {
	return &recordingSink{minutes: map[string]int{}}
}

func (r *recordingSink) RecordStudyMinutes(iso string, minutes int) error {
	r.minutes[iso] += minutes
	return nil
}

func (r *recordingSink) AppendFocusSession(rec *entity.FocusSession) {
	r.sessions = append(r.sessions, rec)
}

func TestCompletionFiresExactlyOnce(t *testing.T) {
	sink := newRecordingSink()
	c := New(sink)
	if err := c.SetMinutes(25); err != nil {
		t.Fatalf("SetMinutes: %v", err)
	}

	start := time.Date(2026, time.August, 29, 9, 0, 0, 0, time.Local)
	if err := c.Start(start); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// Ticks before the deadline do nothing.
	if done, _ := c.Tick(start.Add(10 * time.Minute)); done {
		t.Fatalf("completed before deadline")
	}

	after := start.Add(26 * time.Minute)
	done, err := c.Tick(after)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !done {
		t.Fatalf("expected completion")
	}
	if c.State() != Completed {
		t.Fatalf("state = %v, want Completed", c.State())
	}

	// A second tick after completion must not double-log.
	if done, _ := c.Tick(after.Add(time.Second)); done {
		t.Fatalf("completion fired twice")
	}

	iso := "2026-08-29"
	if sink.minutes[iso] != 25 {
		t.Errorf("study minutes = %d, want exactly 25", sink.minutes[iso])
	}
	if len(sink.sessions) != 1 {
		t.Fatalf("sessions = %d, want exactly 1", len(sink.sessions))
	}
	s := sink.sessions[0]
	if s.ISODate != iso || s.Minutes != 25 {
		t.Errorf("unexpected session record: %+v", s)
	}
	if !s.EndedAt.Equal(after) {
		t.Errorf("endedAt = %v, want tick time", s.EndedAt)
	}
}

func TestStopDiscardsSession(t *testing.T) {
	sink := newRecordingSink()
	c := New(sink)
	start := time.Now()
	if err := c.Start(start); err != nil {
		t.Fatalf("Start: %v", err)
	}
	c.Stop()
	if c.State() != Idle {
		t.Fatalf("state = %v, want Idle", c.State())
	}

	// A stray tick scheduled before the stop must be a no-op.
	if done, _ := c.Tick(start.Add(time.Hour)); done {
		t.Fatalf("stray tick after stop completed the run")
	}
	if len(sink.sessions) != 0 || len(sink.minutes) != 0 {
		t.Errorf("abandoned session produced records")
	}
}

func TestSetMinutesRejectedWhileRunning(t *testing.T) {
	c := New(newRecordingSink())
	if err := c.Start(time.Now()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.SetMinutes(50); err != ErrRunning {
		t.Errorf("expected ErrRunning, got %v", err)
	}
	if c.Minutes() != DefaultMinutes {
		t.Errorf("minutes changed while running")
	}
}

func TestSetMinutesValidation(t *testing.T) {
	c := New(newRecordingSink())
	for _, m := range []int{0, -5} {
		if err := c.SetMinutes(m); err != ErrBadDuration {
			t.Errorf("SetMinutes(%d): expected ErrBadDuration, got %v", m, err)
		}
	}
}

func TestStartOnlyFromIdle(t *testing.T) {
	c := New(newRecordingSink())
	now := time.Now()
	if err := c.Start(now); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := c.Start(now); err != ErrNotIdle {
		t.Errorf("expected ErrNotIdle while running, got %v", err)
	}

	c.Tick(now.Add(time.Hour))
	if err := c.Start(now); err != ErrNotIdle {
		t.Errorf("expected ErrNotIdle while completed, got %v", err)
	}
	c.Reset()
	if c.State() != Idle {
		t.Fatalf("Reset should return to Idle")
	}
	if err := c.Start(now); err != nil {
		t.Errorf("Start after Reset: %v", err)
	}
}

func TestResetDoesNotReEmit(t *testing.T) {
	sink := newRecordingSink()
	c := New(sink)
	now := time.Now()
	c.Start(now)
	c.Tick(now.Add(26 * time.Minute))
	c.Reset()
	if len(sink.sessions) != 1 {
		t.Errorf("Reset changed the emitted records: %d", len(sink.sessions))
	}
	if got := c.Remaining(now); got != 25*time.Minute {
		t.Errorf("remaining after reset = %v, want full duration", got)
	}
}

func TestRemainingIsPure(t *testing.T) {
	c := New(newRecordingSink())
	start := time.Date(2026, time.August, 29, 9, 0, 0, 0, time.Local)
	c.Start(start)

	// Remaining depends only on the wall clock, not on tick cadence.
	if got := c.Remaining(start.Add(10 * time.Minute)); got != 15*time.Minute {
		t.Errorf("remaining = %v, want 15m", got)
	}
	if got := c.Remaining(start.Add(40 * time.Minute)); got != 0 {
		t.Errorf("remaining past deadline = %v, want 0", got)
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{25 * time.Minute, "25:00"},
		{90 * time.Second, "01:30"},
		{1500 * time.Millisecond, "00:01"},
		{0, "00:00"},
		{-time.Second, "00:00"},
		{2 * time.Hour, "120:00"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.d); got != tc.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
