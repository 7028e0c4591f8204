package store

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/lifeos/pkg/calendar"
	"tableflip.dev/lifeos/pkg/entity"
	"tableflip.dev/lifeos/pkg/theme"
)

func testToday() calendar.Day {
	return calendar.Normalize(time.Date(2026, time.August, 29, 10, 0, 0, 0, time.Local))
}

func TestNewStoreSeedsDefaults(t *testing.T) {
	today := testToday()
	s := NewStore(today)

	if got := s.StudyMinutes(today.ISO()); got != 0 {
		t.Errorf("expected zero study minutes, got %d", got)
	}
	snap := s.Snapshot()
	if _, ok := snap.StudyLog[today.ISO()]; !ok {
		t.Errorf("expected today's study log seeded at zero")
	}
	if snap.Theme != theme.Light || snap.Palette != "ocean" {
		t.Errorf("unexpected default appearance: %s/%s", snap.Theme, snap.Palette)
	}
	if snap.StudyGoal != DefaultStudyGoal {
		t.Errorf("unexpected default goal: %d", snap.StudyGoal)
	}
	if len(snap.Habits) != 0 || len(snap.Assignments) != 0 || len(snap.FocusSessions) != 0 {
		t.Errorf("expected empty collections")
	}
}

func TestRecordStudyMinutesIsAdditive(t *testing.T) {
	s := NewStore(testToday())
	iso := testToday().ISO()

	if err := s.RecordStudyMinutes(iso, 30); err != nil {
		t.Fatalf("record 30: %v", err)
	}
	if err := s.RecordStudyMinutes(iso, 45); err != nil {
		t.Fatalf("record 45: %v", err)
	}
	if got := s.StudyMinutes(iso); got != 75 {
		t.Errorf("expected 75 minutes, got %d", got)
	}
	if err := s.RecordStudyMinutes(iso, -5); err == nil {
		t.Errorf("expected negative minutes rejected")
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := NewStore(testToday())
	first, err := s.AddHabit("Read")
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	second, _ := s.AddHabit("Stretch")

	habits := s.Habits()
	if len(habits) != 2 || habits[0].ID != first.ID || habits[1].ID != second.ID {
		t.Errorf("habits not in insertion order")
	}

	if _, err := s.AddHabit("  "); err == nil {
		t.Errorf("expected empty habit title rejected")
	}
	if _, err := s.AddAssignment("HW", "", "not-a-date"); err == nil {
		t.Errorf("expected bad due date rejected")
	}
}

func TestToggleUnknownIDs(t *testing.T) {
	s := NewStore(testToday())
	if _, err := s.ToggleHabitDay("nope", testToday().ISO()); !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("expected ErrHabitNotFound, got %v", err)
	}
	if _, err := s.ToggleAssignmentDone("nope"); !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("expected ErrAssignmentNotFound, got %v", err)
	}
}

func TestSnapshotNormalizesAndDetaches(t *testing.T) {
	s := NewStore(testToday())
	iso := testToday().ISO()
	h, _ := s.AddHabit("Read")
	s.ToggleHabitDay(h.ID, iso)
	s.ToggleHabitDay(h.ID, iso) // back to transient false

	snap := s.Snapshot()
	if _, present := snap.Habits[0].History[iso]; present {
		t.Errorf("snapshot should drop explicit-false history entries")
	}

	// Mutating the snapshot must not leak into live state.
	snap.Habits[0].Title = "changed"
	snap.StudyLog[iso] = 999
	if s.Habits()[0].Title != "Read" {
		t.Errorf("snapshot aliases live habit")
	}
	if s.StudyMinutes(iso) != 0 {
		t.Errorf("snapshot aliases live study log")
	}
}

func TestRestoreNilFallsBackToDefaults(t *testing.T) {
	s := NewStore(testToday())
	s.AddHabit("Read")
	s.Restore(nil)

	if len(s.Habits()) != 0 {
		t.Errorf("expected empty store after fallback")
	}
	if s.StudyGoal() != DefaultStudyGoal {
		t.Errorf("expected default goal after fallback")
	}
	if got := s.StudyMinutes(testToday().ISO()); got != 0 {
		t.Errorf("expected today reseeded at zero, got %d", got)
	}
}

func TestRestoreNormalizesMalformedFields(t *testing.T) {
	s := NewStore(testToday())
	s.Restore(&StateTree{
		Theme:     "sepia",
		Palette:   "neon",
		StudyGoal: -1,
		Habits: []*entity.Habit{
			{ID: "h1", Title: "Read"},
			{ID: "h2"}, // no title: dropped
		},
		Assignments: []*entity.Assignment{
			{ID: "a1", Title: "HW", DueISO: "2026-09-01"},
			{ID: "a2", Title: "Broken", DueISO: "someday"}, // dropped
		},
	})

	if s.Theme() != theme.Light || s.Palette() != "ocean" {
		t.Errorf("malformed appearance not normalized: %s/%s", s.Theme(), s.Palette())
	}
	if s.StudyGoal() != DefaultStudyGoal {
		t.Errorf("malformed goal not normalized: %d", s.StudyGoal())
	}
	if len(s.Habits()) != 1 || s.Habits()[0].History == nil {
		t.Errorf("habits not normalized")
	}
	if len(s.Assignments()) != 1 || s.Assignments()[0].ID != "a1" {
		t.Errorf("assignments not normalized")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	today := testToday()
	s := NewStore(today)
	h, _ := s.AddHabit("Read")
	s.ToggleHabitDay(h.ID, today.ISO())
	s.AddAssignment("HW 3", "Data Structures", "2026-09-01")
	s.RecordStudyMinutes(today.ISO(), 40)
	s.AppendFocusSession(entity.NewFocusSession(today, 25, entity.Timestamp{Time: time.Now()}))

	snap := s.Snapshot()

	other := NewStore(today)
	other.Restore(snap)

	if len(other.Habits()) != 1 || !other.Habits()[0].DoneOn(today.ISO()) {
		t.Errorf("habit state lost in round trip")
	}
	if len(other.Assignments()) != 1 || other.Assignments()[0].Course != "Data Structures" {
		t.Errorf("assignment state lost in round trip")
	}
	if other.StudyMinutes(today.ISO()) != 40 {
		t.Errorf("study log lost in round trip")
	}
	if len(other.FocusSessions()) != 1 || other.FocusSessions()[0].Minutes != 25 {
		t.Errorf("focus sessions lost in round trip")
	}
}
