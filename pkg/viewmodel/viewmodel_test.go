package viewmodel

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"tableflip.dev/lifeos/pkg/calendar"
	"tableflip.dev/lifeos/pkg/entity"
	"tableflip.dev/lifeos/pkg/store"
)

var testNow = time.Date(2026, time.August, 29, 14, 30, 0, 0, time.Local)

func newTestStore() *store.Store {
	return store.NewStore(calendar.Normalize(testNow))
}

func TestEmptyStoreDashboard(t *testing.T) {
	d := Build(newTestStore(), testNow)

	if d.Streak != 0 {
		t.Errorf("streak = %d, want 0", d.Streak)
	}
	if d.Habits.Ratio != 0 {
		t.Errorf("habit ratio = %v, want 0", d.Habits.Ratio)
	}
	if d.Habits.Hint != "Add your first habit." {
		t.Errorf("habit hint = %q", d.Habits.Hint)
	}
	if d.NextUp != nil {
		t.Errorf("expected no next-up for empty store")
	}
	if d.Study.Label != "0 / 120m" {
		t.Errorf("study label = %q", d.Study.Label)
	}
	if len(d.Sessions) != 0 {
		t.Errorf("expected no sessions")
	}
}

func TestStudyHintTiers(t *testing.T) {
	cases := []struct {
		minutes int
		hint    string
	}{
		{0, "You're warming up."},
		{71, "You're warming up."},
		{72, "Nice pace."},
		{119, "Nice pace."},
		{120, "Goal crushed."},
		{300, "Goal crushed."},
	}
	for _, tc := range cases {
		st := newTestStore()
		st.RecordStudyMinutes(calendar.Normalize(testNow).ISO(), tc.minutes)
		d := Build(st, testNow)
		if d.Study.Hint != tc.hint {
			t.Errorf("minutes=%d: hint = %q, want %q", tc.minutes, d.Study.Hint, tc.hint)
		}
	}
}

func TestStudyRingUnboundedRatioClampedPercent(t *testing.T) {
	st := newTestStore()
	st.RecordStudyMinutes(calendar.Normalize(testNow).ISO(), 180)
	d := Build(st, testNow)
	if d.Study.Ratio != 1.5 {
		t.Errorf("ratio = %v, want 1.5", d.Study.Ratio)
	}
	if d.Study.Percent != 100 {
		t.Errorf("percent = %d, want clamped 100", d.Study.Percent)
	}
}

func TestHabitHintsAndList(t *testing.T) {
	st := newTestStore()
	iso := calendar.Normalize(testNow).ISO()
	a, _ := st.AddHabit("Read")
	st.AddHabit("Stretch")
	st.ToggleHabitDay(a.ID, iso)

	d := Build(st, testNow)
	if d.HabitsDone != 1 || d.HabitsTotal != 2 {
		t.Errorf("habit counts = %d/%d", d.HabitsDone, d.HabitsTotal)
	}
	if d.Habits.Hint != "Start with one." {
		t.Errorf("hint = %q", d.Habits.Hint)
	}
	if len(d.HabitList) != 2 || !d.HabitList[0].DoneToday || d.HabitList[1].DoneToday {
		t.Errorf("habit list flags wrong: %+v", d.HabitList)
	}

	st.ToggleHabitDay(d.HabitList[1].ID, iso)
	d = Build(st, testNow)
	if d.Habits.Hint != "Perfect day." {
		t.Errorf("hint = %q, want Perfect day.", d.Habits.Hint)
	}
	if d.Streak != 1 {
		t.Errorf("streak = %d, want 1", d.Streak)
	}
}

func TestNextUpMetaAndBadges(t *testing.T) {
	st := newTestStore()
	st.AddAssignment("HW 3 (BST)", "Data Structures", "2026-08-30")
	d := Build(st, testNow)

	if d.NextUp == nil {
		t.Fatalf("expected next-up")
	}
	if d.NextUp.Badge != "Tomorrow" || d.NextUp.Tier != TierWarn {
		t.Errorf("badge = %q tier %v", d.NextUp.Badge, d.NextUp.Tier)
	}
	wantMeta := "Data Structures • Aug 30 • due tomorrow"
	if d.NextUp.Meta != wantMeta {
		t.Errorf("meta = %q, want %q", d.NextUp.Meta, wantMeta)
	}
}

func TestAssignmentRows(t *testing.T) {
	st := newTestStore()
	st.AddAssignment("Late one", "", "2026-08-28")
	a2, _ := st.AddAssignment("Done one", "Algebra", "2026-08-25")
	st.ToggleAssignmentDone(a2.ID)

	d := Build(st, testNow)
	if d.Overdue != 1 {
		t.Errorf("overdue = %d, want 1 (done ones excluded)", d.Overdue)
	}
	if d.OpenCount != 1 {
		t.Errorf("open count = %d, want 1", d.OpenCount)
	}
	if len(d.Assignments) != 2 {
		t.Fatalf("rows = %d", len(d.Assignments))
	}
	// Pending sorts before done.
	if d.Assignments[0].Title != "Late one" || d.Assignments[0].Badge != "Late" || d.Assignments[0].Tier != TierBad {
		t.Errorf("unexpected first row: %+v", d.Assignments[0])
	}
	if !strings.Contains(d.Assignments[0].Sub, "overdue by 1 day") {
		t.Errorf("sub = %q", d.Assignments[0].Sub)
	}
	if d.Assignments[1].Sub != "Algebra • overdue by 4 days" {
		t.Errorf("sub = %q", d.Assignments[1].Sub)
	}
}

func TestSessionsWindowNewestFirst(t *testing.T) {
	st := newTestStore()
	today := calendar.Normalize(testNow)
	for i := 0; i < 8; i++ {
		st.AppendFocusSession(entity.NewFocusSession(today, 10+i, entity.Timestamp{
			Time: testNow.Add(time.Duration(i) * time.Minute),
		}))
	}

	d := Build(st, testNow)
	if len(d.Sessions) != 6 {
		t.Fatalf("sessions = %d, want window of 6", len(d.Sessions))
	}
	if d.Sessions[0].Minutes != 17 {
		t.Errorf("expected newest session first, got %d minutes", d.Sessions[0].Minutes)
	}
	if d.Sessions[0].Title != "17 minute focus" {
		t.Errorf("title = %q", d.Sessions[0].Title)
	}
	for i := 1; i < len(d.Sessions); i++ {
		if d.Sessions[i].EndedAt.After(d.Sessions[i-1].EndedAt) {
			t.Fatalf("sessions not newest-first at %d", i)
		}
	}
}

func TestSnapshotRestoreYieldsIdenticalDashboard(t *testing.T) {
	st := newTestStore()
	h, _ := st.AddHabit("Read")
	st.ToggleHabitDay(h.ID, calendar.Normalize(testNow).ISO())
	st.AddAssignment("HW", "Math", "2026-09-01")
	st.RecordStudyMinutes(calendar.Normalize(testNow).ISO(), 45)

	before := Build(st, testNow)

	other := store.NewStore(calendar.Normalize(testNow))
	other.Restore(st.Snapshot())
	after := Build(other, testNow)

	if !reflect.DeepEqual(before, after) {
		t.Errorf("dashboard differs after snapshot/restore round trip\nbefore: %+v\nafter:  %+v", before, after)
	}
}
