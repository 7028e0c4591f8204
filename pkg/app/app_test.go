package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/lifeos/pkg/calendar"
	"tableflip.dev/lifeos/pkg/focus"
	"tableflip.dev/lifeos/pkg/store"
)

// memoryPersistence keeps trees in memory, mirroring the diskv contract.
type memoryPersistence struct {
	tree     *store.StateTree
	saves    int
	failLoad bool
	failSave bool
}

func (m *memoryPersistence) Load(context.Context) (*store.StateTree, error) {
	if m.failLoad || m.tree == nil {
		return nil, store.ErrNoState
	}
	return m.tree.Clone(), nil
}

func (m *memoryPersistence) Save(tree *store.StateTree) error {
	if m.failSave {
		return errors.New("save failed")
	}
	m.saves++
	m.tree = tree.Clone()
	return nil
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

var testNow = time.Date(2026, time.August, 29, 9, 0, 0, 0, time.Local)

func newTestService(p store.Persistence) *Service {
	return New(store.NewStore(calendar.Normalize(testNow)), p)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	svc := newTestService(&memoryPersistence{failLoad: true})
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load should swallow absent state, got %v", err)
	}
	if got := len(svc.Store.Habits()); got != 0 {
		t.Errorf("expected default empty store, got %d habits", got)
	}
	if svc.Store.StudyGoal() != store.DefaultStudyGoal {
		t.Errorf("expected default study goal")
	}
}

func TestLoadRestoresPersistedTree(t *testing.T) {
	mp := &memoryPersistence{}
	seed := newTestService(mp)
	if _, err := seed.AddHabit(context.Background(), "Read"); err != nil {
		t.Fatalf("AddHabit: %v", err)
	}

	svc := newTestService(mp)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	habits := svc.Store.Habits()
	if len(habits) != 1 || habits[0].Title != "Read" {
		t.Errorf("persisted habit not restored: %+v", habits)
	}
}

func TestMutationsPersistSnapshots(t *testing.T) {
	mp := &memoryPersistence{}
	svc := newTestService(mp)
	ctx := context.Background()

	h, err := svc.AddHabit(ctx, "Read")
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	if _, err := svc.ToggleHabitDay(ctx, h.ID, calendar.Normalize(testNow).ISO()); err != nil {
		t.Fatalf("ToggleHabitDay: %v", err)
	}
	if _, err := svc.AddAssignment(ctx, "HW", "", "2026-09-01"); err != nil {
		t.Fatalf("AddAssignment: %v", err)
	}
	if err := svc.RecordStudyMinutes(ctx, calendar.Normalize(testNow).ISO(), 30); err != nil {
		t.Fatalf("RecordStudyMinutes: %v", err)
	}

	if mp.saves != 4 {
		t.Errorf("saves = %d, want one per mutation", mp.saves)
	}
	if mp.tree.StudyLog[calendar.Normalize(testNow).ISO()] != 30 {
		t.Errorf("persisted tree missing study minutes")
	}
}

func TestSaveFailureReportedNotRetried(t *testing.T) {
	mp := &memoryPersistence{failSave: true}
	svc := newTestService(mp)

	if _, err := svc.AddHabit(context.Background(), "Read"); err == nil {
		t.Fatalf("expected save failure surfaced")
	}
	// The in-memory mutation stands even though the save failed.
	if len(svc.Store.Habits()) != 1 {
		t.Errorf("mutation rolled back unexpectedly")
	}
}

func TestInvalidInputDoesNotPersist(t *testing.T) {
	mp := &memoryPersistence{}
	svc := newTestService(mp)
	if _, err := svc.AddHabit(context.Background(), "   "); err == nil {
		t.Fatalf("expected validation error")
	}
	if mp.saves != 0 {
		t.Errorf("rejected input still persisted")
	}
}

func TestTickFocusPersistsCompletionOnce(t *testing.T) {
	mp := &memoryPersistence{}
	svc := newTestService(mp)
	ctx := context.Background()

	if err := svc.Focus.Start(testNow); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if done, _ := svc.TickFocus(ctx, testNow.Add(time.Minute)); done {
		t.Fatalf("completed early")
	}
	if mp.saves != 0 {
		t.Errorf("non-completing tick persisted")
	}

	after := testNow.Add(time.Duration(focus.DefaultMinutes+1) * time.Minute)
	done, err := svc.TickFocus(ctx, after)
	if err != nil || !done {
		t.Fatalf("TickFocus = (%v, %v), want completion", done, err)
	}
	if done, _ := svc.TickFocus(ctx, after.Add(time.Second)); done {
		t.Fatalf("second completion")
	}

	if mp.saves != 1 {
		t.Errorf("saves = %d, want exactly 1", mp.saves)
	}
	iso := calendar.Normalize(after).ISO()
	if mp.tree.StudyLog[iso] != focus.DefaultMinutes {
		t.Errorf("persisted study log = %d, want %d", mp.tree.StudyLog[iso], focus.DefaultMinutes)
	}
	if len(mp.tree.FocusSessions) != 1 {
		t.Errorf("persisted sessions = %d, want 1", len(mp.tree.FocusSessions))
	}
}

func TestNilPersistenceGuards(t *testing.T) {
	svc := New(store.NewStore(calendar.Normalize(testNow)), nil)
	if err := svc.Load(context.Background()); err == nil {
		t.Errorf("expected error from Load with no persistence")
	}
	if _, err := svc.Watch(context.Background()); err == nil {
		t.Errorf("expected error from Watch with no persistence")
	}
}
