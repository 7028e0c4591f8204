// Package store owns the in-memory state tree and its persistence. The Store
// is the single writer for the whole tree; mutations are synchronous and run
// to completion before the next external event is handled, so there is no
// locking to arbitrate.
package store

import (
	"errors"
	"fmt"

	"tableflip.dev/lifeos/pkg/calendar"
	"tableflip.dev/lifeos/pkg/entity"
	"tableflip.dev/lifeos/pkg/theme"
)

var (
	ErrHabitNotFound      = errors.New("store: habit not found")
	ErrAssignmentNotFound = errors.New("store: assignment not found")
)

// Store holds all tracked entities and scalar settings.
type Store struct {
	tree  *StateTree
	today calendar.Day
}

// NewStore returns a store seeded with the default tree for the given day.
func NewStore(today calendar.Day) *Store {
	return &Store{
		tree:  DefaultTree(today),
		today: today,
	}
}

// AddHabit validates and appends a new habit. Insertion order is preserved;
// listing and tie-breaking rely on it.
func (s *Store) AddHabit(title string) (*entity.Habit, error) {
	h, err := entity.NewHabit(title)
	if err != nil {
		return nil, err
	}
	s.tree.Habits = append(s.tree.Habits, h)
	return h, nil
}

// AddAssignment validates and appends a new assignment with done=false.
func (s *Store) AddAssignment(title, course, dueISO string) (*entity.Assignment, error) {
	a, err := entity.NewAssignment(title, course, dueISO)
	if err != nil {
		return nil, err
	}
	s.tree.Assignments = append(s.tree.Assignments, a)
	return a, nil
}

// ToggleHabitDay flips a habit's completion for the given ISO date.
func (s *Store) ToggleHabitDay(habitID, iso string) (*entity.Habit, error) {
	for _, h := range s.tree.Habits {
		if h.ID == habitID {
			h.Toggle(iso)
			return h, nil
		}
	}
	return nil, ErrHabitNotFound
}

// ToggleAssignmentDone flips an assignment's done flag.
func (s *Store) ToggleAssignmentDone(id string) (*entity.Assignment, error) {
	for _, a := range s.tree.Assignments {
		if a.ID == id {
			a.Done = !a.Done
			return a, nil
		}
	}
	return nil, ErrAssignmentNotFound
}

// RecordStudyMinutes adds minutes to the study log for the given date.
// Updates are additive; log values never decrease.
func (s *Store) RecordStudyMinutes(iso string, minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("store: negative study minutes %d", minutes)
	}
	if s.tree.StudyLog == nil {
		s.tree.StudyLog = entity.StudyLog{}
	}
	s.tree.StudyLog[iso] += minutes
	return nil
}

// AppendFocusSession records a completed timer run, newest first.
func (s *Store) AppendFocusSession(rec *entity.FocusSession) {
	if rec == nil {
		return
	}
	s.tree.FocusSessions = append([]*entity.FocusSession{rec}, s.tree.FocusSessions...)
}

// StudyMinutes returns the minutes logged for the given date, zero if absent.
func (s *Store) StudyMinutes(iso string) int {
	return s.tree.StudyLog[iso]
}

func (s *Store) Habits() []*entity.Habit             { return s.tree.Habits }
func (s *Store) Assignments() []*entity.Assignment   { return s.tree.Assignments }
func (s *Store) FocusSessions() []*entity.FocusSession { return s.tree.FocusSessions }

func (s *Store) Theme() theme.Mode { return s.tree.Theme }
func (s *Store) Palette() string   { return s.tree.Palette }
func (s *Store) StudyGoal() int    { return s.tree.StudyGoal }

// SetTheme switches light/dark mode.
func (s *Store) SetTheme(m theme.Mode) error {
	if !m.Valid() {
		return fmt.Errorf("store: unknown theme %q", m)
	}
	s.tree.Theme = m
	return nil
}

// SetPalette selects an accent preset by id.
func (s *Store) SetPalette(id string) error {
	if !theme.ValidPreset(id) {
		return fmt.Errorf("store: unknown palette %q", id)
	}
	s.tree.Palette = id
	return nil
}

// SetStudyGoal updates the daily study goal in minutes.
func (s *Store) SetStudyGoal(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("store: study goal must be positive, got %d", minutes)
	}
	s.tree.StudyGoal = minutes
	return nil
}

// Snapshot returns a deep copy of the tree in canonical form (habit history
// carries only completed days). Used by the persistence boundary.
func (s *Store) Snapshot() *StateTree {
	cp := s.tree.Clone()
	for _, h := range cp.Habits {
		h.NormalizeHistory()
	}
	return cp
}

// Restore replaces the in-memory state with the given tree. A nil tree (the
// persistence layer reports malformed data as absent) falls back to the
// default tree; individual malformed fields are normalized in place.
func (s *Store) Restore(tree *StateTree) {
	if tree == nil {
		s.tree = DefaultTree(s.today)
		return
	}
	next := tree.Clone()
	if !next.Theme.Valid() {
		next.Theme = theme.Light
	}
	if !theme.ValidPreset(next.Palette) {
		next.Palette = theme.DefaultPreset()
	}
	if next.StudyGoal <= 0 {
		next.StudyGoal = DefaultStudyGoal
	}
	if next.StudyLog == nil {
		next.StudyLog = entity.StudyLog{s.today.ISO(): 0}
	}
	if next.FocusSessions == nil {
		next.FocusSessions = []*entity.FocusSession{}
	}
	habits := next.Habits[:0]
	for _, h := range next.Habits {
		if h.Title == "" {
			continue
		}
		if h.History == nil {
			h.History = map[string]bool{}
		}
		habits = append(habits, h)
	}
	next.Habits = habits
	assignments := next.Assignments[:0]
	for _, a := range next.Assignments {
		if a.Title == "" {
			continue
		}
		if _, err := calendar.ParseISO(a.DueISO); err != nil {
			continue
		}
		assignments = append(assignments, a)
	}
	next.Assignments = assignments
	if next.Habits == nil {
		next.Habits = []*entity.Habit{}
	}
	if next.Assignments == nil {
		next.Assignments = []*entity.Assignment{}
	}
	s.tree = next
}
