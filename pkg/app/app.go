// Package app provides high-level operations over the store and its
// persistence so CLIs and UIs can share logic. Every mutation persists the
// full snapshot afterward; save failures are reported to the caller but
// never retried here.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/lifeos/pkg/entity"
	"tableflip.dev/lifeos/pkg/focus"
	"tableflip.dev/lifeos/pkg/store"
	"tableflip.dev/lifeos/pkg/theme"
	"tableflip.dev/lifeos/pkg/viewmodel"
)

// Service wires the entity store, the persistence boundary, and the focus
// timer together.
type Service struct {
	Store       *store.Store
	Persistence store.Persistence
	Focus       *focus.Controller
}

// New builds a Service around the given store. The focus controller emits
// completed sessions straight into the store.
func New(st *store.Store, p store.Persistence) *Service {
	return &Service{
		Store:       st,
		Persistence: p,
		Focus:       focus.New(st),
	}
}

// Load restores state from persistence. Absent or malformed data is not an
// error: the store falls back to the default tree.
func (s *Service) Load(ctx context.Context) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	tree, err := s.Persistence.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoState) {
			fmt.Fprintf(os.Stderr, "app: load state: %v\n", err)
		}
		s.Store.Restore(nil)
		return nil
	}
	s.Store.Restore(tree)
	return nil
}

// Save writes the current snapshot through the persistence boundary.
func (s *Service) Save() error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	return s.Persistence.Save(s.Store.Snapshot())
}

// Watch subscribes to external persistence changes.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// AddHabit creates and persists a new habit.
func (s *Service) AddHabit(ctx context.Context, title string) (*entity.Habit, error) {
	h, err := s.Store.AddHabit(title)
	if err != nil {
		return nil, err
	}
	return h, s.Save()
}

// AddAssignment creates and persists a new assignment.
func (s *Service) AddAssignment(ctx context.Context, title, course, dueISO string) (*entity.Assignment, error) {
	a, err := s.Store.AddAssignment(title, course, dueISO)
	if err != nil {
		return nil, err
	}
	return a, s.Save()
}

// ToggleHabitDay flips a habit's completion for the given date and persists.
func (s *Service) ToggleHabitDay(ctx context.Context, habitID, iso string) (*entity.Habit, error) {
	h, err := s.Store.ToggleHabitDay(habitID, iso)
	if err != nil {
		return nil, err
	}
	return h, s.Save()
}

// ToggleAssignmentDone flips an assignment's done flag and persists.
func (s *Service) ToggleAssignmentDone(ctx context.Context, id string) (*entity.Assignment, error) {
	a, err := s.Store.ToggleAssignmentDone(id)
	if err != nil {
		return nil, err
	}
	return a, s.Save()
}

// RecordStudyMinutes adds minutes to the study log and persists.
func (s *Service) RecordStudyMinutes(ctx context.Context, iso string, minutes int) error {
	if err := s.Store.RecordStudyMinutes(iso, minutes); err != nil {
		return err
	}
	return s.Save()
}

// SetTheme updates the light/dark mode and persists.
func (s *Service) SetTheme(ctx context.Context, m theme.Mode) error {
	if err := s.Store.SetTheme(m); err != nil {
		return err
	}
	return s.Save()
}

// SetPalette updates the accent preset and persists.
func (s *Service) SetPalette(ctx context.Context, id string) error {
	if err := s.Store.SetPalette(id); err != nil {
		return err
	}
	return s.Save()
}

// SetStudyGoal updates the daily goal and persists.
func (s *Service) SetStudyGoal(ctx context.Context, minutes int) error {
	if err := s.Store.SetStudyGoal(minutes); err != nil {
		return err
	}
	return s.Save()
}

// TickFocus advances the focus timer. When a run completes, the study delta
// and session record are already in the store; the snapshot is persisted
// before returning.
func (s *Service) TickFocus(ctx context.Context, now time.Time) (bool, error) {
	done, err := s.Focus.Tick(now)
	if err != nil {
		return done, err
	}
	if !done {
		return false, nil
	}
	return true, s.Save()
}

// Dashboard builds the view-model for the given instant.
func (s *Service) Dashboard(now time.Time) *viewmodel.Dashboard {
	return viewmodel.Build(s.Store, now)
}
