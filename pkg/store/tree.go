package store

import (
	"tableflip.dev/lifeos/pkg/calendar"
	"tableflip.dev/lifeos/pkg/entity"
	"tableflip.dev/lifeos/pkg/theme"
)

// DefaultStudyGoal is the study goal (minutes) applied to fresh or malformed
// state.
const DefaultStudyGoal = 120

// StateTree is the full persisted state. The Persistence layer only ever
// sees whole trees; partial references never escape the Store.
type StateTree struct {
	Theme         theme.Mode             `json:"theme"`
	Palette       string                 `json:"palette"`
	StudyGoal     int                    `json:"studyGoal"`
	StudyLog      entity.StudyLog        `json:"studyLog"`
	FocusSessions []*entity.FocusSession `json:"focusSessions"`
	Habits        []*entity.Habit        `json:"habits"`
	Assignments   []*entity.Assignment   `json:"assignments"`
}

// DefaultTree returns the documented fallback state: empty collections,
// default appearance, and today's study log seeded at zero.
func DefaultTree(today calendar.Day) *StateTree {
	return &StateTree{
		Theme:         theme.Light,
		Palette:       theme.DefaultPreset(),
		StudyGoal:     DefaultStudyGoal,
		StudyLog:      entity.StudyLog{today.ISO(): 0},
		FocusSessions: []*entity.FocusSession{},
		Habits:        []*entity.Habit{},
		Assignments:   []*entity.Assignment{},
	}
}

// Clone deep-copies the tree so snapshots never alias live state.
func (t *StateTree) Clone() *StateTree {
	if t == nil {
		return nil
	}
	cp := &StateTree{
		Theme:         t.Theme,
		Palette:       t.Palette,
		StudyGoal:     t.StudyGoal,
		StudyLog:      make(entity.StudyLog, len(t.StudyLog)),
		FocusSessions: make([]*entity.FocusSession, 0, len(t.FocusSessions)),
		Habits:        make([]*entity.Habit, 0, len(t.Habits)),
		Assignments:   make([]*entity.Assignment, 0, len(t.Assignments)),
	}
	for iso, minutes := range t.StudyLog {
		cp.StudyLog[iso] = minutes
	}
	for _, s := range t.FocusSessions {
		if s == nil {
			continue
		}
		dup := *s
		cp.FocusSessions = append(cp.FocusSessions, &dup)
	}
	for _, h := range t.Habits {
		if h == nil {
			continue
		}
		dup := entity.Habit{
			ID:      h.ID,
			Title:   h.Title,
			History: make(map[string]bool, len(h.History)),
		}
		for iso, done := range h.History {
			dup.History[iso] = done
		}
		cp.Habits = append(cp.Habits, &dup)
	}
	for _, a := range t.Assignments {
		if a == nil {
			continue
		}
		dup := *a
		cp.Assignments = append(cp.Assignments, &dup)
	}
	return cp
}
