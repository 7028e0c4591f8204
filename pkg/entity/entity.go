// Package entity defines the tracked records: habits, assignments, study log
// entries, and completed focus sessions. Constructors validate user input at
// the creation boundary; everything downstream assumes well-formed entities.
package entity

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/lifeos/pkg/calendar"
)

var (
	ErrEmptyTitle = errors.New("entity: title required")
	ErrBadDueDate = errors.New("entity: due date must be YYYY-MM-DD")
)

// Habit is a daily habit with per-day completion history keyed by ISO date.
// History holds true for completed days; false and absent are equivalent.
type Habit struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	History map[string]bool `json:"history"`
}

// NewHabit validates the title and returns a habit with empty history.
func NewHabit(title string) (*Habit, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Habit{
		ID:      newID(),
		Title:   title,
		History: map[string]bool{},
	}, nil
}

// DoneOn reports completion for the given ISO date.
func (h *Habit) DoneOn(iso string) bool {
	return h.History[iso]
}

// Toggle flips completion for the given ISO date.
func (h *Habit) Toggle(iso string) {
	if h.History == nil {
		h.History = map[string]bool{}
	}
	h.History[iso] = !h.History[iso]
}

// NormalizeHistory drops explicit-false entries so the canonical form only
// carries completed days.
func (h *Habit) NormalizeHistory() {
	for iso, done := range h.History {
		if !done {
			delete(h.History, iso)
		}
	}
}

// Assignment is a dated deadline. Done is independent of the due date; an
// overdue assignment may still be marked done.
type Assignment struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Course string `json:"course,omitempty"`
	DueISO string `json:"dueISO"`
	Done   bool   `json:"done"`
}

// NewAssignment validates title and due date. Course is optional.
func NewAssignment(title, course, dueISO string) (*Assignment, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if _, err := calendar.ParseISO(strings.TrimSpace(dueISO)); err != nil {
		return nil, ErrBadDueDate
	}
	return &Assignment{
		ID:     newID(),
		Title:  title,
		Course: strings.TrimSpace(course),
		DueISO: strings.TrimSpace(dueISO),
	}, nil
}

// Due returns the parsed due date. Stored dates are validated on creation.
func (a *Assignment) Due() calendar.Day {
	d, _ := calendar.ParseISO(a.DueISO)
	return d
}

// FocusSession records one completed timer run. Append-only.
type FocusSession struct {
	ID      string    `json:"id"`
	ISODate string    `json:"isoDate"`
	Minutes int       `json:"minutes"`
	EndedAt Timestamp `json:"endedAtISO"`
}

// NewFocusSession builds the record emitted by a completed timer run.
func NewFocusSession(day calendar.Day, minutes int, endedAt Timestamp) *FocusSession {
	return &FocusSession{
		ID:      newID(),
		ISODate: day.ISO(),
		Minutes: minutes,
		EndedAt: endedAt,
	}
}

// StudyLog maps ISO dates to minutes studied. Updates are additive only.
type StudyLog map[string]int

func newID() string {
	return uuid.NewString()
}
