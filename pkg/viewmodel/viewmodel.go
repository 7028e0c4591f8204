// Package viewmodel builds the read-only dashboard projection handed to
// rendering layers. It is rebuilt from scratch on every refresh; nothing in
// here mutates the store.
package viewmodel

import (
	"fmt"
	"time"

	"tableflip.dev/lifeos/pkg/calendar"
	"tableflip.dev/lifeos/pkg/progress"
	"tableflip.dev/lifeos/pkg/store"
	"tableflip.dev/lifeos/pkg/theme"
)

// recentSessionWindow bounds the session feed for display.
const recentSessionWindow = 6

// Tier drives badge/hint coloring in renderers.
type Tier int

const (
	TierNeutral Tier = iota
	TierGood
	TierWarn
	TierBad
)

// Ring is one progress ring: ratio, display text, and hint copy.
type Ring struct {
	Ratio   float64
	Percent int // clamped to 0..100 for ring rendering
	Label   string
	Hint    string
}

// NextUpView describes the most urgent pending assignment.
type NextUpView struct {
	ID    string
	Title string
	Meta  string
	Badge string
	Tier  Tier
}

// HabitItem is one habit row with today's completion flag.
type HabitItem struct {
	ID        string
	Title     string
	DoneToday bool
}

// AssignmentItem is one assignment row with its urgency badge.
type AssignmentItem struct {
	ID       string
	Title    string
	Course   string
	DueISO   string
	Done     bool
	DiffDays int
	Badge    string
	Tier     Tier
	Sub      string
}

// SessionItem is one recent focus session.
type SessionItem struct {
	ID      string
	Title   string
	Minutes int
	EndedAt time.Time
	When    string
}

// Dashboard is the full projection for one refresh.
type Dashboard struct {
	Today    calendar.Day
	DateLine string

	Study        Ring
	StudyMinutes int
	StudyGoal    int

	Habits      Ring
	HabitsDone  int
	HabitsTotal int

	Streak  int
	Overdue int
	Week    int

	OpenCount int
	NextUp    *NextUpView

	HabitList   []HabitItem
	Assignments []AssignmentItem
	Sessions    []SessionItem

	Theme   theme.Mode
	Palette theme.Preset
}

// Build computes the dashboard from the store and the current instant.
func Build(st *store.Store, now time.Time) *Dashboard {
	today := calendar.Normalize(now)
	iso := today.ISO()

	habits := st.Habits()
	assignments := st.Assignments()

	minutes := st.StudyMinutes(iso)
	goal := st.StudyGoal()
	studyRatio := progress.StudyRatio(minutes, goal)

	done := progress.HabitsDoneOn(habits, today)
	habitRatio := progress.HabitRatio(habits, today)

	stats := progress.AssignmentStats(assignments, today)

	d := &Dashboard{
		Today:    today,
		DateLine: now.Format("Monday, January 2"),
		Study: Ring{
			Ratio:   studyRatio,
			Percent: clampPercent(studyRatio),
			Label:   fmt.Sprintf("%d / %dm", minutes, goal),
			Hint:    studyHint(studyRatio),
		},
		StudyMinutes: minutes,
		StudyGoal:    goal,
		Habits: Ring{
			Ratio:   habitRatio,
			Percent: clampPercent(habitRatio),
			Label:   fmt.Sprintf("%d / %d", done, len(habits)),
			Hint:    habitHint(len(habits), habitRatio),
		},
		HabitsDone:  done,
		HabitsTotal: len(habits),
		Streak:      progress.Streak(habits, today),
		Overdue:     stats.Overdue,
		Week:        stats.Week,
		Theme:       st.Theme(),
		Palette:     theme.Get(st.Palette()),
	}

	if next := progress.NextAssignment(assignments, today); next != nil {
		d.NextUp = nextUpView(next)
	}

	d.HabitList = make([]HabitItem, 0, len(habits))
	for _, h := range habits {
		d.HabitList = append(d.HabitList, HabitItem{
			ID:        h.ID,
			Title:     h.Title,
			DoneToday: h.DoneOn(iso),
		})
	}

	sorted := progress.SortedAssignments(assignments)
	d.Assignments = make([]AssignmentItem, 0, len(sorted))
	for _, a := range sorted {
		u := progress.Classify(today, a.Due())
		badge, tier := assignmentBadge(u, a.Due())
		sub := a.Course
		if sub == "" {
			sub = "Assignment"
		}
		d.Assignments = append(d.Assignments, AssignmentItem{
			ID:       a.ID,
			Title:    a.Title,
			Course:   a.Course,
			DueISO:   a.DueISO,
			Done:     a.Done,
			DiffDays: u.DiffDays,
			Badge:    badge,
			Tier:     tier,
			Sub:      fmt.Sprintf("%s • %s", sub, u.Label()),
		})
		if !a.Done {
			d.OpenCount++
		}
	}

	sessions := st.FocusSessions()
	if len(sessions) > recentSessionWindow {
		sessions = sessions[:recentSessionWindow]
	}
	d.Sessions = make([]SessionItem, 0, len(sessions))
	for _, s := range sessions {
		when := s.EndedAt.Local().Format("Jan 2, 3:04 PM")
		if s.EndedAt.SameDay(now) {
			when = s.EndedAt.Local().Format("3:04 PM")
		}
		d.Sessions = append(d.Sessions, SessionItem{
			ID:      s.ID,
			Title:   fmt.Sprintf("%d minute focus", s.Minutes),
			Minutes: s.Minutes,
			EndedAt: s.EndedAt.Time,
			When:    when,
		})
	}

	return d
}

func nextUpView(next *progress.NextUp) *NextUpView {
	a := next.Assignment
	due := a.Due()
	dueText := due.Friendly()
	if a.Course != "" {
		dueText = fmt.Sprintf("%s • %s", a.Course, dueText)
	}
	v := &NextUpView{
		ID:    a.ID,
		Title: a.Title,
		Meta:  fmt.Sprintf("%s • %s", dueText, next.Urgency.Label()),
	}
	switch next.Urgency.Bucket {
	case progress.Overdue:
		v.Badge, v.Tier = "Overdue", TierBad
	case progress.DueToday:
		v.Badge, v.Tier = "Today", TierWarn
	case progress.DueTomorrow:
		v.Badge, v.Tier = "Tomorrow", TierWarn
	default:
		v.Badge, v.Tier = fmt.Sprintf("%dd", next.Urgency.DiffDays), TierNeutral
	}
	return v
}

func assignmentBadge(u progress.Urgency, due calendar.Day) (string, Tier) {
	switch u.Bucket {
	case progress.Overdue:
		return "Late", TierBad
	case progress.DueToday:
		return "Today", TierWarn
	case progress.DueTomorrow:
		return "Tomorrow", TierWarn
	default:
		return due.Friendly(), TierNeutral
	}
}

func studyHint(ratio float64) string {
	switch {
	case ratio >= 1:
		return "Goal crushed."
	case ratio >= 0.6:
		return "Nice pace."
	default:
		return "You're warming up."
	}
}

func habitHint(total int, ratio float64) string {
	switch {
	case total == 0:
		return "Add your first habit."
	case ratio >= 1:
		return "Perfect day."
	case ratio >= 0.6:
		return "Keep rolling."
	default:
		return "Start with one."
	}
}

func clampPercent(ratio float64) int {
	pct := int(ratio * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
