// Package progress computes derived state from store snapshots and the
// current date: streaks, completion ratios, urgency buckets, and aggregate
// counts. Everything here is pure; callers re-run it after each mutation.
package progress

import (
	"fmt"
	"sort"

	"tableflip.dev/lifeos/pkg/calendar"
	"tableflip.dev/lifeos/pkg/entity"
)

const (
	// FallbackStudyGoal guards against malformed settings; the engine never
	// divides by a non-positive goal.
	FallbackStudyGoal = 120

	// maxStreakLookback bounds the backward walk so the streak computation
	// stays O(days) regardless of history size.
	maxStreakLookback = 365
)

// HabitsDoneOn counts habits completed on the given day.
func HabitsDoneOn(habits []*entity.Habit, day calendar.Day) int {
	iso := day.ISO()
	done := 0
	for _, h := range habits {
		if h.DoneOn(iso) {
			done++
		}
	}
	return done
}

// HabitRatio is completed/total for the given day, 0 when no habits exist.
func HabitRatio(habits []*entity.Habit, day calendar.Day) float64 {
	if len(habits) == 0 {
		return 0
	}
	return float64(HabitsDoneOn(habits, day)) / float64(len(habits))
}

// Streak counts consecutive days, walking backward from today, on which
// every currently-defined habit was complete. A store with zero habits has
// streak 0; the vacuous all-complete case would otherwise read as infinite.
// Recomputed fully on each call: habit membership changes retroactively
// affect which past days qualify.
func Streak(habits []*entity.Habit, today calendar.Day) int {
	if len(habits) == 0 {
		return 0
	}
	streak := 0
	for i := 0; i < maxStreakLookback; i++ {
		iso := today.AddDays(-i).ISO()
		allDone := true
		for _, h := range habits {
			if !h.DoneOn(iso) {
				allDone = false
				break
			}
		}
		if !allDone {
			break
		}
		streak++
	}
	return streak
}

// StudyRatio is minutes/goal, unbounded above 1. Non-positive goals use the
// fallback so the ratio is always defined.
func StudyRatio(minutes, goal int) float64 {
	if goal <= 0 {
		goal = FallbackStudyGoal
	}
	return float64(minutes) / float64(goal)
}

// Bucket is the qualitative urgency of a due date.
type Bucket int

const (
	Overdue Bucket = iota
	DueToday
	DueTomorrow
	Upcoming
)

// Urgency pairs the signed day difference to a due date with its bucket.
type Urgency struct {
	DiffDays int
	Bucket   Bucket
}

// Classify derives the urgency of due relative to today.
func Classify(today, due calendar.Day) Urgency {
	diff := calendar.DaysBetween(today, due)
	u := Urgency{DiffDays: diff}
	switch {
	case diff < 0:
		u.Bucket = Overdue
	case diff == 0:
		u.Bucket = DueToday
	case diff == 1:
		u.Bucket = DueTomorrow
	default:
		u.Bucket = Upcoming
	}
	return u
}

// Label renders the urgency description, e.g. "overdue by 2 days".
func (u Urgency) Label() string {
	switch u.Bucket {
	case Overdue:
		return fmt.Sprintf("overdue by %s", pluralDays(-u.DiffDays))
	case DueToday:
		return "due today"
	case DueTomorrow:
		return "due tomorrow"
	default:
		return fmt.Sprintf("due in %s", pluralDays(u.DiffDays))
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// Stats aggregates pending assignments: strictly-before-today overdue count
// and count due within the current Monday..Sunday week, both ends inclusive.
type Stats struct {
	Overdue int
	Week    int
}

// AssignmentStats counts non-done assignments only; done ones stay visible
// in listings but never inflate the aggregates.
func AssignmentStats(assignments []*entity.Assignment, today calendar.Day) Stats {
	weekStart := today.StartOfWeek()
	weekEnd := today.EndOfWeek()
	var stats Stats
	for _, a := range assignments {
		if a.Done {
			continue
		}
		due := a.Due()
		if due.Before(today.Time) {
			stats.Overdue++
		}
		if !due.Before(weekStart.Time) && !due.After(weekEnd.Time) {
			stats.Week++
		}
	}
	return stats
}

// NextUp is the most urgent pending assignment with its urgency attached.
type NextUp struct {
	Assignment *entity.Assignment
	Urgency    Urgency
}

// NextAssignment selects the pending assignment with the earliest due date,
// first-inserted winning ties. Returns nil when nothing is pending.
func NextAssignment(assignments []*entity.Assignment, today calendar.Day) *NextUp {
	var best *entity.Assignment
	for _, a := range assignments {
		if a.Done {
			continue
		}
		if best == nil || a.Due().Before(best.Due().Time) {
			best = a
		}
	}
	if best == nil {
		return nil
	}
	return &NextUp{
		Assignment: best,
		Urgency:    Classify(today, best.Due()),
	}
}

// SortedAssignments returns a copy ordered pending-first, then ascending due
// date. The sort is stable so equal due dates keep insertion order.
func SortedAssignments(assignments []*entity.Assignment) []*entity.Assignment {
	out := make([]*entity.Assignment, len(assignments))
	copy(out, assignments)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Done != out[j].Done {
			return !out[i].Done
		}
		return out[i].Due().Before(out[j].Due().Time)
	})
	return out
}
