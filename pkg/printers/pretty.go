// Package printers renders view-models for plain terminal output.
package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/lifeos/pkg/viewmodel"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Dashboard prints the today view: rings, streak, and next-up.
func (pp *PrettyPrint) Dashboard(d *viewmodel.Dashboard) {
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)

	pp.Title(d.DateLine)
	pp.NewLine()

	_, _ = bold.Printf("Study   %s", d.Study.Label)
	_, _ = faint.Printf("  (%d%%)  %s\n", d.Study.Percent, d.Study.Hint)
	_, _ = bold.Printf("Habits  %s", d.Habits.Label)
	_, _ = faint.Printf("  (%d%%)  %s\n", d.Habits.Percent, d.Habits.Hint)
	pp.NewLine()

	_, _ = faint.Printf("Streak: %dd   Overdue: %d   This week: %d\n", d.Streak, d.Overdue, d.Week)
	pp.NewLine()

	if d.NextUp == nil {
		_, _ = faint.Println("No deadlines yet. Add an assignment to start.")
		return
	}
	badge := tierColor(d.NextUp.Tier)
	_, _ = badge.Printf("[%s]", d.NextUp.Badge)
	_, _ = bold.Printf(" %s\n", d.NextUp.Title)
	_, _ = faint.Printf("     %s\n", d.NextUp.Meta)
}

// Habits lists habits with today's completion markers.
func (pp *PrettyPrint) Habits(items []viewmodel.HabitItem) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none — add your first habit. Keep it small and daily.\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	done := color.New(color.FgHiGreen)
	todo := color.New(color.Faint)
	for _, h := range items {
		mark := todo.Sprint("○")
		status := todo.Sprint("Not done yet")
		if h.DoneToday {
			mark = done.Sprint("●")
			status = done.Sprint("Completed today")
		}
		if pp.ShowID {
			tbl.AddRow(h.ID, mark, h.Title, status)
		} else {
			tbl.AddRow(mark, h.Title, status)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Assignments lists sorted assignment rows with urgency badges.
func (pp *PrettyPrint) Assignments(items []viewmodel.AssignmentItem) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none — no assignments yet. Add one to start.\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	faint := color.New(color.Faint)
	for _, a := range items {
		badge := tierColor(a.Tier).Sprintf("[%s]", a.Badge)
		title := a.Title
		if a.Done {
			title = faint.Sprint(title)
			badge = faint.Sprint("[Done]")
		}
		if pp.ShowID {
			tbl.AddRow(a.ID, badge, title, faint.Sprint(a.Sub))
		} else {
			tbl.AddRow(badge, title, faint.Sprint(a.Sub))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Sessions lists recent focus sessions, newest first.
func (pp *PrettyPrint) Sessions(items []viewmodel.SessionItem) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none — finish a focus timer to log sessions.\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	good := color.New(color.FgHiGreen)
	faint := color.New(color.Faint)
	for _, s := range items {
		tbl.AddRow(good.Sprint("Logged"), s.Title, faint.Sprint(s.When))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

func tierColor(t viewmodel.Tier) *color.Color {
	switch t {
	case viewmodel.TierBad:
		return color.New(color.FgHiRed)
	case viewmodel.TierWarn:
		return color.New(color.FgHiYellow)
	case viewmodel.TierGood:
		return color.New(color.FgHiGreen)
	default:
		return color.New(color.Faint)
	}
}
