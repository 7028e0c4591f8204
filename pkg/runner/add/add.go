package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/lifeos/pkg/app"
	"tableflip.dev/lifeos/pkg/printers"
)

// Habit adds a daily habit and prints the updated habit list.
type Habit struct {
	Title string

	Service *app.Service
}

func (n *Habit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	if _, err := n.Service.AddHabit(ctx, n.Title); err != nil {
		return err
	}

	d := n.Service.Dashboard(time.Now())
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Habits")
	pp.Habits(d.HabitList)
	return nil
}

// Assignment adds a deadline-tracked assignment and prints the updated list.
type Assignment struct {
	Title  string
	Course string
	Due    string

	Service *app.Service
}

func (n *Assignment) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	if _, err := n.Service.AddAssignment(ctx, n.Title, n.Course, n.Due); err != nil {
		return err
	}

	d := n.Service.Dashboard(time.Now())
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Assignments")
	pp.Assignments(d.Assignments)
	return nil
}
