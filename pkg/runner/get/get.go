package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/lifeos/pkg/app"
	"tableflip.dev/lifeos/pkg/printers"
)

// Get prints one topic of the current view, or the full dashboard when no
// topic is given.
type Get struct {
	ShowID bool
	Topic  string

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	d := n.Service.Dashboard(time.Now())
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	switch n.Topic {
	case "", "dashboard", "today":
		pp.Dashboard(d)
		pp.NewLine()
		pp.Title("Habits")
		pp.Habits(d.HabitList)
		pp.Title("Assignments")
		pp.Assignments(d.Assignments)
	case "habits":
		pp.Title("Habits")
		pp.Habits(d.HabitList)
	case "assignments":
		pp.Title("Assignments")
		pp.Assignments(d.Assignments)
	case "sessions":
		pp.Title("Recent focus sessions")
		pp.Sessions(d.Sessions)
	default:
		return fmt.Errorf("unknown topic %q", n.Topic)
	}

	return nil
}
