// Package check provides the runner logic for toggling habit completion.
package check

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/lifeos/pkg/app"
	"tableflip.dev/lifeos/pkg/calendar"
	"tableflip.dev/lifeos/pkg/entity"
	"tableflip.dev/lifeos/pkg/printers"
)

// Check toggles a habit's completion for a day. Ref matches a habit ID or
// title, case-insensitively.
type Check struct {
	Ref string
	On  *time.Time

	Service *app.Service
}

func (n *Check) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not check, no service")
	}

	day := calendar.Today(time.Now())
	if n.On != nil {
		day = calendar.Normalize(*n.On)
	}

	h := resolve(n.Service.Store.Habits(), n.Ref)
	if h == nil {
		return fmt.Errorf("no habit matches %q", n.Ref)
	}

	if _, err := n.Service.ToggleHabitDay(ctx, h.ID, day.ISO()); err != nil {
		return err
	}

	d := n.Service.Dashboard(time.Now())
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Habits")
	pp.Habits(d.HabitList)
	return nil
}

func resolve(habits []*entity.Habit, ref string) *entity.Habit {
	for _, h := range habits {
		if h.ID == ref {
			return h
		}
	}
	for _, h := range habits {
		if strings.EqualFold(h.Title, strings.TrimSpace(ref)) {
			return h
		}
	}
	return nil
}
