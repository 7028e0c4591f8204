// Package done provides the runner logic for toggling assignments complete.
package done

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/lifeos/pkg/app"
	"tableflip.dev/lifeos/pkg/entity"
	"tableflip.dev/lifeos/pkg/printers"
)

// Done toggles an assignment's completion. Ref matches an assignment ID or
// title, case-insensitively.
type Done struct {
	Ref string

	Service *app.Service
}

func (n *Done) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	a := resolve(n.Service.Store.Assignments(), n.Ref)
	if a == nil {
		return fmt.Errorf("no assignment matches %q", n.Ref)
	}

	if _, err := n.Service.ToggleAssignmentDone(ctx, a.ID); err != nil {
		return err
	}

	d := n.Service.Dashboard(time.Now())
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Assignments")
	pp.Assignments(d.Assignments)
	return nil
}

func resolve(assignments []*entity.Assignment, ref string) *entity.Assignment {
	for _, a := range assignments {
		if a.ID == ref {
			return a
		}
	}
	for _, a := range assignments {
		if strings.EqualFold(a.Title, strings.TrimSpace(ref)) {
			return a
		}
	}
	return nil
}
