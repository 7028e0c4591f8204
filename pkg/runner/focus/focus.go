// Package focus provides the runner logic for the interactive countdown.
package focus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/lifeos/pkg/app"
	"tableflip.dev/lifeos/pkg/focus"
	"tableflip.dev/lifeos/pkg/timeutil"
)

// Focus runs a study timer in the terminal. Completion logs the minutes and
// records the session; cancellation discards the run without logging.
type Focus struct {
	Minutes int

	Service *app.Service
}

func (n *Focus) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not focus, no service")
	}

	if n.Minutes > 0 {
		if err := n.Service.Focus.SetMinutes(n.Minutes); err != nil {
			return err
		}
	}
	if err := n.Service.Focus.Start(time.Now()); err != nil {
		return err
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	_, _ = bold.Printf("Focusing for %s. Ctrl-C to stop.\n", timeutil.FormatMinutes(n.Service.Focus.Minutes()))

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			n.Service.Focus.Stop()
			fmt.Println("")
			_, _ = faint.Println("Stopped. Nothing logged.")
			return nil
		case now := <-ticker.C:
			done, err := n.Service.TickFocus(ctx, now)
			if err != nil {
				return err
			}
			if done {
				minutes := n.Service.Focus.Minutes()
				n.Service.Focus.Reset()
				fmt.Print("\r          \r")
				_, _ = bold.Printf("Done. Logged %s of study.\n", timeutil.FormatMinutes(minutes))
				return nil
			}
			fmt.Printf("\r  %s  ", focus.FormatClock(n.Service.Focus.Remaining(now)))
		}
	}
}
