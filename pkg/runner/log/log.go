package log

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/lifeos/pkg/app"
	"tableflip.dev/lifeos/pkg/calendar"
	"tableflip.dev/lifeos/pkg/timeutil"
)

// Log records study minutes against a day.
type Log struct {
	Minutes int
	On      *time.Time

	Service *app.Service
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no service")
	}

	day := calendar.Today(time.Now())
	if n.On != nil {
		day = calendar.Normalize(*n.On)
	}

	if err := n.Service.RecordStudyMinutes(ctx, day.ISO(), n.Minutes); err != nil {
		return err
	}

	d := n.Service.Dashboard(time.Now())
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	_, _ = bold.Printf("Logged %s on %s.\n", timeutil.FormatMinutes(n.Minutes), day.Friendly())
	_, _ = faint.Printf("Study today: %s (%d%%)  %s\n", d.Study.Label, d.Study.Percent, d.Study.Hint)
	return nil
}
