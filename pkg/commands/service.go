package commands

import (
	"context"
	"time"

	"tableflip.dev/lifeos/pkg/app"
	"tableflip.dev/lifeos/pkg/calendar"
	"tableflip.dev/lifeos/pkg/store"
)

// loadService opens persistence and restores the tracker state. Absent or
// malformed state falls back to defaults inside Load.
func loadService(ctx context.Context) (*app.Service, error) {
	p, err := store.Open(nil)
	if err != nil {
		return nil, err
	}
	svc := app.New(store.NewStore(calendar.Today(time.Now())), p)
	if err := svc.Load(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}
