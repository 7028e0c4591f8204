// Package set provides runner logic for tracker settings.
package set

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"tableflip.dev/lifeos/pkg/app"
	"tableflip.dev/lifeos/pkg/theme"
	"tableflip.dev/lifeos/pkg/timeutil"
)

// Goal sets the daily study goal in minutes.
type Goal struct {
	Minutes int

	Service *app.Service
}

func (n *Goal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set, no service")
	}
	if err := n.Service.SetStudyGoal(ctx, n.Minutes); err != nil {
		return err
	}
	_, _ = color.New(color.Bold).Printf("Daily study goal set to %s.\n", timeutil.FormatMinutes(n.Minutes))
	return nil
}

// Theme sets the light/dark mode.
type Theme struct {
	Mode string

	Service *app.Service
}

func (n *Theme) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set, no service")
	}
	m, err := theme.ParseMode(n.Mode)
	if err != nil {
		return err
	}
	if err := n.Service.SetTheme(ctx, m); err != nil {
		return err
	}
	_, _ = color.New(color.Bold).Printf("Theme set to %s.\n", m)
	return nil
}

// Palette sets the accent color preset.
type Palette struct {
	ID string

	Service *app.Service
}

func (n *Palette) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set, no service")
	}
	if err := n.Service.SetPalette(ctx, n.ID); err != nil {
		return err
	}
	p := theme.Get(n.ID)
	_, _ = color.New(color.Bold).Printf("Palette set to %s.\n", p.Label)
	return nil
}
