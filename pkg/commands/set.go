package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lifeos/pkg/runner/set"
	"tableflip.dev/lifeos/pkg/theme"
	"tableflip.dev/lifeos/pkg/timeutil"
)

func addSet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change tracker settings",
		Example: `
lifeos set goal 2h
lifeos set theme dark
lifeos set palette mint
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSetGoal(cmd)
	addSetTheme(cmd)
	addSetPalette(cmd)

	topLevel.AddCommand(cmd)
}

func addSetGoal(topLevel *cobra.Command) {
	minutes := 0

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Set the daily study goal",
		Example: `
lifeos set goal 2h
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a duration, like 120m or 2h")
			}
			var err error
			minutes, err = timeutil.ParseMinutes(strings.Join(args, ""))
			return err
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := set.Goal{
				Minutes: minutes,
				Service: svc,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addSetTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "theme",
		Short:     "Set light or dark mode",
		ValidArgs: []string{"light", "dark"},
		Example: `
lifeos set theme dark
`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := set.Theme{
				Mode:    args[0],
				Service: svc,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addSetPalette(topLevel *cobra.Command) {
	validArgs := make([]string, 0, len(theme.Presets()))
	long := strings.Builder{}
	long.WriteString("Set the accent palette.\n\nPresets:\n")
	for _, p := range theme.Presets() {
		validArgs = append(validArgs, p.ID)
		long.WriteString(fmt.Sprintf("%s: %s\n", p.ID, p.Label))
	}

	cmd := &cobra.Command{
		Use:       "palette",
		Short:     "Set the accent palette",
		Long:      long.String(),
		ValidArgs: validArgs,
		Example: `
lifeos set palette mint
`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := set.Palette{
				ID:      args[0],
				Service: svc,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
