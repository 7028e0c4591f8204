package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lifeos/pkg/commands/options"
	"tableflip.dev/lifeos/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a habit or an assignment",
		Example: `
lifeos add habit Read 20 pages
lifeos add assignment "Essay draft" --course History --due 2026-09-05
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddHabit(cmd)
	addAddAssignment(cmd)

	topLevel.AddCommand(cmd)
}

func addAddHabit(topLevel *cobra.Command) {
	title := ""

	cmd := &cobra.Command{
		Use:     "habit",
		Aliases: []string{"habits", "h"},
		Short:   "Add a daily habit",
		Example: `
lifeos add habit Read 20 pages
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := add.Habit{
				Title:   title,
				Service: svc,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addAddAssignment(topLevel *cobra.Command) {
	ao := &options.AssignmentOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:     "assignment",
		Aliases: []string{"assignments", "hw"},
		Short:   "Add a deadline-tracked assignment",
		Example: `
lifeos add assignment "Essay draft" --course History --due 2026-09-05
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an assignment title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := add.Assignment{
				Title:   title,
				Course:  ao.Course,
				Due:     ao.Due,
				Service: svc,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddAssignmentArgs(cmd, ao)

	topLevel.AddCommand(cmd)
}
