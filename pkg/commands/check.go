package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lifeos/pkg/commands/options"
	"tableflip.dev/lifeos/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	o := &options.OnOptions{}
	ref := ""

	cmd := &cobra.Command{
		Use:     "check",
		Aliases: []string{"toggle", "did"},
		Short:   "Toggle a habit's completion for a day",
		Example: `
lifeos check Read 20 pages
lifeos check <habit id> --on="2026-2-28"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a habit id or title")
			}
			ref = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			on, err := o.GetOn()
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := check.Check{
				Ref:     ref,
				On:      on,
				Service: svc,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, o)

	topLevel.AddCommand(cmd)
}
