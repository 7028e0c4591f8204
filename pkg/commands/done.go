package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lifeos/pkg/runner/done"
)

func addDone(topLevel *cobra.Command) {
	ref := ""

	cmd := &cobra.Command{
		Use:     "done",
		Aliases: []string{"complete", "completed"},
		Short:   "Toggle an assignment complete",
		Example: `
lifeos done Essay draft
lifeos done <assignment id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an assignment id or title")
			}
			ref = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := done.Done{
				Ref:     ref,
				Service: svc,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
