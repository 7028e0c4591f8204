package commands

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lifeos/pkg/runner/focus"
	"tableflip.dev/lifeos/pkg/timeutil"
)

func addFocus(topLevel *cobra.Command) {
	minutes := 0

	cmd := &cobra.Command{
		Use:   "focus [duration]",
		Short: "Run a study timer; completion logs the minutes",
		Example: `
lifeos focus
lifeos focus 50m
`,
		Args: func(_ *cobra.Command, args []string) error {
			var err error
			minutes, err = timeutil.ParseMinutes(strings.Join(args, ""))
			return err
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := focus.Focus{
				Minutes: minutes,
				Service: svc,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
