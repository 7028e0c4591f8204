package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lifeos/pkg/commands/options"
	"tableflip.dev/lifeos/pkg/runner/log"
	"tableflip.dev/lifeos/pkg/timeutil"
)

func addLog(topLevel *cobra.Command) {
	o := &options.OnOptions{}
	minutes := 0

	cmd := &cobra.Command{
		Use:     "log",
		Aliases: []string{"study"},
		Short:   "Log study minutes against a day",
		Example: `
lifeos log 45m
lifeos log 1h30m --on="2026-2-28"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a duration, like 45m or 1h30m")
			}
			var err error
			minutes, err = timeutil.ParseMinutes(strings.Join(args, ""))
			return err
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
			s := log.Log{
				Minutes: minutes,
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
