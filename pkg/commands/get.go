package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/lifeos/pkg/commands/options"
	"tableflip.dev/lifeos/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	topic := ""

	cmd := &cobra.Command{
		Use:       "get [topic]",
		Short:     "Print the dashboard or one of its sections",
		ValidArgs: []string{"dashboard", "habits", "assignments", "sessions"},
		Example: `
lifeos get
lifeos get habits
lifeos get assignments --show-id
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("at most one topic")
			}
			if len(args) == 1 {
				topic = args[0]
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:  io.ShowID,
				Topic:   topic,
				Service: svc,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
