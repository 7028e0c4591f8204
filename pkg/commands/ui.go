package commands

import (
	"context"

	"github.com/spf13/cobra"

	teaui "tableflip.dev/lifeos/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
lifeos ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			return teaui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
