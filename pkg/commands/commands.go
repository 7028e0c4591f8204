package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "lifeos",
		Short: base.Wrap80("Habits, deadlines, and focused study on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	base.AddOutputArg(cmd, oo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addCheck(topLevel)
	addDone(topLevel)
	addLog(topLevel)
	addFocus(topLevel)
	addSet(topLevel)
	addVersion(topLevel)
}
