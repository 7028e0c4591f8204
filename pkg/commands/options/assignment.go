package options

import (
	"github.com/spf13/cobra"
)

// AssignmentOptions captures the flags for new assignments.
type AssignmentOptions struct {
	Course string
	Due    string
}

func AddAssignmentArgs(cmd *cobra.Command, o *AssignmentOptions) {
	cmd.Flags().StringVar(&o.Course, "course", "",
		"Course or project the assignment belongs to.")
	cmd.Flags().StringVar(&o.Due, "due", "",
		`Due date, example: --due="2026-09-05".`)
}
