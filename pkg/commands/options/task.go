package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions
type TaskOptions struct {
	Category string
	Priority bool
	Range    string
	Dates    []string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Specify the task category.")
	cmd.Flags().BoolVarP(&o.Priority, "priority", "p", false,
		"Mark the task as priority.")
	cmd.Flags().StringVarP(&o.Range, "range", "r", "today",
		"Which dates the task lands on. One of 'today', 'period', or 'all'.")
	cmd.Flags().StringSliceVar(&o.Dates, "on", nil,
		`Dates for --range=period, example: --on="2025-01-05,2025-01-07".`)
}
