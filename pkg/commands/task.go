package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/winterplan/pkg/app"
	"tableflip.dev/winterplan/pkg/commands/options"
	"tableflip.dev/winterplan/pkg/runner/task"
)

func addTask(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage daily tasks",
		Example: `
winterplan task add 퍼즐 10문제 풀기 --priority
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskAdd(cmd)
	addTaskEdit(cmd)
	addTaskDone(cmd)
	addTaskRm(cmd)

	topLevel.AddCommand(cmd)
}

func addTaskAdd(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	to := &options.TaskOptions{}
	io := &options.IDOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to one day, a set of days, or the whole season",
		Example: `
winterplan task add 독서 30분 --range=all
winterplan task add 줄넘기 --range=period --on="2025-01-05,2025-01-07"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			r := rangeOf(to.Range)
			if !r.Valid() {
				return errors.New("range must be one of 'today', 'period', or 'all'")
			}
			s := task.Save{
				Date: do.Date,
				Form: app.TaskForm{
					Title:      title,
					Category:   to.Category,
					IsPriority: to.Priority,
					Range:      r,
					MultiDates: to.Dates,
				},
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddTaskArgs(cmd, to)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTaskEdit(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	to := &options.TaskOptions{}
	var id int64
	title := ""

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Rewrite a task; editing clears its completed mark",
		Example: `
winterplan task edit <task id> new title words
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires a task id and a title")
			}
			parsed, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			id = parsed
			title = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := task.Save{
				Date: do.Date,
				Form: app.TaskForm{
					Title:      title,
					Category:   to.Category,
					IsPriority: to.Priority,
					Range:      rangeOf(to.Range),
					MultiDates: to.Dates,
				},
				EditID:  id,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddTaskArgs(cmd, to)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTaskDone(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	var id int64

	cmd := &cobra.Command{
		Use:     "done",
		Aliases: []string{"toggle", "undo"},
		Short:   "Toggle a task's completed mark",
		Example: `
winterplan task done <task id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			parsed, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			id = parsed
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := task.Toggle{
				Date:    do.Date,
				ID:      id,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTaskRm(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	co := &options.ConfirmOptions{}
	var id int64

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete a task from one day",
		Example: `
winterplan task rm <task id> --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			parsed, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			id = parsed
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			if err := co.Confirm("delete this task?"); err != nil {
				return err
			}
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := task.Delete{
				Date:    do.Date,
				ID:      id,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddYesArg(cmd, co)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func rangeOf(s string) app.Range {
	if s == "" {
		return app.RangeToday
	}
	return app.Range(s)
}
