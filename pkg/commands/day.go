package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/winterplan/pkg/commands/options"
	"tableflip.dev/winterplan/pkg/runner/day"
)

func addDay(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show one day's page: tasks and records",
		Example: `
winterplan day
winterplan day --date="2025-01-05" --show-id
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := day.Day{
				Date:    do.Date,
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
