package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/winterplan/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command) {
	month := ""

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Show the month calendar with perfect-day stickers",
		Example: `
winterplan cal
winterplan cal --month="2025-02"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := cal.Cal{
				Month:   month,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", `Month to show, example: --month="2025-02".`)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
