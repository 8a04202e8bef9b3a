package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/winterplan/pkg/app"
	"tableflip.dev/winterplan/pkg/store"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "winterplan",
		Short: base.Wrap80("A winter-vacation daily planner on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addDay(topLevel)
	addTask(topLevel)
	addRecord(topLevel)
	addDiary(topLevel)
	addTag(topLevel)
	addStats(topLevel)
	addCal(topLevel)
	addVersion(topLevel)
}

// loadService wires config, persistence, and the planner engines for one
// command invocation.
func loadService(ctx context.Context) (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	return app.Load(ctx, p, cfg)
}
