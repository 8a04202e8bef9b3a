package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/winterplan/pkg/commands/options"
	"tableflip.dev/winterplan/pkg/journal"
	"tableflip.dev/winterplan/pkg/runner/record"
)

func addRecord(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record reading, timed practice, and games",
		Example: `
winterplan record reading 마법의 설계도 --stars=5
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRecordReading(cmd)
	addRecordPractice(cmd)
	addRecordGame(cmd)
	addRecordRm(cmd)

	topLevel.AddCommand(cmd)
}

func addRecordReading(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	ro := &options.RecordOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "reading",
		Short: "Record a book",
		Example: `
winterplan record reading 마법의 설계도 --stars=4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a book title")
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
			s := record.Reading{
				Date:    do.Date,
				Title:   title,
				Stars:   ro.Stars,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddStarsArg(cmd, ro)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addRecordPractice(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	raw := ""

	cmd := &cobra.Command{
		Use:   "practice",
		Short: "Record a timed practice in seconds",
		Example: `
winterplan record practice 12.34
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires a time in seconds")
			}
			raw = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := record.Practice{
				Date:    do.Date,
				Time:    raw,
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

func addRecordGame(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	ro := &options.RecordOptions{}
	result := ""
	opponent := ""

	cmd := &cobra.Command{
		Use:   "game",
		Short: "Record a game with its result and a commendation tag",
		Example: `
winterplan record game success 김철수 --tag=<tag id>
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires a result and an opponent")
			}
			result = args[0]
			opponent = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := record.Game{
				Date:        do.Date,
				Result:      journal.Result(result),
				Opponent:    opponent,
				HighlightID: ro.Tag,
				Service:     svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddTagArg(cmd, ro)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addRecordRm(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	co := &options.ConfirmOptions{}
	kind := ""
	id := ""

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete a record by kind and id",
		Example: `
winterplan record rm reading <record id> --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 2 {
				return errors.New("requires a kind (reading, practice, game) and a record id")
			}
			kind = args[0]
			id = args[1]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			k := journal.Kind(kind)
			switch k {
			case journal.KindReading, journal.KindPractice, journal.KindGame:
			default:
				return errors.New("kind must be one of 'reading', 'practice', or 'game'")
			}
			if err := co.Confirm("delete this record?"); err != nil {
				return err
			}
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := record.Delete{
				Date:    do.Date,
				Kind:    k,
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
