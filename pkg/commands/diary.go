package commands

import (
	"context"
	"errors"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/winterplan/pkg/commands/options"
	"tableflip.dev/winterplan/pkg/icon"
	"tableflip.dev/winterplan/pkg/runner/diary"
)

func addDiary(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "diary",
		Short: "Write the growth diary",
		Example: `
winterplan diary text 오늘은 퍼즐을 다 풀었다
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDiaryText(cmd)
	addDiaryMood(cmd)
	addDiaryShow(cmd)
	addDiaryExport(cmd)

	topLevel.AddCommand(cmd)
}

func addDiaryText(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	text := ""

	cmd := &cobra.Command{
		Use:   "text",
		Short: "Replace the day's diary text",
		Example: `
winterplan diary text 오늘은 퍼즐을 다 풀었다
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			text = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := diary.Text{
				Date:    do.Date,
				Text:    text,
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

func addDiaryMood(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	mood := ""

	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Set the day's mood",
		Example: `
winterplan diary mood happy
`,
		ValidArgs: icon.Moods(),
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 1 {
				return errors.New("requires at most one mood")
			}
			if len(args) == 1 {
				mood = args[0]
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := diary.Mood{
				Date:    do.Date,
				Mood:    mood,
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

func addDiaryShow(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the day's diary",
		Example: `
winterplan diary show --date="2025-01-05"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := diary.Show{
				Date:    do.Date,
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

func addDiaryExport(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	dir := "."
	label := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the day's drawing as a PNG",
		Example: `
winterplan diary export --date="2025-01-05" --dir=~/Pictures
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := diary.Export{
				Date:    do.Date,
				Dir:     dir,
				Label:   label,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to write the PNG into.")
	cmd.Flags().StringVar(&label, "label", "", "Filename label, defaults to 성장일기.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
