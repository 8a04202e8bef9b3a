package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/winterplan/pkg/commands/options"
	"tableflip.dev/winterplan/pkg/runner/tag"
)

func addTag(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage commendation tags",
		Example: `
winterplan tag list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTagList(cmd)
	addTagAdd(cmd)
	addTagRename(cmd)
	addTagRm(cmd)

	topLevel.AddCommand(cmd)
}

func addTagList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List commendation tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := tag.List{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTagAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new commendation tag with a placeholder label",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := tag.Add{Service: svc}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTagRename(topLevel *cobra.Command) {
	var id int64
	label := ""

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a commendation tag; past game records keep the old label",
		Example: `
winterplan tag rename <tag id> 멋진 수읽기
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 2 {
				return errors.New("requires a tag id and a label")
			}
			parsed, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			id = parsed
			label = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := tag.Rename{
				ID:      id,
				Label:   label,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addTagRm(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	var id int64

	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete a commendation tag; the last one can not be removed",
		Example: `
winterplan tag rm <tag id> --yes
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a tag id")
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
			if err := co.Confirm("delete this tag?"); err != nil {
				return err
			}
			svc, err := loadService(context.Background())
			if err != nil {
				return err
			}
			s := tag.Remove{
				ID:      id,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddYesArg(cmd, co)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
