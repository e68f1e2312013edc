package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/cyclehq/cycle/pkg/commands/options"
	"github.com/cyclehq/cycle/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an entry, a task or a group.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	eo := &options.EntryOptions{}
	entry := &cobra.Command{
		Use:     "entry [text]",
		Short:   base.Wrap80("Write a journal entry. Tags apply to the whole entry."),
		Example: `cycle add entry "shipped the release" -t work -t wins`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := eo.Day()
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := add.Entry{
				Text:    strings.Join(args, " "),
				Tags:    eo.Tags,
				On:      day,
				Service: svc,
				ShowID:  io.ShowID,
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddEntryArgs(entry, eo)
	options.AddShowIDArgs(entry, io)
	cmd.AddCommand(entry)

	to := &options.TaskOptions{}
	task := &cobra.Command{
		Use:     "task [title]",
		Short:   base.Wrap80("Create a task, optionally inside a group."),
		Example: `cycle add task "write retro notes" -g work`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := add.Task{
				Title:       strings.Join(args, " "),
				Description: to.Description,
				Group:       to.Group,
				Service:     svc,
				ShowID:      io.ShowID,
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddTaskArgs(task, to)
	options.AddShowIDArgs(task, io)
	cmd.AddCommand(task)

	gro := &options.GroupOptions{}
	group := &cobra.Command{
		Use:     "group [name]",
		Short:   base.Wrap80("Create a task group."),
		Example: `cycle add group work -c "#FF5733"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(strings.Join(args, " "))
			if name == "" {
				return errors.New("group name must not be empty")
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := add.Group{
				Name:    name,
				Color:   gro.Color,
				Service: svc,
				ShowID:  io.ShowID,
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddGroupArgs(group, gro)
	options.AddShowIDArgs(group, io)
	cmd.AddCommand(group)

	topLevel.AddCommand(cmd)
}
