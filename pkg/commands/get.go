package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/cyclehq/cycle/pkg/commands/options"
	"github.com/cyclehq/cycle/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Short:   "List entries, tasks, groups or tags.",
		Aliases: []string{"list", "ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	fo := &options.FilterOptions{}
	entries := &cobra.Command{
		Use:     "entries",
		Short:   base.Wrap80("List journal entries, newest first. Filters combine: an entry must match the day, the query and at least one tag."),
		Example: `cycle get entries -q standup -t work --on 2026-09-01`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := fo.Day()
			if err != nil {
				return err
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := get.Entries{
				Query:   fo.Query,
				Tags:    fo.Tags,
				Day:     day,
				Service: svc,
				ShowID:  io.ShowID,
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddFilterArgs(entries, fo)
	options.AddShowIDArgs(entries, io)
	cmd.AddCommand(entries)

	to := &options.TaskOptions{}
	var done, all bool
	tasks := &cobra.Command{
		Use:     "tasks",
		Short:   base.Wrap80("List tasks, open ones by default."),
		Example: `cycle get tasks -g work --all`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := get.Tasks{
				Group:   to.Group,
				Done:    done,
				All:     all,
				Service: svc,
				ShowID:  io.ShowID,
			}
			return r.Do(cmd.Context())
		},
	}
	tasks.Flags().StringVarP(&to.Group, "group", "g", "", "Only tasks in this group.")
	tasks.Flags().BoolVar(&done, "done", false, "List completed tasks instead of open ones.")
	tasks.Flags().BoolVarP(&all, "all", "a", false, "List both open and completed tasks.")
	options.AddShowIDArgs(tasks, io)
	cmd.AddCommand(tasks)

	groups := &cobra.Command{
		Use:   "groups",
		Short: base.Wrap80("List task groups in display order."),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := get.Groups{Service: svc, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(groups, io)
	cmd.AddCommand(groups)

	tags := &cobra.Command{
		Use:   "tags",
		Short: base.Wrap80("List every known tag, marking the ones selected for filtering."),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := get.Tags{Service: svc}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(tags)

	topLevel.AddCommand(cmd)
}
