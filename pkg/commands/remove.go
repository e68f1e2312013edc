package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/cyclehq/cycle/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete an entry or a task.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	entry := &cobra.Command{
		Use:     "entry [id]",
		Short:   base.Wrap80("Delete a journal entry by id. Use get entries --show-id to find ids."),
		Example: `cycle rm entry 171dff69`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := remove.Entry{ID: args[0], Service: svc}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(entry)

	task := &cobra.Command{
		Use:     "task [id]",
		Short:   base.Wrap80("Delete a task by id."),
		Example: `cycle rm task 171dff69`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := remove.Task{ID: args[0], Service: svc}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(task)

	topLevel.AddCommand(cmd)
}
