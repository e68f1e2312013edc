package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/cyclehq/cycle/pkg/commands/options"
	"github.com/cyclehq/cycle/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	skip := &cobra.Command{
		Use:     "skip [id]",
		Short:   base.Wrap80("Complete a task without reflecting on it."),
		Example: `cycle skip 171dff69`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := complete.Skip{ID: args[0], Service: svc, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(skip, io)
	topLevel.AddCommand(skip)

	toggle := &cobra.Command{
		Use:     "toggle [id]",
		Short:   base.Wrap80("Flip a task between open and completed. Reopening discards any reflection."),
		Example: `cycle toggle 171dff69`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := complete.Toggle{ID: args[0], Service: svc, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(toggle, io)
	topLevel.AddCommand(toggle)
}
