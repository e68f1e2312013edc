package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/cyclehq/cycle/pkg/commands/options"
	"github.com/cyclehq/cycle/pkg/runner/group"
)

func addGroup(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage task groups.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rm := &cobra.Command{
		Use:     "rm [name or id]",
		Short:   base.Wrap80("Delete a group. Its tasks are kept and become ungrouped."),
		Example: `cycle group rm work`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := group.Remove{Ref: args[0], Service: svc, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddShowIDArgs(rm, io)
	cmd.AddCommand(rm)

	var color string
	mv := &cobra.Command{
		Use:     "mv [name or id] [new name]",
		Short:   base.Wrap80("Rename a group, keeping its order."),
		Example: `cycle group mv work dayjob`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 1 {
				name = args[1]
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := group.Rename{
				Ref:     args[0],
				Name:    name,
				Color:   color,
				Service: svc,
				ShowID:  io.ShowID,
			}
			return r.Do(cmd.Context())
		},
	}
	mv.Flags().StringVarP(&color, "color", "c", "", "New hex color for the group.")
	options.AddShowIDArgs(mv, io)
	cmd.AddCommand(mv)

	use := &cobra.Command{
		Use:     "use [name or id]",
		Short:   base.Wrap80("Make a group the default for new tasks. Without an argument the default is cleared."),
		Example: `cycle group use work`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := ""
			if len(args) > 0 {
				ref = args[0]
			}
			svc, err := newService()
			if err != nil {
				return err
			}
			r := group.Use{Ref: ref, Service: svc}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(use)

	topLevel.AddCommand(cmd)
}
