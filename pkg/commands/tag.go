package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/cyclehq/cycle/pkg/runner/tag"
)

func addTag(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage the tag universe.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	add := &cobra.Command{
		Use:     "add [name]",
		Short:   base.Wrap80("Register a tag before any entry uses it."),
		Example: `cycle tag add health`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := tag.Add{Name: args[0], Service: svc}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(add)

	rm := &cobra.Command{
		Use:     "rm [name]",
		Short:   base.Wrap80("Delete a tag. It is stripped from every entry and from the filter selection."),
		Example: `cycle tag rm health`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := tag.Remove{Name: args[0], Service: svc}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(rm)

	mv := &cobra.Command{
		Use:     "mv [old] [new]",
		Short:   base.Wrap80("Rename a tag everywhere it appears."),
		Example: `cycle tag mv wellness health`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := tag.Rename{Old: args[0], New: args[1], Service: svc}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(mv)

	toggle := &cobra.Command{
		Use:     "toggle [name]",
		Short:   base.Wrap80("Select or deselect a tag for entry filtering."),
		Example: `cycle tag toggle work`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := tag.Toggle{Name: args[0], Service: svc}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(toggle)

	topLevel.AddCommand(cmd)
}
