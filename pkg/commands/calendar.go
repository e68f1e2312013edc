package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/cyclehq/cycle/pkg/commands/options"
	"github.com/cyclehq/cycle/pkg/runner/month"
	"github.com/cyclehq/cycle/pkg/runner/week"
)

func addWeek(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OffsetOptions{}

	cmd := &cobra.Command{
		Use:   "week",
		Short: base.Wrap80("Show a week, Sunday first, with the entries written in it."),
		Example: `cycle week
cycle week -o -1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := week.Week{Offset: oo.Offset, Service: svc, ShowID: io.ShowID}
			return r.Do(cmd.Context())
		},
	}
	options.AddOffsetArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}

func addMonth(topLevel *cobra.Command) {
	oo := &options.OffsetOptions{}

	cmd := &cobra.Command{
		Use:   "month",
		Short: base.Wrap80("Show a month grid, marking days that have entries."),
		Example: `cycle month
cycle month -o 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := month.Month{Offset: oo.Offset, Service: svc}
			return r.Do(cmd.Context())
		},
	}
	options.AddOffsetArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
