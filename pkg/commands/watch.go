package commands

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/cyclehq/cycle/pkg/commands/options"
	"github.com/cyclehq/cycle/pkg/runner/watch"
	"github.com/cyclehq/cycle/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: base.Wrap80("Follow the journal: reprint entries and open tasks whenever another process changes them. Interrupt to stop."),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			r := watch.Watch{Persistence: p, ShowID: io.ShowID}
			return r.Do(ctx)
		},
	}
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
