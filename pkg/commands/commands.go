package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/cyclehq/cycle/pkg/app"
	"github.com/cyclehq/cycle/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: base.Wrap80("Journaling, tasks and reflection on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addRemove(topLevel)
	addComplete(topLevel)
	addReflect(topLevel)
	addTag(topLevel)
	addGroup(topLevel)
	addWeek(topLevel)
	addMonth(topLevel)
	addWatch(topLevel)
	addCoach(topLevel)
	addVersion(topLevel)
}

// newService loads persistence from config and wraps it in the app
// service. Every leaf command starts here.
func newService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.New(p), nil
}
