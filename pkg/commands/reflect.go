package commands

import (
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/cyclehq/cycle/pkg/commands/options"
	"github.com/cyclehq/cycle/pkg/runner/reflect"
)

func addReflect(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	ro := &options.ReflectOptions{}

	cmd := &cobra.Command{
		Use:   "reflect [id]",
		Short: base.Wrap80("Complete a task by answering the four reflection steps: fact, emotion, learning, next step."),
		Example: `cycle reflect 171dff69
cycle reflect 171dff69 --fact "demo went fine" --emotion "relieved"
cycle reflect 171dff69 --edit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := reflect.Reflect{
				ID:       args[0],
				Fact:     ro.Fact,
				Emotion:  ro.Emotion,
				Learning: ro.Learning,
				NextStep: ro.NextStep,
				Edit:     ro.Edit,
				In:       os.Stdin,
				Service:  svc,
				ShowID:   io.ShowID,
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddReflectArgs(cmd, ro)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
