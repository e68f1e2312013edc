package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/cyclehq/cycle/pkg/coach"
	"github.com/cyclehq/cycle/pkg/commands/options"
	runnercoach "github.com/cyclehq/cycle/pkg/runner/coach"
)

func addCoach(topLevel *cobra.Command) {
	co := &options.CoachOptions{}

	cmd := &cobra.Command{
		Use:   "coach [message]",
		Short: base.Wrap80("Talk to the coach service. The conversation is kept locally as a session."),
		Example: `cycle coach "I keep putting off the hard task"
CYCLE_COACH_TOKEN=... cycle coach "help me plan the week"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			client, err := newCoachClient(co)
			if err != nil {
				return err
			}
			r := runnercoach.Chat{
				Message: strings.Join(args, " "),
				Client:  client,
				Service: svc,
			}
			return r.Do(cmd.Context())
		},
	}
	options.AddCoachArgs(cmd, co)

	sessions := &cobra.Command{
		Use:   "sessions",
		Short: base.Wrap80("List recorded coach conversations, most recent first."),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := runnercoach.Sessions{Service: svc}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(sessions)

	end := &cobra.Command{
		Use:   "end",
		Short: base.Wrap80("Close the active conversation. The next message starts a new one."),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			r := runnercoach.End{Service: svc}
			return r.Do(cmd.Context())
		},
	}
	cmd.AddCommand(end)

	topLevel.AddCommand(cmd)
}

// newCoachClient builds the API client from flags, falling back to the
// coach.url and coach.token config keys (CYCLE_COACH_URL and
// CYCLE_COACH_TOKEN in the environment).
func newCoachClient(co *options.CoachOptions) (*coach.Client, error) {
	url := co.URL
	if url == "" {
		url = viper.GetString("coach.url")
	}
	if url == "" {
		return nil, errors.New("coach service URL not configured, set coach.url or pass --url")
	}
	token := co.Token
	if token == "" {
		token = viper.GetString("coach.token")
	}
	return coach.NewClient(url, token), nil
}
