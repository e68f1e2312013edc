package options

import "github.com/spf13/cobra"

// CoachOptions holds connection overrides for the coach service. Values
// left blank fall back to configuration.
type CoachOptions struct {
	URL   string
	Token string
}

func AddCoachArgs(cmd *cobra.Command, o *CoachOptions) {
	cmd.Flags().StringVar(&o.URL, "url", "",
		"Base URL of the coach service.")
	cmd.Flags().StringVar(&o.Token, "token", "",
		"Bearer token for the coach service.")
}
