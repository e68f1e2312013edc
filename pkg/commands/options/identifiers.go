package options

import "github.com/spf13/cobra"

// IDOptions controls whether listings include record ids.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Include short record ids in the output.")
}
