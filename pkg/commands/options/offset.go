package options

import "github.com/spf13/cobra"

// OffsetOptions holds the page offset for calendar views. Zero is the
// current week or month, negative pages into the past.
type OffsetOptions struct {
	Offset int
}

func AddOffsetArgs(cmd *cobra.Command, o *OffsetOptions) {
	cmd.Flags().IntVarP(&o.Offset, "offset", "o", 0,
		"Pages away from today. -1 is last week or month, 1 is next.")
}
