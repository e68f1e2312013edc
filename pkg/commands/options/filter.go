package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// FilterOptions holds the flags that narrow a journal listing.
type FilterOptions struct {
	Query string
	Tags  []string
	On    string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Query, "query", "q", "",
		"Keep entries whose text contains this string, case-insensitive.")
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Keep entries carrying any of the given tags.")
	cmd.Flags().StringVar(&o.On, "on", "",
		"Keep entries from a single day, formatted 2006-01-02.")
}

// Day parses the --on flag. A blank flag returns nil, meaning no day filter.
func (o *FilterOptions) Day() (*time.Time, error) {
	if o.On == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation("2006-01-02", o.On, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --on date %q: %w", o.On, err)
	}
	return &d, nil
}
