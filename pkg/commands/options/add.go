package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// EntryOptions holds flags for adding journal entries.
type EntryOptions struct {
	Tags []string
	On   string
}

func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Tag the entry. May be given more than once.")
	cmd.Flags().StringVar(&o.On, "on", "",
		"Date the entry onto another day, formatted 2006-01-02.")
}

// Day parses the --on flag. A blank flag returns nil, meaning today.
func (o *EntryOptions) Day() (*time.Time, error) {
	if o.On == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation("2006-01-02", o.On, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid --on date %q: %w", o.On, err)
	}
	return &d, nil
}

// TaskOptions holds flags for adding tasks.
type TaskOptions struct {
	Description string
	Group       string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer description for the task.")
	cmd.Flags().StringVarP(&o.Group, "group", "g", "",
		"Group name or id the task belongs to.")
}

// GroupOptions holds flags for adding task groups.
type GroupOptions struct {
	Color string
}

func AddGroupArgs(cmd *cobra.Command, o *GroupOptions) {
	cmd.Flags().StringVarP(&o.Color, "color", "c", "",
		"Hex color for the group, like #FF5733.")
}
