package get

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cyclehq/cycle/pkg/app"
	"github.com/cyclehq/cycle/pkg/printers"
)

// Entries lists journal entries, filtered by query, tags and day. When no
// tags are given the persisted tag selection applies; with no filters at all
// every entry is shown, newest first.
type Entries struct {
	Query   string
	Tags    []string
	Day     *time.Time
	Service *app.Service
	ShowID  bool
}

func (r *Entries) Do(ctx context.Context) error {
	entries := r.Service.FilteredEntries(r.Query, r.Tags, r.Day)

	pp := printers.PrettyPrint{ShowID: r.ShowID}
	pp.TitleWithCount("Entries", len(entries))
	pp.Entries(entries...)
	return nil
}

// Tasks lists open and completed tasks, optionally narrowed to a group.
type Tasks struct {
	Group   string
	Done    bool
	All     bool
	Service *app.Service
	ShowID  bool
}

func (r *Tasks) Do(ctx context.Context) error {
	var gid *uuid.UUID
	if r.Group != "" {
		g, err := r.Service.FindGroup(r.Group)
		if err != nil {
			return err
		}
		gid = &g.ID
	}

	pp := printers.PrettyPrint{ShowID: r.ShowID}

	if !r.Done || r.All {
		open := r.Service.OpenTasks(gid)
		pp.TitleWithCount("Open", len(open))
		pp.Tasks(open...)
	}
	if r.Done || r.All {
		done := r.Service.CompletedTasks(gid)
		pp.TitleWithCount("Completed", len(done))
		pp.Tasks(done...)
	}
	return nil
}

// Groups lists task groups in display order.
type Groups struct {
	Service *app.Service
	ShowID  bool
}

func (r *Groups) Do(ctx context.Context) error {
	groups := r.Service.Groups()

	pp := printers.PrettyPrint{ShowID: r.ShowID}
	pp.TitleWithCount("Groups", len(groups))
	pp.Groups(groups...)
	return nil
}

// Tags lists the tag universe, marking the tags currently selected for
// filtering.
type Tags struct {
	Service *app.Service
}

func (r *Tags) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Title("Tags")
	pp.Tags(r.Service.Tags(), r.Service.SelectedTags())
	return nil
}
