package tag

import (
	"context"
	"fmt"

	"github.com/cyclehq/cycle/pkg/app"
	"github.com/cyclehq/cycle/pkg/printers"
)

// Add registers a tag so it can be used before any entry carries it.
type Add struct {
	Name    string
	Service *app.Service
}

func (r *Add) Do(ctx context.Context) error {
	if !r.Service.AddTag(r.Name) {
		fmt.Printf("tag %q already exists\n", r.Name)
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.Title("Tags")
	pp.Tags(r.Service.Tags(), r.Service.SelectedTags())
	return nil
}

// Remove drops a tag everywhere it appears, entries included.
type Remove struct {
	Name    string
	Service *app.Service
}

func (r *Remove) Do(ctx context.Context) error {
	if !r.Service.RemoveTag(r.Name) {
		fmt.Printf("tag %q not found\n", r.Name)
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.Title("Tags")
	pp.Tags(r.Service.Tags(), r.Service.SelectedTags())
	return nil
}

// Rename changes a tag's name everywhere it appears.
type Rename struct {
	Old     string
	New     string
	Service *app.Service
}

func (r *Rename) Do(ctx context.Context) error {
	if !r.Service.RenameTag(r.Old, r.New) {
		fmt.Printf("cannot rename %q to %q\n", r.Old, r.New)
		return nil
	}
	pp := printers.PrettyPrint{}
	pp.Title("Tags")
	pp.Tags(r.Service.Tags(), r.Service.SelectedTags())
	return nil
}

// Toggle flips a tag in and out of the selected filter set.
type Toggle struct {
	Name    string
	Service *app.Service
}

func (r *Toggle) Do(ctx context.Context) error {
	r.Service.ToggleTag(r.Name)
	pp := printers.PrettyPrint{}
	pp.Title("Tags")
	pp.Tags(r.Service.Tags(), r.Service.SelectedTags())
	return nil
}
