package group

import (
	"context"

	"github.com/cyclehq/cycle/pkg/app"
	"github.com/cyclehq/cycle/pkg/printers"
)

// Remove deletes a group. Tasks assigned to it are kept and become
// ungrouped.
type Remove struct {
	Ref     string
	Service *app.Service
	ShowID  bool
}

func (r *Remove) Do(ctx context.Context) error {
	g, err := r.Service.FindGroup(r.Ref)
	if err != nil {
		return err
	}
	if err := r.Service.DeleteGroup(g.ID); err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: r.ShowID}
	pp.TitleWithCount("Groups", len(r.Service.Groups()))
	pp.Groups(r.Service.Groups()...)
	return nil
}

// Rename changes a group's name, keeping its color and order.
type Rename struct {
	Ref     string
	Name    string
	Color   string
	Service *app.Service
	ShowID  bool
}

func (r *Rename) Do(ctx context.Context) error {
	g, err := r.Service.FindGroup(r.Ref)
	if err != nil {
		return err
	}
	name := r.Name
	if name == "" {
		name = g.Name
	}
	color := r.Color
	if color == "" {
		color = g.ColorHex
	}
	if err := r.Service.UpdateGroup(g.ID, name, color); err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: r.ShowID}
	pp.TitleWithCount("Groups", len(r.Service.Groups()))
	pp.Groups(r.Service.Groups()...)
	return nil
}

// Use marks a group as the default for new tasks. A blank ref clears the
// selection.
type Use struct {
	Ref     string
	Service *app.Service
}

func (r *Use) Do(ctx context.Context) error {
	if r.Ref == "" {
		r.Service.SelectGroup(nil)
		return nil
	}
	g, err := r.Service.FindGroup(r.Ref)
	if err != nil {
		return err
	}
	r.Service.SelectGroup(&g.ID)
	pp := printers.PrettyPrint{}
	pp.Title("Using group")
	pp.Groups(*g)
	return nil
}
