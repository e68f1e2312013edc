package complete

import (
	"context"

	"github.com/cyclehq/cycle/pkg/app"
	"github.com/cyclehq/cycle/pkg/printers"
)

// Skip marks a task complete without a reflection.
type Skip struct {
	ID      string
	Service *app.Service
	ShowID  bool
}

func (r *Skip) Do(ctx context.Context) error {
	t, err := r.Service.FindTask(r.ID)
	if err != nil {
		return err
	}
	if err := r.Service.SkipComplete(t.ID); err != nil {
		return err
	}

	done, err := r.Service.FindTask(t.ID.String())
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: r.ShowID}
	pp.Title("Completed")
	pp.Tasks(*done)
	return nil
}

// Toggle flips a task between open and completed. Reopening a task also
// discards its reflection.
type Toggle struct {
	ID      string
	Service *app.Service
	ShowID  bool
}

func (r *Toggle) Do(ctx context.Context) error {
	t, err := r.Service.FindTask(r.ID)
	if err != nil {
		return err
	}
	if err := r.Service.ToggleTask(t.ID); err != nil {
		return err
	}

	flipped, err := r.Service.FindTask(t.ID.String())
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: r.ShowID}
	if flipped.Completed {
		pp.Title("Completed")
	} else {
		pp.Title("Reopened")
	}
	pp.Tasks(*flipped)
	return nil
}
