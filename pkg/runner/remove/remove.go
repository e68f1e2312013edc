package remove

import (
	"context"
	"fmt"

	"github.com/cyclehq/cycle/pkg/app"
)

// Entry deletes a journal entry by id prefix.
type Entry struct {
	ID      string
	Service *app.Service
}

func (r *Entry) Do(ctx context.Context) error {
	e, err := r.Service.FindEntry(r.ID)
	if err != nil {
		return err
	}
	if err := r.Service.DeleteEntry(e.ID); err != nil {
		return err
	}
	fmt.Printf("removed entry %q\n", e.Text)
	return nil
}

// Task deletes a task by id prefix.
type Task struct {
	ID      string
	Service *app.Service
}

func (r *Task) Do(ctx context.Context) error {
	t, err := r.Service.FindTask(r.ID)
	if err != nil {
		return err
	}
	if err := r.Service.DeleteTask(t.ID); err != nil {
		return err
	}
	fmt.Printf("removed task %q\n", t.Title)
	return nil
}
