package add

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/cyclehq/cycle/pkg/app"
	"github.com/cyclehq/cycle/pkg/printers"
)

// Entry records a journal entry, dated now or onto the given day.
type Entry struct {
	Text    string
	Tags    []string
	On      *time.Time
	Service *app.Service
	ShowID  bool
}

func (r *Entry) Do(ctx context.Context) error {
	at := time.Now()
	if r.On != nil {
		// Keep the wall clock so entries on the same day stay ordered.
		y, m, d := r.On.Date()
		at = time.Date(y, m, d, at.Hour(), at.Minute(), at.Second(), 0, time.Local)
	}
	e, ok := r.Service.AddEntryAt(at, r.Text, r.Tags...)
	if !ok {
		return errors.New("entry text must not be empty")
	}
	pp := printers.PrettyPrint{ShowID: r.ShowID}
	pp.Title("Added entry")
	pp.Entries(*e)
	return nil
}

// Task records a new task, optionally assigned to a group.
type Task struct {
	Title       string
	Description string
	Group       string
	Service     *app.Service
	ShowID      bool
}

func (r *Task) Do(ctx context.Context) error {
	var gid *uuid.UUID
	if r.Group != "" {
		g, err := r.Service.FindGroup(r.Group)
		if err != nil {
			return err
		}
		gid = &g.ID
	}
	t, ok := r.Service.AddTask(r.Title, r.Description, gid)
	if !ok {
		return errors.New("task title must not be empty")
	}
	pp := printers.PrettyPrint{ShowID: r.ShowID}
	pp.Title("Added task")
	pp.Tasks(*t)
	return nil
}

// Group creates a task group.
type Group struct {
	Name    string
	Color   string
	Service *app.Service
	ShowID  bool
}

func (r *Group) Do(ctx context.Context) error {
	g, ok := r.Service.AddGroup(r.Name, r.Color)
	if !ok {
		return errors.New("group name must not be empty")
	}
	pp := printers.PrettyPrint{ShowID: r.ShowID}
	pp.Title("Added group")
	pp.Groups(*g)
	return nil
}
