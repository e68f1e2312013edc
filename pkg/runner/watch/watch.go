package watch

import (
	"context"
	"fmt"

	"github.com/cyclehq/cycle/pkg/app"
	"github.com/cyclehq/cycle/pkg/printers"
	"github.com/cyclehq/cycle/pkg/store"
)

// Watch tails the store and reprints the journal and task listings every
// time another process changes a collection. Runs until interrupted.
type Watch struct {
	Persistence store.Persistence
	ShowID      bool
}

func (r *Watch) Do(ctx context.Context) error {
	events, err := r.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	r.render()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			fmt.Printf("\n%s changed\n\n", ev.Collection)
			r.render()
		}
	}
}

// render reloads every collection so the listing reflects what is on disk,
// not this process's stale view.
func (r *Watch) render() {
	svc := app.New(r.Persistence)

	pp := printers.PrettyPrint{ShowID: r.ShowID}
	entries := svc.FilteredEntries("", nil, nil)
	pp.TitleWithCount("Entries", len(entries))
	pp.Entries(entries...)

	open := svc.OpenTasks(nil)
	pp.TitleWithCount("Open", len(open))
	pp.Tasks(open...)
}
