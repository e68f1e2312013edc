package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cyclehq/cycle/pkg/journal"
	"github.com/cyclehq/cycle/pkg/task"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string { return c.path }

func newTestStore(t *testing.T) (Persistence, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return p, dir
}

func TestRoundTrip(t *testing.T) {
	p, _ := newTestStore(t)

	entries := []journal.Entry{*journal.New("went for a run", "health")}
	p.SaveEntries(entries)

	got := p.LoadEntries()
	if len(got) != 1 {
		t.Fatalf("got %d entries", len(got))
	}
	if got[0].ID != entries[0].ID || got[0].Text != entries[0].Text {
		t.Fatalf("got %+v", got[0])
	}
	if !got[0].HasTag("health") {
		t.Fatal("tag lost in the round trip")
	}
}

func TestTaskRoundTripKeepsReflection(t *testing.T) {
	p, _ := newTestStore(t)

	tk := task.New("run the demo", "dry run first")
	tk.Complete(time.Now())
	tk.Reflection = &task.Reflection{Fact: "it worked", CreatedAt: time.Now()}
	p.SaveTasks([]task.Task{*tk})

	got := p.LoadTasks()
	if len(got) != 1 {
		t.Fatalf("got %d tasks", len(got))
	}
	if !got[0].Completed || got[0].CompletedAt == nil {
		t.Fatalf("got %+v", got[0])
	}
	if got[0].Reflection == nil || got[0].Reflection.Fact != "it worked" {
		t.Fatalf("reflection = %+v", got[0].Reflection)
	}
}

func TestMissingCollectionsAreEmpty(t *testing.T) {
	p, _ := newTestStore(t)

	if got := p.LoadEntries(); len(got) != 0 {
		t.Fatalf("entries = %v", got)
	}
	if got := p.LoadTasks(); len(got) != 0 {
		t.Fatalf("tasks = %v", got)
	}
	if got := p.LoadTags(); len(got) != 0 {
		t.Fatalf("tags = %v", got)
	}
	if got := p.LoadState(); len(got.SelectedTags) != 0 || got.SelectedGroup != nil {
		t.Fatalf("state = %+v", got)
	}
}

func TestCorruptDocumentReadsEmpty(t *testing.T) {
	p, dir := newTestStore(t)

	p.SaveEntries([]journal.Entry{*journal.New("entry")})
	if err := os.WriteFile(filepath.Join(dir, KeyJournals), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("corrupt: %v", err)
	}

	if got := p.LoadEntries(); len(got) != 0 {
		t.Fatalf("corrupt document should read as empty, got %v", got)
	}
}

func TestStateRoundTrip(t *testing.T) {
	p, _ := newTestStore(t)

	g := task.NewGroup("work", "", nil)
	p.SaveState(State{SelectedTags: []string{"work"}, SelectedGroup: &g.ID})

	got := p.LoadState()
	if len(got.SelectedTags) != 1 || got.SelectedTags[0] != "work" {
		t.Fatalf("tags = %v", got.SelectedTags)
	}
	if got.SelectedGroup == nil || *got.SelectedGroup != g.ID {
		t.Fatalf("group = %v", got.SelectedGroup)
	}
}

func TestMemoryIsolation(t *testing.T) {
	m := NewMemory()

	entries := []journal.Entry{*journal.New("entry", "work")}
	m.SaveEntries(entries)

	got := m.LoadEntries()
	got[0].Text = "mutated"
	if m.LoadEntries()[0].Text != "entry" {
		t.Fatal("loads must return copies")
	}
}

func TestMemoryWatch(t *testing.T) {
	m := NewMemory()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := m.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	m.SaveTasks(nil)
	select {
	case ev := <-events:
		if ev.Collection != KeyTasks {
			t.Fatalf("collection = %q", ev.Collection)
		}
	case <-time.After(time.Second):
		t.Fatal("no event")
	}

	cancel()
	select {
	case _, ok := <-events:
		if ok {
			// A buffered event may still arrive; the close follows.
			_, ok = <-events
			if ok {
				t.Fatal("channel should close after cancel")
			}
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed")
	}
}

func TestMemoryWatchCancelDuringSaves(t *testing.T) {
	m := NewMemory()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			m.SaveTasks(nil)
		}
	}()

	for i := 0; i < 50; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		events, err := m.Watch(ctx)
		if err != nil {
			t.Fatalf("watch: %v", err)
		}
		cancel()
		for range events {
		}
	}
	<-done
}
