package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"github.com/cyclehq/cycle/pkg/coach"
	"github.com/cyclehq/cycle/pkg/journal"
	"github.com/cyclehq/cycle/pkg/task"
)

// Collection keys. Each key holds one JSON document containing the whole
// collection; every mutation rewrites the full document.
const (
	KeyJournals = "journals"
	KeyTasks    = "tasks"
	KeyGroups   = "groups"
	KeyTags     = "tags"
	KeySessions = "sessions"
	KeyState    = "state"
)

// State carries the user's current selections so they survive between
// process runs.
type State struct {
	SelectedTags  []string   `json:"selectedTags,omitempty"`
	SelectedGroup *uuid.UUID `json:"selectedGroup,omitempty"`
}

// Persistence defines the persistence contract for the journal, task, and
// coach collections. Loads degrade to the empty collection on any read or
// decode failure; saves are best-effort and never surface errors to the
// caller. Callers always receive their own copy of the data.
type Persistence interface {
	LoadEntries() []journal.Entry
	SaveEntries([]journal.Entry)
	LoadTasks() []task.Task
	SaveTasks([]task.Task)
	LoadGroups() []task.Group
	SaveGroups([]task.Group)
	LoadTags() []string
	SaveTags([]string)
	LoadSessions() []coach.Session
	SaveSessions([]coach.Session)
	LoadState() State
	SaveState(State)
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) LoadEntries() []journal.Entry {
	var out []journal.Entry
	p.read(KeyJournals, &out)
	return out
}

func (p *persistence) SaveEntries(entries []journal.Entry) {
	p.write(KeyJournals, entries)
}

func (p *persistence) LoadTasks() []task.Task {
	var out []task.Task
	p.read(KeyTasks, &out)
	return out
}

func (p *persistence) SaveTasks(tasks []task.Task) {
	p.write(KeyTasks, tasks)
}

func (p *persistence) LoadGroups() []task.Group {
	var out []task.Group
	p.read(KeyGroups, &out)
	return out
}

func (p *persistence) SaveGroups(groups []task.Group) {
	p.write(KeyGroups, groups)
}

func (p *persistence) LoadTags() []string {
	var out []string
	p.read(KeyTags, &out)
	return out
}

func (p *persistence) SaveTags(tags []string) {
	p.write(KeyTags, tags)
}

func (p *persistence) LoadSessions() []coach.Session {
	var out []coach.Session
	p.read(KeySessions, &out)
	return out
}

func (p *persistence) SaveSessions(sessions []coach.Session) {
	p.write(KeySessions, sessions)
}

func (p *persistence) LoadState() State {
	var out State
	p.read(KeyState, &out)
	return out
}

func (p *persistence) SaveState(state State) {
	p.write(KeyState, state)
}

// read decodes the document at key into out. A missing key is an empty
// collection; a corrupt document is reported on stderr and treated the
// same way.
func (p *persistence) read(key string, out any) {
	data, err := p.d.Read(key)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
	}
}

// write replaces the document at key. Failures are reported on stderr and
// otherwise swallowed; the in-memory state remains the source of truth for
// the rest of the process.
func (p *persistence) write(key string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
		return
	}
	if err := p.d.Write(key, data); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
	}
}
