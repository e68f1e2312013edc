package store

import (
	"context"
	"sync"

	"github.com/cyclehq/cycle/pkg/coach"
	"github.com/cyclehq/cycle/pkg/journal"
	"github.com/cyclehq/cycle/pkg/task"
)

// Memory is an in-process Persistence used by tests and by callers that do
// not want anything on disk. It honors the same contract as the diskv store:
// loads return copies, saves replace the whole collection.
type Memory struct {
	mu       sync.Mutex
	entries  []journal.Entry
	tasks    []task.Task
	groups   []task.Group
	tags     []string
	sessions []coach.Session
	state    State

	watchers []chan Event
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadEntries() []journal.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]journal.Entry(nil), m.entries...)
}

func (m *Memory) SaveEntries(entries []journal.Entry) {
	m.mu.Lock()
	m.entries = append([]journal.Entry(nil), entries...)
	m.mu.Unlock()
	m.notify(KeyJournals)
}

func (m *Memory) LoadTasks() []task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]task.Task(nil), m.tasks...)
}

func (m *Memory) SaveTasks(tasks []task.Task) {
	m.mu.Lock()
	m.tasks = append([]task.Task(nil), tasks...)
	m.mu.Unlock()
	m.notify(KeyTasks)
}

func (m *Memory) LoadGroups() []task.Group {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]task.Group(nil), m.groups...)
}

func (m *Memory) SaveGroups(groups []task.Group) {
	m.mu.Lock()
	m.groups = append([]task.Group(nil), groups...)
	m.mu.Unlock()
	m.notify(KeyGroups)
}

func (m *Memory) LoadTags() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.tags...)
}

func (m *Memory) SaveTags(tags []string) {
	m.mu.Lock()
	m.tags = append([]string(nil), tags...)
	m.mu.Unlock()
	m.notify(KeyTags)
}

func (m *Memory) LoadSessions() []coach.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]coach.Session(nil), m.sessions...)
}

func (m *Memory) SaveSessions(sessions []coach.Session) {
	m.mu.Lock()
	m.sessions = append([]coach.Session(nil), sessions...)
	m.mu.Unlock()
	m.notify(KeySessions)
}

func (m *Memory) LoadState() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.state
	out.SelectedTags = append([]string(nil), m.state.SelectedTags...)
	return out
}

func (m *Memory) SaveState(state State) {
	m.mu.Lock()
	m.state = state
	m.state.SelectedTags = append([]string(nil), state.SelectedTags...)
	m.mu.Unlock()
	m.notify(KeyState)
}

// Watch emits an event for every save until ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		// Close under the same lock notify sends under, so a racing save
		// cannot send on a closed channel.
		m.mu.Lock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
		m.mu.Unlock()
	}()

	return ch, nil
}

func (m *Memory) notify(collection string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		select {
		case w <- Event{Collection: collection}:
		default:
		}
	}
}
