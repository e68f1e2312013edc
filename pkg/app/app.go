package app

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cyclehq/cycle/pkg/coach"
	"github.com/cyclehq/cycle/pkg/filter"
	"github.com/cyclehq/cycle/pkg/journal"
	"github.com/cyclehq/cycle/pkg/store"
	"github.com/cyclehq/cycle/pkg/tags"
	"github.com/cyclehq/cycle/pkg/task"
)

// ErrNotFound is returned when an id does not resolve to a record.
var ErrNotFound = errors.New("app: not found")

// Service provides the high-level operations for entries, tasks, groups, and
// tags so CLIs and other frontends can share logic. It owns the in-memory
// collections; every mutation rewrites the touched collections through the
// configured persistence in one batch.
//
// Validation failures (blank required text) are silent no-ops: the mutator
// reports false and nothing is persisted.
type Service struct {
	Persistence store.Persistence

	entries  []journal.Entry
	tasks    []task.Task
	groups   []task.Group
	explicit []string
	selected []string
	sessions []coach.Session

	selectedGroup *uuid.UUID
}

// New loads every collection from persistence. Missing or unreadable
// collections come back empty, never as an error.
func New(p store.Persistence) *Service {
	state := p.LoadState()
	return &Service{
		Persistence:   p,
		entries:       p.LoadEntries(),
		tasks:         p.LoadTasks(),
		groups:        p.LoadGroups(),
		explicit:      p.LoadTags(),
		sessions:      p.LoadSessions(),
		selected:      state.SelectedTags,
		selectedGroup: state.SelectedGroup,
	}
}

func (s *Service) saveState() {
	s.Persistence.SaveState(store.State{
		SelectedTags:  s.selected,
		SelectedGroup: s.selectedGroup,
	})
}

// Entries returns a copy of all journal entries.
func (s *Service) Entries() []journal.Entry {
	return append([]journal.Entry(nil), s.entries...)
}

// AddEntry creates a journal entry dated now. The text is trimmed first;
// blank text is a silent no-op.
func (s *Service) AddEntry(text string, entryTags ...string) (*journal.Entry, bool) {
	return s.AddEntryAt(time.Now(), text, entryTags...)
}

// AddEntryAt creates a journal entry dated at the given time, for writing
// onto past or future day pages.
func (s *Service) AddEntryAt(at time.Time, text string, entryTags ...string) (*journal.Entry, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	e := journal.New(text, entryTags...)
	e.Date = journal.Timestamp{Time: at}
	s.entries = append(s.entries, *e)
	s.Persistence.SaveEntries(s.entries)
	return e, true
}

// UpdateEntry replaces the text and tags of the entry with the given id.
func (s *Service) UpdateEntry(id uuid.UUID, text string, entryTags []string) error {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries[i].Text = text
			s.entries[i].Tags = append([]string(nil), entryTags...)
			s.Persistence.SaveEntries(s.entries)
			return nil
		}
	}
	return ErrNotFound
}

// DeleteEntry removes the entry with the given id.
func (s *Service) DeleteEntry(id uuid.UUID) error {
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.Persistence.SaveEntries(s.entries)
			return nil
		}
	}
	return ErrNotFound
}

// FindEntry resolves an id prefix to an entry, for CLI ergonomics. An exact
// match wins; a prefix must be unambiguous.
func (s *Service) FindEntry(idPrefix string) (*journal.Entry, error) {
	var found *journal.Entry
	for i := range s.entries {
		id := s.entries[i].ID.String()
		if id == idPrefix {
			e := s.entries[i]
			return &e, nil
		}
		if strings.HasPrefix(id, idPrefix) {
			if found != nil {
				return nil, errors.New("app: ambiguous entry id " + idPrefix)
			}
			e := s.entries[i]
			found = &e
		}
	}
	if found == nil {
		return nil, ErrNotFound
	}
	return found, nil
}

// Search returns the entries matching the query, tag selection, and day,
// sorted by date descending.
func (s *Service) Search(query string, selected []string, day *time.Time) []journal.Entry {
	return filter.Apply(s.entries, filter.Criteria{Query: query, Tags: selected, Day: day})
}

// FilteredEntries is Search with the persisted tag selection as the default:
// when no tags are passed, the selection toggled via the tag commands applies.
func (s *Service) FilteredEntries(query string, selected []string, day *time.Time) []journal.Entry {
	if len(selected) == 0 {
		selected = s.selected
	}
	return s.Search(query, selected, day)
}

// ForDay returns the entries dated on the given calendar day, newest first.
func (s *Service) ForDay(day time.Time) []journal.Entry {
	return s.Search("", nil, &day)
}

// Tags returns the combined tag universe, deduplicated and sorted.
func (s *Service) Tags() []string {
	return tags.All(s.explicit, s.entries)
}

// SelectedTags returns the tags currently selected for filtering.
func (s *Service) SelectedTags() []string {
	return append([]string(nil), s.selected...)
}

// ToggleTag flips a tag in the filter selection.
func (s *Service) ToggleTag(name string) {
	r := s.registry()
	r.Toggle(name)
	s.selected = r.Selected
	s.saveState()
}

// AddTag registers a new explicit tag.
func (s *Service) AddTag(name string) bool {
	r := s.registry()
	if !r.Add(name) {
		return false
	}
	s.explicit = r.Explicit
	s.Persistence.SaveTags(s.explicit)
	return true
}

// RemoveTag deletes the tag everywhere it appears. Entries lose the tag but
// are never deleted themselves. Both touched collections persist once.
func (s *Service) RemoveTag(name string) bool {
	r := s.registry()
	if !r.Remove(name) {
		return false
	}
	s.explicit, s.entries, s.selected = r.Explicit, r.Entries, r.Selected
	s.Persistence.SaveTags(s.explicit)
	s.Persistence.SaveEntries(s.entries)
	s.saveState()
	return true
}

// RenameTag replaces a tag everywhere it appears, including the filter
// selection.
func (s *Service) RenameTag(old, new string) bool {
	r := s.registry()
	if !r.Rename(old, new) {
		return false
	}
	s.explicit, s.entries, s.selected = r.Explicit, r.Entries, r.Selected
	s.Persistence.SaveTags(s.explicit)
	s.Persistence.SaveEntries(s.entries)
	s.saveState()
	return true
}

func (s *Service) registry() tags.Registry {
	return tags.Registry{Explicit: s.explicit, Entries: s.entries, Selected: s.selected}
}
