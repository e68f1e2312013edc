// Package tags maintains the tag universe for a journal: the explicitly
// created tags plus every tag still attached to an entry.
package tags

import (
	"sort"
	"strings"

	"github.com/cyclehq/cycle/pkg/journal"
)

// All returns the combined tag universe, deduplicated and sorted
// lexicographically for display.
func All(explicit []string, entries []journal.Entry) []string {
	seen := make(map[string]struct{}, len(explicit))
	for _, t := range explicit {
		seen[t] = struct{}{}
	}
	for _, e := range entries {
		for _, t := range e.Tags {
			seen[t] = struct{}{}
		}
	}
	all := make([]string, 0, len(seen))
	for t := range seen {
		all = append(all, t)
	}
	sort.Strings(all)
	return all
}

// Registry is the mutable tag state for a journal: the explicit set, the
// entries whose tags cascade with registry mutations, and the tags currently
// selected for filtering. Mutations go through methods only; persistence is
// the caller's job after a method reports a change.
type Registry struct {
	Explicit []string
	Entries  []journal.Entry
	Selected []string
}

// All returns the combined universe over this registry's state.
func (r *Registry) All() []string {
	return All(r.Explicit, r.Entries)
}

// Add registers a new explicit tag. The name is trimmed first; empty names
// and names already anywhere in the combined universe are no-ops. Matching is
// case-sensitive and exact, but only the explicit set ever gains the entry.
func (r *Registry) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if contains(r.All(), name) {
		return false
	}
	r.Explicit = append(r.Explicit, name)
	return true
}

// Remove deletes the tag from the explicit set and strips it from every
// entry and from the selected set. Entries themselves are never deleted.
// It reports whether anything changed.
func (r *Registry) Remove(name string) bool {
	changed := false
	if contains(r.Explicit, name) {
		r.Explicit = without(r.Explicit, name)
		changed = true
	}
	for i := range r.Entries {
		if r.Entries[i].HasTag(name) {
			r.Entries[i].Tags = without(r.Entries[i].Tags, name)
			changed = true
		}
	}
	if contains(r.Selected, name) {
		r.Selected = without(r.Selected, name)
		changed = true
	}
	return changed
}

// Rename replaces old with new everywhere: entry tags, the explicit set, and
// the selected set. It is a no-op when new is empty or already present in the
// combined universe; renaming a tag onto its own name is permitted and leaves
// the state unchanged.
func (r *Registry) Rename(old, new string) bool {
	if new == "" {
		return false
	}
	if new != old && contains(r.All(), new) {
		return false
	}

	changed := false
	for i := range r.Entries {
		for j, t := range r.Entries[i].Tags {
			if t == old {
				r.Entries[i].Tags[j] = new
				changed = true
			}
		}
	}
	if contains(r.Explicit, old) {
		r.Explicit = without(r.Explicit, old)
		changed = true
	}
	if changed {
		r.Explicit = append(r.Explicit, new)
	}
	if contains(r.Selected, old) {
		r.Selected = without(r.Selected, old)
		r.Selected = append(r.Selected, new)
	}
	return changed
}

// Toggle flips the tag in the selected-for-filtering set.
func (r *Registry) Toggle(name string) {
	if contains(r.Selected, name) {
		r.Selected = without(r.Selected, name)
		return
	}
	r.Selected = append(r.Selected, name)
}

// ClearSelected empties the filter selection.
func (r *Registry) ClearSelected() {
	r.Selected = nil
}

func contains(list []string, name string) bool {
	for _, t := range list {
		if t == name {
			return true
		}
	}
	return false
}

func without(list []string, name string) []string {
	out := list[:0]
	for _, t := range list {
		if t != name {
			out = append(out, t)
		}
	}
	return out
}
