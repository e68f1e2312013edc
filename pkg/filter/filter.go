// Package filter computes filtered, sorted views over journal entries.
// The three filters are independent: applying them in any order yields the
// same result set.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/cyclehq/cycle/pkg/journal"
)

// Criteria describes one view over a collection of entries. Zero values mean
// "no filter": an empty query and tag set match everything, a nil day keeps
// every date.
type Criteria struct {
	Query string
	Tags  []string
	Day   *time.Time
}

// Apply filters entries by day, query, and tags, then sorts the survivors by
// date descending. The sort is stable, so entries sharing a date keep their
// original order.
func Apply(entries []journal.Entry, c Criteria) []journal.Entry {
	out := make([]journal.Entry, 0, len(entries))
	for _, e := range entries {
		if !Keep(e, c) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// Keep reports whether a single entry survives the criteria. Categories are
// conjunctive; tags within the tag category are disjunctive.
func Keep(e journal.Entry, c Criteria) bool {
	return KeepDay(e, c.Day) && KeepQuery(e, c.Query) && KeepTags(e, c.Tags)
}

// KeepDay keeps entries dated on the same calendar day. A nil day keeps all.
func KeepDay(e journal.Entry, day *time.Time) bool {
	if day == nil {
		return true
	}
	return e.Date.SameDay(*day)
}

// KeepQuery keeps entries whose text contains the trimmed query,
// case-insensitively. A blank query keeps all.
func KeepQuery(e journal.Entry, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	return e.Matches(query)
}

// KeepTags keeps entries carrying at least one of the selected tags.
// An empty selection keeps all.
func KeepTags(e journal.Entry, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	return e.HasAnyTag(tags)
}
