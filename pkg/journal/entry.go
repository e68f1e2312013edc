package journal

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is a single journal record: free text written on a date, with
// zero or more tags attached.
type Entry struct {
	ID   uuid.UUID `json:"id"`
	Date Timestamp `json:"date"`
	Text string    `json:"text"`
	Tags []string  `json:"tags,omitempty"`
}

// New creates an entry dated now. Tags keep their given order for display.
func New(text string, tags ...string) *Entry {
	return &Entry{
		ID:   uuid.New(),
		Date: Timestamp{Time: time.Now()},
		Text: text,
		Tags: append([]string(nil), tags...),
	}
}

// HasTag reports whether the entry carries the exact tag.
func (e *Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasAnyTag reports whether the entry carries at least one of the given tags.
func (e *Entry) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if e.HasTag(t) {
			return true
		}
	}
	return false
}

// Matches reports whether the entry text contains the query, ignoring case.
// An empty query matches everything.
func (e *Entry) Matches(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Text), strings.ToLower(query))
}

func (e *Entry) String() string {
	if len(e.Tags) == 0 {
		return e.Text
	}
	return e.Text + " #" + strings.Join(e.Tags, " #")
}
