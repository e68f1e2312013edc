package task

import (
	"time"

	"github.com/google/uuid"
)

// Group buckets tasks for display. Order is assigned at creation and is
// never compacted when groups are deleted.
type Group struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	ColorHex  string    `json:"colorHex,omitempty"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewGroup creates a group ordered after every group in existing.
func NewGroup(name, colorHex string, existing []Group) *Group {
	return &Group{
		ID:        uuid.New(),
		Name:      name,
		ColorHex:  colorHex,
		Order:     NextOrder(existing),
		CreatedAt: time.Now(),
	}
}

// NextOrder returns max(order)+1 over existing groups, 0 when there are none.
func NextOrder(existing []Group) int {
	next := 0
	for _, g := range existing {
		if g.Order >= next {
			next = g.Order + 1
		}
	}
	return next
}
