package task

import "time"

// Reflection is the four-field retrospective attached to a completed task.
// It is immutable once created; editing replaces the whole record.
type Reflection struct {
	Fact      string    `json:"fact"`
	Emotion   string    `json:"emotion"`
	Learning  string    `json:"learning"`
	NextStep  string    `json:"nextStep"`
	CreatedAt time.Time `json:"createdAt"`
}
