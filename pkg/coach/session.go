package coach

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the author of a message in a coach session.
type Role string

const (
	RoleUser  Role = "user"
	RoleCoach Role = "coach"
)

// Message is one turn in a coach conversation.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is a coach conversation persisted alongside the other collections.
type Session struct {
	ID           uuid.UUID `json:"id"`
	Messages     []Message `json:"messages"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	Summary      string    `json:"summary,omitempty"`
	EmotionLabel string    `json:"emotionLabel,omitempty"`
	Active       bool      `json:"isActive"`
}

// NewSession creates an empty active session.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		Active:    true,
	}
}

// Append adds a message and bumps UpdatedAt.
func (s *Session) Append(role Role, content string) Message {
	m := Message{
		ID:        uuid.New(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	}
	s.Messages = append(s.Messages, m)
	s.UpdatedAt = m.CreatedAt
	return m
}

// FirstUserMessage returns the first message written by the user, if any.
func (s *Session) FirstUserMessage() (Message, bool) {
	for _, m := range s.Messages {
		if m.Role == RoleUser {
			return m, true
		}
	}
	return Message{}, false
}
