package app

import (
	"sort"

	"github.com/google/uuid"

	"github.com/cyclehq/cycle/pkg/coach"
)

// Sessions returns all coach sessions, most recently updated first.
func (s *Service) Sessions() []coach.Session {
	out := append([]coach.Session(nil), s.sessions...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

// CurrentSession returns the most recently updated active session, or nil
// when every session is closed.
func (s *Service) CurrentSession() *coach.Session {
	var active *coach.Session
	for i := range s.sessions {
		if !s.sessions[i].Active {
			continue
		}
		if active == nil || s.sessions[i].UpdatedAt.After(active.UpdatedAt) {
			active = &s.sessions[i]
		}
	}
	return active
}

// ActiveSession returns the current session, creating one when none exists.
func (s *Service) ActiveSession() *coach.Session {
	if active := s.CurrentSession(); active != nil {
		return active
	}
	s.sessions = append(s.sessions, *coach.NewSession())
	s.Persistence.SaveSessions(s.sessions)
	return &s.sessions[len(s.sessions)-1]
}

// AppendMessage records one conversation turn on the session and persists
// the collection.
func (s *Service) AppendMessage(sessionID uuid.UUID, role coach.Role, content string) error {
	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			s.sessions[i].Append(role, content)
			s.Persistence.SaveSessions(s.sessions)
			return nil
		}
	}
	return ErrNotFound
}

// CloseSession marks the session inactive.
func (s *Service) CloseSession(sessionID uuid.UUID) error {
	for i := range s.sessions {
		if s.sessions[i].ID == sessionID {
			s.sessions[i].Active = false
			s.Persistence.SaveSessions(s.sessions)
			return nil
		}
	}
	return ErrNotFound
}
