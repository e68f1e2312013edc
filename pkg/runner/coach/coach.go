package coach

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/cyclehq/cycle/pkg/app"
	"github.com/cyclehq/cycle/pkg/coach"
)

// Chat sends one message to the coach service and records both sides of
// the exchange in the local session log.
type Chat struct {
	Message string
	Client  *coach.Client
	Service *app.Service
}

func (r *Chat) Do(ctx context.Context) error {
	session := r.Service.ActiveSession()

	reply, err := r.Client.Chat(ctx, coach.ChatRequest{
		Message:   r.Message,
		SessionID: session.ID.String(),
	})
	if err != nil {
		return err
	}

	if err := r.Service.AppendMessage(session.ID, coach.RoleUser, r.Message); err != nil {
		return err
	}
	if err := r.Service.AppendMessage(session.ID, coach.RoleCoach, reply.Message); err != nil {
		return err
	}

	c := color.New(color.FgCyan)
	_, _ = c.Println(reply.Message)
	return nil
}

// Sessions lists the locally recorded coach conversations.
type Sessions struct {
	Service *app.Service
}

func (r *Sessions) Do(ctx context.Context) error {
	sessions := r.Service.Sessions()
	if len(sessions) == 0 {
		fmt.Println("no sessions yet")
		return nil
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	for _, s := range sessions {
		title := s.Summary
		if title == "" {
			if first, ok := s.FirstUserMessage(); ok {
				title = first.Content
			} else {
				title = "(empty)"
			}
		}
		state := "closed"
		if s.Active {
			state = "active"
		}
		_, _ = bold.Println(title)
		_, _ = faint.Printf("  %s  %d messages  %s\n",
			s.UpdatedAt.Local().Format("2006-01-02 15:04"), len(s.Messages), state)
	}
	return nil
}

// End closes the active session so the next chat starts a fresh one.
type End struct {
	Service *app.Service
}

func (r *End) Do(ctx context.Context) error {
	session := r.Service.CurrentSession()
	if session == nil {
		fmt.Println("no active session")
		return nil
	}
	if err := r.Service.CloseSession(session.ID); err != nil {
		return err
	}
	fmt.Println("session closed")
	return nil
}
