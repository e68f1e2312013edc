package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client talks to the remote coach API. It is a strict request/response
// round trip: no retry, no backpressure, one typed error per failed call.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a client for the given base URL. The token is optional;
// when set it is sent as a Bearer authorization header.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken replaces the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// envelope is the `{"data": ...}` success wrapper used by the API.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// apiError is the `{"error": ...}` failure wrapper used by the API.
type apiError struct {
	Error struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
}

// ChatRequest is the body for POST /coach.
type ChatRequest struct {
	Message      string `json:"message"`
	SessionID    string `json:"session_id,omitempty"`
	DiaryContent string `json:"diary_content,omitempty"`
	CycleElement string `json:"cycle_element,omitempty"`
}

// ChatReply is the coach's answer to a chat message.
type ChatReply struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// RemoteSession summarizes one server-side session.
type RemoteSession struct {
	SessionID     string     `json:"session_id"`
	Title         string     `json:"title"`
	MessageCount  int        `json:"message_count"`
	LastMessageAt *time.Time `json:"last_message_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SessionList is the paged response from GET /sessions.
type SessionList struct {
	Sessions []RemoteSession `json:"sessions"`
	Total    int             `json:"total"`
	Limit    int             `json:"limit"`
	Offset   int             `json:"offset"`
}

// Chat sends one message to the coach and returns its reply.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (ChatReply, error) {
	var reply ChatReply
	err := c.do(ctx, http.MethodPost, "/coach", nil, req, &reply)
	return reply, err
}

// Sessions fetches a page of remote sessions.
func (c *Client) Sessions(ctx context.Context, limit, offset int) (SessionList, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	var list SessionList
	err := c.do(ctx, http.MethodGet, "/sessions", q, nil, &list)
	return list, err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return &Error{Kind: ErrInvalidURL, Err: err}
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: ErrInvalidResponse, Err: fmt.Errorf("encode request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return &Error{Kind: ErrInvalidURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &Error{Kind: ErrNetwork, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: ErrInvalidResponse, Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var env envelope
		if err := json.Unmarshal(data, &env); err != nil || env.Data == nil {
			return &Error{Kind: ErrDecoding, Err: err}
		}
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Kind: ErrDecoding, Err: err}
		}
		return nil

	case resp.StatusCode == http.StatusUnauthorized:
		return &Error{Kind: ErrUnauthorized, StatusCode: resp.StatusCode}

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if msg, ok := errorMessage(data); ok {
			return &Error{Kind: ErrValidation, StatusCode: resp.StatusCode, Message: msg}
		}
		return &Error{Kind: ErrHTTP, StatusCode: resp.StatusCode}

	default:
		if msg, ok := errorMessage(data); ok {
			return &Error{Kind: ErrHTTP, StatusCode: resp.StatusCode, Message: msg}
		}
		return &Error{Kind: ErrHTTP, StatusCode: resp.StatusCode}
	}
}

func errorMessage(data []byte) (string, bool) {
	var ae apiError
	if err := json.Unmarshal(data, &ae); err != nil {
		return "", false
	}
	if ae.Error.Message == "" {
		return "", false
	}
	return ae.Error.Message, true
}
