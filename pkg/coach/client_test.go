package coach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func asClientError(t *testing.T, err error) *Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("error is %T, want *coach.Error", err)
	}
	return ce
}

func TestChat(t *testing.T) {
	var gotAuth, gotPath string
	var gotReq ChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": ChatReply{Message: "try a smaller step", SessionID: "abc"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	reply, err := c.Chat(context.Background(), ChatRequest{Message: "stuck again"})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply.Message != "try a smaller step" || reply.SessionID != "abc" {
		t.Fatalf("reply = %+v", reply)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("auth header = %q", gotAuth)
	}
	if gotPath != "/coach" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotReq.Message != "stuck again" {
		t.Fatalf("request = %+v", gotReq)
	}
}

func TestSessionsPaging(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sessions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "10" || r.URL.Query().Get("offset") != "20" {
			t.Errorf("query = %q", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": SessionList{
				Sessions: []RemoteSession{{SessionID: "abc", Title: "monday"}},
				Total:    1, Limit: 10, Offset: 20,
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	list, err := c.Sessions(context.Background(), 10, 20)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	if list.Total != 1 || len(list.Sessions) != 1 || list.Sessions[0].SessionID != "abc" {
		t.Fatalf("list = %+v", list)
	}
}

func TestUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "expired")
	_, err := c.Chat(context.Background(), ChatRequest{Message: "hi"})
	ce := asClientError(t, err)
	if ce.Kind != ErrUnauthorized {
		t.Fatalf("kind = %v", ce.Kind)
	}
	if ce.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d", ce.StatusCode)
	}
}

func TestValidationErrorCarriesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"code":"validation_error","message":"message must not be empty","details":["message"]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Chat(context.Background(), ChatRequest{})
	ce := asClientError(t, err)
	if ce.Kind != ErrValidation {
		t.Fatalf("kind = %v", ce.Kind)
	}
	if ce.Message != "message must not be empty" {
		t.Fatalf("message = %q", ce.Message)
	}
}

func TestValidationWithoutBodyFallsBackToHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Chat(context.Background(), ChatRequest{})
	ce := asClientError(t, err)
	if ce.Kind != ErrHTTP {
		t.Fatalf("kind = %v", ce.Kind)
	}
}

func TestServerErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":"internal","message":"try again later"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Chat(context.Background(), ChatRequest{Message: "hi"})
	ce := asClientError(t, err)
	if ce.Kind != ErrHTTP || ce.StatusCode != http.StatusInternalServerError {
		t.Fatalf("error = %+v", ce)
	}
	if ce.Message != "try again later" {
		t.Fatalf("message = %q", ce.Message)
	}
}

func TestMalformedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"missing the data wrapper"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.Chat(context.Background(), ChatRequest{Message: "hi"})
	ce := asClientError(t, err)
	if ce.Kind != ErrDecoding {
		t.Fatalf("kind = %v", ce.Kind)
	}
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, "")
	_, err := c.Chat(context.Background(), ChatRequest{Message: "hi"})
	ce := asClientError(t, err)
	if ce.Kind != ErrNetwork {
		t.Fatalf("kind = %v", ce.Kind)
	}
	if ce.Unwrap() == nil {
		t.Fatal("expected the transport error to be wrapped")
	}
}
