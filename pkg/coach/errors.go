package coach

import "fmt"

// ErrorKind classifies client failures so callers can branch without
// string matching.
type ErrorKind int

const (
	ErrInvalidURL ErrorKind = iota
	ErrInvalidResponse
	ErrHTTP
	ErrDecoding
	ErrNetwork
	ErrUnauthorized
	ErrValidation
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidURL:
		return "invalid url"
	case ErrInvalidResponse:
		return "invalid response"
	case ErrHTTP:
		return "http error"
	case ErrDecoding:
		return "decoding error"
	case ErrNetwork:
		return "network error"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrValidation:
		return "validation error"
	}
	return "unknown error"
}

// Error is the typed failure returned by the remote client. The call is
// never retried; the caller owns the terminal error state.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.StatusCode != 0:
		return fmt.Sprintf("coach: %s (%d): %s", e.Kind, e.StatusCode, e.Message)
	case e.Message != "":
		return fmt.Sprintf("coach: %s: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("coach: %s: %v", e.Kind, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("coach: %s (%d)", e.Kind, e.StatusCode)
	}
	return "coach: " + e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}
