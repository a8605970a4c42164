package provider

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnauthorized = errors.New("no provider authorization")
	ErrForbidden    = errors.New("forbidden by provider")
	ErrNotFound     = errors.New("not found in provider")
	ErrRateLimited  = errors.New("provider rate limit exceeded")
	ErrRejected     = errors.New("request rejected by provider")
	ErrServer       = errors.New("provider server error")
	ErrNetwork      = errors.New("provider is unreachable")
)

// Error is a classified failure of a provider call. errors.Cause of it
// returns one of the Err* kinds above.
type Error struct {
	kind       error
	StatusCode int
	Message    string
}

func NewError(kind error, statusCode int, message string) *Error {
	return &Error{
		kind:       kind,
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e Error) Error() string {
	if e.Message == "" {
		return e.kind.Error()
	}

	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %s", e.kind, e.Message)
	}

	return fmt.Sprintf("%s: %s (%d)", e.kind, e.Message, e.StatusCode)
}

func (e Error) Cause() error {
	return e.kind
}

func KindByStatusCode(code int) error {
	switch {
	case code == 401:
		return ErrUnauthorized
	case code == 403:
		return ErrForbidden
	case code == 404:
		return ErrNotFound
	case code == 429:
		return ErrRateLimited
	case code >= 500:
		return ErrServer
	}

	return ErrRejected
}

func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}

// IsTemporaryError reports whether repeating the same call could succeed.
func IsTemporaryError(err error) bool {
	causeErr := errors.Cause(err)
	return causeErr == ErrServer || causeErr == ErrNetwork
}
