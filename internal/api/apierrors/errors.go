package apierrors

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNotFound      = errors.New("no data")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
	ErrNotAuthorized = errors.New("not authorized")
)

// ErrorLikeResult is returned from endpoints as an error but it's a normal result
// encoded by the transport, e.g. a redirect.
type ErrorLikeResult interface {
	IsErrorLikeResult() bool
}

func IsErrorLikeResult(err error) bool {
	elr, ok := errors.Cause(err).(ErrorLikeResult)
	if !ok {
		return false
	}

	return elr.IsErrorLikeResult()
}

type RedirectError struct {
	Temporary bool
	URL       string
}

func (e RedirectError) Error() string {
	return fmt.Sprintf("redirect to %s, temp: %t", e.URL, e.Temporary)
}

func (e RedirectError) IsErrorLikeResult() bool {
	return true
}

func NewTemporaryRedirectError(url string) *RedirectError {
	return &RedirectError{
		Temporary: true,
		URL:       url,
	}
}

func NewBadRequestError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrBadRequest, format, args...)
}
