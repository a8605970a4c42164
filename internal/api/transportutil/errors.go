package transportutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/api/apierrors"
	"github.com/reporemover/reporemover-api/internal/api/endpointutil"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
)

type Error struct {
	HTTPCode int
	Message  string
}

func (e Error) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(e.Message)), nil
}

func (e Error) Error() string {
	return e.Message
}

type ErrorResponse struct {
	Error *Error `json:"error,omitempty"`
}

func makeError(code int, e error) *Error {
	return &Error{
		HTTPCode: code,
		Message:  e.Error(),
	}
}

func MakeError(e error) *Error {
	srcErr := errors.Cause(e)
	switch srcErr {
	case apierrors.ErrBadRequest:
		return makeError(http.StatusBadRequest, e)
	case apierrors.ErrNotAuthorized, provider.ErrUnauthorized, provider.ErrForbidden:
		return makeError(http.StatusForbidden, e)
	case apierrors.ErrNotFound, provider.ErrNotFound:
		return makeError(http.StatusNotFound, e)
	case provider.ErrRejected:
		return makeError(http.StatusUnprocessableEntity, e)
	case provider.ErrRateLimited:
		return makeError(http.StatusTooManyRequests, e)
	case provider.ErrServer, provider.ErrNetwork:
		return makeError(http.StatusBadGateway, e)
	}

	return makeError(http.StatusInternalServerError, errors.New("internal error"))
}

func HandleErrorLikeResult(ctx context.Context, w http.ResponseWriter, e error) error {
	switch err := errors.Cause(e).(type) {
	case *apierrors.RedirectError:
		r := getHTTPRequestFromContext(ctx)
		code := http.StatusPermanentRedirect
		if err.Temporary {
			code = http.StatusTemporaryRedirect
		}
		http.Redirect(w, r, err.URL, code)
		return nil
	}

	return fmt.Errorf("unknown error like result type: %#v", e)
}

func requestLogger(ctx context.Context) logutil.Log {
	if rc := endpointutil.RequestContext(ctx); rc != nil {
		return rc.Logger()
	}

	return logutil.NewStderrLog("transport")
}

// EncodeError is the go-kit server error encoder. Sessions are finalized
// here too: go-kit doesn't run ServerAfter funcs when an endpoint fails.
func EncodeError(ctx context.Context, err error, w http.ResponseWriter) {
	ctx = FinalizeSession(ctx, w)
	if ctxErr := GetContextError(ctx); ctxErr != nil {
		err = ctxErr
	}

	encodeError(ctx, err, w)
}

func encodeError(ctx context.Context, err error, w http.ResponseWriter) {
	log := requestLogger(ctx)
	if apierrors.IsErrorLikeResult(err) {
		if herr := HandleErrorLikeResult(ctx, w, err); herr != nil {
			log.Errorf("Failed to handle error like result: %s", herr)
		}
		return
	}

	httpErr := MakeError(err)
	if httpErr.HTTPCode >= http.StatusInternalServerError {
		log.Errorf("Request failed: %s", err)
	} else {
		log.Infof("Request failed with code %d: %s", httpErr.HTTPCode, err)
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(httpErr.HTTPCode)
	if encErr := json.NewEncoder(w).Encode(ErrorResponse{Error: httpErr}); encErr != nil {
		log.Warnf("Failed to encode error response: %s", encErr)
	}
}

// EncodeResponse writes successful endpoint results as JSON. Errors stored
// into the context by ServerAfter funcs take precedence.
func EncodeResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	if err := GetContextError(ctx); err != nil {
		encodeError(ctx, err, w)
		return nil
	}

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	return errors.Wrap(json.NewEncoder(w).Encode(response), "failed to encode response")
}
