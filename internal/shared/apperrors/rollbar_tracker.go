package apperrors

import (
	"errors"
	"net/http"

	"github.com/stvp/rollbar"
)

type RollbarTracker struct {
	r       *http.Request
	project string
}

func NewRollbarTracker(token, project, env string) *RollbarTracker {
	rollbar.Environment = env
	rollbar.Token = token

	return &RollbarTracker{
		project: project,
	}
}

func rollbarLevel(level Level) string {
	switch level {
	case LevelError:
		return rollbar.ERR
	case LevelWarn:
		return rollbar.WARN
	}

	panic("invalid level " + level)
}

func (t RollbarTracker) Track(level Level, errorText string, ctx map[string]interface{}) {
	props := map[string]interface{}{}
	for k, v := range ctx {
		props[k] = v
	}

	errorClass, errorDetail := splitErrorText(errorText)
	if errorDetail != "" {
		props["error_detail"] = errorDetail
	}

	fields := []*rollbar.Field{
		{Name: "props", Data: props},
		{Name: "project", Data: t.project},
	}

	if t.r != nil {
		rollbar.RequestError(rollbarLevel(level), t.r, errors.New(errorClass), fields...)
		return
	}

	rollbar.Error(rollbarLevel(level), errors.New(errorClass), fields...)
}

func (t RollbarTracker) WithHTTPRequest(r *http.Request) Tracker {
	t.r = r
	return t
}
