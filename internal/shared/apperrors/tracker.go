package apperrors

import (
	"net/http"
	"strings"
)

type Level string

const (
	LevelError Level = "ERROR"
	LevelWarn  Level = "WARN"
)

type Tracker interface {
	Track(level Level, errorText string, ctx map[string]interface{})
	WithHTTPRequest(r *http.Request) Tracker
}

// splitErrorText separates "class: details" so that all errors of one class are grouped
// together by a tracker.
func splitErrorText(errorText string) (string, string) {
	parts := strings.SplitN(errorText, ": ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}

	return parts[0], parts[1]
}

type NopTracker struct{}

func NewNopTracker() *NopTracker {
	return &NopTracker{}
}

func (t NopTracker) Track(level Level, errorText string, ctx map[string]interface{}) {}

func (t NopTracker) WithHTTPRequest(r *http.Request) Tracker {
	return t
}
