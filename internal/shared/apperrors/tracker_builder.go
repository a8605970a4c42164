package apperrors

import (
	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
)

// GetTracker picks the tracker named by ERROR_TRACKER (sentry or rollbar).
// ROLLBAR_ENABLED and SENTRY_ENABLED are honored when it isn't set.
func GetTracker(cfg config.Config, log logutil.Log, project string) Tracker {
	env := cfg.GetString("GO_ENV")

	kind := cfg.GetString("ERROR_TRACKER")
	if kind == "" {
		switch {
		case cfg.GetBool("ROLLBAR_ENABLED", false):
			kind = "rollbar"
		case cfg.GetBool("SENTRY_ENABLED", false):
			kind = "sentry"
		}
	}

	switch kind {
	case "rollbar":
		token := cfg.GetString("ROLLBAR_TOKEN")
		if token == "" {
			log.Warnf("ROLLBAR_TOKEN isn't set, errors aren't tracked")
			return NewNopTracker()
		}
		return NewRollbarTracker(token, project, env)
	case "sentry":
		t, err := NewSentryTracker(cfg.GetString("SENTRY_DSN"), project, env)
		if err != nil {
			log.Warnf("Can't make sentry error tracker: %s", err)
			return NewNopTracker()
		}
		return t
	case "", "none":
		return NewNopTracker()
	}

	log.Warnf("Unknown error tracker %q", kind)
	return NewNopTracker()
}
