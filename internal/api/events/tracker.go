package events

import (
	"context"

	"github.com/dukex/mixpanel"
	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/savaki/amplitude-go"
)

const (
	EventLoggedIn     = "logged_in"
	EventReposDeleted = "repos_deleted"
)

// Tracker publishes product analytics events to amplitude and mixpanel.
// A sink without an api key is skipped.
type Tracker struct {
	amplitudeClient *amplitude.Client
	mixpanelClient  mixpanel.Mixpanel
	log             logutil.Log
}

func NewTracker(cfg config.Config, log logutil.Log) *Tracker {
	return &Tracker{
		amplitudeClient: newAmplitudeClient(cfg),
		mixpanelClient:  newMixpanelClient(cfg),
		log:             log,
	}
}

func (t *Tracker) ForUser(login string) AuthenticatedTracker {
	return AuthenticatedTracker{
		t:      t,
		userID: login,
	}
}

type AuthenticatedTracker struct {
	t         *Tracker
	userID    string
	userProps map[string]interface{}
}

func (at AuthenticatedTracker) WithUserProps(props map[string]interface{}) AuthenticatedTracker {
	atc := at
	atc.userProps = props
	return atc
}

func (at AuthenticatedTracker) Track(ctx context.Context, eventName string, props map[string]interface{}) {
	eventProps := map[string]interface{}{}
	for k, v := range props {
		eventProps[k] = v
	}

	log := at.t.log
	log.Debugf("events", "Track event %s for %s with props %+v", eventName, at.userID, eventProps)

	if ac := at.t.amplitudeClient; ac != nil {
		ev := amplitude.Event{
			UserId:          at.userID,
			EventType:       eventName,
			EventProperties: eventProps,
			UserProperties:  at.userProps,
		}
		if err := ac.Publish(ev); err != nil {
			log.Warnf("Can't publish %s to amplitude: %s", eventName, err)
		}
	}

	if mp := at.t.mixpanelClient; mp != nil {
		const ip = "0" // don't auto-detect
		ev := &mixpanel.Event{
			IP:         ip,
			Properties: eventProps,
		}
		if err := mp.Track(at.userID, eventName, ev); err != nil {
			log.Warnf("Can't publish event %s to mixpanel: %s", eventName, err)
		}
	}
}
