package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/stretchr/testify/assert"
)

func TestTrackerWithoutKeysIsNoop(t *testing.T) {
	t.Setenv("AMPLITUDE_API_KEY", "")
	t.Setenv("MIXPANEL_API_KEY", "")

	log := logutil.NewStderrLog("test")
	tr := NewTracker(config.NewEnvConfig(log), log)
	assert.Nil(t, tr.amplitudeClient)
	assert.Nil(t, tr.mixpanelClient)

	tr.ForUser("octocat").Track(context.Background(), EventLoggedIn, nil)
}

func TestTrackerPublishesToMixpanel(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/track") {
			atomic.AddInt32(&hits, 1)
		}
		w.Write([]byte("1")) //nolint:errcheck
	}))
	defer ts.Close()

	t.Setenv("MIXPANEL_API_KEY", "test-key")
	t.Setenv("MIXPANEL_API_URL", ts.URL)
	t.Setenv("AMPLITUDE_API_KEY", "")

	log := logutil.NewStderrLog("test")

	tr := NewTracker(config.NewEnvConfig(log), log)
	tr.ForUser("octocat").Track(context.Background(), EventReposDeleted, map[string]interface{}{
		"requested": 2,
		"succeeded": 1,
		"failed":    1,
	})

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}
