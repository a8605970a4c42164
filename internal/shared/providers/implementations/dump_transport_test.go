package implementations

import (
	"context"
	"io/ioutil"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpTransport(t *testing.T) {
	r := mux.NewRouter()
	r.Methods(http.MethodGet).Path("/user/starred").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendJSON(w, http.StatusOK, starredPageJSON)
	})

	dir := t.TempDir()
	p := newTestGithub(t, r)
	dt := NewDumpTransport(dir, nil, logutil.NewStderrLog("test"))
	dt.now = func() time.Time { return time.Unix(0, 42) }
	p.SetTransport(dt)

	page, err := p.ListStarredRepos(context.Background(), &provider.ListStarredConfig{Page: 1, PerPage: 30})
	require.NoError(t, err)
	assert.Len(t, page.Repos, 2)

	dumped, err := ioutil.ReadFile(filepath.Join(dir, "github_get_user_starred_42.json"))
	require.NoError(t, err)
	assert.JSONEq(t, starredPageJSON, string(dumped))
}

func TestRedactHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("Accept", "application/json")

	redacted := redactHeaders(h)
	assert.Equal(t, "[REDACTED]", redacted.Get("Authorization"))
	assert.Equal(t, "application/json", redacted.Get("Accept"))
	assert.Equal(t, "Bearer secret", h.Get("Authorization"))
}
