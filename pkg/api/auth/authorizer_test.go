package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/api/apierrors"
	"github.com/reporemover/reporemover-api/internal/api/session"
	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/pkg/api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthorizer(t *testing.T) *Authorizer {
	log := logutil.NewStderrLog("test")
	cfg := config.NewEnvConfig(log)
	store, err := session.NewStore(nil, cfg, log)
	require.NoError(t, err)

	return NewAuthorizer(session.NewFactory(store, cfg, time.Hour))
}

func TestAuthorizeWithoutSession(t *testing.T) {
	a := newTestAuthorizer(t)
	r := httptest.NewRequest(http.MethodGet, "/v1/auth/check", nil)

	_, err := a.Authorize(session.NewRequestContext(r, logutil.NewStderrLog("test")))
	assert.Equal(t, apierrors.ErrNotAuthorized, errors.Cause(err))
}

func TestCreateAuthorizationThenAuthorize(t *testing.T) {
	a := newTestAuthorizer(t)
	log := logutil.NewStderrLog("test")

	r := httptest.NewRequest(http.MethodGet, "/v1/auth/github/callback", nil)
	w := httptest.NewRecorder()
	sctx := session.NewRequestContext(r, log)
	authModel := &models.Auth{
		Provider:    models.GithubProvider,
		AccessToken: "valid_access_token",
		Login:       "octocat",
	}
	require.NoError(t, a.CreateAuthorization(sctx, authModel))
	require.NoError(t, sctx.Saver.FinalizeHTTP(r, w))

	r2 := httptest.NewRequest(http.MethodGet, "/v1/auth/check", nil)
	for _, c := range w.Result().Cookies() {
		r2.AddCookie(c)
	}

	au, err := a.Authorize(session.NewRequestContext(r2, log))
	require.NoError(t, err)
	assert.Equal(t, authModel, au.Auth)
	assert.NotNil(t, au.AuthSess)
}
