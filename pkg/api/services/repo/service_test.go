package repo

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/api/apierrors"
	"github.com/reporemover/reporemover-api/internal/api/events"
	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
	"github.com/reporemover/reporemover-api/pkg/api/models"
	"github.com/reporemover/reporemover-api/pkg/api/request"
	"github.com/reporemover/reporemover-api/test/sharedtest/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, p provider.Provider) (BasicService, *request.AuthorizedContext) {
	t.Setenv("AMPLITUDE_API_KEY", "")
	t.Setenv("MIXPANEL_API_KEY", "")

	log := logutil.NewStderrLog("test")
	svc := BasicService{
		ProviderFactory: mocks.StaticProviderFactory{Provider: p},
		Tracker:         events.NewTracker(config.NewEnvConfig(log), log),
	}
	rc := &request.AuthorizedContext{
		BaseContext: request.BaseContext{
			Ctx:  context.Background(),
			Log:  log,
			Lctx: logutil.Context{},
		},
		Auth: &models.Auth{
			Provider:    models.GithubProvider,
			AccessToken: "token",
			Login:       "octocat",
		},
	}

	return svc, rc
}

func TestBatchDeleteUsesCurrentUserAsOwner(t *testing.T) {
	p := &mocks.Provider{
		GetCurrentUserFunc: func(ctx context.Context) (*provider.User, error) {
			return &provider.User{Login: "octo-owner"}, nil
		},
		DeleteRepoFunc: func(ctx context.Context, owner, repo string) error {
			if repo == "b" {
				return provider.NewError(provider.ErrNotFound, 404, "Not Found")
			}
			return nil
		},
	}
	svc, rc := newTestService(t, p)

	resp, err := svc.BatchDelete(rc, &BatchDeleteRequest{Names: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SucceededCount)
	assert.Equal(t, 1, resp.FailedCount)

	assert.Equal(t, []mocks.Call{
		{Method: "GetCurrentUser"},
		{Method: "DeleteRepo", Owner: "octo-owner", Repo: "a"},
		{Method: "DeleteRepo", Owner: "octo-owner", Repo: "b"},
	}, p.Calls())
}

func TestBatchDeleteEmptyNames(t *testing.T) {
	p := &mocks.Provider{}
	svc, rc := newTestService(t, p)

	resp, err := svc.BatchDelete(rc, &BatchDeleteRequest{Names: []string{}})
	require.NoError(t, err)
	assert.NotNil(t, resp.Results)
	assert.Len(t, resp.Results, 0)
	assert.Empty(t, p.Calls())
}

func TestBatchDeleteValidatesNames(t *testing.T) {
	svc, rc := newTestService(t, &mocks.Provider{})

	_, err := svc.BatchDelete(rc, &BatchDeleteRequest{})
	assert.Equal(t, apierrors.ErrBadRequest, errors.Cause(err))

	_, err = svc.BatchDelete(rc, &BatchDeleteRequest{Names: []string{"a", ""}})
	assert.Equal(t, apierrors.ErrBadRequest, errors.Cause(err))
}

func TestBatchDeleteOwnerFailureIsCallFailure(t *testing.T) {
	p := &mocks.Provider{
		GetCurrentUserFunc: func(ctx context.Context) (*provider.User, error) {
			return nil, provider.NewError(provider.ErrUnauthorized, 401, "Bad credentials")
		},
	}
	svc, rc := newTestService(t, p)

	resp, err := svc.BatchDelete(rc, &BatchDeleteRequest{Names: []string{"a"}})
	assert.Nil(t, resp)
	assert.Equal(t, provider.ErrUnauthorized, errors.Cause(err))
	assert.Len(t, p.Calls(), 1)
}

func TestListRepos(t *testing.T) {
	var gotCfg *provider.ListReposConfig
	p := &mocks.Provider{
		ListReposFunc: func(ctx context.Context, cfg *provider.ListReposConfig) (*provider.RepoPage, error) {
			gotCfg = cfg
			return &provider.RepoPage{
				Repos: []provider.Repo{
					{Name: "hello", Owner: "octocat", HTMLURL: "https://github.com/octocat/hello", Visibility: "private"},
				},
				LinkHeader: `<https://api.github.com/user/repos?page=1>; rel="prev", <https://api.github.com/user/repos?page=3>; rel="last"`,
			}, nil
		},
		GetCurrentUserFunc: func(ctx context.Context) (*provider.User, error) {
			return &provider.User{Login: "octocat", PublicRepos: 8, OwnedPrivateRepos: 4}, nil
		},
	}
	svc, rc := newTestService(t, p)

	ret, err := svc.List(rc, &request.Page{Page: 2, PerPage: 10})
	require.NoError(t, err)

	assert.Equal(t, &provider.ListReposConfig{
		Affiliation: "owner",
		Sort:        "updated",
		Direction:   "desc",
		Page:        2,
		PerPage:     10,
	}, gotCfg)
	require.Len(t, ret.Repos, 1)
	assert.Equal(t, "https://github.com/octocat/hello", ret.Repos[0].URL)
	assert.Equal(t, "private", ret.Repos[0].Visibility)
	assert.Equal(t, 12, ret.TotalCount)
	assert.True(t, ret.Pagination.HasPrev)
	assert.False(t, ret.Pagination.HasNext)
	assert.Equal(t, 3, *ret.Pagination.LastPage)
}

func TestListReposWithoutUserCount(t *testing.T) {
	p := &mocks.Provider{
		GetCurrentUserFunc: func(ctx context.Context) (*provider.User, error) {
			return nil, provider.NewError(provider.ErrServer, 502, "Bad Gateway")
		},
	}
	svc, rc := newTestService(t, p)

	ret, err := svc.List(rc, &request.Page{})
	require.NoError(t, err)
	assert.Equal(t, 0, ret.TotalCount)
	assert.Equal(t, 1, ret.Pagination.CurrentPage)
}
