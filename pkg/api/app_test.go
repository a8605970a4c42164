package app_test

import (
	"net/http"
	"testing"

	"github.com/reporemover/reporemover-api/test/sharedtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	ta.NewHTTPExpect(t).GET("/v1/health").
		Expect().
		Status(http.StatusOK).
		JSON().Object().ValueEqual("status", "ok")
}

func TestUnauthorizedRequestsAreForbidden(t *testing.T) {
	e := sharedtest.GetDefaultTestApp().NewHTTPExpect(t)

	e.GET("/v1/repos").Expect().Status(http.StatusForbidden)
	e.GET("/v1/starred").Expect().Status(http.StatusForbidden)
	e.PUT("/v1/starred/golang/go").Expect().Status(http.StatusForbidden)
	e.POST("/v1/repos/batch_delete").Expect().Status(http.StatusForbidden)
}

func TestLoginCheckAuth(t *testing.T) {
	u := sharedtest.Login(t)
	assert.Equal(t, sharedtest.FakeLogin, u.Login)
	assert.Equal(t, "The Octocat", u.Name)
	assert.Equal(t, uint64(sharedtest.FakeUserID), u.ProviderUserID)
}

func TestCallbackWithoutCodeRedirectsToWebRoot(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	ta.NewHTTPExpect(t).GET("/v1/auth/github/callback").
		Expect().
		Status(http.StatusNotFound) // WEB_ROOT
}

func TestCallbackWithBadStateFails(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	e := ta.NewHTTPExpect(t)

	e.GET("/v1/auth/github/callback").
		WithQuery("code", "fake_code").
		WithQuery("state", "forged").
		Expect().
		Status(http.StatusNotFound) // WEB_ROOT/?after=login_failed
	e.GET("/v1/auth/check").Expect().Status(http.StatusForbidden)
}

func TestUnknownOAuthProvider(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	ta.NewHTTPExpect(t).GET("/v1/auth/gitlab").
		Expect().
		Status(http.StatusNotFound).
		JSON().Object().ContainsKey("error")
}

func TestLogout(t *testing.T) {
	u := sharedtest.Login(t)
	u.E.GET("/v1/auth/logout").Expect().Status(http.StatusNotFound) // WEB_ROOT/?after=logout
	u.E.GET("/v1/auth/check").Expect().Status(http.StatusForbidden)
}

func TestListRepos(t *testing.T) {
	u := sharedtest.Login(t)

	first := u.Repos(1)
	require.Len(t, first.Repos, 2)
	assert.Equal(t, "hello-world", first.Repos[0].Name)
	assert.Equal(t, "https://github.com/octocat/hello-world", first.Repos[0].URL)
	assert.Equal(t, "2020-01-02T03:04:05Z", first.Repos[0].CreatedAt)
	assert.Equal(t, "private", first.Repos[1].Visibility)
	assert.Equal(t, 4, first.TotalCount)
	assert.True(t, first.Pagination.HasNext)
	assert.Equal(t, 2, *first.Pagination.NextPage)
	assert.False(t, first.Pagination.HasPrev)

	second := u.Repos(2)
	assert.Equal(t, 2, second.Pagination.CurrentPage)
	assert.False(t, second.Pagination.HasNext)
	assert.True(t, second.Pagination.HasPrev)
	assert.Equal(t, 1, *second.Pagination.PrevPage)
}

func TestBatchDeletePartialFailure(t *testing.T) {
	ta := sharedtest.GetDefaultTestApp()
	u := ta.Login(t)

	resp := u.DeleteRepos("dotfiles", sharedtest.ProtectedRepoName, "scratch")
	require.Len(t, resp.Results, 3)
	assert.Equal(t, 2, resp.SucceededCount)
	assert.Equal(t, 1, resp.FailedCount)

	assert.Equal(t, "dotfiles", resp.Results[0].Name)
	assert.True(t, resp.Results[0].Success)
	assert.Equal(t, sharedtest.ProtectedRepoName, resp.Results[1].Name)
	assert.False(t, resp.Results[1].Success)
	assert.Contains(t, resp.Results[1].Error, "Must have admin rights")
	assert.Equal(t, "scratch", resp.Results[2].Name)
	assert.True(t, resp.Results[2].Success)

	assert.True(t, ta.Github.IsDeleted(sharedtest.FakeLogin, "dotfiles"))
	assert.False(t, ta.Github.IsDeleted(sharedtest.FakeLogin, sharedtest.ProtectedRepoName))
}

func TestBatchDeleteEmpty(t *testing.T) {
	u := sharedtest.Login(t)
	resp := u.DeleteRepos()
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.SucceededCount)
	assert.Equal(t, 0, resp.FailedCount)
}

func TestBatchDeleteNullNames(t *testing.T) {
	u := sharedtest.Login(t)
	u.E.POST("/v1/repos/batch_delete").
		WithBytes([]byte(`{"names":null}`)).
		Expect().
		Status(http.StatusBadRequest)
}

func TestStarredReposJSONShape(t *testing.T) {
	u := sharedtest.Login(t)
	obj := u.E.GET("/v1/starred").
		Expect().
		Status(http.StatusOK).
		JSON().Object()
	obj.ContainsKey("data")
	obj.ContainsKey("pagination")
	obj.NotContainsKey("repos")
	obj.Value("data").Array().Length().Equal(2)
}

func TestBatchDeleteInvalidBody(t *testing.T) {
	u := sharedtest.Login(t)
	u.E.POST("/v1/repos/batch_delete").
		WithBytes([]byte(`{"names":`)).
		Expect().
		Status(http.StatusBadRequest)
	u.E.POST("/v1/repos/batch_delete").
		WithJSON(map[string]interface{}{}).
		Expect().
		Status(http.StatusBadRequest)
}

func TestStarredRepos(t *testing.T) {
	u := sharedtest.Login(t)

	resp := u.StarredRepos()
	require.Len(t, resp.Repos, 2)
	assert.Equal(t, "go", resp.Repos[0].Name)
	assert.Equal(t, "golang", resp.Repos[0].Owner)
	assert.Equal(t, "2024-02-03T04:05:06Z", resp.Repos[0].StarredAt)
	assert.Equal(t, 120000, resp.Repos[0].StargazersCount)

	assert.Equal(t, "", resp.Repos[1].Description)
	assert.Equal(t, "", resp.Repos[1].Language)
	assert.Equal(t, 0, resp.Repos[1].StargazersCount)
	assert.Equal(t, "", resp.Repos[1].CreatedAt)

	assert.Equal(t, 1, resp.Pagination.CurrentPage)
	assert.True(t, resp.Pagination.HasNext)
	assert.Equal(t, 2, *resp.Pagination.NextPage)
	assert.Equal(t, 7, *resp.Pagination.LastPage)
	assert.Nil(t, resp.Pagination.PrevPage)
}

func TestStarToggle(t *testing.T) {
	u := sharedtest.Login(t)

	assert.True(t, u.IsStarred("golang", "go"))
	assert.False(t, u.IsStarred("octocat", "spoon-knife"))

	u.Star("octocat", "spoon-knife")
	assert.True(t, u.IsStarred("octocat", "spoon-knife"))

	u.Unstar("octocat", "spoon-knife")
	assert.False(t, u.IsStarred("octocat", "spoon-knife"))
}

func TestTrackEvent(t *testing.T) {
	u := sharedtest.Login(t)
	u.E.POST("/v1/events/analytics").
		WithJSON(map[string]interface{}{
			"name":    "opened_repos_page",
			"payload": map[string]interface{}{"source": "test"},
		}).
		Expect().
		Status(http.StatusOK)
	u.E.POST("/v1/events/analytics").
		WithJSON(map[string]interface{}{"payload": map[string]interface{}{}}).
		Expect().
		Status(http.StatusBadRequest)
}
