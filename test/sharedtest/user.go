package sharedtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gavv/httpexpect"
	"github.com/reporemover/reporemover-api/pkg/api/returntypes"
	"github.com/stretchr/testify/assert"
)

type User struct {
	returntypes.AuthorizedUser
	A *assert.Assertions
	E *httpexpect.Expect
	t *testing.T
}

func (ta App) NewHTTPExpect(t *testing.T) *httpexpect.Expect {
	return httpexpect.New(t, ta.URL())
}

// Login passes the oauth flow against the fake github: redirects end on
// WEB_ROOT which isn't served by the api, hence 404.
func (ta App) Login(t *testing.T) *User {
	e := ta.NewHTTPExpect(t)

	e.GET("/v1/auth/check").
		Expect().
		Status(http.StatusForbidden)
	e.GET("/v1/auth/github").
		Expect().
		Status(http.StatusNotFound)
	checkBody := e.GET("/v1/auth/check").
		Expect().
		Status(http.StatusOK).
		Body().
		Raw()

	var resp returntypes.CheckAuthResponse
	assert.NoError(t, json.Unmarshal([]byte(checkBody), &resp))
	assert.Equal(t, FakeLogin, resp.User.Login)

	return &User{
		AuthorizedUser: resp.User,
		A:              assert.New(t),
		E:              e,
		t:              t,
	}
}

func (u User) Repos(page int) *returntypes.RepoListResponse {
	respStr := u.E.GET("/v1/repos").
		WithQuery("page", page).
		Expect().
		Status(http.StatusOK).
		Body().
		Raw()

	var ret returntypes.RepoListResponse
	u.A.NoError(json.Unmarshal([]byte(respStr), &ret))
	return &ret
}

func (u User) DeleteRepos(names ...string) *returntypes.BatchDeleteResponse {
	if names == nil {
		names = []string{} // send [] and not null
	}

	respStr := u.E.POST("/v1/repos/batch_delete").
		WithJSON(map[string]interface{}{"names": names}).
		Expect().
		Status(http.StatusOK).
		Body().
		Raw()

	var ret returntypes.BatchDeleteResponse
	u.A.NoError(json.Unmarshal([]byte(respStr), &ret))
	return &ret
}

func (u User) StarredRepos() *returntypes.StarredRepoListResponse {
	respStr := u.E.GET("/v1/starred").
		Expect().
		Status(http.StatusOK).
		Body().
		Raw()

	var ret returntypes.StarredRepoListResponse
	u.A.NoError(json.Unmarshal([]byte(respStr), &ret))
	return &ret
}

func (u User) IsStarred(owner, name string) bool {
	respStr := u.E.GET("/v1/starred/{owner}/{name}", owner, name).
		Expect().
		Status(http.StatusOK).
		Body().
		Raw()

	var ret returntypes.StarStatus
	u.A.NoError(json.Unmarshal([]byte(respStr), &ret))
	return ret.Starred
}

func (u User) Star(owner, name string) {
	u.E.PUT("/v1/starred/{owner}/{name}", owner, name).
		Expect().
		Status(http.StatusOK)
}

func (u User) Unstar(owner, name string) {
	u.E.DELETE("/v1/starred/{owner}/{name}", owner, name).
		Expect().
		Status(http.StatusOK)
}
