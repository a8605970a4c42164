package sharedtest

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/mux"
	"github.com/markbates/goth/providers/github"
)

const (
	authURL    = "/login/oauth/authorize"
	tokenURL   = "/login/oauth/access_token" //nolint:gas
	profileURL = "/user"

	FakeAccessToken = "valid_access_token" //nolint:gas
	FakeLogin       = "octocat"
	FakeUserID      = 583231

	// repos with this name can't be deleted
	ProtectedRepoName = "protected"
)

func SendJSON(w http.ResponseWriter, obj interface{}) {
	w.Header().Add("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(obj); err != nil {
		log.Fatalf("Can't JSON encode result: %s", err)
	}
}

func sendGithubError(w http.ResponseWriter, code int, message string) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// FakeGithub is an in-memory GitHub: it serves the oauth flow and the REST
// endpoints the api uses, keeping deleted repos and stars in memory.
type FakeGithub struct {
	server *httptest.Server

	mu      sync.Mutex
	deleted map[string]bool
	starred map[string]bool
}

func NewFakeGithub() *FakeGithub {
	fg := &FakeGithub{
		deleted: map[string]bool{},
		starred: map[string]bool{"golang/go": true},
	}

	r := mux.NewRouter()
	r.HandleFunc(authURL, fg.authHandler)
	r.HandleFunc(tokenURL, fg.tokenHandler)
	r.Methods(http.MethodGet).Path(profileURL).HandlerFunc(fg.authorized(fg.profileHandler))
	r.Methods(http.MethodGet).Path("/user/repos").HandlerFunc(fg.authorized(fg.listReposHandler))
	r.Methods(http.MethodGet).Path("/user/starred").HandlerFunc(fg.authorized(fg.listStarredHandler))
	r.Path("/user/starred/{owner}/{repo}").HandlerFunc(fg.authorized(fg.starHandler))
	r.Methods(http.MethodDelete).Path("/repos/{owner}/{repo}").HandlerFunc(fg.authorized(fg.deleteRepoHandler))

	fg.server = httptest.NewServer(r)

	github.AuthURL = fg.server.URL + authURL
	github.TokenURL = fg.server.URL + tokenURL
	github.ProfileURL = fg.server.URL + profileURL

	return fg
}

func (fg *FakeGithub) URL() string {
	return fg.server.URL
}

func (fg *FakeGithub) IsDeleted(owner, repo string) bool {
	fg.mu.Lock()
	defer fg.mu.Unlock()
	return fg.deleted[owner+"/"+repo]
}

func (fg *FakeGithub) authorized(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("access_token") // goth passes the token in the query
		if token == "" {
			fmt.Sscanf(r.Header.Get("Authorization"), "Bearer %s", &token) //nolint:errcheck
		}

		if token != FakeAccessToken {
			sendGithubError(w, http.StatusUnauthorized, "Bad credentials")
			return
		}

		h(w, r)
	}
}

func (fg *FakeGithub) authHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ru := fmt.Sprintf("%s?code=fake_code&state=%s", q.Get("redirect_uri"), q.Get("state"))
	http.Redirect(w, r, ru, http.StatusTemporaryRedirect)
}

func (fg *FakeGithub) tokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil || r.Form.Get("code") != "fake_code" {
		sendGithubError(w, http.StatusBadRequest, "bad_verification_code")
		return
	}

	SendJSON(w, map[string]string{
		"access_token": FakeAccessToken,
		"token_type":   "bearer",
		"scope":        "repo,delete_repo",
	})
}

func (fg *FakeGithub) profileHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, map[string]interface{}{
		"id":                  FakeUserID,
		"login":               FakeLogin,
		"name":                "The Octocat",
		"avatar_url":          "https://avatars.githubusercontent.com/u/583231?v=4",
		"public_repos":        3,
		"owned_private_repos": 1,
	})
}

func fakeRepo(name, visibility string) map[string]interface{} {
	return map[string]interface{}{
		"name":             name,
		"full_name":        FakeLogin + "/" + name,
		"html_url":         "https://github.com/" + FakeLogin + "/" + name,
		"description":      "repo " + name,
		"owner":            map[string]interface{}{"login": FakeLogin},
		"private":          visibility == "private",
		"visibility":       visibility,
		"created_at":       "2020-01-02T03:04:05Z",
		"updated_at":       "2023-06-07T08:09:10Z",
		"language":         "Go",
		"stargazers_count": 5,
		"forks_count":      1,
	}
}

func (fg *FakeGithub) listReposHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("affiliation") != "owner" || q.Get("sort") != "updated" || q.Get("direction") != "desc" {
		log.Printf("Invalid query params: %+v", q)
		sendGithubError(w, http.StatusBadRequest, "invalid query params")
		return
	}

	base := fg.server.URL + "/user/repos?affiliation=owner&sort=updated&direction=desc&per_page=2"
	var repos []map[string]interface{}
	switch q.Get("page") {
	case "", "1":
		w.Header().Add("Link", fmt.Sprintf(`<%s&page=2>; rel="next", <%s&page=2>; rel="last"`, base, base))
		repos = append(repos, fakeRepo("hello-world", "public"), fakeRepo("secret", "private"))
	case "2":
		w.Header().Add("Link", fmt.Sprintf(`<%s&page=1>; rel="prev", <%s&page=1>; rel="first"`, base, base))
		repos = append(repos, fakeRepo("dotfiles", "public"), fakeRepo(ProtectedRepoName, "public"))
	default:
		repos = []map[string]interface{}{}
	}

	SendJSON(w, repos)
}

func (fg *FakeGithub) listStarredHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("sort") != "created" || q.Get("direction") != "desc" {
		log.Printf("Invalid query params: %+v", q)
		sendGithubError(w, http.StatusBadRequest, "invalid query params")
		return
	}

	base := fg.server.URL + "/user/starred?sort=created&direction=desc"
	w.Header().Add("Link", fmt.Sprintf(`<%s&page=2>; rel="next", <%s&page=7>; rel="last"`, base, base))

	goRepo := fakeRepo("go", "public")
	goRepo["owner"] = map[string]interface{}{"login": "golang"}
	goRepo["html_url"] = "https://github.com/golang/go"
	goRepo["stargazers_count"] = 120000

	bare := map[string]interface{}{
		"name":        "bare",
		"html_url":    "https://github.com/someone/bare",
		"owner":       map[string]interface{}{"login": "someone"},
		"description": nil,
		"language":    nil,
	}

	SendJSON(w, []map[string]interface{}{
		{"starred_at": "2024-02-03T04:05:06Z", "repo": goRepo},
		{"starred_at": "2023-01-01T00:00:00Z", "repo": bare},
	})
}

func (fg *FakeGithub) starHandler(w http.ResponseWriter, r *http.Request) {
	v := mux.Vars(r)
	key := v["owner"] + "/" + v["repo"]

	fg.mu.Lock()
	defer fg.mu.Unlock()

	switch r.Method {
	case http.MethodGet:
		if !fg.starred[key] {
			sendGithubError(w, http.StatusNotFound, "Not Found")
			return
		}
	case http.MethodPut:
		fg.starred[key] = true
	case http.MethodDelete:
		delete(fg.starred, key)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (fg *FakeGithub) deleteRepoHandler(w http.ResponseWriter, r *http.Request) {
	v := mux.Vars(r)
	if v["owner"] != FakeLogin {
		sendGithubError(w, http.StatusNotFound, "Not Found")
		return
	}

	if v["repo"] == ProtectedRepoName {
		sendGithubError(w, http.StatusForbidden, "Must have admin rights to Repository.")
		return
	}

	key := v["owner"] + "/" + v["repo"]

	fg.mu.Lock()
	defer fg.mu.Unlock()
	if fg.deleted[key] {
		sendGithubError(w, http.StatusNotFound, "Not Found")
		return
	}
	fg.deleted[key] = true

	w.WriteHeader(http.StatusNoContent)
}
