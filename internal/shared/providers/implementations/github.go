package implementations

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
	"golang.org/x/oauth2"
)

// Check the struct is implementing the Provider interface.
var _ provider.Provider = &Github{}

const GithubProviderName = "github"

type Github struct {
	accessToken string
	baseURL     *url.URL
	transport   http.RoundTripper
	log         logutil.Log
}

func NewGithub(accessToken string, log logutil.Log) *Github {
	return &Github{
		accessToken: accessToken,
		log:         log,
	}
}

func (p Github) Name() string {
	return GithubProviderName
}

func (p *Github) SetBaseURL(s string) error {
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}

	baseURL, err := url.Parse(s)
	if err != nil {
		return errors.Wrap(err, "failed to parse url")
	}

	p.baseURL = baseURL
	return nil
}

// SetTransport sets the transport under the oauth2 one.
func (p *Github) SetTransport(rt http.RoundTripper) {
	p.transport = rt
}

func (p Github) client(ctx context.Context) *github.Client {
	if p.transport != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: p.transport})
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{
			AccessToken: p.accessToken,
		},
	)
	tc := oauth2.NewClient(ctx, ts)
	c := github.NewClient(tc)
	if p.baseURL != nil {
		c.BaseURL = p.baseURL
	}

	return c
}

func responseStatusCode(r *http.Response) int {
	if r == nil {
		return 0
	}

	return r.StatusCode
}

func (p Github) unwrapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	switch e := err.(type) {
	case *github.RateLimitError:
		return provider.NewError(provider.ErrRateLimited, responseStatusCode(e.Response), e.Message)
	case *github.AbuseRateLimitError:
		return provider.NewError(provider.ErrRateLimited, responseStatusCode(e.Response), e.Message)
	case *github.ErrorResponse:
		code := responseStatusCode(e.Response)
		return provider.NewError(provider.KindByStatusCode(code), code, e.Message)
	}

	if ctx.Err() != nil {
		return err
	}

	switch err.(type) {
	case *url.Error, net.Error:
		return provider.NewError(provider.ErrNetwork, 0, err.Error())
	}

	return err
}

func parseGithubRepository(r *github.Repository) provider.Repo {
	return provider.Repo{
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		HTMLURL:         r.GetHTMLURL(),
		Description:     r.GetDescription(),
		Owner:           r.GetOwner().GetLogin(),
		Visibility:      r.GetVisibility(),
		IsPrivate:       r.GetPrivate(),
		CreatedAt:       r.GetCreatedAt().Time,
		UpdatedAt:       r.GetUpdatedAt().Time,
		Language:        r.GetLanguage(),
		StargazersCount: r.GetStargazersCount(),
		ForksCount:      r.GetForksCount(),
	}
}

func linkHeader(resp *github.Response) string {
	if resp == nil || resp.Response == nil {
		return ""
	}

	return resp.Header.Get("Link")
}

func (p Github) GetCurrentUser(ctx context.Context) (*provider.User, error) {
	u, _, err := p.client(ctx).Users.Get(ctx, "")
	if err != nil {
		return nil, p.unwrapError(ctx, err)
	}

	return &provider.User{
		ID:                u.GetID(),
		Login:             u.GetLogin(),
		Name:              u.GetName(),
		AvatarURL:         u.GetAvatarURL(),
		PublicRepos:       u.GetPublicRepos(),
		OwnedPrivateRepos: int(u.GetOwnedPrivateRepos()),
	}, nil
}

func (p Github) ListRepos(ctx context.Context, cfg *provider.ListReposConfig) (*provider.RepoPage, error) {
	opts := &github.RepositoryListOptions{
		Affiliation: cfg.Affiliation,
		Sort:        cfg.Sort,
		Direction:   cfg.Direction,
		ListOptions: github.ListOptions{
			Page:    cfg.Page,
			PerPage: cfg.PerPage,
		},
	}

	repos, resp, err := p.client(ctx).Repositories.List(ctx, "", opts)
	if err != nil {
		return nil, p.unwrapError(ctx, err)
	}

	ret := &provider.RepoPage{
		Repos:      make([]provider.Repo, 0, len(repos)),
		LinkHeader: linkHeader(resp),
	}
	for _, r := range repos {
		ret.Repos = append(ret.Repos, parseGithubRepository(r))
	}

	return ret, nil
}

func (p Github) ListStarredRepos(ctx context.Context, cfg *provider.ListStarredConfig) (*provider.StarredRepoPage, error) {
	opts := &github.ActivityListStarredOptions{
		Sort:      cfg.Sort,
		Direction: cfg.Direction,
		ListOptions: github.ListOptions{
			Page:    cfg.Page,
			PerPage: cfg.PerPage,
		},
	}

	starred, resp, err := p.client(ctx).Activity.ListStarred(ctx, "", opts)
	if err != nil {
		return nil, p.unwrapError(ctx, err)
	}

	ret := &provider.StarredRepoPage{
		Repos:      make([]provider.StarredRepo, 0, len(starred)),
		LinkHeader: linkHeader(resp),
	}
	for _, s := range starred {
		ret.Repos = append(ret.Repos, provider.StarredRepo{
			Repo:      parseGithubRepository(s.GetRepository()),
			StarredAt: s.GetStarredAt().Time,
		})
	}

	return ret, nil
}

func (p Github) DeleteRepo(ctx context.Context, owner, repo string) error {
	_, err := p.client(ctx).Repositories.Delete(ctx, owner, repo)
	return p.unwrapError(ctx, err)
}

func (p Github) StarRepo(ctx context.Context, owner, repo string) error {
	_, err := p.client(ctx).Activity.Star(ctx, owner, repo)
	return p.unwrapError(ctx, err)
}

func (p Github) UnstarRepo(ctx context.Context, owner, repo string) error {
	_, err := p.client(ctx).Activity.Unstar(ctx, owner, repo)
	return p.unwrapError(ctx, err)
}

// CheckRepoStarred doesn't use Activity.IsStarred: it turns every 404 into false
// and we need the error itself.
func (p Github) CheckRepoStarred(ctx context.Context, owner, repo string) error {
	c := p.client(ctx)
	u := fmt.Sprintf("user/starred/%s/%s", url.PathEscape(owner), url.PathEscape(repo))
	req, err := c.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build star check request")
	}

	_, err = c.Do(ctx, req, nil)
	return p.unwrapError(ctx, err)
}
