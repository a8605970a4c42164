package mocks

import (
	"context"
	"net/http"
	"sync"

	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
)

// Call is a recorded provider call.
type Call struct {
	Method string
	Owner  string
	Repo   string
}

// Provider is an in-memory provider.Provider. Unset funcs succeed with empty results.
type Provider struct {
	GetCurrentUserFunc   func(ctx context.Context) (*provider.User, error)
	ListReposFunc        func(ctx context.Context, cfg *provider.ListReposConfig) (*provider.RepoPage, error)
	ListStarredReposFunc func(ctx context.Context, cfg *provider.ListStarredConfig) (*provider.StarredRepoPage, error)
	DeleteRepoFunc       func(ctx context.Context, owner, repo string) error
	StarRepoFunc         func(ctx context.Context, owner, repo string) error
	UnstarRepoFunc       func(ctx context.Context, owner, repo string) error
	CheckRepoStarredFunc func(ctx context.Context, owner, repo string) error

	mu    sync.Mutex
	calls []Call
}

var _ provider.Provider = &Provider{}

func (p *Provider) record(method, owner, repo string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, Call{Method: method, Owner: owner, Repo: repo})
}

func (p *Provider) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.calls...)
}

func (p *Provider) Name() string {
	return "fake"
}

func (p *Provider) SetBaseURL(url string) error {
	return nil
}

func (p *Provider) SetTransport(rt http.RoundTripper) {}

func (p *Provider) GetCurrentUser(ctx context.Context) (*provider.User, error) {
	p.record("GetCurrentUser", "", "")
	if p.GetCurrentUserFunc == nil {
		return &provider.User{Login: "octocat"}, nil
	}
	return p.GetCurrentUserFunc(ctx)
}

func (p *Provider) ListRepos(ctx context.Context, cfg *provider.ListReposConfig) (*provider.RepoPage, error) {
	p.record("ListRepos", "", "")
	if p.ListReposFunc == nil {
		return &provider.RepoPage{}, nil
	}
	return p.ListReposFunc(ctx, cfg)
}

func (p *Provider) ListStarredRepos(ctx context.Context, cfg *provider.ListStarredConfig) (*provider.StarredRepoPage, error) {
	p.record("ListStarredRepos", "", "")
	if p.ListStarredReposFunc == nil {
		return &provider.StarredRepoPage{}, nil
	}
	return p.ListStarredReposFunc(ctx, cfg)
}

func (p *Provider) DeleteRepo(ctx context.Context, owner, repo string) error {
	p.record("DeleteRepo", owner, repo)
	if p.DeleteRepoFunc == nil {
		return nil
	}
	return p.DeleteRepoFunc(ctx, owner, repo)
}

func (p *Provider) StarRepo(ctx context.Context, owner, repo string) error {
	p.record("StarRepo", owner, repo)
	if p.StarRepoFunc == nil {
		return nil
	}
	return p.StarRepoFunc(ctx, owner, repo)
}

func (p *Provider) UnstarRepo(ctx context.Context, owner, repo string) error {
	p.record("UnstarRepo", owner, repo)
	if p.UnstarRepoFunc == nil {
		return nil
	}
	return p.UnstarRepoFunc(ctx, owner, repo)
}

func (p *Provider) CheckRepoStarred(ctx context.Context, owner, repo string) error {
	p.record("CheckRepoStarred", owner, repo)
	if p.CheckRepoStarredFunc == nil {
		return nil
	}
	return p.CheckRepoStarredFunc(ctx, owner, repo)
}
