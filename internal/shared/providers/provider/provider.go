package provider

import (
	"context"
	"net/http"
)

type Provider interface {
	Name() string

	SetBaseURL(url string) error
	SetTransport(rt http.RoundTripper)

	GetCurrentUser(ctx context.Context) (*User, error)

	ListRepos(ctx context.Context, cfg *ListReposConfig) (*RepoPage, error)
	ListStarredRepos(ctx context.Context, cfg *ListStarredConfig) (*StarredRepoPage, error)

	DeleteRepo(ctx context.Context, owner, repo string) error

	StarRepo(ctx context.Context, owner, repo string) error
	UnstarRepo(ctx context.Context, owner, repo string) error

	// CheckRepoStarred returns nil if the repo is starred by the current user
	// and an error with ErrNotFound cause if it isn't.
	CheckRepoStarred(ctx context.Context, owner, repo string) error
}
