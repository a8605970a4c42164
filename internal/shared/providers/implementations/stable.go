package implementations

import (
	"context"
	"net/http"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
)

// Check the struct is implementing the Provider interface.
var _ provider.Provider = &StableProvider{}

// StableProvider retries idempotent reads on temporary errors.
// Mutations and the starred listing go straight to the underlying provider.
type StableProvider struct {
	underlying   provider.Provider
	totalTimeout time.Duration
	maxRetries   int
}

func NewStableProvider(underlying provider.Provider, totalTimeout time.Duration, maxRetries int) *StableProvider {
	return &StableProvider{
		underlying:   underlying,
		totalTimeout: totalTimeout,
		maxRetries:   maxRetries,
	}
}

func (p StableProvider) Name() string {
	return p.underlying.Name()
}

func (p StableProvider) SetBaseURL(s string) error {
	return p.underlying.SetBaseURL(s)
}

func (p StableProvider) SetTransport(rt http.RoundTripper) {
	p.underlying.SetTransport(rt)
}

func (p StableProvider) retry(ctx context.Context, f func() error) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = p.totalTimeout
	bmr := backoff.WithMaxRetries(b, uint64(p.maxRetries))

	var lastErr error
	_ = backoff.Retry(func() error {
		lastErr = f()
		if lastErr == nil || ctx.Err() != nil || !provider.IsTemporaryError(lastErr) {
			return nil // stop retrying
		}

		return lastErr
	}, bmr)

	return lastErr
}

func (p StableProvider) GetCurrentUser(ctx context.Context) (ret *provider.User, err error) {
	err = p.retry(ctx, func() error {
		ret, err = p.underlying.GetCurrentUser(ctx)
		return err
	})
	return
}

func (p StableProvider) ListRepos(ctx context.Context, cfg *provider.ListReposConfig) (ret *provider.RepoPage, err error) {
	err = p.retry(ctx, func() error {
		ret, err = p.underlying.ListRepos(ctx, cfg)
		return err
	})
	return
}

func (p StableProvider) ListStarredRepos(ctx context.Context, cfg *provider.ListStarredConfig) (*provider.StarredRepoPage, error) {
	return p.underlying.ListStarredRepos(ctx, cfg)
}

func (p StableProvider) DeleteRepo(ctx context.Context, owner, repo string) error {
	return p.underlying.DeleteRepo(ctx, owner, repo)
}

func (p StableProvider) StarRepo(ctx context.Context, owner, repo string) error {
	return p.underlying.StarRepo(ctx, owner, repo)
}

func (p StableProvider) UnstarRepo(ctx context.Context, owner, repo string) error {
	return p.underlying.UnstarRepo(ctx, owner, repo)
}

func (p StableProvider) CheckRepoStarred(ctx context.Context, owner, repo string) error {
	return p.underlying.CheckRepoStarred(ctx, owner, repo)
}
