package implementations

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
	"github.com/stretchr/testify/assert"
)

type flakyProvider struct {
	provider.Provider
	errs  []error
	calls int
}

func (p *flakyProvider) next() error {
	p.calls++
	if len(p.errs) == 0 {
		return nil
	}

	err := p.errs[0]
	p.errs = p.errs[1:]
	return err
}

func (p *flakyProvider) GetCurrentUser(ctx context.Context) (*provider.User, error) {
	if err := p.next(); err != nil {
		return nil, err
	}

	return &provider.User{Login: "octocat"}, nil
}

func (p *flakyProvider) DeleteRepo(ctx context.Context, owner, repo string) error {
	return p.next()
}

func TestStableProviderRetriesTemporaryErrors(t *testing.T) {
	fp := &flakyProvider{errs: []error{
		provider.NewError(provider.ErrServer, 502, "Bad Gateway"),
		provider.NewError(provider.ErrNetwork, 0, "connection reset"),
	}}

	u, err := NewStableProvider(fp, 10*time.Second, 3).GetCurrentUser(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "octocat", u.Login)
	assert.Equal(t, 3, fp.calls)
}

func TestStableProviderDoesntRetryPermanentErrors(t *testing.T) {
	fp := &flakyProvider{errs: []error{provider.NewError(provider.ErrUnauthorized, 401, "Bad credentials")}}

	_, err := NewStableProvider(fp, 10*time.Second, 3).GetCurrentUser(context.Background())
	assert.Equal(t, provider.ErrUnauthorized, errors.Cause(err))
	assert.Equal(t, 1, fp.calls)
}

func TestStableProviderGivesUpAfterMaxRetries(t *testing.T) {
	serverErr := provider.NewError(provider.ErrServer, 500, "")
	fp := &flakyProvider{errs: []error{serverErr, serverErr, serverErr}}

	_, err := NewStableProvider(fp, 10*time.Second, 2).GetCurrentUser(context.Background())
	assert.Equal(t, provider.ErrServer, errors.Cause(err))
	assert.Equal(t, 3, fp.calls)
}

func TestStableProviderDoesntRetryMutations(t *testing.T) {
	fp := &flakyProvider{errs: []error{provider.NewError(provider.ErrServer, 502, "")}}

	err := NewStableProvider(fp, 10*time.Second, 3).DeleteRepo(context.Background(), "octocat", "a")
	assert.Equal(t, provider.ErrServer, errors.Cause(err))
	assert.Equal(t, 1, fp.calls)
}
