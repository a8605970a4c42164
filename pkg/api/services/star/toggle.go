package star

import (
	"context"

	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
)

func StarRepo(ctx context.Context, p provider.Provider, owner, name string) error {
	return p.StarRepo(ctx, owner, name)
}

func UnstarRepo(ctx context.Context, p provider.Provider, owner, name string) error {
	return p.UnstarRepo(ctx, owner, name)
}

type CheckStatus int

const (
	Starred CheckStatus = iota
	NotStarred
	Failed
)

func (s CheckStatus) String() string {
	switch s {
	case Starred:
		return "starred"
	case NotStarred:
		return "not_starred"
	case Failed:
		return "failed"
	}

	return "unknown"
}

// StarCheck is the outcome of a star check. Err is set only for Failed.
type StarCheck struct {
	Status CheckStatus
	Err    error
}

// CheckRepoStarred classifies the provider star check: only a not found
// answer means the repo isn't starred, any other error is a failure.
func CheckRepoStarred(ctx context.Context, p provider.Provider, owner, name string) StarCheck {
	err := p.CheckRepoStarred(ctx, owner, name)
	switch {
	case err == nil:
		return StarCheck{Status: Starred}
	case provider.IsNotFound(err):
		return StarCheck{Status: NotStarred}
	default:
		return StarCheck{Status: Failed, Err: err}
	}
}

func IsRepoStarred(ctx context.Context, p provider.Provider, owner, name string) (bool, error) {
	res := CheckRepoStarred(ctx, p, owner, name)
	if res.Status == Failed {
		return false, res.Err
	}

	return res.Status == Starred, nil
}
