package repo

import (
	"context"

	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
	"github.com/reporemover/reporemover-api/pkg/api/returntypes"
)

// DeleteRepos deletes owner's repos one by one in the given order. A failed
// deletion is recorded in its result and doesn't stop the batch. Deletions
// are irreversible: nothing is rolled back on partial failure.
func DeleteRepos(ctx context.Context, p provider.Provider, owner string, names []string) []returntypes.RepoDeleteResult {
	results := make([]returntypes.RepoDeleteResult, 0, len(names))
	for _, name := range names {
		res := returntypes.RepoDeleteResult{
			Name:    name,
			Success: true,
		}
		if err := p.DeleteRepo(ctx, owner, name); err != nil {
			res.Success = false
			res.Error = err.Error()
		}

		results = append(results, res)
	}

	return results
}

func NewBatchDeleteResponse(results []returntypes.RepoDeleteResult) *returntypes.BatchDeleteResponse {
	resp := returntypes.BatchDeleteResponse{
		Results: results,
	}
	for _, res := range results {
		if res.Success {
			resp.SucceededCount++
		} else {
			resp.FailedCount++
		}
	}

	return &resp
}
