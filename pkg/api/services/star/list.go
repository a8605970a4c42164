package star

import (
	"context"

	"github.com/reporemover/reporemover-api/internal/api/paginate"
	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
	"github.com/reporemover/reporemover-api/pkg/api/returntypes"
)

// FetchStarredRepos fetches one page of the current user's starred repos,
// most recently starred first.
func FetchStarredRepos(ctx context.Context, p provider.Provider, page, perPage int) (*returntypes.StarredRepoListResponse, error) {
	page, perPage = paginate.Normalize(page, perPage)

	res, err := p.ListStarredRepos(ctx, &provider.ListStarredConfig{
		Sort:      "created",
		Direction: "desc",
		Page:      page,
		PerPage:   perPage,
	})
	if err != nil {
		return nil, err
	}

	repos := make([]returntypes.StarredRepoInfo, 0, len(res.Repos))
	for i := range res.Repos {
		repos = append(repos, returntypes.NewStarredRepoInfo(&res.Repos[i]))
	}

	return &returntypes.StarredRepoListResponse{
		Repos:      repos,
		Pagination: paginate.FromLinkHeader(res.LinkHeader, page),
	}, nil
}
