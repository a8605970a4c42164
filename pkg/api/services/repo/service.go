package repo

import (
	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/api/apierrors"
	"github.com/reporemover/reporemover-api/internal/api/events"
	"github.com/reporemover/reporemover-api/internal/api/paginate"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/internal/shared/providers"
	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
	"github.com/reporemover/reporemover-api/pkg/api/request"
	"github.com/reporemover/reporemover-api/pkg/api/returntypes"
)

type BatchDeleteRequest struct {
	Names []string `json:"names"`
}

func (r BatchDeleteRequest) FillLogContext(lctx logutil.Context) {
	lctx["repos_count"] = len(r.Names)
}

type Service interface {
	//url:/v1/repos
	List(rc *request.AuthorizedContext, req *request.Page) (*returntypes.RepoListResponse, error)

	//url:/v1/repos/batch_delete method:POST
	BatchDelete(rc *request.AuthorizedContext, req *BatchDeleteRequest) (*returntypes.BatchDeleteResponse, error)
}

type BasicService struct {
	ProviderFactory providers.Factory
	Tracker         *events.Tracker
}

func (s BasicService) buildProvider(rc *request.AuthorizedContext) (provider.Provider, error) {
	p, err := s.ProviderFactory.Build(rc.Auth)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build provider")
	}

	return p, nil
}

func (s BasicService) List(rc *request.AuthorizedContext, req *request.Page) (*returntypes.RepoListResponse, error) {
	p, err := s.buildProvider(rc)
	if err != nil {
		return nil, err
	}

	page, perPage := paginate.Normalize(req.Page, req.PerPage)
	res, err := p.ListRepos(rc.Ctx, &provider.ListReposConfig{
		Affiliation: "owner",
		Sort:        "updated",
		Direction:   "desc",
		Page:        page,
		PerPage:     perPage,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list repos")
	}

	repos := make([]returntypes.RepoInfo, 0, len(res.Repos))
	for i := range res.Repos {
		repos = append(repos, returntypes.NewRepoInfo(&res.Repos[i]))
	}

	ret := &returntypes.RepoListResponse{
		Repos:      repos,
		Pagination: paginate.FromLinkHeader(res.LinkHeader, page),
	}

	// the total is only for display: a listing without it is still useful
	if u, err := p.GetCurrentUser(rc.Ctx); err != nil {
		rc.Log.Warnf("Failed to get current user for repos total count: %s", err)
	} else {
		ret.TotalCount = u.PublicRepos + u.OwnedPrivateRepos
	}

	return ret, nil
}

func (s BasicService) BatchDelete(rc *request.AuthorizedContext, req *BatchDeleteRequest) (*returntypes.BatchDeleteResponse, error) {
	if req.Names == nil {
		return nil, apierrors.NewBadRequestError("no repo names")
	}

	for _, name := range req.Names {
		if name == "" {
			return nil, apierrors.NewBadRequestError("empty repo name")
		}
	}

	if len(req.Names) == 0 {
		return NewBatchDeleteResponse([]returntypes.RepoDeleteResult{}), nil
	}

	p, err := s.buildProvider(rc)
	if err != nil {
		return nil, err
	}

	u, err := p.GetCurrentUser(rc.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current user")
	}

	results := DeleteRepos(rc.Ctx, p, u.Login, req.Names)
	resp := NewBatchDeleteResponse(results)

	for _, res := range results {
		if !res.Success {
			rc.Log.Warnf("Failed to delete repo %s/%s: %s", u.Login, res.Name, res.Error)
		}
	}
	rc.Log.Infof("Deleted %d of %d repos", resp.SucceededCount, len(results))

	s.Tracker.ForUser(rc.Auth.Login).Track(rc.Ctx, events.EventReposDeleted, map[string]interface{}{
		"requested": len(results),
		"succeeded": resp.SucceededCount,
		"failed":    resp.FailedCount,
	})

	return resp, nil
}
