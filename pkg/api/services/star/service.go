package star

import (
	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/shared/providers"
	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
	"github.com/reporemover/reporemover-api/pkg/api/request"
	"github.com/reporemover/reporemover-api/pkg/api/returntypes"
)

type Service interface {
	//url:/v1/starred
	List(rc *request.AuthorizedContext, req *request.Page) (*returntypes.StarredRepoListResponse, error)

	//url:/v1/starred/{owner}/{name}
	Check(rc *request.AuthorizedContext, req *request.Repo) (*returntypes.StarStatus, error)

	//url:/v1/starred/{owner}/{name} method:PUT
	Star(rc *request.AuthorizedContext, req *request.Repo) (*returntypes.EmptyResponse, error)

	//url:/v1/starred/{owner}/{name} method:DELETE
	Unstar(rc *request.AuthorizedContext, req *request.Repo) (*returntypes.EmptyResponse, error)
}

type BasicService struct {
	ProviderFactory providers.Factory
}

func (s BasicService) buildProvider(rc *request.AuthorizedContext) (provider.Provider, error) {
	p, err := s.ProviderFactory.Build(rc.Auth)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build provider")
	}

	return p, nil
}

func (s BasicService) List(rc *request.AuthorizedContext, req *request.Page) (*returntypes.StarredRepoListResponse, error) {
	p, err := s.buildProvider(rc)
	if err != nil {
		return nil, err
	}

	ret, err := FetchStarredRepos(rc.Ctx, p, req.Page, req.PerPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch starred repos")
	}

	return ret, nil
}

func (s BasicService) Check(rc *request.AuthorizedContext, req *request.Repo) (*returntypes.StarStatus, error) {
	p, err := s.buildProvider(rc)
	if err != nil {
		return nil, err
	}

	starred, err := IsRepoStarred(rc.Ctx, p, req.Owner, req.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check star of %s", req.FullName())
	}

	return &returntypes.StarStatus{Starred: starred}, nil
}

func (s BasicService) Star(rc *request.AuthorizedContext, req *request.Repo) (*returntypes.EmptyResponse, error) {
	p, err := s.buildProvider(rc)
	if err != nil {
		return nil, err
	}

	if err = StarRepo(rc.Ctx, p, req.Owner, req.Name); err != nil {
		return nil, errors.Wrapf(err, "failed to star %s", req.FullName())
	}

	rc.Log.Infof("Starred repo %s", req.FullName())
	return &returntypes.EmptyResponse{}, nil
}

func (s BasicService) Unstar(rc *request.AuthorizedContext, req *request.Repo) (*returntypes.EmptyResponse, error) {
	p, err := s.buildProvider(rc)
	if err != nil {
		return nil, err
	}

	if err = UnstarRepo(rc.Ctx, p, req.Owner, req.Name); err != nil {
		return nil, errors.Wrapf(err, "failed to unstar %s", req.FullName())
	}

	rc.Log.Infof("Unstarred repo %s", req.FullName())
	return &returntypes.EmptyResponse{}, nil
}
