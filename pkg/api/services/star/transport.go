package star

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/reporemover/reporemover-api/internal/api/endpointutil"
	"github.com/reporemover/reporemover-api/internal/api/transportutil"
	"github.com/reporemover/reporemover-api/pkg/api/request"
)

type ListRequest struct {
	Page *request.Page
}

type RepoRequest struct {
	Repo *request.Repo
}

func makeListEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		rc, err := endpointutil.AuthorizedRequestContext(ctx)
		if err != nil {
			return nil, err
		}

		req := reqObj.(ListRequest)
		req.Page.FillLogContext(rc.Lctx)
		return svc.List(rc, req.Page)
	}
}

type repoMethod func(rc *request.AuthorizedContext, req *request.Repo) (interface{}, error)

func makeRepoEndpoint(m repoMethod) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		rc, err := endpointutil.AuthorizedRequestContext(ctx)
		if err != nil {
			return nil, err
		}

		req := reqObj.(RepoRequest)
		req.Repo.FillLogContext(rc.Lctx)
		return m(rc, req.Repo)
	}
}

func decodeListRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var req ListRequest
	if err := transportutil.Decode(ctx, &req, r); err != nil {
		return nil, err
	}

	return req, nil
}

func decodeRepoRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var req RepoRequest
	if err := transportutil.Decode(ctx, &req, r); err != nil {
		return nil, err
	}

	return req, nil
}

func RegisterHandlers(r *mux.Router, svc Service, regCtx *endpointutil.HandlerRegContext) {
	opts := transportutil.AuthorizedServerOptions(*regCtx)

	r.Methods(http.MethodGet).Path("/v1/starred").Handler(httptransport.NewServer(
		makeListEndpoint(svc), decodeListRequest, transportutil.EncodeResponse, opts...,
	))

	repoHandlers := map[string]repoMethod{
		http.MethodGet: func(rc *request.AuthorizedContext, req *request.Repo) (interface{}, error) {
			return svc.Check(rc, req)
		},
		http.MethodPut: func(rc *request.AuthorizedContext, req *request.Repo) (interface{}, error) {
			return svc.Star(rc, req)
		},
		http.MethodDelete: func(rc *request.AuthorizedContext, req *request.Repo) (interface{}, error) {
			return svc.Unstar(rc, req)
		},
	}
	for method, m := range repoHandlers {
		r.Methods(method).Path("/v1/starred/{owner}/{name}").Handler(httptransport.NewServer(
			makeRepoEndpoint(m), decodeRepoRequest, transportutil.EncodeResponse, opts...,
		))
	}
}
