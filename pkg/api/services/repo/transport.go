package repo

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

type BatchDeleteHTTPRequest struct {
	Req *BatchDeleteRequest
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

func makeBatchDeleteEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		rc, err := endpointutil.AuthorizedRequestContext(ctx)
		if err != nil {
			return nil, err
		}

		req := reqObj.(BatchDeleteHTTPRequest)
		req.Req.FillLogContext(rc.Lctx)
		return svc.BatchDelete(rc, req.Req)
	}
}

func decodeListRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var req ListRequest
	if err := transportutil.Decode(ctx, &req, r); err != nil {
		return nil, err
	}

	return req, nil
}

func decodeBatchDeleteRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var req BatchDeleteHTTPRequest
	if err := transportutil.Decode(ctx, &req, r); err != nil {
		return nil, err
	}

	return req, nil
}

func RegisterHandlers(r *mux.Router, svc Service, regCtx *endpointutil.HandlerRegContext) {
	opts := transportutil.AuthorizedServerOptions(*regCtx)

	r.Methods(http.MethodGet).Path("/v1/repos").Handler(httptransport.NewServer(
		makeListEndpoint(svc), decodeListRequest, transportutil.EncodeResponse, opts...,
	))
	r.Methods(http.MethodPost).Path("/v1/repos/batch_delete").Handler(httptransport.NewServer(
		makeBatchDeleteEndpoint(svc), decodeBatchDeleteRequest, transportutil.EncodeResponse, opts...,
	))
}
