package auth

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/reporemover/reporemover-api/internal/api/endpointutil"
	"github.com/reporemover/reporemover-api/internal/api/transportutil"
)

type LoginRequest struct {
	Req *Request
}

type CallbackRequest struct {
	Req *OAuthCallbackRequest
}

type emptyRequest struct{}

func makeCheckAuthEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		rc, err := endpointutil.AuthorizedRequestContext(ctx)
		if err != nil {
			return nil, err
		}

		return svc.CheckAuth(rc)
	}
}

func makeLogoutEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		rc, err := endpointutil.AuthorizedRequestContext(ctx)
		if err != nil {
			return nil, err
		}

		return nil, svc.Logout(rc)
	}
}

func makeLoginEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		rc, err := endpointutil.AnonymousRequestContext(ctx)
		if err != nil {
			return nil, err
		}

		req := reqObj.(LoginRequest)
		req.Req.FillLogContext(rc.Lctx)
		return nil, svc.Login(rc, req.Req)
	}
}

func makeCallbackEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		rc, err := endpointutil.AnonymousRequestContext(ctx)
		if err != nil {
			return nil, err
		}

		req := reqObj.(CallbackRequest)
		req.Req.FillLogContext(rc.Lctx)
		return nil, svc.LoginOAuthCallback(rc, req.Req)
	}
}

func decodeEmptyRequest(ctx context.Context, _ *http.Request) (interface{}, error) {
	if err := endpointutil.Error(ctx); err != nil {
		return nil, err
	}

	return emptyRequest{}, nil
}

func decodeLoginRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var req LoginRequest
	if err := transportutil.Decode(ctx, &req, r); err != nil {
		return nil, err
	}

	return req, nil
}

func decodeCallbackRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var req CallbackRequest
	if err := transportutil.Decode(ctx, &req, r); err != nil {
		return nil, err
	}

	return req, nil
}

// RegisterHandlers registers auth routes. Fixed paths go first: they would
// match /v1/auth/{provider} otherwise.
func RegisterHandlers(r *mux.Router, svc Service, regCtx *endpointutil.HandlerRegContext) {
	authorizedOpts := transportutil.AuthorizedServerOptions(*regCtx)
	anonymousOpts := transportutil.AnonymousServerOptions(*regCtx)

	r.Methods(http.MethodGet).Path("/v1/auth/check").Handler(httptransport.NewServer(
		makeCheckAuthEndpoint(svc), decodeEmptyRequest, transportutil.EncodeResponse, authorizedOpts...,
	))
	r.Methods(http.MethodGet).Path("/v1/auth/logout").Handler(httptransport.NewServer(
		makeLogoutEndpoint(svc), decodeEmptyRequest, transportutil.EncodeResponse, authorizedOpts...,
	))
	r.Methods(http.MethodGet).Path("/v1/auth/{provider}").Handler(httptransport.NewServer(
		makeLoginEndpoint(svc), decodeLoginRequest, transportutil.EncodeResponse, anonymousOpts...,
	))
	r.Methods(http.MethodGet).Path("/v1/auth/{provider}/callback").Handler(httptransport.NewServer(
		makeCallbackEndpoint(svc), decodeCallbackRequest, transportutil.EncodeResponse, anonymousOpts...,
	))
}
