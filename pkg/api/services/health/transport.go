package health

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/reporemover/reporemover-api/internal/api/endpointutil"
	"github.com/reporemover/reporemover-api/internal/api/transportutil"
)

func makeCheckEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		rc, err := endpointutil.AnonymousRequestContext(ctx)
		if err != nil {
			return nil, err
		}

		return svc.Check(rc)
	}
}

func decodeCheckRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return struct{}{}, nil
}

func RegisterHandlers(r *mux.Router, svc Service, regCtx *endpointutil.HandlerRegContext) {
	r.Methods(http.MethodGet).Path("/v1/health").Handler(httptransport.NewServer(
		makeCheckEndpoint(svc), decodeCheckRequest, transportutil.EncodeResponse,
		transportutil.AnonymousServerOptions(*regCtx)...,
	))
}
