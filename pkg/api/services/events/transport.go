package events

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/reporemover/reporemover-api/internal/api/endpointutil"
	"github.com/reporemover/reporemover-api/internal/api/transportutil"
)

type TrackEventRequest struct {
	Req *Request
}

func makeTrackEventEndpoint(svc Service) endpoint.Endpoint {
	return func(ctx context.Context, reqObj interface{}) (interface{}, error) {
		rc, err := endpointutil.AuthorizedRequestContext(ctx)
		if err != nil {
			return nil, err
		}

		req := reqObj.(TrackEventRequest)
		req.Req.FillLogContext(rc.Lctx)
		return svc.TrackEvent(rc, req.Req)
	}
}

func decodeTrackEventRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	var req TrackEventRequest
	if err := transportutil.Decode(ctx, &req, r); err != nil {
		return nil, err
	}

	return req, nil
}

func RegisterHandlers(r *mux.Router, svc Service, regCtx *endpointutil.HandlerRegContext) {
	r.Methods(http.MethodPost).Path("/v1/events/analytics").Handler(httptransport.NewServer(
		makeTrackEventEndpoint(svc), decodeTrackEventRequest, transportutil.EncodeResponse,
		transportutil.AuthorizedServerOptions(*regCtx)...,
	))
}
