package transportutil

import (
	"context"
	"net/http"
	"time"

	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/api/endpointutil"
	"github.com/reporemover/reporemover-api/internal/api/session"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
)

func MakeStoreAnonymousRequestContext(hctx endpointutil.HandlerRegContext) httptransport.RequestFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		et := hctx.ErrTracker.WithHTTPRequest(r)
		rc := endpointutil.MakeAnonymousRequestContext(ctx, session.NewRequestContext(r, hctx.Log), &hctx, et)
		return endpointutil.StoreRequestContext(ctx, rc)
	}
}

func MakeStoreAuthorizedRequestContext(hctx endpointutil.HandlerRegContext) httptransport.RequestFunc {
	return func(ctx context.Context, r *http.Request) context.Context {
		et := hctx.ErrTracker.WithHTTPRequest(r)
		rc, err := endpointutil.MakeAuthorizedRequestContext(ctx, session.NewRequestContext(r, hctx.Log), &hctx, et)
		if err != nil {
			return endpointutil.StoreError(ctx, errors.Wrap(err, "failed to authorize"))
		}

		return endpointutil.StoreRequestContext(ctx, rc)
	}
}

func FinalizeRequest(ctx context.Context, code int, r *http.Request) {
	rc := endpointutil.RequestContext(ctx)
	if rc != nil {
		rc.Logger().Debugf("request", "%s %s respond %d for %s",
			r.Method, r.URL.Path, code, time.Since(rc.RequestStartedAt()))
	} else {
		logger := logutil.NewStderrLog("finalize request")
		logger.Debugf("request", "%s %s respond %d with no request context", r.Method, r.URL.Path, code)
	}
}

type ctxKey string

const (
	errKey         ctxKey = "transport/error"
	httpRequestKey ctxKey = "transport/httpRequest"
)

func storeContextError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, errKey, err)
}

func GetContextError(ctx context.Context) error {
	v := ctx.Value(errKey)
	if v == nil {
		return nil
	}

	return v.(error)
}

func StoreHTTPRequestToContext(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey, r)
}

func getHTTPRequestFromContext(ctx context.Context) *http.Request {
	r, _ := ctx.Value(httpRequestKey).(*http.Request)
	return r
}
