package transportutil

import (
	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/reporemover/reporemover-api/internal/api/endpointutil"
)

func serverOptions(hctx endpointutil.HandlerRegContext, storeContext httptransport.RequestFunc) []httptransport.ServerOption {
	return []httptransport.ServerOption{
		httptransport.ServerBefore(StoreHTTPRequestToContext, storeContext),
		httptransport.ServerAfter(FinalizeSession),
		httptransport.ServerErrorEncoder(EncodeError),
		httptransport.ServerErrorLogger(AdaptErrorLogger(hctx.Log)),
		httptransport.ServerFinalizer(FinalizeRequest),
	}
}

func AnonymousServerOptions(hctx endpointutil.HandlerRegContext) []httptransport.ServerOption {
	return serverOptions(hctx, MakeStoreAnonymousRequestContext(hctx))
}

func AuthorizedServerOptions(hctx endpointutil.HandlerRegContext) []httptransport.ServerOption {
	return serverOptions(hctx, MakeStoreAuthorizedRequestContext(hctx))
}
