package endpointutil

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/api/session"
	"github.com/reporemover/reporemover-api/internal/shared/apperrors"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/pkg/api/auth"
	"github.com/reporemover/reporemover-api/pkg/api/request"
	uuid "github.com/satori/go.uuid"
)

type contextKey string

const (
	contextKeyRequestContext contextKey = "endpoint/requestContext"
	contextKeyError          contextKey = "endpoint/error"
)

// HandlerRegContext is shared by all handlers of the app.
type HandlerRegContext struct {
	Authorizer *auth.Authorizer
	Log        logutil.Log
	ErrTracker apperrors.Tracker
}

func RequestContext(ctx context.Context) request.Context {
	rc := ctx.Value(contextKeyRequestContext)
	if rc == nil {
		return nil
	}
	return rc.(request.Context)
}

func StoreRequestContext(ctx context.Context, rc request.Context) context.Context {
	return context.WithValue(ctx, contextKeyRequestContext, rc)
}

func StoreError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, contextKeyError, err)
}

func Error(ctx context.Context) error {
	v := ctx.Value(contextKeyError)
	if v == nil {
		return nil
	}

	return v.(error)
}

func makeBaseRequestContext(ctx context.Context, sctx *session.RequestContext,
	hctx *HandlerRegContext, et apperrors.Tracker) *request.BaseContext {

	lctx := logutil.Context{
		"request_id": uuid.NewV4().String(),
	}
	log := hctx.Log
	log = logutil.WrapLogWithContext(log, lctx)
	log = apperrors.WrapLogWithTracker(log, lctx, et)

	return &request.BaseContext{
		Ctx:       ctx,
		Log:       log,
		Lctx:      lctx,
		StartedAt: time.Now(),
		SessCtx:   sctx,
	}
}

func MakeAnonymousRequestContext(ctx context.Context, sctx *session.RequestContext,
	hctx *HandlerRegContext, et apperrors.Tracker) *request.AnonymousContext {

	return &request.AnonymousContext{
		BaseContext: *makeBaseRequestContext(ctx, sctx, hctx, et),
	}
}

func MakeAuthorizedRequestContext(ctx context.Context, sctx *session.RequestContext,
	hctx *HandlerRegContext, et apperrors.Tracker) (*request.AuthorizedContext, error) {

	au, err := hctx.Authorizer.Authorize(sctx)
	if err != nil {
		return nil, err
	}

	baseCtx := makeBaseRequestContext(ctx, sctx, hctx, et)
	baseCtx.Lctx["provider_login"] = au.Auth.Login

	return &request.AuthorizedContext{
		BaseContext: *baseCtx,
		Auth:        au.Auth,
		AuthSess:    au.AuthSess,
	}, nil
}

// AuthorizedRequestContext returns the context stored by the authorizing
// transport or the authorization error.
func AuthorizedRequestContext(ctx context.Context) (*request.AuthorizedContext, error) {
	if err := Error(ctx); err != nil {
		return nil, err
	}

	rc, ok := RequestContext(ctx).(*request.AuthorizedContext)
	if !ok {
		return nil, errors.New("no authorized request context")
	}

	return rc, nil
}

func AnonymousRequestContext(ctx context.Context) (*request.AnonymousContext, error) {
	if err := Error(ctx); err != nil {
		return nil, err
	}

	rc, ok := RequestContext(ctx).(*request.AnonymousContext)
	if !ok {
		return nil, errors.New("no anonymous request context")
	}

	return rc, nil
}
