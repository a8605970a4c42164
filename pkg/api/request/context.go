package request

import (
	"context"
	"time"

	"github.com/reporemover/reporemover-api/internal/api/session"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/pkg/api/models"
)

type Context interface {
	RequestStartedAt() time.Time
	Logger() logutil.Log
	LogContext() logutil.Context
	SessContext() *session.RequestContext
}

type BaseContext struct {
	Ctx  context.Context
	Log  logutil.Log
	Lctx logutil.Context

	StartedAt time.Time

	SessCtx *session.RequestContext
}

func (ctx BaseContext) RequestStartedAt() time.Time {
	return ctx.StartedAt
}

func (ctx BaseContext) Logger() logutil.Log {
	return ctx.Log
}

func (ctx BaseContext) LogContext() logutil.Context {
	return ctx.Lctx
}

func (ctx BaseContext) SessContext() *session.RequestContext {
	return ctx.SessCtx
}

type AnonymousContext struct {
	BaseContext
}

// AuthorizedContext is a context of a request made by a logged in user.
// Auth carries the user's access token: build providers from it, never log it.
type AuthorizedContext struct {
	BaseContext

	Auth     *models.Auth
	AuthSess *session.Session
}
