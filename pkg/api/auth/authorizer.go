package auth

import (
	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/api/apierrors"
	"github.com/reporemover/reporemover-api/internal/api/session"
	"github.com/reporemover/reporemover-api/pkg/api/models"
)

const authSessKey = "auth"
const sessType = "s"

type Authorizer struct {
	asf *session.Factory
}

func NewAuthorizer(asf *session.Factory) *Authorizer {
	return &Authorizer{
		asf: asf,
	}
}

type AuthenticatedUser struct {
	Auth     *models.Auth
	AuthSess *session.Session
}

func (a Authorizer) Authorize(sctx *session.RequestContext) (*AuthenticatedUser, error) {
	authSess, err := a.asf.Build(sctx, sessType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build auth sess")
	}

	authValue := authSess.GetString(authSessKey)
	if authValue == "" {
		return nil, apierrors.ErrNotAuthorized
	}

	authModel, err := models.UnmarshalAuth(authValue)
	if err != nil {
		// broken or outdated session: force the user to login again
		authSess.Delete()
		return nil, errors.Wrapf(apierrors.ErrNotAuthorized, "invalid auth in session: %s", err)
	}

	return &AuthenticatedUser{
		Auth:     authModel,
		AuthSess: authSess,
	}, nil
}

func (a Authorizer) CreateAuthorization(sctx *session.RequestContext, authModel *models.Auth) error {
	authSess, err := a.asf.Build(sctx, sessType)
	if err != nil {
		return errors.Wrap(err, "failed to build auth sess")
	}

	authValue, err := authModel.Marshal()
	if err != nil {
		return err
	}

	authSess.Set(authSessKey, authValue)
	return nil
}
