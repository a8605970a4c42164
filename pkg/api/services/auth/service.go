package auth

import (
	"strconv"

	"github.com/markbates/goth"
	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/api/apierrors"
	"github.com/reporemover/reporemover-api/internal/api/events"
	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/pkg/api/auth"
	"github.com/reporemover/reporemover-api/pkg/api/auth/oauth"
	"github.com/reporemover/reporemover-api/pkg/api/models"
	"github.com/reporemover/reporemover-api/pkg/api/request"
	"github.com/reporemover/reporemover-api/pkg/api/returntypes"
)

type Request struct {
	Provider string `request:",urlPart,"` // short provider name e.g. 'github'
}

func (r Request) FillLogContext(lctx logutil.Context) {
	lctx["provider"] = r.Provider
}

type OAuthCallbackRequest struct {
	Request
	Code  string `request:",urlParam,optional"`
	State string `request:",urlParam,optional"`
}

type Service interface {
	//url:/v1/auth/check
	CheckAuth(rc *request.AuthorizedContext) (*returntypes.CheckAuthResponse, error)

	//url:/v1/auth/logout
	Logout(rc *request.AuthorizedContext) error

	//url:/v1/auth/{provider}
	Login(rc *request.AnonymousContext, req *Request) error

	//url:/v1/auth/{provider}/callback
	LoginOAuthCallback(rc *request.AnonymousContext, req *OAuthCallbackRequest) error
}

type BasicService struct {
	Cfg          config.Config
	OAuthFactory *oauth.Factory
	Authorizer   *auth.Authorizer
	Tracker      *events.Tracker
}

func (s BasicService) CheckAuth(rc *request.AuthorizedContext) (*returntypes.CheckAuthResponse, error) {
	return &returntypes.CheckAuthResponse{
		User: returntypes.AuthorizedUser{
			Login:          rc.Auth.Login,
			Name:           rc.Auth.Name,
			AvatarURL:      rc.Auth.AvatarURL,
			ProviderUserID: rc.Auth.ProviderUserID,
		},
	}, nil
}

func (s BasicService) webroot() string {
	return s.Cfg.GetString("WEB_ROOT")
}

func (s BasicService) afterURL(after string) string {
	return s.webroot() + "/?after=" + after
}

func (s BasicService) Logout(rc *request.AuthorizedContext) error {
	rc.AuthSess.Delete()
	rc.Log.Infof("Logged out")
	return apierrors.NewTemporaryRedirectError(s.afterURL("logout"))
}

func (s BasicService) buildAuthorizer(providerName string) (*oauth.Authorizer, error) {
	authorizer, err := s.OAuthFactory.BuildAuthorizer(providerName)
	if err != nil {
		return nil, errors.Wrapf(apierrors.ErrNotFound, "failed to build authorizer: %s", err)
	}

	return authorizer, nil
}

func (s BasicService) Login(rc *request.AnonymousContext, req *Request) error {
	authorizer, err := s.buildAuthorizer(req.Provider)
	if err != nil {
		return err
	}

	return authorizer.RedirectToProvider(rc.SessCtx)
}

func (s BasicService) LoginOAuthCallback(rc *request.AnonymousContext, req *OAuthCallbackRequest) error {
	if req.Code == "" || req.State == "" {
		rc.Log.Infof("No code or state in oauth callback, redirecting to web root")
		return apierrors.NewTemporaryRedirectError(s.webroot())
	}

	authorizer, err := s.buildAuthorizer(req.Provider)
	if err != nil {
		return err
	}

	gu, err := authorizer.HandleProviderCallback(rc.SessCtx, req.State, req.Code)
	if err != nil {
		rc.Log.Warnf("Failed to handle %s oauth callback: %s", req.Provider, err)
		return apierrors.NewTemporaryRedirectError(s.afterURL("login_failed"))
	}

	authModel, err := authFromGothUser(req.Provider, gu)
	if err != nil {
		rc.Log.Warnf("Invalid %s user after oauth: %s", req.Provider, err)
		return apierrors.NewTemporaryRedirectError(s.afterURL("login_failed"))
	}

	if err = s.Authorizer.CreateAuthorization(rc.SessCtx, authModel); err != nil {
		return errors.Wrap(err, "failed to create authorization")
	}

	rc.Lctx["provider_login"] = authModel.Login
	rc.Log.Infof("%s oauth completed", req.Provider)

	s.Tracker.ForUser(authModel.Login).WithUserProps(map[string]interface{}{
		"name": authModel.Name,
	}).Track(rc.Ctx, events.EventLoggedIn, map[string]interface{}{
		"provider": req.Provider,
	})

	return apierrors.NewTemporaryRedirectError(s.afterURL("login"))
}

func authFromGothUser(providerName string, gu *goth.User) (*models.Auth, error) {
	if gu.AccessToken == "" {
		return nil, errors.New("no access token")
	}

	providerUserID, err := strconv.ParseUint(gu.UserID, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "can't parse provider user id %q", gu.UserID)
	}

	name := gu.Name
	if name == "" {
		name = gu.NickName
	}

	return &models.Auth{
		Provider:       providerName,
		AccessToken:    gu.AccessToken,
		Login:          gu.NickName,
		Name:           name,
		AvatarURL:      gu.AvatarURL,
		ProviderUserID: providerUserID,
	}, nil
}
