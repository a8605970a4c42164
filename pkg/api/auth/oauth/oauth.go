package oauth

import (
	"fmt"
	"net/url"

	"github.com/markbates/goth"
	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/api/apierrors"
	"github.com/reporemover/reporemover-api/internal/api/session"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	uuid "github.com/satori/go.uuid"
)

type Authorizer struct {
	providerName string
	provider     goth.Provider
	sessFactory  *session.Factory
	log          logutil.Log
}

func NewAuthorizer(providerName string, provider goth.Provider, sessFactory *session.Factory, log logutil.Log) *Authorizer {
	return &Authorizer{
		providerName: providerName,
		provider:     provider,
		sessFactory:  sessFactory,
		log:          log,
	}
}

func (a Authorizer) sessionName() string {
	return a.providerName + "_oauth_sess"
}

func (a Authorizer) buildSess(sctx *session.RequestContext) (*session.Session, error) {
	sess, err := a.sessFactory.Build(sctx, a.sessionName())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get sess %s", a.sessionName())
	}

	return sess, nil
}

// RedirectToProvider remembers the goth session and returns a redirect to the provider's
// authorization page.
func (a Authorizer) RedirectToProvider(sctx *session.RequestContext) error {
	gothSess, err := a.provider.BeginAuth(uuid.NewV4().String())
	if err != nil {
		return errors.Wrap(err, "failed to begin auth in goth provider")
	}

	authURL, err := gothSess.GetAuthURL()
	if err != nil {
		return errors.Wrap(err, "failed to get auth url from goth provider")
	}

	sess, err := a.buildSess(sctx)
	if err != nil {
		return err
	}
	sess.Set(a.providerName, gothSess.Marshal())

	a.log.Infof("Redirecting to provider %s", a.providerName)
	return apierrors.NewTemporaryRedirectError(authURL)
}

type params struct {
	code string
}

func (p params) Get(s string) string {
	if s == "code" {
		return p.code
	}

	return ""
}

// HandleProviderCallback checks the state, exchanges the code to an access token
// and fetches the provider user.
func (a Authorizer) HandleProviderCallback(sctx *session.RequestContext, stateParam, codeParam string) (*goth.User, error) {
	sess, err := a.buildSess(sctx)
	if err != nil {
		return nil, err
	}
	defer sess.Delete()

	sessData := sess.GetString(a.providerName)
	if sessData == "" {
		return nil, fmt.Errorf("could not find a matching session %q for this request", a.providerName)
	}

	gothSess, err := a.provider.UnmarshalSession(sessData)
	if err != nil {
		return nil, errors.Wrap(err, "can't unmarshal to goth session")
	}

	if err = validateState(gothSess, stateParam); err != nil {
		return nil, errors.Wrap(err, "can't validate state")
	}

	if _, err = gothSess.Authorize(a.provider, params{code: codeParam}); err != nil {
		return nil, errors.Wrap(err, "can't authorize")
	}

	gu, err := a.provider.FetchUser(gothSess)
	if err != nil {
		return nil, errors.Wrap(err, "can't fetch user")
	}

	return &gu, nil
}

// validateState ensures that the state from the original auth url matches
// the one of the callback request.
func validateState(sess goth.Session, stateParam string) error {
	rawAuthURL, err := sess.GetAuthURL()
	if err != nil {
		return errors.Wrap(err, "failed to get auth url")
	}

	authURL, err := url.Parse(rawAuthURL)
	if err != nil {
		return errors.Wrapf(err, "failed to parse auth url %q", rawAuthURL)
	}

	originalState := authURL.Query().Get("state")
	if originalState == "" || originalState != stateParam {
		return fmt.Errorf("state token mismatch: %q != %q", originalState, stateParam)
	}

	return nil
}
