package oauth

import (
	"fmt"

	"github.com/markbates/goth/providers/github"
	"github.com/reporemover/reporemover-api/internal/api/session"
	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
)

// Scopes needed to list private repos, delete repos and manage stars.
var githubScopes = []string{"repo", "delete_repo"}

type Factory struct {
	sessFactory *session.Factory
	log         logutil.Log
	cfg         config.Config
}

func NewFactory(sessFactory *session.Factory, log logutil.Log, cfg config.Config) *Factory {
	return &Factory{
		sessFactory: sessFactory,
		log:         log,
		cfg:         cfg,
	}
}

func (f Factory) BuildAuthorizer(providerName string) (*Authorizer, error) {
	if providerName != "github" {
		return nil, fmt.Errorf("provider %s isn't supported for OAuth", providerName)
	}

	key := f.cfg.GetString("GITHUB_KEY")
	secret := f.cfg.GetString("GITHUB_SECRET")
	cbHost := f.cfg.GetString("GITHUB_CALLBACK_HOST")
	if key == "" || secret == "" || cbHost == "" {
		return nil, fmt.Errorf("not all required GITHUB_* config params are set")
	}

	cbURL := fmt.Sprintf("%s/v1/auth/%s/callback", cbHost, providerName)
	provider := github.New(key, secret, cbURL, githubScopes...)
	return NewAuthorizer(providerName, provider, f.sessFactory, f.log), nil
}
