package providers

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/internal/shared/providers/implementations"
	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
	"github.com/reporemover/reporemover-api/pkg/api/models"
)

type Factory interface {
	Build(auth *models.Auth) (provider.Provider, error)
}

type BasicFactory struct {
	log logutil.Log
	cfg config.Config
}

func NewBasicFactory(log logutil.Log, cfg config.Config) *BasicFactory {
	return &BasicFactory{
		log: log,
		cfg: cfg,
	}
}

func (f BasicFactory) buildImpl(auth *models.Auth) (provider.Provider, error) {
	switch auth.Provider {
	case implementations.GithubProviderName:
		return implementations.NewGithub(auth.AccessToken, f.log.Child("github")), nil
	}

	return nil, fmt.Errorf("invalid provider name %q in auth %#v", auth.Provider, auth)
}

func (f BasicFactory) Build(auth *models.Auth) (provider.Provider, error) {
	p, err := f.buildImpl(auth)
	if err != nil {
		return nil, err
	}

	if apiURL := f.cfg.GetString("GITHUB_API_URL"); apiURL != "" {
		if err = p.SetBaseURL(apiURL); err != nil {
			return nil, errors.Wrapf(err, "invalid GITHUB_API_URL %q", apiURL)
		}
	}

	if dumpDir := f.cfg.GetString("GITHUB_DUMP_DIR"); dumpDir != "" && config.IsDevelopment(f.cfg) {
		p.SetTransport(implementations.NewDumpTransport(dumpDir, nil, f.log.Child("dump")))
	}

	return implementations.NewStableProvider(p,
		f.cfg.GetDuration("GITHUB_READ_TIMEOUT", 30*time.Second),
		f.cfg.GetInt("GITHUB_READ_RETRIES", 3)), nil
}
