package sharedtest

import (
	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/internal/shared/providers"
	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
	"github.com/reporemover/reporemover-api/test/sharedtest/mocks"
)

type CommonDeps struct {
	Cfg             config.Config
	Log             logutil.Log
	ProviderFactory providers.Factory
}

func (ta *App) BuildCommonDeps() *CommonDeps {
	log := logutil.NewStderrLog("test")
	cfg := config.NewEnvConfig(log)

	origPF := providers.NewBasicFactory(log, cfg)
	pf := mocks.NewProviderFactory(func(p provider.Provider) provider.Provider {
		if err := p.SetBaseURL(ta.Github.URL() + "/"); err != nil {
			log.Fatalf("Failed to set base url: %s", err)
		}
		return p
	}, origPF)

	return &CommonDeps{
		Cfg:             cfg,
		Log:             log,
		ProviderFactory: pf,
	}
}
