package app

import (
	"github.com/reporemover/reporemover-api/internal/shared/config"
	"github.com/reporemover/reporemover-api/internal/shared/logutil"
	"github.com/reporemover/reporemover-api/internal/shared/providers"
)

type Modifier func(a *App)

func SetProviderFactory(pf providers.Factory) Modifier {
	return func(a *App) {
		a.providerFactory = pf
	}
}

func SetConfig(cfg config.Config) Modifier {
	return func(a *App) {
		a.cfg = cfg
	}
}

func SetLog(log logutil.Log) Modifier {
	return func(a *App) {
		a.log = log
	}
}
