package mocks

import (
	"github.com/reporemover/reporemover-api/internal/shared/providers"
	"github.com/reporemover/reporemover-api/internal/shared/providers/provider"
	"github.com/reporemover/reporemover-api/pkg/api/models"
)

type ProviderTransformer func(p provider.Provider) provider.Provider

type ProviderFactory struct {
	orig        providers.Factory
	transformer ProviderTransformer
}

var _ providers.Factory = &ProviderFactory{}

func NewProviderFactory(transformer ProviderTransformer, orig providers.Factory) *ProviderFactory {
	return &ProviderFactory{
		orig:        orig,
		transformer: transformer,
	}
}

func (f ProviderFactory) Build(auth *models.Auth) (provider.Provider, error) {
	p, err := f.orig.Build(auth)
	if p != nil {
		p = f.transformer(p)
	}
	return p, err
}

// StaticProviderFactory builds the same provider for every auth.
type StaticProviderFactory struct {
	Provider provider.Provider
}

func (f StaticProviderFactory) Build(auth *models.Auth) (provider.Provider, error) {
	return f.Provider, nil
}
