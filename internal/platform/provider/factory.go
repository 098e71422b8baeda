package provider

import (
	"fmt"
	"strings"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/apperrors"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/ports"
)

// Factory resolves provider names to RateProvider implementations. The
// registry is fixed at construction time; resolution is case-insensitive.
type Factory struct {
	providers map[string]ports.RateProvider
}

// NewFactory creates a Factory over the given name→provider registry.
// Names are normalized to lower case.
func NewFactory(providers map[string]ports.RateProvider) *Factory {
	registry := make(map[string]ports.RateProvider, len(providers))
	for name, p := range providers {
		registry[strings.ToLower(name)] = p
	}
	return &Factory{providers: registry}
}

// Resolve returns the provider registered under name, matched
// case-insensitively. Unknown names fail with apperrors.ErrUnknownProvider.
func (f *Factory) Resolve(name string) (ports.RateProvider, error) {
	p, ok := f.providers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownProvider, name)
	}
	return p, nil
}

var _ ports.ProviderFactory = (*Factory)(nil)
