package services

import (
	"log/slog"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/ports"
	portsrepo "github.com/lamiamustafa/CurrencyConverterAPI/internal/core/ports/repositories"
	portssvc "github.com/lamiamustafa/CurrencyConverterAPI/internal/core/ports/services"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. The rate provider is resolved here, so an
// unknown provider name in configuration fails before the server starts.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	factory ports.ProviderFactory,
	cache ports.RateCache,
	logger *slog.Logger,
) (*portssvc.ServiceContainer, error) {
	currencyService, err := NewCurrencyService(factory, cfg.ProviderName, cache, cfg.BlockedCurrencies, logger)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Currency: currencyService,
		User:     NewUserService(repos.UserRepo),
	}, nil
}

// Compile-time facade checks.
var (
	_ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
	_ portssvc.UserSvcFacade     = (*UserService)(nil)
)
