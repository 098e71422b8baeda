package ports

import (
	"context"
	"time"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/domain"
)

// RateProvider is the upstream source of exchange rate data. Implementations
// must not retry; transport resilience belongs to the caller's HTTP client.
type RateProvider interface {
	// FetchLatest returns the latest rates for the given base currency.
	FetchLatest(ctx context.Context, baseCurrency string) (*domain.ExchangeRateSnapshot, error)

	// FetchHistorical returns day-by-day rates for the given base currency
	// over the closed range [start, end].
	FetchHistorical(ctx context.Context, baseCurrency string, start, end time.Time) (*domain.HistoricalRateSeries, error)
}

// ProviderFactory resolves a configured provider name to an implementation.
// Resolution is case-insensitive; unknown names fail with
// apperrors.ErrUnknownProvider.
type ProviderFactory interface {
	Resolve(name string) (RateProvider, error)
}
