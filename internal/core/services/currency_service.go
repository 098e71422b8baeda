package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/apperrors"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/domain"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/ports"
	"github.com/shopspring/decimal"
)

const (
	latestRatesKeyPrefix     = "rates_latest"
	historicalRatesKeyPrefix = "rates_historical"

	historicalRatesTTL = 30 * 24 * time.Hour
)

// CurrencyService orchestrates cache lookups, provider calls, conversion
// math, and the blocked-currency policy.
type CurrencyService struct {
	provider          ports.RateProvider
	cache             ports.RateCache
	blockedCurrencies map[string]struct{}
	logger            *slog.Logger
}

// NewCurrencyService creates a new CurrencyService. The provider is resolved
// once at construction so an unknown provider name fails at startup rather
// than on first use. blockedCurrencies come from configuration.
func NewCurrencyService(factory ports.ProviderFactory, providerName string, cache ports.RateCache, blockedCurrencies []string, logger *slog.Logger) (*CurrencyService, error) {
	provider, err := factory.Resolve(providerName)
	if err != nil {
		return nil, err
	}

	blocked := make(map[string]struct{}, len(blockedCurrencies))
	for _, c := range blockedCurrencies {
		blocked[c] = struct{}{}
	}

	return &CurrencyService{
		provider:          provider,
		cache:             cache,
		blockedCurrencies: blocked,
		logger:            logger,
	}, nil
}

// GetLatestRates returns the latest rates for the given base currency. The
// result is cached until the next UTC midnight, so a base currency costs at
// most one upstream call per UTC calendar day. Provider errors propagate
// unchanged.
func (s *CurrencyService) GetLatestRates(ctx context.Context, baseCurrency string) (*domain.ExchangeRateSnapshot, error) {
	cacheKey := fmt.Sprintf("%s_%s", latestRatesKeyPrefix, baseCurrency)

	value, err := s.cache.GetOrFetch(ctx, cacheKey, ports.ExpireAtUTCMidnight, func(ctx context.Context) (any, error) {
		s.logger.Info("Fetching latest rates from provider", slog.String("base", baseCurrency))
		return s.provider.FetchLatest(ctx, baseCurrency)
	})
	if err != nil {
		return nil, err
	}

	return value.(*domain.ExchangeRateSnapshot), nil
}

// GetHistoricalRates returns day-by-day rates for the given base currency
// over [start, end]. Historical data for a closed range does not change, so
// the result is cached for 30 days from fetch.
func (s *CurrencyService) GetHistoricalRates(ctx context.Context, baseCurrency string, start, end time.Time) (*domain.HistoricalRateSeries, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start date %s is after end date %s",
			apperrors.ErrInvalidDateRange, start.Format(domain.DateFormat), end.Format(domain.DateFormat))
	}

	cacheKey := fmt.Sprintf("%s_%s_%s_%s",
		historicalRatesKeyPrefix, baseCurrency, start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	value, err := s.cache.GetOrFetch(ctx, cacheKey, ports.ExpireAfter(historicalRatesTTL), func(ctx context.Context) (any, error) {
		s.logger.Info("Fetching historical rates from provider",
			slog.String("base", baseCurrency),
			slog.String("start", start.Format(domain.DateFormat)),
			slog.String("end", end.Format(domain.DateFormat)),
		)
		return s.provider.FetchHistorical(ctx, baseCurrency, start, end)
	})
	if err != nil {
		return nil, err
	}

	return value.(*domain.HistoricalRateSeries), nil
}

// Convert converts amount from one currency to another using the latest
// rates for the source currency, rounding half-to-even to the nearest
// integer. Blocked currencies are rejected before any upstream call.
func (s *CurrencyService) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error) {
	for _, currency := range []string{from, to} {
		if _, blocked := s.blockedCurrencies[currency]; blocked {
			s.logger.Warn("Conversion involving blocked currency rejected", slog.String("currency", currency))
			return decimal.Decimal{}, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedCurrency, currency)
		}
	}

	latest, err := s.GetLatestRates(ctx, from)
	if err != nil {
		return decimal.Decimal{}, err
	}

	rate, ok := latest.Rates[to]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate from %s to %s", apperrors.ErrRateNotFound, from, to)
	}

	return amount.Mul(rate).RoundBank(0), nil
}
