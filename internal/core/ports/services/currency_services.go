package services

import (
	"context"
	"time"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReaderSvc defines read operations for exchange rate data.
type RateReaderSvc interface {
	// GetLatestRates returns the latest rates for a base currency, served
	// from cache within the same UTC calendar day.
	GetLatestRates(ctx context.Context, baseCurrency string) (*domain.ExchangeRateSnapshot, error)

	// GetHistoricalRates returns day-by-day rates over [start, end].
	// Fails with apperrors.ErrInvalidDateRange when start is after end.
	GetHistoricalRates(ctx context.Context, baseCurrency string, start, end time.Time) (*domain.HistoricalRateSeries, error)
}

// ConverterSvc defines the currency conversion operation.
type ConverterSvc interface {
	// Convert converts amount from one currency to another using the latest
	// rates, rounding half-to-even to the nearest integer. Fails with
	// apperrors.ErrUnsupportedCurrency when either currency is blocked and
	// apperrors.ErrRateNotFound when the target rate is absent.
	Convert(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error)
}

// CurrencySvcFacade combines all rate-related service interfaces.
type CurrencySvcFacade interface {
	RateReaderSvc
	ConverterSvc
}
