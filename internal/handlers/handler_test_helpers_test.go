package handlers

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/domain"
	portssvc "github.com/lamiamustafa/CurrencyConverterAPI/internal/core/ports/services"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/platform/metrics"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/utils"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// Shared across suites; promauto collectors register globally and must only
// be created once per test binary.
var testMetrics = metrics.NewMetrics()

// bearerToken issues a token the real AuthMiddleware will accept.
func bearerToken(userID string, role domain.Role) string {
	token, _, err := utils.GenerateJWT(userID, string(role), testJWTSecret, "test", time.Hour)
	if err != nil {
		panic(err)
	}
	return "Bearer " + token
}

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetLatestRates(ctx context.Context, baseCurrency string) (*domain.ExchangeRateSnapshot, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRateSnapshot), args.Error(1)
}

func (m *MockCurrencyService) GetHistoricalRates(ctx context.Context, baseCurrency string, start, end time.Time) (*domain.HistoricalRateSeries, error) {
	args := m.Called(ctx, baseCurrency, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoricalRateSeries), args.Error(1)
}

func (m *MockCurrencyService) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)
