package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/domain"
)

func seriesWithDates(dates ...string) *domain.HistoricalRateSeries {
	rates := make(map[string]map[string]decimal.Decimal, len(dates))
	for i, d := range dates {
		rates[d] = map[string]decimal.Decimal{"EUR": decimal.NewFromInt(int64(i))}
	}
	return &domain.HistoricalRateSeries{
		BaseCurrency: "USD",
		StartDate:    dates[0],
		EndDate:      dates[len(dates)-1],
		RatesByDate:  rates,
	}
}

func TestSortedDates(t *testing.T) {
	s := seriesWithDates("2025-06-03", "2025-06-01", "2025-06-02")

	assert.Equal(t, []string{"2025-06-01", "2025-06-02", "2025-06-03"}, s.SortedDates())
}

func TestPage_FirstPage(t *testing.T) {
	s := seriesWithDates("2025-06-01", "2025-06-02", "2025-06-03")

	page := s.Page(1, 2)

	require.Len(t, page.RatesByDate, 2)
	assert.Contains(t, page.RatesByDate, "2025-06-01")
	assert.Contains(t, page.RatesByDate, "2025-06-02")
	assert.Equal(t, s.BaseCurrency, page.BaseCurrency)
	assert.Equal(t, s.StartDate, page.StartDate)
	assert.Equal(t, s.EndDate, page.EndDate)
}

func TestPage_LastPartialPage(t *testing.T) {
	s := seriesWithDates("2025-06-01", "2025-06-02", "2025-06-03")

	page := s.Page(2, 2)

	require.Len(t, page.RatesByDate, 1)
	assert.Contains(t, page.RatesByDate, "2025-06-03")
}

func TestPage_PastEndIsEmptyNotError(t *testing.T) {
	s := seriesWithDates("2025-06-01", "2025-06-02", "2025-06-03")

	page := s.Page(5, 2)

	require.NotNil(t, page)
	assert.Empty(t, page.RatesByDate)
}

func TestPage_ClampsInvalidPageInputs(t *testing.T) {
	s := seriesWithDates("2025-06-01", "2025-06-02")

	page := s.Page(0, 0)

	require.Len(t, page.RatesByDate, 1)
	assert.Contains(t, page.RatesByDate, "2025-06-01")
}
