package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the wire format for all rate dates. Lexical order of
// formatted dates equals chronological order, which the series pagination
// relies on.
const DateFormat = "2006-01-02"

// ExchangeRateSnapshot holds the latest rates for a single base currency as
// returned by the upstream provider. Immutable once fetched; one instance
// per (base, date) cache entry.
type ExchangeRateSnapshot struct {
	BaseCurrency string                     `json:"base"`
	Date         time.Time                  `json:"date"`
	Rates        map[string]decimal.Decimal `json:"rates"`
}

// HistoricalRateSeries holds day-by-day rates for a base currency over a
// closed date range. RatesByDate is keyed by DateFormat strings.
type HistoricalRateSeries struct {
	BaseCurrency string                                `json:"base"`
	StartDate    string                                `json:"start_date"`
	EndDate      string                                `json:"end_date"`
	RatesByDate  map[string]map[string]decimal.Decimal `json:"rates"`
}

// SortedDates returns the series' date keys in ascending order.
func (s *HistoricalRateSeries) SortedDates() []string {
	dates := make([]string, 0, len(s.RatesByDate))
	for d := range s.RatesByDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Page selects the 1-indexed page [(pageNo-1)*pageSize, pageNo*pageSize) of
// the date-ascending series. A page past the end yields an empty mapping,
// not an error. pageNo and pageSize below 1 are treated as 1.
func (s *HistoricalRateSeries) Page(pageNo, pageSize int) *HistoricalRateSeries {
	if pageNo < 1 {
		pageNo = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	dates := s.SortedDates()
	start := (pageNo - 1) * pageSize
	end := start + pageSize
	if start > len(dates) {
		start = len(dates)
	}
	if end > len(dates) {
		end = len(dates)
	}

	paged := make(map[string]map[string]decimal.Decimal, end-start)
	for _, d := range dates[start:end] {
		paged[d] = s.RatesByDate[d]
	}

	return &HistoricalRateSeries{
		BaseCurrency: s.BaseCurrency,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		RatesByDate:  paged,
	}
}
