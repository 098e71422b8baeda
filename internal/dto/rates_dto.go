package dto

import (
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LatestRatesRequest defines the query parameters for the latest-rates
// endpoint.
type LatestRatesRequest struct {
	Base string `form:"base" binding:"required,currencycode"`
}

// HistoricalRatesRequest defines the query parameters for the history
// endpoint. Dates are YYYY-MM-DD. Page numbering is 1-indexed.
type HistoricalRatesRequest struct {
	Base      string `form:"base" binding:"required,currencycode"`
	StartDate string `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"required,datetime=2006-01-02"`
	PageNo    int    `form:"pageNo,default=1" binding:"omitempty,min=1"`
	PageSize  int    `form:"pageSize,default=10" binding:"omitempty,min=1,max=100"`
}

// ConversionRequest defines the query parameters for the conversions
// endpoint.
type ConversionRequest struct {
	From   string `form:"from" binding:"required,currencycode"`
	To     string `form:"to" binding:"required,currencycode"`
	Amount string `form:"amount" binding:"required"`
}

// LatestRatesResponse defines the payload for the latest-rates endpoint,
// mirroring the upstream field names so clients see a familiar shape.
type LatestRatesResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// HistoricalRatesResponse defines the payload for the history endpoint.
type HistoricalRatesResponse struct {
	Base      string                                `json:"base"`
	StartDate string                                `json:"start_date"`
	EndDate   string                                `json:"end_date"`
	PageNo    int                                   `json:"pageNo"`
	PageSize  int                                   `json:"pageSize"`
	Rates     map[string]map[string]decimal.Decimal `json:"rates"`
}

// ConversionResponse defines the payload for the conversions endpoint.
type ConversionResponse struct {
	FromCurrency string          `json:"fromCurrency"`
	FromAmount   decimal.Decimal `json:"fromAmount"`
	ToCurrency   string          `json:"toCurrency"`
	ToAmount     decimal.Decimal `json:"toAmount"`
}

// ToLatestRatesResponse converts a snapshot to its response DTO.
func ToLatestRatesResponse(snap *domain.ExchangeRateSnapshot) LatestRatesResponse {
	return LatestRatesResponse{
		Base:  snap.BaseCurrency,
		Date:  snap.Date.Format(domain.DateFormat),
		Rates: snap.Rates,
	}
}

// ToHistoricalRatesResponse converts a (already paginated) series to its
// response DTO.
func ToHistoricalRatesResponse(series *domain.HistoricalRateSeries, pageNo, pageSize int) HistoricalRatesResponse {
	return HistoricalRatesResponse{
		Base:      series.BaseCurrency,
		StartDate: series.StartDate,
		EndDate:   series.EndDate,
		PageNo:    pageNo,
		PageSize:  pageSize,
		Rates:     series.RatesByDate,
	}
}
