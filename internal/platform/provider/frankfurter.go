package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/apperrors"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/domain"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/ports"
	"github.com/shopspring/decimal"
)

// FrankfurterProvider fetches rates from the Frankfurter API
// (https://api.frankfurter.app). It performs no retries; the caller's
// context governs cancellation.
type FrankfurterProvider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

type frankfurterLatestResponse struct {
	Amount decimal.Decimal            `json:"amount"`
	Base   string                     `json:"base"`
	Date   string                     `json:"date"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

type frankfurterHistoricalResponse struct {
	Base      string                                `json:"base"`
	StartDate string                                `json:"start_date"`
	EndDate   string                                `json:"end_date"`
	Rates     map[string]map[string]decimal.Decimal `json:"rates"`
}

// NewFrankfurterProvider creates a FrankfurterProvider against the given
// base URL.
func NewFrankfurterProvider(baseURL string, timeout time.Duration, log *slog.Logger) *FrankfurterProvider {
	return &FrankfurterProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// FetchLatest returns the latest rates for the given base currency.
func (p *FrankfurterProvider) FetchLatest(ctx context.Context, baseCurrency string) (*domain.ExchangeRateSnapshot, error) {
	p.log.Info("Fetching latest rates from Frankfurter", slog.String("base", baseCurrency))

	url := fmt.Sprintf("%s/latest?base=%s", p.baseURL, baseCurrency)
	body, err := p.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp frankfurterLatestResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &apperrors.UpstreamError{StatusCode: http.StatusOK, Body: "malformed latest-rates payload: " + err.Error()}
	}

	date, err := time.Parse(domain.DateFormat, resp.Date)
	if err != nil {
		return nil, &apperrors.UpstreamError{StatusCode: http.StatusOK, Body: "malformed rate date: " + resp.Date}
	}

	return &domain.ExchangeRateSnapshot{
		BaseCurrency: resp.Base,
		Date:         date,
		Rates:        resp.Rates,
	}, nil
}

// FetchHistorical returns day-by-day rates over [start, end]. Frankfurter
// exposes ranges as "{start}..{end}".
func (p *FrankfurterProvider) FetchHistorical(ctx context.Context, baseCurrency string, start, end time.Time) (*domain.HistoricalRateSeries, error) {
	startStr := start.Format(domain.DateFormat)
	endStr := end.Format(domain.DateFormat)
	p.log.Info("Fetching historical rates from Frankfurter",
		slog.String("base", baseCurrency),
		slog.String("start", startStr),
		slog.String("end", endStr),
	)

	url := fmt.Sprintf("%s/%s..%s?base=%s", p.baseURL, startStr, endStr, baseCurrency)
	body, err := p.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var resp frankfurterHistoricalResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &apperrors.UpstreamError{StatusCode: http.StatusOK, Body: "malformed historical-rates payload: " + err.Error()}
	}

	return &domain.HistoricalRateSeries{
		BaseCurrency: resp.Base,
		StartDate:    resp.StartDate,
		EndDate:      resp.EndDate,
		RatesByDate:  resp.Rates,
	}, nil
}

func (p *FrankfurterProvider) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach rate provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		p.log.Error("Frankfurter returned non-OK status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)),
		)
		return nil, &apperrors.UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

var _ ports.RateProvider = (*FrankfurterProvider)(nil)
