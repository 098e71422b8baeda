package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/apperrors"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/domain"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/dto"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/middleware"
)

type ExchangeRateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCurrencyService
}

func (suite *ExchangeRateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	registerCustomValidators()

	suite.mockService = new(MockCurrencyService)

	suite.router = gin.New()
	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
	registerExchangeRateRoutes(v1, suite.mockService, testMetrics)
}

func (suite *ExchangeRateHandlerTestSuite) doRequest(url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", bearerToken("user-1", domain.RoleUser))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func historySeries() *domain.HistoricalRateSeries {
	return &domain.HistoricalRateSeries{
		BaseCurrency: "USD",
		StartDate:    "2025-06-01",
		EndDate:      "2025-06-03",
		RatesByDate: map[string]map[string]decimal.Decimal{
			"2025-06-01": {"EUR": decimal.RequireFromString("0.85")},
			"2025-06-02": {"EUR": decimal.RequireFromString("0.86")},
			"2025-06-03": {"EUR": decimal.RequireFromString("0.84")},
		},
	}
}

// --- Test Cases ---

func (suite *ExchangeRateHandlerTestSuite) TestGetLatestRates_Success() {
	snap := &domain.ExchangeRateSnapshot{
		BaseCurrency: "USD",
		Date:         time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Rates:        map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.85")},
	}
	suite.mockService.On("GetLatestRates", mock.Anything, "USD").Return(snap, nil).Once()

	w := suite.doRequest("/api/v1/exchange-rates/latest?base=USD")

	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.LatestRatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("USD", resp.Base)
	suite.Equal("2025-06-02", resp.Date)
	suite.True(resp.Rates["EUR"].Equal(decimal.RequireFromString("0.85")))
}

func (suite *ExchangeRateHandlerTestSuite) TestGetLatestRates_MissingBase() {
	w := suite.doRequest("/api/v1/exchange-rates/latest")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetLatestRates", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateHandlerTestSuite) TestGetLatestRates_UpstreamError() {
	suite.mockService.On("GetLatestRates", mock.Anything, "USD").
		Return(nil, &apperrors.UpstreamError{StatusCode: 500, Body: "oops"}).Once()

	w := suite.doRequest("/api/v1/exchange-rates/latest?base=USD")

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *ExchangeRateHandlerTestSuite) TestGetHistoricalRates_FirstPage() {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("GetHistoricalRates", mock.Anything, "USD", start, end).
		Return(historySeries(), nil).Once()

	w := suite.doRequest("/api/v1/exchange-rates/history?base=USD&startDate=2025-06-01&endDate=2025-06-03&pageNo=1&pageSize=2")

	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.HistoricalRatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.PageNo)
	suite.Equal(2, resp.PageSize)
	suite.Len(resp.Rates, 2)
	suite.Contains(resp.Rates, "2025-06-01")
	suite.Contains(resp.Rates, "2025-06-02")
}

func (suite *ExchangeRateHandlerTestSuite) TestGetHistoricalRates_PagePastEndIsEmpty() {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("GetHistoricalRates", mock.Anything, "USD", start, end).
		Return(historySeries(), nil).Once()

	w := suite.doRequest("/api/v1/exchange-rates/history?base=USD&startDate=2025-06-01&endDate=2025-06-03&pageNo=9&pageSize=2")

	suite.Require().Equal(http.StatusOK, w.Code)

	var resp dto.HistoricalRatesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Empty(resp.Rates)
}

func (suite *ExchangeRateHandlerTestSuite) TestGetHistoricalRates_InvalidDateRange() {
	start := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.mockService.On("GetHistoricalRates", mock.Anything, "USD", start, end).
		Return(nil, apperrors.ErrInvalidDateRange).Once()

	w := suite.doRequest("/api/v1/exchange-rates/history?base=USD&startDate=2025-06-03&endDate=2025-06-01")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ExchangeRateHandlerTestSuite) TestGetHistoricalRates_MalformedDate() {
	w := suite.doRequest("/api/v1/exchange-rates/history?base=USD&startDate=June-1&endDate=2025-06-03")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetHistoricalRates", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestExchangeRateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateHandlerTestSuite))
}
