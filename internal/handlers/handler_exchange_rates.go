package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/apperrors"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/core/domain"
	portssvc "github.com/lamiamustafa/CurrencyConverterAPI/internal/core/ports/services"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/dto"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/middleware"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/platform/metrics"
)

// exchangeRateHandler handles HTTP requests for exchange rate data.
type exchangeRateHandler struct {
	rateService portssvc.RateReaderSvc
	metrics     *metrics.Metrics
}

func newExchangeRateHandler(rs portssvc.RateReaderSvc, m *metrics.Metrics) *exchangeRateHandler {
	return &exchangeRateHandler{
		rateService: rs,
		metrics:     m,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateReaderSvc, m *metrics.Metrics) {
	h := newExchangeRateHandler(rateService, m)

	rates := rg.Group("/exchange-rates")
	{
		rates.GET("/latest", h.getLatestRates)
		rates.GET("/history", h.getHistoricalRates)
	}
}

// getLatestRates godoc
// @Summary Get latest exchange rates
// @Description Returns the most recent exchange rates for a base currency
// @Tags exchange-rates
// @Produce  json
// @Param   base query string true "Base currency code (e.g. USD)"
// @Success 200 {object} dto.LatestRatesResponse
// @Failure 400 {object} map[string]string "Invalid base currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Upstream provider error"
// @Security BearerAuth
// @Router /exchange-rates/latest [get]
func (h *exchangeRateHandler) getLatestRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LatestRatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for GetLatestRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	h.metrics.LatestRateRequestsTotal.Inc()

	base := strings.ToUpper(req.Base)
	snapshot, err := h.rateService.GetLatestRates(c.Request.Context(), base)
	if err != nil {
		respondRateError(c, logger, err, "Failed to fetch latest rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToLatestRatesResponse(snapshot))
}

// getHistoricalRates godoc
// @Summary Get historical exchange rates
// @Description Returns day-by-day exchange rates over a date range, paginated
// @Tags exchange-rates
// @Produce  json
// @Param   base query string true "Base currency code (e.g. USD)"
// @Param   startDate query string true "Range start (YYYY-MM-DD)"
// @Param   endDate query string true "Range end (YYYY-MM-DD)"
// @Param   pageNo query int false "1-indexed page number" default(1)
// @Param   pageSize query int false "Days per page" default(10)
// @Success 200 {object} dto.HistoricalRatesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters or date range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Upstream provider error"
// @Security BearerAuth
// @Router /exchange-rates/history [get]
func (h *exchangeRateHandler) getHistoricalRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.HistoricalRatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for GetHistoricalRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	h.metrics.HistoricalRequestsTotal.Inc()

	// Binding already enforced the date layout
	start, _ := time.Parse(domain.DateFormat, req.StartDate)
	end, _ := time.Parse(domain.DateFormat, req.EndDate)

	base := strings.ToUpper(req.Base)
	series, err := h.rateService.GetHistoricalRates(c.Request.Context(), base, start, end)
	if err != nil {
		respondRateError(c, logger, err, "Failed to fetch historical rates")
		return
	}

	page := series.Page(req.PageNo, req.PageSize)
	c.JSON(http.StatusOK, dto.ToHistoricalRatesResponse(page, req.PageNo, req.PageSize))
}

// respondRateError maps service errors for rate lookups onto HTTP statuses.
func respondRateError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var upstreamErr *apperrors.UpstreamError
	switch {
	case errors.Is(err, apperrors.ErrInvalidDateRange):
		logger.Warn("Rejected invalid date range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must not be after endDate"})
	case errors.As(err, &upstreamErr):
		logger.Error("Upstream provider error",
			slog.Int("upstream_status", upstreamErr.StatusCode),
			slog.String("upstream_body", upstreamErr.Body),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate provider request failed"})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
