package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lamiamustafa/CurrencyConverterAPI/internal/apperrors"
	portssvc "github.com/lamiamustafa/CurrencyConverterAPI/internal/core/ports/services"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/dto"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/middleware"
	"github.com/lamiamustafa/CurrencyConverterAPI/internal/platform/metrics"
)

// conversionHandler handles HTTP requests for currency conversion.
type conversionHandler struct {
	converterService portssvc.ConverterSvc
	metrics          *metrics.Metrics
}

func newConversionHandler(cs portssvc.ConverterSvc, m *metrics.Metrics) *conversionHandler {
	return &conversionHandler{
		converterService: cs,
		metrics:          m,
	}
}

// registerConversionRoutes registers routes related to currency conversion.
func registerConversionRoutes(rg *gin.RouterGroup, converterService portssvc.ConverterSvc, m *metrics.Metrics) {
	h := newConversionHandler(converterService, m)

	rg.GET("/conversions", h.convert)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount using the latest exchange rates, rounded half-to-even to the nearest whole unit
// @Tags conversions
// @Produce  json
// @Param   from query string true "Source currency code"
// @Param   to query string true "Target currency code"
// @Param   amount query number true "Amount to convert"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input or blocked currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No rate for target currency"
// @Failure 502 {object} map[string]string "Upstream provider error"
// @Security BearerAuth
// @Router /conversions [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConversionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	h.metrics.ConversionRequestsTotal.Inc()

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		logger.Warn("Rejected non-numeric amount", slog.String("amount", req.Amount))
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a decimal number"})
		return
	}
	if amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
		return
	}

	from := strings.ToUpper(req.From)
	to := strings.ToUpper(req.To)

	converted, err := h.converterService.Convert(c.Request.Context(), from, to, amount)
	if err != nil {
		h.respondConversionError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConversionResponse{
		FromCurrency: from,
		FromAmount:   amount,
		ToCurrency:   to,
		ToAmount:     converted,
	})
}

// respondConversionError maps conversion service errors onto HTTP statuses.
func (h *conversionHandler) respondConversionError(c *gin.Context, logger *slog.Logger, err error) {
	var upstreamErr *apperrors.UpstreamError
	switch {
	case errors.Is(err, apperrors.ErrUnsupportedCurrency):
		logger.Warn("Rejected conversion with blocked currency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrRateNotFound):
		logger.Warn("No rate available for conversion", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &upstreamErr):
		logger.Error("Upstream provider error",
			slog.Int("upstream_status", upstreamErr.StatusCode),
			slog.String("upstream_body", upstreamErr.Body),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Exchange rate provider request failed"})
	default:
		logger.Error("Failed to convert currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert currency"})
	}
}
