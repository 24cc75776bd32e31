package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
	"github.com/openbooks/ledger_engine/internal/middleware"
)

type exchangeRateHandler struct {
	rateSvc portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(rateSvc portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{rateSvc: rateSvc}
}

// createExchangeRate godoc
// @Summary Register an exchange rate
// @Description The rate applies from its effective date until a later rate supersedes it
// @Tags exchange-rates
// @Accept json
// @Produce json
// @Param rate body dto.CreateExchangeRateRequest true "Exchange rate"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid rate"
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateSvc.CreateExchangeRate(c.Request.Context(), req, actorID)
	if err != nil {
		logger.Error("Failed to create exchange rate",
			slog.String("from", req.FromCurrencyCode),
			slog.String("to", req.ToCurrencyCode),
			slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate))
}

// resolveExchangeRate godoc
// @Summary Resolve the rate for a currency pair
// @Description Returns the latest rate effective on or before asOf (default today)
// @Tags exchange-rates
// @Produce json
// @Param from path string true "From currency code"
// @Param to path string true "To currency code"
// @Param asOf query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "No rate found"
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) resolveExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := strings.ToUpper(c.Param("from"))
	to := strings.ToUpper(c.Param("to"))

	asOf := time.Now().UTC()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	rate, err := h.rateSvc.ResolveRate(c.Request.Context(), from, to, asOf)
	if err != nil {
		logger.Warn("Failed to resolve exchange rate",
			slog.String("from", from),
			slog.String("to", to),
			slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fromCurrencyCode": from,
		"toCurrencyCode":   to,
		"rate":             rate,
		"asOf":             asOf.Format("2006-01-02"),
	})
}

// registerExchangeRateRoutes registers exchange rate routes. Rates are shared
// master data, not organization scoped.
func registerExchangeRateRoutes(group *gin.RouterGroup, rateSvc portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(rateSvc)

	rates := group.Group("/exchange-rates")
	rates.POST("", h.createExchangeRate)
	rates.GET("/:from/:to", h.resolveExchangeRate)
}
