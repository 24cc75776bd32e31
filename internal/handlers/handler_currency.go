package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
	"github.com/openbooks/ledger_engine/internal/middleware"
)

type currencyHandler struct {
	currencySvc portssvc.CurrencySvcFacade
}

func newCurrencyHandler(currencySvc portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencySvc: currencySvc}
}

// createCurrency godoc
// @Summary Register a currency
// @Tags currencies
// @Accept json
// @Produce json
// @Param currency body dto.CreateCurrencyRequest true "Currency"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 409 {object} map[string]string "Currency already exists"
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	currency, err := h.currencySvc.CreateCurrency(c.Request.Context(), req, actorID)
	if err != nil {
		logger.Error("Failed to create currency", slog.String("code", req.CurrencyCode), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// getCurrency godoc
// @Summary Get a currency by code
// @Tags currencies
// @Produce json
// @Param code path string true "ISO 4217 code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(c.Param("code"))

	currency, err := h.currencySvc.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		logger.Warn("Failed to get currency", slog.String("code", code), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List all currencies
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencySvc.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies", slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponses(currencies))
}

// registerCurrencyRoutes registers currency master data routes. Currencies are
// shared master data, not organization scoped.
func registerCurrencyRoutes(group *gin.RouterGroup, currencySvc portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencySvc)

	currencies := group.Group("/currencies")
	currencies.POST("", h.createCurrency)
	currencies.GET("", h.listCurrencies)
	currencies.GET("/:code", h.getCurrency)
}
