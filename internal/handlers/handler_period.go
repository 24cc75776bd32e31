package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
	"github.com/openbooks/ledger_engine/internal/middleware"
)

// periodHandler handles HTTP requests related to the fiscal calendar.
type periodHandler struct {
	periodSvc portssvc.PeriodSvcFacade
}

func newPeriodHandler(periodSvc portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodSvc: periodSvc}
}

// createFiscalYear godoc
// @Summary Create a fiscal year
// @Description Creates a fiscal year and its generated monthly periods
// @Tags periods
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param fiscalYear body dto.CreateFiscalYearRequest true "Fiscal year"
// @Success 201 {object} dto.FiscalYearResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /organizations/{orgID}/fiscal-years [post]
func (h *periodHandler) createFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.CreateFiscalYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createFiscalYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	year, periods, err := h.periodSvc.CreateFiscalYear(c.Request.Context(), orgID, req, actorID)
	if err != nil {
		logger.Error("Failed to create fiscal year", slog.String("org_id", orgID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, dto.ToFiscalYearResponse(year, periods))
}

// resolvePeriod godoc
// @Summary Resolve the period for a date
// @Tags periods
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.PeriodResponse
// @Failure 404 {object} map[string]string "No period contains the date"
// @Router /organizations/{orgID}/periods [get]
func (h *periodHandler) resolvePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted YYYY-MM-DD"})
		return
	}

	period, err := h.periodSvc.ResolvePeriod(c.Request.Context(), orgID, date)
	if err != nil {
		logger.Warn("Failed to resolve period", slog.String("date", dateStr), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// listPeriods godoc
// @Summary List periods of a fiscal year
// @Tags periods
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param fiscalYearID path string true "Fiscal year ID"
// @Success 200 {array} dto.PeriodResponse
// @Router /organizations/{orgID}/fiscal-years/{fiscalYearID}/periods [get]
func (h *periodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fiscalYearID := c.Param("fiscalYearID")

	periods, err := h.periodSvc.ListPeriods(c.Request.Context(), fiscalYearID)
	if err != nil {
		logger.Error("Failed to list periods", slog.String("fiscal_year_id", fiscalYearID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	resp := make([]dto.PeriodResponse, len(periods))
	for i := range periods {
		resp[i] = dto.ToPeriodResponse(&periods[i])
	}
	c.JSON(http.StatusOK, resp)
}

// closePeriod godoc
// @Summary Close a period
// @Description Refused while non-terminal journals still reference the period
// @Tags periods
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param periodID path string true "Period ID"
// @Success 200 {object} dto.PeriodResponse
// @Failure 409 {object} map[string]string "Open journals remain"
// @Router /organizations/{orgID}/periods/{periodID}/close [post]
func (h *periodHandler) closePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	periodID := c.Param("periodID")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	period, err := h.periodSvc.ClosePeriod(c.Request.Context(), orgID, periodID, actorID)
	if err != nil {
		logger.Warn("Failed to close period", slog.String("period_id", periodID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToPeriodResponse(period))
}

// registerPeriodRoutes registers fiscal calendar routes.
func registerPeriodRoutes(group *gin.RouterGroup, periodSvc portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodSvc)

	group.POST("/fiscal-years", h.createFiscalYear)
	group.GET("/fiscal-years/:fiscalYearID/periods", h.listPeriods)
	group.GET("/periods", h.resolvePeriod)
	group.POST("/periods/:periodID/close", h.closePeriod)
}
