package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
	"github.com/openbooks/ledger_engine/internal/middleware"
)

// journalTypeHandler handles HTTP requests related to voucher categories.
type journalTypeHandler struct {
	journalTypeSvc portssvc.JournalTypeSvcFacade
}

func newJournalTypeHandler(journalTypeSvc portssvc.JournalTypeSvcFacade) *journalTypeHandler {
	return &journalTypeHandler{journalTypeSvc: journalTypeSvc}
}

// createJournalType godoc
// @Summary Create a journal type
// @Description Creates a voucher category with its numbering configuration
// @Tags journal-types
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param journalType body dto.CreateJournalTypeRequest true "Journal type"
// @Success 201 {object} dto.JournalTypeResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /organizations/{orgID}/journal-types [post]
func (h *journalTypeHandler) createJournalType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.CreateJournalTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createJournalType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journalType, err := h.journalTypeSvc.CreateJournalType(c.Request.Context(), orgID, req, actorID)
	if err != nil {
		logger.Error("Failed to create journal type", slog.String("org_id", orgID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalTypeResponse(journalType))
}

// getJournalType godoc
// @Summary Get a journal type
// @Tags journal-types
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param journalTypeID path string true "Journal type ID"
// @Success 200 {object} dto.JournalTypeResponse
// @Failure 404 {object} map[string]string "Journal type not found"
// @Router /organizations/{orgID}/journal-types/{journalTypeID} [get]
func (h *journalTypeHandler) getJournalType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	journalTypeID := c.Param("journalTypeID")

	journalType, err := h.journalTypeSvc.GetJournalTypeByID(c.Request.Context(), orgID, journalTypeID)
	if err != nil {
		logger.Warn("Failed to get journal type", slog.String("journal_type_id", journalTypeID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalTypeResponse(journalType))
}

// listJournalTypes godoc
// @Summary List journal types
// @Tags journal-types
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {array} dto.JournalTypeResponse
// @Router /organizations/{orgID}/journal-types [get]
func (h *journalTypeHandler) listJournalTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	journalTypes, err := h.journalTypeSvc.ListJournalTypes(c.Request.Context(), orgID)
	if err != nil {
		logger.Error("Failed to list journal types", slog.String("org_id", orgID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	resp := make([]dto.JournalTypeResponse, len(journalTypes))
	for i := range journalTypes {
		resp[i] = dto.ToJournalTypeResponse(&journalTypes[i])
	}
	c.JSON(http.StatusOK, resp)
}

// registerJournalTypeRoutes registers journal type routes.
func registerJournalTypeRoutes(group *gin.RouterGroup, journalTypeSvc portssvc.JournalTypeSvcFacade) {
	h := newJournalTypeHandler(journalTypeSvc)

	types := group.Group("/journal-types")
	types.POST("", h.createJournalType)
	types.GET("", h.listJournalTypes)
	types.GET("/:journalTypeID", h.getJournalType)
}
