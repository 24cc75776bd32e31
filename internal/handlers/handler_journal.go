package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
	"github.com/openbooks/ledger_engine/internal/middleware"
)

// journalHandler handles HTTP requests over the full voucher lifecycle.
type journalHandler struct {
	journalSvc portssvc.JournalSvcFacade
	postingSvc portssvc.PostingSvcFacade
}

func newJournalHandler(journalSvc portssvc.JournalSvcFacade, postingSvc portssvc.PostingSvcFacade) *journalHandler {
	return &journalHandler{journalSvc: journalSvc, postingSvc: postingSvc}
}

// createJournal godoc
// @Summary Create a draft journal
// @Tags journals
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param journal body dto.CreateJournalRequest true "Journal"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /organizations/{orgID}/journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.journalSvc.CreateDraft(c.Request.Context(), orgID, req, actorID)
	if err != nil {
		logger.Error("Failed to create draft journal", slog.String("org_id", orgID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Info("Draft journal created", slog.String("journal_id", journal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// updateJournalLines godoc
// @Summary Replace a draft's lines
// @Description Fails with 409 on a version mismatch or a locked journal
// @Tags journals
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param journalID path string true "Journal ID"
// @Param lines body dto.UpdateJournalLinesRequest true "New lines and expected version"
// @Success 200 {object} dto.JournalResponse
// @Failure 409 {object} map[string]string "Conflict"
// @Router /organizations/{orgID}/journals/{journalID} [put]
func (h *journalHandler) updateJournalLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	journalID := c.Param("journalID")

	var req dto.UpdateJournalLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for updateJournalLines", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.journalSvc.UpdateDraftLines(c.Request.Context(), orgID, journalID, req, actorID)
	if err != nil {
		logger.Warn("Failed to update journal lines", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// getJournal godoc
// @Summary Get a journal with its lines
// @Tags journals
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Router /organizations/{orgID}/journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	journalID := c.Param("journalID")

	journal, err := h.journalSvc.GetJournalByID(c.Request.Context(), orgID, journalID)
	if err != nil {
		logger.Warn("Failed to get journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journals
// @Tags journals
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Param includeReversals query bool false "Include reversed and reversing journals"
// @Success 200 {object} dto.ListJournalsResponse
// @Router /organizations/{orgID}/journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.journalSvc.ListJournals(c.Request.Context(), orgID, params)
	if err != nil {
		logger.Error("Failed to list journals", slog.String("org_id", orgID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// validateJournal godoc
// @Summary Validate a journal without posting
// @Description Runs the full validation pipeline; never writes anything
// @Tags journals
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.ValidationResultResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Router /organizations/{orgID}/journals/{journalID}/validate [post]
func (h *journalHandler) validateJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	journalID := c.Param("journalID")

	result, err := h.postingSvc.Validate(c.Request.Context(), orgID, journalID)
	if err != nil {
		logger.Warn("Failed to validate journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToValidationResultResponse(result))
}

// submitJournal godoc
// @Summary Submit a draft for approval
// @Tags journals
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 409 {object} map[string]string "Invalid transition"
// @Router /organizations/{orgID}/journals/{journalID}/submit [post]
func (h *journalHandler) submitJournal(c *gin.Context) {
	h.workflowStep(c, "submit", func(orgID, journalID, actorID, _ string) (interface{}, error) {
		journal, err := h.journalSvc.Submit(c.Request.Context(), orgID, journalID, actorID)
		if err != nil {
			return nil, err
		}
		return dto.ToJournalResponse(journal), nil
	})
}

// approveJournal godoc
// @Summary Approve a pending journal
// @Tags journals
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param journalID path string true "Journal ID"
// @Param decision body dto.DecisionRequest false "Notes"
// @Success 200 {object} dto.JournalResponse
// @Failure 409 {object} map[string]string "Invalid transition"
// @Router /organizations/{orgID}/journals/{journalID}/approve [post]
func (h *journalHandler) approveJournal(c *gin.Context) {
	h.workflowStep(c, "approve", func(orgID, journalID, actorID, notes string) (interface{}, error) {
		journal, err := h.journalSvc.Approve(c.Request.Context(), orgID, journalID, actorID, notes)
		if err != nil {
			return nil, err
		}
		return dto.ToJournalResponse(journal), nil
	})
}

// rejectJournal godoc
// @Summary Reject a pending journal
// @Tags journals
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param journalID path string true "Journal ID"
// @Param decision body dto.DecisionRequest false "Notes"
// @Success 200 {object} dto.JournalResponse
// @Failure 409 {object} map[string]string "Invalid transition"
// @Router /organizations/{orgID}/journals/{journalID}/reject [post]
func (h *journalHandler) rejectJournal(c *gin.Context) {
	h.workflowStep(c, "reject", func(orgID, journalID, actorID, notes string) (interface{}, error) {
		journal, err := h.journalSvc.Reject(c.Request.Context(), orgID, journalID, actorID, notes)
		if err != nil {
			return nil, err
		}
		return dto.ToJournalResponse(journal), nil
	})
}

// workflowStep factors the shared plumbing of submit/approve/reject: actor
// extraction, optional decision notes, error mapping.
func (h *journalHandler) workflowStep(c *gin.Context, step string, fn func(orgID, journalID, actorID, notes string) (interface{}, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	journalID := c.Param("journalID")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var decision dto.DecisionRequest
	_ = c.ShouldBindJSON(&decision) // Notes are optional; an empty body is fine

	resp, err := fn(orgID, journalID, actorID, decision.Notes)
	if err != nil {
		logger.Warn("Workflow step failed",
			slog.String("step", step),
			slog.String("journal_id", journalID),
			slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// postJournal godoc
// @Summary Post a journal to the general ledger
// @Description Validation failures return 422 with the full failure list
// @Tags journals
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 422 {object} dto.ValidationResultResponse "Validation failed"
// @Failure 409 {object} map[string]string "Already posted or modified concurrently"
// @Router /organizations/{orgID}/journals/{journalID}/post [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	journalID := c.Param("journalID")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, result, err := h.postingSvc.Post(c.Request.Context(), orgID, journalID, actorID)
	if err != nil {
		logger.Warn("Failed to post journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	if !result.OK() {
		c.JSON(http.StatusUnprocessableEntity, dto.ToValidationResultResponse(result))
		return
	}

	logger.Info("Journal posted", slog.String("journal_id", journalID), slog.String("journal_number", journal.JournalNumber))
	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// reverseJournal godoc
// @Summary Reverse a posted journal
// @Description Creates and posts a journal that exactly negates the original
// @Tags journals
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param journalID path string true "Journal ID"
// @Success 201 {object} dto.JournalResponse
// @Failure 409 {object} map[string]string "Journal is not posted"
// @Router /organizations/{orgID}/journals/{journalID}/reverse [post]
func (h *journalHandler) reverseJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	journalID := c.Param("journalID")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reversing, err := h.postingSvc.Reverse(c.Request.Context(), orgID, journalID, actorID)
	if err != nil {
		logger.Warn("Failed to reverse journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	logger.Info("Journal reversed",
		slog.String("journal_id", journalID),
		slog.String("reversing_journal_id", reversing.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(reversing))
}

// registerJournalRoutes registers journal lifecycle routes.
func registerJournalRoutes(group *gin.RouterGroup, journalSvc portssvc.JournalSvcFacade, postingSvc portssvc.PostingSvcFacade) {
	h := newJournalHandler(journalSvc, postingSvc)

	journals := group.Group("/journals")
	journals.POST("", h.createJournal)
	journals.GET("", h.listJournals)
	journals.GET("/:journalID", h.getJournal)
	journals.PUT("/:journalID", h.updateJournalLines)
	journals.POST("/:journalID/validate", h.validateJournal)
	journals.POST("/:journalID/submit", h.submitJournal)
	journals.POST("/:journalID/approve", h.approveJournal)
	journals.POST("/:journalID/reject", h.rejectJournal)
	journals.POST("/:journalID/post", h.postJournal)
	journals.POST("/:journalID/reverse", h.reverseJournal)
}
