package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
	"github.com/openbooks/ledger_engine/internal/middleware"
)

// ledgerHandler serves the read-only reporting surface over posted entries.
type ledgerHandler struct {
	ledgerSvc portssvc.LedgerSvcFacade
}

func newLedgerHandler(ledgerSvc portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerSvc: ledgerSvc}
}

// listEntriesByAccount godoc
// @Summary List ledger entries for an account
// @Tags ledger
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param accountID path string true "Account ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /organizations/{orgID}/ledger/accounts/{accountID}/entries [get]
func (h *ledgerHandler) listEntriesByAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	accountID := c.Param("accountID")

	var params dto.ListLedgerEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.ledgerSvc.ListEntriesByAccount(c.Request.Context(), orgID, accountID, params)
	if err != nil {
		logger.Warn("Failed to list ledger entries", slog.String("account_id", accountID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getEntriesByJournal godoc
// @Summary List ledger entries produced by a journal
// @Tags ledger
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param journalID path string true "Journal ID"
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "Journal not found"
// @Router /organizations/{orgID}/ledger/journals/{journalID}/entries [get]
func (h *ledgerHandler) getEntriesByJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	journalID := c.Param("journalID")

	entries, err := h.ledgerSvc.GetEntriesByJournal(c.Request.Context(), orgID, journalID)
	if err != nil {
		logger.Warn("Failed to get journal entries", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerEntryResponses(entries))
}

// trialBalance godoc
// @Summary Trial balance for a period
// @Description Aggregates posted debits and credits per account for one period
// @Tags ledger
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param periodID query string true "Accounting period ID"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 404 {object} map[string]string "Period not found"
// @Router /organizations/{orgID}/ledger/trial-balance [get]
func (h *ledgerHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	periodID := c.Query("periodID")
	if periodID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "periodID query parameter is required"})
		return
	}

	resp, err := h.ledgerSvc.TrialBalance(c.Request.Context(), orgID, periodID)
	if err != nil {
		logger.Warn("Failed to build trial balance", slog.String("period_id", periodID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// registerLedgerRoutes registers the read-only ledger reporting routes.
func registerLedgerRoutes(group *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerSvc)

	ledger := group.Group("/ledger")
	ledger.GET("/accounts/:accountID/entries", h.listEntriesByAccount)
	ledger.GET("/journals/:journalID/entries", h.getEntriesByJournal)
	ledger.GET("/trial-balance", h.trialBalance)
}
