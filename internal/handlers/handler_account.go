package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
	"github.com/openbooks/ledger_engine/internal/middleware"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountSvc portssvc.AccountSvcFacade
}

func newAccountHandler(accountSvc portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountSvc: accountSvc}
}

// createAccount godoc
// @Summary Create an account
// @Description Creates a new chart-of-accounts node under an optional parent
// @Tags accounts
// @Accept json
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param account body dto.CreateAccountRequest true "Account"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "Duplicate code"
// @Router /organizations/{orgID}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountSvc.CreateAccount(c.Request.Context(), orgID, req, actorID)
	if err != nil {
		logger.Error("Failed to create account", slog.String("org_id", orgID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /organizations/{orgID}/accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	accountID := c.Param("accountID")

	account, err := h.accountSvc.GetAccountByID(c.Request.Context(), orgID, accountID)
	if err != nil {
		logger.Warn("Failed to get account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {array} dto.AccountResponse
// @Router /organizations/{orgID}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	accounts, err := h.accountSvc.ListAccounts(c.Request.Context(), orgID)
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("org_id", orgID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Makes the account unavailable as a posting target; history stays intact
// @Tags accounts
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param accountID path string true "Account ID"
// @Success 204 "Deactivated"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /organizations/{orgID}/accounts/{accountID} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	accountID := c.Param("accountID")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.accountSvc.DeactivateAccount(c.Request.Context(), orgID, accountID, actorID); err != nil {
		logger.Warn("Failed to deactivate account", slog.String("account_id", accountID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.Status(http.StatusNoContent)
}

// recomputeBalance godoc
// @Summary Recompute an account balance from the ledger
// @Description Replays all posted entries and rewrites the running balance
// @Tags accounts
// @Produce json
// @Param orgID path string true "Organization ID"
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.RecomputeBalanceResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Router /organizations/{orgID}/accounts/{accountID}/recompute-balance [post]
func (h *accountHandler) recomputeBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")
	accountID := c.Param("accountID")

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	previous, replayed, err := h.accountSvc.RecomputeBalance(c.Request.Context(), orgID, accountID, actorID)
	if err != nil {
		logger.Error("Failed to recompute balance", slog.String("account_id", accountID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.RecomputeBalanceResponse{
		AccountID:       accountID,
		PreviousBalance: previous,
		ReplayedBalance: replayed,
		Drifted:         !previous.Equal(replayed),
	})
}

// registerAccountRoutes registers account specific routes.
func registerAccountRoutes(group *gin.RouterGroup, accountSvc portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountSvc)

	accounts := group.Group("/accounts")
	accounts.POST("", h.createAccount)
	accounts.GET("", h.listAccounts)
	accounts.GET("/:accountID", h.getAccount)
	accounts.DELETE("/:accountID", h.deactivateAccount)
	accounts.POST("/:accountID/recompute-balance", h.recomputeBalance)
}
