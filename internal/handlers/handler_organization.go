package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
	"github.com/openbooks/ledger_engine/internal/middleware"
)

// organizationHandler handles HTTP requests related to organizations.
type organizationHandler struct {
	organizationSvc portssvc.OrganizationSvcFacade
}

func newOrganizationHandler(organizationSvc portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{organizationSvc: organizationSvc}
}

// createOrganization godoc
// @Summary Create an organization
// @Description Registers a new tenant with an immutable functional currency
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.CreateOrganizationRequest true "Organization"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createOrganization", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetActorIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	organization, err := h.organizationSvc.CreateOrganization(c.Request.Context(), req, actorID)
	if err != nil {
		logger.Error("Failed to create organization", slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(organization))
}

// getOrganization godoc
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param orgID path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 404 {object} map[string]string "Organization not found"
// @Router /organizations/{orgID} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orgID := c.Param("orgID")

	organization, err := h.organizationSvc.GetOrganizationByID(c.Request.Context(), orgID)
	if err != nil {
		logger.Warn("Failed to get organization", slog.String("org_id", orgID), slog.String("error", err.Error()))
		status, msg := statusForError(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(organization))
}

// registerOrganizationRoutes registers organization specific routes.
func registerOrganizationRoutes(group *gin.RouterGroup, organizationSvc portssvc.OrganizationSvcFacade) {
	h := newOrganizationHandler(organizationSvc)

	group.POST("/organizations", h.createOrganization)
	group.GET("/organizations/:orgID", h.getOrganization)
}
