package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// organizationService manages tenants.
type organizationService struct {
	organizationRepo portsrepo.OrganizationRepository
	currencyRepo     portsrepo.CurrencyRepository
}

// NewOrganizationService creates a new organization service.
func NewOrganizationService(organizationRepo portsrepo.OrganizationRepository, currencyRepo portsrepo.CurrencyRepository) portssvc.OrganizationSvcFacade {
	return &organizationService{organizationRepo: organizationRepo, currencyRepo: currencyRepo}
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// CreateOrganization registers a new tenant. The functional currency must
// exist as master data and is immutable afterwards.
func (s *organizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, creatorID string) (*domain.Organization, error) {
	functional := strings.ToUpper(req.FunctionalCurrency)
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, functional); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	organization := domain.Organization{
		OrganizationID:     uuid.NewString(),
		Name:               req.Name,
		FunctionalCurrency: functional,
		AuditFields:        domain.AuditFields{CreatedAt: now, CreatedBy: creatorID, LastUpdatedAt: now, LastUpdatedBy: creatorID},
	}

	if err := s.organizationRepo.SaveOrganization(ctx, organization); err != nil {
		return nil, err
	}
	return &organization, nil
}

// GetOrganizationByID retrieves an organization by ID.
func (s *organizationService) GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	return s.organizationRepo.FindOrganizationByID(ctx, organizationID)
}
