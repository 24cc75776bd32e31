package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// journalTypeService manages voucher categories and numbering configuration.
type journalTypeService struct {
	journalTypeRepo portsrepo.JournalTypeRepositoryFacade
}

// NewJournalTypeService creates a new journal type service.
func NewJournalTypeService(journalTypeRepo portsrepo.JournalTypeRepositoryFacade) portssvc.JournalTypeSvcFacade {
	return &journalTypeService{journalTypeRepo: journalTypeRepo}
}

var _ portssvc.JournalTypeSvcFacade = (*journalTypeService)(nil)

// CreateJournalType creates a voucher category. Sequences start at 1.
func (s *journalTypeService) CreateJournalType(ctx context.Context, organizationID string, req dto.CreateJournalTypeRequest, creatorID string) (*domain.JournalType, error) {
	now := time.Now().UTC()
	journalType := domain.JournalType{
		JournalTypeID:    uuid.NewString(),
		OrganizationID:   organizationID,
		Code:             strings.ToUpper(req.Code),
		Name:             req.Name,
		NumberPrefix:     req.NumberPrefix,
		NextSequence:     1,
		NumberWidth:      req.NumberWidth,
		RequiresApproval: req.RequiresApproval,
		AuditFields:      domain.AuditFields{CreatedAt: now, CreatedBy: creatorID, LastUpdatedAt: now, LastUpdatedBy: creatorID},
	}

	if err := s.journalTypeRepo.SaveJournalType(ctx, journalType); err != nil {
		return nil, err
	}
	return &journalType, nil
}

// GetJournalTypeByID retrieves a journal type scoped to the organization.
func (s *journalTypeService) GetJournalTypeByID(ctx context.Context, organizationID, journalTypeID string) (*domain.JournalType, error) {
	journalType, err := s.journalTypeRepo.FindJournalTypeByID(ctx, journalTypeID)
	if err != nil {
		return nil, err
	}
	if journalType.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return journalType, nil
}

// ListJournalTypes retrieves all journal types of an organization.
func (s *journalTypeService) ListJournalTypes(ctx context.Context, organizationID string) ([]domain.JournalType, error) {
	return s.journalTypeRepo.ListJournalTypesByOrganization(ctx, organizationID)
}
