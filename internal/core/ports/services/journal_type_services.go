package services

import (
	"context"

	"github.com/openbooks/ledger_engine/internal/core/domain"
	"github.com/openbooks/ledger_engine/internal/dto"
)

// JournalTypeSvcFacade manages voucher categories and their numbering
// configuration. Sequence consumption itself happens only inside the posting
// transaction, never through this facade.
type JournalTypeSvcFacade interface {
	CreateJournalType(ctx context.Context, organizationID string, req dto.CreateJournalTypeRequest, creatorID string) (*domain.JournalType, error)
	GetJournalTypeByID(ctx context.Context, organizationID, journalTypeID string) (*domain.JournalType, error)
	ListJournalTypes(ctx context.Context, organizationID string) ([]domain.JournalType, error)
}
