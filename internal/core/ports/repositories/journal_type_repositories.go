package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// JournalTypeReader defines read operations for journal type configuration.
type JournalTypeReader interface {
	// FindJournalTypeByID retrieves a journal type by ID.
	FindJournalTypeByID(ctx context.Context, journalTypeID string) (*domain.JournalType, error)

	// ListJournalTypesByOrganization retrieves all journal types of an
	// organization, ordered by code.
	ListJournalTypesByOrganization(ctx context.Context, organizationID string) ([]domain.JournalType, error)
}

// JournalTypeWriter defines write operations for journal type configuration.
type JournalTypeWriter interface {
	// SaveJournalType inserts a new journal type.
	SaveJournalType(ctx context.Context, journalType domain.JournalType) error
}

// SequenceIncrementer issues the next voucher sequence for a journal type.
// The increment is a single row-locking UPDATE inside the posting transaction
// so a number is never issued without a corresponding successful post.
type SequenceIncrementer interface {
	// IncrementSequenceInTx atomically reads and advances next_sequence,
	// returning the issued value.
	IncrementSequenceInTx(ctx context.Context, tx pgx.Tx, journalTypeID string) (int64, error)
}

// JournalTypeRepositoryFacade combines all journal type capabilities.
type JournalTypeRepositoryFacade interface {
	JournalTypeReader
	JournalTypeWriter
	SequenceIncrementer
}
