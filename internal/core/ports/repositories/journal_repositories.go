package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/openbooks/ledger_engine/internal/core/domain"
)

// JournalReader defines read operations for journal headers and lines.
type JournalReader interface {
	// FindJournalByID retrieves a journal header by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindLinesByJournalID retrieves the ordered lines of a journal.
	FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error)

	// ListJournalsByOrganization retrieves a token-paginated list of journals.
	ListJournalsByOrganization(ctx context.Context, organizationID string, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error)
}

// JournalWriter defines write operations for draft journals.
type JournalWriter interface {
	// SaveJournal inserts a new journal header together with its lines.
	SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error

	// ReplaceJournalLines swaps a draft journal's lines for a new set and
	// bumps the header version. Fails with ErrConcurrentModification if the
	// stored version no longer matches expectedVersion.
	ReplaceJournalLines(ctx context.Context, journalID string, lines []domain.JournalLine, expectedVersion int64, updatedBy string, updatedAt time.Time) error

	// UpdateJournalStatus moves a journal between non-posted states (submit,
	// approve, reject) with an optimistic version check.
	UpdateJournalStatus(ctx context.Context, journalID string, status domain.JournalStatus, expectedVersion int64, updatedBy string, updatedAt time.Time) error

	// SetJournalApproval stamps the approval metadata on the header.
	SetJournalApproval(ctx context.Context, journalID string, approvedBy string, approvedAt time.Time) error
}

// JournalTxOperations are the journal mutations that run inside the posting
// transaction.
type JournalTxOperations interface {
	// FindJournalByIDForUpdate locks the journal header row and returns it.
	FindJournalByIDForUpdate(ctx context.Context, tx pgx.Tx, journalID string) (*domain.Journal, error)

	// MarkJournalPostedInTx stamps number, period, status=POSTED and posting
	// metadata on the locked header, bumping the version. Fails with
	// ErrConcurrentModification if expectedVersion no longer matches.
	MarkJournalPostedInTx(ctx context.Context, tx pgx.Tx, journalID, journalNumber, periodID string, postedBy string, postedAt time.Time, expectedVersion int64) error

	// MarkJournalReversedInTx stamps status=REVERSED on the original journal
	// and links it forward to the reversing journal.
	MarkJournalReversedInTx(ctx context.Context, tx pgx.Tx, journalID string, reversingJournalID string, updatedBy string, updatedAt time.Time) error

	// SaveJournalInTx inserts a header and lines inside an open transaction
	// (used for the reversing journal, which posts in the same unit of work).
	SaveJournalInTx(ctx context.Context, tx pgx.Tx, journal domain.Journal, lines []domain.JournalLine) error
}

// JournalRepositoryFacade combines all journal repository capabilities.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	JournalTxOperations
}

// JournalRepositoryWithTx extends the facade with transaction control, which
// the posting orchestrator uses to compose its atomic unit of work.
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
