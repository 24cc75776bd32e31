package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	"github.com/openbooks/ledger_engine/internal/models"
	"github.com/openbooks/ledger_engine/internal/utils/mapping"
)

type PgxApprovalRepository struct {
	BaseRepository
}

// newPgxApprovalRepository creates a new repository for approval decisions.
func newPgxApprovalRepository(pool *pgxpool.Pool, lockTimeoutMS int) portsrepo.ApprovalRepository {
	return &PgxApprovalRepository{BaseRepository: BaseRepository{Pool: pool, LockTimeoutMS: lockTimeoutMS}}
}

var _ portsrepo.ApprovalRepository = (*PgxApprovalRepository)(nil)

// SaveApproval inserts an approval record.
func (r *PgxApprovalRepository) SaveApproval(ctx context.Context, approval domain.Approval) error {
	m := mapping.ToModelApproval(approval)
	query := `
		INSERT INTO approvals (approval_id, journal_id, decision, notes, decided_by, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.ApprovalID, m.JournalID, m.Decision, m.Notes, m.DecidedBy, m.DecidedAt)
	if err != nil {
		return classifyPgError(err, "failed to insert approval for journal "+m.JournalID)
	}
	return nil
}

// FindLatestApprovalByJournalID retrieves the most recent decision for a
// journal.
func (r *PgxApprovalRepository) FindLatestApprovalByJournalID(ctx context.Context, journalID string) (*domain.Approval, error) {
	query := `
		SELECT approval_id, journal_id, decision, notes, decided_by, decided_at
		FROM approvals
		WHERE journal_id = $1
		ORDER BY decided_at DESC
		LIMIT 1;
	`
	var m models.Approval
	err := r.Pool.QueryRow(ctx, query, journalID).Scan(
		&m.ApprovalID,
		&m.JournalID,
		&m.Decision,
		&m.Notes,
		&m.DecidedBy,
		&m.DecidedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find approval for journal "+journalID, err)
	}

	approval := mapping.ToDomainApproval(m)
	return &approval, nil
}
