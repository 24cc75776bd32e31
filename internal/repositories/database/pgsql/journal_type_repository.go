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

type PgxJournalTypeRepository struct {
	BaseRepository
}

// newPgxJournalTypeRepository creates a new repository for journal type
// configuration and voucher sequences.
func newPgxJournalTypeRepository(pool *pgxpool.Pool, lockTimeoutMS int) portsrepo.JournalTypeRepositoryFacade {
	return &PgxJournalTypeRepository{BaseRepository: BaseRepository{Pool: pool, LockTimeoutMS: lockTimeoutMS}}
}

var _ portsrepo.JournalTypeRepositoryFacade = (*PgxJournalTypeRepository)(nil)

const journalTypeColumns = `journal_type_id, organization_id, code, name, number_prefix,
	next_sequence, number_width, requires_approval, created_at, created_by, last_updated_at, last_updated_by`

func scanJournalType(row pgx.Row) (models.JournalType, error) {
	var m models.JournalType
	err := row.Scan(
		&m.JournalTypeID,
		&m.OrganizationID,
		&m.Code,
		&m.Name,
		&m.NumberPrefix,
		&m.NextSequence,
		&m.NumberWidth,
		&m.RequiresApproval,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveJournalType inserts a new journal type.
func (r *PgxJournalTypeRepository) SaveJournalType(ctx context.Context, journalType domain.JournalType) error {
	m := mapping.ToModelJournalType(journalType)
	query := `
		INSERT INTO journal_types (` + journalTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.JournalTypeID,
		m.OrganizationID,
		m.Code,
		m.Name,
		m.NumberPrefix,
		m.NextSequence,
		m.NumberWidth,
		m.RequiresApproval,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return classifyPgError(err, "failed to insert journal type "+m.JournalTypeID)
	}
	return nil
}

// FindJournalTypeByID retrieves a journal type by ID.
func (r *PgxJournalTypeRepository) FindJournalTypeByID(ctx context.Context, journalTypeID string) (*domain.JournalType, error) {
	query := `SELECT ` + journalTypeColumns + ` FROM journal_types WHERE journal_type_id = $1;`

	m, err := scanJournalType(r.Pool.QueryRow(ctx, query, journalTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal type by ID "+journalTypeID, err)
	}

	journalType := mapping.ToDomainJournalType(m)
	return &journalType, nil
}

// ListJournalTypesByOrganization retrieves all journal types of an
// organization, ordered by code.
func (r *PgxJournalTypeRepository) ListJournalTypesByOrganization(ctx context.Context, organizationID string) ([]domain.JournalType, error) {
	query := `SELECT ` + journalTypeColumns + ` FROM journal_types WHERE organization_id = $1 ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journal types for organization "+organizationID, err)
	}
	defer rows.Close()

	journalTypes := []domain.JournalType{}
	for rows.Next() {
		m, scanErr := scanJournalType(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal type row", scanErr)
		}
		journalTypes = append(journalTypes, mapping.ToDomainJournalType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating journal type rows", err)
	}

	return journalTypes, nil
}

// IncrementSequenceInTx atomically reads and advances next_sequence. The
// UPDATE takes the row lock, so concurrent postings of the same type queue
// here and each receives a distinct, gapless number.
func (r *PgxJournalTypeRepository) IncrementSequenceInTx(ctx context.Context, tx pgx.Tx, journalTypeID string) (int64, error) {
	query := `
		UPDATE journal_types
		SET next_sequence = next_sequence + 1
		WHERE journal_type_id = $1
		RETURNING next_sequence - 1;
	`
	var issued int64
	err := tx.QueryRow(ctx, query, journalTypeID).Scan(&issued)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, classifyPgError(err, "failed to increment sequence for journal type "+journalTypeID)
	}
	return issued, nil
}
