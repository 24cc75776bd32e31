package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
)

type PgxReconciliationRepository struct {
	BaseRepository
}

// newPgxReconciliationRepository creates a new repository for inventory
// reconciliation items.
func newPgxReconciliationRepository(pool *pgxpool.Pool, lockTimeoutMS int) portsrepo.ReconciliationRepository {
	return &PgxReconciliationRepository{BaseRepository: BaseRepository{Pool: pool, LockTimeoutMS: lockTimeoutMS}}
}

var _ portsrepo.ReconciliationRepository = (*PgxReconciliationRepository)(nil)

// SaveReconciliationItem inserts one reconciliation item.
func (r *PgxReconciliationRepository) SaveReconciliationItem(ctx context.Context, item domain.ReconciliationItem) error {
	query := `
		INSERT INTO reconciliation_items (item_id, organization_id, journal_id, journal_line_id, reason, resolved, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		item.ItemID,
		item.OrganizationID,
		item.JournalID,
		item.JournalLineID,
		item.Reason,
		item.Resolved,
		item.RecordedAt,
	)
	if err != nil {
		return classifyPgError(err, "failed to insert reconciliation item for journal "+item.JournalID)
	}
	return nil
}

// ListUnresolvedByOrganization retrieves open reconciliation items, oldest
// first.
func (r *PgxReconciliationRepository) ListUnresolvedByOrganization(ctx context.Context, organizationID string) ([]domain.ReconciliationItem, error) {
	query := `
		SELECT item_id, organization_id, journal_id, journal_line_id, reason, resolved, recorded_at
		FROM reconciliation_items
		WHERE organization_id = $1 AND resolved = false
		ORDER BY recorded_at;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query reconciliation items for organization "+organizationID, err)
	}
	defer rows.Close()

	items := []domain.ReconciliationItem{}
	for rows.Next() {
		var item domain.ReconciliationItem
		err := rows.Scan(
			&item.ItemID,
			&item.OrganizationID,
			&item.JournalID,
			&item.JournalLineID,
			&item.Reason,
			&item.Resolved,
			&item.RecordedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reconciliation item row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reconciliation item rows", err)
	}

	return items, nil
}
