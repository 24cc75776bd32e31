package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	"github.com/openbooks/ledger_engine/internal/models"
	"github.com/openbooks/ledger_engine/internal/utils/mapping"
)

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for fiscal calendar data.
func newPgxPeriodRepository(pool *pgxpool.Pool, lockTimeoutMS int) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool, LockTimeoutMS: lockTimeoutMS}}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

const periodColumns = `period_id, organization_id, fiscal_year_id, period_number, name,
	start_date, end_date, status, created_at, created_by, last_updated_at, last_updated_by`

func scanPeriod(row pgx.Row) (models.AccountingPeriod, error) {
	var m models.AccountingPeriod
	err := row.Scan(
		&m.PeriodID,
		&m.OrganizationID,
		&m.FiscalYearID,
		&m.PeriodNumber,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveFiscalYear inserts a fiscal year together with its generated periods in
// one transaction.
func (r *PgxPeriodRepository) SaveFiscalYear(ctx context.Context, year domain.FiscalYear, periods []domain.AccountingPeriod) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	yearModel := mapping.ToModelFiscalYear(year)
	yearQuery := `
		INSERT INTO fiscal_years (fiscal_year_id, organization_id, code, start_date, end_date, status,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, yearQuery,
		yearModel.FiscalYearID,
		yearModel.OrganizationID,
		yearModel.Code,
		yearModel.StartDate,
		yearModel.EndDate,
		yearModel.Status,
		yearModel.CreatedAt,
		yearModel.CreatedBy,
		yearModel.LastUpdatedAt,
		yearModel.LastUpdatedBy,
	)
	if err != nil {
		return classifyPgError(err, "failed to insert fiscal year "+yearModel.FiscalYearID)
	}

	batch := &pgx.Batch{}
	periodQuery := `
		INSERT INTO accounting_periods (` + periodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, period := range periods {
		m := mapping.ToModelPeriod(period)
		batch.Queue(periodQuery,
			m.PeriodID,
			m.OrganizationID,
			m.FiscalYearID,
			m.PeriodNumber,
			m.Name,
			m.StartDate,
			m.EndDate,
			m.Status,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return classifyPgError(err, "failed to insert periods for fiscal year "+yearModel.FiscalYearID)
	}

	return r.Commit(ctx, tx)
}

// FindPeriodByID retrieves an accounting period by ID.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE period_id = $1;`

	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find period by ID "+periodID, err)
	}

	period := mapping.ToDomainPeriod(m)
	return &period, nil
}

// ResolvePeriodForDate finds the period whose range contains the given date.
// Ranges are stored as inclusive dates, so the predicate is a plain BETWEEN.
func (r *PgxPeriodRepository) ResolvePeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.AccountingPeriod, error) {
	query := `
		SELECT ` + periodColumns + `
		FROM accounting_periods
		WHERE organization_id = $1 AND $2::date BETWEEN start_date AND end_date
		ORDER BY start_date
		LIMIT 1;
	`
	m, err := scanPeriod(r.Pool.QueryRow(ctx, query, organizationID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to resolve period for date", err)
	}

	period := mapping.ToDomainPeriod(m)
	return &period, nil
}

// ListPeriodsByFiscalYear retrieves the ordered periods of a fiscal year.
func (r *PgxPeriodRepository) ListPeriodsByFiscalYear(ctx context.Context, fiscalYearID string) ([]domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE fiscal_year_id = $1 ORDER BY period_number;`

	rows, err := r.Pool.Query(ctx, query, fiscalYearID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query periods for fiscal year "+fiscalYearID, err)
	}
	defer rows.Close()

	periods := []domain.AccountingPeriod{}
	for rows.Next() {
		m, scanErr := scanPeriod(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan period row", scanErr)
		}
		periods = append(periods, mapping.ToDomainPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating period rows", err)
	}

	return periods, nil
}

// FindFiscalYearByID retrieves a fiscal year header.
func (r *PgxPeriodRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	query := `
		SELECT fiscal_year_id, organization_id, code, start_date, end_date, status,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM fiscal_years
		WHERE fiscal_year_id = $1;
	`
	var m models.FiscalYear
	err := r.Pool.QueryRow(ctx, query, fiscalYearID).Scan(
		&m.FiscalYearID,
		&m.OrganizationID,
		&m.Code,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find fiscal year by ID "+fiscalYearID, err)
	}

	year := mapping.ToDomainFiscalYear(m)
	return &year, nil
}

// FindPeriodByIDForUpdate locks the period row and returns it. Posting and
// period close both take this lock, so the two serialize against each other.
func (r *PgxPeriodRepository) FindPeriodByIDForUpdate(ctx context.Context, tx pgx.Tx, periodID string) (*domain.AccountingPeriod, error) {
	query := `SELECT ` + periodColumns + ` FROM accounting_periods WHERE period_id = $1 FOR UPDATE;`

	m, err := scanPeriod(tx.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, classifyPgError(err, "failed to lock period "+periodID)
	}

	period := mapping.ToDomainPeriod(m)
	return &period, nil
}

// CountNonTerminalJournalsInPeriod counts journals still in flight whose date
// resolves into the period. Drafts carry no period_id yet, so the count goes
// by journal_date range rather than the stamped period.
func (r *PgxPeriodRepository) CountNonTerminalJournalsInPeriod(ctx context.Context, tx pgx.Tx, periodID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM journals j
		JOIN accounting_periods p ON p.period_id = $1
		WHERE j.organization_id = p.organization_id
		  AND j.journal_date BETWEEN p.start_date AND p.end_date
		  AND j.status IN ('DRAFT', 'PENDING_APPROVAL', 'APPROVED');
	`
	var count int64
	if err := tx.QueryRow(ctx, query, periodID).Scan(&count); err != nil {
		return 0, classifyPgError(err, "failed to count open journals in period "+periodID)
	}
	return count, nil
}

// UpdatePeriodStatusInTx transitions the locked period's status.
func (r *PgxPeriodRepository) UpdatePeriodStatusInTx(ctx context.Context, tx pgx.Tx, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE accounting_periods
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE period_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, periodID, string(status), updatedAt, updatedBy)
	if err != nil {
		return classifyPgError(err, "failed to update status for period "+periodID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("period " + periodID + " not found for status update")
	}
	return nil
}
