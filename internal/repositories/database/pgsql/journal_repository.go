package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	"github.com/openbooks/ledger_engine/internal/models"
	"github.com/openbooks/ledger_engine/internal/utils/mapping"
	"github.com/openbooks/ledger_engine/internal/utils/pagination"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal headers and lines.
func newPgxJournalRepository(pool *pgxpool.Pool, lockTimeoutMS int) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool, LockTimeoutMS: lockTimeoutMS}}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

const journalColumns = `journal_id, organization_id, journal_type_id, journal_number, journal_date, period_id,
	description, currency_code, exchange_rate, status, approved_by, approved_at, posted_by, posted_at,
	original_journal_id, reversing_journal_id, version, created_at, created_by, last_updated_at, last_updated_by`

func scanJournal(row pgx.Row) (models.Journal, error) {
	var m models.Journal
	var number, periodID, approvedBy, postedBy sql.NullString
	var originalID, reversingID sql.NullString

	err := row.Scan(
		&m.JournalID,
		&m.OrganizationID,
		&m.JournalTypeID,
		&number,
		&m.JournalDate,
		&periodID,
		&m.Description,
		&m.CurrencyCode,
		&m.ExchangeRate,
		&m.Status,
		&approvedBy,
		&m.ApprovedAt,
		&postedBy,
		&m.PostedAt,
		&originalID,
		&reversingID,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Journal{}, err
	}

	m.JournalNumber = number.String
	m.PeriodID = periodID.String
	m.ApprovedBy = approvedBy.String
	m.PostedBy = postedBy.String
	if originalID.Valid {
		m.OriginalJournalID = &originalID.String
	}
	if reversingID.Valid {
		m.ReversingJournalID = &reversingID.String
	}
	return m, nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// SaveJournal inserts a new journal header together with its lines in one
// transaction.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.SaveJournalInTx(ctx, tx, journal, lines); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveJournalInTx inserts a header and lines inside an open transaction.
func (r *PgxJournalRepository) SaveJournalInTx(ctx context.Context, tx pgx.Tx, journal domain.Journal, lines []domain.JournalLine) error {
	modelJournal := mapping.ToModelJournal(journal)

	headerQuery := `
		INSERT INTO journals (` + journalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := tx.Exec(ctx, headerQuery,
		modelJournal.JournalID,
		modelJournal.OrganizationID,
		modelJournal.JournalTypeID,
		nullIfEmpty(modelJournal.JournalNumber),
		modelJournal.JournalDate,
		nullIfEmpty(modelJournal.PeriodID),
		modelJournal.Description,
		modelJournal.CurrencyCode,
		modelJournal.ExchangeRate,
		modelJournal.Status,
		nullIfEmpty(modelJournal.ApprovedBy),
		modelJournal.ApprovedAt,
		nullIfEmpty(modelJournal.PostedBy),
		modelJournal.PostedAt,
		modelJournal.OriginalJournalID,
		modelJournal.ReversingJournalID,
		modelJournal.Version,
		modelJournal.CreatedAt,
		modelJournal.CreatedBy,
		modelJournal.LastUpdatedAt,
		modelJournal.LastUpdatedBy,
	)
	if err != nil {
		return classifyPgError(err, "failed to insert journal "+modelJournal.JournalID)
	}

	return r.insertLines(ctx, tx, journal.JournalID, lines)
}

func (r *PgxJournalRepository) insertLines(ctx context.Context, tx pgx.Tx, journalID string, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (line_id, journal_id, account_id, debit, credit, line_currency, line_rate,
			cost_center, department, project, notes, product_id, warehouse_id, quantity,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	for _, line := range lines {
		m := mapping.ToModelJournalLine(line)
		batch.Queue(lineQuery,
			m.LineID,
			journalID,
			m.AccountID,
			m.Debit,
			m.Credit,
			m.LineCurrency,
			m.LineRate,
			nullIfEmpty(m.CostCenter),
			nullIfEmpty(m.Department),
			nullIfEmpty(m.Project),
			m.Notes,
			nullIfEmpty(m.ProductID),
			nullIfEmpty(m.WarehouseID),
			m.Quantity,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return classifyPgError(err, "failed to insert journal lines for "+journalID)
	}
	return nil
}

// FindJournalByID retrieves a journal header by its ID.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1;`

	m, err := scanJournal(r.Pool.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}

	domainJournal := mapping.ToDomainJournal(m)
	return &domainJournal, nil
}

// FindJournalByIDForUpdate locks the journal header row and returns it.
func (r *PgxJournalRepository) FindJournalByIDForUpdate(ctx context.Context, tx pgx.Tx, journalID string) (*domain.Journal, error) {
	query := `SELECT ` + journalColumns + ` FROM journals WHERE journal_id = $1 FOR UPDATE;`

	m, err := scanJournal(tx.QueryRow(ctx, query, journalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, classifyPgError(err, "failed to lock journal "+journalID)
	}

	domainJournal := mapping.ToDomainJournal(m)
	return &domainJournal, nil
}

const journalLineColumns = `line_id, journal_id, account_id, debit, credit, line_currency, line_rate,
	cost_center, department, project, notes, product_id, warehouse_id, quantity,
	created_at, created_by, last_updated_at, last_updated_by`

// FindLinesByJournalID retrieves the ordered lines of a journal.
func (r *PgxJournalRepository) FindLinesByJournalID(ctx context.Context, journalID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + journalLineColumns + ` FROM journal_lines WHERE journal_id = $1 ORDER BY line_id;`

	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for journal "+journalID, err)
	}
	defer rows.Close()

	lines := []models.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		var costCenter, department, project, productID, warehouseID sql.NullString
		err := rows.Scan(
			&m.LineID,
			&m.JournalID,
			&m.AccountID,
			&m.Debit,
			&m.Credit,
			&m.LineCurrency,
			&m.LineRate,
			&costCenter,
			&department,
			&project,
			&m.Notes,
			&productID,
			&warehouseID,
			&m.Quantity,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for journal "+journalID, err)
		}
		m.CostCenter = costCenter.String
		m.Department = department.String
		m.Project = project.String
		m.ProductID = productID.String
		m.WarehouseID = warehouseID.String
		lines = append(lines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for journal "+journalID, err)
	}

	return mapping.ToDomainJournalLineSlice(lines), nil
}

// ListJournalsByOrganization retrieves a token-paginated list of journals,
// newest first, with (journal_date, created_at) as the stable cursor.
func (r *PgxJournalRepository) ListJournalsByOrganization(ctx context.Context, organizationID string, limit int, nextToken *string, includeReversals bool) ([]domain.Journal, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + journalColumns + ` FROM journals`
	filterClause := `WHERE organization_id = $1`
	if !includeReversals {
		filterClause += ` AND status != 'REVERSED' AND original_journal_id IS NULL`
	}
	orderByClause := `ORDER BY journal_date DESC, created_at DESC`

	args := []interface{}{organizationID}
	query := baseQuery + " " + filterClause
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (journal_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}
	args = append(args, fetchLimit)
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journals for organization "+organizationID, err)
	}
	defer rows.Close()

	modelJournals := make([]models.Journal, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanJournal(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal row", scanErr)
		}
		modelJournals = append(modelJournals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal rows", err)
	}

	var nextTokenVal *string
	results := modelJournals
	if len(modelJournals) > limit {
		last := modelJournals[limit-1]
		token := pagination.EncodeToken(last.JournalDate, last.CreatedAt)
		nextTokenVal = &token
		results = modelJournals[:limit]
	}

	domainJournals := make([]domain.Journal, len(results))
	for i, m := range results {
		domainJournals[i] = mapping.ToDomainJournal(m)
	}
	return domainJournals, nextTokenVal, nil
}

// ReplaceJournalLines swaps a draft's lines for a new set and bumps the
// header version. The version predicate makes lost updates impossible: a
// stale client fails instead of silently overwriting newer lines.
func (r *PgxJournalRepository) ReplaceJournalLines(ctx context.Context, journalID string, lines []domain.JournalLine, expectedVersion int64, updatedBy string, updatedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	bumpQuery := `
		UPDATE journals
		SET version = version + 1, last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $1 AND version = $2 AND status = 'DRAFT';
	`
	cmdTag, err := tx.Exec(ctx, bumpQuery, journalID, expectedVersion, updatedAt, updatedBy)
	if err != nil {
		return classifyPgError(err, "failed to update journal header "+journalID)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either gone, not a draft anymore, or edited by someone else.
		return apperrors.ErrConcurrentModification
	}

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE journal_id = $1;`, journalID); err != nil {
		return classifyPgError(err, "failed to delete lines for journal "+journalID)
	}
	if err := r.insertLines(ctx, tx, journalID, lines); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateJournalStatus moves a journal between non-posted states with an
// optimistic version check.
func (r *PgxJournalRepository) UpdateJournalStatus(ctx context.Context, journalID string, status domain.JournalStatus, expectedVersion int64, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journals
		SET status = $3, version = version + 1, last_updated_at = $4, last_updated_by = $5
		WHERE journal_id = $1 AND version = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, journalID, expectedVersion, string(status), updatedAt, updatedBy)
	if err != nil {
		return classifyPgError(err, "failed to update status for journal "+journalID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConcurrentModification
	}
	return nil
}

// SetJournalApproval stamps the approval metadata on the header.
func (r *PgxJournalRepository) SetJournalApproval(ctx context.Context, journalID string, approvedBy string, approvedAt time.Time) error {
	query := `
		UPDATE journals
		SET approved_by = $2, approved_at = $3, last_updated_at = $3, last_updated_by = $2
		WHERE journal_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, journalID, approvedBy, approvedAt)
	if err != nil {
		return classifyPgError(err, "failed to stamp approval on journal "+journalID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journal " + journalID + " not found for approval stamp")
	}
	return nil
}

// MarkJournalPostedInTx stamps number, period and posting metadata on the
// locked header. The version predicate is the last defense against a draft
// edited between lock acquisition and this write.
func (r *PgxJournalRepository) MarkJournalPostedInTx(ctx context.Context, tx pgx.Tx, journalID, journalNumber, periodID string, postedBy string, postedAt time.Time, expectedVersion int64) error {
	query := `
		UPDATE journals
		SET journal_number = $3, period_id = $4, status = 'POSTED',
		    posted_by = $5, posted_at = $6, version = version + 1,
		    last_updated_at = $6, last_updated_by = $5
		WHERE journal_id = $1 AND version = $2;
	`
	cmdTag, err := tx.Exec(ctx, query, journalID, expectedVersion, journalNumber, periodID, postedBy, postedAt)
	if err != nil {
		return classifyPgError(err, "failed to mark journal "+journalID+" posted")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConcurrentModification
	}
	return nil
}

// MarkJournalReversedInTx stamps status=REVERSED on the original journal and
// links it forward to the reversing journal.
func (r *PgxJournalRepository) MarkJournalReversedInTx(ctx context.Context, tx pgx.Tx, journalID string, reversingJournalID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journals
		SET status = 'REVERSED', reversing_journal_id = $2, version = version + 1,
		    last_updated_at = $3, last_updated_by = $4
		WHERE journal_id = $1 AND status = 'POSTED';
	`
	cmdTag, err := tx.Exec(ctx, query, journalID, reversingJournalID, updatedAt, updatedBy)
	if err != nil {
		return classifyPgError(err, "failed to mark journal "+journalID+" reversed")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}
