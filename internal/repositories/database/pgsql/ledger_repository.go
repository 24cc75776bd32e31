package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	"github.com/openbooks/ledger_engine/internal/models"
	"github.com/openbooks/ledger_engine/internal/utils/mapping"
	"github.com/openbooks/ledger_engine/internal/utils/pagination"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for general ledger entries.
func newPgxLedgerRepository(pool *pgxpool.Pool, lockTimeoutMS int) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool, LockTimeoutMS: lockTimeoutMS}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerEntryColumns = `entry_id, organization_id, account_id, period_id, journal_id, journal_line_id,
	debit, credit, posted_at, posted_by`

// InsertEntriesInTx appends one batch of entries inside the posting
// transaction. gl_entries has no update path; this insert is the only write.
func (r *PgxLedgerRepository) InsertEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.GeneralLedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO gl_entries (` + ledgerEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, entry := range entries {
		m := mapping.ToModelLedgerEntry(entry)
		batch.Queue(query,
			m.EntryID,
			m.OrganizationID,
			m.AccountID,
			m.PeriodID,
			m.JournalID,
			m.JournalLineID,
			m.Debit,
			m.Credit,
			m.PostedAt,
			m.PostedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return classifyPgError(err, "failed to insert ledger entries")
	}
	return nil
}

func scanLedgerEntry(row pgx.Row) (models.GeneralLedgerEntry, error) {
	var m models.GeneralLedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.OrganizationID,
		&m.AccountID,
		&m.PeriodID,
		&m.JournalID,
		&m.JournalLineID,
		&m.Debit,
		&m.Credit,
		&m.PostedAt,
		&m.PostedBy,
	)
	return m, err
}

// ListEntriesByAccount retrieves a token-paginated list of entries for an
// account, newest first, cursored on (posted_at, entry_id).
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, organizationID, accountID string, limit int, nextToken *string) ([]domain.GeneralLedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	query := `SELECT ` + ledgerEntryColumns + ` FROM gl_entries WHERE organization_id = $1 AND account_id = $2`
	args := []interface{}{organizationID, accountID}

	if nextToken != nil && *nextToken != "" {
		fields, decodeErr := pagination.DecodeMultiFieldToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		if len(fields) != 2 {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("expected 2 cursor fields, got %d", len(fields)))
		}
		lastPostedAt, parseErr := time.Parse(time.RFC3339Nano, fields[0])
		if parseErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", parseErr)
		}
		query += ` AND (posted_at, entry_id) < ($3, $4)`
		args = append(args, lastPostedAt, fields[1])
	}
	args = append(args, fetchLimit)
	query += ` ORDER BY posted_at DESC, entry_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries for account "+accountID, err)
	}
	defer rows.Close()

	modelEntries := make([]models.GeneralLedgerEntry, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanLedgerEntry(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row", scanErr)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	var nextTokenVal *string
	results := modelEntries
	if len(modelEntries) > limit {
		last := modelEntries[limit-1]
		token := pagination.EncodeMultiFieldToken(last.PostedAt.Format(time.RFC3339Nano), last.EntryID)
		nextTokenVal = &token
		results = modelEntries[:limit]
	}

	return mapping.ToDomainLedgerEntrySlice(results), nextTokenVal, nil
}

// ListEntriesByJournal retrieves all entries produced by one journal.
func (r *PgxLedgerRepository) ListEntriesByJournal(ctx context.Context, journalID string) ([]domain.GeneralLedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM gl_entries WHERE journal_id = $1 ORDER BY entry_id;`

	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries for journal "+journalID, err)
	}
	defer rows.Close()

	modelEntries := []models.GeneralLedgerEntry{}
	for rows.Next() {
		m, scanErr := scanLedgerEntry(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", scanErr)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	return mapping.ToDomainLedgerEntrySlice(modelEntries), nil
}

// SumEntriesByAccount recomputes the account's lifetime debit and credit
// totals from the ledger itself.
func (r *PgxLedgerRepository) SumEntriesByAccount(ctx context.Context, accountID string) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(debit), 0), COALESCE(SUM(credit), 0)
		FROM gl_entries
		WHERE account_id = $1;
	`
	var debits, credits decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(&debits, &credits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, decimal.Zero, nil
		}
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to sum ledger entries for account "+accountID, err)
	}
	return debits, credits, nil
}

// TrialBalanceByPeriod aggregates posted effects per account for one period.
// Accounts with no entries in the period are omitted.
func (r *PgxLedgerRepository) TrialBalanceByPeriod(ctx context.Context, organizationID, periodID string) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT a.account_id, a.code, a.name, a.account_type,
		       COALESCE(SUM(e.debit), 0) AS total_debit,
		       COALESCE(SUM(e.credit), 0) AS total_credit
		FROM gl_entries e
		JOIN accounts a ON a.account_id = e.account_id
		WHERE e.organization_id = $1 AND e.period_id = $2
		GROUP BY a.account_id, a.code, a.name, a.account_type
		ORDER BY a.code;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID, periodID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query trial balance for period "+periodID, err)
	}
	defer rows.Close()

	balanceRows := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		var accountType string
		err := rows.Scan(&row.AccountID, &row.AccountCode, &row.AccountName, &accountType, &row.TotalDebit, &row.TotalCredit)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan trial balance row", err)
		}
		row.AccountType = domain.AccountType(accountType)
		if row.AccountType.NormalSide() == domain.DebitSide {
			row.Net = row.TotalDebit.Sub(row.TotalCredit)
		} else {
			row.Net = row.TotalCredit.Sub(row.TotalDebit)
		}
		balanceRows = append(balanceRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating trial balance rows", err)
	}

	return balanceRows, nil
}
