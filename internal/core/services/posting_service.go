package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/middleware"
	"github.com/openbooks/ledger_engine/internal/utils/accounting"
)

// defaultPrecision is used when the functional currency has no master data row.
const defaultPrecision int32 = 2

// postingService is the only writer of gl_entries and account balances.
// Posting composes the repositories into one transaction: number assignment,
// ledger append, balance updates and the status stamp commit together or not
// at all.
type postingService struct {
	organizationRepo   portsrepo.OrganizationRepository
	journalRepo        portsrepo.JournalRepositoryWithTx
	accountRepo        portsrepo.AccountRepositoryFacade
	ledgerRepo         portsrepo.LedgerRepositoryFacade
	periodRepo         portsrepo.PeriodRepositoryFacade
	journalTypeRepo    portsrepo.JournalTypeRepositoryFacade
	approvalRepo       portsrepo.ApprovalRepository
	currencyRepo       portsrepo.CurrencyRepository
	reconciliationRepo portsrepo.ReconciliationRepository
	rateSvc            portssvc.ExchangeRateSvcFacade
	inventoryPoster    portssvc.InventoryPoster
	allowGroupPosting  bool
}

// NewPostingService creates the posting orchestrator.
func NewPostingService(repos *portsrepo.RepositoryProvider, rateSvc portssvc.ExchangeRateSvcFacade, inventoryPoster portssvc.InventoryPoster, allowGroupPosting bool) portssvc.PostingSvcFacade {
	return &postingService{
		organizationRepo:   repos.OrganizationRepo,
		journalRepo:        repos.JournalRepo,
		accountRepo:        repos.AccountRepo,
		ledgerRepo:         repos.LedgerRepo,
		periodRepo:         repos.PeriodRepo,
		journalTypeRepo:    repos.JournalTypeRepo,
		approvalRepo:       repos.ApprovalRepo,
		currencyRepo:       repos.CurrencyRepo,
		reconciliationRepo: repos.ReconciliationRepo,
		rateSvc:            rateSvc,
		inventoryPoster:    inventoryPoster,
		allowGroupPosting:  allowGroupPosting,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// Validate runs the full pipeline against committed state without writing
// anything. The result is advisory: state can change between preview and post.
func (s *postingService) Validate(ctx context.Context, organizationID, journalID string) (domain.ValidationResult, error) {
	journal, err := s.loadJournalWithLines(ctx, organizationID, journalID)
	if err != nil {
		return domain.ValidationResult{}, err
	}
	if journal.IsLocked() {
		return domain.ValidationResult{}, apperrors.ErrConflict
	}

	organization, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	journalType, err := s.journalTypeRepo.FindJournalTypeByID(ctx, journal.JournalTypeID)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	var period *domain.AccountingPeriod
	period, err = s.periodRepo.ResolvePeriodForDate(ctx, organizationID, journal.JournalDate)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return domain.ValidationResult{}, err
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDsOf(journal.Lines))
	if err != nil {
		return domain.ValidationResult{}, err
	}
	// Accounts from other organizations are invisible to this one.
	for id, account := range accounts {
		if account.OrganizationID != organizationID {
			delete(accounts, id)
		}
	}

	approval, err := s.loadApproval(ctx, journalType, journalID)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	rates, err := s.resolveRates(ctx, *journal, organization.FunctionalCurrency)
	if err != nil {
		return domain.ValidationResult{}, err
	}

	return ValidateJournal(ValidationInput{
		Journal:            *journal,
		JournalType:        journalType,
		Period:             period,
		Accounts:           accounts,
		Approval:           approval,
		FunctionalCurrency: organization.FunctionalCurrency,
		Rates:              rates,
		AllowGroupPosting:  s.allowGroupPosting,
	}), nil
}

// loadApproval fetches the latest decision for the journal when its type
// gates posting on approval. Absence is not an error here: the pipeline
// turns a missing or rejected record into APPROVAL_REQUIRED.
func (s *postingService) loadApproval(ctx context.Context, journalType *domain.JournalType, journalID string) (*domain.Approval, error) {
	if journalType == nil || !journalType.RequiresApproval {
		return nil, nil
	}
	approval, err := s.approvalRepo.FindLatestApprovalByJournalID(ctx, journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return approval, nil
}

// Post atomically validates and posts the journal.
func (s *postingService) Post(ctx context.Context, organizationID, journalID, actorID string) (*domain.Journal, domain.ValidationResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	organization, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}
	defer s.journalRepo.Rollback(ctx, tx)

	journal, err := s.journalRepo.FindJournalByIDForUpdate(ctx, tx, journalID)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}
	if journal.OrganizationID != organizationID {
		return nil, domain.ValidationResult{}, apperrors.ErrNotFound
	}
	if journal.IsLocked() {
		return nil, domain.ValidationResult{}, apperrors.ErrConflict
	}

	// Line edits always bump the locked header first, so reading lines after
	// acquiring the header lock sees a consistent set.
	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}
	journal.Lines = lines

	journalType, err := s.journalTypeRepo.FindJournalTypeByID(ctx, journal.JournalTypeID)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}

	// Resolve the period, then lock its row: a concurrent close waits for
	// this posting and re-reads, and this posting sees a close that already
	// committed.
	var period *domain.AccountingPeriod
	resolved, err := s.periodRepo.ResolvePeriodForDate(ctx, organizationID, journal.JournalDate)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, domain.ValidationResult{}, err
	}
	if resolved != nil {
		period, err = s.periodRepo.FindPeriodByIDForUpdate(ctx, tx, resolved.PeriodID)
		if err != nil {
			return nil, domain.ValidationResult{}, err
		}
	}

	accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDsOf(lines))
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}
	for id, account := range accounts {
		if account.OrganizationID != organizationID {
			delete(accounts, id)
		}
	}

	approval, err := s.loadApproval(ctx, journalType, journalID)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}

	rates, err := s.resolveRates(ctx, *journal, organization.FunctionalCurrency)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}

	result := ValidateJournal(ValidationInput{
		Journal:            *journal,
		JournalType:        journalType,
		Period:             period,
		Accounts:           accounts,
		Approval:           approval,
		FunctionalCurrency: organization.FunctionalCurrency,
		Rates:              rates,
		AllowGroupPosting:  s.allowGroupPosting,
	})
	if !result.OK() {
		logger.Info("Posting refused by validation",
			slog.String("journal_id", journalID),
			slog.Int("failures", len(result.Failures)))
		return nil, result, nil
	}

	if !journal.Status.CanTransitionTo(domain.Posted) {
		return nil, domain.ValidationResult{}, apperrors.ErrConflict
	}

	// Number assignment happens only now, after validation passed, so a
	// refused posting never consumes a sequence value.
	sequence, err := s.journalTypeRepo.IncrementSequenceInTx(ctx, tx, journal.JournalTypeID)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}
	journalNumber := journalType.FormatNumber(sequence)

	precision := s.functionalPrecision(ctx, organization.FunctionalCurrency)
	now := time.Now().UTC()

	entries, deltas, err := s.buildLedgerEffects(*journal, accounts, organization.FunctionalCurrency, rates, precision, period.PeriodID, actorID, now)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}

	if err := s.ledgerRepo.InsertEntriesInTx(ctx, tx, entries); err != nil {
		return nil, domain.ValidationResult{}, err
	}
	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, deltas, actorID, now); err != nil {
		return nil, domain.ValidationResult{}, err
	}
	if err := s.journalRepo.MarkJournalPostedInTx(ctx, tx, journalID, journalNumber, period.PeriodID, actorID, now, journal.Version); err != nil {
		return nil, domain.ValidationResult{}, err
	}

	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, domain.ValidationResult{}, err
	}

	logger.Info("Journal posted",
		slog.String("journal_id", journalID),
		slog.String("journal_number", journalNumber),
		slog.String("period_id", period.PeriodID),
		slog.Int("entries", len(entries)))

	// The financial posting is committed; inventory is a collaborator whose
	// failure is recorded, never propagated.
	s.dispatchInventory(ctx, organizationID, journalID, lines)

	posted, err := s.loadJournalWithLines(ctx, organizationID, journalID)
	if err != nil {
		return nil, domain.ValidationResult{}, err
	}
	return posted, result, nil
}

// Reverse creates and posts a journal that exactly negates the original's
// ledger effects, in the same unit of work that marks the original reversed.
func (s *postingService) Reverse(ctx context.Context, organizationID, journalID, actorID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	organization, err := s.organizationRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.journalRepo.Rollback(ctx, tx)

	original, err := s.journalRepo.FindJournalByIDForUpdate(ctx, tx, journalID)
	if err != nil {
		return nil, err
	}
	if original.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	if original.Status != domain.Posted {
		return nil, apperrors.ErrConflict
	}

	originalLines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	originalEntries, err := s.ledgerRepo.ListEntriesByJournal(ctx, journalID)
	if err != nil {
		return nil, err
	}

	// The reversal posts on today's date into whatever period is open now;
	// the original's period may already be closed.
	now := time.Now().UTC()
	reversalDate := now.Truncate(24 * time.Hour)
	resolved, err := s.periodRepo.ResolvePeriodForDate(ctx, organizationID, reversalDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("no accounting period contains the reversal date")
		}
		return nil, err
	}
	period, err := s.periodRepo.FindPeriodByIDForUpdate(ctx, tx, resolved.PeriodID)
	if err != nil {
		return nil, err
	}
	if !period.IsOpen() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("period %s is %s", period.Name, period.Status))
	}

	// Lock the touched accounts in sorted order like a regular posting.
	accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDsOf(originalLines))
	if err != nil {
		return nil, err
	}
	for id, account := range accounts {
		if account.OrganizationID != organizationID {
			delete(accounts, id)
		}
	}

	journalType, err := s.journalTypeRepo.FindJournalTypeByID(ctx, original.JournalTypeID)
	if err != nil {
		return nil, err
	}
	sequence, err := s.journalTypeRepo.IncrementSequenceInTx(ctx, tx, original.JournalTypeID)
	if err != nil {
		return nil, err
	}

	reversingID := uuid.NewString()
	audit := domain.AuditFields{CreatedAt: now, CreatedBy: actorID, LastUpdatedAt: now, LastUpdatedBy: actorID}

	// Lines are the original's with debit and credit swapped; each gets a
	// fresh ID, and the mapping carries over to the negated ledger entries.
	lineIDByOriginal := make(map[string]string, len(originalLines))
	reversingLines := make([]domain.JournalLine, len(originalLines))
	for i, line := range originalLines {
		negated := line.Negated()
		negated.LineID = uuid.NewString()
		negated.JournalID = reversingID
		negated.AuditFields = audit
		lineIDByOriginal[line.LineID] = negated.LineID
		reversingLines[i] = negated
	}

	reversingJournal := domain.Journal{
		JournalID:         reversingID,
		OrganizationID:    organizationID,
		JournalTypeID:     original.JournalTypeID,
		JournalNumber:     journalType.FormatNumber(sequence),
		JournalDate:       reversalDate,
		PeriodID:          period.PeriodID,
		Description:       "Reversal of " + original.JournalNumber + ": " + original.Description,
		CurrencyCode:      original.CurrencyCode,
		ExchangeRate:      original.ExchangeRate,
		Status:            domain.Posted,
		PostedBy:          actorID,
		PostedAt:          &now,
		OriginalJournalID: &original.JournalID,
		Version:           1,
		AuditFields:       audit,
	}

	// The reversal runs through the same pipeline as a regular posting, so a
	// since-deactivated account or a newly gated configuration refuses it.
	// The actor's decision to reverse stands in as its approval.
	var approval *domain.Approval
	if journalType.RequiresApproval {
		approval = &domain.Approval{
			ApprovalID: uuid.NewString(),
			JournalID:  reversingID,
			Decision:   domain.DecisionApproved,
			Notes:      "reversal of " + original.JournalNumber,
			DecidedBy:  actorID,
			DecidedAt:  now,
		}
	}

	pipelineJournal := reversingJournal
	pipelineJournal.Lines = reversingLines
	rates, err := s.resolveRates(ctx, pipelineJournal, organization.FunctionalCurrency)
	if err != nil {
		return nil, err
	}
	result := ValidateJournal(ValidationInput{
		Journal:            pipelineJournal,
		JournalType:        journalType,
		Period:             period,
		Accounts:           accounts,
		Approval:           approval,
		FunctionalCurrency: organization.FunctionalCurrency,
		Rates:              rates,
		AllowGroupPosting:  s.allowGroupPosting,
	})
	if !result.OK() {
		messages := make([]string, len(result.Failures))
		for i, failure := range result.Failures {
			messages[i] = string(failure.Code) + ": " + failure.Message
		}
		return nil, apperrors.NewValidationError("reversal refused: " + strings.Join(messages, "; "))
	}

	// Negating the stored entries, not re-converting the lines, guarantees
	// the reversal cancels the original to the cent regardless of rounding.
	reversingEntries := make([]domain.GeneralLedgerEntry, len(originalEntries))
	deltas := make(map[string]decimal.Decimal, len(originalEntries))
	for i, entry := range originalEntries {
		reversingEntries[i] = domain.GeneralLedgerEntry{
			EntryID:        uuid.NewString(),
			OrganizationID: organizationID,
			AccountID:      entry.AccountID,
			PeriodID:       period.PeriodID,
			JournalID:      reversingID,
			JournalLineID:  lineIDByOriginal[entry.JournalLineID],
			Debit:          entry.Credit,
			Credit:         entry.Debit,
			PostedAt:       now,
			PostedBy:       actorID,
		}

		account, found := accounts[entry.AccountID]
		if !found {
			return nil, fmt.Errorf("account %s vanished between validation and posting", entry.AccountID)
		}
		effect, effErr := accounting.SignedEffect(entry.Credit, entry.Debit, account.NormalSide)
		if effErr != nil {
			return nil, effErr
		}
		deltas[entry.AccountID] = deltas[entry.AccountID].Add(effect)
	}

	if err := s.journalRepo.SaveJournalInTx(ctx, tx, reversingJournal, reversingLines); err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.InsertEntriesInTx(ctx, tx, reversingEntries); err != nil {
		return nil, err
	}
	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, deltas, actorID, now); err != nil {
		return nil, err
	}
	if err := s.journalRepo.MarkJournalReversedInTx(ctx, tx, journalID, reversingID, actorID, now); err != nil {
		return nil, err
	}

	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Journal reversed",
		slog.String("journal_id", journalID),
		slog.String("reversing_journal_id", reversingID),
		slog.String("reversing_number", reversingJournal.JournalNumber))

	// The audit record lands after the commit, like the inventory dispatch;
	// validation already ran against the in-memory decision.
	if approval != nil {
		if saveErr := s.approvalRepo.SaveApproval(ctx, *approval); saveErr != nil {
			logger.Warn("Failed to record reversal approval",
				slog.String("journal_id", reversingID),
				slog.String("error", saveErr.Error()))
		}
	}

	// The negated lines sit on the opposite side, so their movements come out
	// mirrored: issues become receipts and vice versa.
	s.dispatchInventory(ctx, organizationID, reversingID, reversingLines)

	return s.loadJournalWithLines(ctx, organizationID, reversingID)
}

func (s *postingService) loadJournalWithLines(ctx context.Context, organizationID, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if journal.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	journal.Lines = lines
	return journal, nil
}

// resolveRates looks up one rate into the functional currency per referenced
// currency. Missing rates are simply absent: the pipeline turns absence into
// NO_RATE_FOUND; nothing ever defaults to 1 across currencies.
func (s *postingService) resolveRates(ctx context.Context, journal domain.Journal, functionalCurrency string) (map[string]decimal.Decimal, error) {
	needed := map[string]struct{}{}
	if journal.CurrencyCode != functionalCurrency && !journal.HasExplicitRate() {
		needed[journal.CurrencyCode] = struct{}{}
	}
	for _, line := range journal.Lines {
		if line.LineCurrency != nil && *line.LineCurrency != functionalCurrency && line.LineRate == nil {
			needed[*line.LineCurrency] = struct{}{}
		}
	}

	rates := make(map[string]decimal.Decimal, len(needed))
	for code := range needed {
		rate, err := s.rateSvc.ResolveRate(ctx, code, functionalCurrency, journal.JournalDate)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, err
		}
		rates[code] = rate
	}
	return rates, nil
}

func (s *postingService) functionalPrecision(ctx context.Context, functionalCurrency string) int32 {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, functionalCurrency)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Functional currency has no master data, using default precision",
			slog.String("currency", functionalCurrency))
		return defaultPrecision
	}
	return currency.Precision
}

// buildLedgerEffects converts every line into one functional-currency ledger
// entry, absorbs per-line rounding drift, and accumulates the per-account
// signed balance deltas from the final entry set.
func (s *postingService) buildLedgerEffects(journal domain.Journal, accounts map[string]domain.Account, functionalCurrency string, rates map[string]decimal.Decimal, precision int32, periodID, actorID string, now time.Time) ([]domain.GeneralLedgerEntry, map[string]decimal.Decimal, error) {
	entries := make([]domain.GeneralLedgerEntry, 0, len(journal.Lines))

	for _, line := range journal.Lines {
		rate, err := lineRate(journal, line, functionalCurrency, rates)
		if err != nil {
			return nil, nil, err
		}

		entries = append(entries, domain.GeneralLedgerEntry{
			EntryID:        uuid.NewString(),
			OrganizationID: journal.OrganizationID,
			AccountID:      line.AccountID,
			PeriodID:       periodID,
			JournalID:      journal.JournalID,
			JournalLineID:  line.LineID,
			Debit:          accounting.ConvertToFunctional(line.Debit, rate, precision),
			Credit:         accounting.ConvertToFunctional(line.Credit, rate, precision),
			PostedAt:       now,
			PostedBy:       actorID,
		})
	}

	// Per-line rounding can leave the converted set off by a few minor units
	// even though the journal balances in transaction currency. Fold the
	// remainder into the largest entry, then re-check: an unbalanced ledger
	// write is a fatal invariant violation and must abort the transaction.
	if err := absorbRoundingRemainder(entries); err != nil {
		return nil, nil, err
	}
	debits, credits := sumEntries(entries)
	if !debits.Equal(credits) {
		return nil, nil, fmt.Errorf("converted entries are unbalanced for journal %s: debits %s, credits %s",
			journal.JournalID, debits.String(), credits.String())
	}

	deltas := make(map[string]decimal.Decimal, len(entries))
	for _, entry := range entries {
		account, found := accounts[entry.AccountID]
		if !found {
			return nil, nil, fmt.Errorf("account %s vanished between validation and posting", entry.AccountID)
		}
		effect, err := accounting.SignedEffect(entry.Debit, entry.Credit, account.NormalSide)
		if err != nil {
			return nil, nil, err
		}
		deltas[entry.AccountID] = deltas[entry.AccountID].Add(effect)
	}

	return entries, deltas, nil
}

func sumEntries(entries []domain.GeneralLedgerEntry) (debits, credits decimal.Decimal) {
	for _, entry := range entries {
		debits = debits.Add(entry.Debit)
		credits = credits.Add(entry.Credit)
	}
	return debits, credits
}

// absorbRoundingRemainder plugs the debit/credit difference left by per-line
// conversion rounding into the entry with the largest amount. The adjustment
// only ever moves an amount by the accumulated drift; it refuses to turn an
// amount negative, leaving the defensive re-check to abort.
func absorbRoundingRemainder(entries []domain.GeneralLedgerEntry) error {
	debits, credits := sumEntries(entries)
	diff := debits.Sub(credits)
	if diff.IsZero() {
		return nil
	}

	largest := -1
	for i, entry := range entries {
		if largest < 0 || entry.Debit.Add(entry.Credit).GreaterThan(entries[largest].Debit.Add(entries[largest].Credit)) {
			largest = i
		}
	}
	if largest < 0 {
		return fmt.Errorf("cannot absorb rounding remainder %s: no entries", diff.String())
	}

	entry := &entries[largest]
	if entry.Debit.IsPositive() {
		adjusted := entry.Debit.Sub(diff)
		if adjusted.IsNegative() {
			return fmt.Errorf("rounding remainder %s exceeds largest entry amount %s", diff.String(), entry.Debit.String())
		}
		entry.Debit = adjusted
	} else {
		adjusted := entry.Credit.Add(diff)
		if adjusted.IsNegative() {
			return fmt.Errorf("rounding remainder %s exceeds largest entry amount %s", diff.String(), entry.Credit.String())
		}
		entry.Credit = adjusted
	}
	return nil
}

// lineRate picks the conversion rate for one line: line override first, then
// the journal's explicit rate, then the resolved rate, and exactly 1 only
// when the line is already in functional currency.
func lineRate(journal domain.Journal, line domain.JournalLine, functionalCurrency string, rates map[string]decimal.Decimal) (decimal.Decimal, error) {
	currency := journal.CurrencyCode
	if line.LineCurrency != nil {
		currency = *line.LineCurrency
	}
	if currency == functionalCurrency {
		return decimal.NewFromInt(1), nil
	}
	if line.LineRate != nil {
		return *line.LineRate, nil
	}
	if line.LineCurrency == nil && journal.HasExplicitRate() {
		return journal.ExchangeRate, nil
	}
	rate, found := rates[currency]
	if !found {
		return decimal.Zero, fmt.Errorf("no rate available for %s after validation passed", currency)
	}
	return rate, nil
}

// dispatchInventory hands inventory-bearing lines to the collaborator after
// the financial commit. A failure is logged and recorded for manual
// reconciliation; the posted journal is never touched.
func (s *postingService) dispatchInventory(ctx context.Context, organizationID, journalID string, lines []domain.JournalLine) {
	if s.inventoryPoster == nil {
		return
	}

	movements := make([]domain.InventoryMovement, 0, len(lines))
	for _, line := range lines {
		if !line.IsInventoryBearing() {
			continue
		}
		// Debit to a stock account receives inventory, credit issues it.
		direction := domain.InventoryReceipt
		if line.Side() == domain.CreditSide {
			direction = domain.InventoryIssue
		}
		movements = append(movements, domain.InventoryMovement{
			OrganizationID: organizationID,
			JournalID:      journalID,
			JournalLineID:  line.LineID,
			ProductID:      line.ProductID,
			WarehouseID:    line.WarehouseID,
			Quantity:       line.Quantity,
			Direction:      direction,
		})
	}
	if len(movements) == 0 {
		return
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.inventoryPoster.PostMovements(ctx, movements); err != nil {
		logger.Error("Inventory collaborator failed after commit",
			slog.String("journal_id", journalID),
			slog.String("error", err.Error()))
		now := time.Now().UTC()
		for _, movement := range movements {
			item := domain.ReconciliationItem{
				ItemID:         uuid.NewString(),
				OrganizationID: organizationID,
				JournalID:      journalID,
				JournalLineID:  movement.JournalLineID,
				Reason:         "inventory posting failed: " + err.Error(),
				Resolved:       false,
				RecordedAt:     now,
			}
			if saveErr := s.reconciliationRepo.SaveReconciliationItem(ctx, item); saveErr != nil {
				logger.Error("Failed to record reconciliation item",
					slog.String("journal_id", journalID),
					slog.String("journal_line_id", movement.JournalLineID),
					slog.String("error", saveErr.Error()))
			}
		}
	}
}

func accountIDsOf(lines []domain.JournalLine) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, dup := seen[line.AccountID]; dup {
			continue
		}
		seen[line.AccountID] = struct{}{}
		ids = append(ids, line.AccountID)
	}
	return ids
}
