package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openbooks/ledger_engine/internal/apperrors"
	"github.com/openbooks/ledger_engine/internal/core/domain"
	portsrepo "github.com/openbooks/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/openbooks/ledger_engine/internal/core/ports/services"
	"github.com/openbooks/ledger_engine/internal/dto"
	"github.com/openbooks/ledger_engine/internal/middleware"
)

// accountService manages the chart of accounts. It never moves balances;
// only the posting orchestrator does that.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
}

// NewAccountService creates a new chart-of-accounts service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount inserts a new account under an optional parent. The normal
// side is derived from the account type, never supplied by the caller.
func (s *accountService) CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, creatorID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, req.ParentAccountID)
		if err != nil {
			return nil, err
		}
		if parent.OrganizationID != organizationID {
			return nil, apperrors.ErrNotFound
		}
		if !parent.IsGroup {
			return nil, apperrors.NewValidationError("parent account must be a group account")
		}
		if parent.AccountType != req.AccountType {
			return nil, apperrors.NewValidationError("child account type must match its parent")
		}
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		OrganizationID:  organizationID,
		Code:            req.Code,
		Name:            req.Name,
		AccountType:     req.AccountType,
		NormalSide:      req.AccountType.NormalSide(),
		CurrencyCode:    req.CurrencyCode,
		ParentAccountID: req.ParentAccountID,
		IsGroup:         req.IsGroup,
		IsActive:        true,
		Balance:         decimal.Zero,
		AuditFields:     domain.AuditFields{CreatedAt: now, CreatedBy: creatorID, LastUpdatedAt: now, LastUpdatedBy: creatorID},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	logger.Info("Account created",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code),
		slog.String("type", string(account.AccountType)))

	return &account, nil
}

// GetAccountByID retrieves one account scoped to the organization.
func (s *accountService) GetAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

// GetAccountsByIDs retrieves accounts keyed by ID, scoped to the organization.
func (s *accountService) GetAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}
	for id, account := range accounts {
		if account.OrganizationID != organizationID {
			delete(accounts, id)
		}
	}
	return accounts, nil
}

// ListAccounts retrieves all accounts of an organization ordered by code.
func (s *accountService) ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error) {
	return s.accountRepo.ListAccountsByOrganization(ctx, organizationID)
}

// DeactivateAccount makes an account unavailable as a posting target.
// Posted history referencing the account stays intact.
func (s *accountService) DeactivateAccount(ctx context.Context, organizationID, accountID, actorID string) error {
	account, err := s.GetAccountByID(ctx, organizationID, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return apperrors.ErrConflict
	}
	return s.accountRepo.UpdateAccountActive(ctx, accountID, false, actorID, time.Now().UTC())
}

// RecomputeBalance replays the general ledger for the account and rewrites
// the persisted running balance from the replayed value. The two agree unless
// something outside the posting path touched the balance column.
func (s *accountService) RecomputeBalance(ctx context.Context, organizationID, accountID, actorID string) (decimal.Decimal, decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.GetAccountByID(ctx, organizationID, accountID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	debits, credits, err := s.ledgerRepo.SumEntriesByAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	var replayed decimal.Decimal
	if account.NormalSide == domain.DebitSide {
		replayed = debits.Sub(credits)
	} else {
		replayed = credits.Sub(debits)
	}

	if !replayed.Equal(account.Balance) {
		logger.Warn("Account balance drifted from ledger replay",
			slog.String("account_id", accountID),
			slog.String("stored", account.Balance.String()),
			slog.String("replayed", replayed.String()))
		if err := s.accountRepo.SetAccountBalance(ctx, accountID, replayed, actorID, time.Now().UTC()); err != nil {
			return decimal.Zero, decimal.Zero, err
		}
	}

	return account.Balance, replayed, nil
}
