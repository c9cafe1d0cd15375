// Package txnservice manages business logic layer of balance transactions.
//
// Every balance mutation runs inside a distributed per-account lock and
// commits the account update together with its ledger entry. Failed
// attempts are recorded in the ledger as well, so the audit trail covers
// rejections, not only successes.
package txnservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/accountd/accountd/internal/domain"
)

// Repo provides ledger data access layer interface needed by transaction service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package txnservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	GetByTransactionID(ctx context.Context, transactionID string) (domain.Transaction, error)
	MutateBalance(ctx context.Context, accountID int64, newBalance int64, arg domain.CreateTransactionParams) (domain.Account, domain.Transaction, error)
}

// AccountRepo provides account lookups needed by transaction service layer.
type AccountRepo interface {
	GetByNumber(ctx context.Context, accountNumber string) (domain.Account, error)
}

// OwnerRepo provides owner existence checks needed by transaction service layer.
type OwnerRepo interface {
	Get(ctx context.Context, id int64) (domain.Owner, error)
}

// AccountLocker serializes balance mutations per account across all
// service instances.
type AccountLocker interface {
	WithLock(ctx context.Context, accountNumber string, fn func(ctx context.Context) error) error
}

// Service facilitates transaction service layer logic.
type Service struct {
	repo        Repo
	accountRepo AccountRepo
	ownerRepo   OwnerRepo
	locker      AccountLocker
}

// New returns transaction service struct to manage balance transaction logic.
func New(tr Repo, ar AccountRepo, or OwnerRepo, locker AccountLocker) *Service {
	return &Service{
		repo:        tr,
		accountRepo: ar,
		ownerRepo:   or,
		locker:      locker,
	}
}

// NewTransactionID returns the external ledger reference key:
// a random 32-hex-character string.
func NewTransactionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ValidateUse checks the use-balance preconditions in fixed order.
// The first violated rule wins.
func ValidateUse(userID int64, account domain.Account, amount int64) error {
	if account.OwnerID != userID {
		return domain.ErrUserAccountMismatch
	}

	if account.Status != domain.StatusInUse {
		return domain.ErrAccountAlreadyClosed
	}

	if account.Balance < amount {
		return domain.ErrAmountExceedsBalance
	}

	return nil
}

// ValidateCancel checks the cancel preconditions in fixed order.
// Partial reversal is not permitted and the original transaction must be
// no older than the reversal window.
func ValidateCancel(txn domain.Transaction, account domain.Account, amount int64, now time.Time) error {
	if txn.AccountID != account.ID {
		return domain.ErrTransactionAccountMismatch
	}

	if txn.Amount != amount {
		return domain.ErrCancelMustBeFull
	}

	if now.Sub(txn.TransactedAt) > domain.ReversalWindow {
		return domain.ErrReversalWindowExpired
	}

	return nil
}

// UseBalance debits the account under the distributed account lock and
// returns the appended SUCCESS ledger entry. Validation failures append a
// FAIL entry before the typed violation is returned to the caller.
func (s *Service) UseBalance(ctx context.Context, userID int64, accountNumber string, amount int64) (domain.Transaction, error) {
	var txn domain.Transaction

	err := s.locker.WithLock(ctx, accountNumber, func(ctx context.Context) error {
		var err error
		txn, err = s.useBalance(ctx, userID, accountNumber, amount)

		return err
	})

	return txn, err
}

func (s *Service) useBalance(ctx context.Context, userID int64, accountNumber string, amount int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	if _, err := s.ownerRepo.Get(ctx, userID); err != nil {
		return domain.Transaction{}, err
	}

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err := ValidateUse(userID, account, amount); err != nil {
		l.Info().Err(err).Str("account_number", accountNumber).Msg("use balance rejected")
		s.logFailed(ctx, domain.TxnTypeUse, account, amount)

		return domain.Transaction{}, err
	}

	newBalance := account.Balance - amount

	_, txn, err := s.repo.MutateBalance(ctx, account.ID, newBalance, domain.CreateTransactionParams{
		TransactionID:   NewTransactionID(),
		Type:            domain.TxnTypeUse,
		Result:          domain.TxnResultSuccess,
		AccountID:       account.ID,
		AccountNumber:   account.AccountNumber,
		Amount:          amount,
		BalanceSnapshot: newBalance,
	})
	if err != nil {
		return domain.Transaction{}, err
	}

	return txn, nil
}

// CancelBalance reverses a prior use transaction in full under the
// distributed account lock and returns the appended SUCCESS ledger entry.
func (s *Service) CancelBalance(ctx context.Context, transactionID, accountNumber string, amount int64) (domain.Transaction, error) {
	var txn domain.Transaction

	err := s.locker.WithLock(ctx, accountNumber, func(ctx context.Context) error {
		var err error
		txn, err = s.cancelBalance(ctx, transactionID, accountNumber, amount)

		return err
	})

	return txn, err
}

func (s *Service) cancelBalance(ctx context.Context, transactionID, accountNumber string, amount int64) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	original, err := s.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return domain.Transaction{}, err
	}

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return domain.Transaction{}, err
	}

	if err := ValidateCancel(original, account, amount, time.Now()); err != nil {
		l.Info().Err(err).Str("transaction_id", transactionID).Msg("cancel balance rejected")
		s.logFailed(ctx, domain.TxnTypeCancel, account, amount)

		return domain.Transaction{}, err
	}

	newBalance := account.Balance + amount

	_, txn, err := s.repo.MutateBalance(ctx, account.ID, newBalance, domain.CreateTransactionParams{
		TransactionID:   NewTransactionID(),
		Type:            domain.TxnTypeCancel,
		Result:          domain.TxnResultSuccess,
		AccountID:       account.ID,
		AccountNumber:   account.AccountNumber,
		Amount:          amount,
		BalanceSnapshot: newBalance,
	})
	if err != nil {
		return domain.Transaction{}, err
	}

	return txn, nil
}

// LogFailedUse appends a FAIL use entry with the current balance and no
// mutation. It exists for callers whose request failed outside the
// validated path and still needs an audit record.
func (s *Service) LogFailedUse(ctx context.Context, accountNumber string, amount int64) error {
	return s.logFailedByNumber(ctx, domain.TxnTypeUse, accountNumber, amount)
}

// LogFailedCancel appends a FAIL cancel entry with the current balance and
// no mutation.
func (s *Service) LogFailedCancel(ctx context.Context, accountNumber string, amount int64) error {
	return s.logFailedByNumber(ctx, domain.TxnTypeCancel, accountNumber, amount)
}

func (s *Service) logFailedByNumber(ctx context.Context, txnType domain.TxnType, accountNumber string, amount int64) error {
	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, failedEntry(txnType, account, amount))

	return err
}

// logFailed appends a FAIL entry for an already loaded account. The
// rejection is what the caller needs to see, so an append error is only
// logged.
func (s *Service) logFailed(ctx context.Context, txnType domain.TxnType, account domain.Account, amount int64) {
	l := zerolog.Ctx(ctx)

	if _, err := s.repo.Create(ctx, failedEntry(txnType, account, amount)); err != nil {
		l.Error().Err(err).Str("account_number", account.AccountNumber).Msg("failed to log rejected transaction")
	}
}

func failedEntry(txnType domain.TxnType, account domain.Account, amount int64) domain.CreateTransactionParams {
	return domain.CreateTransactionParams{
		TransactionID:   NewTransactionID(),
		Type:            txnType,
		Result:          domain.TxnResultFail,
		AccountID:       account.ID,
		AccountNumber:   account.AccountNumber,
		Amount:          amount,
		BalanceSnapshot: account.Balance,
	}
}

// Get returns the ledger entry with the given transaction id.
func (s *Service) Get(ctx context.Context, transactionID string) (domain.Transaction, error) {
	txn, err := s.repo.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return txn, err
	}

	return txn, nil
}
