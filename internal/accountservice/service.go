// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/accountd/accountd/internal/domain"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	GetByNumber(ctx context.Context, accountNumber string) (domain.Account, error)
	Close(ctx context.Context, id int64) (domain.Account, error)
	CountByOwner(ctx context.Context, ownerID int64) (int32, error)
	LatestNumber(ctx context.Context) (string, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Account, error)
}

// OwnerRepo provides owner existence checks needed by account service layer.
type OwnerRepo interface {
	Get(ctx context.Context, id int64) (domain.Owner, error)
}

// AccountLocker serializes mutations per account across all service instances.
type AccountLocker interface {
	WithLock(ctx context.Context, accountNumber string, fn func(ctx context.Context) error) error
}

// Service facilitates account service layer logic.
type Service struct {
	repo      Repo
	ownerRepo OwnerRepo
	locker    AccountLocker
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo, or OwnerRepo, locker AccountLocker) *Service {
	return &Service{
		repo:      ar,
		ownerRepo: or,
		locker:    locker,
	}
}

// ValidateClose checks the account closure preconditions in fixed order.
func ValidateClose(userID int64, account domain.Account) error {
	if account.OwnerID != userID {
		return domain.ErrUserAccountMismatch
	}

	if account.Status == domain.StatusUnregistered {
		return domain.ErrAccountAlreadyClosed
	}

	if account.Balance > 0 {
		return domain.ErrBalanceNotEmpty
	}

	return nil
}

// Create opens an account for the owner with the given initial balance.
// Account numbers are allocated sequentially starting at
// domain.FirstAccountNumber.
func (s *Service) Create(ctx context.Context, ownerID, initialBalance int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if initialBalance < domain.MinInitialBalance {
		return domain.Account{}, domain.ErrInitialBalanceTooLow
	}

	if _, err := s.ownerRepo.Get(ctx, ownerID); err != nil {
		return domain.Account{}, err
	}

	count, err := s.repo.CountByOwner(ctx, ownerID)
	if err != nil {
		return domain.Account{}, err
	}

	if count >= domain.MaxAccountsPerOwner {
		l.Info().Int64("owner_id", ownerID).Msg("account limit reached")
		return domain.Account{}, domain.ErrAccountLimitExceeded
	}

	number, err := s.nextAccountNumber(ctx)
	if err != nil {
		return domain.Account{}, err
	}

	account, err := s.repo.Create(ctx, domain.CreateAccountParams{
		AccountNumber: number,
		OwnerID:       ownerID,
		Balance:       initialBalance,
	})
	if err != nil {
		return account, err
	}

	return account, nil
}

func (s *Service) nextAccountNumber(ctx context.Context) (string, error) {
	latest, err := s.repo.LatestNumber(ctx)
	if err != nil {
		if err == domain.ErrAccountNotFound {
			return domain.FirstAccountNumber, nil
		}

		return "", err
	}

	n, err := strconv.ParseInt(latest, 10, 64)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("account_number", latest).Msg("malformed account number")
		return "", err
	}

	return fmt.Sprintf("%010d", n+1), nil
}

// Close unregisters the account. It runs under the same account lock as
// balance mutations to rule out a race with a concurrent debit.
func (s *Service) Close(ctx context.Context, userID int64, accountNumber string) (domain.Account, error) {
	var account domain.Account

	err := s.locker.WithLock(ctx, accountNumber, func(ctx context.Context) error {
		var err error
		account, err = s.close(ctx, userID, accountNumber)

		return err
	})

	return account, err
}

func (s *Service) close(ctx context.Context, userID int64, accountNumber string) (domain.Account, error) {
	if _, err := s.ownerRepo.Get(ctx, userID); err != nil {
		return domain.Account{}, err
	}

	account, err := s.repo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return domain.Account{}, err
	}

	if err := ValidateClose(userID, account); err != nil {
		return domain.Account{}, err
	}

	closed, err := s.repo.Close(ctx, account.ID)
	if err != nil {
		return closed, err
	}

	return closed, nil
}

// List returns accounts that are owned by the given user.
func (s *Service) List(ctx context.Context, ownerID int64) ([]domain.Account, error) {
	if _, err := s.ownerRepo.Get(ctx, ownerID); err != nil {
		return nil, err
	}

	accounts, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}
