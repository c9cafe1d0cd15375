package txnservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/accountd/accountd/internal/domain"
	"github.com/accountd/accountd/pkg/errorspkg"
	"github.com/accountd/accountd/pkg/randompkg"
)

func testAccount(id, ownerID, balance int64) domain.Account {
	return domain.Account{
		ID:            id,
		AccountNumber: randompkg.AccountNumber(),
		OwnerID:       ownerID,
		Status:        domain.StatusInUse,
		Balance:       balance,
		RegisteredAt:  time.Now().Truncate(time.Second).UTC(),
	}
}

// passthroughLock makes the mocked locker run the guarded function directly.
func passthroughLock(locker *MockAccountLocker, accountNumber string) {
	locker.EXPECT().
		WithLock(gomock.Any(), gomock.Eq(accountNumber), gomock.Any()).
		Times(1).
		DoAndReturn(func(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func TestNewTransactionID(t *testing.T) {
	id := NewTransactionID()

	require.Len(t, id, 32)
	require.NotEqual(t, id, NewTransactionID())
}

func TestValidateUse(t *testing.T) {
	account := testAccount(1, 10, 1000)

	closed := account
	closed.Status = domain.StatusUnregistered

	testCases := []struct {
		name    string
		userID  int64
		account domain.Account
		amount  int64
		wantErr error
	}{
		{name: "OK", userID: 10, account: account, amount: 200},
		{name: "FullBalance", userID: 10, account: account, amount: 1000},
		{name: "AmountExceedsBalanceByOne", userID: 10, account: account, amount: 1001, wantErr: domain.ErrAmountExceedsBalance},
		{name: "UserAccountMismatch", userID: 11, account: account, amount: 200, wantErr: domain.ErrUserAccountMismatch},
		{name: "AccountAlreadyClosed", userID: 10, account: closed, amount: 200, wantErr: domain.ErrAccountAlreadyClosed},
		// Owner mismatch wins over the closed status check.
		{name: "MismatchBeforeStatus", userID: 11, account: closed, amount: 200, wantErr: domain.ErrUserAccountMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUse(tc.userID, tc.account, tc.amount)

			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateCancel(t *testing.T) {
	now := time.Now()
	account := testAccount(1, 10, 800)

	original := domain.Transaction{
		ID:            1,
		TransactionID: randompkg.HexString(32),
		Type:          domain.TxnTypeUse,
		Result:        domain.TxnResultSuccess,
		AccountID:     account.ID,
		AccountNumber: account.AccountNumber,
		Amount:        200,
		TransactedAt:  now.Add(-time.Hour),
	}

	otherAccountTxn := original
	otherAccountTxn.AccountID = account.ID + 1

	atWindow := original
	atWindow.TransactedAt = now.Add(-domain.ReversalWindow)

	pastWindow := original
	pastWindow.TransactedAt = now.Add(-366 * 24 * time.Hour)

	testCases := []struct {
		name    string
		txn     domain.Transaction
		amount  int64
		wantErr error
	}{
		{name: "OK", txn: original, amount: 200},
		{name: "ExactlyAtReversalWindow", txn: atWindow, amount: 200},
		{name: "ReversalWindowExpired", txn: pastWindow, amount: 200, wantErr: domain.ErrReversalWindowExpired},
		{name: "TransactionAccountMismatch", txn: otherAccountTxn, amount: 200, wantErr: domain.ErrTransactionAccountMismatch},
		{name: "PartialCancel", txn: original, amount: 100, wantErr: domain.ErrCancelMustBeFull},
		{name: "OverCancel", txn: original, amount: 300, wantErr: domain.ErrCancelMustBeFull},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCancel(tc.txn, account, tc.amount, now)

			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestUseBalance(t *testing.T) {
	userID := int64(10)
	account := testAccount(1, userID, 1000)
	amount := int64(200)

	closedAccount := account
	closedAccount.Status = domain.StatusUnregistered

	testCases := []struct {
		name          string
		userID        int64
		accountNumber string
		amount        int64
		buildStubs    func(repo *MockRepo, accountRepo *MockAccountRepo, ownerRepo *MockOwnerRepo, locker *MockAccountLocker)
		checkResponse func(t *testing.T, txn domain.Transaction, err error)
	}{
		{
			name:          "OK",
			userID:        userID,
			accountNumber: account.AccountNumber,
			amount:        amount,
			buildStubs: func(repo *MockRepo, accountRepo *MockAccountRepo, ownerRepo *MockOwnerRepo, locker *MockAccountLocker) {
				passthroughLock(locker, account.AccountNumber)

				ownerRepo.EXPECT().Get(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(domain.Owner{ID: userID}, nil)

				accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Eq(account.AccountNumber)).
					Times(1).
					Return(account, nil)

				repo.EXPECT().
					MutateBalance(gomock.Any(), gomock.Eq(account.ID), gomock.Eq(int64(800)), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, _ int64, newBalance int64, arg domain.CreateTransactionParams) (domain.Account, domain.Transaction, error) {
						require.Len(t, arg.TransactionID, 32)
						require.Equal(t, domain.TxnTypeUse, arg.Type)
						require.Equal(t, domain.TxnResultSuccess, arg.Result)
						require.Equal(t, account.AccountNumber, arg.AccountNumber)
						require.Equal(t, amount, arg.Amount)
						require.Equal(t, newBalance, arg.BalanceSnapshot)

						mutated := account
						mutated.Balance = newBalance

						return mutated, domain.Transaction{
							ID:              1,
							TransactionID:   arg.TransactionID,
							Type:            arg.Type,
							Result:          arg.Result,
							AccountID:       arg.AccountID,
							AccountNumber:   arg.AccountNumber,
							Amount:          arg.Amount,
							BalanceSnapshot: arg.BalanceSnapshot,
						}, nil
					})
			},
			checkResponse: func(t *testing.T, txn domain.Transaction, err error) {
				require.NoError(t, err)
				require.Equal(t, domain.TxnResultSuccess, txn.Result)
				require.Equal(t, amount, txn.Amount)
				require.Equal(t, int64(800), txn.BalanceSnapshot)
			},
		},
		{
			name:          "LockAcquisitionFailed",
			userID:        userID,
			accountNumber: account.AccountNumber,
			amount:        amount,
			buildStubs: func(repo *MockRepo, accountRepo *MockAccountRepo, ownerRepo *MockOwnerRepo, locker *MockAccountLocker) {
				locker.EXPECT().
					WithLock(gomock.Any(), gomock.Eq(account.AccountNumber), gomock.Any()).
					Times(1).
					Return(domain.ErrLockAcquisitionFailed)

				ownerRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
				accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().MutateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, txn domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrLockAcquisitionFailed)
				require.Empty(t, txn)
			},
		},
		{
			name:          "OwnerNotFound",
			userID:        userID,
			accountNumber: account.AccountNumber,
			amount:        amount,
			buildStubs: func(repo *MockRepo, accountRepo *MockAccountRepo, ownerRepo *MockOwnerRepo, locker *MockAccountLocker) {
				passthroughLock(locker, account.AccountNumber)

				ownerRepo.EXPECT().Get(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(domain.Owner{}, domain.ErrOwnerNotFound)

				accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().MutateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, txn domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrOwnerNotFound)
			},
		},
		{
			name:          "AccountNotFound",
			userID:        userID,
			accountNumber: account.AccountNumber,
			amount:        amount,
			buildStubs: func(repo *MockRepo, accountRepo *MockAccountRepo, ownerRepo *MockOwnerRepo, locker *MockAccountLocker) {
				passthroughLock(locker, account.AccountNumber)

				ownerRepo.EXPECT().Get(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(domain.Owner{ID: userID}, nil)

				accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Eq(account.AccountNumber)).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)

				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().MutateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, txn domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrAccountNotFound)
			},
		},
		{
			name:          "AmountExceedsBalanceLogsFailedEntry",
			userID:        userID,
			accountNumber: account.AccountNumber,
			amount:        account.Balance + 1,
			buildStubs: func(repo *MockRepo, accountRepo *MockAccountRepo, ownerRepo *MockOwnerRepo, locker *MockAccountLocker) {
				passthroughLock(locker, account.AccountNumber)

				ownerRepo.EXPECT().Get(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(domain.Owner{ID: userID}, nil)

				accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Eq(account.AccountNumber)).
					Times(1).
					Return(account, nil)

				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
						require.Equal(t, domain.TxnTypeUse, arg.Type)
						require.Equal(t, domain.TxnResultFail, arg.Result)
						require.Equal(t, account.Balance+1, arg.Amount)
						require.Equal(t, account.Balance, arg.BalanceSnapshot)

						return domain.Transaction{}, nil
					})

				repo.EXPECT().MutateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, txn domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrAmountExceedsBalance)
				require.Empty(t, txn)
			},
		},
		{
			name:          "UseFullBalance",
			userID:        userID,
			accountNumber: account.AccountNumber,
			amount:        account.Balance,
			buildStubs: func(repo *MockRepo, accountRepo *MockAccountRepo, ownerRepo *MockOwnerRepo, locker *MockAccountLocker) {
				passthroughLock(locker, account.AccountNumber)

				ownerRepo.EXPECT().Get(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(domain.Owner{ID: userID}, nil)

				accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Eq(account.AccountNumber)).
					Times(1).
					Return(account, nil)

				repo.EXPECT().
					MutateBalance(gomock.Any(), gomock.Eq(account.ID), gomock.Eq(int64(0)), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.Transaction{BalanceSnapshot: 0, Result: domain.TxnResultSuccess}, nil)
			},
			checkResponse: func(t *testing.T, txn domain.Transaction, err error) {
				require.NoError(t, err)
				require.Equal(t, int64(0), txn.BalanceSnapshot)
			},
		},
		{
			name:          "ClosedAccountLogsFailedEntry",
			userID:        userID,
			accountNumber: closedAccount.AccountNumber,
			amount:        amount,
			buildStubs: func(repo *MockRepo, accountRepo *MockAccountRepo, ownerRepo *MockOwnerRepo, locker *MockAccountLocker) {
				passthroughLock(locker, closedAccount.AccountNumber)

				ownerRepo.EXPECT().Get(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(domain.Owner{ID: userID}, nil)

				accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Eq(closedAccount.AccountNumber)).
					Times(1).
					Return(closedAccount, nil)

				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Transaction{}, nil)

				repo.EXPECT().MutateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, txn domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrAccountAlreadyClosed)
			},
		},
		{
			name:          "MutationInternalError",
			userID:        userID,
			accountNumber: account.AccountNumber,
			amount:        amount,
			buildStubs: func(repo *MockRepo, accountRepo *MockAccountRepo, ownerRepo *MockOwnerRepo, locker *MockAccountLocker) {
				passthroughLock(locker, account.AccountNumber)

				ownerRepo.EXPECT().Get(gomock.Any(), gomock.Eq(userID)).
					Times(1).
					Return(domain.Owner{ID: userID}, nil)

				accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Eq(account.AccountNumber)).
					Times(1).
					Return(account, nil)

				repo.EXPECT().
					MutateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Account{}, domain.Transaction{}, errorspkg.ErrInternal)
			},
			checkResponse: func(t *testing.T, txn domain.Transaction, err error) {
				require.ErrorIs(t, err, errorspkg.ErrInternal)
				require.Empty(t, txn)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			accountRepo := NewMockAccountRepo(ctrl)
			ownerRepo := NewMockOwnerRepo(ctrl)
			locker := NewMockAccountLocker(ctrl)

			tc.buildStubs(repo, accountRepo, ownerRepo, locker)

			service := New(repo, accountRepo, ownerRepo, locker)

			txn, err := service.UseBalance(context.Background(), tc.userID, tc.accountNumber, tc.amount)
			tc.checkResponse(t, txn, err)
		})
	}
}

func TestCancelBalance(t *testing.T) {
	userID := int64(10)
	account := testAccount(1, userID, 800)
	amount := int64(200)

	original := domain.Transaction{
		ID:            1,
		TransactionID: randompkg.HexString(32),
		Type:          domain.TxnTypeUse,
		Result:        domain.TxnResultSuccess,
		AccountID:     account.ID,
		AccountNumber: account.AccountNumber,
		Amount:        amount,
		TransactedAt:  time.Now().Add(-time.Hour),
	}

	expired := original
	expired.TransactedAt = time.Now().Add(-366 * 24 * time.Hour)

	testCases := []struct {
		name          string
		transactionID string
		amount        int64
		buildStubs    func(repo *MockRepo, accountRepo *MockAccountRepo, locker *MockAccountLocker)
		checkResponse func(t *testing.T, txn domain.Transaction, err error)
	}{
		{
			name:          "OK",
			transactionID: original.TransactionID,
			amount:        amount,
			buildStubs: func(repo *MockRepo, accountRepo *MockAccountRepo, locker *MockAccountLocker) {
				passthroughLock(locker, account.AccountNumber)

				repo.EXPECT().GetByTransactionID(gomock.Any(), gomock.Eq(original.TransactionID)).
					Times(1).
					Return(original, nil)

				accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Eq(account.AccountNumber)).
					Times(1).
					Return(account, nil)

				repo.EXPECT().
					MutateBalance(gomock.Any(), gomock.Eq(account.ID), gomock.Eq(int64(1000)), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, _ int64, newBalance int64, arg domain.CreateTransactionParams) (domain.Account, domain.Transaction, error) {
						require.Equal(t, domain.TxnTypeCancel, arg.Type)
						require.Equal(t, domain.TxnResultSuccess, arg.Result)
						require.Equal(t, newBalance, arg.BalanceSnapshot)
						require.NotEqual(t, original.TransactionID, arg.TransactionID)

						return domain.Account{}, domain.Transaction{
							TransactionID:   arg.TransactionID,
							Type:            arg.Type,
							Result:          arg.Result,
							Amount:          arg.Amount,
							BalanceSnapshot: arg.BalanceSnapshot,
						}, nil
					})
			},
			checkResponse: func(t *testing.T, txn domain.Transaction, err error) {
				require.NoError(t, err)
				require.Equal(t, domain.TxnTypeCancel, txn.Type)
				require.Equal(t, int64(1000), txn.BalanceSnapshot)
			},
		},
		{
			name:          "TransactionNotFound",
			transactionID: original.TransactionID,
			amount:        amount,
			buildStubs: func(repo *MockRepo, accountRepo *MockAccountRepo, locker *MockAccountLocker) {
				passthroughLock(locker, account.AccountNumber)

				repo.EXPECT().GetByTransactionID(gomock.Any(), gomock.Eq(original.TransactionID)).
					Times(1).
					Return(domain.Transaction{}, domain.ErrTransactionNotFound)

				accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Any()).Times(0)
				repo.EXPECT().MutateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, txn domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrTransactionNotFound)
			},
		},
		{
			name:          "PartialCancelLogsFailedEntry",
			transactionID: original.TransactionID,
			amount:        amount - 100,
			buildStubs: func(repo *MockRepo, accountRepo *MockAccountRepo, locker *MockAccountLocker) {
				passthroughLock(locker, account.AccountNumber)

				repo.EXPECT().GetByTransactionID(gomock.Any(), gomock.Eq(original.TransactionID)).
					Times(1).
					Return(original, nil)

				accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Eq(account.AccountNumber)).
					Times(1).
					Return(account, nil)

				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(_ context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
						require.Equal(t, domain.TxnTypeCancel, arg.Type)
						require.Equal(t, domain.TxnResultFail, arg.Result)
						require.Equal(t, account.Balance, arg.BalanceSnapshot)

						return domain.Transaction{}, nil
					})

				repo.EXPECT().MutateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, txn domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrCancelMustBeFull)
			},
		},
		{
			name:          "ReversalWindowExpired",
			transactionID: expired.TransactionID,
			amount:        amount,
			buildStubs: func(repo *MockRepo, accountRepo *MockAccountRepo, locker *MockAccountLocker) {
				passthroughLock(locker, account.AccountNumber)

				repo.EXPECT().GetByTransactionID(gomock.Any(), gomock.Eq(expired.TransactionID)).
					Times(1).
					Return(expired, nil)

				accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Eq(account.AccountNumber)).
					Times(1).
					Return(account, nil)

				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Times(1).
					Return(domain.Transaction{}, nil)

				repo.EXPECT().MutateBalance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, txn domain.Transaction, err error) {
				require.ErrorIs(t, err, domain.ErrReversalWindowExpired)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := NewMockRepo(ctrl)
			accountRepo := NewMockAccountRepo(ctrl)
			ownerRepo := NewMockOwnerRepo(ctrl)
			locker := NewMockAccountLocker(ctrl)

			tc.buildStubs(repo, accountRepo, locker)

			service := New(repo, accountRepo, ownerRepo, locker)

			txn, err := service.CancelBalance(context.Background(), tc.transactionID, account.AccountNumber, tc.amount)
			tc.checkResponse(t, txn, err)
		})
	}
}

func TestLogFailedUse(t *testing.T) {
	account := testAccount(1, 10, 1000)
	amount := int64(200)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	accountRepo := NewMockAccountRepo(ctrl)
	ownerRepo := NewMockOwnerRepo(ctrl)
	locker := NewMockAccountLocker(ctrl)

	accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Eq(account.AccountNumber)).
		Times(1).
		Return(account, nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
			require.Equal(t, domain.TxnTypeUse, arg.Type)
			require.Equal(t, domain.TxnResultFail, arg.Result)
			require.Equal(t, account.Balance, arg.BalanceSnapshot)
			require.Equal(t, amount, arg.Amount)

			return domain.Transaction{}, nil
		})

	// No lock is taken for failure logging.
	locker.EXPECT().WithLock(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	service := New(repo, accountRepo, ownerRepo, locker)

	err := service.LogFailedUse(context.Background(), account.AccountNumber, amount)
	require.NoError(t, err)
}

func TestLogFailedCancel(t *testing.T) {
	account := testAccount(1, 10, 1000)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	accountRepo := NewMockAccountRepo(ctrl)
	ownerRepo := NewMockOwnerRepo(ctrl)
	locker := NewMockAccountLocker(ctrl)

	accountRepo.EXPECT().GetByNumber(gomock.Any(), gomock.Eq(account.AccountNumber)).
		Times(1).
		Return(account, nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(_ context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
			require.Equal(t, domain.TxnTypeCancel, arg.Type)
			require.Equal(t, domain.TxnResultFail, arg.Result)

			return domain.Transaction{}, nil
		})

	service := New(repo, accountRepo, ownerRepo, locker)

	err := service.LogFailedCancel(context.Background(), account.AccountNumber, 200)
	require.NoError(t, err)
}

func TestGet(t *testing.T) {
	txn := domain.Transaction{
		ID:              1,
		TransactionID:   randompkg.HexString(32),
		Type:            domain.TxnTypeUse,
		Result:          domain.TxnResultSuccess,
		AccountID:       1,
		Amount:          200,
		BalanceSnapshot: 800,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepo(ctrl)
	accountRepo := NewMockAccountRepo(ctrl)
	ownerRepo := NewMockOwnerRepo(ctrl)
	locker := NewMockAccountLocker(ctrl)

	repo.EXPECT().GetByTransactionID(gomock.Any(), gomock.Eq(txn.TransactionID)).
		Times(2).
		Return(txn, nil)

	repo.EXPECT().GetByTransactionID(gomock.Any(), gomock.Eq("unknown")).
		Times(1).
		Return(domain.Transaction{}, domain.ErrTransactionNotFound)

	service := New(repo, accountRepo, ownerRepo, locker)

	// Querying the same id twice returns identical ledger data.
	first, err := service.Get(context.Background(), txn.TransactionID)
	require.NoError(t, err)

	second, err := service.Get(context.Background(), txn.TransactionID)
	require.NoError(t, err)
	require.Equal(t, first, second)

	_, err = service.Get(context.Background(), "unknown")
	require.ErrorIs(t, err, domain.ErrTransactionNotFound)
}
