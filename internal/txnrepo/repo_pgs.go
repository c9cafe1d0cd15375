// Package txnrepo manages repository layer of the transaction ledger.
//
// Ledger entries are append-only: they are created exactly once per
// attempt and never updated or deleted.
package txnrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/accountd/accountd/internal/accountrepo"
	"github.com/accountd/accountd/internal/domain"
	"github.com/accountd/accountd/pkg/dbpkg"
	"github.com/accountd/accountd/pkg/errorspkg"
)

// RepoPGS facilitates transaction repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns transaction RepoPGS bound to an open transaction.
// A repo built this way cannot start transactions of its own, so
// MutateBalance is not supported on it.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewRepoPGS returns transaction RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{db: db, conn: db}
}

const txnColumns = `id, transaction_id, type, result, account_id, account_number, amount, balance_snapshot, transacted_at`

const createQuery = `
INSERT INTO
    transactions (transaction_id, type, result, account_id, account_number, amount, balance_snapshot)
VALUES
    ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + txnColumns

// Create appends a ledger entry and returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.TransactionID,
		arg.Type,
		arg.Result,
		arg.AccountID,
		arg.AccountNumber,
		arg.Amount,
		arg.BalanceSnapshot,
	)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.TransactionID,
		&t.Type,
		&t.Result,
		&t.AccountID,
		&t.AccountNumber,
		&t.Amount,
		&t.BalanceSnapshot,
		&t.TransactedAt,
	)
	if err != nil {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const getByTransactionIDQuery = `
SELECT ` + txnColumns + `
FROM transactions
WHERE transaction_id = $1
`

// GetByTransactionID returns the ledger entry with the given external transaction id.
func (r *RepoPGS) GetByTransactionID(ctx context.Context, transactionID string) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByTransactionIDQuery, transactionID)

	var t domain.Transaction

	err := row.Scan(
		&t.ID,
		&t.TransactionID,
		&t.Type,
		&t.Result,
		&t.AccountID,
		&t.AccountNumber,
		&t.Amount,
		&t.BalanceSnapshot,
		&t.TransactedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrTransactionNotFound
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

// MutateBalance sets the account balance and appends the matching SUCCESS
// ledger entry within a single database transaction. Either both are
// committed or neither is.
func (r *RepoPGS) MutateBalance(
	ctx context.Context,
	accountID int64,
	newBalance int64,
	arg domain.CreateTransactionParams,
) (domain.Account, domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	var (
		account domain.Account
		txn     domain.Transaction
	)

	if r.conn == nil {
		l.Error().Msg("mutate balance requires a repo with its own db connection")
		return account, txn, errorspkg.ErrInternal
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return account, txn, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	accountRepo := accountrepo.NewRepoPGS(tx)
	txnRepo := NewTxRepoPGS(tx)

	account, err = accountRepo.UpdateBalance(ctx, accountID, newBalance)
	if err != nil {
		return account, txn, err
	}

	txn, err = txnRepo.Create(ctx, arg)
	if err != nil {
		return account, txn, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return account, txn, errorspkg.ErrInternal
	}

	return account, txn, nil
}
