// Package helpers provides seeding functions for integration tests.
package helpers

import (
	"context"
	"testing"

	"github.com/accountd/accountd/internal/domain"
	"github.com/accountd/accountd/pkg/dbpkg"
	"github.com/accountd/accountd/pkg/randompkg"
)

// SeedOwner inserts a random owner and returns it.
func SeedOwner(t *testing.T, db dbpkg.SQLInterface) domain.Owner {
	t.Helper()

	const query = `
	INSERT INTO owners (name)
	VALUES ($1)
	RETURNING id, name, created_at`

	var o domain.Owner

	row := db.QueryRowContext(context.Background(), query, randompkg.Owner())
	if err := row.Scan(&o.ID, &o.Name, &o.CreatedAt); err != nil {
		t.Fatalf("owner seeding failed: %v", err)
	}

	return o
}

// SeedAccount inserts an open account for the owner with the given balance and returns it.
func SeedAccount(t *testing.T, db dbpkg.SQLInterface, ownerID, balance int64) domain.Account {
	t.Helper()

	const query = `
	INSERT INTO accounts (account_number, owner_id, status, balance)
	VALUES ($1, $2, $3, $4)
	RETURNING id, account_number, owner_id, status, balance, registered_at, closed_at`

	var a domain.Account

	row := db.QueryRowContext(context.Background(), query,
		randompkg.AccountNumber(), ownerID, domain.StatusInUse, balance)

	err := row.Scan(&a.ID, &a.AccountNumber, &a.OwnerID, &a.Status, &a.Balance, &a.RegisteredAt, &a.ClosedAt)
	if err != nil {
		t.Fatalf("account seeding failed: %v", err)
	}

	return a
}

// SeedTransaction appends a ledger entry for the account and returns it.
func SeedTransaction(t *testing.T, db dbpkg.SQLInterface, account domain.Account, amount int64) domain.Transaction {
	t.Helper()

	const query = `
	INSERT INTO transactions (transaction_id, type, result, account_id, account_number, amount, balance_snapshot)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, transaction_id, type, result, account_id, account_number, amount, balance_snapshot, transacted_at`

	var txn domain.Transaction

	row := db.QueryRowContext(context.Background(), query,
		randompkg.HexString(32),
		domain.TxnTypeUse,
		domain.TxnResultSuccess,
		account.ID,
		account.AccountNumber,
		amount,
		account.Balance-amount,
	)

	err := row.Scan(
		&txn.ID,
		&txn.TransactionID,
		&txn.Type,
		&txn.Result,
		&txn.AccountID,
		&txn.AccountNumber,
		&txn.Amount,
		&txn.BalanceSnapshot,
		&txn.TransactedAt,
	)
	if err != nil {
		t.Fatalf("transaction seeding failed: %v", err)
	}

	return txn
}
