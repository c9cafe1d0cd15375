// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/accountd/accountd/internal/domain"
	"github.com/accountd/accountd/pkg/dbpkg"
	"github.com/accountd/accountd/pkg/errorspkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const accountColumns = `id, account_number, owner_id, status, balance, registered_at, closed_at`

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.AccountNumber,
		&a.OwnerID,
		&a.Status,
		&a.Balance,
		&a.RegisteredAt,
		&a.ClosedAt,
	)

	return a, err
}

const createQuery = `
INSERT INTO
    accounts (account_number, owner_id, status, balance)
VALUES
    ($1, $2, $3, $4)
RETURNING ` + accountColumns

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.AccountNumber, arg.OwnerID, domain.StatusInUse, arg.Balance)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_owner_id_fkey" {
				return a, domain.ErrOwnerNotFound
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT ` + accountColumns + `
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByNumberQuery = `
SELECT ` + accountColumns + `
FROM accounts
WHERE account_number = $1
`

// GetByNumber returns the account with the given account number.
func (r *RepoPGS) GetByNumber(ctx context.Context, accountNumber string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getByNumberQuery, accountNumber))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const updateBalanceQuery = `
UPDATE accounts
SET balance = $1
WHERE id = $2
RETURNING ` + accountColumns

// UpdateBalance sets the account's balance and returns the changed account.
//
// The caller must hold the account lock; the balance check constraint is
// only a backstop against overdraft.
func (r *RepoPGS) UpdateBalance(ctx context.Context, id int64, balance int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, updateBalanceQuery, balance, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_balance_check" {
				return a, domain.ErrAmountExceedsBalance
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const closeQuery = `
UPDATE accounts
SET status = $1, closed_at = now()
WHERE id = $2
RETURNING ` + accountColumns

// Close marks the account unregistered with the closure timestamp.
func (r *RepoPGS) Close(ctx context.Context, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, closeQuery, domain.StatusUnregistered, id))
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const countByOwnerQuery = `
SELECT count(*) FROM accounts
WHERE owner_id = $1
`

// CountByOwner returns how many accounts, open or closed, the owner has.
func (r *RepoPGS) CountByOwner(ctx context.Context, ownerID int64) (int32, error) {
	l := zerolog.Ctx(ctx)

	var count int32

	err := r.db.QueryRowContext(ctx, countByOwnerQuery, ownerID).Scan(&count)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return count, nil
}

const latestNumberQuery = `
SELECT account_number FROM accounts
ORDER BY account_number DESC
LIMIT 1
`

// LatestNumber returns the highest allocated account number.
// It returns domain.ErrAccountNotFound when no account exists yet.
func (r *RepoPGS) LatestNumber(ctx context.Context) (string, error) {
	l := zerolog.Ctx(ctx)

	var number string

	err := r.db.QueryRowContext(ctx, latestNumberQuery).Scan(&number)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return "", errorspkg.ErrInternal
	}

	return number, nil
}

const listByOwnerQuery = `
SELECT ` + accountColumns + `
FROM accounts
WHERE owner_id = $1
ORDER BY id
`

// ListByOwner returns all accounts of the given owner.
func (r *RepoPGS) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listByOwnerQuery, ownerID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account
		if err := rows.Scan(
			&a.ID,
			&a.AccountNumber,
			&a.OwnerID,
			&a.Status,
			&a.Balance,
			&a.RegisteredAt,
			&a.ClosedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
