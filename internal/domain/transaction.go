package domain

import (
	"errors"
	"time"
)

var (
	// ErrTransactionNotFound indicates that the transaction is not found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrAmountExceedsBalance indicates that the account does not have sufficient balance.
	ErrAmountExceedsBalance = errors.New("amount exceeds balance")
	// ErrTransactionAccountMismatch indicates that the transaction belongs to another account.
	ErrTransactionAccountMismatch = errors.New("transaction does not belong to the account")
	// ErrCancelMustBeFull indicates a partial cancel attempt. Only full reversals are permitted.
	ErrCancelMustBeFull = errors.New("cancel amount must equal the original transaction amount")
	// ErrReversalWindowExpired indicates that the original transaction is too old to cancel.
	ErrReversalWindowExpired = errors.New("transaction is too old to cancel")
	// ErrLockAcquisitionFailed indicates that the account lock could not be acquired in time.
	// It is retryable, unlike business rule violations.
	ErrLockAcquisitionFailed = errors.New("account transaction lock acquisition failed")
)

// TxnType distinguishes debits from reversals.
type TxnType string

// Transaction types.
const (
	TxnTypeUse    TxnType = "USE"
	TxnTypeCancel TxnType = "CANCEL"
)

// TxnResult records whether an attempt succeeded.
type TxnResult string

// Transaction results.
const (
	TxnResultSuccess TxnResult = "SUCCESS"
	TxnResultFail    TxnResult = "FAIL"
)

// ReversalWindow is the maximum age of a transaction still eligible for cancellation.
const ReversalWindow = 365 * 24 * time.Hour

// Transaction is an immutable ledger entry recording one balance-affecting
// attempt, successful or failed. BalanceSnapshot holds the account balance
// after the mutation for SUCCESS entries and the unchanged balance for FAIL
// entries.
type Transaction struct {
	ID              int64     `json:"id"`
	TransactionID   string    `json:"transaction_id"`
	Type            TxnType   `json:"type"`
	Result          TxnResult `json:"result"`
	AccountID       int64     `json:"account_id"`
	AccountNumber   string    `json:"account_number"`
	Amount          int64     `json:"amount"`
	BalanceSnapshot int64     `json:"balance_snapshot"`
	TransactedAt    time.Time `json:"transacted_at"`
}

// CreateTransactionParams is the input data to append a ledger entry.
type CreateTransactionParams struct {
	TransactionID   string
	Type            TxnType
	Result          TxnResult
	AccountID       int64
	AccountNumber   string
	Amount          int64
	BalanceSnapshot int64
}
