// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrOwnerNotFound indicates that the owner of the account is not found.
	ErrOwnerNotFound = errors.New("owner not found")
	// ErrUserAccountMismatch indicates that the user does not own the account.
	ErrUserAccountMismatch = errors.New("user does not own the account")
	// ErrAccountAlreadyClosed indicates that the account is already unregistered.
	ErrAccountAlreadyClosed = errors.New("account already closed")
	// ErrAccountLimitExceeded indicates that the owner reached the maximum number of accounts.
	ErrAccountLimitExceeded = errors.New("account limit per user exceeded")
	// ErrBalanceNotEmpty indicates that the account cannot be closed with a non-zero balance.
	ErrBalanceNotEmpty = errors.New("balance not empty")
	// ErrInitialBalanceTooLow indicates that the initial balance is below the required minimum.
	ErrInitialBalanceTooLow = errors.New("initial balance too low")
)

// Status of an account. StatusUnregistered is terminal - no further mutation is permitted.
type Status string

// Account statuses.
const (
	StatusInUse        Status = "IN_USE"
	StatusUnregistered Status = "UNREGISTERED"
)

// FirstAccountNumber seeds account number allocation. Numbers are
// 10-digit decimal strings allocated sequentially.
const FirstAccountNumber = "1000000000"

// MaxAccountsPerOwner bounds how many accounts (open or closed) a single owner may have.
const MaxAccountsPerOwner = 10

// MinInitialBalance is the smallest balance an account can be opened with.
const MinInitialBalance = 100

// Account holds balance data for a single owner account.
// Balance is stored in minor currency units and never goes below zero.
type Account struct {
	ID            int64      `json:"id"`
	AccountNumber string     `json:"account_number"`
	OwnerID       int64      `json:"owner_id"`
	Status        Status     `json:"status"`
	Balance       int64      `json:"balance"`
	RegisteredAt  time.Time  `json:"registered_at"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
}

// CreateAccountParams is the input data to create an account.
type CreateAccountParams struct {
	AccountNumber string
	OwnerID       int64
	Balance       int64
}
