// Package lockpkg provides a distributed per-account lease lock backed by redis.
//
// The lock serializes balance mutations on one account across all service
// instances. It is a pure mutual exclusion primitive: the lease expires on
// its own if the holder crashes mid critical section.
package lockpkg

import (
	"context"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/accountd/accountd/internal/domain"
)

const (
	keyPrefix  = "account-lock:"
	retryDelay = 250 * time.Millisecond

	// DefaultWaitTimeout bounds how long a caller blocks trying to acquire.
	DefaultWaitTimeout = time.Second
	// DefaultLeaseTime bounds how long a lock is held before automatic expiry.
	DefaultLeaseTime = 15 * time.Second
)

// Key derives the lock resource key for an account number. Callers
// contending for the same account serialize; different accounts never
// block each other.
func Key(accountNumber string) string {
	return keyPrefix + accountNumber
}

// Locker acquires and releases per-account lease locks.
type Locker struct {
	rs          *redsync.Redsync
	waitTimeout time.Duration
	leaseTime   time.Duration
}

// New returns a Locker over the given redis client. Non-positive
// durations fall back to the defaults.
func New(client redis.UniversalClient, waitTimeout, leaseTime time.Duration) *Locker {
	if waitTimeout <= 0 {
		waitTimeout = DefaultWaitTimeout
	}

	if leaseTime <= 0 {
		leaseTime = DefaultLeaseTime
	}

	return &Locker{
		rs:          redsync.New(goredis.NewPool(client)),
		waitTimeout: waitTimeout,
		leaseTime:   leaseTime,
	}
}

// Handle represents one successful acquisition. Release must act on the
// exact handle returned by Acquire.
type Handle struct {
	mutex *redsync.Mutex
}

// Acquire blocks up to the wait timeout trying to take the account lock.
// Any acquisition failure is returned as domain.ErrLockAcquisitionFailed
// so callers can treat it as retryable and distinct from business errors.
func (l *Locker) Acquire(ctx context.Context, accountNumber string) (*Handle, error) {
	log := zerolog.Ctx(ctx)

	tries := int(l.waitTimeout / retryDelay)
	if tries < 1 {
		tries = 1
	}

	mutex := l.rs.NewMutex(Key(accountNumber),
		redsync.WithExpiry(l.leaseTime),
		redsync.WithTries(tries),
		redsync.WithRetryDelay(retryDelay),
	)

	if err := mutex.LockContext(ctx); err != nil {
		log.Error().Err(err).Str("account_number", accountNumber).Msg("lock acquisition failed")
		return nil, domain.ErrLockAcquisitionFailed
	}

	return &Handle{mutex: mutex}, nil
}

// Release releases the lock. Release failures never propagate: the
// critical section already completed and the lease expires on its own,
// so the error is only logged.
func (h *Handle) Release(ctx context.Context) {
	log := zerolog.Ctx(ctx)

	ok, err := h.mutex.UnlockContext(ctx)
	if err != nil {
		log.Error().Err(err).Msg("lock release failed")
		return
	}

	if !ok {
		log.Warn().Msg("lock was not held or already expired")
	}
}

// WithLock runs fn while holding the account lock, releasing it on every
// exit path. Business code stays free of locking calls.
func (l *Locker) WithLock(ctx context.Context, accountNumber string, fn func(ctx context.Context) error) error {
	handle, err := l.Acquire(ctx, accountNumber)
	if err != nil {
		return err
	}
	defer handle.Release(ctx)

	return fn(ctx)
}
