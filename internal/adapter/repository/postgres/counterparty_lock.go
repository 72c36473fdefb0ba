package postgres

import (
	"context"

	"github.com/iho/cartera/internal/domain"
	"github.com/iho/cartera/internal/usecase"
)

const tryAdvisoryLock = `SELECT pg_try_advisory_xact_lock(hashtext($1))`

// AdvisoryLocker implements usecase.CounterpartyLocker with a
// transaction-scoped postgres advisory lock. The lock is released
// automatically at commit or rollback, so it is held for exactly the
// purge-through-commit window the recalculation needs.
type AdvisoryLocker struct{}

// NewAdvisoryLocker creates a new AdvisoryLocker.
func NewAdvisoryLocker() *AdvisoryLocker {
	return &AdvisoryLocker{}
}

// TryLock attempts the counterparty-scoped lock without blocking.
func (l *AdvisoryLocker) TryLock(ctx context.Context, tx usecase.Transaction, tenantID, counterpartyID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	var acquired bool
	if err := pgxTx.QueryRow(ctx, tryAdvisoryLock, tenantID+"/"+counterpartyID).Scan(&acquired); err != nil {
		return err
	}

	if !acquired {
		return domain.ErrCounterpartyLocked
	}

	return nil
}
