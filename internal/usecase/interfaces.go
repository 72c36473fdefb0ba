package usecase

import (
	"context"
	"time"

	"github.com/iho/cartera/internal/domain"
)

// DocumentRepository defines read access to documents and their movement
// lines. Lines are always loaded eagerly; the engine never goes back to
// storage mid-algorithm.
type DocumentRepository interface {
	// ListByCounterparty returns the counterparty's non-voided documents
	// ordered by (date, id), lines included.
	ListByCounterparty(ctx context.Context, tenantID, counterpartyID string) ([]*domain.Document, error)
	// ListByCounterpartyTx is the same read inside a recalculation
	// transaction, so the whole run sees one consistent snapshot.
	ListByCounterpartyTx(ctx context.Context, tx Transaction, tenantID, counterpartyID string) ([]*domain.Document, error)
}

// AccountRepository defines read access to chart-of-accounts entries.
type AccountRepository interface {
	GetByIDs(ctx context.Context, tenantID string, ids []string) (map[string]domain.Account, error)
	GetByIDsTx(ctx context.Context, tx Transaction, tenantID string, ids []string) (map[string]domain.Account, error)
}

// ClassifierConfigRepository loads the tenant classifier configuration
// snapshot.
type ClassifierConfigRepository interface {
	Get(ctx context.Context, tenantID string) (*domain.ClassifierConfig, error)
	GetTx(ctx context.Context, tx Transaction, tenantID string) (*domain.ClassifierConfig, error)
}

// AllocationRepository defines data access for allocation records, the
// only entity this engine writes.
type AllocationRepository interface {
	Create(ctx context.Context, tx Transaction, record *domain.AllocationRecord) error
	// DeleteByCounterparty removes every record for the counterparty in
	// both roles and returns the purged count.
	DeleteByCounterparty(ctx context.Context, tx Transaction, tenantID, counterpartyID string) (int64, error)
	ListByCounterparty(ctx context.Context, tenantID, counterpartyID string, role domain.BalanceRole, limit, offset int) ([]*domain.AllocationRecord, error)
}

// CounterpartyLocker serializes recalculations for one counterparty.
// TryLock returns domain.ErrCounterpartyLocked when another recalculation
// holds the lock; the lock is released with the transaction.
type CounterpartyLocker interface {
	TryLock(ctx context.Context, tx Transaction, tenantID, counterpartyID string) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier reruns a failed unit of work when the failure is transient.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage for the HTTP boundary.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
