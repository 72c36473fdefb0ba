package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/iho/cartera/internal/domain"
	"github.com/iho/cartera/internal/usecase"
)

// MockDocumentRepository is a mock implementation of DocumentRepository.
type MockDocumentRepository struct {
	mu        sync.RWMutex
	documents []*domain.Document

	ListByCounterpartyFunc   func(ctx context.Context, tenantID, counterpartyID string) ([]*domain.Document, error)
	ListByCounterpartyTxFunc func(ctx context.Context, tx usecase.Transaction, tenantID, counterpartyID string) ([]*domain.Document, error)
}

func NewMockDocumentRepository() *MockDocumentRepository {
	return &MockDocumentRepository{}
}

// Add seeds a document into the mock store.
func (m *MockDocumentRepository) Add(doc *domain.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents = append(m.documents, doc)
}

func (m *MockDocumentRepository) ListByCounterparty(ctx context.Context, tenantID, counterpartyID string) ([]*domain.Document, error) {
	if m.ListByCounterpartyFunc != nil {
		return m.ListByCounterpartyFunc(ctx, tenantID, counterpartyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var docs []*domain.Document
	for _, doc := range m.documents {
		if doc.TenantID == tenantID && doc.CounterpartyID == counterpartyID {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (m *MockDocumentRepository) ListByCounterpartyTx(ctx context.Context, tx usecase.Transaction, tenantID, counterpartyID string) ([]*domain.Document, error) {
	if m.ListByCounterpartyTxFunc != nil {
		return m.ListByCounterpartyTxFunc(ctx, tx, tenantID, counterpartyID)
	}
	return m.ListByCounterparty(ctx, tenantID, counterpartyID)
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account

	GetByIDsFunc   func(ctx context.Context, tenantID string, ids []string) (map[string]domain.Account, error)
	GetByIDsTxFunc func(ctx context.Context, tx usecase.Transaction, tenantID string, ids []string) (map[string]domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]domain.Account),
	}
}

// Add seeds an account into the mock store.
func (m *MockAccountRepository) Add(account domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
}

func (m *MockAccountRepository) GetByIDs(ctx context.Context, tenantID string, ids []string) (map[string]domain.Account, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, tenantID, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string]domain.Account)
	for _, id := range ids {
		if acc, ok := m.accounts[id]; ok && acc.TenantID == tenantID {
			result[id] = acc
		}
	}
	return result, nil
}

func (m *MockAccountRepository) GetByIDsTx(ctx context.Context, tx usecase.Transaction, tenantID string, ids []string) (map[string]domain.Account, error) {
	if m.GetByIDsTxFunc != nil {
		return m.GetByIDsTxFunc(ctx, tx, tenantID, ids)
	}
	return m.GetByIDs(ctx, tenantID, ids)
}

// MockClassifierConfigRepository is a mock implementation of ClassifierConfigRepository.
type MockClassifierConfigRepository struct {
	mu      sync.RWMutex
	configs map[string]*domain.ClassifierConfig

	GetFunc   func(ctx context.Context, tenantID string) (*domain.ClassifierConfig, error)
	GetTxFunc func(ctx context.Context, tx usecase.Transaction, tenantID string) (*domain.ClassifierConfig, error)
}

func NewMockClassifierConfigRepository() *MockClassifierConfigRepository {
	return &MockClassifierConfigRepository{
		configs: make(map[string]*domain.ClassifierConfig),
	}
}

// Set seeds a tenant configuration into the mock store.
func (m *MockClassifierConfigRepository) Set(cfg *domain.ClassifierConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configs[cfg.TenantID] = cfg
}

func (m *MockClassifierConfigRepository) Get(ctx context.Context, tenantID string) (*domain.ClassifierConfig, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, tenantID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if cfg, ok := m.configs[tenantID]; ok {
		return cfg, nil
	}
	return nil, domain.ErrConfigNotFound
}

func (m *MockClassifierConfigRepository) GetTx(ctx context.Context, tx usecase.Transaction, tenantID string) (*domain.ClassifierConfig, error) {
	if m.GetTxFunc != nil {
		return m.GetTxFunc(ctx, tx, tenantID)
	}
	return m.Get(ctx, tenantID)
}

// MockAllocationRepository is a mock implementation of AllocationRepository.
type MockAllocationRepository struct {
	mu      sync.RWMutex
	records []*domain.AllocationRecord

	CreateFunc               func(ctx context.Context, tx usecase.Transaction, record *domain.AllocationRecord) error
	DeleteByCounterpartyFunc func(ctx context.Context, tx usecase.Transaction, tenantID, counterpartyID string) (int64, error)
	ListByCounterpartyFunc   func(ctx context.Context, tenantID, counterpartyID string, role domain.BalanceRole, limit, offset int) ([]*domain.AllocationRecord, error)
}

func NewMockAllocationRepository() *MockAllocationRepository {
	return &MockAllocationRepository{}
}

// Records returns a snapshot of stored records.
func (m *MockAllocationRepository) Records() []*domain.AllocationRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.AllocationRecord, len(m.records))
	copy(out, m.records)
	return out
}

// Seed stores a record directly, bypassing Create.
func (m *MockAllocationRepository) Seed(record *domain.AllocationRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
}

func (m *MockAllocationRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.AllocationRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *MockAllocationRepository) DeleteByCounterparty(ctx context.Context, tx usecase.Transaction, tenantID, counterpartyID string) (int64, error) {
	if m.DeleteByCounterpartyFunc != nil {
		return m.DeleteByCounterpartyFunc(ctx, tx, tenantID, counterpartyID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []*domain.AllocationRecord
	var purged int64
	for _, record := range m.records {
		if record.TenantID == tenantID && record.CounterpartyID == counterpartyID {
			purged++
			continue
		}
		kept = append(kept, record)
	}
	m.records = kept
	return purged, nil
}

func (m *MockAllocationRepository) ListByCounterparty(ctx context.Context, tenantID, counterpartyID string, role domain.BalanceRole, limit, offset int) ([]*domain.AllocationRecord, error) {
	if m.ListByCounterpartyFunc != nil {
		return m.ListByCounterpartyFunc(ctx, tenantID, counterpartyID, role, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matched []*domain.AllocationRecord
	for _, record := range m.records {
		if record.TenantID == tenantID && record.CounterpartyID == counterpartyID && record.Role == role {
			matched = append(matched, record)
		}
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// MockCounterpartyLocker is a mock implementation of CounterpartyLocker.
type MockCounterpartyLocker struct {
	TryLockFunc func(ctx context.Context, tx usecase.Transaction, tenantID, counterpartyID string) error
}

func NewMockCounterpartyLocker() *MockCounterpartyLocker {
	return &MockCounterpartyLocker{}
}

func (m *MockCounterpartyLocker) TryLock(ctx context.Context, tx usecase.Transaction, tenantID, counterpartyID string) error {
	if m.TryLockFunc != nil {
		return m.TryLockFunc(ctx, tx, tenantID, counterpartyID)
	}
	return nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	mu         sync.Mutex
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	mu           sync.Mutex
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockIDGenerator is a mock implementation of IDGenerator producing
// sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return "id-" + strconv.Itoa(m.next)
}

// MockRetrier is a mock implementation of Retrier. The default retries
// immediately, without backoff, up to three reruns.
type MockRetrier struct {
	mu       sync.Mutex
	attempts int

	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

// Attempts returns how many times operations ran.
func (m *MockRetrier) Attempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	var err error
	for i := 0; i < 4; i++ {
		m.mu.Lock()
		m.attempts++
		m.mu.Unlock()
		if err = operation(); err == nil {
			return nil
		}
	}
	return err
}

// MockIdempotencyStore is a mock implementation of IdempotencyStore.
type MockIdempotencyStore struct {
	mu     sync.Mutex
	values map[string][]byte

	CheckAndSetFunc func(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	UpdateFunc      func(ctx context.Context, key string, response []byte, ttl time.Duration) error
}

func NewMockIdempotencyStore() *MockIdempotencyStore {
	return &MockIdempotencyStore{
		values: make(map[string][]byte),
	}
}

func (m *MockIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if m.CheckAndSetFunc != nil {
		return m.CheckAndSetFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.values[key]; ok {
		return true, existing, nil
	}
	if response != nil {
		m.values[key] = response
	} else {
		m.values[key] = []byte("processing")
	}
	return false, nil, nil
}

func (m *MockIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, key, response, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = response
	return nil
}
