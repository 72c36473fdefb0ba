package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/iho/cartera/internal/domain"
)

// RecalculationUseCase is the only mutating entry point of the engine: it
// atomically rebuilds every allocation record for one counterparty.
type RecalculationUseCase struct {
	txManager      TransactionManager
	documentRepo   DocumentRepository
	accountRepo    AccountRepository
	configRepo     ClassifierConfigRepository
	allocationRepo AllocationRepository
	locker         CounterpartyLocker
	idGen          IDGenerator
}

// NewRecalculationUseCase creates a new RecalculationUseCase.
func NewRecalculationUseCase(
	txManager TransactionManager,
	documentRepo DocumentRepository,
	accountRepo AccountRepository,
	configRepo ClassifierConfigRepository,
	allocationRepo AllocationRepository,
	locker CounterpartyLocker,
	idGen IDGenerator,
) *RecalculationUseCase {
	return &RecalculationUseCase{
		txManager:      txManager,
		documentRepo:   documentRepo,
		accountRepo:    accountRepo,
		configRepo:     configRepo,
		allocationRepo: allocationRepo,
		locker:         locker,
		idGen:          idGen,
	}
}

// RecalculationSummary reports counts for observability. It carries no
// business meaning beyond logging.
type RecalculationSummary struct {
	TenantID           string
	CounterpartyID     string
	DocumentsScanned   int
	ReceivableEvents   int
	PayableEvents      int
	AllocationsCreated int
	AllocationsPurged  int64
	CompletedAt        time.Time
}

// Recalculate wipes and rebuilds the counterparty's allocations inside a
// single transaction. The counterparty-scoped advisory lock is taken
// before the purge and held through commit; a concurrent run surfaces
// domain.ErrCounterpartyLocked. Any failure rolls back the whole unit of
// work, so partial allocation sets are never visible.
func (uc *RecalculationUseCase) Recalculate(ctx context.Context, tenantID, counterpartyID string) (*RecalculationSummary, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin recalculation: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := uc.locker.TryLock(ctx, tx, tenantID, counterpartyID); err != nil {
		return nil, err
	}

	purged, err := uc.allocationRepo.DeleteByCounterparty(ctx, tx, tenantID, counterpartyID)
	if err != nil {
		return nil, fmt.Errorf("purge allocations: %w", err)
	}

	cfg, err := uc.configRepo.GetTx(ctx, tx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("load classifier config: %w", err)
	}

	documents, err := uc.documentRepo.ListByCounterpartyTx(ctx, tx, tenantID, counterpartyID)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	accounts, err := uc.accountRepo.GetByIDsTx(ctx, tx, tenantID, cfg.AllCandidateAccountIDs())
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	summary := &RecalculationSummary{
		TenantID:          tenantID,
		CounterpartyID:    counterpartyID,
		DocumentsScanned:  len(documents),
		AllocationsPurged: purged,
	}

	now := time.Now().UTC()

	// Receivable and payable are independent passes over independent
	// account sets; a document may appear in both.
	for _, role := range []domain.BalanceRole{domain.RoleReceivable, domain.RolePayable} {
		set := ClassifyAccounts(cfg, accounts, role)
		if set.Empty() {
			// Nothing configured for this role: legitimate tenant state,
			// the pass yields an empty allocation set.
			continue
		}

		events := BuildEventStream(documents, set)
		switch role {
		case domain.RoleReceivable:
			summary.ReceivableEvents = len(events)
		case domain.RolePayable:
			summary.PayableEvents = len(events)
		}

		allocations := Allocate(events)

		if err := VerifyAllocations(events, allocations); err != nil {
			return nil, err
		}

		for _, allocation := range allocations {
			record := &domain.AllocationRecord{
				ID:                uc.idGen.Generate(),
				TenantID:          tenantID,
				CounterpartyID:    counterpartyID,
				Role:              role,
				InvoiceDocumentID: allocation.InvoiceDocumentID,
				PaymentDocumentID: allocation.PaymentDocumentID,
				Amount:            allocation.Amount,
				CreatedAt:         now,
			}

			if err := record.Validate(); err != nil {
				return nil, fmt.Errorf("allocation %s->%s: %w",
					record.PaymentDocumentID, record.InvoiceDocumentID, err)
			}

			if err := uc.allocationRepo.Create(ctx, tx, record); err != nil {
				return nil, fmt.Errorf("persist allocation: %w", err)
			}
		}

		summary.AllocationsCreated += len(allocations)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit recalculation: %w", err)
	}

	summary.CompletedAt = time.Now().UTC()

	return summary, nil
}

// CounterpartyResult is the outcome of one counterparty in a bulk run.
type CounterpartyResult struct {
	CounterpartyID string
	Summary        *RecalculationSummary
	Err            error
}

// RecalculateMany runs Recalculate for each counterparty sequentially.
// Failures are isolated per counterparty: one failed rebuild rolls back
// only its own transaction and the run continues, which is what the
// background consistency job needs.
func (uc *RecalculationUseCase) RecalculateMany(ctx context.Context, tenantID string, counterpartyIDs []string) []CounterpartyResult {
	results := make([]CounterpartyResult, 0, len(counterpartyIDs))

	for _, counterpartyID := range counterpartyIDs {
		summary, err := uc.Recalculate(ctx, tenantID, counterpartyID)
		results = append(results, CounterpartyResult{
			CounterpartyID: counterpartyID,
			Summary:        summary,
			Err:            err,
		})
	}

	return results
}
