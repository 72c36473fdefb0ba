package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cartera/internal/domain"
)

// PendingBalanceUseCase is the read-only query layer over increasing
// events and persisted allocation records. It never writes.
type PendingBalanceUseCase struct {
	documentRepo   DocumentRepository
	accountRepo    AccountRepository
	configRepo     ClassifierConfigRepository
	allocationRepo AllocationRepository
}

// NewPendingBalanceUseCase creates a new PendingBalanceUseCase.
func NewPendingBalanceUseCase(
	documentRepo DocumentRepository,
	accountRepo AccountRepository,
	configRepo ClassifierConfigRepository,
	allocationRepo AllocationRepository,
) *PendingBalanceUseCase {
	return &PendingBalanceUseCase{
		documentRepo:   documentRepo,
		accountRepo:    accountRepo,
		configRepo:     configRepo,
		allocationRepo: allocationRepo,
	}
}

// PendingInvoicesInput scopes a pending-balance query. SubUnitID and AsOf
// are optional; AsOf counts only allocations whose payment is dated on or
// before it, supporting "balance as of a past date".
type PendingInvoicesInput struct {
	TenantID       string
	CounterpartyID string
	Role           domain.BalanceRole
	SubUnitID      string
	AsOf           *time.Time
}

// PendingInvoices returns each increasing event that still has an
// unallocated remainder. A negative remainder means the persisted
// allocations violate the engine invariant and is surfaced as
// domain.ErrOverAllocation, never clamped.
func (uc *PendingBalanceUseCase) PendingInvoices(ctx context.Context, input PendingInvoicesInput) ([]domain.PendingInvoice, error) {
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	cfg, err := uc.configRepo.Get(ctx, input.TenantID)
	if err != nil {
		return nil, fmt.Errorf("load classifier config: %w", err)
	}

	documents, err := uc.documentRepo.ListByCounterparty(ctx, input.TenantID, input.CounterpartyID)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	accounts, err := uc.accountRepo.GetByIDs(ctx, input.TenantID, cfg.CandidateAccountIDs(input.Role))
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}

	set := ClassifyAccounts(cfg, accounts, input.Role)
	if set.Empty() {
		return []domain.PendingInvoice{}, nil
	}

	events := BuildEventStream(documents, set)

	paymentDates := make(map[string]time.Time, len(events))
	for _, event := range events {
		if event.Kind == domain.ImpactDecreasing {
			paymentDates[event.DocumentID] = event.Date
		}
	}

	applied := make(map[string]decimal.Decimal)

	for offset := 0; ; offset += allocationPageSize {
		records, err := uc.allocationRepo.ListByCounterparty(
			ctx, input.TenantID, input.CounterpartyID, input.Role, allocationPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("load allocations: %w", err)
		}

		for _, record := range records {
			if input.AsOf != nil {
				if date, ok := paymentDates[record.PaymentDocumentID]; ok && date.After(*input.AsOf) {
					continue
				}
			}

			applied[record.InvoiceDocumentID] = applied[record.InvoiceDocumentID].Add(record.Amount)
		}

		if len(records) < allocationPageSize {
			break
		}
	}

	pending := make([]domain.PendingInvoice, 0, len(events))

	for _, event := range events {
		if event.Kind != domain.ImpactIncreasing {
			continue
		}

		if input.SubUnitID != "" && event.SubUnitID != input.SubUnitID {
			continue
		}

		appliedAmount := applied[event.DocumentID]
		remaining := event.Amount.Sub(appliedAmount)

		if remaining.IsNegative() {
			return nil, fmt.Errorf("invoice %s: applied %s of %s: %w",
				event.DocumentID, appliedAmount.String(), event.Amount.String(), domain.ErrOverAllocation)
		}

		if remaining.IsZero() {
			continue
		}

		pending = append(pending, domain.PendingInvoice{
			DocumentID: event.DocumentID,
			Date:       event.Date,
			SubUnitID:  event.SubUnitID,
			Total:      event.Amount,
			Applied:    appliedAmount,
			Remaining:  remaining,
		})
	}

	return pending, nil
}

// ListAllocationsInput scopes a statement-of-account listing.
type ListAllocationsInput struct {
	TenantID       string
	CounterpartyID string
	Role           domain.BalanceRole
	Limit          int
	Offset         int
}

// ListAllocations returns the persisted allocation records for a
// counterparty, for statement and audit consumers.
func (uc *PendingBalanceUseCase) ListAllocations(ctx context.Context, input ListAllocationsInput) ([]*domain.AllocationRecord, error) {
	if !input.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.allocationRepo.ListByCounterparty(ctx, input.TenantID, input.CounterpartyID, input.Role, limit, offset)
}
