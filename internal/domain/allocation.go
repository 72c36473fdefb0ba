package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allocation is one application of part or all of a payment against a
// specific invoice. It is the pure output of the allocation engine,
// before persistence decorates it with identity and scope.
type Allocation struct {
	InvoiceDocumentID string
	PaymentDocumentID string
	Amount            decimal.Decimal
}

// AllocationRecord is a persisted Allocation scoped to one tenant,
// counterparty and balance role. Records are always replaced in bulk by a
// recalculation, never updated in place.
type AllocationRecord struct {
	ID                string
	TenantID          string
	CounterpartyID    string
	Role              BalanceRole
	InvoiceDocumentID string
	PaymentDocumentID string
	Amount            decimal.Decimal
	CreatedAt         time.Time
}

// Validate checks the structural invariants of a record.
func (r *AllocationRecord) Validate() error {
	if !r.Role.Valid() {
		return ErrInvalidRole
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if r.InvoiceDocumentID == r.PaymentDocumentID {
		return ErrSameDocument
	}

	return nil
}

// PendingInvoice is one increasing event with its remaining unallocated
// amount, as reported by the pending-balance query.
type PendingInvoice struct {
	DocumentID string
	Date       time.Time
	SubUnitID  string
	Total      decimal.Decimal
	Applied    decimal.Decimal
	Remaining  decimal.Decimal
}
