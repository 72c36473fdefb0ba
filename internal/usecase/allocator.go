package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iho/cartera/internal/domain"
)

// openInvoice is an increasing event with its mutable remaining balance
// during one allocation pass.
type openInvoice struct {
	event     domain.ClassifiedEvent
	remaining decimal.Decimal
}

// Allocate matches decreasing events (payments) against increasing events
// (invoices) for one counterparty. The input must already be ordered by
// (date, document id); that ordering is the tie-break.
//
// Matching is greedy FIFO in two phases per payment: invoices sharing the
// payment's sub-unit first, then any invoice regardless of sub-unit. A
// payment left with a remainder after both phases is an advance balance,
// not an error. The matcher is deliberately not an optimal assignment:
// every allocation must be explainable as "oldest debt first, same unit
// preferred".
//
// Pure and deterministic: identical input order always yields an
// identical allocation sequence.
func Allocate(events []domain.ClassifiedEvent) []domain.Allocation {
	var invoices []*openInvoice

	var payments []domain.ClassifiedEvent

	for _, event := range events {
		switch event.Kind {
		case domain.ImpactIncreasing:
			invoices = append(invoices, &openInvoice{event: event, remaining: event.Amount})
		case domain.ImpactDecreasing:
			payments = append(payments, event)
		}
	}

	var allocations []domain.Allocation

	for _, payment := range payments {
		remaining := payment.Amount

		if payment.SubUnitID != "" {
			allocations, remaining = applyPhase(allocations, invoices, payment, remaining, payment.SubUnitID)
		}

		allocations, _ = applyPhase(allocations, invoices, payment, remaining, "")
	}

	return allocations
}

// applyPhase walks invoices in chronological order and applies the
// payment remainder to each open invoice, restricted to one sub-unit when
// subUnitID is non-empty.
func applyPhase(
	allocations []domain.Allocation,
	invoices []*openInvoice,
	payment domain.ClassifiedEvent,
	remaining decimal.Decimal,
	subUnitID string,
) ([]domain.Allocation, decimal.Decimal) {
	for _, invoice := range invoices {
		if !remaining.IsPositive() {
			break
		}

		if subUnitID != "" && invoice.event.SubUnitID != subUnitID {
			continue
		}

		if !invoice.remaining.IsPositive() {
			continue
		}

		applied := decimal.Min(remaining, invoice.remaining)

		allocations = append(allocations, domain.Allocation{
			InvoiceDocumentID: invoice.event.DocumentID,
			PaymentDocumentID: payment.DocumentID,
			Amount:            applied,
		})

		invoice.remaining = invoice.remaining.Sub(applied)
		remaining = remaining.Sub(applied)
	}

	return allocations, remaining
}

// VerifyAllocations asserts the core invariant: the sum allocated to each
// invoice never exceeds its increasing impact. Unreachable for output of
// Allocate, checked defensively before anything is persisted.
func VerifyAllocations(events []domain.ClassifiedEvent, allocations []domain.Allocation) error {
	totals := make(map[string]decimal.Decimal, len(events))
	for _, event := range events {
		if event.Kind == domain.ImpactIncreasing {
			totals[event.DocumentID] = event.Amount
		}
	}

	applied := make(map[string]decimal.Decimal, len(totals))
	for _, allocation := range allocations {
		applied[allocation.InvoiceDocumentID] = applied[allocation.InvoiceDocumentID].Add(allocation.Amount)
	}

	for invoiceID, sum := range applied {
		total, ok := totals[invoiceID]
		if !ok || sum.GreaterThan(total) {
			return fmt.Errorf("invoice %s: applied %s of %s: %w",
				invoiceID, sum.String(), total.String(), domain.ErrOverAllocation)
		}
	}

	return nil
}
