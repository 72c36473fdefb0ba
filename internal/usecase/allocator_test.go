package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/cartera/internal/domain"
	"github.com/iho/cartera/internal/usecase"
)

func event(id string, day int, kind domain.ImpactKind, amount, subUnit string) domain.ClassifiedEvent {
	return domain.ClassifiedEvent{
		DocumentID: id,
		Date:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day),
		SubUnitID:  subUnit,
		Role:       domain.RoleReceivable,
		Kind:       kind,
		Amount:     decimal.RequireFromString(amount),
	}
}

func assertAllocation(t *testing.T, got domain.Allocation, invoiceID, paymentID, amount string) {
	t.Helper()
	if got.InvoiceDocumentID != invoiceID {
		t.Errorf("expected invoice %s, got %s", invoiceID, got.InvoiceDocumentID)
	}
	if got.PaymentDocumentID != paymentID {
		t.Errorf("expected payment %s, got %s", paymentID, got.PaymentDocumentID)
	}
	if !got.Amount.Equal(decimal.RequireFromString(amount)) {
		t.Errorf("expected amount %s, got %s", amount, got.Amount)
	}
}

func TestAllocate_GreedyFIFO(t *testing.T) {
	events := []domain.ClassifiedEvent{
		event("inv-1", 0, domain.ImpactIncreasing, "100", ""),
		event("inv-2", 1, domain.ImpactIncreasing, "50", ""),
		event("pay-1", 2, domain.ImpactDecreasing, "120", ""),
	}

	allocations := usecase.Allocate(events)

	if len(allocations) != 2 {
		t.Fatalf("expected 2 allocations, got %d", len(allocations))
	}
	assertAllocation(t, allocations[0], "inv-1", "pay-1", "100")
	assertAllocation(t, allocations[1], "inv-2", "pay-1", "20")
}

func TestAllocate_SubUnitPhasePrecedesGlobal(t *testing.T) {
	// inv-2 is newer but shares the payment's sub-unit, so it is settled
	// before the older cross-unit inv-1.
	events := []domain.ClassifiedEvent{
		event("inv-1", 0, domain.ImpactIncreasing, "100", "U1"),
		event("inv-2", 1, domain.ImpactIncreasing, "50", "U7"),
		event("pay-1", 2, domain.ImpactDecreasing, "120", "U7"),
	}

	allocations := usecase.Allocate(events)

	if len(allocations) != 2 {
		t.Fatalf("expected 2 allocations, got %d", len(allocations))
	}
	assertAllocation(t, allocations[0], "inv-2", "pay-1", "50")
	assertAllocation(t, allocations[1], "inv-1", "pay-1", "70")
}

func TestAllocate_PaymentWithoutSubUnitSkipsFirstPhase(t *testing.T) {
	events := []domain.ClassifiedEvent{
		event("inv-1", 0, domain.ImpactIncreasing, "30", "U1"),
		event("inv-2", 1, domain.ImpactIncreasing, "30", "U2"),
		event("pay-1", 2, domain.ImpactDecreasing, "40", ""),
	}

	allocations := usecase.Allocate(events)

	if len(allocations) != 2 {
		t.Fatalf("expected 2 allocations, got %d", len(allocations))
	}
	assertAllocation(t, allocations[0], "inv-1", "pay-1", "30")
	assertAllocation(t, allocations[1], "inv-2", "pay-1", "10")
}

func TestAllocate_ExactSettlement(t *testing.T) {
	events := []domain.ClassifiedEvent{
		event("inv-1", 0, domain.ImpactIncreasing, "60", ""),
		event("inv-2", 1, domain.ImpactIncreasing, "40", ""),
		event("pay-1", 2, domain.ImpactDecreasing, "100", ""),
	}

	allocations := usecase.Allocate(events)

	if len(allocations) != 2 {
		t.Fatalf("expected 2 allocations, got %d", len(allocations))
	}
	assertAllocation(t, allocations[0], "inv-1", "pay-1", "60")
	assertAllocation(t, allocations[1], "inv-2", "pay-1", "40")
}

func TestAllocate_MultiplePaymentsDrainInOrder(t *testing.T) {
	events := []domain.ClassifiedEvent{
		event("inv-1", 0, domain.ImpactIncreasing, "100", ""),
		event("pay-1", 1, domain.ImpactDecreasing, "30", ""),
		event("pay-2", 2, domain.ImpactDecreasing, "30", ""),
		event("pay-3", 3, domain.ImpactDecreasing, "30", ""),
	}

	allocations := usecase.Allocate(events)

	if len(allocations) != 3 {
		t.Fatalf("expected 3 allocations, got %d", len(allocations))
	}
	assertAllocation(t, allocations[0], "inv-1", "pay-1", "30")
	assertAllocation(t, allocations[1], "inv-1", "pay-2", "30")
	assertAllocation(t, allocations[2], "inv-1", "pay-3", "30")
}

func TestAllocate_PaymentSurplusIsAdvance(t *testing.T) {
	events := []domain.ClassifiedEvent{
		event("inv-1", 0, domain.ImpactIncreasing, "50", ""),
		event("pay-1", 1, domain.ImpactDecreasing, "80", ""),
	}

	allocations := usecase.Allocate(events)

	// The 30 surplus is simply unallocated, never an error.
	if len(allocations) != 1 {
		t.Fatalf("expected 1 allocation, got %d", len(allocations))
	}
	assertAllocation(t, allocations[0], "inv-1", "pay-1", "50")
}

func TestAllocate_NoInvoices(t *testing.T) {
	events := []domain.ClassifiedEvent{
		event("pay-1", 0, domain.ImpactDecreasing, "80", ""),
	}

	if allocations := usecase.Allocate(events); len(allocations) != 0 {
		t.Fatalf("expected no allocations, got %d", len(allocations))
	}
}

func TestAllocate_NoPayments(t *testing.T) {
	events := []domain.ClassifiedEvent{
		event("inv-1", 0, domain.ImpactIncreasing, "80", ""),
	}

	if allocations := usecase.Allocate(events); len(allocations) != 0 {
		t.Fatalf("expected no allocations, got %d", len(allocations))
	}
}

func TestAllocate_Deterministic(t *testing.T) {
	events := []domain.ClassifiedEvent{
		event("inv-1", 0, domain.ImpactIncreasing, "100", "U1"),
		event("inv-2", 1, domain.ImpactIncreasing, "50", "U2"),
		event("inv-3", 2, domain.ImpactIncreasing, "75", "U1"),
		event("pay-1", 3, domain.ImpactDecreasing, "120", "U2"),
		event("pay-2", 4, domain.ImpactDecreasing, "60", ""),
	}

	first := usecase.Allocate(events)

	for run := 0; run < 5; run++ {
		again := usecase.Allocate(events)
		if len(again) != len(first) {
			t.Fatalf("run %d: expected %d allocations, got %d", run, len(first), len(again))
		}
		for i := range first {
			if again[i].InvoiceDocumentID != first[i].InvoiceDocumentID ||
				again[i].PaymentDocumentID != first[i].PaymentDocumentID ||
				!again[i].Amount.Equal(first[i].Amount) {
				t.Fatalf("run %d: allocation %d differs", run, i)
			}
		}
	}
}

func TestVerifyAllocations(t *testing.T) {
	events := []domain.ClassifiedEvent{
		event("inv-1", 0, domain.ImpactIncreasing, "100", ""),
	}

	ok := []domain.Allocation{
		{InvoiceDocumentID: "inv-1", PaymentDocumentID: "pay-1", Amount: decimal.RequireFromString("100")},
	}
	if err := usecase.VerifyAllocations(events, ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	over := []domain.Allocation{
		{InvoiceDocumentID: "inv-1", PaymentDocumentID: "pay-1", Amount: decimal.RequireFromString("70")},
		{InvoiceDocumentID: "inv-1", PaymentDocumentID: "pay-2", Amount: decimal.RequireFromString("40")},
	}
	if err := usecase.VerifyAllocations(events, over); err == nil {
		t.Fatal("expected over-allocation error, got nil")
	}

	unknown := []domain.Allocation{
		{InvoiceDocumentID: "ghost", PaymentDocumentID: "pay-1", Amount: decimal.RequireFromString("1")},
	}
	if err := usecase.VerifyAllocations(events, unknown); err == nil {
		t.Fatal("expected error for allocation against unknown invoice, got nil")
	}
}
