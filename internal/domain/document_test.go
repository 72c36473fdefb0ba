package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/cartera/internal/domain"
)

func line(accountID, debit, credit string) domain.MovementLine {
	return domain.MovementLine{
		AccountID: accountID,
		Debit:     decimal.RequireFromString(debit),
		Credit:    decimal.RequireFromString(credit),
	}
}

func TestDocument_ImpactOn_Receivable(t *testing.T) {
	set := domain.NewAccountRoleSet(domain.RoleReceivable, "acc-cxc")

	tests := []struct {
		name       string
		lines      []domain.MovementLine
		wantKind   domain.ImpactKind
		wantAmount string
	}{
		{
			name: "invoice debits the receivable account",
			lines: []domain.MovementLine{
				line("acc-cxc", "100", "0"),
				line("acc-revenue", "0", "100"),
			},
			wantKind:   domain.ImpactIncreasing,
			wantAmount: "100",
		},
		{
			name: "payment credits the receivable account",
			lines: []domain.MovementLine{
				line("acc-bank", "120", "0"),
				line("acc-cxc", "0", "120"),
			},
			wantKind:   domain.ImpactDecreasing,
			wantAmount: "120",
		},
		{
			name: "no line touches the set",
			lines: []domain.MovementLine{
				line("acc-bank", "50", "0"),
				line("acc-revenue", "0", "50"),
			},
			wantKind:   domain.ImpactNeutral,
			wantAmount: "0",
		},
		{
			name: "mixed lines net to the debit excess",
			lines: []domain.MovementLine{
				line("acc-cxc", "100", "0"),
				line("acc-cxc", "0", "30"),
			},
			wantKind:   domain.ImpactIncreasing,
			wantAmount: "70",
		},
		{
			name: "equal debit and credit nets to neutral",
			lines: []domain.MovementLine{
				line("acc-cxc", "40", "0"),
				line("acc-cxc", "0", "40"),
			},
			wantKind:   domain.ImpactNeutral,
			wantAmount: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &domain.Document{ID: "doc-1", Lines: tt.lines}

			impact := doc.ImpactOn(set)

			if impact.Kind != tt.wantKind {
				t.Errorf("expected kind %q, got %q", tt.wantKind, impact.Kind)
			}
			if !impact.Amount.Equal(decimal.RequireFromString(tt.wantAmount)) {
				t.Errorf("expected amount %s, got %s", tt.wantAmount, impact.Amount)
			}
		})
	}
}

func TestDocument_ImpactOn_PayableOrientationFlips(t *testing.T) {
	set := domain.NewAccountRoleSet(domain.RolePayable, "acc-cxp")

	// A supplier invoice credits the payable account, which raises what we owe.
	invoice := &domain.Document{ID: "doc-1", Lines: []domain.MovementLine{
		line("acc-expense", "80", "0"),
		line("acc-cxp", "0", "80"),
	}}

	impact := invoice.ImpactOn(set)
	if impact.Kind != domain.ImpactIncreasing {
		t.Fatalf("expected increasing, got %q", impact.Kind)
	}
	if !impact.Amount.Equal(decimal.RequireFromString("80")) {
		t.Fatalf("expected 80, got %s", impact.Amount)
	}

	// Paying the supplier debits the payable account.
	payment := &domain.Document{ID: "doc-2", Lines: []domain.MovementLine{
		line("acc-cxp", "80", "0"),
		line("acc-bank", "0", "80"),
	}}

	impact = payment.ImpactOn(set)
	if impact.Kind != domain.ImpactDecreasing {
		t.Fatalf("expected decreasing, got %q", impact.Kind)
	}
}

func TestAllocationRecord_Validate(t *testing.T) {
	valid := domain.AllocationRecord{
		ID:                "alloc-1",
		TenantID:          "tenant-1",
		CounterpartyID:    "cp-1",
		Role:              domain.RoleReceivable,
		InvoiceDocumentID: "inv-1",
		PaymentDocumentID: "pay-1",
		Amount:            decimal.RequireFromString("10"),
	}

	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zeroAmount := valid
	zeroAmount.Amount = decimal.Zero
	if err := zeroAmount.Validate(); err == nil {
		t.Error("expected error for zero amount, got nil")
	}

	negative := valid
	negative.Amount = decimal.RequireFromString("-5")
	if err := negative.Validate(); err == nil {
		t.Error("expected error for negative amount, got nil")
	}

	selfMatch := valid
	selfMatch.PaymentDocumentID = selfMatch.InvoiceDocumentID
	if err := selfMatch.Validate(); err == nil {
		t.Error("expected error for invoice matched to itself, got nil")
	}

	badRole := valid
	badRole.Role = "unknown"
	if err := badRole.Validate(); err == nil {
		t.Error("expected error for invalid role, got nil")
	}
}
