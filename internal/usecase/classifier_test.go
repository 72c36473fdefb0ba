package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/cartera/internal/domain"
	"github.com/iho/cartera/internal/usecase"
	"github.com/iho/cartera/tests/testutil"
)

func TestClassifyAccounts_FiltersByCodePrefix(t *testing.T) {
	cfg := &domain.ClassifierConfig{
		TenantID: "tenant-1",
		DocumentTypes: []domain.DocumentTypeAccounts{
			{Code: "invoice", ReceivableDebitAccountID: "acc-cxc"},
			{Code: "receipt", ReceivableCreditAccountID: "acc-cash"},
		},
		ModuleReceivableAccountID: "acc-central",
		AssetCodePrefix:           "1",
		LiabilityCodePrefix:       "2",
		CashCodePrefix:            "11",
	}

	accounts := map[string]domain.Account{
		"acc-cxc":     {ID: "acc-cxc", TenantID: "tenant-1", Code: "120-001"},
		"acc-cash":    {ID: "acc-cash", TenantID: "tenant-1", Code: "110-001"},
		"acc-central": {ID: "acc-central", TenantID: "tenant-1", Code: "130-001"},
	}

	set := usecase.ClassifyAccounts(cfg, accounts, domain.RoleReceivable)

	if !set.Contains("acc-cxc") {
		t.Error("expected acc-cxc in receivable set")
	}
	if !set.Contains("acc-central") {
		t.Error("expected acc-central in receivable set")
	}
	if set.Contains("acc-cash") {
		t.Error("cash account must be excluded from receivable set")
	}
	if set.Len() != 2 {
		t.Errorf("expected 2 accounts, got %d", set.Len())
	}
}

func TestClassifyAccounts_MissingChartEntrySkipped(t *testing.T) {
	cfg := testutil.Config("acc-stale", "")

	// The configured account has no chart entry at all.
	set := usecase.ClassifyAccounts(cfg, map[string]domain.Account{}, domain.RoleReceivable)

	if !set.Empty() {
		t.Errorf("expected empty set, got %d accounts", set.Len())
	}
}

func TestClassifyAccounts_EmptyConfigYieldsEmptySet(t *testing.T) {
	cfg := &domain.ClassifierConfig{TenantID: "tenant-1", AssetCodePrefix: "1"}

	set := usecase.ClassifyAccounts(cfg, map[string]domain.Account{}, domain.RoleReceivable)
	if !set.Empty() {
		t.Error("expected empty set for empty configuration")
	}
}

func TestBuildEventStream(t *testing.T) {
	set := domain.NewAccountRoleSet(domain.RoleReceivable, "acc-cxc")

	docs := []*domain.Document{
		testutil.NewDocument("inv-1", testutil.Date(0)).
			Debit("acc-cxc", "100").Credit("acc-revenue", "100").Build(),
		testutil.NewDocument("void-1", testutil.Date(1)).Voided().
			Debit("acc-cxc", "40").Credit("acc-revenue", "40").Build(),
		testutil.NewDocument("neutral-1", testutil.Date(2)).
			Debit("acc-bank", "10").Credit("acc-revenue", "10").Build(),
		testutil.NewDocument("pay-1", testutil.Date(3)).
			Debit("acc-bank", "60").Credit("acc-cxc", "60").Build(),
	}

	events := usecase.BuildEventStream(docs, set)

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].DocumentID != "inv-1" || events[0].Kind != domain.ImpactIncreasing {
		t.Errorf("expected inv-1 increasing first, got %s %s", events[0].DocumentID, events[0].Kind)
	}
	if events[1].DocumentID != "pay-1" || events[1].Kind != domain.ImpactDecreasing {
		t.Errorf("expected pay-1 decreasing second, got %s %s", events[1].DocumentID, events[1].Kind)
	}
	if !events[1].Amount.Equal(decimal.RequireFromString("60")) {
		t.Errorf("expected amount 60, got %s", events[1].Amount)
	}
}

func TestBuildEventStream_MislabeledDocumentFollowsImpact(t *testing.T) {
	set := domain.NewAccountRoleSet(domain.RoleReceivable, "acc-cxc")

	// A document tagged "invoice" upstream but crediting the receivable
	// account behaves as a payment; the type tag never matters.
	doc := testutil.NewDocument("credit-note", testutil.Date(0)).
		Debit("acc-revenue", "25").Credit("acc-cxc", "25").Build()

	events := usecase.BuildEventStream([]*domain.Document{doc}, set)

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Kind != domain.ImpactDecreasing {
		t.Errorf("expected decreasing, got %s", events[0].Kind)
	}
}
