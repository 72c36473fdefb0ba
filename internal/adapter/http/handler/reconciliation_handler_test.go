package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/iho/cartera/internal/adapter/http/handler"
	"github.com/iho/cartera/internal/domain"
	"github.com/iho/cartera/internal/infrastructure/metrics"
	"github.com/iho/cartera/internal/usecase"
)

type stubRecalcService struct {
	summary *usecase.RecalculationSummary
	results []usecase.CounterpartyResult
	err     error

	gotTenant       string
	gotCounterparty string
}

func (s *stubRecalcService) Recalculate(ctx context.Context, tenantID, counterpartyID string) (*usecase.RecalculationSummary, error) {
	s.gotTenant = tenantID
	s.gotCounterparty = counterpartyID
	return s.summary, s.err
}

func (s *stubRecalcService) RecalculateMany(ctx context.Context, tenantID string, counterpartyIDs []string) []usecase.CounterpartyResult {
	s.gotTenant = tenantID
	return s.results
}

type stubPendingService struct {
	invoices []domain.PendingInvoice
	records  []*domain.AllocationRecord
	err      error

	gotInput usecase.PendingInvoicesInput
}

func (s *stubPendingService) PendingInvoices(ctx context.Context, input usecase.PendingInvoicesInput) ([]domain.PendingInvoice, error) {
	s.gotInput = input
	return s.invoices, s.err
}

func (s *stubPendingService) ListAllocations(ctx context.Context, input usecase.ListAllocationsInput) ([]*domain.AllocationRecord, error) {
	return s.records, s.err
}

var testMetrics = metrics.New()

func newRouter(recalc *stubRecalcService, pending *stubPendingService) http.Handler {
	h := handler.NewReconciliationHandler(recalc, pending, testMetrics)

	r := chi.NewRouter()
	r.Post("/api/v1/recalculations", h.RecalculateBatch)
	r.Route("/api/v1/counterparties/{counterpartyID}", func(r chi.Router) {
		r.Post("/recalculate", h.Recalculate)
		r.Get("/pending-invoices", h.PendingInvoices)
		r.Get("/allocations", h.ListAllocations)
	})
	return r
}

func TestRecalculateHandler(t *testing.T) {
	recalc := &stubRecalcService{
		summary: &usecase.RecalculationSummary{
			TenantID:           "tenant-1",
			CounterpartyID:     "cp-1",
			DocumentsScanned:   3,
			AllocationsCreated: 2,
			CompletedAt:        time.Now().UTC(),
		},
	}
	router := newRouter(recalc, &stubPendingService{})

	body := bytes.NewBufferString(`{"tenant_id":"tenant-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/counterparties/cp-1/recalculate", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if recalc.gotTenant != "tenant-1" || recalc.gotCounterparty != "cp-1" {
		t.Errorf("service called with (%s, %s)", recalc.gotTenant, recalc.gotCounterparty)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["allocations_created"].(float64) != 2 {
		t.Errorf("expected allocations_created 2, got %v", resp["allocations_created"])
	}
}

func TestRecalculateHandler_Validation(t *testing.T) {
	router := newRouter(&stubRecalcService{}, &stubPendingService{})

	tests := []struct {
		name string
		body string
	}{
		{"missing tenant", `{}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/counterparties/cp-1/recalculate",
				bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestRecalculateHandler_LockedMapsToConflict(t *testing.T) {
	recalc := &stubRecalcService{err: domain.ErrCounterpartyLocked}
	router := newRouter(recalc, &stubPendingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/counterparties/cp-1/recalculate",
		bytes.NewBufferString(`{"tenant_id":"tenant-1"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestRecalculateBatchHandler(t *testing.T) {
	recalc := &stubRecalcService{
		results: []usecase.CounterpartyResult{
			{CounterpartyID: "cp-1", Summary: &usecase.RecalculationSummary{CounterpartyID: "cp-1"}},
			{CounterpartyID: "cp-2", Err: domain.ErrCounterpartyLocked},
		},
	}
	router := newRouter(recalc, &stubPendingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recalculations",
		bytes.NewBufferString(`{"tenant_id":"tenant-1","counterparty_ids":["cp-1","cp-2"]}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Results []struct {
			CounterpartyID string `json:"counterparty_id"`
			Error          string `json:"error"`
		} `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(resp.Results))
	}
	if resp.Results[1].Error == "" {
		t.Error("expected error string for cp-2")
	}
}

func TestPendingInvoicesHandler(t *testing.T) {
	pending := &stubPendingService{
		invoices: []domain.PendingInvoice{
			{
				DocumentID: "inv-2",
				Date:       time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				Total:      decimal.RequireFromString("50"),
				Applied:    decimal.RequireFromString("20"),
				Remaining:  decimal.RequireFromString("30"),
			},
		},
	}
	router := newRouter(&stubRecalcService{}, pending)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/counterparties/cp-1/pending-invoices?tenant_id=tenant-1&role=receivable&sub_unit=U7&as_of=2025-02-01", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if pending.gotInput.SubUnitID != "U7" {
		t.Errorf("expected sub-unit U7, got %q", pending.gotInput.SubUnitID)
	}
	if pending.gotInput.AsOf == nil || !pending.gotInput.AsOf.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected as-of 2025-02-01, got %v", pending.gotInput.AsOf)
	}

	var resp struct {
		Invoices []struct {
			DocumentID string `json:"document_id"`
			Remaining  string `json:"remaining"`
		} `json:"invoices"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Invoices) != 1 || resp.Invoices[0].Remaining != "30" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
}

func TestPendingInvoicesHandler_Validation(t *testing.T) {
	router := newRouter(&stubRecalcService{}, &stubPendingService{})

	tests := []struct {
		name string
		url  string
	}{
		{"missing tenant", "/api/v1/counterparties/cp-1/pending-invoices?role=receivable"},
		{"bad role", "/api/v1/counterparties/cp-1/pending-invoices?tenant_id=t&role=equity"},
		{"bad as_of", "/api/v1/counterparties/cp-1/pending-invoices?tenant_id=t&role=receivable&as_of=notadate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestListAllocationsHandler(t *testing.T) {
	pending := &stubPendingService{
		records: []*domain.AllocationRecord{
			{
				ID:                "alloc-1",
				Role:              domain.RoleReceivable,
				InvoiceDocumentID: "inv-1",
				PaymentDocumentID: "pay-1",
				Amount:            decimal.RequireFromString("100"),
			},
		},
	}
	router := newRouter(&stubRecalcService{}, pending)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/counterparties/cp-1/allocations?tenant_id=tenant-1&role=cxc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Allocations []struct {
			Amount string `json:"amount"`
		} `json:"allocations"`
		Limit int `json:"limit"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Allocations) != 1 || resp.Allocations[0].Amount != "100" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
	if resp.Limit != 50 {
		t.Errorf("expected default limit 50, got %d", resp.Limit)
	}
}
