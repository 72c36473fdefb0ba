package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iho/cartera/internal/adapter/http/dto"
	"github.com/iho/cartera/internal/domain"
	"github.com/iho/cartera/internal/infrastructure/metrics"
	"github.com/iho/cartera/internal/usecase"
)

// RecalculationService is the use case surface the handler needs for
// rebuilds.
type RecalculationService interface {
	Recalculate(ctx context.Context, tenantID, counterpartyID string) (*usecase.RecalculationSummary, error)
	RecalculateMany(ctx context.Context, tenantID string, counterpartyIDs []string) []usecase.CounterpartyResult
}

// PendingBalanceService is the use case surface for read queries.
type PendingBalanceService interface {
	PendingInvoices(ctx context.Context, input usecase.PendingInvoicesInput) ([]domain.PendingInvoice, error)
	ListAllocations(ctx context.Context, input usecase.ListAllocationsInput) ([]*domain.AllocationRecord, error)
}

// ReconciliationHandler serves the reconciliation API.
type ReconciliationHandler struct {
	recalc  RecalculationService
	pending PendingBalanceService
	metrics *metrics.Metrics
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(recalc RecalculationService, pending PendingBalanceService, m *metrics.Metrics) *ReconciliationHandler {
	return &ReconciliationHandler{recalc: recalc, pending: pending, metrics: m}
}

// Recalculate handles POST /api/v1/counterparties/{counterpartyID}/recalculate.
func (h *ReconciliationHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	counterpartyID := chi.URLParam(r, "counterpartyID")

	var req dto.RecalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	summary, err := h.recalc.Recalculate(r.Context(), req.TenantID, counterpartyID)
	if err != nil {
		if errors.Is(err, domain.ErrCounterpartyLocked) {
			h.metrics.LockContentionObserved.Inc()
			h.metrics.RecalculationsFailed.WithLabelValues("locked").Inc()
		} else {
			h.metrics.RecalculationsFailed.WithLabelValues("error").Inc()
		}
		mapDomainError(w, err)
		return
	}

	h.metrics.RecalculationsRun.Inc()
	h.metrics.RecalculationDuration.Observe(time.Since(start).Seconds())
	h.metrics.EventsClassified.WithLabelValues("receivable").Add(float64(summary.ReceivableEvents))
	h.metrics.EventsClassified.WithLabelValues("payable").Add(float64(summary.PayableEvents))
	h.metrics.AllocationsCreated.Add(float64(summary.AllocationsCreated))
	h.metrics.AllocationsPurged.Add(float64(summary.AllocationsPurged))

	writeJSON(w, http.StatusOK, dto.SummaryFromUseCase(summary))
}

// RecalculateBatch handles POST /api/v1/recalculations.
func (h *ReconciliationHandler) RecalculateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.RecalculateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results := h.recalc.RecalculateMany(r.Context(), req.TenantID, req.CounterpartyIDs)

	for _, result := range results {
		if result.Err != nil {
			if errors.Is(result.Err, domain.ErrCounterpartyLocked) {
				h.metrics.LockContentionObserved.Inc()
				h.metrics.RecalculationsFailed.WithLabelValues("locked").Inc()
			} else {
				h.metrics.RecalculationsFailed.WithLabelValues("error").Inc()
			}
			continue
		}
		h.metrics.RecalculationsRun.Inc()
	}

	writeJSON(w, http.StatusOK, dto.BatchFromUseCase(results))
}

// PendingInvoices handles GET /api/v1/counterparties/{counterpartyID}/pending-invoices.
func (h *ReconciliationHandler) PendingInvoices(w http.ResponseWriter, r *http.Request) {
	counterpartyID := chi.URLParam(r, "counterpartyID")
	query := r.URL.Query()

	tenantID := query.Get("tenant_id")
	if tenantID == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter: tenant_id")
		return
	}

	role, err := domain.ParseBalanceRole(query.Get("role"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid balance role")
		return
	}

	input := usecase.PendingInvoicesInput{
		TenantID:       tenantID,
		CounterpartyID: counterpartyID,
		Role:           role,
		SubUnitID:      query.Get("sub_unit"),
	}

	if raw := query.Get("as_of"); raw != "" {
		asOf, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			asOf, err = time.Parse("2006-01-02", raw)
		}
		if err != nil {
			writeError(w, http.StatusBadRequest, "as_of must be RFC 3339 or YYYY-MM-DD")
			return
		}
		input.AsOf = &asOf
	}

	invoices, err := h.pending.PendingInvoices(r.Context(), input)
	if err != nil {
		mapDomainError(w, err)
		return
	}

	h.metrics.PendingQueries.Inc()
	writeJSON(w, http.StatusOK, dto.PendingFromDomain(tenantID, counterpartyID, role, invoices))
}

// ListAllocations handles GET /api/v1/counterparties/{counterpartyID}/allocations.
func (h *ReconciliationHandler) ListAllocations(w http.ResponseWriter, r *http.Request) {
	counterpartyID := chi.URLParam(r, "counterpartyID")
	query := r.URL.Query()

	tenantID := query.Get("tenant_id")
	if tenantID == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter: tenant_id")
		return
	}

	role, err := domain.ParseBalanceRole(query.Get("role"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid balance role")
		return
	}

	limit := parseIntParam(query.Get("limit"))
	offset := parseIntParam(query.Get("offset"))
	limit, offset = domain.ValidatePagination(limit, offset)

	records, err := h.pending.ListAllocations(r.Context(), usecase.ListAllocationsInput{
		TenantID:       tenantID,
		CounterpartyID: counterpartyID,
		Role:           role,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		mapDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AllocationsFromDomain(tenantID, counterpartyID, records, limit, offset))
}

func parseIntParam(s string) int {
	if s == "" {
		return 0
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
		if n > 1<<30 {
			return 0
		}
	}
	return n
}
