package dto

import (
	"time"

	"github.com/iho/cartera/internal/domain"
	"github.com/iho/cartera/internal/usecase"
)

// RecalculationSummaryResponse is the response for a completed recalculation.
type RecalculationSummaryResponse struct {
	TenantID           string    `json:"tenant_id"`
	CounterpartyID     string    `json:"counterparty_id"`
	DocumentsScanned   int       `json:"documents_scanned"`
	ReceivableEvents   int       `json:"receivable_events"`
	PayableEvents      int       `json:"payable_events"`
	AllocationsCreated int       `json:"allocations_created"`
	AllocationsPurged  int64     `json:"allocations_purged"`
	CompletedAt        time.Time `json:"completed_at"`
}

// SummaryFromUseCase converts a usecase summary to a response DTO.
func SummaryFromUseCase(s *usecase.RecalculationSummary) *RecalculationSummaryResponse {
	return &RecalculationSummaryResponse{
		TenantID:           s.TenantID,
		CounterpartyID:     s.CounterpartyID,
		DocumentsScanned:   s.DocumentsScanned,
		ReceivableEvents:   s.ReceivableEvents,
		PayableEvents:      s.PayableEvents,
		AllocationsCreated: s.AllocationsCreated,
		AllocationsPurged:  s.AllocationsPurged,
		CompletedAt:        s.CompletedAt,
	}
}

// RecalculateBatchResponse is the response for a batch recalculation.
type RecalculateBatchResponse struct {
	Results []CounterpartyResultResponse `json:"results"`
}

// CounterpartyResultResponse is one counterparty's outcome within a batch.
type CounterpartyResultResponse struct {
	CounterpartyID string                        `json:"counterparty_id"`
	Summary        *RecalculationSummaryResponse `json:"summary,omitempty"`
	Error          string                        `json:"error,omitempty"`
}

// BatchFromUseCase converts batch results to a response DTO.
func BatchFromUseCase(results []usecase.CounterpartyResult) *RecalculateBatchResponse {
	resp := &RecalculateBatchResponse{
		Results: make([]CounterpartyResultResponse, 0, len(results)),
	}
	for _, r := range results {
		item := CounterpartyResultResponse{CounterpartyID: r.CounterpartyID}
		if r.Err != nil {
			item.Error = r.Err.Error()
		} else if r.Summary != nil {
			item.Summary = SummaryFromUseCase(r.Summary)
		}
		resp.Results = append(resp.Results, item)
	}
	return resp
}

// PendingInvoiceResponse is one invoice with an outstanding balance.
type PendingInvoiceResponse struct {
	DocumentID string    `json:"document_id"`
	Date       time.Time `json:"date"`
	SubUnitID  string    `json:"sub_unit_id,omitempty"`
	Total      string    `json:"total"`
	Applied    string    `json:"applied"`
	Remaining  string    `json:"remaining"`
}

// PendingInvoicesResponse is the response for the pending-invoices listing.
type PendingInvoicesResponse struct {
	TenantID       string                   `json:"tenant_id"`
	CounterpartyID string                   `json:"counterparty_id"`
	Role           string                   `json:"role"`
	Invoices       []PendingInvoiceResponse `json:"invoices"`
}

// PendingFromDomain converts pending invoices to a response DTO.
func PendingFromDomain(tenantID, counterpartyID string, role domain.BalanceRole, invoices []domain.PendingInvoice) *PendingInvoicesResponse {
	resp := &PendingInvoicesResponse{
		TenantID:       tenantID,
		CounterpartyID: counterpartyID,
		Role:           string(role),
		Invoices:       make([]PendingInvoiceResponse, 0, len(invoices)),
	}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, PendingInvoiceResponse{
			DocumentID: inv.DocumentID,
			Date:       inv.Date,
			SubUnitID:  inv.SubUnitID,
			Total:      inv.Total.String(),
			Applied:    inv.Applied.String(),
			Remaining:  inv.Remaining.String(),
		})
	}
	return resp
}

// AllocationResponse is one persisted allocation row.
type AllocationResponse struct {
	ID                string    `json:"id"`
	Role              string    `json:"role"`
	InvoiceDocumentID string    `json:"invoice_document_id"`
	PaymentDocumentID string    `json:"payment_document_id"`
	Amount            string    `json:"amount"`
	CreatedAt         time.Time `json:"created_at"`
}

// AllocationsResponse is the response for the allocations listing.
type AllocationsResponse struct {
	TenantID       string               `json:"tenant_id"`
	CounterpartyID string               `json:"counterparty_id"`
	Allocations    []AllocationResponse `json:"allocations"`
	Limit          int                  `json:"limit"`
	Offset         int                  `json:"offset"`
}

// AllocationsFromDomain converts allocation records to a response DTO.
func AllocationsFromDomain(tenantID, counterpartyID string, records []*domain.AllocationRecord, limit, offset int) *AllocationsResponse {
	resp := &AllocationsResponse{
		TenantID:       tenantID,
		CounterpartyID: counterpartyID,
		Allocations:    make([]AllocationResponse, 0, len(records)),
		Limit:          limit,
		Offset:         offset,
	}
	for _, rec := range records {
		resp.Allocations = append(resp.Allocations, AllocationResponse{
			ID:                rec.ID,
			Role:              string(rec.Role),
			InvoiceDocumentID: rec.InvoiceDocumentID,
			PaymentDocumentID: rec.PaymentDocumentID,
			Amount:            rec.Amount.String(),
			CreatedAt:         rec.CreatedAt,
		})
	}
	return resp
}

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}
