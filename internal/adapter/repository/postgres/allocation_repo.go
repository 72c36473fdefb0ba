package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/cartera/internal/domain"
	"github.com/iho/cartera/internal/infrastructure/postgres/generated"
	"github.com/iho/cartera/internal/usecase"
)

// AllocationRepository implements usecase.AllocationRepository, the only
// write path of the engine.
type AllocationRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewAllocationRepository creates a new AllocationRepository.
func NewAllocationRepository(pool *pgxpool.Pool) *AllocationRepository {
	return &AllocationRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts one allocation record inside the recalculation
// transaction.
func (r *AllocationRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.AllocationRecord) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateAllocation(ctx, generated.CreateAllocationParams{
		ID:                record.ID,
		TenantID:          record.TenantID,
		CounterpartyID:    record.CounterpartyID,
		Role:              string(record.Role),
		InvoiceDocumentID: record.InvoiceDocumentID,
		PaymentDocumentID: record.PaymentDocumentID,
		Amount:            decimalToNumeric(record.Amount),
		CreatedAt:         timeToPgTimestamptz(record.CreatedAt),
	})

	return err
}

// DeleteByCounterparty purges every record for the counterparty, both
// roles, and returns how many rows went away.
func (r *AllocationRepository) DeleteByCounterparty(ctx context.Context, tx usecase.Transaction, tenantID, counterpartyID string) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.DeleteAllocationsByCounterparty(ctx, generated.DeleteAllocationsByCounterpartyParams{
		TenantID:       tenantID,
		CounterpartyID: counterpartyID,
	})
}

// ListByCounterparty returns records for one counterparty and role in
// (created_at, id) order.
func (r *AllocationRepository) ListByCounterparty(ctx context.Context, tenantID, counterpartyID string, role domain.BalanceRole, limit, offset int) ([]*domain.AllocationRecord, error) {
	rows, err := r.queries.ListAllocationsByCounterparty(ctx, generated.ListAllocationsByCounterpartyParams{
		TenantID:       tenantID,
		CounterpartyID: counterpartyID,
		Role:           string(role),
		Limit:          int32(limit),
		Offset:         int32(offset),
	})
	if err != nil {
		return nil, err
	}

	records := make([]*domain.AllocationRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, &domain.AllocationRecord{
			ID:                row.ID,
			TenantID:          row.TenantID,
			CounterpartyID:    row.CounterpartyID,
			Role:              domain.BalanceRole(row.Role),
			InvoiceDocumentID: row.InvoiceDocumentID,
			PaymentDocumentID: row.PaymentDocumentID,
			Amount:            numericToDecimal(row.Amount),
			CreatedAt:         row.CreatedAt.Time,
		})
	}

	return records, nil
}
