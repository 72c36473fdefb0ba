package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/cartera/internal/domain"
	"github.com/iho/cartera/internal/infrastructure/postgres/generated"
	"github.com/iho/cartera/internal/usecase"
)

// DocumentRepository implements usecase.DocumentRepository. Documents and
// movement lines are read-only from the engine's perspective.
type DocumentRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// ListByCounterparty returns the counterparty's non-voided documents in
// (date, id) order with lines eagerly loaded.
func (r *DocumentRepository) ListByCounterparty(ctx context.Context, tenantID, counterpartyID string) ([]*domain.Document, error) {
	return listDocuments(ctx, r.queries, tenantID, counterpartyID)
}

// ListByCounterpartyTx is the same read within a recalculation
// transaction.
func (r *DocumentRepository) ListByCounterpartyTx(ctx context.Context, tx usecase.Transaction, tenantID, counterpartyID string) ([]*domain.Document, error) {
	pgxTx := tx.(*Tx).PgxTx()
	return listDocuments(ctx, generated.New(pgxTx), tenantID, counterpartyID)
}

func listDocuments(ctx context.Context, queries *generated.Queries, tenantID, counterpartyID string) ([]*domain.Document, error) {
	rows, err := queries.ListDocumentsByCounterparty(ctx, generated.ListDocumentsByCounterpartyParams{
		TenantID:       tenantID,
		CounterpartyID: counterpartyID,
	})
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []*domain.Document{}, nil
	}

	documents := make([]*domain.Document, 0, len(rows))
	byID := make(map[string]*domain.Document, len(rows))

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		doc := rowToDocument(row)
		documents = append(documents, doc)
		byID[doc.ID] = doc
		ids = append(ids, doc.ID)
	}

	lines, err := queries.ListMovementLinesByDocuments(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		doc := byID[line.DocumentID]
		if doc == nil {
			continue
		}

		doc.Lines = append(doc.Lines, domain.MovementLine{
			AccountID: line.AccountID,
			Debit:     numericToDecimal(line.Debit),
			Credit:    numericToDecimal(line.Credit),
		})
	}

	return documents, nil
}

func rowToDocument(row generated.Document) *domain.Document {
	subUnitID := ""
	if row.SubUnitID.Valid {
		subUnitID = row.SubUnitID.String
	}

	return &domain.Document{
		ID:             row.ID,
		TenantID:       row.TenantID,
		CounterpartyID: row.CounterpartyID,
		SubUnitID:      subUnitID,
		Date:           row.Date.Time,
		Voided:         row.Voided,
		State:          domain.DocumentState(row.State),
	}
}
