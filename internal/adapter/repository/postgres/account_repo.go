package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/cartera/internal/domain"
	"github.com/iho/cartera/internal/infrastructure/postgres/generated"
	"github.com/iho/cartera/internal/usecase"
)

// AccountRepository implements usecase.AccountRepository. The engine only
// ever reads the chart of accounts to resolve code prefixes.
type AccountRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// GetByIDs returns the requested accounts keyed by ID. Unknown IDs are
// simply absent from the result.
func (r *AccountRepository) GetByIDs(ctx context.Context, tenantID string, ids []string) (map[string]domain.Account, error) {
	return getAccounts(ctx, r.queries, tenantID, ids)
}

// GetByIDsTx is the same read within a recalculation transaction.
func (r *AccountRepository) GetByIDsTx(ctx context.Context, tx usecase.Transaction, tenantID string, ids []string) (map[string]domain.Account, error) {
	pgxTx := tx.(*Tx).PgxTx()
	return getAccounts(ctx, generated.New(pgxTx), tenantID, ids)
}

func getAccounts(ctx context.Context, queries *generated.Queries, tenantID string, ids []string) (map[string]domain.Account, error) {
	accounts := make(map[string]domain.Account, len(ids))
	if len(ids) == 0 {
		return accounts, nil
	}

	rows, err := queries.GetAccountsByIDs(ctx, generated.GetAccountsByIDsParams{
		TenantID: tenantID,
		Ids:      ids,
	})
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		accounts[row.ID] = domain.Account{
			ID:       row.ID,
			TenantID: row.TenantID,
			Code:     row.Code,
			Name:     row.Name,
			Postable: row.Postable,
		}
	}

	return accounts, nil
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
