package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/cartera/internal/domain"
	"github.com/iho/cartera/internal/infrastructure/postgres/generated"
	"github.com/iho/cartera/internal/usecase"
)

// ClassifierConfigRepository implements usecase.ClassifierConfigRepository
// by joining tenant settings, document-type defaults and concept
// overrides into one configuration snapshot.
type ClassifierConfigRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewClassifierConfigRepository creates a new ClassifierConfigRepository.
func NewClassifierConfigRepository(pool *pgxpool.Pool) *ClassifierConfigRepository {
	return &ClassifierConfigRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Get loads the configuration snapshot for a tenant.
func (r *ClassifierConfigRepository) Get(ctx context.Context, tenantID string) (*domain.ClassifierConfig, error) {
	return loadConfig(ctx, r.queries, tenantID)
}

// GetTx is the same read within a recalculation transaction.
func (r *ClassifierConfigRepository) GetTx(ctx context.Context, tx usecase.Transaction, tenantID string) (*domain.ClassifierConfig, error) {
	pgxTx := tx.(*Tx).PgxTx()
	return loadConfig(ctx, generated.New(pgxTx), tenantID)
}

func loadConfig(ctx context.Context, queries *generated.Queries, tenantID string) (*domain.ClassifierConfig, error) {
	settings, err := queries.GetTenantSettings(ctx, tenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConfigNotFound
		}

		return nil, err
	}

	documentTypes, err := queries.ListDocumentTypes(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	concepts, err := queries.ListConceptAccounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	cfg := &domain.ClassifierConfig{
		TenantID:                  settings.TenantID,
		ModuleReceivableAccountID: textOrEmpty(settings.ModuleReceivableAccountID),
		ModulePayableAccountID:    textOrEmpty(settings.ModulePayableAccountID),
		AssetCodePrefix:           settings.AssetCodePrefix,
		LiabilityCodePrefix:       settings.LiabilityCodePrefix,
		CashCodePrefix:            settings.CashCodePrefix,
	}

	for _, dt := range documentTypes {
		cfg.DocumentTypes = append(cfg.DocumentTypes, domain.DocumentTypeAccounts{
			Code:                      dt.Code,
			ReceivableDebitAccountID:  textOrEmpty(dt.ReceivableDebitAccountID),
			ReceivableCreditAccountID: textOrEmpty(dt.ReceivableCreditAccountID),
			PayableDebitAccountID:     textOrEmpty(dt.PayableDebitAccountID),
			PayableCreditAccountID:    textOrEmpty(dt.PayableCreditAccountID),
		})
	}

	for _, concept := range concepts {
		cfg.Concepts = append(cfg.Concepts, domain.ConceptAccount{
			Concept:   concept.Concept,
			Role:      domain.BalanceRole(concept.Role),
			AccountID: concept.AccountID,
		})
	}

	return cfg, nil
}

func textOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}

	return t.String
}
