package usecase

import "context"

// recalculator is the rebuild surface RetryingRecalculation wraps.
type recalculator interface {
	Recalculate(ctx context.Context, tenantID, counterpartyID string) (*RecalculationSummary, error)
}

// RetryingRecalculation reruns a rebuild that failed on counterparty
// lock contention or a transient database error. The failed run rolled
// its transaction back, so going again is safe.
type RetryingRecalculation struct {
	inner   recalculator
	retrier Retrier
}

// NewRetryingRecalculation wraps a recalculation with retry behavior.
func NewRetryingRecalculation(inner recalculator, retrier Retrier) *RetryingRecalculation {
	return &RetryingRecalculation{inner: inner, retrier: retrier}
}

// Recalculate runs the rebuild, retrying transient failures.
func (r *RetryingRecalculation) Recalculate(ctx context.Context, tenantID, counterpartyID string) (*RecalculationSummary, error) {
	var summary *RecalculationSummary

	err := r.retrier.Retry(ctx, func() error {
		s, err := r.inner.Recalculate(ctx, tenantID, counterpartyID)
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// RecalculateMany runs Recalculate for each counterparty sequentially
// with the same per-counterparty failure isolation as the inner bulk
// run, each rebuild getting its own retry budget.
func (r *RetryingRecalculation) RecalculateMany(ctx context.Context, tenantID string, counterpartyIDs []string) []CounterpartyResult {
	results := make([]CounterpartyResult, 0, len(counterpartyIDs))

	for _, counterpartyID := range counterpartyIDs {
		summary, err := r.Recalculate(ctx, tenantID, counterpartyID)
		results = append(results, CounterpartyResult{
			CounterpartyID: counterpartyID,
			Summary:        summary,
			Err:            err,
		})
	}

	return results
}
