package dto

// RecalculateRequest is the request body for triggering a recalculation.
type RecalculateRequest struct {
	TenantID string `json:"tenant_id"`
}

// Validate validates the recalculate request.
func (r *RecalculateRequest) Validate() error {
	if r.TenantID == "" {
		return ErrMissingField("tenant_id")
	}
	return nil
}

// RecalculateBatchRequest is the request body for recalculating several
// counterparties in one call.
type RecalculateBatchRequest struct {
	TenantID        string   `json:"tenant_id"`
	CounterpartyIDs []string `json:"counterparty_ids"`
}

// Validate validates the batch recalculate request.
func (r *RecalculateBatchRequest) Validate() error {
	if r.TenantID == "" {
		return ErrMissingField("tenant_id")
	}
	if len(r.CounterpartyIDs) == 0 {
		return ErrMissingField("counterparty_ids")
	}
	return nil
}

// ErrMissingField is returned when a required request field is absent.
type ErrMissingField string

func (e ErrMissingField) Error() string {
	return "missing required field: " + string(e)
}
