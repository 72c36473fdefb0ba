package domain

import "errors"

var (
	// Allocation errors
	ErrOverAllocation = errors.New("allocations exceed invoice impact")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrSameDocument   = errors.New("invoice and payment cannot be the same document")
	ErrInvalidRole    = errors.New("unknown balance role")

	// Recalculation errors
	ErrCounterpartyLocked = errors.New("counterparty recalculation already in progress")

	// Lookup errors
	ErrConfigNotFound       = errors.New("classifier configuration not found")
	ErrCounterpartyNotFound = errors.New("counterparty not found")
)
