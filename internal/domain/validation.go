package domain

import "strings"

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// ValidatePagination clamps limit/offset to sane bounds.
func ValidatePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}

	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}

// ParseBalanceRole parses a role string from an external caller.
func ParseBalanceRole(s string) (BalanceRole, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "receivable", "cxc":
		return RoleReceivable, nil
	case "payable", "cxp":
		return RolePayable, nil
	default:
		return "", ErrInvalidRole
	}
}
