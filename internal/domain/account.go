package domain

import "strings"

// Account is a chart-of-accounts entry referenced by movement lines.
// Classification relies on the hierarchical code only, never on the name.
type Account struct {
	ID       string
	TenantID string
	Code     string
	Name     string
	Postable bool
}

// BalanceRole identifies which side of the owed balance an account set covers.
type BalanceRole string

const (
	// RoleReceivable covers amounts a counterparty owes to the tenant (CXC).
	RoleReceivable BalanceRole = "receivable"
	// RolePayable covers amounts the tenant owes to a counterparty (CXP).
	RolePayable BalanceRole = "payable"
)

// Valid reports whether the role is one of the two known balance roles.
func (r BalanceRole) Valid() bool {
	return r == RoleReceivable || r == RolePayable
}

// AccountRoleSet is the classified set of account IDs representing one
// balance role for a tenant. It is a value object recomputed from
// configuration on every reconciliation run.
type AccountRoleSet struct {
	Role BalanceRole
	ids  map[string]struct{}
}

// NewAccountRoleSet builds a set for the given role from account IDs.
func NewAccountRoleSet(role BalanceRole, ids ...string) AccountRoleSet {
	set := AccountRoleSet{Role: role, ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		set.ids[id] = struct{}{}
	}

	return set
}

// Contains reports whether the account ID belongs to the set.
func (s AccountRoleSet) Contains(accountID string) bool {
	_, ok := s.ids[accountID]
	return ok
}

// Empty reports whether the set has no accounts. An empty set is a
// legitimate tenant state and short-circuits reconciliation.
func (s AccountRoleSet) Empty() bool {
	return len(s.ids) == 0
}

// Len returns the number of accounts in the set.
func (s AccountRoleSet) Len() int {
	return len(s.ids)
}

// MatchesRolePrefix applies the structural chart-of-accounts filter: a
// receivable account must live under the asset prefix and outside the
// cash/bank sub-prefix, a payable account under the liability prefix.
func (a *Account) MatchesRolePrefix(role BalanceRole, cfg ClassifierConfig) bool {
	switch role {
	case RoleReceivable:
		if cfg.AssetCodePrefix == "" || !strings.HasPrefix(a.Code, cfg.AssetCodePrefix) {
			return false
		}

		return cfg.CashCodePrefix == "" || !strings.HasPrefix(a.Code, cfg.CashCodePrefix)
	case RolePayable:
		return cfg.LiabilityCodePrefix != "" && strings.HasPrefix(a.Code, cfg.LiabilityCodePrefix)
	default:
		return false
	}
}
