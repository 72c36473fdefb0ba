package domain

// DocumentTypeAccounts holds the default receivable/payable debit and
// credit accounts configured for one document type.
type DocumentTypeAccounts struct {
	Code                      string
	ReceivableDebitAccountID  string
	ReceivableCreditAccountID string
	PayableDebitAccountID     string
	PayableCreditAccountID    string
}

// ConceptAccount is a business-concept override account tagged for one
// balance role, e.g. a dedicated late-fee receivable account.
type ConceptAccount struct {
	Concept   string
	Role      BalanceRole
	AccountID string
}

// ClassifierConfig is the tenant-level configuration snapshot the account
// classifier works from. Configuration may change between runs, so a
// fresh snapshot is loaded on every recalculation.
type ClassifierConfig struct {
	TenantID string

	DocumentTypes []DocumentTypeAccounts
	Concepts      []ConceptAccount

	// Optional tenant-wide centralized accounts.
	ModuleReceivableAccountID string
	ModulePayableAccountID    string

	// Chart-of-accounts code prefixes for the structural filter.
	AssetCodePrefix     string
	LiabilityCodePrefix string
	CashCodePrefix      string
}

// CandidateAccountIDs returns every account ID the configuration mentions
// for the role, before the structural code-prefix filter. Order follows
// configuration order with duplicates removed.
func (c *ClassifierConfig) CandidateAccountIDs(role BalanceRole) []string {
	seen := make(map[string]bool)

	var ids []string

	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		ids = append(ids, id)
	}

	for _, dt := range c.DocumentTypes {
		switch role {
		case RoleReceivable:
			add(dt.ReceivableDebitAccountID)
			add(dt.ReceivableCreditAccountID)
		case RolePayable:
			add(dt.PayableDebitAccountID)
			add(dt.PayableCreditAccountID)
		}
	}

	for _, concept := range c.Concepts {
		if concept.Role == role {
			add(concept.AccountID)
		}
	}

	switch role {
	case RoleReceivable:
		add(c.ModuleReceivableAccountID)
	case RolePayable:
		add(c.ModulePayableAccountID)
	}

	return ids
}

// AllCandidateAccountIDs returns the union of candidates for both roles.
func (c *ClassifierConfig) AllCandidateAccountIDs() []string {
	seen := make(map[string]bool)

	var ids []string
	for _, role := range []BalanceRole{RoleReceivable, RolePayable} {
		for _, id := range c.CandidateAccountIDs(role) {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	return ids
}
