package usecase

import (
	"github.com/iho/cartera/internal/domain"
)

// ClassifyAccounts derives the account set representing one balance role
// from the tenant configuration snapshot. Candidates are gathered from
// document-type defaults, concept overrides and the centralized module
// account, then filtered by the chart-of-accounts code prefix so that a
// misconfigured cash or bank account can never leak into a receivable
// set. Pure; an empty result is valid.
func ClassifyAccounts(cfg *domain.ClassifierConfig, accounts map[string]domain.Account, role domain.BalanceRole) domain.AccountRoleSet {
	var ids []string

	for _, id := range cfg.CandidateAccountIDs(role) {
		account, ok := accounts[id]
		if !ok {
			// Configured ID without a chart entry: stale configuration,
			// excluded rather than trusted.
			continue
		}

		if account.MatchesRolePrefix(role, *cfg) {
			ids = append(ids, id)
		}
	}

	return domain.NewAccountRoleSet(role, ids...)
}

// BuildEventStream classifies each document against the account set and
// drops voided documents and neutral impacts. Input order is preserved,
// so a (date, id)-ordered document list yields a (date, id)-ordered event
// stream.
func BuildEventStream(documents []*domain.Document, set domain.AccountRoleSet) []domain.ClassifiedEvent {
	events := make([]domain.ClassifiedEvent, 0, len(documents))

	for _, doc := range documents {
		if doc.Voided || doc.State == domain.DocumentStateVoided {
			continue
		}

		impact := doc.ImpactOn(set)
		if impact.Kind == domain.ImpactNeutral {
			continue
		}

		events = append(events, domain.ClassifiedEvent{
			DocumentID: doc.ID,
			Date:       doc.Date,
			SubUnitID:  doc.SubUnitID,
			Role:       set.Role,
			Kind:       impact.Kind,
			Amount:     impact.Amount,
		})
	}

	return events
}
