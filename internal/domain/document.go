package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentState is the lifecycle state of an accounting document.
type DocumentState string

const (
	DocumentStateActive   DocumentState = "active"
	DocumentStateVoided   DocumentState = "voided"
	DocumentStateArchived DocumentState = "archived"
)

// MovementLine is one posting line of a document. It is owned by its
// document and has no identity outside it. Idiomatic postings carry a
// single non-zero side, but both sides may be non-zero and are summed
// algebraically.
type MovementLine struct {
	AccountID string
	Debit     decimal.Decimal
	Credit    decimal.Decimal
}

// Document is an accounting document (invoice, payment, note) produced by
// the posting service. It is read-only for the reconciliation engine.
type Document struct {
	ID             string
	TenantID       string
	CounterpartyID string
	SubUnitID      string
	Date           time.Time
	Voided         bool
	State          DocumentState
	Lines          []MovementLine
}

// ImpactKind buckets a document by its net effect on a classified
// account set.
type ImpactKind string

const (
	// ImpactIncreasing means the document raised the owed balance (invoice-like).
	ImpactIncreasing ImpactKind = "increasing"
	// ImpactDecreasing means the document lowered the owed balance (payment-like).
	ImpactDecreasing ImpactKind = "decreasing"
	// ImpactNeutral means the document does not touch the classified accounts.
	ImpactNeutral ImpactKind = "neutral"
)

// Impact is the net effect of one document on one account set.
// Amount is always non-negative; the direction lives in Kind.
type Impact struct {
	Kind   ImpactKind
	Amount decimal.Decimal
}

// ImpactOn computes the document's net impact restricted to the account
// set. The bucketing is impact-based, not type-based: upstream document
// type tags are never consulted, so a mislabeled "invoice" that nets to a
// decrease is treated as a payment-like event.
func (d *Document) ImpactOn(set AccountRoleSet) Impact {
	net := decimal.Zero
	for _, line := range d.Lines {
		if !set.Contains(line.AccountID) {
			continue
		}

		switch set.Role {
		case RolePayable:
			net = net.Add(line.Credit.Sub(line.Debit))
		default:
			net = net.Add(line.Debit.Sub(line.Credit))
		}
	}

	switch {
	case net.IsPositive():
		return Impact{Kind: ImpactIncreasing, Amount: net}
	case net.IsNegative():
		return Impact{Kind: ImpactDecreasing, Amount: net.Abs()}
	default:
		return Impact{Kind: ImpactNeutral, Amount: decimal.Zero}
	}
}

// ClassifiedEvent is a document reduced to its reconciliation-relevant
// shape for one balance role.
type ClassifiedEvent struct {
	DocumentID string
	Date       time.Time
	SubUnitID  string
	Role       BalanceRole
	Kind       ImpactKind
	Amount     decimal.Decimal
}
