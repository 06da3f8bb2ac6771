package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proposal is the persistence row for a proposal.
type Proposal struct {
	ProposalID   string
	ClientID     string
	Title        string
	Description  string
	Value        decimal.Decimal
	DeliveryDate time.Time
	Status       string
	ProjectID    *string
	AuditFields
}
