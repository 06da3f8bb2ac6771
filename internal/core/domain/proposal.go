package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalStatus indicates where a proposal sits in its lifecycle.
type ProposalStatus string

const (
	ProposalDraft    ProposalStatus = "DRAFT"
	ProposalSent     ProposalStatus = "SENT"
	ProposalAccepted ProposalStatus = "ACCEPTED"
	ProposalRejected ProposalStatus = "REJECTED"
	ProposalArchived ProposalStatus = "ARCHIVED"
)

// proposalTransitions is the allowed-transition set for proposals.
// ACCEPTED is only ever reached through the accept workflow, which also
// spawns the project; the table still includes it so that the workflow can
// share the same gate.
var proposalTransitions = map[ProposalStatus][]ProposalStatus{
	ProposalDraft:    {ProposalSent},
	ProposalSent:     {ProposalAccepted, ProposalRejected},
	ProposalAccepted: {ProposalArchived},
	ProposalRejected: {ProposalArchived},
	ProposalArchived: {},
}

// CanTransitionTo reports whether a proposal in status s may move to target.
func (s ProposalStatus) CanTransitionTo(target ProposalStatus) bool {
	for _, allowed := range proposalTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a member of the proposal status enumeration.
func (s ProposalStatus) IsValid() bool {
	_, ok := proposalTransitions[s]
	return ok
}

// Proposal represents a pitched piece of work for one client. An accepted
// proposal produces exactly one project.
type Proposal struct {
	ProposalID   string          `json:"proposalID" validate:"required"`
	ClientID     string          `json:"clientID" validate:"required"`
	Title        string          `json:"title" validate:"required,min=10,max=100"`
	Description  string          `json:"description" validate:"required,min=50"`
	Value        decimal.Decimal `json:"value"`
	DeliveryDate time.Time       `json:"deliveryDate"`
	Status       ProposalStatus  `json:"status" validate:"required"`
	ProjectID    *string         `json:"projectID,omitempty"` // set when accepted
	AuditFields
}

// maxProposalValue caps how much a single proposal can be worth.
var maxProposalValue = decimal.NewFromInt(1000000)

// ValidateValue checks the proposal value is positive and within bounds.
func (p Proposal) ValidateValue() bool {
	return p.Value.IsPositive() && p.Value.LessThanOrEqual(maxProposalValue)
}
