package domain

import "time"

// ContractStatus indicates the state of a contract.
type ContractStatus string

const (
	ContractDraft   ContractStatus = "DRAFT"
	ContractSent    ContractStatus = "SENT"
	ContractSigned  ContractStatus = "SIGNED"
	ContractExpired ContractStatus = "EXPIRED"
)

var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractDraft:   {ContractSent},
	ContractSent:    {ContractSigned, ContractExpired},
	ContractSigned:  {ContractExpired},
	ContractExpired: {},
}

// CanTransitionTo reports whether a contract in status s may move to target.
func (s ContractStatus) CanTransitionTo(target ContractStatus) bool {
	for _, allowed := range contractTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a member of the contract status enumeration.
func (s ContractStatus) IsValid() bool {
	_, ok := contractTransitions[s]
	return ok
}

// Contract represents a legal agreement with a client, optionally tied to a
// proposal and project. SignedAt and SignedBy are set only once the contract
// reaches SIGNED.
type Contract struct {
	ContractID   string         `json:"contractID" validate:"required"`
	ClientID     string         `json:"clientID" validate:"required"`
	ProposalID   *string        `json:"proposalID,omitempty"`
	ProjectID    *string        `json:"projectID,omitempty"`
	Title        string         `json:"title" validate:"required,min=10,max=100"`
	Content      string         `json:"content" validate:"required,min=100"`
	Terms        []string       `json:"terms" validate:"required,min=1,dive,required"`
	Status       ContractStatus `json:"status" validate:"required"`
	StartDate    time.Time      `json:"startDate"`
	EndDate      time.Time      `json:"endDate"`
	SignedAt     *time.Time     `json:"signedAt,omitempty"`
	SignedBy     string         `json:"signedBy,omitempty"`
	DocumentPath string         `json:"documentPath,omitempty"` // artifact reference from document generation
	AuditFields
}
