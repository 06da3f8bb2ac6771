package models

import "time"

// Contract is the persistence row for a contract.
type Contract struct {
	ContractID   string
	ClientID     string
	ProposalID   *string
	ProjectID    *string
	Title        string
	Content      string
	Terms        []string
	Status       string
	StartDate    time.Time
	EndDate      time.Time
	SignedAt     *time.Time
	SignedBy     string
	DocumentPath string
	AuditFields
}
