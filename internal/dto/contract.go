package dto

import "time"

// CreateContractRequest defines the data needed to draft a contract.
type CreateContractRequest struct {
	ClientID   string    `json:"clientID" validate:"required"`
	ProposalID *string   `json:"proposalID,omitempty"`
	ProjectID  *string   `json:"projectID,omitempty"`
	Title      string    `json:"title" validate:"required,min=10,max=100"`
	Content    string    `json:"content" validate:"required,min=100"`
	Terms      []string  `json:"terms" validate:"required,min=1,dive,required"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
}
