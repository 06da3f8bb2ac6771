package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus indicates the state of a project.
type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "PLANNING"
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectPaused    ProjectStatus = "PAUSED"
	ProjectCompleted ProjectStatus = "COMPLETED"
	ProjectCancelled ProjectStatus = "CANCELLED"
)

// projectStatuses is the fixed enumeration of project states. Project status
// updates are gated on set membership only; no stricter transition table is
// enforced.
var projectStatuses = map[ProjectStatus]struct{}{
	ProjectPlanning:  {},
	ProjectActive:    {},
	ProjectPaused:    {},
	ProjectCompleted: {},
	ProjectCancelled: {},
}

// IsValid reports whether s is a member of the project status enumeration.
func (s ProjectStatus) IsValid() bool {
	_, ok := projectStatuses[s]
	return ok
}

// IsClosed reports whether the project no longer accepts new deliverables.
func (s ProjectStatus) IsClosed() bool {
	return s == ProjectCompleted || s == ProjectCancelled
}

// Project represents an engagement spawned from an accepted proposal.
// Progress is a derived percentage recomputed from the project's
// deliverables on every deliverable status change.
type Project struct {
	ProjectID   string          `json:"projectID" validate:"required"`
	Name        string          `json:"name" validate:"required,min=5,max=100"`
	Description string          `json:"description,omitempty" validate:"max=500"`
	ClientID    string          `json:"clientID" validate:"required"`
	ProposalID  string          `json:"proposalID" validate:"required"`
	Budget      decimal.Decimal `json:"budget"`
	Status      ProjectStatus   `json:"status" validate:"required"`
	StartDate   time.Time       `json:"startDate"`
	Deadline    time.Time       `json:"deadline"`
	Progress    int             `json:"progress" validate:"min=0,max=100"`
	AuditFields
}

// Payment is a payment received against a project.
type Payment struct {
	PaymentID string          `json:"paymentID" validate:"required"`
	ProjectID string          `json:"projectID" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Method    PaymentMethod   `json:"method" validate:"required"`
	Reference string          `json:"reference" validate:"max=100"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ComputeProgress derives the completion percentage from deliverable states.
// A deliverable counts as reviewed once it is APPROVED or REJECTED. Returns 0
// when there are no deliverables.
func ComputeProgress(deliverables []Deliverable) int {
	if len(deliverables) == 0 {
		return 0
	}
	reviewed := 0
	for _, d := range deliverables {
		if d.Status == DeliverableApproved || d.Status == DeliverableRejected {
			reviewed++
		}
	}
	return int(float64(reviewed)/float64(len(deliverables))*100 + 0.5)
}
