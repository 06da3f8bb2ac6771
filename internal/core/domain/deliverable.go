package domain

import "time"

// DeliverableStatus indicates the review state of a deliverable.
type DeliverableStatus string

const (
	DeliverablePending   DeliverableStatus = "PENDING"
	DeliverableDelivered DeliverableStatus = "DELIVERED"
	DeliverableApproved  DeliverableStatus = "APPROVED"
	DeliverableRejected  DeliverableStatus = "REJECTED"
	DeliverableRevision  DeliverableStatus = "REVISION"
)

// deliverableTransitions is the allowed-transition set for deliverables.
// Review verdicts are only reachable from DELIVERED; APPROVED and REJECTED
// may be reverted back to DELIVERED on request.
var deliverableTransitions = map[DeliverableStatus][]DeliverableStatus{
	DeliverablePending:   {DeliverableDelivered},
	DeliverableDelivered: {DeliverableApproved, DeliverableRejected, DeliverableRevision},
	DeliverableApproved:  {DeliverableDelivered},
	DeliverableRejected:  {DeliverableDelivered},
	DeliverableRevision:  {DeliverableDelivered},
}

// CanTransitionTo reports whether a deliverable in status s may move to target.
func (s DeliverableStatus) CanTransitionTo(target DeliverableStatus) bool {
	for _, allowed := range deliverableTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a member of the deliverable status enumeration.
func (s DeliverableStatus) IsValid() bool {
	_, ok := deliverableTransitions[s]
	return ok
}

// IsReviewVerdict reports whether s is an outcome of a review.
func (s DeliverableStatus) IsReviewVerdict() bool {
	return s == DeliverableApproved || s == DeliverableRejected || s == DeliverableRevision
}

// Deliverable represents one unit of work owed to a project. The
// deliverables collection is the single source of truth; the owning
// project only carries the derived progress percentage.
type Deliverable struct {
	DeliverableID string            `json:"deliverableID" validate:"required"`
	ProjectID     string            `json:"projectID" validate:"required"`
	Name          string            `json:"name" validate:"required,min=5,max=100"`
	Description   string            `json:"description,omitempty" validate:"max=500"`
	Deadline      time.Time         `json:"deadline"`
	Status        DeliverableStatus `json:"status" validate:"required"`
	Feedback      string            `json:"feedback,omitempty"`
	Attachments   []string          `json:"attachments"`
	AuditFields
}
