package services

import (
	"context"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
)

// DeliverableSvcFacade defines the deliverable review workflows. Every
// status change recomputes the owning project's progress inside the same
// transaction.
type DeliverableSvcFacade interface {
	// GetDeliverableByID retrieves a deliverable; absence is fatal (ErrNotFound).
	GetDeliverableByID(ctx context.Context, deliverableID string) (*domain.Deliverable, error)

	// ListProjectDeliverables retrieves all deliverables of a project.
	ListProjectDeliverables(ctx context.Context, projectID string) ([]domain.Deliverable, error)

	// MarkDelivered moves a PENDING deliverable to DELIVERED.
	MarkDelivered(ctx context.Context, deliverableID string) error

	// ReviewDeliverable applies a review verdict (APPROVED, REJECTED or
	// REVISION) to a DELIVERED deliverable, storing reviewer feedback.
	ReviewDeliverable(ctx context.Context, deliverableID string, verdict domain.DeliverableStatus, feedback string) error

	// RevertReview moves an APPROVED or REJECTED deliverable back to
	// DELIVERED ("reverted by request").
	RevertReview(ctx context.Context, deliverableID string) error
}
