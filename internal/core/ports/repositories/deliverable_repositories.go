package repositories

import (
	"context"
	"time"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// DeliverableReader defines read operations for deliverable data.
type DeliverableReader interface {
	// FindDeliverableByID retrieves a specific deliverable by its ID.
	FindDeliverableByID(ctx context.Context, tx pgx.Tx, deliverableID string) (*domain.Deliverable, error)

	// ListDeliverablesByProject retrieves all deliverables of a project.
	ListDeliverablesByProject(ctx context.Context, tx pgx.Tx, projectID string) ([]domain.Deliverable, error)
}

// DeliverableWriter defines write operations for deliverable data.
type DeliverableWriter interface {
	// SaveDeliverable persists a new deliverable.
	SaveDeliverable(ctx context.Context, tx pgx.Tx, deliverable domain.Deliverable) error

	// UpdateDeliverableStatus sets the deliverable's status and feedback.
	UpdateDeliverableStatus(ctx context.Context, tx pgx.Tx, deliverableID string, status domain.DeliverableStatus, feedback string, at time.Time) error
}

// DeliverableRepositoryFacade combines all deliverable-related repository interfaces.
type DeliverableRepositoryFacade interface {
	DeliverableReader
	DeliverableWriter
}
