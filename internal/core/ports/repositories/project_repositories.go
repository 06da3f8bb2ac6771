package repositories

import (
	"context"
	"time"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	// FindProjectByID retrieves a specific project by its ID.
	FindProjectByID(ctx context.Context, tx pgx.Tx, projectID string) (*domain.Project, error)

	// ListProjectsByClient retrieves all projects owned by a client.
	ListProjectsByClient(ctx context.Context, tx pgx.Tx, clientID string) ([]domain.Project, error)

	// ListProjectsByStatus retrieves all projects in a given status.
	ListProjectsByStatus(ctx context.Context, tx pgx.Tx, status domain.ProjectStatus) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data.
type ProjectWriter interface {
	// SaveProject persists a new project.
	SaveProject(ctx context.Context, tx pgx.Tx, project domain.Project) error

	// UpdateProjectStatus sets the project's status.
	UpdateProjectStatus(ctx context.Context, tx pgx.Tx, projectID string, status domain.ProjectStatus, at time.Time) error

	// UpdateProjectProgress sets the project's derived progress percentage.
	UpdateProjectProgress(ctx context.Context, tx pgx.Tx, projectID string, progress int, at time.Time) error
}

// PaymentRepository defines operations for project payments.
type PaymentRepository interface {
	// SavePayment records a payment received against a project.
	SavePayment(ctx context.Context, tx pgx.Tx, payment domain.Payment) error

	// ListProjectPayments retrieves all payments for a project.
	ListProjectPayments(ctx context.Context, tx pgx.Tx, projectID string) ([]domain.Payment, error)
}

// ProjectRepositoryFacade combines all project-related repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
	PaymentRepository
}
