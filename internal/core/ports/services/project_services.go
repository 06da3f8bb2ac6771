package services

import (
	"context"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/dto"
)

// ProjectSvcFacade defines the project workflows.
type ProjectSvcFacade interface {
	// GetProjectByID retrieves a project; absence is fatal (ErrNotFound).
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjectsByClient retrieves all projects owned by a client.
	ListProjectsByClient(ctx context.Context, clientID string) ([]domain.Project, error)

	// ListProjectsByStatus retrieves all projects in a given status.
	ListProjectsByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error)

	// UpdateProjectStatus sets the project status. Any member of the status
	// enumeration is accepted as a target.
	UpdateProjectStatus(ctx context.Context, projectID string, status domain.ProjectStatus) error

	// AddDeliverable validates the project still accepts work and appends a
	// PENDING deliverable, recomputing project progress in the same
	// transaction.
	AddDeliverable(ctx context.Context, projectID string, req dto.AddDeliverableRequest) (*domain.Deliverable, error)

	// RecordPayment records a payment received against the project.
	RecordPayment(ctx context.Context, projectID string, req dto.RecordPaymentRequest) (*domain.Payment, error)

	// ListProjectPayments retrieves all payments for a project.
	ListProjectPayments(ctx context.Context, projectID string) ([]domain.Payment, error)
}
