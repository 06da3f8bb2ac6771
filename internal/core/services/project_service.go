package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/apperrors"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	portsrepo "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/repositories"
	portssvc "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/services"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/dto"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/utils/validation"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// projectService implements the ProjectSvcFacade interface
type projectService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	projectRepo     portsrepo.ProjectRepositoryFacade
	deliverableRepo portsrepo.DeliverableRepositoryFacade
}

// NewProjectService creates a new project service with the provided dependencies
func NewProjectService(
	txManager portsrepo.TransactionManager,
	projectRepo portsrepo.ProjectRepositoryFacade,
	deliverableRepo portsrepo.DeliverableRepositoryFacade,
) portssvc.ProjectSvcFacade {
	return &projectService{
		txManager:       txManager,
		projectRepo:     projectRepo,
		deliverableRepo: deliverableRepo,
	}
}

// Ensure projectService implements the ProjectSvcFacade interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// GetProjectByID retrieves a project by its ID
func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, nil, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project by ID",
				slog.String("project_id", projectID))
		}
		return nil, err
	}
	return project, nil
}

// ListProjectsByClient retrieves all projects owned by a client
func (s *projectService) ListProjectsByClient(ctx context.Context, clientID string) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjectsByClient(ctx, nil, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects for client",
			slog.String("client_id", clientID))
		return nil, err
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

// ListProjectsByStatus retrieves all projects in a given status
func (s *projectService) ListProjectsByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("unknown project status " + string(status))
	}
	projects, err := s.projectRepo.ListProjectsByStatus(ctx, nil, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects by status",
			slog.String("status", string(status)))
		return nil, err
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

// UpdateProjectStatus sets the project status. Any member of the status
// enumeration is a legal target; no transition table is enforced.
func (s *projectService) UpdateProjectStatus(ctx context.Context, projectID string, status domain.ProjectStatus) error {
	if !status.IsValid() {
		return apperrors.NewValidationError("unknown project status " + string(status))
	}

	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		if _, err := s.projectRepo.FindProjectByID(ctx, tx, projectID); err != nil {
			return err
		}
		return s.projectRepo.UpdateProjectStatus(ctx, tx, projectID, status, time.Now())
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update project status",
				slog.String("project_id", projectID),
				slog.String("status", string(status)))
		}
		return err
	}

	s.LogInfo(ctx, "Project status updated",
		slog.String("project_id", projectID),
		slog.String("status", string(status)))
	return nil
}

// AddDeliverable appends a PENDING deliverable to a project that still
// accepts work, recomputing project progress in the same transaction so the
// percentage never lags the deliverable set that produced it.
func (s *projectService) AddDeliverable(ctx context.Context, projectID string, req dto.AddDeliverableRequest) (*domain.Deliverable, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	now := time.Now()
	deliverable := domain.Deliverable{
		DeliverableID: uuid.NewString(),
		ProjectID:     projectID,
		Name:          req.Name,
		Description:   req.Description,
		Deadline:      req.Deadline,
		Status:        domain.DeliverablePending,
		Attachments:   req.Attachments,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		project, err := s.projectRepo.FindProjectByID(ctx, tx, projectID)
		if err != nil {
			return err
		}
		if project.Status.IsClosed() {
			return apperrors.NewValidationError(
				"project " + projectID + " is " + string(project.Status) + " and no longer accepts deliverables")
		}

		if err := s.deliverableRepo.SaveDeliverable(ctx, tx, deliverable); err != nil {
			return err
		}

		deliverables, err := s.deliverableRepo.ListDeliverablesByProject(ctx, tx, projectID)
		if err != nil {
			return err
		}
		return s.projectRepo.UpdateProjectProgress(ctx, tx, projectID, domain.ComputeProgress(deliverables), now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to add deliverable",
				slog.String("project_id", projectID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Deliverable added to project",
		slog.String("project_id", projectID),
		slog.String("deliverable_id", deliverable.DeliverableID))
	return &deliverable, nil
}

// RecordPayment records a payment received against the project.
func (s *projectService) RecordPayment(ctx context.Context, projectID string, req dto.RecordPaymentRequest) (*domain.Payment, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("payment amount must be positive")
	}

	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		ProjectID: projectID,
		Amount:    req.Amount,
		Date:      req.Date,
		Method:    domain.PaymentMethod(req.Method),
		Reference: req.Reference,
		CreatedAt: time.Now(),
	}

	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		if _, err := s.projectRepo.FindProjectByID(ctx, tx, projectID); err != nil {
			return err
		}
		return s.projectRepo.SavePayment(ctx, tx, payment)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to record payment",
				slog.String("project_id", projectID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("project_id", projectID),
		slog.String("payment_id", payment.PaymentID))
	return &payment, nil
}

// ListProjectPayments retrieves all payments for a project
func (s *projectService) ListProjectPayments(ctx context.Context, projectID string) ([]domain.Payment, error) {
	payments, err := s.projectRepo.ListProjectPayments(ctx, nil, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments",
			slog.String("project_id", projectID))
		return nil, err
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}
