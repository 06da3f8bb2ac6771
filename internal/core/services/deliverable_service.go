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
	"github.com/jackc/pgx/v5"
)

// deliverableService implements the DeliverableSvcFacade interface
type deliverableService struct {
	BaseService
	txManager       portsrepo.TransactionManager
	deliverableRepo portsrepo.DeliverableRepositoryFacade
	projectRepo     portsrepo.ProjectRepositoryFacade
}

// NewDeliverableService creates a new deliverable service with the provided dependencies
func NewDeliverableService(
	txManager portsrepo.TransactionManager,
	deliverableRepo portsrepo.DeliverableRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
) portssvc.DeliverableSvcFacade {
	return &deliverableService{
		txManager:       txManager,
		deliverableRepo: deliverableRepo,
		projectRepo:     projectRepo,
	}
}

// Ensure deliverableService implements the DeliverableSvcFacade interface
var _ portssvc.DeliverableSvcFacade = (*deliverableService)(nil)

// GetDeliverableByID retrieves a deliverable by its ID
func (s *deliverableService) GetDeliverableByID(ctx context.Context, deliverableID string) (*domain.Deliverable, error) {
	deliverable, err := s.deliverableRepo.FindDeliverableByID(ctx, nil, deliverableID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find deliverable by ID",
				slog.String("deliverable_id", deliverableID))
		}
		return nil, err
	}
	return deliverable, nil
}

// ListProjectDeliverables retrieves all deliverables of a project
func (s *deliverableService) ListProjectDeliverables(ctx context.Context, projectID string) ([]domain.Deliverable, error) {
	deliverables, err := s.deliverableRepo.ListDeliverablesByProject(ctx, nil, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deliverables",
			slog.String("project_id", projectID))
		return nil, err
	}
	if deliverables == nil {
		return []domain.Deliverable{}, nil
	}
	return deliverables, nil
}

// MarkDelivered moves a PENDING deliverable to DELIVERED.
func (s *deliverableService) MarkDelivered(ctx context.Context, deliverableID string) error {
	return s.transition(ctx, deliverableID, domain.DeliverableDelivered, "")
}

// ReviewDeliverable applies a review verdict to a DELIVERED deliverable.
// APPROVED, REJECTED and REVISION are only reachable from DELIVERED.
func (s *deliverableService) ReviewDeliverable(ctx context.Context, deliverableID string, verdict domain.DeliverableStatus, feedback string) error {
	if !verdict.IsReviewVerdict() {
		return apperrors.NewValidationError("verdict must be APPROVED, REJECTED or REVISION, got " + string(verdict))
	}
	return s.transition(ctx, deliverableID, verdict, feedback)
}

// RevertReview moves an APPROVED or REJECTED deliverable back to DELIVERED.
func (s *deliverableService) RevertReview(ctx context.Context, deliverableID string) error {
	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		deliverable, err := s.deliverableRepo.FindDeliverableByID(ctx, tx, deliverableID)
		if err != nil {
			return err
		}
		if deliverable.Status != domain.DeliverableApproved && deliverable.Status != domain.DeliverableRejected {
			return apperrors.NewInvalidTransitionError(
				"only APPROVED or REJECTED deliverables can be reverted, " + deliverableID + " is " + string(deliverable.Status))
		}
		return s.applyStatus(ctx, tx, deliverable, domain.DeliverableDelivered, "reverted by request")
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to revert deliverable review",
				slog.String("deliverable_id", deliverableID))
		}
		return err
	}

	s.LogInfo(ctx, "Deliverable review reverted",
		slog.String("deliverable_id", deliverableID))
	return nil
}

// transition runs one gated status change plus the progress recompute under
// a single transaction.
func (s *deliverableService) transition(ctx context.Context, deliverableID string, target domain.DeliverableStatus, feedback string) error {
	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		deliverable, err := s.deliverableRepo.FindDeliverableByID(ctx, tx, deliverableID)
		if err != nil {
			return err
		}
		if !deliverable.Status.CanTransitionTo(target) {
			return apperrors.NewInvalidTransitionError(
				"deliverable " + deliverableID + " cannot move from " + string(deliverable.Status) + " to " + string(target))
		}
		return s.applyStatus(ctx, tx, deliverable, target, feedback)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to change deliverable status",
				slog.String("deliverable_id", deliverableID),
				slog.String("target", string(target)))
		}
		return err
	}

	s.LogInfo(ctx, "Deliverable status changed",
		slog.String("deliverable_id", deliverableID),
		slog.String("status", string(target)))
	return nil
}

// applyStatus writes the status change and recomputes the owning project's
// progress inside the caller's transaction. Progress must never be visible
// as stale relative to the deliverable states that produced it.
func (s *deliverableService) applyStatus(ctx context.Context, tx pgx.Tx, deliverable *domain.Deliverable, target domain.DeliverableStatus, feedback string) error {
	now := time.Now()
	if err := s.deliverableRepo.UpdateDeliverableStatus(ctx, tx, deliverable.DeliverableID, target, feedback, now); err != nil {
		return err
	}

	deliverables, err := s.deliverableRepo.ListDeliverablesByProject(ctx, tx, deliverable.ProjectID)
	if err != nil {
		return err
	}
	return s.projectRepo.UpdateProjectProgress(ctx, tx, deliverable.ProjectID, domain.ComputeProgress(deliverables), now)
}
