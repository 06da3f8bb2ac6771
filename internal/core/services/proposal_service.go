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

// proposalService implements the ProposalSvcFacade interface
type proposalService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	proposalRepo portsrepo.ProposalRepositoryFacade
	projectRepo  portsrepo.ProjectRepositoryFacade
	clientRepo   portsrepo.ClientRepositoryFacade
}

// NewProposalService creates a new proposal service with the provided dependencies
func NewProposalService(
	txManager portsrepo.TransactionManager,
	proposalRepo portsrepo.ProposalRepositoryFacade,
	projectRepo portsrepo.ProjectRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
) portssvc.ProposalSvcFacade {
	return &proposalService{
		txManager:    txManager,
		proposalRepo: proposalRepo,
		projectRepo:  projectRepo,
		clientRepo:   clientRepo,
	}
}

// Ensure proposalService implements the ProposalSvcFacade interface
var _ portssvc.ProposalSvcFacade = (*proposalService)(nil)

// CreateProposal drafts a proposal for an existing client.
func (s *proposalService) CreateProposal(ctx context.Context, req dto.CreateProposalRequest) (*domain.Proposal, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	now := time.Now()
	if req.DeliveryDate.Before(now) {
		return nil, apperrors.NewValidationError("delivery date cannot be in the past")
	}

	proposal := domain.Proposal{
		ProposalID:   uuid.NewString(),
		ClientID:     req.ClientID,
		Title:        req.Title,
		Description:  req.Description,
		Value:        req.Value,
		DeliveryDate: req.DeliveryDate,
		Status:       domain.ProposalDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		if _, err := s.clientRepo.FindClientByID(ctx, tx, req.ClientID); err != nil {
			return err
		}
		return s.proposalRepo.SaveProposal(ctx, tx, proposal)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to create proposal",
				slog.String("client_id", req.ClientID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Proposal created successfully",
		slog.String("proposal_id", proposal.ProposalID),
		slog.String("client_id", proposal.ClientID))
	return &proposal, nil
}

// GetProposalByID retrieves a proposal by its ID
func (s *proposalService) GetProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error) {
	proposal, err := s.proposalRepo.FindProposalByID(ctx, nil, proposalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find proposal by ID",
				slog.String("proposal_id", proposalID))
		}
		return nil, err
	}
	return proposal, nil
}

// ListClientProposals retrieves all proposals for a client
func (s *proposalService) ListClientProposals(ctx context.Context, clientID string) ([]domain.Proposal, error) {
	proposals, err := s.proposalRepo.ListProposalsByClient(ctx, nil, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list proposals for client",
			slog.String("client_id", clientID))
		return nil, err
	}
	if proposals == nil {
		return []domain.Proposal{}, nil
	}
	return proposals, nil
}

// ListProposalsByStatus retrieves all proposals in a given status
func (s *proposalService) ListProposalsByStatus(ctx context.Context, status domain.ProposalStatus) ([]domain.Proposal, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("unknown proposal status " + string(status))
	}
	proposals, err := s.proposalRepo.ListProposalsByStatus(ctx, nil, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list proposals by status",
			slog.String("status", string(status)))
		return nil, err
	}
	if proposals == nil {
		return []domain.Proposal{}, nil
	}
	return proposals, nil
}

// UpdateProposalStatus advances the proposal state machine. ACCEPTED is
// reserved for AcceptProposal, which also spawns the project.
func (s *proposalService) UpdateProposalStatus(ctx context.Context, proposalID string, status domain.ProposalStatus) error {
	if !status.IsValid() {
		return apperrors.NewValidationError("unknown proposal status " + string(status))
	}
	if status == domain.ProposalAccepted {
		return apperrors.NewInvalidTransitionError("proposals are accepted through the accept workflow")
	}

	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		proposal, err := s.proposalRepo.FindProposalByID(ctx, tx, proposalID)
		if err != nil {
			return err
		}
		if !proposal.Status.CanTransitionTo(status) {
			return apperrors.NewInvalidTransitionError(
				"proposal " + proposalID + " cannot move from " + string(proposal.Status) + " to " + string(status))
		}
		return s.proposalRepo.UpdateProposalStatus(ctx, tx, proposalID, status, time.Now())
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to update proposal status",
				slog.String("proposal_id", proposalID),
				slog.String("status", string(status)))
		}
		return err
	}

	s.LogInfo(ctx, "Proposal status updated",
		slog.String("proposal_id", proposalID),
		slog.String("status", string(status)))
	return nil
}

// AcceptProposal atomically accepts a SENT proposal and spawns its project.
// Either the proposal ends up ACCEPTED with a linked project and the client
// carries the project reference, or nothing changes at all.
func (s *proposalService) AcceptProposal(ctx context.Context, proposalID string) (*domain.Project, error) {
	var project *domain.Project
	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		proposal, err := s.proposalRepo.FindProposalByID(ctx, tx, proposalID)
		if err != nil {
			return err
		}
		if !proposal.Status.CanTransitionTo(domain.ProposalAccepted) {
			return apperrors.NewInvalidTransitionError(
				"only SENT proposals can be accepted, proposal " + proposalID + " is " + string(proposal.Status))
		}

		now := time.Now()
		if err := s.proposalRepo.UpdateProposalStatus(ctx, tx, proposalID, domain.ProposalAccepted, now); err != nil {
			return err
		}

		spawned := projectFromProposal(*proposal, now)
		if err := s.projectRepo.SaveProject(ctx, tx, spawned); err != nil {
			return err
		}

		if err := s.clientRepo.AddProjectToClient(ctx, tx, proposal.ClientID, spawned.ProjectID); err != nil {
			return err
		}

		if err := s.proposalRepo.SetProposalProject(ctx, tx, proposalID, spawned.ProjectID, now); err != nil {
			return err
		}

		project = &spawned
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to accept proposal",
				slog.String("proposal_id", proposalID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Proposal accepted, project spawned",
		slog.String("proposal_id", proposalID),
		slog.String("project_id", project.ProjectID))
	return project, nil
}

// projectFromProposal derives the project a freshly accepted proposal spawns:
// value becomes budget, delivery date becomes deadline.
func projectFromProposal(proposal domain.Proposal, now time.Time) domain.Project {
	name := "Project: " + proposal.Title
	if len(name) > 100 {
		name = name[:100]
	}
	description := proposal.Description
	if len(description) > 500 {
		description = description[:500]
	}
	return domain.Project{
		ProjectID:   uuid.NewString(),
		Name:        name,
		Description: description,
		ClientID:    proposal.ClientID,
		ProposalID:  proposal.ProposalID,
		Budget:      proposal.Value,
		Status:      domain.ProjectPlanning,
		StartDate:   now,
		Deadline:    proposal.DeliveryDate,
		Progress:    0,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}
