package services

import (
	"context"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/dto"
)

// ProposalSvcFacade defines the proposal workflows.
type ProposalSvcFacade interface {
	// CreateProposal drafts a proposal after checking the client exists and
	// the delivery date is not in the past.
	CreateProposal(ctx context.Context, req dto.CreateProposalRequest) (*domain.Proposal, error)

	// GetProposalByID retrieves a proposal; absence is fatal (ErrNotFound).
	GetProposalByID(ctx context.Context, proposalID string) (*domain.Proposal, error)

	// ListClientProposals retrieves all proposals for a client.
	ListClientProposals(ctx context.Context, clientID string) ([]domain.Proposal, error)

	// ListProposalsByStatus retrieves all proposals in a given status.
	ListProposalsByStatus(ctx context.Context, status domain.ProposalStatus) ([]domain.Proposal, error)

	// UpdateProposalStatus advances the proposal state machine. Direct
	// transitions to ACCEPTED are rejected; acceptance goes through
	// AcceptProposal, which also spawns the project.
	UpdateProposalStatus(ctx context.Context, proposalID string, status domain.ProposalStatus) error

	// AcceptProposal atomically accepts a SENT proposal, spawns a PLANNING
	// project from it, links the project to the client and back-links the
	// proposal. Either all of it happens or none of it does.
	AcceptProposal(ctx context.Context, proposalID string) (*domain.Project, error)
}
