package repositories

import (
	"context"
	"time"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ProposalReader defines read operations for proposal data.
type ProposalReader interface {
	// FindProposalByID retrieves a specific proposal by its ID.
	FindProposalByID(ctx context.Context, tx pgx.Tx, proposalID string) (*domain.Proposal, error)

	// ListProposalsByClient retrieves all proposals for a client.
	ListProposalsByClient(ctx context.Context, tx pgx.Tx, clientID string) ([]domain.Proposal, error)

	// ListProposalsByStatus retrieves all proposals in a given status.
	ListProposalsByStatus(ctx context.Context, tx pgx.Tx, status domain.ProposalStatus) ([]domain.Proposal, error)
}

// ProposalWriter defines write operations for proposal data.
type ProposalWriter interface {
	// SaveProposal persists a new proposal.
	SaveProposal(ctx context.Context, tx pgx.Tx, proposal domain.Proposal) error

	// UpdateProposalStatus sets the proposal's status.
	UpdateProposalStatus(ctx context.Context, tx pgx.Tx, proposalID string, status domain.ProposalStatus, at time.Time) error

	// SetProposalProject links the proposal to the project it spawned.
	SetProposalProject(ctx context.Context, tx pgx.Tx, proposalID, projectID string, at time.Time) error
}

// ProposalRepositoryFacade combines all proposal-related repository interfaces.
type ProposalRepositoryFacade interface {
	ProposalReader
	ProposalWriter
}
