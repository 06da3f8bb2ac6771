package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/apperrors"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	portsrepo "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/repositories"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/models"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/utils/mapping"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/utils/validation"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProposalRepository struct {
	BaseRepository
}

// newPgxProposalRepository creates a new repository for proposal data.
func newPgxProposalRepository(pool *pgxpool.Pool) portsrepo.ProposalRepositoryFacade {
	return &PgxProposalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProposalRepository implements portsrepo.ProposalRepositoryFacade
var _ portsrepo.ProposalRepositoryFacade = (*PgxProposalRepository)(nil)

const proposalColumns = `proposal_id, client_id, title, description, value, delivery_date, status, project_id, created_at, last_updated_at`

func (r *PgxProposalRepository) SaveProposal(ctx context.Context, tx pgx.Tx, proposal domain.Proposal) error {
	if err := validation.Struct(proposal); err != nil {
		return err
	}
	if !proposal.ValidateValue() {
		return apperrors.NewValidationError("proposal value must be positive and within bounds")
	}
	m := mapping.ToModelProposal(proposal)
	query := `
		INSERT INTO proposals (` + proposalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.conn(tx).Exec(ctx, query,
		m.ProposalID,
		m.ClientID,
		m.Title,
		m.Description,
		m.Value,
		m.DeliveryDate,
		m.Status,
		m.ProjectID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save proposal %s: %w", m.ProposalID, err)
	}
	return nil
}

func (r *PgxProposalRepository) FindProposalByID(ctx context.Context, tx pgx.Tx, proposalID string) (*domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE proposal_id = $1;`
	var m models.Proposal
	err := r.conn(tx).QueryRow(ctx, query, proposalID).Scan(
		&m.ProposalID,
		&m.ClientID,
		&m.Title,
		&m.Description,
		&m.Value,
		&m.DeliveryDate,
		&m.Status,
		&m.ProjectID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find proposal by ID %s: %w", proposalID, err)
	}
	d := mapping.ToDomainProposal(m)
	return &d, nil
}

func (r *PgxProposalRepository) ListProposalsByClient(ctx context.Context, tx pgx.Tx, clientID string) ([]domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE client_id = $1 ORDER BY created_at DESC;`
	return r.queryProposals(ctx, tx, query, clientID)
}

func (r *PgxProposalRepository) ListProposalsByStatus(ctx context.Context, tx pgx.Tx, status domain.ProposalStatus) ([]domain.Proposal, error) {
	query := `SELECT ` + proposalColumns + ` FROM proposals WHERE status = $1 ORDER BY created_at DESC;`
	return r.queryProposals(ctx, tx, query, string(status))
}

func (r *PgxProposalRepository) UpdateProposalStatus(ctx context.Context, tx pgx.Tx, proposalID string, status domain.ProposalStatus, at time.Time) error {
	if !status.IsValid() {
		return apperrors.NewValidationError("unknown proposal status " + string(status))
	}
	query := `UPDATE proposals SET status = $2, last_updated_at = $3 WHERE proposal_id = $1;`
	tag, err := r.conn(tx).Exec(ctx, query, proposalID, string(status), at)
	if err != nil {
		return fmt.Errorf("failed to update proposal %s status: %w", proposalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProposalRepository) SetProposalProject(ctx context.Context, tx pgx.Tx, proposalID, projectID string, at time.Time) error {
	query := `UPDATE proposals SET project_id = $2, last_updated_at = $3 WHERE proposal_id = $1;`
	tag, err := r.conn(tx).Exec(ctx, query, proposalID, projectID, at)
	if err != nil {
		return fmt.Errorf("failed to link proposal %s to project %s: %w", proposalID, projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProposalRepository) queryProposals(ctx context.Context, tx pgx.Tx, query string, args ...any) ([]domain.Proposal, error) {
	rows, err := r.conn(tx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query proposals: %w", err)
	}
	defer rows.Close()

	var ms []models.Proposal
	for rows.Next() {
		var m models.Proposal
		if err := rows.Scan(
			&m.ProposalID,
			&m.ClientID,
			&m.Title,
			&m.Description,
			&m.Value,
			&m.DeliveryDate,
			&m.Status,
			&m.ProjectID,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan proposal row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating proposal rows: %w", err)
	}
	return mapping.ToDomainProposalSlice(ms), nil
}
