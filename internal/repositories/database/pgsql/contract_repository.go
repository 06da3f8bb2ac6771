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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxContractRepository struct {
	BaseRepository
}

// newPgxContractRepository creates a new repository for contract data.
func newPgxContractRepository(pool *pgxpool.Pool) portsrepo.ContractRepositoryFacade {
	return &PgxContractRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxContractRepository implements portsrepo.ContractRepositoryFacade
var _ portsrepo.ContractRepositoryFacade = (*PgxContractRepository)(nil)

const contractColumns = `contract_id, client_id, proposal_id, project_id, title, content, terms, status, start_date, end_date, signed_at, signed_by, document_path, created_at, last_updated_at`

func (r *PgxContractRepository) SaveContract(ctx context.Context, tx pgx.Tx, contract domain.Contract) error {
	if err := validation.Struct(contract); err != nil {
		return err
	}
	m := mapping.ToModelContract(contract)
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.conn(tx).Exec(ctx, query,
		m.ContractID,
		m.ClientID,
		m.ProposalID,
		m.ProjectID,
		m.Title,
		m.Content,
		m.Terms,
		m.Status,
		m.StartDate,
		m.EndDate,
		m.SignedAt,
		m.SignedBy,
		m.DocumentPath,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewNotFoundError("referenced entity missing for contract " + m.ContractID)
		}
		return fmt.Errorf("failed to save contract %s: %w", m.ContractID, err)
	}
	return nil
}

func (r *PgxContractRepository) FindContractByID(ctx context.Context, tx pgx.Tx, contractID string) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE contract_id = $1;`
	var m models.Contract
	err := r.conn(tx).QueryRow(ctx, query, contractID).Scan(
		&m.ContractID,
		&m.ClientID,
		&m.ProposalID,
		&m.ProjectID,
		&m.Title,
		&m.Content,
		&m.Terms,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&m.SignedAt,
		&m.SignedBy,
		&m.DocumentPath,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contract by ID %s: %w", contractID, err)
	}
	d := mapping.ToDomainContract(m)
	return &d, nil
}

func (r *PgxContractRepository) ListContractsByClient(ctx context.Context, tx pgx.Tx, clientID string) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE client_id = $1 ORDER BY created_at DESC;`
	rows, err := r.conn(tx).Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts for client %s: %w", clientID, err)
	}
	defer rows.Close()

	var ms []models.Contract
	for rows.Next() {
		var m models.Contract
		if err := rows.Scan(
			&m.ContractID,
			&m.ClientID,
			&m.ProposalID,
			&m.ProjectID,
			&m.Title,
			&m.Content,
			&m.Terms,
			&m.Status,
			&m.StartDate,
			&m.EndDate,
			&m.SignedAt,
			&m.SignedBy,
			&m.DocumentPath,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contract rows: %w", err)
	}
	return mapping.ToDomainContractSlice(ms), nil
}

func (r *PgxContractRepository) SetContractDocument(ctx context.Context, tx pgx.Tx, contractID, documentPath string, status domain.ContractStatus, at time.Time) error {
	if !status.IsValid() {
		return apperrors.NewValidationError("unknown contract status " + string(status))
	}
	query := `UPDATE contracts SET document_path = $2, status = $3, last_updated_at = $4 WHERE contract_id = $1;`
	tag, err := r.conn(tx).Exec(ctx, query, contractID, documentPath, string(status), at)
	if err != nil {
		return fmt.Errorf("failed to set document for contract %s: %w", contractID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxContractRepository) MarkContractSigned(ctx context.Context, tx pgx.Tx, contractID, signedBy string, signedAt time.Time) error {
	query := `
		UPDATE contracts
		SET status = $2, signed_at = $3, signed_by = $4, last_updated_at = $3
		WHERE contract_id = $1;
	`
	tag, err := r.conn(tx).Exec(ctx, query, contractID, string(domain.ContractSigned), signedAt, signedBy)
	if err != nil {
		return fmt.Errorf("failed to mark contract %s signed: %w", contractID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxContractRepository) UpdateContractStatus(ctx context.Context, tx pgx.Tx, contractID string, status domain.ContractStatus, at time.Time) error {
	if !status.IsValid() {
		return apperrors.NewValidationError("unknown contract status " + string(status))
	}
	query := `UPDATE contracts SET status = $2, last_updated_at = $3 WHERE contract_id = $1;`
	tag, err := r.conn(tx).Exec(ctx, query, contractID, string(status), at)
	if err != nil {
		return fmt.Errorf("failed to update contract %s status: %w", contractID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
