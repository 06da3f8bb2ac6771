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

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryFacade
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `client_id, name, email, phone, company, is_active, created_at, last_updated_at`

func scanClient(row pgx.Row) (*models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Company,
		&m.IsActive,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, tx pgx.Tx, client domain.Client) error {
	if err := validation.Struct(client); err != nil {
		return err
	}
	modelClient := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.conn(tx).Exec(ctx, query,
		modelClient.ClientID,
		modelClient.Name,
		modelClient.Email,
		modelClient.Phone,
		modelClient.Company,
		modelClient.IsActive,
		modelClient.CreatedAt,
		modelClient.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on lower(email)
			return fmt.Errorf("client email %s: %w", modelClient.Email, apperrors.ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to save client %s: %w", modelClient.ClientID, err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, tx pgx.Tx, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	modelClient, err := scanClient(r.conn(tx).QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}

	projectIDs, err := r.findClientProjectIDs(ctx, tx, clientID)
	if err != nil {
		return nil, err
	}

	domainClient := mapping.ToDomainClient(*modelClient, projectIDs)
	return &domainClient, nil
}

func (r *PgxClientRepository) FindClientByEmail(ctx context.Context, tx pgx.Tx, email string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE lower(email) = lower($1);`
	modelClient, err := scanClient(r.conn(tx).QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by email: %w", err)
	}

	projectIDs, err := r.findClientProjectIDs(ctx, tx, modelClient.ClientID)
	if err != nil {
		return nil, err
	}

	domainClient := mapping.ToDomainClient(*modelClient, projectIDs)
	return &domainClient, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, tx pgx.Tx, activeOnly bool) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.conn(tx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var m models.Client
		if err := rows.Scan(
			&m.ClientID,
			&m.Name,
			&m.Email,
			&m.Phone,
			&m.Company,
			&m.IsActive,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, mapping.ToDomainClient(m, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, tx pgx.Tx, client domain.Client) error {
	if err := validation.Struct(client); err != nil {
		return err
	}
	modelClient := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET name = $2, email = $3, phone = $4, company = $5, last_updated_at = $6
		WHERE client_id = $1;
	`
	tag, err := r.conn(tx).Exec(ctx, query,
		modelClient.ClientID,
		modelClient.Name,
		modelClient.Email,
		modelClient.Phone,
		modelClient.Company,
		modelClient.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("client email %s: %w", modelClient.Email, apperrors.ErrDuplicateEmail)
		}
		return fmt.Errorf("failed to update client %s: %w", modelClient.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) DeactivateClient(ctx context.Context, tx pgx.Tx, clientID string, at time.Time) error {
	query := `UPDATE clients SET is_active = FALSE, last_updated_at = $2 WHERE client_id = $1;`
	tag, err := r.conn(tx).Exec(ctx, query, clientID, at)
	if err != nil {
		return fmt.Errorf("failed to deactivate client %s: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) AddProjectToClient(ctx context.Context, tx pgx.Tx, clientID, projectID string) error {
	query := `
		INSERT INTO client_projects (client_id, project_id)
		VALUES ($1, $2)
		ON CONFLICT (client_id, project_id) DO NOTHING;
	`
	_, err := r.conn(tx).Exec(ctx, query, clientID, projectID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.NewNotFoundError("client or project missing for link " + clientID + " -> " + projectID)
		}
		return fmt.Errorf("failed to link project %s to client %s: %w", projectID, clientID, err)
	}
	return nil
}

func (r *PgxClientRepository) findClientProjectIDs(ctx context.Context, tx pgx.Tx, clientID string) ([]string, error) {
	query := `SELECT project_id FROM client_projects WHERE client_id = $1 ORDER BY project_id;`
	rows, err := r.conn(tx).Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list client projects: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan project id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
