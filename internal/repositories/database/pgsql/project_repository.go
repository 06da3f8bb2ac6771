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

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project and payment data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProjectRepository implements portsrepo.ProjectRepositoryFacade
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `project_id, name, description, client_id, proposal_id, budget, status, start_date, deadline, progress, created_at, last_updated_at`

func (r *PgxProjectRepository) SaveProject(ctx context.Context, tx pgx.Tx, project domain.Project) error {
	if err := validation.Struct(project); err != nil {
		return err
	}
	if !project.Budget.IsPositive() {
		return apperrors.NewValidationError("project budget must be positive")
	}
	if project.Deadline.Before(project.StartDate) {
		return apperrors.NewValidationError("project deadline before start date")
	}
	m := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.conn(tx).Exec(ctx, query,
		m.ProjectID,
		m.Name,
		m.Description,
		m.ClientID,
		m.ProposalID,
		m.Budget,
		m.Status,
		m.StartDate,
		m.Deadline,
		m.Progress,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // one project per proposal
				return apperrors.NewValidationError("proposal " + m.ProposalID + " already has a project")
			}
			if pgErr.Code == "23503" {
				return apperrors.NewNotFoundError("client or proposal missing for project " + m.ProjectID)
			}
		}
		return fmt.Errorf("failed to save project %s: %w", m.ProjectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, tx pgx.Tx, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`
	var m models.Project
	err := r.conn(tx).QueryRow(ctx, query, projectID).Scan(
		&m.ProjectID,
		&m.Name,
		&m.Description,
		&m.ClientID,
		&m.ProposalID,
		&m.Budget,
		&m.Status,
		&m.StartDate,
		&m.Deadline,
		&m.Progress,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project by ID %s: %w", projectID, err)
	}
	d := mapping.ToDomainProject(m)
	return &d, nil
}

func (r *PgxProjectRepository) ListProjectsByClient(ctx context.Context, tx pgx.Tx, clientID string) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE client_id = $1 ORDER BY created_at DESC;`
	return r.queryProjects(ctx, tx, query, clientID)
}

func (r *PgxProjectRepository) ListProjectsByStatus(ctx context.Context, tx pgx.Tx, status domain.ProjectStatus) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE status = $1 ORDER BY created_at DESC;`
	return r.queryProjects(ctx, tx, query, string(status))
}

func (r *PgxProjectRepository) UpdateProjectStatus(ctx context.Context, tx pgx.Tx, projectID string, status domain.ProjectStatus, at time.Time) error {
	if !status.IsValid() {
		return apperrors.NewValidationError("unknown project status " + string(status))
	}
	query := `UPDATE projects SET status = $2, last_updated_at = $3 WHERE project_id = $1;`
	tag, err := r.conn(tx).Exec(ctx, query, projectID, string(status), at)
	if err != nil {
		return fmt.Errorf("failed to update project %s status: %w", projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) UpdateProjectProgress(ctx context.Context, tx pgx.Tx, projectID string, progress int, at time.Time) error {
	if progress < 0 || progress > 100 {
		return apperrors.NewValidationError("progress out of range")
	}
	query := `UPDATE projects SET progress = $2, last_updated_at = $3 WHERE project_id = $1;`
	tag, err := r.conn(tx).Exec(ctx, query, projectID, progress, at)
	if err != nil {
		return fmt.Errorf("failed to update project %s progress: %w", projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) SavePayment(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	if err := validation.Struct(payment); err != nil {
		return err
	}
	if !payment.Amount.IsPositive() {
		return apperrors.NewValidationError("payment amount must be positive")
	}
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO project_payments (payment_id, project_id, amount, date, method, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.conn(tx).Exec(ctx, query,
		m.PaymentID,
		m.ProjectID,
		m.Amount,
		m.Date,
		m.Method,
		m.Reference,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewNotFoundError("project missing for payment " + m.PaymentID)
		}
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

func (r *PgxProjectRepository) ListProjectPayments(ctx context.Context, tx pgx.Tx, projectID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, project_id, amount, date, method, reference, created_at
		FROM project_payments WHERE project_id = $1 ORDER BY date;
	`
	rows, err := r.conn(tx).Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID,
			&m.ProjectID,
			&m.Amount,
			&m.Date,
			&m.Method,
			&m.Reference,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	return payments, rows.Err()
}

func (r *PgxProjectRepository) queryProjects(ctx context.Context, tx pgx.Tx, query string, args ...any) ([]domain.Project, error) {
	rows, err := r.conn(tx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var ms []models.Project
	for rows.Next() {
		var m models.Project
		if err := rows.Scan(
			&m.ProjectID,
			&m.Name,
			&m.Description,
			&m.ClientID,
			&m.ProposalID,
			&m.Budget,
			&m.Status,
			&m.StartDate,
			&m.Deadline,
			&m.Progress,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return mapping.ToDomainProjectSlice(ms), nil
}
