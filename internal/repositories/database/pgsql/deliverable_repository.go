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

type PgxDeliverableRepository struct {
	BaseRepository
}

// newPgxDeliverableRepository creates a new repository for deliverable data.
func newPgxDeliverableRepository(pool *pgxpool.Pool) portsrepo.DeliverableRepositoryFacade {
	return &PgxDeliverableRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDeliverableRepository implements portsrepo.DeliverableRepositoryFacade
var _ portsrepo.DeliverableRepositoryFacade = (*PgxDeliverableRepository)(nil)

const deliverableColumns = `deliverable_id, project_id, name, description, deadline, status, feedback, attachments, created_at, last_updated_at`

func (r *PgxDeliverableRepository) SaveDeliverable(ctx context.Context, tx pgx.Tx, deliverable domain.Deliverable) error {
	if err := validation.Struct(deliverable); err != nil {
		return err
	}
	m := mapping.ToModelDeliverable(deliverable)
	query := `
		INSERT INTO deliverables (` + deliverableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.conn(tx).Exec(ctx, query,
		m.DeliverableID,
		m.ProjectID,
		m.Name,
		m.Description,
		m.Deadline,
		m.Status,
		m.Feedback,
		m.Attachments,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewNotFoundError("project missing for deliverable " + m.DeliverableID)
		}
		return fmt.Errorf("failed to save deliverable %s: %w", m.DeliverableID, err)
	}
	return nil
}

func (r *PgxDeliverableRepository) FindDeliverableByID(ctx context.Context, tx pgx.Tx, deliverableID string) (*domain.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables WHERE deliverable_id = $1;`
	var m models.Deliverable
	err := r.conn(tx).QueryRow(ctx, query, deliverableID).Scan(
		&m.DeliverableID,
		&m.ProjectID,
		&m.Name,
		&m.Description,
		&m.Deadline,
		&m.Status,
		&m.Feedback,
		&m.Attachments,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deliverable by ID %s: %w", deliverableID, err)
	}
	d := mapping.ToDomainDeliverable(m)
	return &d, nil
}

func (r *PgxDeliverableRepository) ListDeliverablesByProject(ctx context.Context, tx pgx.Tx, projectID string) ([]domain.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables WHERE project_id = $1 ORDER BY created_at;`
	rows, err := r.conn(tx).Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliverables for project %s: %w", projectID, err)
	}
	defer rows.Close()

	var ms []models.Deliverable
	for rows.Next() {
		var m models.Deliverable
		if err := rows.Scan(
			&m.DeliverableID,
			&m.ProjectID,
			&m.Name,
			&m.Description,
			&m.Deadline,
			&m.Status,
			&m.Feedback,
			&m.Attachments,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan deliverable row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deliverable rows: %w", err)
	}
	return mapping.ToDomainDeliverableSlice(ms), nil
}

func (r *PgxDeliverableRepository) UpdateDeliverableStatus(ctx context.Context, tx pgx.Tx, deliverableID string, status domain.DeliverableStatus, feedback string, at time.Time) error {
	if !status.IsValid() {
		return apperrors.NewValidationError("unknown deliverable status " + string(status))
	}
	query := `UPDATE deliverables SET status = $2, feedback = $3, last_updated_at = $4 WHERE deliverable_id = $1;`
	tag, err := r.conn(tx).Exec(ctx, query, deliverableID, string(status), feedback, at)
	if err != nil {
		return fmt.Errorf("failed to update deliverable %s status: %w", deliverableID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
