package repositories

import (
	"context"
	"time"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ClientReader defines read operations for client data. A nil tx runs the
// query against the pool; a non-nil tx participates in the caller's
// transaction.
type ClientReader interface {
	// FindClientByID retrieves a specific client by its ID.
	FindClientByID(ctx context.Context, tx pgx.Tx, clientID string) (*domain.Client, error)

	// FindClientByEmail retrieves a client by lowercased email, active or not.
	FindClientByEmail(ctx context.Context, tx pgx.Tx, email string) (*domain.Client, error)

	// ListClients retrieves clients, optionally restricted to active ones.
	ListClients(ctx context.Context, tx pgx.Tx, activeOnly bool) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, tx pgx.Tx, client domain.Client) error

	// UpdateClient updates an existing client's details.
	UpdateClient(ctx context.Context, tx pgx.Tx, client domain.Client) error

	// DeactivateClient flips the client's active flag off (soft delete).
	DeactivateClient(ctx context.Context, tx pgx.Tx, clientID string, at time.Time) error

	// AddProjectToClient appends a project reference to the client's project list.
	AddProjectToClient(ctx context.Context, tx pgx.Tx, clientID, projectID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
