package services

import (
	"context"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/dto"
)

// ClientReaderSvc defines read operations on clients.
type ClientReaderSvc interface {
	// GetClientByID retrieves a client; absence is fatal (ErrNotFound).
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves clients, optionally restricted to active ones.
	ListClients(ctx context.Context, activeOnly bool) ([]domain.Client, error)

	// SearchClients matches the term against name, email and company.
	SearchClients(ctx context.Context, term string) ([]domain.Client, error)
}

// ClientWriterSvc defines workflows that mutate clients.
type ClientWriterSvc interface {
	// CreateClient registers a new client. Fails with ErrDuplicateEmail if
	// the lowercased email is already taken, active or not.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)

	// UpdateClient patches a client, re-checking email uniqueness only when
	// the email field is part of the patch.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error)

	// DeactivateClient performs a logical delete, preserving history.
	DeactivateClient(ctx context.Context, clientID string) error
}

// ClientSvcFacade combines all client service interfaces.
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
