package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
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

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	txManager  portsrepo.TransactionManager
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service with the provided dependencies
func NewClientService(txManager portsrepo.TransactionManager, clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{
		txManager:  txManager,
		clientRepo: clientRepo,
	}
}

// Ensure clientService implements the ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// CreateClient registers a new client. The email existence check and the
// insert share one transaction; the unique index on lower(email) closes the
// remaining check-then-insert race at the storage layer.
func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	now := time.Now()
	client := domain.Client{
		ClientID: uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    req.Phone,
		Company:  strings.TrimSpace(req.Company),
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		existing, err := s.clientRepo.FindClientByEmail(ctx, tx, client.Email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if existing != nil {
			return apperrors.ErrDuplicateEmail
		}
		return s.clientRepo.SaveClient(ctx, tx, client)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateEmail) {
			s.LogError(ctx, err, "Failed to create client",
				slog.String("email", client.Email))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Client created successfully",
		slog.String("client_id", client.ClientID))
	return &client, nil
}

// GetClientByID retrieves a client by its ID
func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, nil, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client by ID",
				slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

// ListClients retrieves clients, optionally restricted to active ones
func (s *clientService) ListClients(ctx context.Context, activeOnly bool) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, nil, activeOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, err
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

// SearchClients matches the term against name, email and company,
// including deactivated clients.
func (s *clientService) SearchClients(ctx context.Context, term string) ([]domain.Client, error) {
	clients, err := s.ListClients(ctx, false)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return clients, nil
	}

	var matched []domain.Client
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) ||
			strings.Contains(strings.ToLower(c.Company), needle) {
			matched = append(matched, c)
		}
	}
	if matched == nil {
		return []domain.Client{}, nil
	}
	return matched, nil
}

// UpdateClient patches a client. Email uniqueness is re-checked only when
// the email field is part of the patch.
func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	var updated *domain.Client
	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		client, err := s.clientRepo.FindClientByID(ctx, tx, clientID)
		if err != nil {
			return err
		}

		if req.Name != nil {
			client.Name = strings.TrimSpace(*req.Name)
		}
		if req.Phone != nil {
			client.Phone = *req.Phone
		}
		if req.Company != nil {
			client.Company = strings.TrimSpace(*req.Company)
		}
		if req.Email != nil {
			newEmail := strings.ToLower(strings.TrimSpace(*req.Email))
			if newEmail != client.Email {
				existing, err := s.clientRepo.FindClientByEmail(ctx, tx, newEmail)
				if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
					return err
				}
				if existing != nil {
					return apperrors.ErrDuplicateEmail
				}
				client.Email = newEmail
			}
		}
		client.LastUpdatedAt = time.Now()

		if err := s.clientRepo.UpdateClient(ctx, tx, *client); err != nil {
			return err
		}
		updated = client
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicateEmail) {
			s.LogError(ctx, err, "Failed to update client",
				slog.String("client_id", clientID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Client updated successfully",
		slog.String("client_id", clientID))
	return updated, nil
}

// DeactivateClient performs a logical delete, preserving history.
func (s *clientService) DeactivateClient(ctx context.Context, clientID string) error {
	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		if _, err := s.clientRepo.FindClientByID(ctx, tx, clientID); err != nil {
			return err
		}
		return s.clientRepo.DeactivateClient(ctx, tx, clientID, time.Now())
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate client",
				slog.String("client_id", clientID))
		}
		return err
	}

	s.LogInfo(ctx, "Client deactivated",
		slog.String("client_id", clientID))
	return nil
}
