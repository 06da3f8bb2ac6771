package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
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

// contractService implements the ContractSvcFacade interface
type contractService struct {
	BaseService
	txManager    portsrepo.TransactionManager
	contractRepo portsrepo.ContractRepositoryFacade
	clientRepo   portsrepo.ClientReader
	projectRepo  portsrepo.ProjectReader
	docGen       portssvc.ContractDocumentGenerator
}

// NewContractService creates a new contract service with the provided dependencies
func NewContractService(
	txManager portsrepo.TransactionManager,
	contractRepo portsrepo.ContractRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	projectRepo portsrepo.ProjectReader,
	docGen portssvc.ContractDocumentGenerator,
) portssvc.ContractSvcFacade {
	return &contractService{
		txManager:    txManager,
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
		projectRepo:  projectRepo,
		docGen:       docGen,
	}
}

// Ensure contractService implements the ContractSvcFacade interface
var _ portssvc.ContractSvcFacade = (*contractService)(nil)

// CreateContract drafts a contract, generates its document and persists the
// artifact reference together with the transition to SENT, all within one
// transaction. A document generation failure rolls the insert back, so no
// contract row is left without its artifact.
func (s *contractService) CreateContract(ctx context.Context, req dto.CreateContractRequest) (*domain.Contract, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.NewValidationError("contract end date must be after start date")
	}

	now := time.Now()
	contract := domain.Contract{
		ContractID: uuid.NewString(),
		ClientID:   req.ClientID,
		ProposalID: req.ProposalID,
		ProjectID:  req.ProjectID,
		Title:      req.Title,
		Content:    req.Content,
		Terms:      req.Terms,
		Status:     domain.ContractDraft,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		client, err := s.clientRepo.FindClientByID(ctx, tx, req.ClientID)
		if err != nil {
			return err
		}
		if req.ProjectID != nil {
			if _, err := s.projectRepo.FindProjectByID(ctx, tx, *req.ProjectID); err != nil {
				return err
			}
		}
		if err := s.contractRepo.SaveContract(ctx, tx, contract); err != nil {
			return err
		}

		documentPath, err := s.docGen.GenerateContractDocument(ctx, contract, *client)
		if err != nil {
			return fmt.Errorf("generating contract document: %w", err)
		}
		contract.DocumentPath = documentPath
		contract.Status = domain.ContractSent
		contract.LastUpdatedAt = time.Now()
		return s.contractRepo.SetContractDocument(ctx, tx, contract.ContractID, documentPath, domain.ContractSent, contract.LastUpdatedAt)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to create contract",
				slog.String("client_id", req.ClientID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Contract created and sent",
		slog.String("contract_id", contract.ContractID),
		slog.String("document_path", contract.DocumentPath))
	return &contract, nil
}

// GetContractByID retrieves a contract by its ID.
func (s *contractService) GetContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	contract, err := s.contractRepo.FindContractByID(ctx, nil, contractID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find contract",
				slog.String("contract_id", contractID))
		}
		return nil, err
	}
	return contract, nil
}

// ListClientContracts retrieves every contract for the given client.
func (s *contractService) ListClientContracts(ctx context.Context, clientID string) ([]domain.Contract, error) {
	contracts, err := s.contractRepo.ListContractsByClient(ctx, nil, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client contracts",
			slog.String("client_id", clientID))
		return nil, err
	}
	return contracts, nil
}

// SignContract transitions a SENT contract to SIGNED, stamping the signing
// time and signer. Any other current status is rejected.
func (s *contractService) SignContract(ctx context.Context, contractID, signerName string) (*domain.Contract, error) {
	if signerName == "" {
		return nil, apperrors.NewValidationError("signer name is required")
	}

	var signed *domain.Contract
	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		contract, err := s.contractRepo.FindContractByID(ctx, tx, contractID)
		if err != nil {
			return err
		}
		if !contract.Status.CanTransitionTo(domain.ContractSigned) {
			return apperrors.NewInvalidTransitionError(fmt.Sprintf(
				"contract cannot be signed from status %s", contract.Status))
		}

		signedAt := time.Now()
		if err := s.contractRepo.MarkContractSigned(ctx, tx, contractID, signerName, signedAt); err != nil {
			return err
		}
		contract.Status = domain.ContractSigned
		contract.SignedAt = &signedAt
		contract.SignedBy = signerName
		contract.LastUpdatedAt = signedAt
		signed = contract
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to sign contract",
				slog.String("contract_id", contractID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Contract signed",
		slog.String("contract_id", contractID),
		slog.String("signed_by", signerName))
	return signed, nil
}

// ExpireContract transitions a SENT or SIGNED contract to EXPIRED.
func (s *contractService) ExpireContract(ctx context.Context, contractID string) error {
	err := s.txManager.RunInTx(ctx, nil, func(tx pgx.Tx) error {
		contract, err := s.contractRepo.FindContractByID(ctx, tx, contractID)
		if err != nil {
			return err
		}
		if !contract.Status.CanTransitionTo(domain.ContractExpired) {
			return apperrors.NewInvalidTransitionError(fmt.Sprintf(
				"contract cannot expire from status %s", contract.Status))
		}
		return s.contractRepo.UpdateContractStatus(ctx, tx, contractID, domain.ContractExpired, time.Now())
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to expire contract",
				slog.String("contract_id", contractID))
		}
		return err
	}

	s.LogInfo(ctx, "Contract expired", slog.String("contract_id", contractID))
	return nil
}
