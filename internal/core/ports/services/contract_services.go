package services

import (
	"context"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/dto"
)

// ContractDocumentGenerator produces a durable artifact for a contract and
// returns a reference (path or URL) to be stored on the contract. It is an
// external collaborator to the workflow core.
type ContractDocumentGenerator interface {
	GenerateContractDocument(ctx context.Context, contract domain.Contract, client domain.Client) (string, error)
}

// ContractSvcFacade defines the contract workflows.
type ContractSvcFacade interface {
	// CreateContract validates referenced entities, inserts the contract in
	// DRAFT, generates its document and persists the artifact reference
	// together with the transition to SENT, all atomically.
	CreateContract(ctx context.Context, req dto.CreateContractRequest) (*domain.Contract, error)

	// GetContractByID retrieves a contract; absence is fatal (ErrNotFound).
	GetContractByID(ctx context.Context, contractID string) (*domain.Contract, error)

	// ListClientContracts retrieves all contracts for a client.
	ListClientContracts(ctx context.Context, clientID string) ([]domain.Contract, error)

	// SignContract transitions a SENT contract to SIGNED, stamping the
	// signing time and signer.
	SignContract(ctx context.Context, contractID, signerName string) (*domain.Contract, error)

	// ExpireContract transitions a SENT or SIGNED contract to EXPIRED.
	ExpireContract(ctx context.Context, contractID string) error
}
