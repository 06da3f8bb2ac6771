package repositories

import (
	"context"
	"time"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ContractReader defines read operations for contract data.
type ContractReader interface {
	// FindContractByID retrieves a specific contract by its ID.
	FindContractByID(ctx context.Context, tx pgx.Tx, contractID string) (*domain.Contract, error)

	// ListContractsByClient retrieves all contracts for a client.
	ListContractsByClient(ctx context.Context, tx pgx.Tx, clientID string) ([]domain.Contract, error)
}

// ContractWriter defines write operations for contract data.
type ContractWriter interface {
	// SaveContract persists a new contract.
	SaveContract(ctx context.Context, tx pgx.Tx, contract domain.Contract) error

	// SetContractDocument stores the generated artifact reference and moves
	// the contract to the given status in one write.
	SetContractDocument(ctx context.Context, tx pgx.Tx, contractID, documentPath string, status domain.ContractStatus, at time.Time) error

	// MarkContractSigned transitions the contract to SIGNED, stamping the
	// signer and signing time.
	MarkContractSigned(ctx context.Context, tx pgx.Tx, contractID, signedBy string, signedAt time.Time) error

	// UpdateContractStatus sets the contract's status.
	UpdateContractStatus(ctx context.Context, tx pgx.Tx, contractID string, status domain.ContractStatus, at time.Time) error
}

// ContractRepositoryFacade combines all contract-related repository interfaces.
type ContractRepositoryFacade interface {
	ContractReader
	ContractWriter
}
