package repositories

import (
	"context"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for financial transaction data.
// Aggregate callers fold over these reads; no snapshot isolation is implied.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its ID.
	FindTransactionByID(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all recorded transactions.
	ListTransactions(ctx context.Context, tx pgx.Tx) ([]domain.Transaction, error)

	// ListTransactionsByClient retrieves all transactions tied to a client.
	ListTransactionsByClient(ctx context.Context, tx pgx.Tx, clientID string) ([]domain.Transaction, error)

	// ListTransactionsByProject retrieves all transactions tied to a project.
	ListTransactionsByProject(ctx context.Context, tx pgx.Tx, projectID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for financial transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
