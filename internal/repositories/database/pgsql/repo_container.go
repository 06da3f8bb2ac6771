package pgsql

import (
	portsrepo "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository plus the transaction
// manager onto a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TxManager:       NewTxManager(dbPool),
		ClientRepo:      newPgxClientRepository(dbPool),
		ProposalRepo:    newPgxProposalRepository(dbPool),
		ProjectRepo:     newPgxProjectRepository(dbPool),
		DeliverableRepo: newPgxDeliverableRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ContractRepo:    newPgxContractRepository(dbPool),
	}
}
