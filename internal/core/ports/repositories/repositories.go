package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TxManager       TransactionManager
	ClientRepo      ClientRepositoryFacade
	ProposalRepo    ProposalRepositoryFacade
	ProjectRepo     ProjectRepositoryFacade
	DeliverableRepo DeliverableRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	ContractRepo    ContractRepositoryFacade
}
