package services

// ServiceContainer holds all the service facades the presentation
// collaborator calls into.
type ServiceContainer struct {
	Client      ClientSvcFacade
	Proposal    ProposalSvcFacade
	Project     ProjectSvcFacade
	Deliverable DeliverableSvcFacade
	Financial   FinancialSvcFacade
	Contract    ContractSvcFacade
}
