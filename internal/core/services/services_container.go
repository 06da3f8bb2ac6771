package services

import (
	portsrepo "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/repositories"
	portssvc "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/services"
)

// NewServiceContainer wires the repositories into the full set of service
// facades.
func NewServiceContainer(repos portsrepo.RepositoryProvider, docGen portssvc.ContractDocumentGenerator) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Client:      NewClientService(repos.TxManager, repos.ClientRepo),
		Proposal:    NewProposalService(repos.TxManager, repos.ProposalRepo, repos.ProjectRepo, repos.ClientRepo),
		Project:     NewProjectService(repos.TxManager, repos.ProjectRepo, repos.DeliverableRepo),
		Deliverable: NewDeliverableService(repos.TxManager, repos.DeliverableRepo, repos.ProjectRepo),
		Financial:   NewFinancialService(repos.TxManager, repos.TransactionRepo, repos.ProjectRepo, repos.ClientRepo),
		Contract:    NewContractService(repos.TxManager, repos.ContractRepo, repos.ClientRepo, repos.ProjectRepo, docGen),
	}
}
