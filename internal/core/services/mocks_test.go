package services_test

import (
	"context"
	"time"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	portsrepo "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// fakeTxManager runs the unit of work directly, standing in for a real
// transaction. The nil tx handed to fn makes repository mocks see the same
// tx value the service passed in.
type fakeTxManager struct {
	runErr error // returned instead of fn's result when set
}

func (f *fakeTxManager) RunInTx(ctx context.Context, tx pgx.Tx, fn func(tx pgx.Tx) error) error {
	if f.runErr != nil {
		return f.runErr
	}
	return fn(tx)
}

var _ portsrepo.TransactionManager = (*fakeTxManager)(nil)

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, tx pgx.Tx, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, tx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByEmail(ctx context.Context, tx pgx.Tx, email string) (*domain.Client, error) {
	args := m.Called(ctx, tx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, tx pgx.Tx, activeOnly bool) ([]domain.Client, error) {
	args := m.Called(ctx, tx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, tx pgx.Tx, client domain.Client) error {
	args := m.Called(ctx, tx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, tx pgx.Tx, client domain.Client) error {
	args := m.Called(ctx, tx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeactivateClient(ctx context.Context, tx pgx.Tx, clientID string, at time.Time) error {
	args := m.Called(ctx, tx, clientID, at)
	return args.Error(0)
}

func (m *MockClientRepository) AddProjectToClient(ctx context.Context, tx pgx.Tx, clientID, projectID string) error {
	args := m.Called(ctx, tx, clientID, projectID)
	return args.Error(0)
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

// --- Mock ProposalRepository ---

type MockProposalRepository struct {
	mock.Mock
}

func (m *MockProposalRepository) FindProposalByID(ctx context.Context, tx pgx.Tx, proposalID string) (*domain.Proposal, error) {
	args := m.Called(ctx, tx, proposalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *MockProposalRepository) ListProposalsByClient(ctx context.Context, tx pgx.Tx, clientID string) ([]domain.Proposal, error) {
	args := m.Called(ctx, tx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}

func (m *MockProposalRepository) ListProposalsByStatus(ctx context.Context, tx pgx.Tx, status domain.ProposalStatus) ([]domain.Proposal, error) {
	args := m.Called(ctx, tx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Proposal), args.Error(1)
}

func (m *MockProposalRepository) SaveProposal(ctx context.Context, tx pgx.Tx, proposal domain.Proposal) error {
	args := m.Called(ctx, tx, proposal)
	return args.Error(0)
}

func (m *MockProposalRepository) UpdateProposalStatus(ctx context.Context, tx pgx.Tx, proposalID string, status domain.ProposalStatus, at time.Time) error {
	args := m.Called(ctx, tx, proposalID, status, at)
	return args.Error(0)
}

func (m *MockProposalRepository) SetProposalProject(ctx context.Context, tx pgx.Tx, proposalID, projectID string, at time.Time) error {
	args := m.Called(ctx, tx, proposalID, projectID, at)
	return args.Error(0)
}

var _ portsrepo.ProposalRepositoryFacade = (*MockProposalRepository)(nil)

// --- Mock ProjectRepository ---

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, tx pgx.Tx, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, tx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByClient(ctx context.Context, tx pgx.Tx, clientID string) ([]domain.Project, error) {
	args := m.Called(ctx, tx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjectsByStatus(ctx context.Context, tx pgx.Tx, status domain.ProjectStatus) ([]domain.Project, error) {
	args := m.Called(ctx, tx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, tx pgx.Tx, project domain.Project) error {
	args := m.Called(ctx, tx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProjectStatus(ctx context.Context, tx pgx.Tx, projectID string, status domain.ProjectStatus, at time.Time) error {
	args := m.Called(ctx, tx, projectID, status, at)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProjectProgress(ctx context.Context, tx pgx.Tx, projectID string, progress int, at time.Time) error {
	args := m.Called(ctx, tx, projectID, progress, at)
	return args.Error(0)
}

func (m *MockProjectRepository) SavePayment(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	args := m.Called(ctx, tx, payment)
	return args.Error(0)
}

func (m *MockProjectRepository) ListProjectPayments(ctx context.Context, tx pgx.Tx, projectID string) ([]domain.Payment, error) {
	args := m.Called(ctx, tx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

var _ portsrepo.ProjectRepositoryFacade = (*MockProjectRepository)(nil)

// --- Mock DeliverableRepository ---

type MockDeliverableRepository struct {
	mock.Mock
}

func (m *MockDeliverableRepository) FindDeliverableByID(ctx context.Context, tx pgx.Tx, deliverableID string) (*domain.Deliverable, error) {
	args := m.Called(ctx, tx, deliverableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deliverable), args.Error(1)
}

func (m *MockDeliverableRepository) ListDeliverablesByProject(ctx context.Context, tx pgx.Tx, projectID string) ([]domain.Deliverable, error) {
	args := m.Called(ctx, tx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Deliverable), args.Error(1)
}

func (m *MockDeliverableRepository) SaveDeliverable(ctx context.Context, tx pgx.Tx, deliverable domain.Deliverable) error {
	args := m.Called(ctx, tx, deliverable)
	return args.Error(0)
}

func (m *MockDeliverableRepository) UpdateDeliverableStatus(ctx context.Context, tx pgx.Tx, deliverableID string, status domain.DeliverableStatus, feedback string, at time.Time) error {
	args := m.Called(ctx, tx, deliverableID, status, feedback, at)
	return args.Error(0)
}

var _ portsrepo.DeliverableRepositoryFacade = (*MockDeliverableRepository)(nil)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, tx pgx.Tx, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, tx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, tx pgx.Tx) ([]domain.Transaction, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByClient(ctx context.Context, tx pgx.Tx, clientID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, tx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByProject(ctx context.Context, tx pgx.Tx, projectID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, tx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock ContractRepository ---

type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindContractByID(ctx context.Context, tx pgx.Tx, contractID string) (*domain.Contract, error) {
	args := m.Called(ctx, tx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) ListContractsByClient(ctx context.Context, tx pgx.Tx, clientID string) ([]domain.Contract, error) {
	args := m.Called(ctx, tx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockContractRepository) SaveContract(ctx context.Context, tx pgx.Tx, contract domain.Contract) error {
	args := m.Called(ctx, tx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) SetContractDocument(ctx context.Context, tx pgx.Tx, contractID, documentPath string, status domain.ContractStatus, at time.Time) error {
	args := m.Called(ctx, tx, contractID, documentPath, status, at)
	return args.Error(0)
}

func (m *MockContractRepository) MarkContractSigned(ctx context.Context, tx pgx.Tx, contractID, signedBy string, signedAt time.Time) error {
	args := m.Called(ctx, tx, contractID, signedBy, signedAt)
	return args.Error(0)
}

func (m *MockContractRepository) UpdateContractStatus(ctx context.Context, tx pgx.Tx, contractID string, status domain.ContractStatus, at time.Time) error {
	args := m.Called(ctx, tx, contractID, status, at)
	return args.Error(0)
}

var _ portsrepo.ContractRepositoryFacade = (*MockContractRepository)(nil)

// --- Mock ContractDocumentGenerator ---

type MockDocumentGenerator struct {
	mock.Mock
}

func (m *MockDocumentGenerator) GenerateContractDocument(ctx context.Context, contract domain.Contract, client domain.Client) (string, error) {
	args := m.Called(ctx, contract, client)
	return args.String(0), args.Error(1)
}
