package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Alejandro-846/freelance-portfolio-manager/internal/apperrors"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/domain"
	portssvc "github.com/Alejandro-846/freelance-portfolio-manager/internal/core/ports/services"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/core/services"
	"github.com/Alejandro-846/freelance-portfolio-manager/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	mockProjectRepo     *MockProjectRepository
	mockDeliverableRepo *MockDeliverableRepository
	service             portssvc.ProjectSvcFacade
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockProjectRepo = new(MockProjectRepository)
	suite.mockDeliverableRepo = new(MockDeliverableRepository)
	suite.service = services.NewProjectService(
		&fakeTxManager{}, suite.mockProjectRepo, suite.mockDeliverableRepo)
}

func activeProject(projectID string) *domain.Project {
	return &domain.Project{
		ProjectID:  projectID,
		Name:       "Project: Marketing site redesign",
		ClientID:   uuid.NewString(),
		ProposalID: uuid.NewString(),
		Budget:     decimal.NewFromInt(12000),
		Status:     domain.ProjectActive,
		StartDate:  time.Now().AddDate(0, -1, 0),
		Deadline:   time.Now().AddDate(0, 1, 0),
	}
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectStatus_AnyMemberAllowed() {
	ctx := context.Background()
	projectID := uuid.NewString()
	project := activeProject(projectID)
	project.Status = domain.ProjectCompleted

	// COMPLETED back to ACTIVE is legal; project status is gated on set
	// membership only.
	suite.mockProjectRepo.On("FindProjectByID", ctx, mock.Anything, projectID).
		Return(project, nil).Once()
	suite.mockProjectRepo.On("UpdateProjectStatus", ctx, mock.Anything, projectID,
		domain.ProjectActive, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.UpdateProjectStatus(ctx, projectID, domain.ProjectActive)

	suite.Require().NoError(err)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestUpdateProjectStatus_UnknownStatus() {
	ctx := context.Background()

	err := suite.service.UpdateProjectStatus(ctx, uuid.NewString(), domain.ProjectStatus("SHIPPED"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "FindProjectByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestAddDeliverable_Success() {
	ctx := context.Background()
	projectID := uuid.NewString()
	req := dto.AddDeliverableRequest{
		Name:     "Homepage wireframes",
		Deadline: time.Now().AddDate(0, 0, 14),
	}

	suite.mockProjectRepo.On("FindProjectByID", ctx, mock.Anything, projectID).
		Return(activeProject(projectID), nil).Once()
	suite.mockDeliverableRepo.On("SaveDeliverable", ctx, mock.Anything, mock.MatchedBy(func(d domain.Deliverable) bool {
		return d.ProjectID == projectID && d.Status == domain.DeliverablePending
	})).Return(nil).Once()
	suite.mockDeliverableRepo.On("ListDeliverablesByProject", ctx, mock.Anything, projectID).
		Return([]domain.Deliverable{{Status: domain.DeliverablePending}}, nil).Once()
	suite.mockProjectRepo.On("UpdateProjectProgress", ctx, mock.Anything, projectID,
		0, mock.AnythingOfType("time.Time")).Return(nil).Once()

	deliverable, err := suite.service.AddDeliverable(ctx, projectID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(deliverable)
	suite.Equal(domain.DeliverablePending, deliverable.Status)
	suite.mockProjectRepo.AssertExpectations(suite.T())
	suite.mockDeliverableRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestAddDeliverable_ClosedProjectRejected() {
	ctx := context.Background()
	for _, status := range []domain.ProjectStatus{domain.ProjectCompleted, domain.ProjectCancelled} {
		projectID := uuid.NewString()
		project := activeProject(projectID)
		project.Status = status

		suite.mockProjectRepo.On("FindProjectByID", ctx, mock.Anything, projectID).
			Return(project, nil).Once()

		deliverable, err := suite.service.AddDeliverable(ctx, projectID, dto.AddDeliverableRequest{
			Name:     "Homepage wireframes",
			Deadline: time.Now().AddDate(0, 0, 14),
		})

		suite.Require().Error(err, "status %s", status)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(deliverable)
	}
	suite.mockDeliverableRepo.AssertNotCalled(suite.T(), "SaveDeliverable", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestAddDeliverable_DilutesProgress() {
	ctx := context.Background()
	projectID := uuid.NewString()

	// Two reviewed deliverables plus the fresh PENDING one: 2 of 3 -> 67%.
	suite.mockProjectRepo.On("FindProjectByID", ctx, mock.Anything, projectID).
		Return(activeProject(projectID), nil).Once()
	suite.mockDeliverableRepo.On("SaveDeliverable", ctx, mock.Anything, mock.AnythingOfType("domain.Deliverable")).
		Return(nil).Once()
	suite.mockDeliverableRepo.On("ListDeliverablesByProject", ctx, mock.Anything, projectID).
		Return([]domain.Deliverable{
			{Status: domain.DeliverableApproved},
			{Status: domain.DeliverableRejected},
			{Status: domain.DeliverablePending},
		}, nil).Once()
	suite.mockProjectRepo.On("UpdateProjectProgress", ctx, mock.Anything, projectID,
		67, mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.AddDeliverable(ctx, projectID, dto.AddDeliverableRequest{
		Name:     "Homepage wireframes",
		Deadline: time.Now().AddDate(0, 0, 14),
	})

	suite.Require().NoError(err)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	projectID := uuid.NewString()
	req := dto.RecordPaymentRequest{
		Amount:    decimal.NewFromInt(4000),
		Date:      time.Now(),
		Method:    "TRANSFER",
		Reference: "wire-0042",
	}

	suite.mockProjectRepo.On("FindProjectByID", ctx, mock.Anything, projectID).
		Return(activeProject(projectID), nil).Once()
	suite.mockProjectRepo.On("SavePayment", ctx, mock.Anything, mock.MatchedBy(func(p domain.Payment) bool {
		return p.ProjectID == projectID && p.Amount.Equal(req.Amount) && p.Method == domain.MethodTransfer
	})).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, projectID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.NotEmpty(payment.PaymentID)
	suite.mockProjectRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestRecordPayment_NonPositiveAmount() {
	ctx := context.Background()

	payment, err := suite.service.RecordPayment(ctx, uuid.NewString(), dto.RecordPaymentRequest{
		Amount: decimal.Zero,
		Method: "CASH",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(payment)
	suite.mockProjectRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestListProjectPayments_EmptyNotNil() {
	ctx := context.Background()
	projectID := uuid.NewString()

	suite.mockProjectRepo.On("ListProjectPayments", ctx, mock.Anything, projectID).
		Return(nil, nil).Once()

	payments, err := suite.service.ListProjectPayments(ctx, projectID)

	suite.Require().NoError(err)
	suite.NotNil(payments)
	suite.Empty(payments)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
