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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.service = services.NewClientService(&fakeTxManager{}, suite.mockRepo)
}

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Name:    "Acme Industries",
		Email:   "Billing@Acme.COM",
		Phone:   "5512345678",
		Company: "Acme",
	}

	suite.mockRepo.On("FindClientByEmail", ctx, mock.Anything, "billing@acme.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveClient", ctx, mock.Anything, mock.AnythingOfType("domain.Client")).
		Return(nil).Once()

	created, err := suite.service.CreateClient(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ClientID)
	suite.Equal("billing@acme.com", created.Email)
	suite.True(created.IsActive)
	suite.WithinDuration(time.Now(), created.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Name:  "Acme Industries",
		Email: "billing@acme.com",
		Phone: "5512345678",
	}
	existing := &domain.Client{ClientID: uuid.NewString(), Email: "billing@acme.com"}

	suite.mockRepo.On("FindClientByEmail", ctx, mock.Anything, "billing@acme.com").
		Return(existing, nil).Once()

	created, err := suite.service.CreateClient(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateEmail)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_InvalidRequest() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Name:  "Al", // below minimum length
		Email: "not-an-email",
		Phone: "123",
	}

	created, err := suite.service.CreateClient(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindClientByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestGetClientByID_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockRepo.On("FindClientByID", ctx, mock.Anything, clientID).
		Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.GetClientByID(ctx, clientID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(client)
}

func (suite *ClientServiceTestSuite) TestSearchClients_MatchesNameEmailCompany() {
	ctx := context.Background()
	clients := []domain.Client{
		{ClientID: "1", Name: "Orbit Studio", Email: "hi@orbit.dev", Company: "Orbit"},
		{ClientID: "2", Name: "Red Panda", Email: "contact@panda.io", Company: "Panda Co"},
		{ClientID: "3", Name: "Bluefin", Email: "team@bluefin.io", Company: "Orbital Partners"},
	}

	suite.mockRepo.On("ListClients", ctx, mock.Anything, false).
		Return(clients, nil).Times(2)

	matched, err := suite.service.SearchClients(ctx, "ORBIT")
	suite.Require().NoError(err)
	suite.Len(matched, 2)
	suite.Equal("1", matched[0].ClientID)
	suite.Equal("3", matched[1].ClientID)

	// An empty term returns everything, deactivated included.
	all, err := suite.service.SearchClients(ctx, "  ")
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func (suite *ClientServiceTestSuite) TestSearchClients_NoMatches() {
	ctx := context.Background()

	suite.mockRepo.On("ListClients", ctx, mock.Anything, false).
		Return([]domain.Client{{ClientID: "1", Name: "Orbit Studio"}}, nil).Once()

	matched, err := suite.service.SearchClients(ctx, "nothing-here")
	suite.Require().NoError(err)
	suite.NotNil(matched)
	suite.Empty(matched)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_EmailChangeChecksUniqueness() {
	ctx := context.Background()
	clientID := uuid.NewString()
	current := &domain.Client{
		ClientID: clientID,
		Name:     "Orbit Studio",
		Email:    "old@orbit.dev",
		Phone:    "5512345678",
		IsActive: true,
	}
	newEmail := "new@orbit.dev"

	suite.mockRepo.On("FindClientByID", ctx, mock.Anything, clientID).
		Return(current, nil).Once()
	suite.mockRepo.On("FindClientByEmail", ctx, mock.Anything, newEmail).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("UpdateClient", ctx, mock.Anything, mock.MatchedBy(func(c domain.Client) bool {
		return c.Email == newEmail
	})).Return(nil).Once()

	updated, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{Email: &newEmail})

	suite.Require().NoError(err)
	suite.Equal(newEmail, updated.Email)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_SameEmailSkipsCheck() {
	ctx := context.Background()
	clientID := uuid.NewString()
	current := &domain.Client{
		ClientID: clientID,
		Name:     "Orbit Studio",
		Email:    "old@orbit.dev",
		Phone:    "5512345678",
	}
	sameEmail := "Old@Orbit.dev" // normalizes to the current email

	suite.mockRepo.On("FindClientByID", ctx, mock.Anything, clientID).
		Return(current, nil).Once()
	suite.mockRepo.On("UpdateClient", ctx, mock.Anything, mock.AnythingOfType("domain.Client")).
		Return(nil).Once()

	_, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{Email: &sameEmail})

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindClientByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_DuplicateEmail() {
	ctx := context.Background()
	clientID := uuid.NewString()
	current := &domain.Client{ClientID: clientID, Email: "old@orbit.dev"}
	takenEmail := "taken@orbit.dev"

	suite.mockRepo.On("FindClientByID", ctx, mock.Anything, clientID).
		Return(current, nil).Once()
	suite.mockRepo.On("FindClientByEmail", ctx, mock.Anything, takenEmail).
		Return(&domain.Client{ClientID: uuid.NewString(), Email: takenEmail}, nil).Once()

	updated, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{Email: &takenEmail})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicateEmail)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateClient", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestDeactivateClient_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	current := &domain.Client{ClientID: clientID, IsActive: true}

	suite.mockRepo.On("FindClientByID", ctx, mock.Anything, clientID).
		Return(current, nil).Once()
	suite.mockRepo.On("DeactivateClient", ctx, mock.Anything, clientID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DeactivateClient(ctx, clientID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_RepoErrorPropagates() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Name:  "Acme Industries",
		Email: "billing@acme.com",
		Phone: "5512345678",
	}
	repoErr := assert.AnError

	suite.mockRepo.On("FindClientByEmail", ctx, mock.Anything, "billing@acme.com").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveClient", ctx, mock.Anything, mock.AnythingOfType("domain.Client")).
		Return(repoErr).Once()

	created, err := suite.service.CreateClient(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.Nil(created)
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
