package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	portsrepo "github.com/safa-edu/branch_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/safa-edu/branch_transfer_app/internal/core/ports/services"
	"github.com/safa-edu/branch_transfer_app/internal/core/services"
	"github.com/safa-edu/branch_transfer_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.TransactionService
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Success() {
	ctx := context.Background()
	branchID := uuid.NewString()
	txns := []domain.Transaction{
		{
			TransactionID:     uuid.NewString(),
			TransactionNumber: "TXN-2025-0042",
			FromBranchID:      branchID,
			ToBranchID:        uuid.NewString(),
			Amount:            decimal.NewFromInt(1500),
			Currency:          "AFN",
			TransferMethod:    domain.MethodCash,
			TransactionDate:   time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			Status:            domain.StatusConfirmed,
			CreatedAt:         time.Date(2025, 3, 12, 11, 0, 0, 0, time.UTC),
			FromBranchName:    "Kabul Branch",
			ToBranchName:      "Herat Branch",
		},
	}
	nextToken := "next-page"

	suite.mockRepo.On("ListTransactions", ctx, mock.MatchedBy(func(p portsrepo.ListTransactionsParams) bool {
		return p.BranchID != nil && *p.BranchID == branchID && p.Limit == 25 && p.Status == nil
	})).Return(txns, &nextToken, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{BranchID: &branchID})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("TXN-2025-0042", resp.Transactions[0].TransactionNumber)
	suite.Equal("2025-03-12", resp.Transactions[0].TransactionDate)
	suite.Equal("confirmed", resp.Transactions[0].Status)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(nextToken, *resp.NextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_ClampsLimitAndMapsStatus() {
	ctx := context.Background()
	status := "pending"

	suite.mockRepo.On("ListTransactions", ctx, mock.MatchedBy(func(p portsrepo.ListTransactionsParams) bool {
		return p.Limit == 100 && p.Status != nil && *p.Status == domain.StatusPending
	})).Return([]domain.Transaction{}, (*string)(nil), nil).Once()

	_, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Limit: 5000, Status: &status})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoError() {
	ctx := context.Background()
	repoErr := errors.New("query timeout")

	suite.mockRepo.On("ListTransactions", ctx, mock.AnythingOfType("repositories.ListTransactionsParams")).
		Return(nil, nil, repoErr).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.Nil(resp)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
