package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/safa-edu/branch_transfer_app/internal/apperrors"
	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	portsrepo "github.com/safa-edu/branch_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/safa-edu/branch_transfer_app/internal/core/ports/services"
	"github.com/safa-edu/branch_transfer_app/internal/core/services"
	"github.com/safa-edu/branch_transfer_app/internal/dto"
	"github.com/safa-edu/branch_transfer_app/internal/render"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockTransactionRepository is a mock type for the TransactionRepository interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ListForPeriod(ctx context.Context, branchID *string, year, month int) ([]domain.Transaction, error) {
	args := m.Called(ctx, branchID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, params portsrepo.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(*string), args.Error(2)
}

// MockBranchRepository is a mock type for the BranchRepository interface
type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}

func (m *MockBranchRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

// MockStaffRepository is a mock type for the StaffRepository interface
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindStaffByAuthUserID(ctx context.Context, authUserID string) (*domain.Staff, error) {
	args := m.Called(ctx, authUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

// MockReportRepository is a mock type for the ReportRepository interface
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) SaveReport(ctx context.Context, report domain.GeneratedReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.GeneratedReport, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedReport), args.Error(1)
}

func (m *MockReportRepository) ListReports(ctx context.Context, limit int, nextToken *string) ([]domain.GeneratedReport, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.GeneratedReport), token, args.Error(2)
}

// MockArtifactStore is a mock type for the ArtifactStore interface
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockArtifactStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Test Suite Setup ---

type ReportServiceTestSuite struct {
	suite.Suite
	mockTxnRepo       *MockTransactionRepository
	mockBranchRepo    *MockBranchRepository
	mockStaffRepo     *MockStaffRepository
	mockReportRepo    *MockReportRepository
	mockArtifactStore *MockArtifactStore
	service           portssvc.ReportService

	fixedNow time.Time
	fixedID  string
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockBranchRepo = new(MockBranchRepository)
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.mockReportRepo = new(MockReportRepository)
	suite.mockArtifactStore = new(MockArtifactStore)

	suite.fixedNow = time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
	suite.fixedID = uuid.NewString()

	suite.service = services.NewReportService(
		suite.mockTxnRepo,
		suite.mockBranchRepo,
		suite.mockStaffRepo,
		suite.mockReportRepo,
		suite.mockArtifactStore,
		render.NewRenderer(render.WithClock(func() time.Time { return suite.fixedNow })),
		services.WithReportClock(func() time.Time { return suite.fixedNow }),
		services.WithReportIDGenerator(func() string { return suite.fixedID }),
	)
}

func (suite *ReportServiceTestSuite) sampleTransactions(amounts []string, currency string) []domain.Transaction {
	txns := make([]domain.Transaction, 0, len(amounts))
	for i, amt := range amounts {
		txns = append(txns, domain.Transaction{
			TransactionID:     uuid.NewString(),
			TransactionNumber: "TXN-2025-0001",
			FromBranchID:      uuid.NewString(),
			ToBranchID:        uuid.NewString(),
			Amount:            decimal.RequireFromString(amt),
			Currency:          currency,
			TransferMethod:    domain.MethodCash,
			TransactionDate:   time.Date(2025, 3, 3+i, 0, 0, 0, 0, time.UTC),
			Status:            domain.StatusConfirmed,
			CreatedAt:         time.Date(2025, 3, 3+i, 10, 0, 0, 0, time.UTC),
			FromBranchName:    "Kabul Branch",
			ToBranchName:      "Herat Branch",
		})
	}
	return txns
}

// --- Test Cases ---

func (suite *ReportServiceTestSuite) TestGenerateMonthlyReport_SingleBranch() {
	ctx := context.Background()
	branchID := uuid.NewString()
	authUserID := uuid.NewString()
	staffID := uuid.NewString()
	txns := suite.sampleTransactions([]string{"1000", "2000", "500"}, "AFN")

	suite.mockBranchRepo.On("FindBranchByID", ctx, branchID).
		Return(&domain.Branch{BranchID: branchID, Name: "Kabul Branch"}, nil).Once()
	suite.mockTxnRepo.On("ListForPeriod", ctx, &branchID, 2025, 3).
		Return(txns, nil).Once()

	var uploaded []byte
	suite.mockArtifactStore.On("Put", ctx, "2025-03/Kabul_Branch_2025-03.pdf", mock.AnythingOfType("[]uint8"), "application/pdf").
		Run(func(args mock.Arguments) {
			uploaded = args.Get(2).([]byte)
		}).
		Return(nil).Once()
	suite.mockStaffRepo.On("FindStaffByAuthUserID", ctx, authUserID).
		Return(&domain.Staff{StaffID: staffID, AuthUserID: authUserID, FullName: "Ahmad Rahimi"}, nil).Once()
	suite.mockReportRepo.On("SaveReport", ctx, mock.AnythingOfType("domain.GeneratedReport")).
		Return(nil).Once()

	report, err := suite.service.GenerateMonthlyReport(ctx, dto.GenerateReportRequest{
		BranchID: &branchID,
		Year:     2025,
		Month:    3,
	}, authUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Equal(suite.fixedID, report.ReportID)
	suite.Equal(&branchID, report.BranchID)
	suite.Equal(domain.ReportTypeMonthly, report.ReportType)
	suite.Equal("2025-03", report.ReportPeriod)
	suite.Equal("Kabul_Branch_2025-03.pdf", report.FileName)
	suite.Equal("2025-03/Kabul_Branch_2025-03.pdf", report.FilePath)
	suite.Equal(3, report.TransactionCount)
	suite.True(report.TotalAmount.Equal(decimal.RequireFromString("3500")))
	suite.Equal("AFN", report.Currency)
	suite.Require().NotNil(report.GeneratedBy)
	suite.Equal(staffID, *report.GeneratedBy)
	suite.Equal(domain.ReportStatusCompleted, report.Status)
	suite.Equal(suite.fixedNow, report.CreatedAt)

	// The recorded size is the size of the bytes that were actually uploaded.
	suite.NotEmpty(uploaded)
	suite.Equal(int64(len(uploaded)), report.FileSize)

	suite.mockBranchRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockArtifactStore.AssertExpectations(suite.T())
	suite.mockStaffRepo.AssertExpectations(suite.T())
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestGenerateMonthlyReport_AllBranches() {
	ctx := context.Background()
	authUserID := uuid.NewString()
	txns := suite.sampleTransactions([]string{"100", "200", "300", "400"}, "AFN")

	suite.mockTxnRepo.On("ListForPeriod", ctx, (*string)(nil), 2025, 3).
		Return(txns, nil).Once()
	suite.mockArtifactStore.On("Put", ctx, "2025-03/All_Branches_2025-03.pdf", mock.AnythingOfType("[]uint8"), "application/pdf").
		Return(nil).Once()
	suite.mockStaffRepo.On("FindStaffByAuthUserID", ctx, authUserID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockReportRepo.On("SaveReport", ctx, mock.AnythingOfType("domain.GeneratedReport")).
		Return(nil).Once()

	report, err := suite.service.GenerateMonthlyReport(ctx, dto.GenerateReportRequest{
		Year:  2025,
		Month: 3,
	}, authUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(report)
	suite.Nil(report.BranchID)
	suite.Equal("All_Branches_2025-03.pdf", report.FileName)
	suite.Equal("2025-03/All_Branches_2025-03.pdf", report.FilePath)
	suite.Equal(4, report.TransactionCount)
	suite.True(report.TotalAmount.Equal(decimal.RequireFromString("1000")))
	// Missing staff profile never fails the report; the row just has no generator.
	suite.Nil(report.GeneratedBy)

	suite.mockBranchRepo.AssertNotCalled(suite.T(), "FindBranchByID")
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestGenerateMonthlyReport_NoTransactions() {
	ctx := context.Background()
	branchID := uuid.NewString()

	suite.mockBranchRepo.On("FindBranchByID", ctx, branchID).
		Return(&domain.Branch{BranchID: branchID, Name: "Kabul Branch"}, nil).Once()
	suite.mockTxnRepo.On("ListForPeriod", ctx, &branchID, 2025, 6).
		Return([]domain.Transaction{}, nil).Once()

	report, err := suite.service.GenerateMonthlyReport(ctx, dto.GenerateReportRequest{
		BranchID: &branchID,
		Year:     2025,
		Month:    6,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNoData)
	suite.Nil(report)

	// Nothing is stored and nothing is recorded for an empty period.
	suite.mockArtifactStore.AssertNotCalled(suite.T(), "Put")
	suite.mockReportRepo.AssertNotCalled(suite.T(), "SaveReport")
}

func (suite *ReportServiceTestSuite) TestGenerateMonthlyReport_BranchMissing_FallsBackToAllBranchesTitle() {
	ctx := context.Background()
	branchID := uuid.NewString()
	authUserID := uuid.NewString()
	txns := suite.sampleTransactions([]string{"750"}, "AFN")

	suite.mockBranchRepo.On("FindBranchByID", ctx, branchID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTxnRepo.On("ListForPeriod", ctx, &branchID, 2025, 3).
		Return(txns, nil).Once()
	suite.mockArtifactStore.On("Put", ctx, "2025-03/All_Branches_2025-03.pdf", mock.AnythingOfType("[]uint8"), "application/pdf").
		Return(nil).Once()
	suite.mockStaffRepo.On("FindStaffByAuthUserID", ctx, authUserID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockReportRepo.On("SaveReport", ctx, mock.AnythingOfType("domain.GeneratedReport")).
		Return(nil).Once()

	report, err := suite.service.GenerateMonthlyReport(ctx, dto.GenerateReportRequest{
		BranchID: &branchID,
		Year:     2025,
		Month:    3,
	}, authUserID)

	suite.Require().NoError(err)
	// The filter stays on the requested branch even when the name lookup missed.
	suite.Equal(&branchID, report.BranchID)
	suite.Equal("2025-03/All_Branches_2025-03.pdf", report.FilePath)
}

func (suite *ReportServiceTestSuite) TestGenerateMonthlyReport_QueryError() {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	suite.mockTxnRepo.On("ListForPeriod", ctx, (*string)(nil), 2025, 3).
		Return(nil, dbErr).Once()

	report, err := suite.service.GenerateMonthlyReport(ctx, dto.GenerateReportRequest{
		Year:  2025,
		Month: 3,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, dbErr)
	suite.Nil(report)
	suite.mockArtifactStore.AssertNotCalled(suite.T(), "Put")
}

func (suite *ReportServiceTestSuite) TestGenerateMonthlyReport_UploadFailure_NoLedgerRow() {
	ctx := context.Background()
	authUserID := uuid.NewString()
	txns := suite.sampleTransactions([]string{"1000"}, "AFN")
	uploadErr := errors.New("bucket unavailable")

	suite.mockTxnRepo.On("ListForPeriod", ctx, (*string)(nil), 2025, 3).
		Return(txns, nil).Once()
	suite.mockArtifactStore.On("Put", ctx, "2025-03/All_Branches_2025-03.pdf", mock.AnythingOfType("[]uint8"), "application/pdf").
		Return(uploadErr).Once()

	report, err := suite.service.GenerateMonthlyReport(ctx, dto.GenerateReportRequest{
		Year:  2025,
		Month: 3,
	}, authUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, uploadErr)
	suite.Nil(report)

	// A failed upload must never leave a ledger row behind.
	suite.mockReportRepo.AssertNotCalled(suite.T(), "SaveReport")
}

func (suite *ReportServiceTestSuite) TestGenerateMonthlyReport_LedgerFailure() {
	ctx := context.Background()
	authUserID := uuid.NewString()
	txns := suite.sampleTransactions([]string{"1000"}, "AFN")
	saveErr := errors.New("insert failed")

	suite.mockTxnRepo.On("ListForPeriod", ctx, (*string)(nil), 2025, 3).
		Return(txns, nil).Once()
	suite.mockArtifactStore.On("Put", ctx, "2025-03/All_Branches_2025-03.pdf", mock.AnythingOfType("[]uint8"), "application/pdf").
		Return(nil).Once()
	suite.mockStaffRepo.On("FindStaffByAuthUserID", ctx, authUserID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockReportRepo.On("SaveReport", ctx, mock.AnythingOfType("domain.GeneratedReport")).
		Return(saveErr).Once()

	report, err := suite.service.GenerateMonthlyReport(ctx, dto.GenerateReportRequest{
		Year:  2025,
		Month: 3,
	}, authUserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, saveErr)
	suite.Nil(report)
}

func (suite *ReportServiceTestSuite) TestGenerateMonthlyReport_RepeatUsesSameKey() {
	ctx := context.Background()
	branchID := uuid.NewString()
	authUserID := uuid.NewString()
	txns := suite.sampleTransactions([]string{"500", "500"}, "AFN")

	suite.mockBranchRepo.On("FindBranchByID", ctx, branchID).
		Return(&domain.Branch{BranchID: branchID, Name: "Kabul Branch"}, nil).Twice()
	suite.mockTxnRepo.On("ListForPeriod", ctx, &branchID, 2025, 3).
		Return(txns, nil).Twice()

	var keys []string
	suite.mockArtifactStore.On("Put", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8"), "application/pdf").
		Run(func(args mock.Arguments) {
			keys = append(keys, args.String(1))
		}).
		Return(nil).Twice()
	suite.mockStaffRepo.On("FindStaffByAuthUserID", ctx, authUserID).
		Return(nil, apperrors.ErrNotFound).Twice()
	suite.mockReportRepo.On("SaveReport", ctx, mock.AnythingOfType("domain.GeneratedReport")).
		Return(nil).Twice()

	req := dto.GenerateReportRequest{BranchID: &branchID, Year: 2025, Month: 3}
	_, err := suite.service.GenerateMonthlyReport(ctx, req, authUserID)
	suite.Require().NoError(err)
	_, err = suite.service.GenerateMonthlyReport(ctx, req, authUserID)
	suite.Require().NoError(err)

	// Re-generation targets the same object; storage overwrites in place.
	suite.Require().Len(keys, 2)
	suite.Equal(keys[0], keys[1])
}

func (suite *ReportServiceTestSuite) TestGenerateMonthlyReport_MixedCurrencies_UsesFirst() {
	ctx := context.Background()
	authUserID := uuid.NewString()
	txns := suite.sampleTransactions([]string{"100"}, "USD")
	txns = append(txns, suite.sampleTransactions([]string{"200"}, "AFN")...)

	suite.mockTxnRepo.On("ListForPeriod", ctx, (*string)(nil), 2025, 3).
		Return(txns, nil).Once()
	suite.mockArtifactStore.On("Put", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("[]uint8"), "application/pdf").
		Return(nil).Once()
	suite.mockStaffRepo.On("FindStaffByAuthUserID", ctx, authUserID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockReportRepo.On("SaveReport", ctx, mock.AnythingOfType("domain.GeneratedReport")).
		Return(nil).Once()

	report, err := suite.service.GenerateMonthlyReport(ctx, dto.GenerateReportRequest{
		Year:  2025,
		Month: 3,
	}, authUserID)

	suite.Require().NoError(err)
	suite.Equal("USD", report.Currency)
	suite.True(report.TotalAmount.Equal(decimal.RequireFromString("300")))
}

func (suite *ReportServiceTestSuite) TestListReports_ClampsLimit() {
	ctx := context.Background()

	suite.mockReportRepo.On("ListReports", ctx, 20, (*string)(nil)).
		Return([]domain.GeneratedReport{}, nil, nil).Once()
	suite.mockReportRepo.On("ListReports", ctx, 100, (*string)(nil)).
		Return([]domain.GeneratedReport{}, nil, nil).Once()

	_, _, err := suite.service.ListReports(ctx, 0, nil)
	suite.Require().NoError(err)
	_, _, err = suite.service.ListReports(ctx, 500, nil)
	suite.Require().NoError(err)

	suite.mockReportRepo.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestDownloadReport_Success() {
	ctx := context.Background()
	reportID := uuid.NewString()
	row := &domain.GeneratedReport{
		ReportID: reportID,
		FileName: "Kabul_Branch_2025-03.pdf",
		FilePath: "2025-03/Kabul_Branch_2025-03.pdf",
	}
	pdfBytes := []byte("%PDF-1.3 fake")

	suite.mockReportRepo.On("FindReportByID", ctx, reportID).Return(row, nil).Once()
	suite.mockArtifactStore.On("Get", ctx, row.FilePath).Return(pdfBytes, nil).Once()

	report, data, err := suite.service.DownloadReport(ctx, reportID)

	suite.Require().NoError(err)
	suite.Equal(row, report)
	suite.Equal(pdfBytes, data)
}

func (suite *ReportServiceTestSuite) TestDownloadReport_NotFound() {
	ctx := context.Background()
	reportID := uuid.NewString()

	suite.mockReportRepo.On("FindReportByID", ctx, reportID).
		Return(nil, apperrors.ErrNotFound).Once()

	report, data, err := suite.service.DownloadReport(ctx, reportID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(report)
	suite.Nil(data)
	suite.mockArtifactStore.AssertNotCalled(suite.T(), "Get")
}

func TestArtifactKey(t *testing.T) {
	fileName, filePath := services.ArtifactKey("Kabul Branch", "2025-03")
	if fileName != "Kabul_Branch_2025-03.pdf" {
		t.Errorf("fileName = %q", fileName)
	}
	if filePath != "2025-03/Kabul_Branch_2025-03.pdf" {
		t.Errorf("filePath = %q", filePath)
	}

	fileName, filePath = services.ArtifactKey("Main  Office\tWest", "2024-12")
	if fileName != "Main_Office_West_2024-12.pdf" {
		t.Errorf("fileName = %q", fileName)
	}
	if filePath != "2024-12/Main_Office_West_2024-12.pdf" {
		t.Errorf("filePath = %q", filePath)
	}
}

// --- Run Suite ---

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
