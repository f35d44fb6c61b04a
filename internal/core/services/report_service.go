package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/safa-edu/branch_transfer_app/internal/apperrors"
	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	portsrepo "github.com/safa-edu/branch_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/safa-edu/branch_transfer_app/internal/core/ports/services"
	portsstorage "github.com/safa-edu/branch_transfer_app/internal/core/ports/storage"
	"github.com/safa-edu/branch_transfer_app/internal/dto"
	"github.com/safa-edu/branch_transfer_app/internal/render"
	"github.com/safa-edu/branch_transfer_app/internal/utils"
)

const (
	defaultReportPageSize = 20
	maxReportPageSize     = 100

	allBranchesName = "All Branches"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// reportService implements the ReportService interface. It orchestrates the
// monthly report pipeline: query -> render -> upload -> record, sequentially
// within the request lifecycle, with no retries and no partial success.
type reportService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepository
	branchRepo portsrepo.BranchRepository
	staffRepo  portsrepo.StaffRepository
	reportRepo portsrepo.ReportRepository
	artifacts  portsstorage.ArtifactStore
	renderer   *render.Renderer

	newID func() string
	now   func() time.Time
}

// ReportServiceOption is a functional option for configuring the report service
type ReportServiceOption func(*reportService)

// WithReportClock overrides the wall clock, for tests.
func WithReportClock(now func() time.Time) ReportServiceOption {
	return func(s *reportService) {
		s.now = now
	}
}

// WithReportIDGenerator overrides ledger row ID generation, for tests.
func WithReportIDGenerator(newID func() string) ReportServiceOption {
	return func(s *reportService) {
		s.newID = newID
	}
}

// NewReportService creates a new report service with the provided options
func NewReportService(
	txnRepo portsrepo.TransactionRepository,
	branchRepo portsrepo.BranchRepository,
	staffRepo portsrepo.StaffRepository,
	reportRepo portsrepo.ReportRepository,
	artifacts portsstorage.ArtifactStore,
	renderer *render.Renderer,
	options ...ReportServiceOption,
) portssvc.ReportService {
	svc := &reportService{
		txnRepo:    txnRepo,
		branchRepo: branchRepo,
		staffRepo:  staffRepo,
		reportRepo: reportRepo,
		artifacts:  artifacts,
		renderer:   renderer,
		newID:      uuid.NewString,
		now:        time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportService implements the ReportService interface
var _ portssvc.ReportService = (*reportService)(nil)

// ArtifactKey derives the deterministic storage key for a report artifact:
// "<period>/<BranchName_with_underscores>_<period>.pdf". Identical inputs
// always map to the same key, so re-generation overwrites in place.
func ArtifactKey(branchName, period string) (fileName, filePath string) {
	fileName = whitespaceRun.ReplaceAllString(branchName, "_") + "_" + period + ".pdf"
	filePath = period + "/" + fileName
	return fileName, filePath
}

// GenerateMonthlyReport executes the full pipeline and returns the persisted
// ledger row. The ledger insert only happens after the artifact upload has
// been confirmed, and it records the aggregates of the exact transaction
// slice the renderer consumed.
func (s *reportService) GenerateMonthlyReport(ctx context.Context, req dto.GenerateReportRequest, authUserID string) (*domain.GeneratedReport, error) {
	period := utils.PeriodKey(req.Year, req.Month)

	branchName := allBranchesName
	if req.BranchID != nil {
		branch, err := s.branchRepo.FindBranchByID(ctx, *req.BranchID)
		switch {
		case err == nil:
			branchName = branch.Name
		case errors.Is(err, apperrors.ErrNotFound):
			// Report still runs with the generic title.
			s.LogWarn(ctx, "Branch not found, report falls back to all-branches title",
				slog.String("branch_id", *req.BranchID))
		default:
			s.LogError(ctx, err, "Failed to resolve branch name", slog.String("branch_id", *req.BranchID))
			return nil, fmt.Errorf("failed to resolve branch: %w", err)
		}
	}

	txns, err := s.txnRepo.ListForPeriod(ctx, req.BranchID, req.Year, req.Month)
	if err != nil {
		s.LogError(ctx, err, "Failed to query transactions for report",
			slog.String("period", period))
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	if len(txns) == 0 {
		return nil, apperrors.ErrNoData
	}

	currency := render.BatchCurrency(txns)
	for _, txn := range txns {
		if txn.Currency != currency {
			s.LogWarn(ctx, "Mixed currencies in report batch, total assumes first transaction's currency",
				slog.String("period", period),
				slog.String("report_currency", currency),
				slog.String("other_currency", txn.Currency))
			break
		}
	}

	pdfBytes, err := s.renderer.Render(txns, branchName, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to render report", slog.String("period", period))
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	if len(pdfBytes) == 0 {
		return nil, fmt.Errorf("failed to generate PDF: empty document")
	}

	fileName, filePath := ArtifactKey(branchName, period)

	if err := s.artifacts.Put(ctx, filePath, pdfBytes, "application/pdf"); err != nil {
		s.LogError(ctx, err, "Failed to upload report artifact", slog.String("file_path", filePath))
		return nil, fmt.Errorf("failed to upload report: %w", err)
	}

	// Generator resolution is best-effort: a missing profile never fails a
	// report that has already been rendered and stored.
	var generatedBy *string
	staff, err := s.staffRepo.FindStaffByAuthUserID(ctx, authUserID)
	switch {
	case err == nil:
		generatedBy = &staff.StaffID
	case errors.Is(err, apperrors.ErrNotFound):
		s.LogDebug(ctx, "No staff profile for auth user", slog.String("auth_user_id", authUserID))
	default:
		s.LogWarn(ctx, "Failed to resolve generator profile", slog.String("error", err.Error()))
	}

	report := domain.GeneratedReport{
		ReportID:         s.newID(),
		BranchID:         req.BranchID,
		ReportType:       domain.ReportTypeMonthly,
		ReportPeriod:     period,
		FileName:         fileName,
		FilePath:         filePath,
		FileSize:         int64(len(pdfBytes)),
		TransactionCount: len(txns),
		TotalAmount:      render.SumAmounts(txns),
		Currency:         currency,
		GeneratedBy:      generatedBy,
		Status:           domain.ReportStatusCompleted,
		CreatedAt:        s.now().UTC(),
	}

	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		s.LogError(ctx, err, "Failed to record report in ledger", slog.String("file_path", filePath))
		return nil, fmt.Errorf("failed to record report: %w", err)
	}

	s.LogInfo(ctx, "Monthly report generated",
		slog.String("report_id", report.ReportID),
		slog.String("period", period),
		slog.Int("transaction_count", report.TransactionCount),
		slog.Int64("file_size", report.FileSize))
	return &report, nil
}

// GetReportByID returns a single ledger row.
func (s *reportService) GetReportByID(ctx context.Context, reportID string) (*domain.GeneratedReport, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch report", slog.String("report_id", reportID))
		}
		return nil, err
	}
	return report, nil
}

// ListReports returns a cursor-paginated page of ledger rows.
func (s *reportService) ListReports(ctx context.Context, limit int, nextToken *string) ([]domain.GeneratedReport, *string, error) {
	if limit <= 0 {
		limit = defaultReportPageSize
	} else if limit > maxReportPageSize {
		limit = maxReportPageSize
	}

	reports, token, err := s.reportRepo.ListReports(ctx, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reports")
		return nil, nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, token, nil
}

// DownloadReport fetches a ledger row and its artifact bytes.
func (s *reportService) DownloadReport(ctx context.Context, reportID string) (*domain.GeneratedReport, []byte, error) {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		return nil, nil, err
	}

	data, err := s.artifacts.Get(ctx, report.FilePath)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch report artifact",
			slog.String("report_id", reportID),
			slog.String("file_path", report.FilePath))
		return nil, nil, fmt.Errorf("failed to fetch report artifact: %w", err)
	}
	return report, data, nil
}
