package services

import (
	"context"

	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	"github.com/safa-edu/branch_transfer_app/internal/dto"
)

// ReportService runs the monthly report pipeline and serves the ledger index.
type ReportService interface {
	// GenerateMonthlyReport executes query -> render -> upload -> record for
	// the requested branch and period and returns the persisted ledger row.
	// Returns apperrors.ErrNoData when the period has no transactions.
	GenerateMonthlyReport(ctx context.Context, req dto.GenerateReportRequest, authUserID string) (*domain.GeneratedReport, error)

	// GetReportByID returns a single ledger row.
	GetReportByID(ctx context.Context, reportID string) (*domain.GeneratedReport, error)

	// ListReports returns a cursor-paginated page of ledger rows.
	ListReports(ctx context.Context, limit int, nextToken *string) ([]domain.GeneratedReport, *string, error)

	// DownloadReport fetches the artifact bytes for a ledger row.
	DownloadReport(ctx context.Context, reportID string) (*domain.GeneratedReport, []byte, error)
}
