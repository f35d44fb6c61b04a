package repositories

import (
	"context"

	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
)

// ReportRepository is the append-only ledger of generated reports.
type ReportRepository interface {
	// SaveReport inserts one ledger row. There is no update path; a row is
	// written exactly once per successful generation, after the artifact
	// upload has been confirmed.
	SaveReport(ctx context.Context, report domain.GeneratedReport) error

	// FindReportByID returns the ledger row or apperrors.ErrNotFound.
	FindReportByID(ctx context.Context, reportID string) (*domain.GeneratedReport, error)

	// ListReports returns a cursor-paginated page of ledger rows, newest
	// first, with the next page token (nil when exhausted).
	ListReports(ctx context.Context, limit int, nextToken *string) ([]domain.GeneratedReport, *string, error)
}
