package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/safa-edu/branch_transfer_app/internal/apperrors"
	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	portsrepo "github.com/safa-edu/branch_transfer_app/internal/core/ports/repositories"
	"github.com/safa-edu/branch_transfer_app/internal/models"
	"github.com/safa-edu/branch_transfer_app/internal/utils/mapping"
	"github.com/safa-edu/branch_transfer_app/internal/utils/pagination"
)

const reportColumns = `
	report_id, branch_id, report_type, report_period,
	file_name, file_path, file_size, transaction_count,
	total_amount, currency, generated_by, status, created_at
`

// PgxReportRepository is the append-only generated_reports ledger.
type PgxReportRepository struct {
	BaseRepository
}

// newPgxReportRepository creates a new repository for the report ledger.
func newPgxReportRepository(pool *pgxpool.Pool) portsrepo.ReportRepository {
	return &PgxReportRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReportRepository implements portsrepo.ReportRepository
var _ portsrepo.ReportRepository = (*PgxReportRepository)(nil)

// SaveReport inserts one ledger row. No update path exists; rows are written
// exactly once and never touched again.
func (r *PgxReportRepository) SaveReport(ctx context.Context, report domain.GeneratedReport) error {
	m := mapping.ToModelGeneratedReport(report)

	query := `
		INSERT INTO generated_reports (` + reportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReportID,
		m.BranchID,
		m.ReportType,
		m.ReportPeriod,
		m.FileName,
		m.FilePath,
		m.FileSize,
		m.TransactionCount,
		m.TotalAmount,
		m.Currency,
		m.GeneratedBy,
		m.Status,
		m.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert generated report "+m.ReportID, err)
	}

	return nil
}

// FindReportByID retrieves a ledger row by its ID.
func (r *PgxReportRepository) FindReportByID(ctx context.Context, reportID string) (*domain.GeneratedReport, error) {
	query := `SELECT ` + reportColumns + ` FROM generated_reports WHERE report_id = $1`

	m, err := scanReport(r.Pool.QueryRow(ctx, query, reportID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding report %s: %w", reportID, err)
	}

	report := mapping.ToDomainGeneratedReport(m)
	return &report, nil
}

// ListReports returns a cursor-paginated page of ledger rows, newest first.
func (r *PgxReportRepository) ListReports(ctx context.Context, limit int, nextToken *string) ([]domain.GeneratedReport, *string, error) {
	query := `SELECT ` + reportColumns + ` FROM generated_reports`
	args := []interface{}{}

	if nextToken != nil {
		createdAt, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", err)
		}
		args = append(args, createdAt)
		tsPh := strconv.Itoa(len(args))
		args = append(args, id)
		idPh := strconv.Itoa(len(args))
		query += ` WHERE (created_at, report_id) < ($` + tsPh + `, $` + idPh + `)`
	}

	args = append(args, limit+1)
	query += ` ORDER BY created_at DESC, report_id DESC LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying generated reports: %w", err)
	}
	defer rows.Close()

	var reports []models.GeneratedReport
	for rows.Next() {
		m, err := scanReport(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("error scanning report row: %w", err)
		}
		reports = append(reports, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	var token *string
	if len(reports) > limit {
		reports = reports[:limit]
		last := reports[len(reports)-1]
		encoded := pagination.EncodeToken(last.CreatedAt, last.ReportID)
		token = &encoded
	}

	out := make([]domain.GeneratedReport, len(reports))
	for i, m := range reports {
		out[i] = mapping.ToDomainGeneratedReport(m)
	}
	return out, token, nil
}

func scanReport(row pgx.Row) (models.GeneratedReport, error) {
	var m models.GeneratedReport
	err := row.Scan(
		&m.ReportID,
		&m.BranchID,
		&m.ReportType,
		&m.ReportPeriod,
		&m.FileName,
		&m.FilePath,
		&m.FileSize,
		&m.TransactionCount,
		&m.TotalAmount,
		&m.Currency,
		&m.GeneratedBy,
		&m.Status,
		&m.CreatedAt,
	)
	return m, err
}
