package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/safa-edu/branch_transfer_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds all pgsql repositories on a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BranchRepo:      newPgxBranchRepository(dbPool),
		StaffRepo:       newPgxStaffRepository(dbPool),
		ReportRepo:      newPgxReportRepository(dbPool),
	}
}
