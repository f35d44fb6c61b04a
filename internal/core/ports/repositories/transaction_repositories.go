package repositories

import (
	"context"

	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
)

// ListTransactionsParams carries the optional filters and cursor for the
// general transactions listing.
type ListTransactionsParams struct {
	BranchID  *string
	Status    *domain.TransactionStatus
	Limit     int
	NextToken *string
}

// TransactionRepository defines read operations over the transactions table.
// The reporting subsystem is a read-only consumer; writes happen elsewhere.
type TransactionRepository interface {
	// ListForPeriod returns the transactions whose transaction_date falls
	// within the given calendar month, ascending by date, enriched with
	// branch and staff display names via left joins. When branchID is set,
	// only transactions where that branch is origin or destination match.
	// An empty period yields an empty slice, not an error.
	ListForPeriod(ctx context.Context, branchID *string, year, month int) ([]domain.Transaction, error)

	// ListTransactions returns a cursor-paginated page of transactions,
	// newest first, with the next page token (nil when exhausted).
	ListTransactions(ctx context.Context, params ListTransactionsParams) ([]domain.Transaction, *string, error)
}
