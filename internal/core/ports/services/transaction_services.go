package services

import (
	"context"

	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	"github.com/safa-edu/branch_transfer_app/internal/dto"
)

// TransactionService exposes the read side of the transactions table.
type TransactionService interface {
	// ListTransactions returns a cursor-paginated page of transactions.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// BranchService exposes the read side of the branches table.
type BranchService interface {
	GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)
	ListBranches(ctx context.Context) ([]domain.Branch, error)
}
