package services

import (
	"context"
	"fmt"

	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	portsrepo "github.com/safa-edu/branch_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/safa-edu/branch_transfer_app/internal/core/ports/services"
	"github.com/safa-edu/branch_transfer_app/internal/dto"
)

const (
	defaultTxnPageSize = 25
	maxTxnPageSize     = 100
)

// transactionService implements the TransactionService interface
type transactionService struct {
	BaseService
	txnRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txnRepo portsrepo.TransactionRepository) portssvc.TransactionService {
	return &transactionService{txnRepo: txnRepo}
}

var _ portssvc.TransactionService = (*transactionService)(nil)

// ListTransactions returns a cursor-paginated page of transactions.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTxnPageSize
	} else if limit > maxTxnPageSize {
		limit = maxTxnPageSize
	}

	repoParams := portsrepo.ListTransactionsParams{
		BranchID:  params.BranchID,
		Limit:     limit,
		NextToken: params.NextToken,
	}
	if params.Status != nil {
		status := domain.TransactionStatus(*params.Status)
		repoParams.Status = &status
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, repoParams)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	resp := dto.ToListTransactionsResponse(txns, nextToken)
	return &resp, nil
}
