package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/safa-edu/branch_transfer_app/internal/apperrors"
	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	portsrepo "github.com/safa-edu/branch_transfer_app/internal/core/ports/repositories"
	portssvc "github.com/safa-edu/branch_transfer_app/internal/core/ports/services"
)

// branchService implements the BranchService interface
type branchService struct {
	BaseService
	branchRepo portsrepo.BranchRepository
}

// NewBranchService creates a new branch service
func NewBranchService(branchRepo portsrepo.BranchRepository) portssvc.BranchService {
	return &branchService{branchRepo: branchRepo}
}

var _ portssvc.BranchService = (*branchService)(nil)

// GetBranchByID returns a single branch.
func (s *branchService) GetBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to fetch branch", slog.String("branch_id", branchID))
		}
		return nil, err
	}
	return branch, nil
}

// ListBranches returns all branches ordered by name.
func (s *branchService) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	branches, err := s.branchRepo.ListBranches(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list branches")
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return branches, nil
}
