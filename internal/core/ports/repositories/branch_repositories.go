package repositories

import (
	"context"

	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
)

// BranchRepository defines read operations over the branches table.
type BranchRepository interface {
	// FindBranchByID returns the branch or apperrors.ErrNotFound.
	FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)

	// ListBranches returns all branches ordered by name.
	ListBranches(ctx context.Context) ([]domain.Branch, error)
}

// StaffRepository defines read operations over the profiles table.
type StaffRepository interface {
	// FindStaffByAuthUserID resolves the identity-provider subject to a staff
	// profile. Returns apperrors.ErrNotFound when no profile is linked.
	FindStaffByAuthUserID(ctx context.Context, authUserID string) (*domain.Staff, error)
}
