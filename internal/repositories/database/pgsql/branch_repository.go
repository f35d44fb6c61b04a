package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/safa-edu/branch_transfer_app/internal/apperrors"
	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	portsrepo "github.com/safa-edu/branch_transfer_app/internal/core/ports/repositories"
	"github.com/safa-edu/branch_transfer_app/internal/models"
	"github.com/safa-edu/branch_transfer_app/internal/utils/mapping"
)

// PgxBranchRepository reads the branches table.
type PgxBranchRepository struct {
	BaseRepository
}

// newPgxBranchRepository creates a new repository for branch data.
func newPgxBranchRepository(pool *pgxpool.Pool) portsrepo.BranchRepository {
	return &PgxBranchRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBranchRepository implements portsrepo.BranchRepository
var _ portsrepo.BranchRepository = (*PgxBranchRepository)(nil)

// FindBranchByID retrieves a branch by its ID.
func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	query := `
		SELECT branch_id, name, location, phone, created_at
		FROM branches
		WHERE branch_id = $1
	`

	var m models.Branch
	err := r.Pool.QueryRow(ctx, query, branchID).Scan(
		&m.BranchID, &m.Name, &m.Location, &m.Phone, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding branch %s: %w", branchID, err)
	}

	branch := mapping.ToDomainBranch(m)
	return &branch, nil
}

// ListBranches retrieves all branches ordered by name.
func (r *PgxBranchRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	query := `
		SELECT branch_id, name, location, phone, created_at
		FROM branches
		ORDER BY name ASC
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying branches: %w", err)
	}
	defer rows.Close()

	var branches []models.Branch
	for rows.Next() {
		var m models.Branch
		if err := rows.Scan(&m.BranchID, &m.Name, &m.Location, &m.Phone, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning branch row: %w", err)
		}
		branches = append(branches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating branch rows: %w", err)
	}

	return mapping.ToDomainBranches(branches), nil
}
