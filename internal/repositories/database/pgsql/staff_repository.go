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

// PgxStaffRepository reads the profiles table.
type PgxStaffRepository struct {
	BaseRepository
}

// newPgxStaffRepository creates a new repository for staff profile data.
func newPgxStaffRepository(pool *pgxpool.Pool) portsrepo.StaffRepository {
	return &PgxStaffRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxStaffRepository implements portsrepo.StaffRepository
var _ portsrepo.StaffRepository = (*PgxStaffRepository)(nil)

// FindStaffByAuthUserID resolves an identity-provider subject to a staff profile.
func (r *PgxStaffRepository) FindStaffByAuthUserID(ctx context.Context, authUserID string) (*domain.Staff, error) {
	query := `
		SELECT staff_id, auth_user_id, full_name, branch_id, created_at
		FROM profiles
		WHERE auth_user_id = $1
	`

	var m models.Staff
	err := r.Pool.QueryRow(ctx, query, authUserID).Scan(
		&m.StaffID, &m.AuthUserID, &m.FullName, &m.BranchID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding staff profile for auth user %s: %w", authUserID, err)
	}

	staff := mapping.ToDomainStaff(m)
	return &staff, nil
}
