package mapping

import (
	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	"github.com/safa-edu/branch_transfer_app/internal/models"
)

// ToDomainBranch converts a model Branch to a domain Branch.
func ToDomainBranch(m models.Branch) domain.Branch {
	return domain.Branch{
		BranchID:  m.BranchID,
		Name:      m.Name,
		Location:  m.Location,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainBranches converts a slice of model Branches.
func ToDomainBranches(ms []models.Branch) []domain.Branch {
	out := make([]domain.Branch, len(ms))
	for i, m := range ms {
		out[i] = ToDomainBranch(m)
	}
	return out
}

// ToDomainStaff converts a model Staff to a domain Staff.
func ToDomainStaff(m models.Staff) domain.Staff {
	return domain.Staff{
		StaffID:    m.StaffID,
		AuthUserID: m.AuthUserID,
		FullName:   m.FullName,
		BranchID:   m.BranchID,
		CreatedAt:  m.CreatedAt,
	}
}
