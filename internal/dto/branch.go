package dto

import (
	"time"

	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
)

// BranchResponse is one branch as returned to clients.
type BranchResponse struct {
	BranchID  string `json:"branchID"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"createdAt"`
}

// ListBranchesResponse wraps the full branch listing.
type ListBranchesResponse struct {
	Branches []BranchResponse `json:"branches"`
}

// ToBranchResponse converts a domain Branch to its response shape.
func ToBranchResponse(b domain.Branch) BranchResponse {
	return BranchResponse{
		BranchID:  b.BranchID,
		Name:      b.Name,
		Location:  b.Location,
		Phone:     b.Phone,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}

// ToListBranchesResponse converts the full branch listing.
func ToListBranchesResponse(branches []domain.Branch) ListBranchesResponse {
	resp := ListBranchesResponse{Branches: make([]BranchResponse, len(branches))}
	for i, b := range branches {
		resp.Branches[i] = ToBranchResponse(b)
	}
	return resp
}
