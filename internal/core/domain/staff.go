package domain

import "time"

// Staff is a staff profile. AuthUserID links the profile to the identity
// provider subject carried in the bearer token.
type Staff struct {
	StaffID    string    `json:"staffID"`
	AuthUserID string    `json:"authUserID"`
	FullName   string    `json:"fullName"`
	BranchID   *string   `json:"branchID,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
