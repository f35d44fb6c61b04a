package models

import "time"

// Staff mirrors the profiles table.
type Staff struct {
	StaffID    string    `json:"staffID"`
	AuthUserID string    `json:"authUserID"`
	FullName   string    `json:"fullName"`
	BranchID   *string   `json:"branchID"`
	CreatedAt  time.Time `json:"createdAt"`
}
