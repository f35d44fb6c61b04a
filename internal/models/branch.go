package models

import "time"

// Branch mirrors the branches table.
type Branch struct {
	BranchID  string    `json:"branchID"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}
