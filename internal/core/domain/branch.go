package domain

import "time"

// Branch represents an organizational location. Transactions move funds
// between branches via staff members.
type Branch struct {
	BranchID  string    `json:"branchID"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}
