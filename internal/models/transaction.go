package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus mirrors the status column of the transactions table.
type TransactionStatus string

const (
	Pending   TransactionStatus = "pending"
	Confirmed TransactionStatus = "confirmed"
	Cancelled TransactionStatus = "cancelled"
)

// Transaction mirrors the transactions table. The *Name fields are populated
// by left joins against branches and profiles and are nil when the reference
// dangles.
type Transaction struct {
	TransactionID     string            `json:"transactionID"`
	TransactionNumber string            `json:"transactionNumber"`
	FromBranchID      string            `json:"fromBranchID"`
	ToBranchID        string            `json:"toBranchID"`
	FromStaffID       string            `json:"fromStaffID"`
	ToStaffID         string            `json:"toStaffID"`
	Amount            decimal.Decimal   `json:"amount"`
	Currency          string            `json:"currency"`
	TransferMethod    string            `json:"transferMethod"`
	TransactionDate   time.Time         `json:"transactionDate"`
	ReceivedDate      *time.Time        `json:"receivedDate"`
	Status            TransactionStatus `json:"status"`
	ConfirmationCode  *string           `json:"confirmationCode"`
	Notes             *string           `json:"notes"`
	ReceiptURL        *string           `json:"receiptURL"`
	CreatedAt         time.Time         `json:"createdAt"`

	FromBranchName *string `json:"fromBranchName"`
	ToBranchName   *string `json:"toBranchName"`
	FromStaffName  *string `json:"fromStaffName"`
	ToStaffName    *string `json:"toStaffName"`
}
