package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus indicates the state of an inter-branch transfer.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusConfirmed TransactionStatus = "confirmed"
	StatusCancelled TransactionStatus = "cancelled"
)

// TransferMethod is the channel a transfer moved through.
// Wire-service names are stored as free strings; Cash and Other are the
// catch-all values.
type TransferMethod string

const (
	MethodCash  TransferMethod = "Cash"
	MethodOther TransferMethod = "Other"
)

// Transaction represents a single inter-branch money transfer.
// Amount is always positive; direction is carried by the from/to branch pair.
// The *Name fields are display names resolved by a left join and may be empty
// when the referenced branch or staff row is gone; consumers substitute "N/A".
type Transaction struct {
	TransactionID     string            `json:"transactionID"`
	TransactionNumber string            `json:"transactionNumber"`
	FromBranchID      string            `json:"fromBranchID"`
	ToBranchID        string            `json:"toBranchID"`
	FromStaffID       string            `json:"fromStaffID"`
	ToStaffID         string            `json:"toStaffID"`
	Amount            decimal.Decimal   `json:"amount"`
	Currency          string            `json:"currency"`
	TransferMethod    TransferMethod    `json:"transferMethod"`
	TransactionDate   time.Time         `json:"transactionDate"`
	ReceivedDate      *time.Time        `json:"receivedDate,omitempty"`
	Status            TransactionStatus `json:"status"`
	ConfirmationCode  *string           `json:"confirmationCode,omitempty"`
	Notes             *string           `json:"notes,omitempty"`
	ReceiptURL        *string           `json:"receiptURL,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`

	FromBranchName string `json:"fromBranchName,omitempty"`
	ToBranchName   string `json:"toBranchName,omitempty"`
	FromStaffName  string `json:"fromStaffName,omitempty"`
	ToStaffName    string `json:"toStaffName,omitempty"`
}
