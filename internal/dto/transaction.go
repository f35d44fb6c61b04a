package dto

import (
	"time"

	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams carries the query parameters of GET /transactions.
type ListTransactionsParams struct {
	BranchID  *string
	Status    *string
	Limit     int
	NextToken *string
}

// TransactionResponse is one transaction as returned to clients, with joined
// display names already resolved.
type TransactionResponse struct {
	TransactionID     string          `json:"transactionID"`
	TransactionNumber string          `json:"transactionNumber"`
	FromBranchID      string          `json:"fromBranchID"`
	ToBranchID        string          `json:"toBranchID"`
	FromBranchName    string          `json:"fromBranchName"`
	ToBranchName      string          `json:"toBranchName"`
	FromStaffName     string          `json:"fromStaffName"`
	ToStaffName       string          `json:"toStaffName"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	TransferMethod    string          `json:"transferMethod"`
	TransactionDate   string          `json:"transactionDate"`
	ReceivedDate      *string         `json:"receivedDate,omitempty"`
	Status            string          `json:"status"`
	Notes             *string         `json:"notes,omitempty"`
	CreatedAt         string          `json:"createdAt"`
}

// ListTransactionsResponse is a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain Transaction to its response shape.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:     t.TransactionID,
		TransactionNumber: t.TransactionNumber,
		FromBranchID:      t.FromBranchID,
		ToBranchID:        t.ToBranchID,
		FromBranchName:    t.FromBranchName,
		ToBranchName:      t.ToBranchName,
		FromStaffName:     t.FromStaffName,
		ToStaffName:       t.ToStaffName,
		Amount:            t.Amount,
		Currency:          t.Currency,
		TransferMethod:    string(t.TransferMethod),
		TransactionDate:   t.TransactionDate.Format("2006-01-02"),
		Status:            string(t.Status),
		Notes:             t.Notes,
		CreatedAt:         t.CreatedAt.Format(time.RFC3339),
	}
	if t.ReceivedDate != nil {
		received := t.ReceivedDate.Format("2006-01-02")
		resp.ReceivedDate = &received
	}
	return resp
}

// ToListTransactionsResponse converts a page of transactions plus its cursor.
func ToListTransactionsResponse(txns []domain.Transaction, nextToken *string) ListTransactionsResponse {
	resp := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(txns)),
		NextToken:    nextToken,
	}
	for i, t := range txns {
		resp.Transactions[i] = ToTransactionResponse(t)
	}
	return resp
}
