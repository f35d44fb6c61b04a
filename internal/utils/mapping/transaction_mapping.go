package mapping

import (
	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	"github.com/safa-edu/branch_transfer_app/internal/models"
)

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// Joined display names collapse from *string to string; a dangling join
// becomes the empty string and is substituted downstream.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:     m.TransactionID,
		TransactionNumber: m.TransactionNumber,
		FromBranchID:      m.FromBranchID,
		ToBranchID:        m.ToBranchID,
		FromStaffID:       m.FromStaffID,
		ToStaffID:         m.ToStaffID,
		Amount:            m.Amount,
		Currency:          m.Currency,
		TransferMethod:    domain.TransferMethod(m.TransferMethod),
		TransactionDate:   m.TransactionDate,
		ReceivedDate:      m.ReceivedDate,
		Status:            domain.TransactionStatus(m.Status),
		ConfirmationCode:  m.ConfirmationCode,
		Notes:             m.Notes,
		ReceiptURL:        m.ReceiptURL,
		CreatedAt:         m.CreatedAt,
		FromBranchName:    derefOrEmpty(m.FromBranchName),
		ToBranchName:      derefOrEmpty(m.ToBranchName),
		FromStaffName:     derefOrEmpty(m.FromStaffName),
		ToStaffName:       derefOrEmpty(m.ToStaffName),
	}
}

// ToDomainTransactions converts a slice of model Transactions.
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
