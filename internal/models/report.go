package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GeneratedReport mirrors the generated_reports table.
type GeneratedReport struct {
	ReportID         string          `json:"reportID"`
	BranchID         *string         `json:"branchID"`
	ReportType       string          `json:"reportType"`
	ReportPeriod     string          `json:"reportPeriod"`
	FileName         string          `json:"fileName"`
	FilePath         string          `json:"filePath"`
	FileSize         int64           `json:"fileSize"`
	TransactionCount int             `json:"transactionCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	Currency         string          `json:"currency"`
	GeneratedBy      *string         `json:"generatedBy"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}
