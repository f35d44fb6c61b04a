package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportType identifies the kind of generated report.
type ReportType string

const (
	ReportTypeMonthly ReportType = "monthly"
)

// ReportStatus is the completion state of a ledger entry. The ledger is only
// written after a successful render and upload, so completed is the only value
// this subsystem produces.
type ReportStatus string

const (
	ReportStatusCompleted ReportStatus = "completed"
)

// GeneratedReport is one append-only ledger entry recording a successful
// report generation: who generated it, for what period and branch, where the
// artifact lives and what aggregates it contains. Never updated or deleted.
type GeneratedReport struct {
	ReportID         string          `json:"reportID"`
	BranchID         *string         `json:"branchID"` // nil = all branches
	ReportType       ReportType      `json:"reportType"`
	ReportPeriod     string          `json:"reportPeriod"` // YYYY-MM
	FileName         string          `json:"fileName"`
	FilePath         string          `json:"filePath"` // artifact storage key
	FileSize         int64           `json:"fileSize"`
	TransactionCount int             `json:"transactionCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	Currency         string          `json:"currency"`
	GeneratedBy      *string         `json:"generatedBy"` // Staff ID reference
	Status           ReportStatus    `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}
