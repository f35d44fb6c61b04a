package dto

import (
	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateReportRequest is the body of POST /reports/monthly.
// A nil BranchID means the report covers all branches.
type GenerateReportRequest struct {
	BranchID *string `json:"branchId"`
	Year     int     `json:"year" binding:"required,gte=2000,lte=2100"`
	Month    int     `json:"month" binding:"required,gte=1,lte=12"`
}

// GeneratedReportResponse is the ledger row as returned to clients.
type GeneratedReportResponse struct {
	ReportID         string          `json:"reportID"`
	BranchID         *string         `json:"branchId"`
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
	CreatedAt        string          `json:"createdAt"`
}

// GenerateReportResponse is the success envelope of POST /reports/monthly.
type GenerateReportResponse struct {
	Success bool                    `json:"success"`
	Report  GeneratedReportResponse `json:"report"`
}

// ListReportsResponse is a page of ledger rows.
type ListReportsResponse struct {
	Reports   []GeneratedReportResponse `json:"reports"`
	NextToken *string                   `json:"nextToken,omitempty"`
}

// ToGeneratedReportResponse converts a domain GeneratedReport to its response shape.
func ToGeneratedReportResponse(r domain.GeneratedReport) GeneratedReportResponse {
	return GeneratedReportResponse{
		ReportID:         r.ReportID,
		BranchID:         r.BranchID,
		ReportType:       string(r.ReportType),
		ReportPeriod:     r.ReportPeriod,
		FileName:         r.FileName,
		FilePath:         r.FilePath,
		FileSize:         r.FileSize,
		TransactionCount: r.TransactionCount,
		TotalAmount:      r.TotalAmount,
		Currency:         r.Currency,
		GeneratedBy:      r.GeneratedBy,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToListReportsResponse converts a page of ledger rows plus its cursor.
func ToListReportsResponse(reports []domain.GeneratedReport, nextToken *string) ListReportsResponse {
	resp := ListReportsResponse{
		Reports:   make([]GeneratedReportResponse, len(reports)),
		NextToken: nextToken,
	}
	for i, r := range reports {
		resp.Reports[i] = ToGeneratedReportResponse(r)
	}
	return resp
}
