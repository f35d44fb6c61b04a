package mapping

import (
	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	"github.com/safa-edu/branch_transfer_app/internal/models"
)

// ToModelGeneratedReport converts a domain GeneratedReport to its model shape.
func ToModelGeneratedReport(d domain.GeneratedReport) models.GeneratedReport {
	return models.GeneratedReport{
		ReportID:         d.ReportID,
		BranchID:         d.BranchID,
		ReportType:       string(d.ReportType),
		ReportPeriod:     d.ReportPeriod,
		FileName:         d.FileName,
		FilePath:         d.FilePath,
		FileSize:         d.FileSize,
		TransactionCount: d.TransactionCount,
		TotalAmount:      d.TotalAmount,
		Currency:         d.Currency,
		GeneratedBy:      d.GeneratedBy,
		Status:           string(d.Status),
		CreatedAt:        d.CreatedAt,
	}
}

// ToDomainGeneratedReport converts a model GeneratedReport to its domain shape.
func ToDomainGeneratedReport(m models.GeneratedReport) domain.GeneratedReport {
	return domain.GeneratedReport{
		ReportID:         m.ReportID,
		BranchID:         m.BranchID,
		ReportType:       domain.ReportType(m.ReportType),
		ReportPeriod:     m.ReportPeriod,
		FileName:         m.FileName,
		FilePath:         m.FilePath,
		FileSize:         m.FileSize,
		TransactionCount: m.TransactionCount,
		TotalAmount:      m.TotalAmount,
		Currency:         m.Currency,
		GeneratedBy:      m.GeneratedBy,
		Status:           domain.ReportStatus(m.Status),
		CreatedAt:        m.CreatedAt,
	}
}
