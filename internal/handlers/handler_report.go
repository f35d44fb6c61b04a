package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/safa-edu/branch_transfer_app/internal/apperrors"
	portssvc "github.com/safa-edu/branch_transfer_app/internal/core/ports/services"
	"github.com/safa-edu/branch_transfer_app/internal/dto"
	"github.com/safa-edu/branch_transfer_app/internal/middleware"
)

// reportHandler handles HTTP requests related to generated reports
type reportHandler struct {
	reportService portssvc.ReportService
}

// newReportHandler creates a new reportHandler
func newReportHandler(rs portssvc.ReportService) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

// RegisterReportRoutes registers routes related to generated reports.
// Generation is rate-limited separately by the caller-provided middleware.
func RegisterReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportService, generateLimiter gin.HandlerFunc) {
	h := newReportHandler(reportService)

	reportGroup := rg.Group("/reports")
	{
		reportGroup.POST("/monthly", generateLimiter, h.generateMonthly)
		reportGroup.GET("", h.listReports)
		reportGroup.GET("/:reportID", h.getReport)
		reportGroup.GET("/:reportID/download", h.downloadReport)
	}
}

// generateMonthly godoc
// @Summary Generate a monthly transaction report
// @Description Queries the period's transactions, renders the PDF, stores it and records one ledger row
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.GenerateReportRequest true "Branch (null = all branches), year and month"
// @Success 201 {object} dto.GenerateReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No transactions in the period"
// @Failure 500 {object} map[string]string "Pipeline failure"
// @Security BearerAuth
// @Router /reports/monthly [post]
func (h *reportHandler) generateMonthly(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	authUserID, ok := middleware.GetAuthUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid generate report request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	logger.Info("Received request to generate monthly report",
		slog.Int("year", req.Year),
		slog.Int("month", req.Month))

	report, err := h.reportService.GenerateMonthlyReport(c.Request.Context(), req, authUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoData) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No transactions found for this period"})
		} else {
			logger.Error("Failed to generate monthly report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.GenerateReportResponse{
		Success: true,
		Report:  dto.ToGeneratedReportResponse(*report),
	})
}

// listReports godoc
// @Summary List generated reports
// @Tags reports
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListReportsResponse
// @Security BearerAuth
// @Router /reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	reports, token, err := h.reportService.ListReports(c.Request.Context(), limit, nextToken)
	if err != nil {
		logger.Error("Failed to list reports", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListReportsResponse(reports, token))
}

// getReport godoc
// @Summary Get a single generated report by ID
// @Tags reports
// @Produce json
// @Param reportID path string true "Report ID"
// @Success 200 {object} dto.GeneratedReportResponse
// @Failure 404 {object} map[string]string "Report not found"
// @Security BearerAuth
// @Router /reports/{reportID} [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportID := c.Param("reportID")

	report, err := h.reportService.GetReportByID(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			logger.Error("Failed to fetch report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToGeneratedReportResponse(*report))
}

// downloadReport godoc
// @Summary Download the PDF artifact of a generated report
// @Tags reports
// @Produce application/pdf
// @Param reportID path string true "Report ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Report not found"
// @Security BearerAuth
// @Router /reports/{reportID}/download [get]
func (h *reportHandler) downloadReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportID := c.Param("reportID")

	report, data, err := h.reportService.DownloadReport(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			logger.Error("Failed to download report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to download report"})
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	c.Data(http.StatusOK, "application/pdf", data)
}
