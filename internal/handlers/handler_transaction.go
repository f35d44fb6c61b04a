package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/safa-edu/branch_transfer_app/internal/core/ports/services"
	"github.com/safa-edu/branch_transfer_app/internal/dto"
	"github.com/safa-edu/branch_transfer_app/internal/middleware"
)

// transactionHandler handles HTTP requests related to transactions
type transactionHandler struct {
	txnService portssvc.TransactionService
}

// newTransactionHandler creates a new transactionHandler
func newTransactionHandler(ts portssvc.TransactionService) *transactionHandler {
	return &transactionHandler{txnService: ts}
}

// registerTransactionRoutes registers routes related to transactions
func registerTransactionRoutes(rg *gin.RouterGroup, txnService portssvc.TransactionService) {
	h := newTransactionHandler(txnService)

	txnGroup := rg.Group("/transactions")
	{
		txnGroup.GET("", h.listTransactions)
	}
}

// listTransactions godoc
// @Summary List inter-branch transactions
// @Tags transactions
// @Produce json
// @Param branchId query string false "Filter to transactions where this branch is origin or destination"
// @Param status query string false "Filter by status" Enums(pending, confirmed, cancelled)
// @Param limit query int false "Page size" default(25)
// @Param nextToken query string false "Pagination cursor"
// @Success 200 {object} dto.ListTransactionsResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListTransactionsParams{}
	if branchID := c.Query("branchId"); branchID != "" {
		params.BranchID = &branchID
	}
	if status := c.Query("status"); status != "" {
		params.Status = &status
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		params.Limit = limit
	}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	resp, err := h.txnService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
