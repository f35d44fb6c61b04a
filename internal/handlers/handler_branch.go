package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safa-edu/branch_transfer_app/internal/apperrors"
	portssvc "github.com/safa-edu/branch_transfer_app/internal/core/ports/services"
	"github.com/safa-edu/branch_transfer_app/internal/dto"
	"github.com/safa-edu/branch_transfer_app/internal/middleware"
)

// branchHandler handles HTTP requests related to branches
type branchHandler struct {
	branchService portssvc.BranchService
}

// newBranchHandler creates a new branchHandler
func newBranchHandler(bs portssvc.BranchService) *branchHandler {
	return &branchHandler{branchService: bs}
}

// registerBranchRoutes registers routes related to branches
func registerBranchRoutes(rg *gin.RouterGroup, branchService portssvc.BranchService) {
	h := newBranchHandler(branchService)

	branchGroup := rg.Group("/branches")
	{
		branchGroup.GET("", h.listBranches)
		branchGroup.GET("/:branchID", h.getBranch)
	}
}

// listBranches godoc
// @Summary List branches
// @Tags branches
// @Produce json
// @Success 200 {object} dto.ListBranchesResponse
// @Security BearerAuth
// @Router /branches [get]
func (h *branchHandler) listBranches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	branches, err := h.branchService.ListBranches(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list branches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list branches"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBranchesResponse(branches))
}

// getBranch godoc
// @Summary Get a single branch by ID
// @Tags branches
// @Produce json
// @Param branchID path string true "Branch ID"
// @Success 200 {object} dto.BranchResponse
// @Failure 404 {object} map[string]string "Branch not found"
// @Security BearerAuth
// @Router /branches/{branchID} [get]
func (h *branchHandler) getBranch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Param("branchID")

	branch, err := h.branchService.GetBranchByID(c.Request.Context(), branchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Branch not found"})
		} else {
			logger.Error("Failed to fetch branch", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch branch"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToBranchResponse(*branch))
}
