package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	domainerrors "luyona.backend/internal/domain/errors"
	"luyona.backend/internal/interfaces/http/response"
	"luyona.backend/internal/usecases"
	"luyona.backend/pkg/logger"
)

// AdminHandler handles the admin review endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
	}
}

// ListUsers returns all users with the headline counts
// GET /admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	list, err := h.adminUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, list)
}

// Waitlist returns the unapproved users, oldest first
// GET /admin/waitlist
func (h *AdminHandler) Waitlist(c *gin.Context) {
	users, err := h.adminUsecase.Waitlist(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"total": len(users),
	})
}

// GetUserDetail returns one user's full review view
// GET /admin/users/:id
func (h *AdminHandler) GetUserDetail(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	detail, err := h.adminUsecase.GetUserDetail(c.Request.Context(), userID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// UpdateApproval flips a user's approval flag
// PUT /admin/users/:id/approval
func (h *AdminHandler) UpdateApproval(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	var input struct {
		Approval *bool  `json:"approval" binding:"required"`
		Reason   string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("approval is required"))
		return
	}

	if input.Reason != "" {
		logger.Info(c.Request.Context(), "approval change reason",
			zap.String("user_id", userID.String()),
			zap.String("reason", input.Reason))
	}

	if err := h.adminUsecase.SetApproval(c.Request.Context(), userID, *input.Approval); err != nil {
		if err == domainerrors.ErrNotFound {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message":  "Approval updated successfully",
		"userId":   userID,
		"approval": *input.Approval,
	})
}

// Dashboard returns the aggregate stats view
// GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminUsecase.DashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
