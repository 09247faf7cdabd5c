package handler

import (
	"github.com/Benjafo/TimeClock/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc *service.UserService
}

func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	Success(c, users)
}

type setAdminRequest struct {
	IsAdmin *bool `json:"is_admin" binding:"required"`
}

// SetAdmin flips the admin flag of a user. This is the only way the flag
// changes; no bot command exposes it.
func (h *UserHandler) SetAdmin(c *gin.Context) {
	var req setAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "is_admin is required")
		return
	}
	if err := h.userSvc.SetAdmin(c.Param("id"), *req.IsAdmin); err != nil {
		respondServiceError(c, err)
		return
	}
	Success(c, nil)
}
