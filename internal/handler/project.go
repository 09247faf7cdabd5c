package handler

import (
	"github.com/Benjafo/TimeClock/internal/service"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectSvc *service.ProjectService
	userSvc    *service.UserService
}

func NewProjectHandler(projectSvc *service.ProjectService, userSvc *service.UserService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc, userSvc: userSvc}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectSvc.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	Success(c, projects)
}

type assignRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// Assign grants a user access to a project. This is the administrative path
// the bot's "contact an administrator" message refers to; assigning an
// already assigned pair succeeds without effect.
func (h *ProjectHandler) Assign(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "user_id is required")
		return
	}

	project, err := h.projectSvc.GetByID(parseID(c.Param("id")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if project == nil {
		NotFound(c, 40401, "project not found")
		return
	}
	user, err := h.userSvc.Get(req.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if user == nil {
		NotFound(c, 40401, "user not found")
		return
	}

	if err := h.projectSvc.Assign(user.DiscordID, project.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	Success(c, nil)
}

func (h *ProjectHandler) Unassign(c *gin.Context) {
	project, err := h.projectSvc.GetByID(parseID(c.Param("id")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if project == nil {
		NotFound(c, 40401, "project not found")
		return
	}

	if err := h.projectSvc.Unassign(c.Param("user_id"), project.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	Success(c, nil)
}
