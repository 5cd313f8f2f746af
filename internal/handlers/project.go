package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/teamspace-dev/teamspace-api/internal/dto"
	apierrors "github.com/teamspace-dev/teamspace-api/internal/errors"
	"github.com/teamspace-dev/teamspace-api/internal/middleware"
	"github.com/teamspace-dev/teamspace-api/internal/models"
	"github.com/teamspace-dev/teamspace-api/internal/services"
	"github.com/teamspace-dev/teamspace-api/internal/utils"
)

// ProjectHandler coordinates project-related HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// contextProject returns the project loaded by RequireProjectAccess.
func contextProject(c *gin.Context) (models.Project, bool) {
	projectInterface, exists := c.Get("project")
	if !exists {
		return models.Project{}, false
	}
	project, ok := projectInterface.(models.Project)
	return project, ok
}

// CreateProject creates a new project with the acting user as first member.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateProjectRequest struct {
		Name      string  `json:"name" binding:"required"`
		IsPrivate bool    `json:"is_private"`
		TeamID    *uint64 `json:"team_id"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:      req.Name,
		IsPrivate: req.IsPrivate,
		TeamID:    req.TeamID,
		CreatorID: userID,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidProjectName) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// ListProjects returns the projects visible to the acting user.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.ListProjects(userID, middleware.GetIsGuest(c), params)
	if err != nil {
		apierrors.InternalError(c, "Failed to list projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": dto.ToProjectDTOs(projects),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// GetProject returns project details with its member list.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	members, err := h.projectService.ListMembers(project.ID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDetailDTO(project, members))
}

// DeleteProject removes a project and all its dependent records.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	if err := h.projectService.DeleteProject(project.ID); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted successfully",
	})
}

// JoinedProjects returns IDs of projects the acting user belongs to,
// whether through membership or a guest grant.
func (h *ProjectHandler) JoinedProjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	ids, err := h.projectService.JoinedProjectIDs(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to list joined projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project_ids": ids,
	})
}

// Join adds the acting user as a member.
func (h *ProjectHandler) Join(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}
	userID, _ := middleware.GetUserID(c)

	if err := h.projectService.Join(project.ID, userID); err != nil {
		apierrors.InternalError(c, "Failed to join project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Joined project",
	})
}

// Leave removes the acting user's membership; succeeds even for non-members.
func (h *ProjectHandler) Leave(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}
	userID, _ := middleware.GetUserID(c)

	if err := h.projectService.Leave(project.ID, userID); err != nil {
		apierrors.InternalError(c, "Failed to leave project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Left project",
	})
}

// AddMember adds the given user as a member.
func (h *ProjectHandler) AddMember(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	type AddMemberRequest struct {
		UserID uint64 `json:"user_id" binding:"required"`
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.AddMember(project.ID, req.UserID); err != nil {
		apierrors.InternalError(c, "Failed to add member")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Member added",
	})
}

// RemoveMember removes the given user from the member list.
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	targetUserID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.projectService.RemoveMember(project.ID, targetUserID); err != nil {
		apierrors.InternalError(c, "Failed to remove member")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Member removed",
	})
}

// MoveToTeam reassigns the project and its dependents to another team.
func (h *ProjectHandler) MoveToTeam(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	type MoveToTeamRequest struct {
		TeamID *uint64 `json:"team_id"`
	}

	var req MoveToTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.MoveToTeam(project.ID, req.TeamID); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to move project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project moved",
	})
}

// Merge absorbs this project into the target project.
func (h *ProjectHandler) Merge(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	type MergeRequest struct {
		TargetProjectID uint64 `json:"target_project_id"`
	}

	var req MergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.MergeWithProject(project.ID, req.TargetProjectID); err != nil {
		if errors.Is(err, services.ErrInvalidMergeTarget) {
			apierrors.InvalidTarget(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to merge projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Projects merged",
	})
}

// InviteGuest sends a guest invitation for this project.
func (h *ProjectHandler) InviteGuest(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	type InviteGuestRequest struct {
		Email string `json:"email" binding:"required,email"`
	}

	var req InviteGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.InviteGuest(project.ID, req.Email); err != nil {
		apierrors.InternalError(c, "Failed to invite guest")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Guest invited",
	})
}

// RemoveGuest revokes a guest's access grant to this project.
func (h *ProjectHandler) RemoveGuest(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}

	type RemoveGuestRequest struct {
		Email string `json:"email" binding:"required,email"`
	}

	var req RemoveGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.RemoveGuest(project.ID, req.Email); err != nil {
		apierrors.InternalError(c, "Failed to remove guest")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Guest removed",
	})
}

// TrackVisit records that the acting user opened the project.
func (h *ProjectHandler) TrackVisit(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}
	userID, _ := middleware.GetUserID(c)

	if err := h.projectService.TrackVisit(project.ID, userID); err != nil {
		apierrors.InternalError(c, "Failed to track visit")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Visit recorded",
	})
}

// Follow records a follow for the acting user.
func (h *ProjectHandler) Follow(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}
	userID, _ := middleware.GetUserID(c)

	if err := h.projectService.Follow(project.ID, userID); err != nil {
		apierrors.InternalError(c, "Failed to follow project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Following project",
	})
}

// Unfollow removes the acting user's follow record; 404 when none exists.
func (h *ProjectHandler) Unfollow(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}
	userID, _ := middleware.GetUserID(c)

	if err := h.projectService.Unfollow(project.ID, userID); err != nil {
		if errors.Is(err, services.ErrFollowNotFound) {
			apierrors.NotFound(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Failed to unfollow project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Unfollowed project",
	})
}

// UpdateNotificationSettings updates the acting user's per-project
// notification flags.
func (h *ProjectHandler) UpdateNotificationSettings(c *gin.Context) {
	project, ok := contextProject(c)
	if !ok {
		apierrors.InternalError(c, "Project not found in context")
		return
	}
	userID, _ := middleware.GetUserID(c)

	type NotificationSettingsRequest struct {
		NotifyNewPosts    bool `json:"notify_new_posts"`
		NotifyNewComments bool `json:"notify_new_comments"`
	}

	var req NotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.projectService.UpdateNotificationSettings(project.ID, userID, req.NotifyNewPosts, req.NotifyNewComments); err != nil {
		apierrors.InternalError(c, "Failed to update notification settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification settings updated",
	})
}
