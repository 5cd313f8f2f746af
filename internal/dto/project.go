package dto

import (
	"time"

	"github.com/teamspace-dev/teamspace-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID        uint64  `json:"id"`
	Name      string  `json:"name"`
	Icon      string  `json:"icon"`
	IsPrivate bool    `json:"is_private"`
	TeamID    *uint64 `json:"team_id"`
	Progress  float64 `json:"progress"`
}

// ProjectMemberDTO represents a member in a project
type ProjectMemberDTO struct {
	User              UserDTO   `json:"user"`
	NotifyNewPosts    bool      `json:"notify_new_posts"`
	NotifyNewComments bool      `json:"notify_new_comments"`
	JoinedAt          time.Time `json:"joined_at"`
}

// ProjectDetailDTO represents a project with its member list
type ProjectDetailDTO struct {
	ProjectDTO
	Members []ProjectMemberDTO `json:"members"`
}

// ToProjectDTO converts a project model to DTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:        project.ID,
		Name:      project.Name,
		Icon:      project.Icon,
		IsPrivate: project.IsPrivate,
		TeamID:    project.TeamID,
		Progress:  project.Progress,
	}
}

// ToProjectDTOs converts a slice of project models to DTOs
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ToProjectDTO(p)
	}
	return dtos
}

// ToProjectMemberDTO converts a member to DTO
func ToProjectMemberDTO(member models.ProjectMember) ProjectMemberDTO {
	return ProjectMemberDTO{
		User:              ToUserDTO(member.User),
		NotifyNewPosts:    member.NotifyNewPosts,
		NotifyNewComments: member.NotifyNewComments,
		JoinedAt:          member.JoinedAt,
	}
}

// ToProjectDetailDTO converts a project with members to a detailed DTO
func ToProjectDetailDTO(project models.Project, members []models.ProjectMember) ProjectDetailDTO {
	memberDTOs := make([]ProjectMemberDTO, len(members))
	for i, member := range members {
		memberDTOs[i] = ToProjectMemberDTO(member)
	}

	return ProjectDetailDTO{
		ProjectDTO: ToProjectDTO(project),
		Members:    memberDTOs,
	}
}
