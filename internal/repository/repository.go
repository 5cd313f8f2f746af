package repository

import (
	"time"

	"github.com/teamspace-dev/teamspace-api/internal/models"
	"github.com/teamspace-dev/teamspace-api/internal/utils"
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// FindVisibleByID finds a project only if the acting user may see it
	FindVisibleByID(id uint64, userID uint64, isGuest bool) (*models.Project, error)

	// Exists reports whether a project with the given ID exists
	Exists(id uint64) (bool, error)

	// Update updates a project
	Update(project *models.Project) error

	// ListVisible lists projects visible to the acting user, paginated
	ListVisible(userID uint64, isGuest bool, params utils.PaginationParams) ([]models.Project, int64, error)

	// SetTeam sets the project's team
	SetTeam(projectID uint64, teamID *uint64) error

	// ReassignDependentsTeam points tasks and discussions of a project at a
	// new team. Safe to re-run: already-moved rows are simply written again.
	ReassignDependentsTeam(projectID uint64, teamID uint64) error

	// TaskProgress returns completed and total task counts for a project
	TaskProgress(projectID uint64) (completed int64, total int64, err error)

	// SetProgress persists a computed progress value
	SetProgress(projectID uint64, progress float64) error
}

// MemberRepository defines the interface for project membership data access
type MemberRepository interface {
	// AddMember adds a member to a project
	AddMember(member *models.ProjectMember) error

	// RemoveMember removes a member from a project
	RemoveMember(projectID, userID uint64) error

	// FindMember finds a specific project member
	FindMember(projectID, userID uint64) (*models.ProjectMember, error)

	// ListMembers lists all members of a project in join order
	ListMembers(projectID uint64) ([]models.ProjectMember, error)

	// ListProjectIDsByUserID lists IDs of projects the user is a member of
	ListProjectIDsByUserID(userID uint64) ([]uint64, error)

	// UpdateNotificationPrefs updates a member's notification flags.
	// Returns the number of rows touched; zero means no such membership.
	UpdateNotificationPrefs(projectID, userID uint64, notifyPosts, notifyComments bool) (int64, error)
}

// GuestAccessRepository defines the interface for guest grant data access
type GuestAccessRepository interface {
	// Grant creates a grant for (project, user); existing grants are kept as-is
	Grant(projectID, userID uint64) error

	// Revoke removes the grant for (project, user); absent grants are a no-op
	Revoke(projectID, userID uint64) error

	// HasGrant reports whether (project, user) holds a grant
	HasGrant(projectID, userID uint64) (bool, error)

	// ProjectIDsForUser lists IDs of projects granted to the user
	ProjectIDsForUser(userID uint64) ([]uint64, error)

	// CreateInvite records a pending guest invitation
	CreateInvite(invite *models.GuestInvite) error

	// FindInviteByCode finds a pending invitation by its code
	FindInviteByCode(code string) (*models.GuestInvite, error)

	// MarkInviteAccepted stamps the invitation as accepted
	MarkInviteAccepted(inviteID uint64, at time.Time) error
}

// EngagementRepository defines the interface for follow and visit records
type EngagementRepository interface {
	// IsFollowed reports whether (project, user) has a follow record
	IsFollowed(projectID, userID uint64) (bool, error)

	// CreateFollow records a follow
	CreateFollow(follow *models.FollowedProject) error

	// FindFollow finds the follow record for (project, user)
	FindFollow(projectID, userID uint64) (*models.FollowedProject, error)

	// DeleteFollow deletes a follow record by ID
	DeleteFollow(id uint64) error

	// UpsertVisit creates or refreshes the visit record for (project, user)
	UpsertVisit(projectID, userID uint64, lastVisit time.Time) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}
