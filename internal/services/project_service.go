package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/teamspace-dev/teamspace-api/internal/models"
	"github.com/teamspace-dev/teamspace-api/internal/repository"
	"github.com/teamspace-dev/teamspace-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectName = errors.New("project name cannot be empty")
	ErrInvalidMergeTarget = errors.New("merge target project does not exist")
	ErrFollowNotFound     = errors.New("follow record not found")
)

// ProjectCascader is the contract the service invokes when a structural
// change must propagate to records owned by other subsystems.
type ProjectCascader interface {
	// DeleteProject removes a project and every dependent record
	DeleteProject(projectID uint64) error

	// MergeProjects absorbs the source project into the target
	MergeProjects(sourceID, targetID uint64) error
}

// GuestInviter is the external invitation collaborator. The invited user
// gains guest access to the project once the invitation is accepted.
type GuestInviter interface {
	InviteByEmail(email string, projectID uint64) error
}

// ProjectService provides membership, visibility and engagement operations
// on projects. The acting user is always an explicit parameter.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	memberRepo  repository.MemberRepository
	guestRepo   repository.GuestAccessRepository
	engageRepo  repository.EngagementRepository
	userRepo    repository.UserRepository
	cascader    ProjectCascader
	inviter     GuestInviter
	readOnly    bool
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo repository.ProjectRepository,
	memberRepo repository.MemberRepository,
	guestRepo repository.GuestAccessRepository,
	engageRepo repository.EngagementRepository,
	userRepo repository.UserRepository,
	cascader ProjectCascader,
	inviter GuestInviter,
	readOnly bool,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		guestRepo:   guestRepo,
		engageRepo:  engageRepo,
		userRepo:    userRepo,
		cascader:    cascader,
		inviter:     inviter,
		readOnly:    readOnly,
	}
}

// SetReadOnly toggles the degraded-mode guard consulted before visit writes.
func (s *ProjectService) SetReadOnly(readOnly bool) {
	s.readOnly = readOnly
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name      string
	IsPrivate bool
	TeamID    *uint64
	CreatorID uint64
}

// CreateProject creates a project. The creator becomes the first member and
// a display icon is assigned when none was given (model hook).
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidProjectName
	}

	project := &models.Project{
		Name:      input.Name,
		IsPrivate: input.IsPrivate,
		TeamID:    input.TeamID,
		CreatorID: input.CreatorID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// DeleteProject removes a project; dependent records go with it.
func (s *ProjectService) DeleteProject(projectID uint64) error {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.cascader.DeleteProject(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// ListProjects returns the projects visible to the acting user.
func (s *ProjectService) ListProjects(actingUserID uint64, isGuest bool, params utils.PaginationParams) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.ListVisible(actingUserID, isGuest, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// AddMember adds a user to the project's member list. Adding someone who is
// already a member changes nothing.
func (s *ProjectService) AddMember(projectID, userID uint64) error {
	if _, err := s.memberRepo.FindMember(projectID, userID); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check membership: %w", err)
	}

	member := &models.ProjectMember{
		ProjectID: projectID,
		UserID:    userID,
		JoinedAt:  time.Now(),
	}

	if err := s.memberRepo.AddMember(member); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	return nil
}

// Join adds the acting user to the project.
func (s *ProjectService) Join(projectID, actingUserID uint64) error {
	return s.AddMember(projectID, actingUserID)
}

// Leave removes the acting user's membership. Leaving a project the user
// never joined succeeds silently, unlike Unfollow.
func (s *ProjectService) Leave(projectID, actingUserID uint64) error {
	return s.RemoveMember(projectID, actingUserID)
}

// RemoveMember removes a user from the project's member list; absent
// memberships are a no-op.
func (s *ProjectService) RemoveMember(projectID, userID uint64) error {
	if err := s.memberRepo.RemoveMember(projectID, userID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

// IsMember reports whether the user is a member of the project.
func (s *ProjectService) IsMember(projectID, userID uint64) (bool, error) {
	_, err := s.memberRepo.FindMember(projectID, userID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check membership: %w", err)
}

// ListMembers returns the project's members in join order.
func (s *ProjectService) ListMembers(projectID uint64) ([]models.ProjectMember, error) {
	members, err := s.memberRepo.ListMembers(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// UpdateNotificationSettings updates the acting user's notification flags
// for the project. Non-members are left untouched; no membership is created.
func (s *ProjectService) UpdateNotificationSettings(projectID, actingUserID uint64, notifyPosts, notifyComments bool) error {
	if _, err := s.memberRepo.UpdateNotificationPrefs(projectID, actingUserID, notifyPosts, notifyComments); err != nil {
		return fmt.Errorf("failed to update notification settings: %w", err)
	}
	return nil
}

// MoveToTeam moves the project to another team and points its tasks and
// discussions at that team. A nil team or the current team is a no-op. The
// dependent updates are not wrapped in one transaction with the project
// save; the whole operation is idempotent and converges when re-run.
func (s *ProjectService) MoveToTeam(projectID uint64, teamID *uint64) error {
	if teamID == nil {
		return nil
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if project.TeamID != nil && *project.TeamID == *teamID {
		return nil
	}

	if err := s.projectRepo.SetTeam(projectID, teamID); err != nil {
		return fmt.Errorf("failed to set team: %w", err)
	}

	if err := s.projectRepo.ReassignDependentsTeam(projectID, *teamID); err != nil {
		return fmt.Errorf("failed to reassign dependents: %w", err)
	}

	return nil
}

// MergeWithProject absorbs this project into the target. A zero or self
// target is a no-op; a missing target is an error naming the bad reference.
// The merge is destructive and irreversible.
func (s *ProjectService) MergeWithProject(sourceID, targetID uint64) error {
	if targetID == 0 || targetID == sourceID {
		return nil
	}

	exists, err := s.projectRepo.Exists(targetID)
	if err != nil {
		return fmt.Errorf("failed to check merge target: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: project %d", ErrInvalidMergeTarget, targetID)
	}

	if err := s.cascader.MergeProjects(sourceID, targetID); err != nil {
		return fmt.Errorf("failed to merge projects: %w", err)
	}

	return nil
}

// InviteGuest sends a guest invitation scoped to this project.
func (s *ProjectService) InviteGuest(projectID uint64, email string) error {
	if err := s.inviter.InviteByEmail(email, projectID); err != nil {
		return fmt.Errorf("failed to invite guest: %w", err)
	}
	return nil
}

// RemoveGuest revokes the guest grant held by the user with the given
// email; nothing happens when no grant exists.
func (s *ProjectService) RemoveGuest(projectID uint64, email string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.guestRepo.Revoke(projectID, user.ID); err != nil {
		return fmt.Errorf("failed to revoke guest access: %w", err)
	}

	return nil
}

// GrantGuestAccess grants the user visibility into the project.
func (s *ProjectService) GrantGuestAccess(projectID, userID uint64) error {
	if err := s.guestRepo.Grant(projectID, userID); err != nil {
		return fmt.Errorf("failed to grant guest access: %w", err)
	}
	return nil
}

// TrackVisit records that the acting user opened the project. Visits are
// dropped entirely while the system runs in read-only mode.
func (s *ProjectService) TrackVisit(projectID, actingUserID uint64) error {
	if s.readOnly {
		return nil
	}

	if err := s.engageRepo.UpsertVisit(projectID, actingUserID, time.Now()); err != nil {
		return fmt.Errorf("failed to track visit: %w", err)
	}

	return nil
}

// Follow records a follow for the acting user. Following twice keeps one
// record.
func (s *ProjectService) Follow(projectID, actingUserID uint64) error {
	followed, err := s.engageRepo.IsFollowed(projectID, actingUserID)
	if err != nil {
		return fmt.Errorf("failed to check follow: %w", err)
	}
	if followed {
		return nil
	}

	follow := &models.FollowedProject{
		ProjectID: projectID,
		UserID:    actingUserID,
	}

	if err := s.engageRepo.CreateFollow(follow); err != nil {
		return fmt.Errorf("failed to follow project: %w", err)
	}

	return nil
}

// Unfollow removes the acting user's follow record. Unfollowing a project
// that was never followed is an error, by contrast with Leave.
func (s *ProjectService) Unfollow(projectID, actingUserID uint64) error {
	follow, err := s.engageRepo.FindFollow(projectID, actingUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFollowNotFound
		}
		return fmt.Errorf("failed to find follow: %w", err)
	}

	if err := s.engageRepo.DeleteFollow(follow.ID); err != nil {
		return fmt.Errorf("failed to unfollow project: %w", err)
	}

	return nil
}

// ComputeProgress recalculates the project's progress from its tasks and
// persists it. A project with no tasks keeps its previous value rather than
// dropping to zero on a transiently empty state.
func (s *ProjectService) ComputeProgress(projectID uint64) (float64, error) {
	completed, total, err := s.projectRepo.TaskProgress(projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to read task counts: %w", err)
	}

	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrProjectNotFound
		}
		return 0, fmt.Errorf("failed to find project: %w", err)
	}

	if total == 0 {
		return project.Progress, nil
	}

	progress := float64(completed) * 100 / float64(total)
	if err := s.projectRepo.SetProgress(projectID, progress); err != nil {
		return 0, fmt.Errorf("failed to save progress: %w", err)
	}

	return progress, nil
}

// JoinedProjectIDs returns the union of projects the user is a member of
// and projects they hold a guest grant for, sorted ascending.
func (s *ProjectService) JoinedProjectIDs(userID uint64) ([]uint64, error) {
	memberIDs, err := s.memberRepo.ListProjectIDsByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	grantedIDs, err := s.guestRepo.ProjectIDsForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guest grants: %w", err)
	}

	seen := make(map[uint64]bool, len(memberIDs)+len(grantedIDs))
	ids := make([]uint64, 0, len(memberIDs)+len(grantedIDs))
	for _, id := range append(memberIDs, grantedIDs...) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
