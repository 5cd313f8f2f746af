package repository

import (
	"github.com/teamspace-dev/teamspace-api/internal/models"
	"gorm.io/gorm"
)

// GormMemberRepository is a GORM implementation of MemberRepository
type GormMemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &GormMemberRepository{db: db}
}

// AddMember adds a member to a project. The composite primary key on
// (project_id, user_id) backs the service-level check-then-insert against
// concurrent joins.
func (r *GormMemberRepository) AddMember(member *models.ProjectMember) error {
	return r.db.Create(member).Error
}

// RemoveMember removes a member from a project
func (r *GormMemberRepository) RemoveMember(projectID, userID uint64) error {
	return r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectMember{}).Error
}

// FindMember finds a specific project member
func (r *GormMemberRepository) FindMember(projectID, userID uint64) (*models.ProjectMember, error) {
	var member models.ProjectMember
	if err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers lists all members of a project in join order
func (r *GormMemberRepository) ListMembers(projectID uint64) ([]models.ProjectMember, error) {
	var members []models.ProjectMember
	if err := r.db.Preload("User").
		Where("project_id = ?", projectID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListProjectIDsByUserID lists IDs of projects the user is a member of
func (r *GormMemberRepository) ListProjectIDsByUserID(userID uint64) ([]uint64, error) {
	var ids []uint64
	if err := r.db.Model(&models.ProjectMember{}).
		Where("user_id = ?", userID).
		Pluck("project_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// UpdateNotificationPrefs updates a member's notification flags. A zero row
// count means the user is not a member; no membership is created.
func (r *GormMemberRepository) UpdateNotificationPrefs(projectID, userID uint64, notifyPosts, notifyComments bool) (int64, error) {
	result := r.db.Model(&models.ProjectMember{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Updates(map[string]interface{}{
			"notify_new_posts":    notifyPosts,
			"notify_new_comments": notifyComments,
		})
	return result.RowsAffected, result.Error
}
