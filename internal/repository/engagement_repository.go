package repository

import (
	"time"

	"github.com/teamspace-dev/teamspace-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEngagementRepository is a GORM implementation of EngagementRepository
type GormEngagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new EngagementRepository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &GormEngagementRepository{db: db}
}

// IsFollowed reports whether (project, user) has a follow record
func (r *GormEngagementRepository) IsFollowed(projectID, userID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.FollowedProject{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateFollow records a follow
func (r *GormEngagementRepository) CreateFollow(follow *models.FollowedProject) error {
	return r.db.Create(follow).Error
}

// FindFollow finds the follow record for (project, user)
func (r *GormEngagementRepository) FindFollow(projectID, userID uint64) (*models.FollowedProject, error) {
	var follow models.FollowedProject
	if err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&follow).Error; err != nil {
		return nil, err
	}
	return &follow, nil
}

// DeleteFollow deletes a follow record by ID
func (r *GormEngagementRepository) DeleteFollow(id uint64) error {
	return r.db.Delete(&models.FollowedProject{}, id).Error
}

// UpsertVisit creates or refreshes the visit record for (project, user).
// One row per pair; a second visit only moves last_visit forward.
func (r *GormEngagementRepository) UpsertVisit(projectID, userID uint64, lastVisit time.Time) error {
	visit := models.ProjectVisit{
		ProjectID: projectID,
		UserID:    userID,
		LastVisit: lastVisit,
	}

	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"last_visit": lastVisit}),
		}).
		Create(&visit).Error
}
