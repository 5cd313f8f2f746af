package repository

import (
	"fmt"

	"github.com/teamspace-dev/teamspace-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectCascader propagates project deletion and merges to every
// dependent record. Both operations run in a single transaction.
type GormProjectCascader struct {
	db *gorm.DB
}

// NewProjectCascader creates a new GormProjectCascader
func NewProjectCascader(db *gorm.DB) *GormProjectCascader {
	return &GormProjectCascader{db: db}
}

// DeleteProject removes a project together with all records that reference
// it. Notifications survive with their project reference cleared.
func (c *GormProjectCascader) DeleteProject(projectID uint64) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		cascaded := []interface{}{
			&models.Task{},
			&models.Discussion{},
			&models.Page{},
			&models.ProjectVisit{},
			&models.FollowedProject{},
			&models.PinnedProject{},
			&models.GuestAccess{},
			&models.GuestInvite{},
			&models.ProjectMember{},
		}

		for _, model := range cascaded {
			if err := tx.Where("project_id = ?", projectID).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to cascade delete: %w", err)
			}
		}

		if err := tx.Model(&models.Notification{}).
			Where("project_id = ?", projectID).
			Update("project_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach notifications: %w", err)
		}

		if err := tx.Delete(&models.Project{}, projectID).Error; err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}

		return nil
	})
}

// MergeProjects absorbs the source project into the target: owned and
// referencing records are reparented, per-user records collapse onto the
// target's existing row when both projects have one, and the source row is
// removed. There is no undo.
func (c *GormProjectCascader) MergeProjects(sourceID, targetID uint64) error {
	return c.db.Transaction(func(tx *gorm.DB) error {
		reparented := []interface{}{
			&models.Task{},
			&models.Discussion{},
			&models.Page{},
			&models.GuestInvite{},
			&models.Notification{},
		}

		for _, model := range reparented {
			if err := tx.Model(model).
				Where("project_id = ?", sourceID).
				Update("project_id", targetID).Error; err != nil {
				return fmt.Errorf("failed to reparent dependents: %w", err)
			}
		}

		perUser := []interface{}{
			&models.ProjectMember{},
			&models.FollowedProject{},
			&models.ProjectVisit{},
			&models.PinnedProject{},
			&models.GuestAccess{},
		}

		for _, model := range perUser {
			if err := mergePerUserRecords(tx, model, sourceID, targetID); err != nil {
				return err
			}
		}

		if err := tx.Delete(&models.Project{}, sourceID).Error; err != nil {
			return fmt.Errorf("failed to delete merged project: %w", err)
		}

		return nil
	})
}

// mergePerUserRecords moves (project_id, user_id) rows from source to
// target, dropping source rows whose user already has a target row so the
// pair uniqueness holds.
func mergePerUserRecords(tx *gorm.DB, model interface{}, sourceID, targetID uint64) error {
	var targetUserIDs []uint64
	if err := tx.Model(model).
		Where("project_id = ?", targetID).
		Pluck("user_id", &targetUserIDs).Error; err != nil {
		return fmt.Errorf("failed to list target rows: %w", err)
	}

	if len(targetUserIDs) > 0 {
		if err := tx.Where("project_id = ? AND user_id IN ?", sourceID, targetUserIDs).
			Delete(model).Error; err != nil {
			return fmt.Errorf("failed to drop duplicate rows: %w", err)
		}
	}

	if err := tx.Model(model).
		Where("project_id = ?", sourceID).
		Update("project_id", targetID).Error; err != nil {
		return fmt.Errorf("failed to move rows: %w", err)
	}

	return nil
}
