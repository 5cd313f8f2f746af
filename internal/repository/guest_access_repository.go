package repository

import (
	"errors"
	"time"

	"github.com/teamspace-dev/teamspace-api/internal/models"
	"gorm.io/gorm"
)

// GormGuestAccessRepository is a GORM implementation of GuestAccessRepository
type GormGuestAccessRepository struct {
	db *gorm.DB
}

// NewGuestAccessRepository creates a new GuestAccessRepository
func NewGuestAccessRepository(db *gorm.DB) GuestAccessRepository {
	return &GormGuestAccessRepository{db: db}
}

// Grant creates a grant for (project, user). Granting twice keeps a single
// record; the unique index on the pair is the storage-level backstop.
func (r *GormGuestAccessRepository) Grant(projectID, userID uint64) error {
	var existing models.GuestAccess
	err := r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	grant := models.GuestAccess{
		ProjectID: projectID,
		UserID:    userID,
	}
	return r.db.Create(&grant).Error
}

// Revoke removes the grant for (project, user); absent grants are a no-op
func (r *GormGuestAccessRepository) Revoke(projectID, userID uint64) error {
	return r.db.Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.GuestAccess{}).Error
}

// HasGrant reports whether (project, user) holds a grant
func (r *GormGuestAccessRepository) HasGrant(projectID, userID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.GuestAccess{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ProjectIDsForUser lists IDs of projects granted to the user
func (r *GormGuestAccessRepository) ProjectIDsForUser(userID uint64) ([]uint64, error) {
	var ids []uint64
	if err := r.db.Model(&models.GuestAccess{}).
		Where("user_id = ?", userID).
		Pluck("project_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// CreateInvite records a pending guest invitation
func (r *GormGuestAccessRepository) CreateInvite(invite *models.GuestInvite) error {
	return r.db.Create(invite).Error
}

// FindInviteByCode finds a pending invitation by its code
func (r *GormGuestAccessRepository) FindInviteByCode(code string) (*models.GuestInvite, error) {
	var invite models.GuestInvite
	if err := r.db.Where("code = ?", code).First(&invite).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

// MarkInviteAccepted stamps the invitation as accepted
func (r *GormGuestAccessRepository) MarkInviteAccepted(inviteID uint64, at time.Time) error {
	return r.db.Model(&models.GuestInvite{}).
		Where("id = ?", inviteID).
		Update("accepted_at", at).Error
}
