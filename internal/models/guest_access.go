package models

import "time"

// GuestAccess lets a guest user see one specific project without being a
// full member.
type GuestAccess struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ProjectID uint64    `gorm:"not null;uniqueIndex:idx_guest_access_project_user" json:"project_id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_guest_access_project_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
