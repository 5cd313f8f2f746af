package models

import "time"

// FollowedProject records a follow relationship, independent of membership.
type FollowedProject struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ProjectID uint64    `gorm:"not null;uniqueIndex:idx_followed_project_user" json:"project_id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_followed_project_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
