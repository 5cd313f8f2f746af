package models

import "time"

// GuestInvite is an invitation sent to an email address, scoped to a single
// project. Accepting it creates a GuestAccess grant for the invited user.
type GuestInvite struct {
	ID         uint64     `gorm:"primarykey" json:"id"`
	Email      string     `gorm:"type:varchar(255);not null;index" json:"email"`
	ProjectID  uint64     `gorm:"not null;index" json:"project_id"`
	Code       string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"-"`
	AcceptedAt *time.Time `json:"accepted_at"`
	CreatedAt  time.Time  `json:"created_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
