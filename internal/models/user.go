package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleGuest  UserRole = "guest"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name         string         `gorm:"type:varchar(255)" json:"name"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Memberships []ProjectMember   `gorm:"foreignKey:UserID" json:"-"`
	Follows     []FollowedProject `gorm:"foreignKey:UserID" json:"-"`
}

// IsGuest reports whether the user only gets access through explicit
// per-project guest grants.
func (u *User) IsGuest() bool {
	return u.Role == RoleGuest
}
