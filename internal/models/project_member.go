package models

import "time"

// ProjectMember is a user with standing access to a project, plus their
// per-project notification preferences. The composite primary key keeps
// membership unique per (project, user) even if two joins race.
type ProjectMember struct {
	ProjectID         uint64    `gorm:"primarykey" json:"project_id"`
	UserID            uint64    `gorm:"primarykey" json:"user_id"`
	NotifyNewPosts    bool      `gorm:"not null;default:false" json:"notify_new_posts"`
	NotifyNewComments bool      `gorm:"not null;default:false" json:"notify_new_comments"`
	JoinedAt          time.Time `json:"joined_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
