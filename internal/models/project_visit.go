package models

import "time"

// ProjectVisit keeps one row per (user, project), upserted on every visit.
type ProjectVisit struct {
	ProjectID uint64    `gorm:"primarykey" json:"project_id"`
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	LastVisit time.Time `gorm:"not null" json:"last_visit"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
