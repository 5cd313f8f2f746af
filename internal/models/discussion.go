package models

import (
	"time"

	"gorm.io/gorm"
)

type Discussion struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	ProjectID uint64         `gorm:"not null;index" json:"project_id"`
	TeamID    *uint64        `gorm:"index" json:"team_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
