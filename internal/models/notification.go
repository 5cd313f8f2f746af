package models

import "time"

// Notification references a project weakly: deleting the project keeps the
// notification around with project_id cleared.
type Notification struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"user_id"`
	Message   string    `gorm:"type:text" json:"message"`
	ProjectID *uint64   `gorm:"index" json:"project_id"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
