package models

import (
	"time"

	"github.com/teamspace-dev/teamspace-api/internal/utils"
	"gorm.io/gorm"
)

type Project struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Icon      string         `gorm:"type:varchar(50)" json:"icon"`
	IsPrivate bool           `gorm:"not null;default:false" json:"is_private"`
	TeamID    *uint64        `gorm:"index" json:"team_id"`
	Progress  float64        `gorm:"not null;default:0" json:"progress"`
	CreatorID uint64         `gorm:"not null" json:"creator_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Team    *Team           `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Creator User            `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"members,omitempty"`
}

// BeforeCreate assigns a display icon when none was given and appends the
// creator as the first member, so a project never starts without one.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.Icon == "" {
		p.Icon = utils.RandomIcon()
	}

	for _, m := range p.Members {
		if m.UserID == p.CreatorID {
			return nil
		}
	}
	p.Members = append(p.Members, ProjectMember{
		UserID:   p.CreatorID,
		JoinedAt: time.Now(),
	})

	return nil
}
