package database

import (
	"gorm.io/gorm"

	"github.com/teamspace-dev/teamspace-api/internal/models"
	"github.com/teamspace-dev/teamspace-api/internal/utils"
)

// Paginate applies pagination to a GORM query
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

// VisibleProjects restricts a project query to what the acting user may
// see. Regular users see public projects plus private projects they are a
// member of. Guests never see the public set: only projects they are a
// member of or hold an explicit access grant for. The rule stays a filter
// clause so the database does the narrowing instead of the application.
func VisibleProjects(userID uint64, isGuest bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		memberExists := db.Session(&gorm.Session{NewDB: true}).
			Model(&models.ProjectMember{}).
			Select("1").
			Where("project_members.project_id = projects.id").
			Where("project_members.user_id = ?", userID)

		if isGuest {
			granted := db.Session(&gorm.Session{NewDB: true}).
				Model(&models.GuestAccess{}).
				Select("guest_accesses.project_id").
				Where("guest_accesses.user_id = ?", userID)
			return db.Where("EXISTS (?) OR projects.id IN (?)", memberExists, granted)
		}

		return db.Where(
			"projects.is_private = ? OR (projects.is_private = ? AND EXISTS (?))",
			false, true, memberExists,
		)
	}
}
