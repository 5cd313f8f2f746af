package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Project listing and team moves
		{"projects", "idx_projects_team_id", "team_id"},
		{"projects", "idx_projects_is_private", "is_private"},

		// Membership lookups back the visibility predicate
		{"project_members", "idx_project_members_project_id", "project_id"},
		{"project_members", "idx_project_members_user_id", "user_id"},

		// Guest grant lookups
		{"guest_accesses", "idx_guest_accesses_user_id", "user_id"},

		// Dependent records touched by cascades
		{"tasks", "idx_tasks_project_id", "project_id"},
		{"discussions", "idx_discussions_project_id", "project_id"},
		{"pages", "idx_pages_project_id", "project_id"},
		{"followed_projects", "idx_followed_projects_user_id", "user_id"},
		{"project_visits", "idx_project_visits_user_id", "user_id"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM information_schema.statistics
			WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ?
		`, idx.table, idx.name).Scan(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		// Create index
		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s on %s(%s)", idx.name, idx.table, idx.columns)
	}

	return nil
}
