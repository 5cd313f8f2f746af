package repository

import (
	"github.com/teamspace-dev/teamspace-api/internal/database"
	"github.com/teamspace-dev/teamspace-api/internal/models"
	"github.com/teamspace-dev/teamspace-api/internal/utils"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(id uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// FindVisibleByID finds a project only if the acting user may see it
func (r *GormProjectRepository) FindVisibleByID(id uint64, userID uint64, isGuest bool) (*models.Project, error) {
	var project models.Project
	err := r.db.Model(&models.Project{}).
		Scopes(database.VisibleProjects(userID, isGuest)).
		First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Exists reports whether a project with the given ID exists
func (r *GormProjectRepository) Exists(id uint64) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// ListVisible lists projects visible to the acting user, paginated
func (r *GormProjectRepository) ListVisible(userID uint64, isGuest bool, params utils.PaginationParams) ([]models.Project, int64, error) {
	var projects []models.Project

	query := r.db.Model(&models.Project{}).
		Scopes(database.VisibleProjects(userID, isGuest))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("projects.name ASC").
		Scopes(database.Paginate(params)).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// SetTeam sets the project's team
func (r *GormProjectRepository) SetTeam(projectID uint64, teamID *uint64) error {
	return r.db.Model(&models.Project{}).
		Where("id = ?", projectID).
		Update("team_id", teamID).Error
}

// ReassignDependentsTeam points tasks and discussions of a project at a new
// team. The two bulk updates run outside any shared transaction; rerunning
// converges every dependent to the same team.
func (r *GormProjectRepository) ReassignDependentsTeam(projectID uint64, teamID uint64) error {
	if err := r.db.Model(&models.Task{}).
		Where("project_id = ?", projectID).
		Update("team_id", teamID).Error; err != nil {
		return err
	}

	return r.db.Model(&models.Discussion{}).
		Where("project_id = ?", projectID).
		Update("team_id", teamID).Error
}

// TaskProgress returns completed and total task counts for a project
func (r *GormProjectRepository) TaskProgress(projectID uint64) (int64, int64, error) {
	var result struct {
		Completed int64
		Total     int64
	}

	err := r.db.Model(&models.Task{}).
		Select("SUM(CASE WHEN is_completed THEN 1 ELSE 0 END) AS completed, COUNT(*) AS total").
		Where("project_id = ?", projectID).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}

	return result.Completed, result.Total, nil
}

// SetProgress persists a computed progress value
func (r *GormProjectRepository) SetProgress(projectID uint64, progress float64) error {
	return r.db.Model(&models.Project{}).
		Where("id = ?", projectID).
		Update("progress", progress).Error
}
