package services

import "github.com/teamspace-dev/teamspace-api/internal/models"

// ProjectVisibleTo is the in-memory form of the visibility rule used by the
// database.VisibleProjects scope. It expects the project's members to be
// loaded; guestProjectIDs is the set of projects the user holds a grant
// for, consulted only when isGuest is set.
func ProjectVisibleTo(project *models.Project, userID uint64, isGuest bool, guestProjectIDs map[uint64]bool) bool {
	isMember := false
	for _, m := range project.Members {
		if m.UserID == userID {
			isMember = true
			break
		}
	}

	if isGuest {
		return isMember || guestProjectIDs[project.ID]
	}

	return !project.IsPrivate || isMember
}

// FilterVisibleProjects keeps the projects visible to the acting user,
// preserving order.
func FilterVisibleProjects(projects []models.Project, userID uint64, isGuest bool, guestProjectIDs map[uint64]bool) []models.Project {
	visible := make([]models.Project, 0, len(projects))
	for i := range projects {
		if ProjectVisibleTo(&projects[i], userID, isGuest, guestProjectIDs) {
			visible = append(visible, projects[i])
		}
	}
	return visible
}
