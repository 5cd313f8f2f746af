package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/teamspace-dev/teamspace-api/internal/database"
	"github.com/teamspace-dev/teamspace-api/internal/models"
)

// RequireProjectAccess loads the project addressed by the :id parameter,
// filtered through the same visibility rule as listings. An invisible
// project answers 404 so its existence does not leak.
func RequireProjectAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		projectIDStr := c.Param("id")
		projectID, err := strconv.ParseUint(projectIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid project ID",
			})
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		var project models.Project
		err = database.GetDB().
			Model(&models.Project{}).
			Scopes(database.VisibleProjects(userID, GetIsGuest(c))).
			First(&project, projectID).Error
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Project not found",
			})
			c.Abort()
			return
		}

		c.Set("project", project)
		c.Next()
	}
}
