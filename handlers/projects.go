package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListProjects handles GET /api/projects. The response is a bare array of
// {id, name}, sorted by name ascending.
func ListProjects(store Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := store.ListProjects(c.Request.Context())
		if err != nil {
			slog.Error("failed to list projects", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
			return
		}

		c.JSON(http.StatusOK, projects)
	}
}
