package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      Service banner
// @Description  Returns the service name, version and status
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]interface{} "Service info"
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Video Transcript API",
			"version":     "1.0.0",
			"description": "API for video metadata and transcripts",
			"status":      "running",
		})
	}
}
