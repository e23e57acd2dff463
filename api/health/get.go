package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/learningmode/video-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports service liveness and which collaborators are wired
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]interface{} "Service health"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}

		response["metadata"] = serviceStatus(deps != nil && deps.Metadata != nil)
		response["transcripts"] = serviceStatus(deps != nil && deps.Transcripts != nil)

		c.JSON(http.StatusOK, response)
	}
}

func serviceStatus(configured bool) gin.H {
	if !configured {
		return gin.H{"status": "not configured"}
	}
	return gin.H{"status": "configured"}
}
