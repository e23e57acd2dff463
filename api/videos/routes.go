package videos

import (
	"github.com/gin-gonic/gin"
	"github.com/learningmode/video-api/api/types"
)

// RegisterRoutes registers video routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/videos/:id - Get video metadata and transcript
	router.GET("/:id", Get(deps))
}
