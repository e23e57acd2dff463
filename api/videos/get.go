package videos

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/learningmode/video-api/api/types"
	"github.com/learningmode/video-api/internal/services/metadata"
	apperrors "github.com/learningmode/video-api/pkg/errors"
)

// Get returns video metadata together with a transcript
// @Summary      Get video info and transcript
// @Description  Returns video metadata (title, description, channel) and a transcript. Platform captions are used when available; otherwise the audio is transcribed. If no transcript can be produced, a placeholder string is returned in its place.
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200 {object} types.VideoInfoResponse "Video metadata and transcript"
// @Failure      404 {object} types.ErrorResponse "Video not found"
// @Failure      502 {object} types.ErrorResponse "Upstream metadata provider failure"
// @Router       /api/v1/videos/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID := c.Param("id")
		log.Printf("[DEBUG] Get called with video ID: %s", videoID)

		video, err := deps.Metadata.GetVideo(c.Request.Context(), videoID)
		if err != nil {
			appErr := classifyMetadataError(videoID, err)
			log.Printf("[ERROR] Failed to fetch metadata for video %s: %v", videoID, err)
			c.JSON(appErr.GetHTTPCode(), types.ErrorResponse{
				Status:  types.StatusError,
				Message: appErr.Message,
			})
			return
		}

		response := types.VideoInfoResponse{
			Title:       video.Title,
			Description: video.Description,
			Channel:     video.Channel,
		}

		// A transcript failure never blocks the response: metadata is
		// still served with a placeholder in the transcript slot.
		lines, err := deps.Transcripts.Transcript(c.Request.Context(), videoID)
		if err != nil {
			log.Printf("[ERROR] Failed to produce transcript for video %s: %v", videoID, err)
			response.Transcript = types.TranscriptUnavailable
		} else {
			response.Transcript = lines
		}

		log.Printf("[DEBUG] Video found - ID: %s, Title: %s", videoID, video.Title)
		c.JSON(http.StatusOK, response)
	}
}

// classifyMetadataError maps metadata service errors to application
// errors carrying the right HTTP status.
func classifyMetadataError(videoID string, err error) *apperrors.AppError {
	if errors.Is(err, metadata.ErrVideoNotFound) {
		return apperrors.NotFound("Video", videoID)
	}
	if errors.Is(err, metadata.ErrProvider) {
		return apperrors.ExternalServiceError("youtube", err)
	}
	return apperrors.Wrap(err, apperrors.ErrCodeInternal, "Failed to fetch video metadata")
}
