package api

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/learningmode/video-api/api/health"
	"github.com/learningmode/video-api/api/types"
	"github.com/learningmode/video-api/api/version"
	"github.com/learningmode/video-api/api/videos"
	_ "github.com/learningmode/video-api/docs/swagger"
	"github.com/learningmode/video-api/internal/services/audio"
	"github.com/learningmode/video-api/internal/services/captions"
	"github.com/learningmode/video-api/internal/services/metadata"
	"github.com/learningmode/video-api/internal/services/storage"
	"github.com/learningmode/video-api/internal/services/transcribe"
	"github.com/learningmode/video-api/internal/services/transcript"
	"github.com/learningmode/video-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Load config for API routes
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// Wire services before any handler captures the dependency pointer,
	// so the health endpoint sees what was actually configured.
	if deps == nil {
		deps = &types.Dependencies{}
	}

	if err := initializeDependencies(deps, cfg); err != nil {
		return err
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Register video routes. A single request can take minutes when the
	// transcription fallback kicks in, so the budget is deliberately low.
	videoGroup := v1.Group("/videos")
	if cfg.RateLimiting.Enabled {
		videoGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, cfg.RateLimiting.RPS, cfg.RateLimiting.Burst))
	}
	videos.RegisterRoutes(videoGroup, deps)

	return nil
}

// initializeDependencies wires the metadata and transcript services
// from configuration, leaving any dependency already set untouched.
func initializeDependencies(deps *types.Dependencies, cfg *config.Config) error {
	proxyURL := buildProxyURL(cfg)

	if deps.Metadata == nil {
		deps.Metadata = metadata.NewClient(metadata.Config{
			APIKey:    cfg.YouTube.APIKey,
			BaseURL:   cfg.YouTube.BaseURL,
			UserAgent: cfg.YouTube.UserAgent,
			Timeout:   cfg.YouTube.Timeout,
			ProxyURL:  proxyURL,
		})
	}

	if deps.Transcripts == nil {
		captionClient := captions.NewClient(captions.Config{
			BaseURL:           cfg.Captions.BaseURL,
			PreferredLanguage: cfg.Captions.PreferredLanguage,
			Timeout:           cfg.Captions.Timeout,
			ProxyURL:          proxyURL,
		})

		extractor := audio.NewExtractor(audio.Config{
			OutputDir: cfg.Audio.OutputDir,
			Format:    cfg.Audio.Format,
			Quality:   cfg.Audio.Quality,
		})

		awsSession, err := session.NewSession(&aws.Config{
			Region: aws.String(cfg.Storage.Region),
		})
		if err != nil {
			return fmt.Errorf("failed to create AWS session: %w", err)
		}

		stager := storage.NewStager(awsSession)

		transcribeSession := awsSession
		if cfg.Transcribe.Region != cfg.Storage.Region {
			transcribeSession, err = session.NewSession(&aws.Config{
				Region: aws.String(cfg.Transcribe.Region),
			})
			if err != nil {
				return fmt.Errorf("failed to create AWS session: %w", err)
			}
		}

		runner := transcribe.NewRunner(transcribeSession, transcribe.Config{
			Language:      cfg.Transcribe.Language,
			MediaFormat:   cfg.Transcribe.MediaFormat,
			PollInterval:  cfg.Transcribe.PollInterval,
			PollTimeout:   cfg.Transcribe.PollTimeout,
			ResultTimeout: cfg.Transcribe.ResultTimeout,
		})

		deps.Transcripts = transcript.NewPipeline(captionClient, extractor, stager, runner, cfg.Storage.Bucket)
	}

	return nil
}

// buildProxyURL returns the forward proxy URL for YouTube traffic, or
// nil when the current environment talks to YouTube directly.
func buildProxyURL(cfg *config.Config) *url.URL {
	if !cfg.UseProxy() {
		return nil
	}

	proxyURL := &url.URL{
		Scheme: "http",
		Host:   cfg.Proxy.Host,
	}
	if cfg.Proxy.User != "" {
		proxyURL.User = url.UserPassword(cfg.Proxy.User, cfg.Proxy.Password)
	}
	return proxyURL
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
