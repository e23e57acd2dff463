package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("VIDEOAPI")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
			// Config file doesn't exist, which is fine - we'll use defaults
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetDuration("transcribe.poll_interval") <= 0 {
		viper.Set("transcribe.poll_interval", 5*time.Second)
	}
	if viper.GetDuration("transcribe.poll_timeout") <= 0 {
		viper.Set("transcribe.poll_timeout", 30*time.Minute)
	}

	return validateAPIKeys()
}

// validateAPIKeys validates that credentials are not using placeholder values
func validateAPIKeys() error {
	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	placeholders := []string{
		"YOUR_KEY_HERE",
		"YOUR_API_KEY",
		"changeme",
		"CHANGEME",
		"",
	}

	youtubeKey := viper.GetString("youtube.api_key")
	for _, placeholder := range placeholders {
		if youtubeKey == placeholder {
			if isProduction {
				return fmt.Errorf("invalid YouTube API key: cannot use placeholder values in production")
			}
			fmt.Println("Warning: YouTube API key is using a placeholder value")
			break
		}
	}

	// Proxy credentials are required outside local and docker environments
	// since direct YouTube traffic is blocked from most datacenter ranges.
	if env != "local" && env != "docker" {
		if viper.GetString("proxy.user") == "" || viper.GetString("proxy.password") == "" {
			if isProduction {
				return fmt.Errorf("proxy credentials are required in %s environment", env)
			}
			fmt.Println("Warning: proxy credentials are not configured")
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Transcribe.PollInterval <= 0 {
		c.Transcribe.PollInterval = 5 * time.Second
	}
	if c.Transcribe.PollTimeout <= 0 {
		c.Transcribe.PollTimeout = 30 * time.Minute
	}

	return nil
}

// UseProxy reports whether outbound YouTube traffic should go through the
// configured forward proxy for this environment.
func (c *Config) UseProxy() bool {
	return c.Environment != "local" && c.Environment != "docker" && c.Proxy.Host != ""
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "local")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// YouTube Data API defaults
	viper.SetDefault("youtube.base_url", "https://www.googleapis.com/youtube/v3")
	viper.SetDefault("youtube.timeout", 10*time.Second)
	viper.SetDefault("youtube.user_agent", "VideoInfoAPI/1.0")

	// Caption provider defaults
	viper.SetDefault("captions.base_url", "https://video.google.com/timedtext")
	viper.SetDefault("captions.timeout", 15*time.Second)
	viper.SetDefault("captions.preferred_language", "en")

	// Proxy defaults
	viper.SetDefault("proxy.host", "gate.smartproxy.com:10001")

	// Audio extraction defaults
	viper.SetDefault("audio.output_dir", "./tmp")
	viper.SetDefault("audio.format", "mp3")
	viper.SetDefault("audio.quality", "5")

	// Storage defaults
	viper.SetDefault("storage.bucket", "learningmodeai-transcription")
	viper.SetDefault("storage.region", "us-east-2")

	// Transcription job defaults
	viper.SetDefault("transcribe.region", "us-east-2")
	viper.SetDefault("transcribe.language", "en-US")
	viper.SetDefault("transcribe.media_format", "mp3")
	viper.SetDefault("transcribe.poll_interval", 5*time.Second)
	viper.SetDefault("transcribe.poll_timeout", 30*time.Minute)
	viper.SetDefault("transcribe.result_timeout", 30*time.Second)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.rps", 10)
	viper.SetDefault("rate_limiting.burst", 20)
}
