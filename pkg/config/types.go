package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string           `mapstructure:"environment"`
	Server       ServerConfig     `mapstructure:"server"`
	YouTube      YouTubeConfig    `mapstructure:"youtube"`
	Captions     CaptionsConfig   `mapstructure:"captions"`
	Proxy        ProxyConfig      `mapstructure:"proxy"`
	Audio        AudioConfig      `mapstructure:"audio"`
	Storage      StorageConfig    `mapstructure:"storage"`
	Transcribe   TranscribeConfig `mapstructure:"transcribe"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// YouTubeConfig contains YouTube Data API settings
type YouTubeConfig struct {
	APIKey    string        `mapstructure:"api_key"`
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// CaptionsConfig contains caption-track provider settings
type CaptionsConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	PreferredLanguage string        `mapstructure:"preferred_language"`
}

// ProxyConfig contains forward-proxy settings used for YouTube traffic
// outside of local and docker environments.
type ProxyConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// AudioConfig contains audio extraction settings
type AudioConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	Format    string `mapstructure:"format"`
	Quality   string `mapstructure:"quality"`
}

// StorageConfig contains object storage settings
type StorageConfig struct {
	Bucket string `mapstructure:"bucket"`
	Region string `mapstructure:"region"`
}

// TranscribeConfig contains asynchronous transcription job settings
type TranscribeConfig struct {
	Region        string        `mapstructure:"region"`
	Language      string        `mapstructure:"language"`
	MediaFormat   string        `mapstructure:"media_format"`
	PollInterval  time.Duration `mapstructure:"poll_interval"`
	PollTimeout   time.Duration `mapstructure:"poll_timeout"`
	ResultTimeout time.Duration `mapstructure:"result_timeout"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	RPS     int  `mapstructure:"rps"`
	Burst   int  `mapstructure:"burst"`
}
