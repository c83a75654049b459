package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr               string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout  time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel           string        `mapstructure:"log_level" yaml:"log_level"`
	MaxBodyBytes       int64         `mapstructure:"max_body_bytes" yaml:"max_body_bytes"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins" yaml:"cors_allowed_origins"`
	LiveKit            LiveKit       `mapstructure:"livekit" yaml:"livekit"`
}

// LiveKit holds the key pair and token settings for the media service.
type LiveKit struct {
	APIKey    string        `mapstructure:"api_key" yaml:"-"`
	APISecret string        `mapstructure:"api_secret" yaml:"-"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" yaml:"token_ttl"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:               ":8080",
		ReadHeaderTimeout:  5 * time.Second,
		ShutdownTimeout:    5 * time.Second,
		LogLevel:           "info",
		MaxBodyBytes:       64 << 10,
		CORSAllowedOrigins: []string{"*"},
		LiveKit: LiveKit{
			TokenTTL: 6 * time.Hour,
		},
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.MaxBodyBytes != 0 {
		c.MaxBodyBytes = other.MaxBodyBytes
	}
	if len(other.CORSAllowedOrigins) > 0 {
		c.CORSAllowedOrigins = other.CORSAllowedOrigins
	}
	if other.LiveKit.APIKey != "" {
		c.LiveKit.APIKey = other.LiveKit.APIKey
	}
	if other.LiveKit.APISecret != "" {
		c.LiveKit.APISecret = other.LiveKit.APISecret
	}
	if other.LiveKit.TokenTTL != 0 {
		c.LiveKit.TokenTTL = other.LiveKit.TokenTTL
	}
}
