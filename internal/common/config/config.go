// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Fallback FallbackConfig `mapstructure:"fallback"`
	Catalog  CatalogConfig  `mapstructure:"catalog"`
	UI       UIConfig       `mapstructure:"ui"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// NotifyConfig holds the outbound notification endpoint settings.
type NotifyConfig struct {
	EndpointURL string `mapstructure:"endpoint_url"`
	Timeout     int    `mapstructure:"timeout"` // milliseconds
}

// FallbackConfig holds the manual-contact channel settings.
type FallbackConfig struct {
	AdminEmail       string `mapstructure:"admin_email"`
	ProductSubject   string `mapstructure:"product_subject"`   // %s is the product display name
	ContactSubject   string `mapstructure:"contact_subject"`
	ProductBody      string `mapstructure:"product_body"`      // %s is the product display name
	ContactBody      string `mapstructure:"contact_body"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds settings for the UI affordance helpers.
type UIConfig struct {
	HighlightDuration int      `mapstructure:"highlight_duration"` // milliseconds
	Sections          []string `mapstructure:"sections"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
