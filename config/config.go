// Package config loads configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
)

// Config represents the application configuration
type Config struct {
	APIName          string `env:"BLOG_API_APP_NAME"`
	APIVersion       string `env:"BLOG_API_APP_VERSION"`
	ServerPort       string `env:"BLOG_API_SERVER_PORT"`
	ServerLogLevel   string `env:"BLOG_API_SERVER_LOG_LEVEL"`
	PostgresDsn      string `env:"BLOG_API_PG_DSN"`
	PostgresLogLevel string `env:"BLOG_API_PG_LOG_LEVEL"`
	RedisURL         string `env:"BLOG_API_REDIS_URL"`
	FrontendURL      string `env:"BLOG_API_FRONTEND_URL"`
	AvatarURL        string `env:"BLOG_API_AVATAR_URL"`
	SSOAPIURL        string `env:"BLOG_API_SSO_API_URL"`
	DriveAPIURL      string `env:"BLOG_API_DRIVE_API_URL"`
	DriveCorpID      string `env:"BLOG_API_DRIVE_CORP_ID"`
	DriveCorpSecret  string `env:"BLOG_API_DRIVE_CORP_SECRET"`
	DriveSpaceID     string `env:"BLOG_API_DRIVE_SPACE_ID"`
	ProxyHost        string `env:"BLOG_API_PROXY_HOST"`
	GithubAPIURL     string `env:"BLOG_API_GITHUB_API_URL"`
}

var SingleLine string = "--------------------------------------------------"

var (
	instance *Config
	once     sync.Once
	err      error
)

// Get returns the application configuration
func Get() (*Config, error) {
	once.Do(func() {
		instance, err = loadConfig()
	})
	return instance, err
}

// loadConfig loads configuration from environment variables
func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromEnv loads configuration from environment variables.
// Every field is required; a missing variable is a startup error.
func (c *Config) loadFromEnv() error {
	t := reflect.TypeOf(*c)
	v := reflect.ValueOf(c).Elem()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		envTag := field.Tag.Get("env")
		if envTag == "" {
			return fmt.Errorf("missing env tag for field %s", field.Name)
		}

		value := os.Getenv(envTag)
		if value == "" {
			return fmt.Errorf("env variable %s is required but not set", envTag)
		}

		v.Field(i).SetString(value)
	}

	return nil
}

// String returns the configuration as a string
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n--------------------------------------\n")
	sb.WriteString("Configuration:\n")
	sb.WriteString("--------------------------------------\n")

	t := reflect.TypeOf(*c)
	v := reflect.ValueOf(*c)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i).String()

		// Mask sensitive fields
		value = maskSensitiveField(field.Name, value)
		sb.WriteString(fmt.Sprintf("  %s:  %s\n", field.Name, value))
	}

	sb.WriteString("--------------------------------------\n")

	return sb.String()
}

func maskSensitiveField(fieldName, value string) string {
	sensitiveFields := []string{"dsn", "secret", "key", "url"}

	fieldNameLower := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFields {
		if strings.Contains(fieldNameLower, sensitive) {
			return maskValue(value)
		}
	}

	return value
}

func maskValue(value string) string {
	if len(value) <= 3 {
		return strings.Repeat("*", 7)
	}
	return value[:3] + strings.Repeat("*", 7)
}
