package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Supported document store drivers
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverS3       = "s3"
)

// Supported notification relays
const (
	ProviderSMTP     = "smtp"
	ProviderSendGrid = "sendgrid"
	ProviderSES      = "ses"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	S3            S3Config
	Notify        NotifyConfig
	SMTP          SMTPConfig
	SendGrid      SendGridConfig
	SES           SESConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	AppName        string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Driver     string
	URL        string
	Name       string
	CACertPath string
	MaxConns   int32
	MinConns   int32
}

type S3Config struct {
	Bucket          string
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type NotifyConfig struct {
	Provider       string
	FromEmail      string
	ToEmail        string
	TimeoutSeconds int
	Async          bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type SendGridConfig struct {
	APIKey string
}

type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("APP_NAME", "Nocode Saarthi")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_DRIVER", DriverMongo)
	v.SetDefault("DATABASE_NAME", "leads")
	v.SetDefault("DATABASE_MAX_CONNS", 10)
	v.SetDefault("DATABASE_MIN_CONNS", 1)
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("NOTIFY_PROVIDER", ProviderSMTP)
	v.SetDefault("NOTIFY_FROM_EMAIL", "no-reply@nocodesaarthi.com")
	v.SetDefault("NOTIFY_TO_EMAIL", "leads@nocodesaarthi.com")
	v.SetDefault("NOTIFY_TIMEOUT_SECONDS", 10)
	v.SetDefault("NOTIFY_ASYNC", false)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SES_REGION", "us-east-1")
	v.SetDefault("O11Y_BE_SERVICE_NAME", "leads-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "nocodesaarthi")
	v.SetDefault("O11Y_BE_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "leads-api")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			AppName:        v.GetString("APP_NAME"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER"))),
			URL:        v.GetString("DATABASE_URL"),
			Name:       v.GetString("DATABASE_NAME"),
			CACertPath: v.GetString("DATABASE_CA_CERT"),
			MaxConns:   v.GetInt32("DATABASE_MAX_CONNS"),
			MinConns:   v.GetInt32("DATABASE_MIN_CONNS"),
		},
		S3: S3Config{
			Bucket:          v.GetString("S3_BUCKET"),
			Endpoint:        v.GetString("S3_ENDPOINT"),
			Region:          v.GetString("S3_REGION"),
			AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
		},
		Notify: NotifyConfig{
			Provider:       strings.ToLower(strings.TrimSpace(v.GetString("NOTIFY_PROVIDER"))),
			FromEmail:      v.GetString("NOTIFY_FROM_EMAIL"),
			ToEmail:        v.GetString("NOTIFY_TO_EMAIL"),
			TimeoutSeconds: v.GetInt("NOTIFY_TIMEOUT_SECONDS"),
			Async:          v.GetBool("NOTIFY_ASYNC"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASS"),
		},
		SendGrid: SendGridConfig{
			APIKey: v.GetString("SENDGRID_API_KEY"),
		},
		SES: SESConfig{
			Region:          v.GetString("SES_REGION"),
			AccessKeyID:     v.GetString("SES_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("SES_SECRET_ACCESS_KEY"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_BE_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_BE_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitList parses a comma-separated value, dropping blanks
func splitList(raw string) []string {
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Validate checks if configuration values are usable.
// Missing store or relay credentials are not errors: those collaborators
// are optional and simply stay unconfigured.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Database.Driver {
	case DriverMongo, DriverPostgres, DriverSQLite, DriverS3:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}

	switch c.Notify.Provider {
	case ProviderSMTP, ProviderSendGrid, ProviderSES:
	default:
		return fmt.Errorf("unsupported NOTIFY_PROVIDER %q", c.Notify.Provider)
	}

	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("SMTP_PORT must be between 1 and 65535")
	}

	if c.Notify.TimeoutSeconds <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT_SECONDS must be positive")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// StoreConfigured reports whether the selected document store has a target
func (c *Config) StoreConfigured() bool {
	if c.Database.Driver == DriverS3 {
		return c.S3.Bucket != ""
	}
	return c.Database.URL != ""
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// AllowsAllOrigins reports the open CORS policy
func (c *Config) AllowsAllOrigins() bool {
	for _, origin := range c.Server.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
