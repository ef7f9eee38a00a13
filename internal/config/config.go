package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"ndagen/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Template  TemplateConfig
	S3        S3Config
	Amap      AmapConfig
	Directory DirectoryConfig
	Flow      FlowConfig
	Output    OutputConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// TemplateConfig locates the agreement template and names its placeholders.
type TemplateConfig struct {
	Path               string `mapstructure:"path"`
	S3Key              string `mapstructure:"s3_key"`
	NamePlaceholder    string `mapstructure:"name_placeholder"`
	AddressPlaceholder string `mapstructure:"address_placeholder"`
}

// Placeholders returns the required placeholders in a stable order.
func (t *TemplateConfig) Placeholders() []string {
	return []string{t.NamePlaceholder, t.AddressPlaceholder}
}

// S3Config holds AWS S3 settings used for the template object.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Enabled reports whether the template should come from object storage.
func (s *S3Config) Enabled(tpl *TemplateConfig) bool {
	return s.Bucket != "" && tpl.S3Key != ""
}

// AmapConfig holds the place search provider settings.
type AmapConfig struct {
	APIKey      string `mapstructure:"api_key"`
	BaseURL     string `mapstructure:"base_url"`
	Types       string `mapstructure:"types"`
	City        string `mapstructure:"city"`
	PageSize    int    `mapstructure:"page_size"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// DirectoryConfig points at an optional workbook of known companies.
type DirectoryConfig struct {
	Path  string `mapstructure:"path"`
	Sheet string `mapstructure:"sheet"`
	Demo  bool   `mapstructure:"demo"`
}

// FlowConfig holds form flow settings.
type FlowConfig struct {
	AddressMode   domain.AddressMode `mapstructure:"address_mode"`
	SessionTTL    time.Duration      `mapstructure:"session_ttl"`
	SweepInterval time.Duration      `mapstructure:"sweep_interval"`
}

// OutputConfig controls generated file names.
type OutputConfig struct {
	Prefix        string `mapstructure:"prefix"`
	Separator     string `mapstructure:"separator"`
	MaxNameLength int    `mapstructure:"max_name_length"`
}

// Load reads configuration from environment variables with the NDAGEN_ prefix.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("NDAGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Template defaults
	v.SetDefault("template.path", "保密协议模板.docx")
	v.SetDefault("template.s3_key", "")
	v.SetDefault("template.name_placeholder", domain.DefaultNamePlaceholder)
	v.SetDefault("template.address_placeholder", domain.DefaultAddressPlaceholder)

	// S3 defaults
	v.SetDefault("s3.region", "ap-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")

	// Amap defaults
	v.SetDefault("amap.api_key", "")
	v.SetDefault("amap.base_url", "https://restapi.amap.com")
	v.SetDefault("amap.types", "公司企业|商务住宅|产业园区")
	v.SetDefault("amap.city", "全国")
	v.SetDefault("amap.page_size", 10)
	v.SetDefault("amap.timeout_secs", 10)

	// Directory defaults
	v.SetDefault("directory.path", "")
	v.SetDefault("directory.sheet", "")
	v.SetDefault("directory.demo", false)

	// Flow defaults
	v.SetDefault("flow.address_mode", string(domain.AddressModeAuto))
	v.SetDefault("flow.session_ttl", "2h")
	v.SetDefault("flow.sweep_interval", "5m")

	// Output defaults
	v.SetDefault("output.prefix", "保密协议")
	v.SetDefault("output.separator", " ")
	v.SetDefault("output.max_name_length", 50)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "NDAGEN_SERVER_PORT",
		"server.read_timeout":          "NDAGEN_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "NDAGEN_SERVER_WRITE_TIMEOUT",
		"server.environment":           "NDAGEN_SERVER_ENVIRONMENT",
		"log.level":                    "NDAGEN_LOG_LEVEL",
		"log.format":                   "NDAGEN_LOG_FORMAT",
		"cors.allowed_origins":         "NDAGEN_CORS_ALLOWED_ORIGINS",
		"template.path":                "NDAGEN_TEMPLATE_PATH",
		"template.s3_key":              "NDAGEN_TEMPLATE_S3_KEY",
		"template.name_placeholder":    "NDAGEN_TEMPLATE_NAME_PLACEHOLDER",
		"template.address_placeholder": "NDAGEN_TEMPLATE_ADDRESS_PLACEHOLDER",
		"s3.region":                    "NDAGEN_S3_REGION",
		"s3.bucket":                    "NDAGEN_S3_BUCKET",
		"s3.endpoint":                  "NDAGEN_S3_ENDPOINT",
		"s3.access_key":                "NDAGEN_S3_ACCESS_KEY",
		"s3.secret_key":                "NDAGEN_S3_SECRET_KEY",
		"amap.api_key":                 "NDAGEN_AMAP_KEY",
		"amap.base_url":                "NDAGEN_AMAP_BASE_URL",
		"amap.types":                   "NDAGEN_AMAP_TYPES",
		"amap.city":                    "NDAGEN_AMAP_CITY",
		"amap.page_size":               "NDAGEN_AMAP_PAGE_SIZE",
		"amap.timeout_secs":            "NDAGEN_AMAP_TIMEOUT_SECS",
		"directory.path":               "NDAGEN_DIRECTORY_PATH",
		"directory.sheet":              "NDAGEN_DIRECTORY_SHEET",
		"directory.demo":               "NDAGEN_DIRECTORY_DEMO",
		"flow.address_mode":            "NDAGEN_FLOW_ADDRESS_MODE",
		"flow.session_ttl":             "NDAGEN_FLOW_SESSION_TTL",
		"flow.sweep_interval":          "NDAGEN_FLOW_SWEEP_INTERVAL",
		"output.prefix":                "NDAGEN_OUTPUT_PREFIX",
		"output.separator":             "NDAGEN_OUTPUT_SEPARATOR",
		"output.max_name_length":       "NDAGEN_OUTPUT_MAX_NAME_LENGTH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if NDAGEN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("NDAGEN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Template = TemplateConfig{
		Path:               v.GetString("template.path"),
		S3Key:              v.GetString("template.s3_key"),
		NamePlaceholder:    v.GetString("template.name_placeholder"),
		AddressPlaceholder: v.GetString("template.address_placeholder"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Amap = AmapConfig{
		APIKey:      v.GetString("amap.api_key"),
		BaseURL:     v.GetString("amap.base_url"),
		Types:       v.GetString("amap.types"),
		City:        v.GetString("amap.city"),
		PageSize:    v.GetInt("amap.page_size"),
		TimeoutSecs: v.GetInt("amap.timeout_secs"),
	}
	cfg.Directory = DirectoryConfig{
		Path:  v.GetString("directory.path"),
		Sheet: v.GetString("directory.sheet"),
		Demo:  v.GetBool("directory.demo"),
	}
	cfg.Flow = FlowConfig{
		AddressMode:   domain.AddressMode(strings.ToLower(v.GetString("flow.address_mode"))),
		SessionTTL:    v.GetDuration("flow.session_ttl"),
		SweepInterval: v.GetDuration("flow.sweep_interval"),
	}
	cfg.Output = OutputConfig{
		Prefix:        v.GetString("output.prefix"),
		Separator:     v.GetString("output.separator"),
		MaxNameLength: v.GetInt("output.max_name_length"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at request time.
func (c *Config) Validate() error {
	if !domain.ValidAddressModes[c.Flow.AddressMode] {
		return fmt.Errorf("%w: %q", domain.ErrInvalidAddressMode, c.Flow.AddressMode)
	}
	if c.Output.Separator != " " && c.Output.Separator != "_" {
		return fmt.Errorf("output separator must be a space or an underscore, got %q", c.Output.Separator)
	}
	if c.Output.MaxNameLength <= 0 {
		return fmt.Errorf("output max name length must be positive, got %d", c.Output.MaxNameLength)
	}
	if c.Template.NamePlaceholder == "" || c.Template.AddressPlaceholder == "" {
		return errors.New("template placeholders cannot be empty")
	}
	if c.Template.NamePlaceholder == c.Template.AddressPlaceholder {
		return errors.New("template placeholders must be distinct")
	}
	if c.Template.Path == "" && c.Template.S3Key == "" {
		return errors.New("either a template path or a template S3 key is required")
	}
	if c.Flow.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive, got %s", c.Flow.SessionTTL)
	}
	return nil
}
