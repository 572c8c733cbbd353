package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Analyzer AnalyzerConfig
	Fetch    FetchConfig
	CORS     CORSConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// AnalyzerConfig holds the document-intelligence service settings.
// Endpoint and APIKey are required; presence is validated at load.
type AnalyzerConfig struct {
	Endpoint         string `mapstructure:"endpoint"`
	APIKey           string `mapstructure:"api_key"`
	ModelID          string `mapstructure:"model_id"`
	APIVersion       string `mapstructure:"api_version"`
	PollIntervalSecs int    `mapstructure:"poll_interval_secs"`
	TimeoutSecs      int    `mapstructure:"timeout_secs"`
}

// FetchConfig holds settings for downloading documents from a supplied URL.
type FetchConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
	TimeoutSecs   int   `mapstructure:"timeout_secs"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the INVOICEAI_
// prefix. It fails when the analyzer endpoint or API key is missing; no
// further schema validation is performed.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVOICEAI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// Analyzer defaults (endpoint and api_key have none on purpose)
	v.SetDefault("analyzer.endpoint", "")
	v.SetDefault("analyzer.api_key", "")
	v.SetDefault("analyzer.model_id", "prebuilt-invoice")
	v.SetDefault("analyzer.api_version", "2024-11-30")
	v.SetDefault("analyzer.poll_interval_secs", 2)
	v.SetDefault("analyzer.timeout_secs", 120)

	// Fetch defaults
	v.SetDefault("fetch.max_file_size_mb", 50)
	v.SetDefault("fetch.timeout_secs", 30)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "INVOICEAI_SERVER_PORT",
		"server.read_timeout":         "INVOICEAI_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "INVOICEAI_SERVER_WRITE_TIMEOUT",
		"server.environment":          "INVOICEAI_SERVER_ENVIRONMENT",
		"analyzer.endpoint":           "INVOICEAI_ANALYZER_ENDPOINT",
		"analyzer.api_key":            "INVOICEAI_ANALYZER_API_KEY",
		"analyzer.model_id":           "INVOICEAI_ANALYZER_MODEL_ID",
		"analyzer.api_version":        "INVOICEAI_ANALYZER_API_VERSION",
		"analyzer.poll_interval_secs": "INVOICEAI_ANALYZER_POLL_INTERVAL_SECS",
		"analyzer.timeout_secs":       "INVOICEAI_ANALYZER_TIMEOUT_SECS",
		"fetch.max_file_size_mb":      "INVOICEAI_FETCH_MAX_FILE_SIZE_MB",
		"fetch.timeout_secs":          "INVOICEAI_FETCH_TIMEOUT_SECS",
		"log.level":                   "INVOICEAI_LOG_LEVEL",
		"log.format":                  "INVOICEAI_LOG_FORMAT",
		"cors.allowed_origins":        "INVOICEAI_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if INVOICEAI_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INVOICEAI_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Analyzer = AnalyzerConfig{
		Endpoint:         v.GetString("analyzer.endpoint"),
		APIKey:           v.GetString("analyzer.api_key"),
		ModelID:          v.GetString("analyzer.model_id"),
		APIVersion:       v.GetString("analyzer.api_version"),
		PollIntervalSecs: v.GetInt("analyzer.poll_interval_secs"),
		TimeoutSecs:      v.GetInt("analyzer.timeout_secs"),
	}
	cfg.Fetch = FetchConfig{
		MaxFileSizeMB: v.GetInt64("fetch.max_file_size_mb"),
		TimeoutSecs:   v.GetInt("fetch.timeout_secs"),
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
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	if err := cfg.Analyzer.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the required analyzer settings are present.
func (a *AnalyzerConfig) Validate() error {
	if a.Endpoint == "" {
		return fmt.Errorf("analyzer endpoint is required (INVOICEAI_ANALYZER_ENDPOINT)")
	}
	if a.APIKey == "" {
		return fmt.Errorf("analyzer API key is required (INVOICEAI_ANALYZER_API_KEY)")
	}
	return nil
}
