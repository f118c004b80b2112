package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/webue/webue-client/pkg/httpclient"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName               string        `mapstructure:"app_name"`
	Env                   string        `mapstructure:"app_env"`
	LogLevel              string        `mapstructure:"log_level"`
	APIURL                string        `mapstructure:"api_url"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`

	TokenStore string `mapstructure:"token_store"`
	TokenPath  string `mapstructure:"token_path"`
	ExportDir  string `mapstructure:"export_dir"`
}

// Load reads configuration from environment variables and config files.
// The API address comes from API_URL and falls back to httpclient.DefaultBaseURL.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "webuectl")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_url", httpclient.DefaultBaseURL)
	v.SetDefault("request_timeout_seconds", 30)
	v.SetDefault("token_store", "bbolt")
	v.SetDefault("token_path", "./data/credentials.db")
	v.SetDefault("export_dir", "./output")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.APIURL = httpclient.ResolveBaseURL(cfg.APIURL)

	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	cfg.TokenStore = strings.TrimSpace(strings.ToLower(cfg.TokenStore))

	return &cfg, nil
}
