// Package config provides application configuration management with
// multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (YUQUE_API_TOKEN, YUQUE_BASE_URL)
//  2. A .env file in the working directory
//  3. Config file (~/.yuque-mcp/config.yaml or ./config.yaml)
//  4. Default values
//
// Security: the API token is masked in MarshalJSON and String so it never
// leaks through logs.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	// ErrMissingAPIToken indicates no Yuque API token was configured.
	ErrMissingAPIToken = errors.New("missing API token")

	// ErrInvalidBaseURL indicates the base URL is not a valid http(s) URL.
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// DefaultBaseURL is the public Yuque endpoint used when no override is set.
const DefaultBaseURL = "https://www.yuque.com"

// Config stores application configuration.
// SECURITY: APIToken is explicitly masked in MarshalJSON().
type Config struct {
	// APIToken authenticates every Yuque API call. Required.
	APIToken string `mapstructure:"api_token" json:"api_token"` // SENSITIVE: masked in MarshalJSON

	// BaseURL is the Yuque server to talk to.
	BaseURL string `mapstructure:"base_url" json:"base_url"`

	// Debug enables debug-level logging.
	Debug bool `mapstructure:"debug" json:"debug"`

	// JSONLog switches log output to JSON format.
	JSONLog bool `mapstructure:"json_log" json:"json_log"`
}

// Load loads configuration.
// Priority: environment variables > .env file > config file > defaults.
func Load() (*Config, error) {
	// A .env file is optional; when present its values become environment
	// variables and flow through the same env bindings below.
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".yuque-mcp"))
	}
	v.AddConfigPath(".")

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("debug", false)
	v.SetDefault("json_log", false)

	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults cover it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// bindEnvVariables binds environment variables explicitly.
func bindEnvVariables(v *viper.Viper) {
	// Hardcoded keys cannot fail to bind; a failure here is a bug.
	mustBind := func(key, envVar string) {
		if err := v.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("api_token", "YUQUE_API_TOKEN")
	mustBind("base_url", "YUQUE_BASE_URL")
	mustBind("debug", "YUQUE_MCP_DEBUG")
	mustBind("json_log", "YUQUE_MCP_JSON_LOG")
}

// Validate checks the configuration and normalizes the base URL.
func (c *Config) Validate() error {
	if c.APIToken == "" {
		return fmt.Errorf("%w: set YUQUE_API_TOKEN", ErrMissingAPIToken)
	}

	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}

	return nil
}

// maskedValue is the placeholder for masked sensitive data.
const maskedValue = "████████"

// maskSecret masks a secret string for safe logging. Short secrets are
// fully masked; longer ones keep the first and last two characters for
// debug utility.
func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return maskedValue
	}
	return s[:2] + "<" + maskedValue + ">" + s[len(s)-2:]
}

// MarshalJSON implements json.Marshaler with the API token masked.
func (c Config) MarshalJSON() ([]byte, error) {
	type alias Config
	a := alias(c)
	a.APIToken = maskSecret(a.APIToken)
	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// String implements Stringer to prevent accidental printing of the token.
func (c Config) String() string {
	data, err := c.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return string(data)
}
