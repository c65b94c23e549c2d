package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds the global application configuration
var AppConfig *Config

// Config holds the application configuration
type Config struct {
	// Backend selects the collaborator implementation: "simulated" or "live".
	Backend         string
	StripeSecretKey string
	APIVersion      string
	// HTTP server port
	HTTPPort string

	TimeoutSeconds    int
	MaxNetworkRetries int64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{}

	// Try to load .env file from current directory and parent directories
	currentDir, _ := os.Getwd()
	for currentDir != "/" {
		envPath := filepath.Join(currentDir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err = godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("failed to load .env file: %v", err)
			}
			break
		}
		currentDir = filepath.Dir(currentDir)
	}

	envVars := []struct {
		name   string
		envVar string
	}{
		{"Backend", "BACKEND"},
		{"StripeSecretKey", "STRIPE_SECRET_KEY"},
		{"APIVersion", "STRIPE_API_VERSION"},
		{"HTTPPort", "PORT"},
	}
	for _, v := range envVars {
		value := os.Getenv(v.envVar)
		configField := reflect.ValueOf(config).Elem().FieldByName(v.name)
		configField.SetString(value)
	}

	// Numeric settings are parsed outside the string table.
	rawTimeout := os.Getenv("STRIPE_TIMEOUT_SECONDS")
	rawRetries := os.Getenv("STRIPE_MAX_RETRIES")

	// Defaults
	if config.Backend == "" {
		config.Backend = BackendSimulated
	}
	if config.APIVersion == "" {
		config.APIVersion = DefaultAPIVersion
	}
	if config.HTTPPort == "" {
		config.HTTPPort = "8080"
	}
	if rawTimeout == "" {
		rawTimeout = strconv.Itoa(DefaultTimeoutSeconds)
	}
	if rawRetries == "" {
		rawRetries = strconv.FormatInt(DefaultMaxNetworkRetries, 10)
	}

	var err error
	if config.TimeoutSeconds, err = strconv.Atoi(rawTimeout); err != nil {
		return nil, fmt.Errorf("invalid STRIPE_TIMEOUT_SECONDS: %v", err)
	}
	if config.MaxNetworkRetries, err = strconv.ParseInt(rawRetries, 10, 64); err != nil {
		return nil, fmt.Errorf("invalid STRIPE_MAX_RETRIES: %v", err)
	}

	switch config.Backend {
	case BackendSimulated:
	case BackendLive:
		if config.StripeSecretKey == "" {
			return nil, fmt.Errorf("missing required environment variable: Stripe Secret Key (live backend)")
		}
	default:
		return nil, fmt.Errorf("invalid BACKEND value: %q", config.Backend)
	}

	return config, nil
}

// Livemode reports whether the configured key is a live-mode key.
func (c *Config) Livemode() bool {
	return strings.HasPrefix(c.StripeSecretKey, "sk_live_")
}

// Redacted returns a view of the configuration safe to expose on the debug
// surface. The secret key never leaves the process.
func (c *Config) Redacted() map[string]string {
	out := map[string]string{
		"backend":             c.Backend,
		"api_version":         c.APIVersion,
		"http_port":           c.HTTPPort,
		"timeout_seconds":     strconv.Itoa(c.TimeoutSeconds),
		"max_network_retries": strconv.FormatInt(c.MaxNetworkRetries, 10),
	}
	if c.StripeSecretKey != "" {
		out["stripe_secret_key"] = "***REDACTED***"
	}
	return out
}
