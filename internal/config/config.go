// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// userAgentPresets maps preset names to User-Agent strings commonly sent
// by applications that authenticate with account keys.
var userAgentPresets = map[string]string{
	"dotnet_web":       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"node_app":         "Mozilla/5.0 (compatible; Node.js)",
	"python_app":       "Python-urllib/3.11",
	"azure_function":   "Microsoft-Azure-Functions/1.0",
	"logic_app":        "Microsoft-Azure-LogicApps/1.0",
	"power_bi":         "Microsoft Power BI",
	"azure_databricks": "Apache-HttpClient/4.5.13 (Java/11.0.16)",
	"postman":          "PostmanRuntime/7.32.3",
	"curl":             "curl/8.4.0",
	"powershell":       "Mozilla/5.0 (Windows NT; Windows NT 10.0; en-US) PowerShell/7.3.8",
}

// DefaultUserAgentPreset is used when no user agent is configured.
const DefaultUserAgentPreset = "dotnet_web"

// Config holds all configuration for the explorer.
type Config struct {
	Cosmos CosmosConfig
	Log    LogConfig
}

// CosmosConfig holds the Cosmos DB account connection settings. Values
// are immutable after Load; the account key is treated as an opaque
// string.
type CosmosConfig struct {
	Endpoint  string
	Key       string
	UserAgent string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables. Flag values
// override environment values when non-empty.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Cosmos: CosmosConfig{
			Endpoint:  getEnv("COSMOS_ENDPOINT", ""),
			Key:       getEnv("COSMOS_KEY", ""),
			UserAgent: getEnv("COSMOS_USER_AGENT", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Validate checks that the required connection settings are present.
func (c *Config) Validate() error {
	if c.Cosmos.Endpoint == "" {
		return fmt.Errorf("cosmos endpoint is required (--endpoint or COSMOS_ENDPOINT)")
	}
	if c.Cosmos.Key == "" {
		return fmt.Errorf("cosmos account key is required (--key or COSMOS_KEY)")
	}
	return nil
}

// ResolveUserAgent maps a preset name to its User-Agent string. Unknown
// names are passed through as literal User-Agent strings; an empty name
// resolves to the default preset. The second return reports whether a
// preset matched.
func ResolveUserAgent(name string) (string, bool) {
	if name == "" {
		return userAgentPresets[DefaultUserAgentPreset], true
	}
	if ua, ok := userAgentPresets[name]; ok {
		return ua, true
	}
	return name, false
}

// UserAgentPresetNames returns the available preset names.
func UserAgentPresetNames() []string {
	names := make([]string, 0, len(userAgentPresets))
	for name := range userAgentPresets {
		names = append(names, name)
	}
	return names
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
