// Package config handles configuration for the reference server: defaults,
// an optional JSON overlay and command-line flags.
package config

import "time"

// Config holds runtime settings for the reference server.
//
// Fields:
//   - Address: HTTP bind address.
//   - SecretKey: HMAC secret for signing bearer tokens (HS256). Do not use the default outside development.
//   - TokenValidity: lifetime of an issued token.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	Address       string
	SecretKey     string
	TokenValidity time.Duration
	LogLevel      string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Address = ":8000"
	c.SecretKey = "secretKey"
	c.TokenValidity = 60 * time.Minute
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
