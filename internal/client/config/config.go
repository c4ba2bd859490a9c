package config

import "time"

// Config holds runtime settings for the YouQuote console.
//
// Fields:
//   - APIBaseURL: base URL of the remote store, e.g. http://127.0.0.1:8000.
//   - SessionDBPath: SQLite file holding the persisted session.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - PostRegistration: "verify-email" or "alert".
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL       string
	SessionDBPath    string
	RequestTimeout   time.Duration
	PostRegistration string
	LogLevel         string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.SessionDBPath = "youquote.db"
	c.RequestTimeout = 10 * time.Second
	c.PostRegistration = "verify-email"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
