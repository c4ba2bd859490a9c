package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/youquote/internal/flagx"
	"github.com/dmitrijs2005/youquote/internal/timex"
)

// JsonConfig is the file form of Config.
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	SessionDBPath    string         `json:"session_db_path"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	PostRegistration string         `json:"post_registration"`
	LogLevel         string         `json:"log_level"`
}

// parseJson overlays the file named by -c/-config onto config. Keys absent
// from the file keep their current values. An unreadable or malformed file
// panics.
func parseJson(config *Config) {
	path := flagx.JSONConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.APIBaseURL != "" {
		config.APIBaseURL = c.APIBaseURL
	}
	if c.SessionDBPath != "" {
		config.SessionDBPath = c.SessionDBPath
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
	if c.PostRegistration != "" {
		config.PostRegistration = c.PostRegistration
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
